/*
 * Copyright 2025 The RuleGo Authors.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package bandmath

import (
	"bytes"
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rulego/bandmath/functions"
	"github.com/rulego/bandmath/logger"
	"github.com/rulego/bandmath/raster"
	"github.com/rulego/bandmath/types"
)

// testProduct builds a 3x2 product with an int band "flags" (INVALID=1,
// LAND=2) and a double band "rad".
func testProduct(t *testing.T) *raster.Product {
	t.Helper()
	p := raster.NewProduct("test", 3, 2)

	flags := raster.NewBand("flags", raster.UInt8, 3, 2)
	require.NoError(t, flags.SetDataElems([]uint8{0, 1, 2, 3, 2, 0}))
	fc := raster.NewFlagCoding("flags")
	require.NoError(t, fc.AddFlag("INVALID", 1, "invalid pixel"))
	require.NoError(t, fc.AddFlag("LAND", 2, "land pixel"))
	require.NoError(t, flags.SetFlagCoding(fc))
	require.NoError(t, p.AddBand(flags))

	rad := raster.NewBand("rad", raster.Float32, 3, 2)
	require.NoError(t, rad.SetDataElems([]float32{0.5, 1.5, 2.5, -1, 4, 9}))
	require.NoError(t, p.AddBand(rad))
	return p
}

func quietEngine(opts ...Option) *Engine {
	return New(append([]Option{WithDiscardLog()}, opts...)...)
}

func TestEngineReadBitmaskExpr(t *testing.T) {
	ctx := context.Background()
	p := testProduct(t)
	tests := []struct {
		name       string
		expression string
		expected   []bool
	}{
		{"flag", "flags.LAND", []bool{false, false, true, true, true, false}},
		{"not flag", "not flags.INVALID", []bool{true, false, true, false, true, true}},
		{"band compare", "rad > 1.0", []bool{false, true, true, false, true, true}},
		{"combined", "flags.LAND && !flags.INVALID && sqrt(rad) >= 2", []bool{false, false, false, false, true, false}},
		{"always", "rad * 0 == 0", []bool{true, true, true, true, true, true}},
	}
	for _, simplify := range []bool{true, false} {
		engine := quietEngine(WithSimplify(simplify), WithWorkers(2))
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				out := make([]bool, 6)
				require.NoError(t, engine.ReadBitmaskExpr(ctx, p, 0, 0, 3, 2, tt.expression, out))
				assert.Equal(t, tt.expected, out)

				mask, err := engine.CreateValidMaskExpr(ctx, p, tt.expression)
				require.NoError(t, err)
				for i, set := range tt.expected {
					assert.Equal(t, set, mask.IsSet(i), "index %d", i)
				}
			})
		}
	}
}

func TestEngineParse(t *testing.T) {
	p := testProduct(t)

	simplified, err := quietEngine().Parse(p, "rad * 1.0 + 0.0 > 2")
	require.NoError(t, err)
	plain, err := quietEngine(WithSimplify(false)).Parse(p, "rad * 1.0 + 0.0 > 2")
	require.NoError(t, err)
	assert.NotEqual(t, plain.String(), simplified.String())
	assert.Equal(t, types.Bool, simplified.Type())

	_, err = quietEngine().Parse(p, "flags.WATER")
	assert.True(t, types.IsKind(err, types.ErrUnresolvedSymbol))
	_, err = quietEngine().Parse(p, "clamp01(rad) > 0")
	assert.True(t, types.IsKind(err, types.ErrUnresolvedFunction))

	_, err = quietEngine().Parse(p, "rad > 0 && flags.WATER || sqrt(ndvi) > 0.2 && flags.WATER")
	var perr *types.Error
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, types.ErrUnresolvedSymbol, perr.Kind)
	assert.Equal(t, "flags.WATER, ndvi", perr.Fragment)
	assert.Contains(t, perr.Error(), "undefined symbols: flags.WATER, ndvi")

	_, err = quietEngine().Parse(p, "rad # 2")
	assert.True(t, types.IsKind(err, types.ErrSyntax))
}

func TestEngineCustomFunctions(t *testing.T) {
	clamp := functions.NewCustomFunction("clamp01", "clamp to [0,1]", types.Double,
		[]types.Type{types.Double}, func(args []types.Value) (types.Value, error) {
			return types.DoubleValue(math.Min(1, math.Max(0, args[0].Double()))), nil
		})
	registry, err := functions.Builtin().With(clamp)
	require.NoError(t, err)

	engine := quietEngine(WithFunctions(registry))
	assert.Same(t, registry, engine.Functions())

	p := testProduct(t)
	out := make([]bool, 6)
	require.NoError(t, engine.ReadBitmaskExpr(context.Background(), p, 0, 0, 3, 2, "clamp01(rad) == 1.0", out))
	assert.Equal(t, []bool{false, true, true, false, true, true}, out)
}

func TestEngineReadBitmaskValues(t *testing.T) {
	engine := quietEngine()
	p := testProduct(t)
	expr, err := engine.Parse(p, "flags.LAND")
	require.NoError(t, err)

	out := make([]byte, 4)
	require.NoError(t, ReadBitmaskValues(context.Background(), engine, p, 1, 0, 2, 2, expr, out, byte(255), byte(0)))
	assert.Equal(t, []byte{0, 255, 255, 0}, out)
}

func TestEngineProgressAndErrors(t *testing.T) {
	engine := quietEngine(WithWorkers(4))
	p := testProduct(t)

	var rows []int
	mask, err := engine.CreateValidMaskExpr(context.Background(), p, "rad > 0",
		raster.WithProgress(func(done, total int) {
			assert.Equal(t, 2, total)
			rows = append(rows, done)
		}))
	require.NoError(t, err)
	assert.Equal(t, 5, mask.Count())
	assert.Equal(t, []int{1, 2}, rows)

	out := make([]bool, 6)
	err = engine.ReadBitmaskExpr(context.Background(), p, 0, 0, 3, 2, "rad + 1", out)
	assert.True(t, types.IsKind(err, types.ErrType))
	err = engine.ReadBitmaskExpr(context.Background(), p, 1, 1, 3, 2, "rad > 0", out)
	assert.True(t, types.IsKind(err, types.ErrRegion))
	_, err = engine.CreateValidMaskExpr(context.Background(), p, "rad >")
	assert.True(t, types.IsKind(err, types.ErrSyntax))
}

func TestEngineLogging(t *testing.T) {
	var buf bytes.Buffer
	engine := New(WithLogOutput(&buf, logger.DEBUG))
	p := testProduct(t)

	_, err := engine.CreateValidMaskExpr(context.Background(), p, "rad + 0.0 > 1")
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "simplified to")
	assert.Contains(t, buf.String(), "[raster] evaluating")
}
