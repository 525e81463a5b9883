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

package raster

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rulego/bandmath/term"
	"github.com/rulego/bandmath/types"
)

func TestProductBands(t *testing.T) {
	p := NewProduct("P", 2, 2)
	a := NewBand("a", Int16, 2, 2)
	require.NoError(t, p.AddBand(a))
	assert.Same(t, p, a.Product())

	assert.True(t, types.IsKind(p.AddBand(NewBand("small", Int16, 1, 2)), types.ErrRegion))
	assert.Error(t, p.AddBand(NewBand("a", Int8, 2, 2)))
	assert.Error(t, NewProduct("Q", 2, 2).AddBand(a))

	require.NoError(t, p.AddBand(NewBand("b", Float32, 2, 2)))
	names := []string{}
	for _, b := range p.Bands() {
		names = append(names, b.Name())
	}
	assert.Equal(t, []string{"a", "b"}, names)

	assert.True(t, p.RemoveBand("a"))
	assert.False(t, p.RemoveBand("a"))
	assert.Nil(t, a.Product())
	_, ok := p.Band("a")
	assert.False(t, ok)

	// a removed band can join another product
	require.NoError(t, NewProduct("Q", 2, 2).AddBand(a))
}

func TestProductSymbols(t *testing.T) {
	p := flagsProduct(t, UInt16)
	require.NoError(t, p.AddBand(NewBand("radiance", Float32, 4, 4)))

	byName := map[string]*term.Symbol{}
	for _, sym := range p.Symbols() {
		byName[sym.Name()] = sym
	}
	require.Len(t, byName, 5)

	assert.Equal(t, term.SymbolSample, byName["flags"].Kind())
	assert.Equal(t, types.Int, byName["flags"].Type())
	assert.Equal(t, types.Double, byName["radiance"].Type())
	assert.Equal(t, term.SymbolFlag, byName["flags.F3"].Kind())
	assert.Equal(t, types.Bool, byName["flags.F3"].Type())
	assert.Equal(t, int64(f3), byName["flags.F3"].Mask())
	assert.Same(t, p, byName["flags.F3"].Owner())

	mask, id, err := p.LookupFlag("flags", "F2")
	require.NoError(t, err)
	assert.Equal(t, int64(f2), mask)
	assert.Equal(t, byName["flags"].SampleID(), id)

	_, _, err = p.LookupFlag("flags", "F9")
	assert.True(t, types.IsKind(err, types.ErrUnresolvedSymbol))
	_, _, err = p.LookupFlag("radiance", "F1")
	assert.True(t, types.IsKind(err, types.ErrUnresolvedSymbol))
	_, _, err = p.LookupFlag("nope", "F1")
	assert.True(t, types.IsKind(err, types.ErrUnresolvedSymbol))
}

func TestProductSample(t *testing.T) {
	p := flagsProduct(t, Int8)
	v, err := p.Sample(0, 6)
	require.NoError(t, err)
	assert.Equal(t, int8(f1+f2), v)

	_, err = p.Sample(42, 0)
	assert.Error(t, err)
}

func TestProductParseExpression(t *testing.T) {
	p := flagsProduct(t, Int8)
	radiance := NewBand("radiance", Float64, 4, 4)
	for i := 0; i < 16; i++ {
		require.NoError(t, radiance.SetPixel(i%4, i/4, float64(i)*0.5))
	}
	require.NoError(t, p.AddBand(radiance))

	expr, err := p.ParseExpression("radiance > 3.0 && !flags.F1")
	require.NoError(t, err)
	assert.Equal(t, types.Bool, expr.Type())

	out := make([]bool, 16)
	require.NoError(t, p.ReadBitmask(context.Background(), 0, 0, 4, 4, expr, out, quiet()))
	for i := 0; i < 16; i++ {
		expected := float64(i)*0.5 > 3.0 && flagElems[i]&f1 == 0
		assert.Equal(t, expected, out[i], "index %d", i)
	}

	_, err = p.ParseExpression("radiance.F1")
	assert.True(t, types.IsKind(err, types.ErrUnresolvedSymbol))
	_, err = p.ParseExpression("flags.F1 AND (")
	assert.True(t, types.IsKind(err, types.ErrSyntax))
}
