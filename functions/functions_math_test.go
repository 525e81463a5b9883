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

package functions

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rulego/bandmath/types"
)

func d(v float64) types.Value { return types.DoubleValue(v) }
func i(v int64) types.Value   { return types.IntValue(v) }

func TestMathFunctions(t *testing.T) {
	tests := []struct {
		fn       *Function
		args     []types.Value
		expected types.Value
	}{
		{Sqrt, []types.Value{d(16)}, d(4)},
		{Sqr, []types.Value{d(-3)}, d(9)},
		{Pow, []types.Value{d(2), d(10)}, d(1024)},
		{Exp, []types.Value{d(0)}, d(1)},
		{Log, []types.Value{d(math.E)}, d(1)},
		{Log10, []types.Value{d(1000)}, d(3)},
		{Exp10, []types.Value{d(2)}, d(100)},
		{AbsD, []types.Value{d(-2.5)}, d(2.5)},
		{AbsI, []types.Value{i(-7)}, i(7)},
		{SignD, []types.Value{d(-0.1)}, d(-1)},
		{SignI, []types.Value{i(0)}, i(0)},
		{SignI, []types.Value{i(42)}, i(1)},
		{MinD, []types.Value{d(1.5), d(-1)}, d(-1)},
		{MinI, []types.Value{i(3), i(2)}, i(2)},
		{MaxD, []types.Value{d(1.5), d(-1)}, d(1.5)},
		{MaxI, []types.Value{i(3), i(2)}, i(3)},
		{Floor, []types.Value{d(-1.5)}, d(-2)},
		{Ceil, []types.Value{d(-1.5)}, d(-1)},
		{Round, []types.Value{d(2.5)}, d(3)},
		{Rint, []types.Value{d(2.5)}, d(2)},
		{Deg, []types.Value{d(math.Pi)}, d(180)},
		{Rad, []types.Value{d(180)}, d(math.Pi)},
		{Atan2, []types.Value{d(1), d(1)}, d(math.Pi / 4)},
		{NaNTest, []types.Value{d(math.NaN())}, types.BoolValue(true)},
		{NaNTest, []types.Value{d(1)}, types.BoolValue(false)},
		{InfTest, []types.Value{d(math.Inf(-1))}, types.BoolValue(true)},
		{Feq, []types.Value{d(0.1 + 0.2), d(0.3)}, types.BoolValue(true)},
		{Feq, []types.Value{d(0.1), d(0.1001)}, types.BoolValue(false)},
		{BitSet, []types.Value{i(5), i(2)}, types.BoolValue(true)},
		{BitSet, []types.Value{i(5), i(1)}, types.BoolValue(false)},
		{BitSet, []types.Value{i(5), i(64)}, types.BoolValue(false)},
	}
	for _, tt := range tests {
		t.Run(tt.fn.Signature(), func(t *testing.T) {
			got, err := tt.fn.Call(tt.args)
			require.NoError(t, err)
			require.Equal(t, tt.expected.Type(), got.Type())
			require.Equal(t, tt.fn.RetType(), got.Type())
			switch got.Type() {
			case types.Double:
				assert.InDelta(t, tt.expected.Double(), got.Double(), 1e-12)
			default:
				assert.Equal(t, tt.expected, got)
			}
		})
	}
}

func TestSignDoubleKeepsNaN(t *testing.T) {
	got, err := SignD.Call([]types.Value{d(math.NaN())})
	require.NoError(t, err)
	assert.True(t, math.IsNaN(got.Double()))
}

func TestBuiltinsDistinctIDs(t *testing.T) {
	seen := map[FunctionID]bool{}
	for _, fn := range Builtins() {
		assert.NotEqual(t, IDCustom, fn.ID(), fn.Signature())
		assert.False(t, seen[fn.ID()], "duplicate id for %s", fn.Signature())
		seen[fn.ID()] = true
	}
}
