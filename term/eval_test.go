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

package term

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rulego/bandmath/functions"
	"github.com/rulego/bandmath/types"
)

func TestEvalAtPixel(t *testing.T) {
	m := must(t)
	d, i := types.Double, types.Int
	samples := grid{
		0: {1.5, -2.0, 9.0},
		1: {int16(5), int16(4), int16(0)},
	}
	tests := []struct {
		name     string
		term     *Term
		expected []types.Value
	}{
		{"double arithmetic", m(NewAdd(d, m(NewMul(d, Two, x())), Half)),
			[]types.Value{types.DoubleValue(3.5), types.DoubleValue(-3.5), types.DoubleValue(18.5)}},
		{"int arithmetic", m(NewSub(i, m(NewMul(i, n(), n())), OneI)),
			[]types.Value{types.IntValue(24), types.IntValue(15), types.IntValue(-1)}},
		{"int division truncates", m(NewDiv(i, n(), TwoI)),
			[]types.Value{types.IntValue(2), types.IntValue(2), types.IntValue(0)}},
		{"mod", m(NewMod(i, n(), ConstI(3))),
			[]types.Value{types.IntValue(2), types.IntValue(1), types.IntValue(0)}},
		{"bitwise", m(NewOrI(m(NewAndI(n(), ConstI(4))), m(NewXOrI(n(), OneI)))),
			[]types.Value{types.IntValue(4), types.IntValue(5), types.IntValue(1)}},
		{"flag", NewRef(symFlag),
			[]types.Value{types.BoolValue(true), types.BoolValue(true), types.BoolValue(false)}},
		{"conv", m(NewAdd(d, m(ToDouble(n())), x())),
			[]types.Value{types.DoubleValue(6.5), types.DoubleValue(2), types.DoubleValue(9)}},
		{"truncate", m(NewUnary(KindConv, i, x())),
			[]types.Value{types.IntValue(1), types.IntValue(-2), types.IntValue(9)}},
		{"call", m(NewCall(functions.Sqrt, m(NewCall(functions.AbsD, x())))),
			[]types.Value{types.DoubleValue(math.Sqrt(1.5)), types.DoubleValue(math.Sqrt(2)), types.DoubleValue(3)}},
		{"cond", m(NewCond(d, m(NewBinary(KindGtD, 0, x(), Zero)), x(), m(NewNeg(x())))),
			[]types.Value{types.DoubleValue(1.5), types.DoubleValue(2), types.DoubleValue(9)}},
		{"compare int", m(NewBinary(KindGeI, 0, n(), ConstI(4))),
			[]types.Value{types.BoolValue(true), types.BoolValue(true), types.BoolValue(false)}},
		{"compare bool", m(NewBinary(KindNEqB, 0, NewRef(symFlag), True)),
			[]types.Value{types.BoolValue(false), types.BoolValue(false), types.BoolValue(true)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := NewEnv(samples)
			for index, expected := range tt.expected {
				got, err := Eval(tt.term, env.At(index, 0, index))
				require.NoError(t, err)
				require.Equal(t, expected.Type(), got.Type())
				if got.Type() == types.Double {
					assert.InDelta(t, expected.Double(), got.Double(), 1e-12, "pixel %d", index)
				} else {
					assert.Equal(t, expected, got, "pixel %d", index)
				}
			}
		})
	}
}

func TestEvalWidening(t *testing.T) {
	samples := grid{1: {int8(-7)}}
	env := NewEnv(samples).At(0, 0, 0)

	d, err := EvalD(n(), env)
	require.NoError(t, err)
	assert.Equal(t, -7.0, d)

	i, err := EvalI(ConstD(-2.9), nil)
	require.NoError(t, err)
	assert.Equal(t, int64(-2), i)

	s, err := EvalS(n(), env)
	require.NoError(t, err)
	assert.Equal(t, "-7", s)

	_, err = EvalB(n(), env)
	assert.True(t, types.IsKind(err, types.ErrType))
}

func TestEvalDoubleEdgeCases(t *testing.T) {
	m := must(t)
	d := types.Double

	v, err := EvalD(m(NewDiv(d, One, Zero)), nil)
	require.NoError(t, err)
	assert.True(t, math.IsInf(v, 1))

	v, err = EvalD(m(NewDiv(d, Zero, Zero)), nil)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(v))

	b, err := EvalB(m(NewBinary(KindEqD, 0, NaN, NaN)), nil)
	require.NoError(t, err)
	assert.False(t, b)
}

func TestEvalErrors(t *testing.T) {
	m := must(t)
	i := types.Int
	tests := []struct {
		name string
		term *Term
		env  *Env
		kind types.ErrorKind
	}{
		{"int division by zero", m(NewDiv(i, OneI, ZeroI)), nil, types.ErrArithmetic},
		{"int modulo by zero", m(NewMod(i, n(), m(NewSub(i, n(), n())))), NewEnv(grid{1: {3}}), types.ErrArithmetic},
		{"no position", x(), nil, types.ErrNoContext},
		{"no samples", NewRef(symFlag), NewEnv(nil), types.ErrNoContext},
		{"sample failure", x(), NewEnv(grid{}), types.ErrSample},
		{"flag on text", NewRef(symFlag), NewEnv(grid{1: {"abc"}}), types.ErrSample},
		{"assign without env", m(NewAssign(NewRef(symV), One)), nil, types.ErrNoContext},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Eval(tt.term, tt.env)
			require.Error(t, err)
			assert.True(t, types.IsKind(err, tt.kind), "unexpected error %v", err)
		})
	}
}

func TestLogicalOperatorsEvaluateBothSides(t *testing.T) {
	m := must(t)
	failing := m(NewBinary(KindEqI, 0, m(NewDiv(types.Int, OneI, ZeroI)), ZeroI))

	_, err := EvalB(m(NewAndB(False, failing)), nil)
	assert.True(t, types.IsKind(err, types.ErrArithmetic))
	_, err = EvalB(m(NewOrB(True, failing)), nil)
	assert.True(t, types.IsKind(err, types.ErrArithmetic))
}

func TestEvalVariables(t *testing.T) {
	m := must(t)
	d := types.Double
	v := NewRef(symV)

	env := NewEnv(grid{0: {4.0}}).At(0, 0, 0)
	got, err := EvalD(v, env)
	require.NoError(t, err)
	assert.Equal(t, -1.0, got)

	// (v = x * 2) + v
	assign := m(NewAssign(v, m(NewMul(d, x(), Two))))
	got, err = EvalD(m(NewAdd(d, assign, v)), env)
	require.NoError(t, err)
	assert.Equal(t, 16.0, got)

	value, ok := env.Variable("v")
	require.True(t, ok)
	assert.Equal(t, 8.0, value.Double())

	env.Reset()
	_, ok = env.Variable("v")
	assert.False(t, ok)
	assert.Equal(t, -1.0, symV.Value().Double())
}
