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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rulego/bandmath/types"
)

func TestBuiltinLookup(t *testing.T) {
	r := Builtin()
	tests := []struct {
		name  string
		argc  int
		count int
		kind  types.ErrorKind
		fails bool
	}{
		{name: "sqrt", argc: 1, count: 1},
		{name: "SQRT", argc: 1, count: 1},
		{name: "Abs", argc: 1, count: 2},
		{name: "min", argc: 2, count: 2},
		{name: "pow", argc: 2, count: 1},
		{name: "sqrt", argc: 2, fails: true, kind: types.ErrArity},
		{name: "cbrt", argc: 1, fails: true, kind: types.ErrUnresolvedFunction},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fns, err := r.Lookup(tt.name, tt.argc)
			if tt.fails {
				assert.True(t, types.IsKind(err, tt.kind), "unexpected error %v", err)
				return
			}
			require.NoError(t, err)
			assert.Len(t, fns, tt.count)
		})
	}
}

func TestRegistryResolve(t *testing.T) {
	r := Builtin()
	tests := []struct {
		name     string
		args     []types.Type
		expected *Function
		kind     types.ErrorKind
	}{
		{"abs", []types.Type{types.Int}, AbsI, 0},
		{"abs", []types.Type{types.Double}, AbsD, 0},
		{"min", []types.Type{types.Int, types.Int}, MinI, 0},
		{"min", []types.Type{types.Double, types.Double}, MinD, 0},
		{"min", []types.Type{types.Int, types.Double}, MinD, 0},
		{"sqrt", []types.Type{types.Int}, Sqrt, 0},
		{"bit_set", []types.Type{types.Int, types.Int}, BitSet, 0},
		{"sqrt", []types.Type{types.Bool}, nil, types.ErrType},
		{"bit_set", []types.Type{types.Double, types.Int}, nil, types.ErrType},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fn, err := r.Resolve(tt.name, tt.args)
			if tt.expected == nil {
				assert.True(t, types.IsKind(err, tt.kind), "unexpected error %v", err)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.expected.Same(fn), "got %s", fn.Signature())
		})
	}
}

func TestRegistryWith(t *testing.T) {
	ndvi := NewCustomFunction("ndvi", "normalized difference", types.Double,
		[]types.Type{types.Double, types.Double}, func(args []types.Value) (types.Value, error) {
			a, b := args[0].Double(), args[1].Double()
			return types.DoubleValue((a - b) / (a + b)), nil
		})

	r, err := Builtin().With(ndvi)
	require.NoError(t, err)
	assert.Len(t, r.List(), len(Builtins())+1)
	assert.Len(t, Builtin().List(), len(Builtins()))

	fn, err := r.Resolve("NDVI", []types.Type{types.Double, types.Double})
	require.NoError(t, err)
	assert.Equal(t, IDCustom, fn.ID())
	v, err := fn.Call([]types.Value{types.DoubleValue(3), types.DoubleValue(1)})
	require.NoError(t, err)
	assert.Equal(t, 0.5, v.Double())

	// 同名同签名重复注册
	_, err = r.With(ndvi)
	assert.True(t, types.IsKind(err, types.ErrType))

	// 同名不同签名是重载
	overload := NewCustomFunction("sqrt", "", types.Int, []types.Type{types.Int}, nil)
	r, err = Builtin().With(overload)
	require.NoError(t, err)
	fn, err = r.Resolve("sqrt", []types.Type{types.Int})
	require.NoError(t, err)
	assert.True(t, overload.Same(fn))
	_, err = fn.Call([]types.Value{types.IntValue(4)})
	assert.Error(t, err)

	_, err = NewRegistry(NewCustomFunction("", "", types.Int, nil, nil))
	assert.True(t, types.IsKind(err, types.ErrUnresolvedFunction))
}

func TestRegistryByID(t *testing.T) {
	fn, ok := Builtin().ByID(IDPow)
	require.True(t, ok)
	assert.Same(t, Pow, fn)
	_, ok = Builtin().ByID(IDCustom)
	assert.False(t, ok)
}

func TestFunctionDescriptor(t *testing.T) {
	assert.Equal(t, "min(int, int) int", MinI.Signature())
	assert.Equal(t, "sqrt(double) double", Sqrt.Signature())
	assert.Equal(t, 2, Pow.Arity())
	assert.Equal(t, TypeMath, Pow.GetType())
	assert.False(t, AbsI.Same(AbsD))
	assert.True(t, AbsD.Same(AbsD))

	assert.NoError(t, Pow.Validate([]types.Type{types.Double, types.Double}))
	assert.True(t, types.IsKind(Pow.Validate([]types.Type{types.Double}), types.ErrArity))
	assert.True(t, types.IsKind(Pow.Validate([]types.Type{types.Int, types.Double}), types.ErrType))

	argTypes := Pow.ArgTypes()
	argTypes[0] = types.Bool
	assert.Equal(t, types.Double, Pow.ArgType(0))
}
