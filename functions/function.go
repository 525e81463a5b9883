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
	"fmt"

	"github.com/rulego/bandmath/types"
)

// FunctionType 函数类型枚举
type FunctionType string

const (
	// 数学函数
	TypeMath FunctionType = "math"
	// 位运算函数
	TypeBit FunctionType = "bit"
	// 比较函数
	TypeCompare FunctionType = "compare"
	// 用户自定义函数
	TypeCustom FunctionType = "custom"
)

// FunctionID identifies a function descriptor by value. Built-ins have
// their own ID; every user function shares IDCustom and is told apart by
// name and signature.
type FunctionID int

const (
	IDUnknown FunctionID = iota
	IDSin
	IDCos
	IDTan
	IDAsin
	IDAcos
	IDAtan
	IDAtan2
	IDLog
	IDLog10
	IDExp
	IDExp10
	IDSqr
	IDSqrt
	IDPow
	IDAbsI
	IDAbsD
	IDSignI
	IDSignD
	IDMinI
	IDMinD
	IDMaxI
	IDMaxD
	IDFloor
	IDCeil
	IDRound
	IDRint
	IDDeg
	IDRad
	IDNaN
	IDInf
	IDFeq
	IDBitSet
	IDCustom
)

// Impl evaluates a function. Arguments arrive already typed according to
// the descriptor's ArgTypes. Implementations must be pure.
type Impl func(args []types.Value) (types.Value, error)

// Function 函数描述符
type Function struct {
	*BaseFunction
	id       FunctionID
	retType  types.Type
	argTypes []types.Type
	impl     Impl
}

// NewFunction creates a function descriptor with a fixed signature
func NewFunction(id FunctionID, name string, fnType FunctionType, description string,
	retType types.Type, argTypes []types.Type, impl Impl) *Function {
	n := len(argTypes)
	return &Function{
		BaseFunction: NewBaseFunction(name, fnType, description, n, n),
		id:           id,
		retType:      retType,
		argTypes:     append([]types.Type(nil), argTypes...),
		impl:         impl,
	}
}

// NewCustomFunction 创建自定义函数
//
// Example:
//
//	clamp := functions.NewCustomFunction("clamp01", "clamp to [0,1]", types.Double,
//		[]types.Type{types.Double}, func(args []types.Value) (types.Value, error) {
//			return types.DoubleValue(math.Min(1, math.Max(0, args[0].Double()))), nil
//		})
func NewCustomFunction(name, description string, retType types.Type, argTypes []types.Type, impl Impl) *Function {
	return NewFunction(IDCustom, name, TypeCustom, description, retType, argTypes, impl)
}

func (f *Function) ID() FunctionID { return f.id }

// Name returns the function name as registered
func (f *Function) Name() string { return f.GetName() }

// RetType is the declared result type of every call
func (f *Function) RetType() types.Type { return f.retType }

// ArgTypes returns a copy of the declared argument types
func (f *Function) ArgTypes() []types.Type {
	return append([]types.Type(nil), f.argTypes...)
}

// ArgType returns the declared type of argument i
func (f *Function) ArgType(i int) types.Type { return f.argTypes[i] }

func (f *Function) Arity() int { return len(f.argTypes) }

// Validate checks argument count and types against the signature
func (f *Function) Validate(args []types.Type) error {
	if err := f.ValidateArgCount(len(args)); err != nil {
		return err
	}
	for i, t := range args {
		if t != f.argTypes[i] {
			return types.NewError(types.ErrType, f.GetName(),
				"argument %d of %s must be %s, got %s", i+1, f.GetName(), f.argTypes[i], t)
		}
	}
	return nil
}

// Call 执行函数
func (f *Function) Call(args []types.Value) (types.Value, error) {
	if f.impl == nil {
		return types.Value{}, fmt.Errorf("function %s has no implementation", f.GetName())
	}
	return f.impl(args)
}

// Signature prints name(argtypes) -> ret
func (f *Function) Signature() string {
	s := f.GetName() + "("
	for i, t := range f.argTypes {
		if i > 0 {
			s += ", "
		}
		s += t.String()
	}
	return s + ") " + f.retType.String()
}

// Same reports whether f and other describe the same function. Descriptors
// are compared by ID and signature, never by pointer.
func (f *Function) Same(other *Function) bool {
	if f == nil || other == nil {
		return f == other
	}
	return f.id == other.id && f.Signature() == other.Signature()
}
