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

	"github.com/rulego/bandmath/types"
)

var (
	dd  = []types.Type{types.Double}
	ddd = []types.Type{types.Double, types.Double}
	ii  = []types.Type{types.Int}
	iii = []types.Type{types.Int, types.Int}
)

// mathD1 wraps a unary float64 function
func mathD1(id FunctionID, name, description string, fn func(float64) float64) *Function {
	return NewFunction(id, name, TypeMath, description, types.Double, dd,
		func(args []types.Value) (types.Value, error) {
			return types.DoubleValue(fn(args[0].Double())), nil
		})
}

// mathD2 wraps a binary float64 function
func mathD2(id FunctionID, name, description string, fn func(float64, float64) float64) *Function {
	return NewFunction(id, name, TypeMath, description, types.Double, ddd,
		func(args []types.Value) (types.Value, error) {
			return types.DoubleValue(fn(args[0].Double(), args[1].Double())), nil
		})
}

// mathI1 wraps a unary int64 function
func mathI1(id FunctionID, name, description string, fn func(int64) int64) *Function {
	return NewFunction(id, name, TypeMath, description, types.Int, ii,
		func(args []types.Value) (types.Value, error) {
			return types.IntValue(fn(args[0].Int())), nil
		})
}

// mathI2 wraps a binary int64 function
func mathI2(id FunctionID, name, description string, fn func(int64, int64) int64) *Function {
	return NewFunction(id, name, TypeMath, description, types.Int, iii,
		func(args []types.Value) (types.Value, error) {
			return types.IntValue(fn(args[0].Int(), args[1].Int())), nil
		})
}

var (
	Sin   = mathD1(IDSin, "sin", "Calculate sine", math.Sin)
	Cos   = mathD1(IDCos, "cos", "Calculate cosine", math.Cos)
	Tan   = mathD1(IDTan, "tan", "Calculate tangent", math.Tan)
	Asin  = mathD1(IDAsin, "asin", "Calculate arcsine value", math.Asin)
	Acos  = mathD1(IDAcos, "acos", "Calculate arccosine value", math.Acos)
	Atan  = mathD1(IDAtan, "atan", "计算反正切值", math.Atan)
	Atan2 = mathD2(IDAtan2, "atan2", "计算两个参数的反正切值", math.Atan2)
	Log   = mathD1(IDLog, "log", "Natural logarithm", math.Log)
	Log10 = mathD1(IDLog10, "log10", "Base 10 logarithm", math.Log10)
	Exp   = mathD1(IDExp, "exp", "e raised to the argument", math.Exp)
	Exp10 = mathD1(IDExp10, "exp10", "10 raised to the argument", func(x float64) float64 {
		return math.Pow(10, x)
	})
	Sqr = mathD1(IDSqr, "sqr", "Square of the argument", func(x float64) float64 {
		return x * x
	})
	// Sqrt follows IEEE semantics: negative arguments give NaN
	Sqrt  = mathD1(IDSqrt, "sqrt", "Calculate square root", math.Sqrt)
	Pow   = mathD2(IDPow, "pow", "First argument raised to the second", math.Pow)
	AbsD  = mathD1(IDAbsD, "abs", "Calculate absolute value", math.Abs)
	AbsI  = mathI1(IDAbsI, "abs", "Calculate absolute value", absInt)
	SignD = mathD1(IDSignD, "sign", "Sign of the argument (-1, 0, 1)", signDouble)
	SignI = mathI1(IDSignI, "sign", "Sign of the argument (-1, 0, 1)", signInt)
	MinD  = mathD2(IDMinD, "min", "Smaller of two values", math.Min)
	MinI  = mathI2(IDMinI, "min", "Smaller of two values", func(a, b int64) int64 {
		if a < b {
			return a
		}
		return b
	})
	MaxD = mathD2(IDMaxD, "max", "Larger of two values", math.Max)
	MaxI = mathI2(IDMaxI, "max", "Larger of two values", func(a, b int64) int64 {
		if a > b {
			return a
		}
		return b
	})
	Floor = mathD1(IDFloor, "floor", "Round down", math.Floor)
	Ceil  = mathD1(IDCeil, "ceil", "Round up", math.Ceil)
	Round = mathD1(IDRound, "round", "Round half away from zero", math.Round)
	Rint  = mathD1(IDRint, "rint", "Round half to even", math.RoundToEven)
	Deg   = mathD1(IDDeg, "deg", "Radians to degrees", func(x float64) float64 {
		return x * 180.0 / math.Pi
	})
	Rad = mathD1(IDRad, "rad", "Degrees to radians", func(x float64) float64 {
		return x * math.Pi / 180.0
	})

	// NaNTest 判断是否为NaN
	NaNTest = NewFunction(IDNaN, "nan", TypeCompare, "True if the argument is NaN", types.Bool, dd,
		func(args []types.Value) (types.Value, error) {
			return types.BoolValue(math.IsNaN(args[0].Double())), nil
		})
	// InfTest 判断是否为无穷大
	InfTest = NewFunction(IDInf, "inf", TypeCompare, "True if the argument is infinite", types.Bool, dd,
		func(args []types.Value) (types.Value, error) {
			return types.BoolValue(math.IsInf(args[0].Double(), 0)), nil
		})
	// Feq compares two doubles within the engine epsilon
	Feq = NewFunction(IDFeq, "feq", TypeCompare, "Equality within 1e-10", types.Bool, ddd,
		func(args []types.Value) (types.Value, error) {
			return types.BoolValue(math.Abs(args[0].Double()-args[1].Double()) < 1e-10), nil
		})
	// BitSet tests bit n (0-based) of an integer sample
	BitSet = NewFunction(IDBitSet, "bit_set", TypeBit, "True if bit n of the value is set", types.Bool, iii,
		func(args []types.Value) (types.Value, error) {
			n := args[1].Int()
			if n < 0 || n > 63 {
				return types.BoolValue(false), nil
			}
			return types.BoolValue(args[0].Int()&(int64(1)<<uint(n)) != 0), nil
		})
)

func absInt(x int64) int64 {
	if x < 0 {
		return -x
	}
	return x
}

func signInt(x int64) int64 {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	default:
		return 0
	}
}

func signDouble(x float64) float64 {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	default:
		// keeps NaN and signed zero
		return x
	}
}

// Builtins returns all built-in function descriptors
func Builtins() []*Function {
	return []*Function{
		Sin, Cos, Tan, Asin, Acos, Atan, Atan2,
		Log, Log10, Exp, Exp10, Sqr, Sqrt, Pow,
		AbsI, AbsD, SignI, SignD, MinI, MinD, MaxI, MaxD,
		Floor, Ceil, Round, Rint, Deg, Rad,
		NaNTest, InfTest, Feq, BitSet,
	}
}
