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

	"github.com/rulego/bandmath/functions"
	"github.com/rulego/bandmath/types"
)

// ConstB creates a boolean literal
func ConstB(b bool) *Term {
	return &Term{kind: KindConstB, typ: types.Bool, value: types.BoolValue(b), isConst: true}
}

// ConstI creates an integer literal
func ConstI(i int64) *Term {
	return &Term{kind: KindConstI, typ: types.Int, value: types.IntValue(i), isConst: true}
}

// ConstD creates a double literal
func ConstD(d float64) *Term {
	return &Term{kind: KindConstD, typ: types.Double, value: types.DoubleValue(d), isConst: true}
}

// ConstS creates a string literal
func ConstS(s string) *Term {
	return &Term{kind: KindConstS, typ: types.String, value: types.StringValue(s), isConst: true}
}

// 常用常量
var (
	True     = ConstB(true)
	False    = ConstB(false)
	ZeroI    = ConstI(0)
	OneI     = ConstI(1)
	TwoI     = ConstI(2)
	Zero     = ConstD(0)
	Half     = ConstD(0.5)
	One      = ConstD(1)
	Two      = ConstD(2)
	MinusOne = ConstD(-1)
	NaN      = ConstD(math.NaN())
)

// Const creates the literal matching v's type
func Const(v types.Value) *Term {
	switch v.Type() {
	case types.Bool:
		return ConstB(v.Bool())
	case types.Int:
		return ConstI(v.Int())
	case types.Double:
		return ConstD(v.Double())
	default:
		return ConstS(v.Str())
	}
}

// NewRef creates a reference to sym
func NewRef(sym *Symbol) *Term {
	return &Term{kind: KindRef, typ: sym.typ, sym: sym, isConst: sym.IsConst()}
}

func typeError(fragment string, format string, args ...interface{}) error {
	return types.NewError(types.ErrType, fragment, format, args...)
}

// NewCall creates a function call after checking arity and argument types
func NewCall(fn *functions.Function, args ...*Term) (*Term, error) {
	argTypes := make([]types.Type, len(args))
	for i, a := range args {
		argTypes[i] = a.typ
	}
	if err := fn.Validate(argTypes); err != nil {
		return nil, err
	}
	t := newNode(KindCall, fn.RetType(), append([]*Term(nil), args...)...)
	t.fn = fn
	return t, nil
}

// NewCond creates the ternary cond ? x : y of type typ
func NewCond(typ types.Type, cond, x, y *Term) (*Term, error) {
	if !cond.IsB() {
		return nil, typeError(cond.String(), "condition must be boolean, got %s", cond.typ)
	}
	if x.typ != typ || y.typ != typ {
		return nil, typeError(x.String(), "branches of a %s conditional must be %s, got %s and %s", typ, typ, x.typ, y.typ)
	}
	return newNode(KindCond, typ, cond, x, y), nil
}

// NewAssign creates ref = value. ref must reference a variable.
func NewAssign(ref, value *Term) (*Term, error) {
	if ref.kind != KindRef || ref.sym.kind != SymbolVariable {
		return nil, typeError(ref.String(), "left side of an assignment must be a variable")
	}
	if ref.typ != value.typ {
		return nil, typeError(ref.String(), "cannot assign %s to %s variable", value.typ, ref.typ)
	}
	t := newNode(KindAssign, ref.typ, ref, value)
	t.sym = ref.sym
	t.isConst = false
	return t, nil
}

// NewUnary creates NotB, NotI, Neg or Conv. For NotB and NotI typ is
// implied and may be passed as types.Invalid.
func NewUnary(kind Kind, typ types.Type, arg *Term) (*Term, error) {
	switch kind {
	case KindNotB:
		if !arg.IsB() {
			return nil, typeError(arg.String(), "operand of ! must be boolean, got %s", arg.typ)
		}
		return newNode(kind, types.Bool, arg), nil
	case KindNotI:
		if !arg.IsI() {
			return nil, typeError(arg.String(), "operand of ~ must be int, got %s", arg.typ)
		}
		return newNode(kind, types.Int, arg), nil
	case KindNeg:
		if !typ.IsNumeric() || arg.typ != typ {
			return nil, typeError(arg.String(), "operand of %s negation must be %s, got %s", typ, typ, arg.typ)
		}
		return newNode(kind, typ, arg), nil
	case KindConv:
		if !typ.IsNumeric() || !arg.IsNumeric() || arg.typ == typ {
			return nil, typeError(arg.String(), "cannot convert %s to %s", arg.typ, typ)
		}
		return newNode(kind, typ, arg), nil
	default:
		return nil, typeError(kind.String(), "%s is not a unary operator", kind)
	}
}

// NewBinary creates a binary operator node. typ is the result type for the
// arithmetic kinds (Add, Sub, Mul, Div, Mod); it is implied for the others.
// Both operands must already have the operand type of the operator.
func NewBinary(kind Kind, typ types.Type, a, b *Term) (*Term, error) {
	switch {
	case kind >= KindAdd && kind <= KindMod:
		if !typ.IsNumeric() {
			return nil, typeError(kind.String(), "arithmetic result must be numeric, got %s", typ)
		}
		if a.typ != typ || b.typ != typ {
			return nil, typeError(a.String(), "operands of %s %s must be %s, got %s and %s", typ, kind, typ, a.typ, b.typ)
		}
		return newNode(kind, typ, a, b), nil
	case kind == KindAndB || kind == KindOrB:
		if !a.IsB() || !b.IsB() {
			return nil, typeError(a.String(), "operands of %s must be boolean, got %s and %s", kind, a.typ, b.typ)
		}
		return newNode(kind, types.Bool, a, b), nil
	case kind == KindAndI || kind == KindOrI || kind == KindXOrI:
		if !a.IsI() || !b.IsI() {
			return nil, typeError(a.String(), "operands of %s must be int, got %s and %s", kind, a.typ, b.typ)
		}
		return newNode(kind, types.Int, a, b), nil
	case kind.IsComparison():
		want := comparisonOperandType(kind)
		if a.typ != want || b.typ != want {
			return nil, typeError(a.String(), "operands of %s must be %s, got %s and %s", kind, want, a.typ, b.typ)
		}
		return newNode(kind, types.Bool, a, b), nil
	default:
		return nil, typeError(kind.String(), "%s is not a binary operator", kind)
	}
}

func NewNotB(a *Term) (*Term, error)    { return NewUnary(KindNotB, types.Bool, a) }
func NewNotI(a *Term) (*Term, error)    { return NewUnary(KindNotI, types.Int, a) }
func NewAndB(a, b *Term) (*Term, error) { return NewBinary(KindAndB, types.Bool, a, b) }
func NewOrB(a, b *Term) (*Term, error)  { return NewBinary(KindOrB, types.Bool, a, b) }
func NewAndI(a, b *Term) (*Term, error) { return NewBinary(KindAndI, types.Int, a, b) }
func NewOrI(a, b *Term) (*Term, error)  { return NewBinary(KindOrI, types.Int, a, b) }
func NewXOrI(a, b *Term) (*Term, error) { return NewBinary(KindXOrI, types.Int, a, b) }

// NewNeg creates -a with a's type
func NewNeg(a *Term) (*Term, error) { return NewUnary(KindNeg, a.typ, a) }

// NewAdd creates a + b of type typ
func NewAdd(typ types.Type, a, b *Term) (*Term, error) { return NewBinary(KindAdd, typ, a, b) }

// NewSub creates a - b of type typ
func NewSub(typ types.Type, a, b *Term) (*Term, error) { return NewBinary(KindSub, typ, a, b) }

// NewMul creates a * b of type typ
func NewMul(typ types.Type, a, b *Term) (*Term, error) { return NewBinary(KindMul, typ, a, b) }

// NewDiv creates a / b of type typ
func NewDiv(typ types.Type, a, b *Term) (*Term, error) { return NewBinary(KindDiv, typ, a, b) }

// NewMod creates a % b of type typ
func NewMod(typ types.Type, a, b *Term) (*Term, error) { return NewBinary(KindMod, typ, a, b) }

// ToDouble converts an Int term to Double. Literals are converted directly,
// Double terms are returned unchanged.
func ToDouble(a *Term) (*Term, error) {
	switch {
	case a.IsD():
		return a, nil
	case a.kind == KindConstI:
		return ConstD(float64(a.value.Int())), nil
	default:
		return NewUnary(KindConv, types.Double, a)
	}
}

// Rebuild creates a term of the same kind and type as t with new operands.
// It is how rewriting passes replace operands without knowing every variant.
func Rebuild(t *Term, args ...*Term) (*Term, error) {
	switch t.kind {
	case KindConstB, KindConstI, KindConstD, KindConstS, KindRef:
		return t, nil
	case KindCall:
		return NewCall(t.fn, args...)
	case KindCond:
		return NewCond(t.typ, args[0], args[1], args[2])
	case KindAssign:
		return NewAssign(args[0], args[1])
	case KindNotB, KindNotI, KindNeg, KindConv:
		return NewUnary(t.kind, t.typ, args[0])
	default:
		return NewBinary(t.kind, t.typ, args[0], args[1])
	}
}

// Refs returns the distinct symbols referenced by t in first-seen order.
func Refs(t *Term) []*Symbol {
	var result []*Symbol
	seen := make(map[*Symbol]bool)
	var walk func(*Term)
	walk = func(n *Term) {
		if n.sym != nil && !seen[n.sym] {
			seen[n.sym] = true
			result = append(result, n.sym)
		}
		for _, a := range n.args {
			walk(a)
		}
	}
	walk(t)
	return result
}
