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

package simplify

import (
	"math"

	"github.com/rulego/bandmath/functions"
	"github.com/rulego/bandmath/namespace"
	"github.com/rulego/bandmath/term"
	"github.com/rulego/bandmath/types"
)

// Simplify returns a canonical term that evaluates like t wherever t is
// defined. It never fails: a rule whose preconditions cannot be established
// (for instance because folding would need a sample) is simply not applied.
// Simplify is idempotent and returns new trees, unchanged sub-trees are
// shared with t.
func Simplify(t *term.Term) *term.Term {
	return apply(t)
}

// SimplifyAll simplifies every term of ts
func SimplifyAll(ts ...*term.Term) []*term.Term {
	result := make([]*term.Term, len(ts))
	for i, t := range ts {
		result[i] = apply(t)
	}
	return result
}

func apply(t *term.Term) *term.Term {
	switch t.Kind() {
	case term.KindConstB, term.KindConstI, term.KindConstS, term.KindRef:
		return t
	case term.KindConstD:
		// only literals that name a constant are replaced
		if c := tryEvalToConst(t); c != nil && (c.Kind() != term.KindConstD || c.Value().Double() != t.Value().Double()) {
			return c
		}
		return t
	case term.KindCall:
		return simpCall(t)
	case term.KindCond:
		return simpCond(t)
	case term.KindAssign:
		return rebuild(t, t.Arg(0), apply(t.Arg(1)))
	case term.KindNotB, term.KindAndB, term.KindOrB,
		term.KindNotI, term.KindXOrI, term.KindAndI, term.KindOrI:
		return simpFoldable(t)
	case term.KindNeg:
		return simpNeg(t)
	case term.KindAdd:
		return simpAdd(t)
	case term.KindSub:
		return simpSub(t)
	case term.KindMul:
		return simpMul(t)
	case term.KindDiv:
		return simpDiv(t)
	case term.KindMod:
		// modulo has no safe general rewrite
		return rebuild(t, apply(t.Arg(0)), apply(t.Arg(1)))
	case term.KindConv:
		return simpConv(t)
	}
	if t.Kind().IsComparison() {
		return simpCompare(t)
	}
	return t
}

func applyArgs(t *term.Term) []*term.Term {
	args := t.Args()
	for i, a := range args {
		args[i] = apply(a)
	}
	return args
}

// rebuild replaces the operands of t, sharing t when nothing changed. A
// constructor failure cannot happen for operands of unchanged types; if it
// does the original term is kept.
func rebuild(t *term.Term, args ...*term.Term) *term.Term {
	same := true
	for i, a := range args {
		if a != t.Arg(i) {
			same = false
			break
		}
	}
	if same {
		return t
	}
	n, err := term.Rebuild(t, args...)
	if err != nil {
		return t
	}
	return n
}

// folded returns the literal for t if it is constant and foldable, t otherwise
func folded(t *term.Term) *term.Term {
	if c := tryEvalToConst(t); c != nil {
		return c
	}
	return t
}

// tryEvalToConst evaluates a constant term. Doubles are only folded when
// the result is "pretty": a named constant (returned as PI or E reference),
// a well-known literal, an integral value or a value with two decimals.
// Anything else keeps its symbolic form.
func tryEvalToConst(t *term.Term) *term.Term {
	if !t.IsConst() {
		return nil
	}
	switch t.Type() {
	case types.Bool:
		b, err := term.EvalB(t, nil)
		if err != nil {
			return nil
		}
		if b {
			return term.True
		}
		return term.False
	case types.Int:
		i, err := term.EvalI(t, nil)
		if err != nil {
			return nil
		}
		return term.ConstI(i)
	case types.Double:
		v, err := term.EvalD(t, nil)
		if err != nil {
			return nil
		}
		if term.IsPi(v) {
			return namespace.PiRef()
		}
		if term.IsE(v) {
			return namespace.ERef()
		}
		if c := term.LookupConstD(v); c != nil {
			return c
		}
		if f := math.Floor(v); term.EqD(v, f) {
			return term.ConstD(f)
		}
		if r := math.Floor(v*100.0+0.5) / 100.0; term.EqD(v, r) {
			return term.ConstD(r)
		}
	case types.String:
		s, err := term.EvalS(t, nil)
		if err != nil {
			return nil
		}
		return term.ConstS(s)
	}
	return nil
}

// constValue evaluates a constant operand as double
func constValue(t *term.Term) (float64, bool) {
	if !t.IsConst() {
		return 0, false
	}
	v, err := term.EvalD(t, nil)
	if err != nil {
		return 0, false
	}
	return v, true
}

func isConstValue(t *term.Term, want float64) bool {
	v, ok := constValue(t)
	return ok && v == want
}

func zeroOf(typ types.Type) *term.Term {
	if typ == types.Int {
		return term.ZeroI
	}
	return term.Zero
}

func oneOf(typ types.Type) *term.Term {
	if typ == types.Int {
		return term.OneI
	}
	return term.One
}

func twoOf(typ types.Type) *term.Term {
	if typ == types.Int {
		return term.TwoI
	}
	return term.Two
}

// simpFoldable handles the logical and bitwise operators: fold when
// constant, otherwise simplify the operands.
func simpFoldable(t *term.Term) *term.Term {
	if c := tryEvalToConst(t); c != nil {
		return c
	}
	return folded(rebuild(t, applyArgs(t)...))
}

// simpCompare folds constant comparisons and comparisons of structurally
// equal operands, whose result is known without evaluation.
func simpCompare(t *term.Term) *term.Term {
	if c := tryEvalToConst(t); c != nil {
		return c
	}
	a, b := apply(t.Arg(0)), apply(t.Arg(1))
	n := folded(rebuild(t, a, b))
	if n.Kind().IsConstant() {
		return n
	}
	if term.Equal(a, b) {
		switch t.Kind() {
		case term.KindEqB, term.KindEqI, term.KindEqD,
			term.KindLeI, term.KindLeD, term.KindGeI, term.KindGeD:
			return term.True
		default:
			return term.False
		}
	}
	return n
}

func simpCond(t *term.Term) *term.Term {
	cond := apply(t.Arg(0))
	if cond.IsConst() {
		if b, err := term.EvalB(cond, nil); err == nil {
			if b {
				return apply(t.Arg(1))
			}
			return apply(t.Arg(2))
		}
	}
	x, y := apply(t.Arg(1)), apply(t.Arg(2))
	if term.Equal(x, y) {
		return x
	}
	return rebuild(t, cond, x, y)
}

func simpConv(t *term.Term) *term.Term {
	a := apply(t.Arg(0))
	// int -> double -> int is lossless
	if t.IsI() && a.Kind() == term.KindConv && a.Arg(0).IsI() {
		return a.Arg(0)
	}
	return folded(rebuild(t, a))
}

func simpNeg(t *term.Term) *term.Term {
	if c := tryEvalToConst(t); c != nil {
		return c
	}
	a := apply(t.Arg(0))
	if a.Kind() == term.KindNeg {
		return a.Arg(0)
	}
	return folded(rebuild(t, a))
}

func simpAdd(t *term.Term) *term.Term {
	if c := tryEvalToConst(t); c != nil {
		return c
	}
	typ := t.Type()
	a, b := apply(t.Arg(0)), apply(t.Arg(1))
	if isConstValue(a, 0) {
		return b
	}
	if isConstValue(b, 0) {
		return a
	}
	switch term.Compare(a, b) {
	case 0:
		return apply(binary(t, term.KindMul, twoOf(typ), b))
	case -1:
		return folded(rebuild(t, a, b))
	default:
		return apply(binary(t, term.KindAdd, b, a))
	}
}

func simpSub(t *term.Term) *term.Term {
	if c := tryEvalToConst(t); c != nil {
		return c
	}
	a, b := apply(t.Arg(0)), apply(t.Arg(1))
	if isConstValue(a, 0) {
		return apply(neg(t, b))
	}
	if isConstValue(b, 0) {
		return a
	}
	if term.Equal(a, b) {
		return zeroOf(t.Type())
	}
	return folded(rebuild(t, a, b))
}

func simpMul(t *term.Term) *term.Term {
	if c := tryEvalToConst(t); c != nil {
		return c
	}
	typ := t.Type()
	a, b := apply(t.Arg(0)), apply(t.Arg(1))
	if r := mulIdentity(t, a, b); r != nil {
		return r
	}
	if r := mulIdentity(t, b, a); r != nil {
		return r
	}
	switch term.Compare(a, b) {
	case 0:
		if typ == types.Double {
			return apply(call(t, functions.Sqr, a))
		}
		// sqr is a double function, integer squares stay products
		return folded(rebuild(t, a, b))
	case -1:
		return folded(rebuild(t, a, b))
	default:
		return apply(binary(t, term.KindMul, b, a))
	}
}

// mulIdentity applies c*x -> 0, x, -x for c in {0, 1, -1}
func mulIdentity(t, c, x *term.Term) *term.Term {
	v, ok := constValue(c)
	if !ok {
		return nil
	}
	switch v {
	case 0:
		return zeroOf(t.Type())
	case 1:
		return x
	case -1:
		return apply(neg(t, x))
	}
	return nil
}

func simpDiv(t *term.Term) *term.Term {
	typ := t.Type()
	if typ == types.Double && isConstValue(t.Arg(1), 0) {
		return term.NaN
	}
	if c := tryEvalToConst(t); c != nil {
		return c
	}
	a, b := apply(t.Arg(0)), apply(t.Arg(1))
	if isConstValue(b, 0) {
		if typ == types.Double {
			return term.NaN
		}
		// integer division by zero is an evaluation error, keep it
		return rebuild(t, a, b)
	}
	if isConstValue(a, 0) {
		return zeroOf(typ)
	}
	if isConstValue(b, 1) {
		return a
	}
	if term.Equal(a, b) {
		return oneOf(typ)
	}
	return folded(rebuild(t, a, b))
}

func simpCall(t *term.Term) *term.Term {
	n := rebuild(t, applyArgs(t)...)
	if c := tryEvalToConst(n); c != nil {
		return c
	}
	fn := n.Function()
	switch fn.ID() {
	case functions.IDSqrt:
		return simpPow(n, n.Arg(0), term.Half)
	case functions.IDSqr:
		return simpPow(n, n.Arg(0), term.Two)
	case functions.IDPow:
		return simpPow(n, n.Arg(0), n.Arg(1))
	case functions.IDExp:
		arg := n.Arg(0)
		if v, ok := constValue(arg); ok {
			if v == 0 {
				return term.One
			}
			if v == 1 {
				return namespace.ERef()
			}
		} else if isCall(arg, functions.IDLog) {
			return arg.Arg(0)
		}
	case functions.IDLog:
		arg := n.Arg(0)
		if v, ok := constValue(arg); ok {
			if v == 1 {
				return term.Zero
			}
			if term.IsE(v) {
				return term.One
			}
		} else if isCall(arg, functions.IDExp) {
			return arg.Arg(0)
		}
	case functions.IDAbsI, functions.IDAbsD:
		if arg := n.Arg(0); arg.Kind() == term.KindNeg {
			return apply(call(n, fn, arg.Arg(0)))
		}
	}
	return n
}

func isCall(t *term.Term, id functions.FunctionID) bool {
	return t.Kind() == term.KindCall && t.Function().ID() == id
}
