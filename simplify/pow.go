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
	"github.com/rulego/bandmath/term"
	"github.com/rulego/bandmath/types"
)

// simpPow is shared by pow, sqr and sqrt. orig is the call being simplified
// and is returned whenever a rebuilt node cannot be constructed.
func simpPow(orig, base, exp *term.Term) *term.Term {
	if v, ok := constValue(base); ok {
		switch {
		case term.EqD(v, 0):
			return term.Zero
		case term.EqD(v, 1):
			return term.One
		case term.IsE(v):
			return apply(call(orig, functions.Exp, exp))
		}
	}
	if v, ok := constValue(exp); ok {
		switch {
		case term.EqD(v, 0):
			return term.One
		case term.EqD(v, 1):
			return base
		case term.EqD(v, -1):
			return apply(binary(orig, term.KindDiv, term.One, base))
		}
	}

	switch {
	case isCall(base, functions.IDPow):
		return simpNestedPow(orig, base, base.Arg(0), base.Arg(1), exp)
	case isCall(base, functions.IDSqrt):
		return simpNestedPow(orig, base, base.Arg(0), term.Half, exp)
	case isCall(base, functions.IDSqr):
		return simpNestedPow(orig, base, base.Arg(0), term.Two, exp)
	case isCall(base, functions.IDExp):
		return apply(call(orig, functions.Exp, binary(orig, term.KindMul, base.Arg(0), exp)))
	case base.Kind() == term.KindNeg && isNonZeroEvenInt(exp):
		return simpPow(orig, base.Arg(0), exp)
	}
	return pow(orig, base, exp)
}

// simpNestedPow collapses (base^exp1)^exp2 into base^(exp1*exp2) unless an
// even inner exponent hides a sign the outer exponent would expose again:
// sqrt(sqr(x)) is |x|, not x.
func simpNestedPow(orig, inner, base, exp1, exp2 *term.Term) *term.Term {
	if !isNonZeroEvenInt(exp1) || isNonZeroEvenInt(exp2) {
		return apply(simpPow(orig, base, binary(orig, term.KindMul, exp1, exp2)))
	}
	return pow(orig, inner, exp2)
}

// pow builds the final power call, using sqrt and sqr for 0.5 and 2
func pow(orig, base, exp *term.Term) *term.Term {
	if v, ok := constValue(exp); ok {
		if term.EqD(v, 0.5) {
			return call(orig, functions.Sqrt, base)
		}
		if term.EqD(v, 2) {
			return call(orig, functions.Sqr, base)
		}
	}
	return call(orig, functions.Pow, base, exp)
}

func isNonZeroEvenInt(t *term.Term) bool {
	v, ok := constValue(t)
	if !ok || term.EqD(v, 0) {
		return false
	}
	return isEvenInt(v)
}

func isEvenInt(v float64) bool {
	f := v - 2.0*math.Floor(v/2.0)
	return term.EqD(f, 0)
}

// call, binary and neg build replacement nodes. Their operands always have
// the types the constructors expect; on a constructor error the original
// term is used so that simplification never fails.
func call(orig *term.Term, fn *functions.Function, args ...*term.Term) *term.Term {
	n, err := term.NewCall(fn, args...)
	if err != nil {
		return orig
	}
	return n
}

func binary(orig *term.Term, kind term.Kind, a, b *term.Term) *term.Term {
	typ := a.Type()
	if kind == term.KindMul || kind == term.KindDiv || kind == term.KindAdd {
		typ = orig.Type()
		if !typ.IsNumeric() {
			typ = types.Double
		}
	}
	n, err := term.NewBinary(kind, typ, a, b)
	if err != nil {
		return orig
	}
	return n
}

func neg(orig, a *term.Term) *term.Term {
	n, err := term.NewNeg(a)
	if err != nil {
		return orig
	}
	return n
}
