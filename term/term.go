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
	"github.com/rulego/bandmath/functions"
	"github.com/rulego/bandmath/types"
)

// Kind 项的变体类型
type Kind int

const (
	KindConstB Kind = iota
	KindConstI
	KindConstD
	KindConstS
	KindRef
	KindCall
	KindCond
	KindAssign
	KindNotB
	KindAndB
	KindOrB
	KindNotI
	KindXOrI
	KindAndI
	KindOrI
	KindNeg
	KindAdd
	KindSub
	KindMul
	KindDiv
	KindMod
	KindEqB
	KindEqI
	KindEqD
	KindNEqB
	KindNEqI
	KindNEqD
	KindLtI
	KindLtD
	KindLeI
	KindLeD
	KindGtI
	KindGtD
	KindGeI
	KindGeD
	// KindConv converts between Int and Double. The builder inserts it
	// wherever an Int operand meets a Double operator.
	KindConv
	kindCount
)

var kindNames = [...]string{
	KindConstB: "ConstB",
	KindConstI: "ConstI",
	KindConstD: "ConstD",
	KindConstS: "ConstS",
	KindRef:    "Ref",
	KindCall:   "Call",
	KindCond:   "Cond",
	KindAssign: "Assign",
	KindNotB:   "NotB",
	KindAndB:   "AndB",
	KindOrB:    "OrB",
	KindNotI:   "NotI",
	KindXOrI:   "XOrI",
	KindAndI:   "AndI",
	KindOrI:    "OrI",
	KindNeg:    "Neg",
	KindAdd:    "Add",
	KindSub:    "Sub",
	KindMul:    "Mul",
	KindDiv:    "Div",
	KindMod:    "Mod",
	KindEqB:    "EqB",
	KindEqI:    "EqI",
	KindEqD:    "EqD",
	KindNEqB:   "NEqB",
	KindNEqI:   "NEqI",
	KindNEqD:   "NEqD",
	KindLtI:    "LtI",
	KindLtD:    "LtD",
	KindLeI:    "LeI",
	KindLeD:    "LeD",
	KindGtI:    "GtI",
	KindGtD:    "GtD",
	KindGeI:    "GeI",
	KindGeD:    "GeD",
	KindConv:   "Conv",
}

// String returns the variant name
func (k Kind) String() string {
	if k >= 0 && k < kindCount {
		return kindNames[k]
	}
	return "Kind<?>"
}

// IsConstant reports whether k is a literal variant
func (k Kind) IsConstant() bool {
	return k >= KindConstB && k <= KindConstS
}

// IsComparison reports whether k is one of the relational variants
func (k Kind) IsComparison() bool {
	return k >= KindEqB && k <= KindGeD
}

// comparisonOperandType is the operand type required by a relational kind
func comparisonOperandType(k Kind) types.Type {
	switch k {
	case KindEqB, KindNEqB:
		return types.Bool
	case KindEqI, KindNEqI, KindLtI, KindLeI, KindGtI, KindGeI:
		return types.Int
	default:
		return types.Double
	}
}

// Term is an immutable, typed expression node.
type Term struct {
	kind    Kind
	typ     types.Type
	value   types.Value
	sym     *Symbol
	fn      *functions.Function
	args    []*Term
	isConst bool
}

func (t *Term) Kind() Kind { return t.kind }

// Type returns the declared result type, fixed at construction
func (t *Term) Type() types.Type { return t.typ }

// IsConst reports whether the term can be folded without a sample context
func (t *Term) IsConst() bool { return t.isConst }

// Value returns the literal value of a constant variant
func (t *Term) Value() types.Value { return t.value }

// Symbol returns the referenced symbol of Ref and Assign terms
func (t *Term) Symbol() *Symbol { return t.sym }

// Function returns the called function of Call terms
func (t *Term) Function() *functions.Function { return t.fn }

func (t *Term) NumArgs() int { return len(t.args) }

func (t *Term) Arg(i int) *Term { return t.args[i] }

// Args returns a copy of the operand list
func (t *Term) Args() []*Term {
	return append([]*Term(nil), t.args...)
}

func (t *Term) IsB() bool { return t.typ == types.Bool }
func (t *Term) IsI() bool { return t.typ == types.Int }
func (t *Term) IsD() bool { return t.typ == types.Double }
func (t *Term) IsS() bool { return t.typ == types.String }

// IsNumeric reports whether the declared type is Int or Double
func (t *Term) IsNumeric() bool { return t.typ.IsNumeric() }

func allConst(args []*Term) bool {
	for _, a := range args {
		if !a.isConst {
			return false
		}
	}
	return true
}

func newNode(kind Kind, typ types.Type, args ...*Term) *Term {
	return &Term{kind: kind, typ: typ, args: args, isConst: allConst(args)}
}
