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
	"strings"
)

var operatorSymbols = map[Kind]string{
	KindAndB: "&&",
	KindOrB:  "||",
	KindXOrI: "^",
	KindAndI: "&",
	KindOrI:  "|",
	KindAdd:  "+",
	KindSub:  "-",
	KindMul:  "*",
	KindDiv:  "/",
	KindMod:  "%",
	KindEqB:  "==",
	KindEqI:  "==",
	KindEqD:  "==",
	KindNEqB: "!=",
	KindNEqI: "!=",
	KindNEqD: "!=",
	KindLtI:  "<",
	KindLtD:  "<",
	KindLeI:  "<=",
	KindLeD:  "<=",
	KindGtI:  ">",
	KindGtD:  ">",
	KindGeI:  ">=",
	KindGeD:  ">=",
}

// String prints the term in a fully parenthesised infix form, e.g.
// "((2.0 * x) + sqrt(y))". It is meant for logs, errors and tests.
func (t *Term) String() string {
	var sb strings.Builder
	t.write(&sb)
	return sb.String()
}

func (t *Term) write(sb *strings.Builder) {
	switch t.kind {
	case KindConstB, KindConstI, KindConstD, KindConstS:
		sb.WriteString(t.value.String())
	case KindRef:
		sb.WriteString(t.sym.name)
	case KindCall:
		sb.WriteString(t.fn.Name())
		sb.WriteByte('(')
		for i, a := range t.args {
			if i > 0 {
				sb.WriteString(", ")
			}
			a.write(sb)
		}
		sb.WriteByte(')')
	case KindCond:
		sb.WriteByte('(')
		t.args[0].write(sb)
		sb.WriteString(" ? ")
		t.args[1].write(sb)
		sb.WriteString(" : ")
		t.args[2].write(sb)
		sb.WriteByte(')')
	case KindAssign:
		sb.WriteByte('(')
		sb.WriteString(t.sym.name)
		sb.WriteString(" = ")
		t.args[1].write(sb)
		sb.WriteByte(')')
	case KindNotB:
		sb.WriteByte('!')
		t.args[0].write(sb)
	case KindNotI:
		sb.WriteByte('~')
		t.args[0].write(sb)
	case KindNeg:
		sb.WriteByte('-')
		t.args[0].write(sb)
	case KindConv:
		sb.WriteString(t.typ.String())
		sb.WriteByte('(')
		t.args[0].write(sb)
		sb.WriteByte(')')
	default:
		sb.WriteByte('(')
		t.args[0].write(sb)
		sb.WriteByte(' ')
		sb.WriteString(operatorSymbols[t.kind])
		sb.WriteByte(' ')
		t.args[1].write(sb)
		sb.WriteByte(')')
	}
}
