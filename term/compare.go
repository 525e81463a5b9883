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
	"strings"
)

// Compare 项的全序比较
// Compare defines a deterministic total order over terms and returns -1, 0
// or +1. It never evaluates non-constant terms. Two terms compare equal iff
// they are structurally identical; double literals are compared within
// Epsilon and NaN equals NaN.
//
// The order is: literals < references < calls < operators, then by kind,
// declared type, payload and finally operands from left to right. The
// simplifier relies on literals sorting first so that canonical products
// read 2 * x.
func Compare(a, b *Term) int {
	if a == b {
		return 0
	}
	if c := cmpInt(class(a.kind), class(b.kind)); c != 0 {
		return c
	}
	if c := cmpInt(int(a.kind), int(b.kind)); c != 0 {
		return c
	}
	if c := cmpInt(int(a.typ), int(b.typ)); c != 0 {
		return c
	}
	switch a.kind {
	case KindConstB:
		return cmpBool(a.value.Bool(), b.value.Bool())
	case KindConstI:
		return cmpInt64(a.value.Int(), b.value.Int())
	case KindConstD:
		return cmpDouble(a.value.Double(), b.value.Double())
	case KindConstS:
		return strings.Compare(a.value.Str(), b.value.Str())
	case KindRef:
		return compareSymbols(a.sym, b.sym)
	case KindCall:
		if c := strings.Compare(strings.ToLower(a.fn.Name()), strings.ToLower(b.fn.Name())); c != 0 {
			return c
		}
		if c := cmpInt(int(a.fn.ID()), int(b.fn.ID())); c != 0 {
			return c
		}
		if c := strings.Compare(a.fn.Signature(), b.fn.Signature()); c != 0 {
			return c
		}
	case KindAssign:
		if c := compareSymbols(a.sym, b.sym); c != 0 {
			return c
		}
	}
	return compareArgs(a.args, b.args)
}

// Equal reports whether a and b are structurally identical
func Equal(a, b *Term) bool {
	return Compare(a, b) == 0
}

func class(k Kind) int {
	switch {
	case k.IsConstant():
		return 0
	case k == KindRef:
		return 1
	case k == KindCall:
		return 2
	default:
		return 3
	}
}

func compareSymbols(a, b *Symbol) int {
	if a == b {
		return 0
	}
	if c := strings.Compare(a.name, b.name); c != 0 {
		return c
	}
	return cmpInt(int(a.kind), int(b.kind))
}

func compareArgs(a, b []*Term) int {
	if c := cmpInt(len(a), len(b)); c != 0 {
		return c
	}
	for i := range a {
		if c := Compare(a[i], b[i]); c != 0 {
			return c
		}
	}
	return 0
}

func cmpDouble(a, b float64) int {
	aNaN, bNaN := math.IsNaN(a), math.IsNaN(b)
	switch {
	case aNaN && bNaN:
		return 0
	case aNaN:
		return 1
	case bNaN:
		return -1
	case EqD(a, b):
		return 0
	case a < b:
		return -1
	default:
		return 1
	}
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func cmpInt64(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func cmpBool(a, b bool) int {
	switch {
	case a == b:
		return 0
	case !a:
		return -1
	default:
		return 1
	}
}
