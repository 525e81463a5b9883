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
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rulego/bandmath/functions"
	"github.com/rulego/bandmath/types"
)

func TestCompareClasses(t *testing.T) {
	m := must(t)
	literal := Two
	ref := x()
	call := m(NewCall(functions.Sqrt, x()))
	op := m(NewAdd(types.Double, x(), One))

	ordered := []*Term{literal, ref, call, op}
	for i := range ordered {
		for j := range ordered {
			expected := 0
			if i < j {
				expected = -1
			} else if i > j {
				expected = 1
			}
			assert.Equal(t, expected, Compare(ordered[i], ordered[j]), "%s vs %s", ordered[i], ordered[j])
		}
	}
}

func TestCompareLiterals(t *testing.T) {
	tests := []struct {
		a, b     *Term
		expected int
	}{
		{ConstD(1), ConstD(1 + 1e-12), 0},
		{ConstD(1), ConstD(1.001), -1},
		{ConstD(math.NaN()), ConstD(math.NaN()), 0},
		{ConstD(math.NaN()), ConstD(math.Inf(1)), 1},
		{ConstI(3), ConstI(-3), 1},
		{False, True, -1},
		{ConstS("a"), ConstS("b"), -1},
		{ConstI(5), ConstD(1), -1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, Compare(tt.a, tt.b), "%s vs %s", tt.a, tt.b)
		assert.Equal(t, -tt.expected, Compare(tt.b, tt.a), "%s vs %s", tt.b, tt.a)
	}
}

func TestCompareStructure(t *testing.T) {
	m := must(t)
	d := types.Double
	a := m(NewAdd(d, x(), m(NewCall(functions.Sqrt, x()))))
	b := m(NewAdd(d, x(), m(NewCall(functions.Sqrt, x()))))
	assert.NotSame(t, a, b)
	assert.True(t, Equal(a, b))

	c := m(NewAdd(d, x(), m(NewCall(functions.Sqr, x()))))
	assert.False(t, Equal(a, c))
	assert.Equal(t, -Compare(a, c), Compare(c, a))

	assert.False(t, Equal(m(NewCall(functions.AbsD, x())), m(NewCall(functions.AbsI, n()))))
}

func TestCompareSortIsStable(t *testing.T) {
	m := must(t)
	d := types.Double
	terms := []*Term{
		m(NewMul(d, x(), x())),
		x(),
		Two,
		m(NewCall(functions.Sqrt, x())),
		ConstD(-1),
		m(NewAdd(d, x(), One)),
		NewRef(symPI),
	}
	sorted := func(in []*Term) []string {
		cp := append([]*Term(nil), in...)
		sort.SliceStable(cp, func(i, j int) bool { return Compare(cp[i], cp[j]) < 0 })
		out := make([]string, len(cp))
		for i, t := range cp {
			out[i] = t.String()
		}
		return out
	}
	first := sorted(terms)
	reversed := make([]*Term, len(terms))
	for i, t := range terms {
		reversed[len(terms)-1-i] = t
	}
	assert.Equal(t, first, sorted(reversed))
	assert.Equal(t, []string{"-1.0", "2.0", "PI", "x", "sqrt(x)", "(x + 1.0)", "(x * x)"}, first)
}
