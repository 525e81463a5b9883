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

package condition

import (
	"testing"

	"github.com/rulego/bandmath/namespace"
	"github.com/rulego/bandmath/term"
	"github.com/rulego/bandmath/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// row serves one value per symbol id
type row map[int]interface{}

func (r row) Sample(id int, _ int) (interface{}, error) {
	return r[id], nil
}

func testNamespace(t *testing.T) *namespace.Namespace {
	ns, err := namespace.New(nil,
		term.NewSampleSymbol("age", types.Int, nil, 0),
		term.NewSampleSymbol("ratio", types.Double, nil, 1),
		term.NewFlagSymbol("flags.CLOUD", nil, 2, 4),
	)
	require.NoError(t, err)
	return ns
}

// TestNewExprCondition 测试创建表达式条件
func TestNewExprCondition(t *testing.T) {
	tests := []struct {
		name       string
		expression string
		wantErr    bool
		kind       types.ErrorKind
	}{
		{name: "简单比较表达式", expression: "age > 18"},
		{name: "复杂逻辑表达式", expression: "age > 18 && ratio < 0.5"},
		{name: "flag", expression: "NOT flags.CLOUD"},
		{name: "无效表达式", expression: "age >", wantErr: true, kind: types.ErrSyntax},
		{name: "not boolean", expression: "age + 1", wantErr: true, kind: types.ErrType},
		{name: "unknown symbol", expression: "height > 2", wantErr: true, kind: types.ErrUnresolvedSymbol},
	}

	ns := testNamespace(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cond, err := NewExprCondition(tt.expression, ns)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, cond)
				assert.True(t, types.IsKind(err, tt.kind), "got %v", err)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, cond)
			}
		})
	}
}

// TestCondition_Evaluate 测试条件求值
func TestCondition_Evaluate(t *testing.T) {
	tests := []struct {
		name       string
		expression string
		row        row
		expected   bool
	}{
		{"数值比较 - 大于", "age > 18", row{0: 25}, true},
		{"数值比较 - 小于等于", "age <= 18", row{0: int16(16)}, true},
		{"mixed types", "age * ratio >= 10", row{0: 20, 1: 0.5}, true},
		{"flag set", "flags.CLOUD", row{2: uint8(6)}, true},
		{"flag clear", "flags.CLOUD", row{2: uint8(3)}, false},
		{"logical", "age > 18 AND NOT flags.CLOUD", row{0: 30, 2: 0}, true},
		{"string sample", "ratio > 0.25", row{1: "0.3"}, true},
	}

	ns := testNamespace(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cond, err := NewExprCondition(tt.expression, ns)
			require.NoError(t, err)
			result, err := cond.Evaluate(term.NewEnv(tt.row))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestConditionErrors(t *testing.T) {
	ns := testNamespace(t)

	_, err := New(nil)
	assert.True(t, types.IsKind(err, types.ErrType))

	cond, err := NewExprCondition("age / 0 > 1", ns)
	require.NoError(t, err)
	_, err = cond.Evaluate(term.NewEnv(row{0: 3}))
	assert.True(t, types.IsKind(err, types.ErrArithmetic))

	// sample symbols need a position
	_, err = cond.Evaluate(nil)
	assert.True(t, types.IsKind(err, types.ErrNoContext))
}

func TestWithSimplify(t *testing.T) {
	ns := testNamespace(t)

	cond, err := NewExprCondition("ratio * 1 == ratio + 0", ns, WithSimplify())
	require.NoError(t, err)
	assert.Equal(t, "true", cond.Term().String())
	value, ok := Constant(cond)
	assert.True(t, ok)
	assert.True(t, value)

	cond, err = NewExprCondition("ratio * 1 > 0", ns)
	require.NoError(t, err)
	assert.Equal(t, "((ratio * 1.0) > 0.0)", cond.Term().String())
	_, ok = Constant(cond)
	assert.False(t, ok)

	cond, err = New(term.False, WithSimplify())
	require.NoError(t, err)
	value, ok = Constant(cond)
	assert.True(t, ok)
	assert.False(t, value)
	assert.Equal(t, "false", cond.(*TermCondition).String())
}
