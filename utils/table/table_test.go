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

package table

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rulego/bandmath/functions"
)

// TestWrite 测试表格输出
func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	Write(&buf, []string{"band", "type"}, [][]string{
		{"l1_flags", "uint16"},
		{"rad"},
	})
	expected := strings.Join([]string{
		"+----------+--------+",
		"| band     | type   |",
		"+----------+--------+",
		"| l1_flags | uint16 |",
		"| rad      |        |",
		"+----------+--------+",
		"(2 rows)",
		"",
	}, "\n")
	assert.Equal(t, expected, buf.String())
}

func TestWriteEmpty(t *testing.T) {
	var buf bytes.Buffer
	Write(&buf, nil, nil)
	assert.Equal(t, "(0 rows)\n", buf.String())

	buf.Reset()
	Write(&buf, []string{"a"}, nil)
	assert.Contains(t, buf.String(), "| a    |")
	assert.Contains(t, buf.String(), "(0 rows)")
}

// TestFunctions 测试函数列表输出
func TestFunctions(t *testing.T) {
	var buf bytes.Buffer
	Functions(&buf, []*functions.Function{functions.Sqrt, functions.MinI})
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 7)
	assert.Contains(t, lines[3], "sqrt(double) double")
	assert.Contains(t, lines[4], "min(int, int) int")
	assert.Contains(t, lines[4], "math")
}
