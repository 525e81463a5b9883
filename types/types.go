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

package types

import (
	"fmt"
	"math"
	"strconv"
)

// Type 表达式结果类型
type Type int

const (
	// Invalid marks an unset type
	Invalid Type = iota
	// Bool boolean results, e.g. flag tests and comparisons
	Bool
	// Int 64-bit signed integers, e.g. integer band samples
	Int
	// Double 64-bit IEEE floating point
	Double
	// String string literals
	String
)

// String returns the name used in error messages and printed terms
func (t Type) String() string {
	switch t {
	case Bool:
		return "boolean"
	case Int:
		return "int"
	case Double:
		return "double"
	case String:
		return "string"
	default:
		return "invalid"
	}
}

// IsNumeric reports whether t is Int or Double.
func (t Type) IsNumeric() bool {
	return t == Int || t == Double
}

// Value 运行时值，带类型标签
// Only the field matching Type is meaningful.
type Value struct {
	typ Type
	b   bool
	i   int64
	d   float64
	s   string
}

func BoolValue(b bool) Value      { return Value{typ: Bool, b: b} }
func IntValue(i int64) Value      { return Value{typ: Int, i: i} }
func DoubleValue(d float64) Value { return Value{typ: Double, d: d} }
func StringValue(s string) Value  { return Value{typ: String, s: s} }
func (v Value) Type() Type        { return v.typ }
func (v Value) Bool() bool        { return v.b }
func (v Value) Int() int64        { return v.i }
func (v Value) Double() float64   { return v.d }
func (v Value) Str() string       { return v.s }
func (v Value) IsValid() bool     { return v.typ != Invalid }

// AsDouble converts numeric and boolean values to float64.
// Strings are parsed; unparsable strings yield NaN.
func (v Value) AsDouble() float64 {
	switch v.typ {
	case Double:
		return v.d
	case Int:
		return float64(v.i)
	case Bool:
		if v.b {
			return 1
		}
		return 0
	case String:
		f, err := strconv.ParseFloat(v.s, 64)
		if err != nil {
			return math.NaN()
		}
		return f
	default:
		return math.NaN()
	}
}

// AsInt converts the value to int64, truncating doubles toward zero.
func (v Value) AsInt() int64 {
	switch v.typ {
	case Int:
		return v.i
	case Double:
		return int64(v.d)
	case Bool:
		if v.b {
			return 1
		}
		return 0
	case String:
		i, _ := strconv.ParseInt(v.s, 10, 64)
		return i
	default:
		return 0
	}
}

// String formats the value the way literals are printed in terms
func (v Value) String() string {
	switch v.typ {
	case Bool:
		return strconv.FormatBool(v.b)
	case Int:
		return strconv.FormatInt(v.i, 10)
	case Double:
		return FormatDouble(v.d)
	case String:
		return strconv.Quote(v.s)
	default:
		return "<invalid>"
	}
}

// FormatDouble prints a double so that it is always recognisable as a
// floating point literal ("2.0" rather than "2").
func FormatDouble(d float64) string {
	switch {
	case math.IsNaN(d):
		return "NaN"
	case math.IsInf(d, 1):
		return "+Inf"
	case math.IsInf(d, -1):
		return "-Inf"
	}
	s := strconv.FormatFloat(d, 'g', -1, 64)
	for _, c := range s {
		if c == '.' || c == 'e' || c == 'E' {
			return s
		}
	}
	return fmt.Sprintf("%s.0", s)
}
