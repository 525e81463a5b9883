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
	"github.com/rulego/bandmath/types"
)

// SymbolKind 符号种类
type SymbolKind int

const (
	// SymbolConst named constant such as PI and E
	SymbolConst SymbolKind = iota
	// SymbolSample raster sample read through the SampleContext
	SymbolSample
	// SymbolFlag boolean flag test (sample & mask) != 0
	SymbolFlag
	// SymbolVariable writable through Assign, per evaluation
	SymbolVariable
)

func (k SymbolKind) String() string {
	switch k {
	case SymbolConst:
		return "const"
	case SymbolSample:
		return "sample"
	case SymbolFlag:
		return "flag"
	case SymbolVariable:
		return "variable"
	default:
		return "unknown"
	}
}

// Symbol is a named value a Ref term points to. Symbols are immutable;
// variables keep their current value in the evaluation Env.
type Symbol struct {
	name     string
	kind     SymbolKind
	typ      types.Type
	value    types.Value
	sampleID int
	mask     int64
	owner    interface{}
}

// NewConstSymbol creates a named constant
func NewConstSymbol(name string, value types.Value) *Symbol {
	return &Symbol{name: name, kind: SymbolConst, typ: value.Type(), value: value}
}

// NewSampleSymbol creates a symbol whose value is Sample(sampleID, index) of
// the owner's SampleContext.
func NewSampleSymbol(name string, typ types.Type, owner interface{}, sampleID int) *Symbol {
	return &Symbol{name: name, kind: SymbolSample, typ: typ, sampleID: sampleID, owner: owner}
}

// NewFlagSymbol creates a boolean symbol that is true where the integer
// sample sampleID has any bit of mask set.
func NewFlagSymbol(name string, owner interface{}, sampleID int, mask int64) *Symbol {
	return &Symbol{name: name, kind: SymbolFlag, typ: types.Bool, sampleID: sampleID, mask: mask, owner: owner}
}

// NewVariable creates a writable symbol with an initial value
func NewVariable(name string, initial types.Value) *Symbol {
	return &Symbol{name: name, kind: SymbolVariable, typ: initial.Type(), value: initial}
}

func (s *Symbol) Name() string       { return s.name }
func (s *Symbol) Kind() SymbolKind   { return s.kind }
func (s *Symbol) Type() types.Type   { return s.typ }
func (s *Symbol) Value() types.Value { return s.value }
func (s *Symbol) SampleID() int      { return s.sampleID }
func (s *Symbol) Mask() int64        { return s.mask }
func (s *Symbol) Owner() interface{} { return s.owner }

// IsConst reports whether references to s can be folded
func (s *Symbol) IsConst() bool { return s.kind == SymbolConst }
