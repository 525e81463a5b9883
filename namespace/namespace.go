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

// Package namespace resolves names to symbols and function descriptors while
// terms are being built.
package namespace

import (
	"math"
	"sort"

	"github.com/rulego/bandmath/functions"
	"github.com/rulego/bandmath/term"
	"github.com/rulego/bandmath/types"
)

var (
	// PI the named constant π
	PI = term.NewConstSymbol("PI", types.DoubleValue(math.Pi))
	// E the named constant e
	E = term.NewConstSymbol("E", types.DoubleValue(math.E))
)

// PiRef returns a reference to PI
func PiRef() *term.Term { return term.NewRef(PI) }

// ERef returns a reference to E
func ERef() *term.Term { return term.NewRef(E) }

// Namespace 命名空间
// A Namespace maps names to symbols and owns the function registry used to
// resolve calls. It is immutable; With returns an extended copy.
type Namespace struct {
	functions *functions.Registry
	symbols   map[string]*term.Symbol
}

// New creates a namespace with PI, E and the given symbols. A nil registry
// means functions.Builtin().
func New(registry *functions.Registry, symbols ...*term.Symbol) (*Namespace, error) {
	if registry == nil {
		registry = functions.Builtin()
	}
	ns := &Namespace{
		functions: registry,
		symbols:   map[string]*term.Symbol{PI.Name(): PI, E.Name(): E},
	}
	for _, sym := range symbols {
		if err := ns.add(sym); err != nil {
			return nil, err
		}
	}
	return ns, nil
}

func (ns *Namespace) add(sym *term.Symbol) error {
	if sym.Name() == "" {
		return types.NewError(types.ErrUnresolvedSymbol, "", "symbol name must not be empty")
	}
	if _, exists := ns.symbols[sym.Name()]; exists {
		return types.NewError(types.ErrUnresolvedSymbol, sym.Name(), "symbol '%s' already defined", sym.Name())
	}
	ns.symbols[sym.Name()] = sym
	return nil
}

// With returns a copy of ns that also contains symbols
func (ns *Namespace) With(symbols ...*term.Symbol) (*Namespace, error) {
	cp := &Namespace{
		functions: ns.functions,
		symbols:   make(map[string]*term.Symbol, len(ns.symbols)+len(symbols)),
	}
	for name, sym := range ns.symbols {
		cp.symbols[name] = sym
	}
	for _, sym := range symbols {
		if err := cp.add(sym); err != nil {
			return nil, err
		}
	}
	return cp, nil
}

// Functions returns the function registry
func (ns *Namespace) Functions() *functions.Registry {
	return ns.functions
}

// Symbol looks up a symbol by its exact name
func (ns *Namespace) Symbol(name string) (*term.Symbol, bool) {
	sym, ok := ns.symbols[name]
	return sym, ok
}

// Symbols returns all symbols sorted by name
func (ns *Namespace) Symbols() []*term.Symbol {
	result := make([]*term.Symbol, 0, len(ns.symbols))
	for _, sym := range ns.symbols {
		result = append(result, sym)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name() < result[j].Name() })
	return result
}

// ResolveSymbol returns a reference term for name
func (ns *Namespace) ResolveSymbol(name string) (*term.Term, error) {
	sym, ok := ns.symbols[name]
	if !ok {
		return nil, types.NewError(types.ErrUnresolvedSymbol, name, "undefined symbol '%s'", name)
	}
	return term.NewRef(sym), nil
}

// ResolveFunction returns the descriptor for name taking argc arguments.
// When several overloads share the arity the Double one is preferred.
func (ns *Namespace) ResolveFunction(name string, argc int) (*functions.Function, error) {
	candidates, err := ns.functions.Lookup(name, argc)
	if err != nil {
		return nil, err
	}
	for _, fn := range candidates {
		if fn.RetType() == types.Double {
			return fn, nil
		}
	}
	return candidates[0], nil
}

// ResolveCall builds a call to the overload of name matching args,
// converting Int arguments where the overload expects Double.
func (ns *Namespace) ResolveCall(name string, args ...*term.Term) (*term.Term, error) {
	argTypes := make([]types.Type, len(args))
	for i, a := range args {
		argTypes[i] = a.Type()
	}
	fn, err := ns.functions.Resolve(name, argTypes)
	if err != nil {
		return nil, err
	}
	converted := make([]*term.Term, len(args))
	for i, a := range args {
		if a.Type() == fn.ArgType(i) {
			converted[i] = a
			continue
		}
		if converted[i], err = term.ToDouble(a); err != nil {
			return nil, err
		}
	}
	return term.NewCall(fn, converted...)
}
