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

package functions

import (
	"sort"
	"strings"

	"github.com/rulego/bandmath/types"
)

// Registry 函数注册表
// A Registry is immutable once created and may be shared between goroutines.
// Names are case-insensitive; one name may carry several overloads that
// differ in arity or argument types (abs, min, max, sign).
type Registry struct {
	byName map[string][]*Function
	byID   map[FunctionID]*Function
	all    []*Function
}

var builtinRegistry = mustRegistry(Builtins()...)

// Builtin returns the shared registry of built-in math functions
func Builtin() *Registry {
	return builtinRegistry
}

// NewRegistry 创建新的函数注册表
// Registering two functions with the same name and argument types fails.
func NewRegistry(fns ...*Function) (*Registry, error) {
	r := &Registry{
		byName: make(map[string][]*Function),
		byID:   make(map[FunctionID]*Function),
	}
	for _, fn := range fns {
		if err := r.add(fn); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func mustRegistry(fns ...*Function) *Registry {
	r, err := NewRegistry(fns...)
	if err != nil {
		panic(err)
	}
	return r
}

func (r *Registry) add(fn *Function) error {
	name := strings.ToLower(fn.GetName())
	if name == "" {
		return types.NewError(types.ErrUnresolvedFunction, "", "function name must not be empty")
	}
	for _, other := range r.byName[name] {
		if sameArgs(other.argTypes, fn.argTypes) {
			return types.NewError(types.ErrType, fn.Signature(), "function %s already registered", fn.Signature())
		}
	}
	r.byName[name] = append(r.byName[name], fn)
	if fn.id != IDCustom && fn.id != IDUnknown {
		r.byID[fn.id] = fn
	}
	r.all = append(r.all, fn)
	return nil
}

// With returns a new registry holding r's functions plus fns.
func (r *Registry) With(fns ...*Function) (*Registry, error) {
	all := make([]*Function, 0, len(r.all)+len(fns))
	all = append(all, r.all...)
	all = append(all, fns...)
	return NewRegistry(all...)
}

// Lookup returns the overloads of name taking argc arguments.
func (r *Registry) Lookup(name string, argc int) ([]*Function, error) {
	overloads, ok := r.byName[strings.ToLower(name)]
	if !ok {
		return nil, types.NewError(types.ErrUnresolvedFunction, name, "undefined function '%s'", name)
	}
	var result []*Function
	for _, fn := range overloads {
		if fn.Arity() == argc {
			result = append(result, fn)
		}
	}
	if len(result) == 0 {
		return nil, types.NewError(types.ErrArity, name,
			"function '%s' does not take %d argument(s)", name, argc)
	}
	return result, nil
}

// Resolve picks the overload for the given argument types. An exact match
// wins; otherwise an overload is accepted if every mismatch is an Int
// argument where a Double is expected, the caller then has to convert.
func (r *Registry) Resolve(name string, args []types.Type) (*Function, error) {
	candidates, err := r.Lookup(name, len(args))
	if err != nil {
		return nil, err
	}
	for _, fn := range candidates {
		if sameArgs(fn.argTypes, args) {
			return fn, nil
		}
	}
	for _, fn := range candidates {
		if promotable(args, fn.argTypes) {
			return fn, nil
		}
	}
	got := make([]string, len(args))
	for i, t := range args {
		got[i] = t.String()
	}
	return nil, types.NewError(types.ErrType, name,
		"no overload of '%s' accepts (%s)", name, strings.Join(got, ", "))
}

// ByID returns the built-in descriptor with the given ID
func (r *Registry) ByID(id FunctionID) (*Function, bool) {
	fn, ok := r.byID[id]
	return fn, ok
}

// List returns every descriptor sorted by signature
func (r *Registry) List() []*Function {
	result := append([]*Function(nil), r.all...)
	sort.Slice(result, func(i, j int) bool {
		return result[i].Signature() < result[j].Signature()
	})
	return result
}

func sameArgs(a, b []types.Type) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func promotable(from, to []types.Type) bool {
	for i := range from {
		if from[i] == to[i] {
			continue
		}
		if from[i] == types.Int && to[i] == types.Double {
			continue
		}
		return false
	}
	return true
}
