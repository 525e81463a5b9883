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
	"github.com/rulego/bandmath/expr"
	"github.com/rulego/bandmath/namespace"
	"github.com/rulego/bandmath/simplify"
	"github.com/rulego/bandmath/term"
	"github.com/rulego/bandmath/types"
)

// Condition is a boolean predicate evaluated per pixel
type Condition interface {
	Evaluate(env *term.Env) (bool, error)
	// Term returns the (possibly simplified) boolean term
	Term() *term.Term
}

// Option configures a condition
type Option func(*options)

type options struct {
	simplify bool
}

// WithSimplify simplifies the term before it is used
func WithSimplify() Option {
	return func(o *options) {
		o.simplify = true
	}
}

// TermCondition evaluates a boolean term
type TermCondition struct {
	term *term.Term
}

// New creates a condition from a boolean term
func New(t *term.Term, opts ...Option) (Condition, error) {
	c, err := newTermCondition(t, opts...)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func newTermCondition(t *term.Term, opts ...Option) (*TermCondition, error) {
	if t == nil {
		return nil, types.NewError(types.ErrType, "", "condition term must not be nil")
	}
	if !t.IsB() {
		return nil, types.NewError(types.ErrType, t.String(), "condition must be boolean, got %s", t.Type())
	}
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	if o.simplify {
		t = simplify.Simplify(t)
	}
	return &TermCondition{term: t}, nil
}

// NewExprCondition parses expression against ns and wraps the result
func NewExprCondition(expression string, ns *namespace.Namespace, opts ...Option) (Condition, error) {
	t, err := expr.Parse(expression, ns)
	if err != nil {
		return nil, err
	}
	return New(t, opts...)
}

// Evaluate evaluates the condition at the position held by env
func (c *TermCondition) Evaluate(env *term.Env) (bool, error) {
	return term.EvalB(c.term, env)
}

// Term returns the boolean term
func (c *TermCondition) Term() *term.Term {
	return c.term
}

// Constant reports the value of a condition that does not depend on any
// pixel, e.g. "1 > 0" or a simplified "x == x".
func Constant(c Condition) (value bool, ok bool) {
	t := c.Term()
	if !t.IsConst() {
		return false, false
	}
	v, err := term.EvalB(t, nil)
	if err != nil {
		return false, false
	}
	return v, true
}

// String returns the printed term
func (c *TermCondition) String() string {
	return c.term.String()
}
