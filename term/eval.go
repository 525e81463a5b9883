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
	"strconv"

	"github.com/rulego/bandmath/types"
	"github.com/spf13/cast"
)

// SampleContext is the raster data source: it answers "what is the raw
// sample of symbol id at pixel index". Values may be of any Go numeric
// type; they are converted according to the symbol's declared type.
type SampleContext interface {
	Sample(id int, index int) (interface{}, error)
}

// Env 求值环境
// An Env holds the current pixel position and the values assigned to
// variables during one evaluation. It is not safe for concurrent use; give
// every goroutine its own Env. A nil *Env means "no position" and is what
// constant folding uses.
type Env struct {
	Samples SampleContext
	X       int
	Y       int
	Index   int
	vars    map[string]types.Value
}

// NewEnv creates an environment reading from samples
func NewEnv(samples SampleContext) *Env {
	return &Env{Samples: samples}
}

// At moves the environment to pixel (x, y) with element index index.
func (e *Env) At(x, y, index int) *Env {
	e.X = x
	e.Y = y
	e.Index = index
	return e
}

// Variable returns the value assigned to a variable in this environment
func (e *Env) Variable(name string) (types.Value, bool) {
	if e == nil || e.vars == nil {
		return types.Value{}, false
	}
	v, ok := e.vars[name]
	return v, ok
}

// Reset forgets all assigned variable values
func (e *Env) Reset() {
	e.vars = nil
}

func (e *Env) assign(name string, v types.Value) {
	if e.vars == nil {
		e.vars = make(map[string]types.Value)
	}
	e.vars[name] = v
}

// Eval evaluates t according to its declared type
func Eval(t *Term, env *Env) (types.Value, error) {
	switch t.typ {
	case types.Bool:
		b, err := EvalB(t, env)
		return types.BoolValue(b), err
	case types.Int:
		i, err := EvalI(t, env)
		return types.IntValue(i), err
	case types.Double:
		d, err := EvalD(t, env)
		return types.DoubleValue(d), err
	case types.String:
		s, err := EvalS(t, env)
		return types.StringValue(s), err
	default:
		return types.Value{}, typeError(t.String(), "term has no type")
	}
}

// EvalB evaluates a boolean term
func EvalB(t *Term, env *Env) (bool, error) {
	if t.typ != types.Bool {
		return false, typeError(t.String(), "expected boolean term, got %s", t.typ)
	}
	switch t.kind {
	case KindConstB:
		return t.value.Bool(), nil
	case KindRef, KindCall, KindAssign:
		v, err := evalValue(t, env)
		return v.Bool(), err
	case KindCond:
		branch, err := selectBranch(t, env)
		if err != nil {
			return false, err
		}
		return EvalB(branch, env)
	case KindNotB:
		v, err := EvalB(t.args[0], env)
		return !v, err
	case KindAndB, KindOrB:
		// both operands are always evaluated, terms are side-effect free
		a, err := EvalB(t.args[0], env)
		if err != nil {
			return false, err
		}
		b, err := EvalB(t.args[1], env)
		if err != nil {
			return false, err
		}
		if t.kind == KindAndB {
			return a && b, nil
		}
		return a || b, nil
	case KindEqB, KindNEqB:
		a, err := EvalB(t.args[0], env)
		if err != nil {
			return false, err
		}
		b, err := EvalB(t.args[1], env)
		if err != nil {
			return false, err
		}
		return (a == b) == (t.kind == KindEqB), nil
	case KindEqI, KindNEqI, KindLtI, KindLeI, KindGtI, KindGeI:
		a, err := EvalI(t.args[0], env)
		if err != nil {
			return false, err
		}
		b, err := EvalI(t.args[1], env)
		if err != nil {
			return false, err
		}
		switch t.kind {
		case KindEqI:
			return a == b, nil
		case KindNEqI:
			return a != b, nil
		case KindLtI:
			return a < b, nil
		case KindLeI:
			return a <= b, nil
		case KindGtI:
			return a > b, nil
		default:
			return a >= b, nil
		}
	case KindEqD, KindNEqD, KindLtD, KindLeD, KindGtD, KindGeD:
		a, err := EvalD(t.args[0], env)
		if err != nil {
			return false, err
		}
		b, err := EvalD(t.args[1], env)
		if err != nil {
			return false, err
		}
		switch t.kind {
		case KindEqD:
			return a == b, nil
		case KindNEqD:
			return a != b, nil
		case KindLtD:
			return a < b, nil
		case KindLeD:
			return a <= b, nil
		case KindGtD:
			return a > b, nil
		default:
			return a >= b, nil
		}
	}
	return false, typeError(t.String(), "%s cannot be evaluated as boolean", t.kind)
}

// EvalI evaluates an integer term. Double terms are truncated toward zero.
func EvalI(t *Term, env *Env) (int64, error) {
	if t.typ == types.Double {
		d, err := EvalD(t, env)
		return int64(d), err
	}
	if t.typ != types.Int {
		return 0, typeError(t.String(), "expected int term, got %s", t.typ)
	}
	switch t.kind {
	case KindConstI:
		return t.value.Int(), nil
	case KindRef, KindCall, KindAssign:
		v, err := evalValue(t, env)
		return v.Int(), err
	case KindCond:
		branch, err := selectBranch(t, env)
		if err != nil {
			return 0, err
		}
		return EvalI(branch, env)
	case KindNotI, KindNeg:
		v, err := EvalI(t.args[0], env)
		if t.kind == KindNotI {
			return ^v, err
		}
		return -v, err
	case KindConv:
		d, err := EvalD(t.args[0], env)
		return int64(d), err
	case KindAndI, KindOrI, KindXOrI, KindAdd, KindSub, KindMul, KindDiv, KindMod:
		a, err := EvalI(t.args[0], env)
		if err != nil {
			return 0, err
		}
		b, err := EvalI(t.args[1], env)
		if err != nil {
			return 0, err
		}
		switch t.kind {
		case KindAndI:
			return a & b, nil
		case KindOrI:
			return a | b, nil
		case KindXOrI:
			return a ^ b, nil
		case KindAdd:
			return a + b, nil
		case KindSub:
			return a - b, nil
		case KindMul:
			return a * b, nil
		case KindDiv:
			if b == 0 {
				return 0, types.NewError(types.ErrArithmetic, t.String(), "integer division by zero")
			}
			return a / b, nil
		default:
			if b == 0 {
				return 0, types.NewError(types.ErrArithmetic, t.String(), "integer modulo by zero")
			}
			return a % b, nil
		}
	}
	return 0, typeError(t.String(), "%s cannot be evaluated as int", t.kind)
}

// EvalD evaluates a double term. Int terms are widened.
func EvalD(t *Term, env *Env) (float64, error) {
	if t.typ == types.Int {
		i, err := EvalI(t, env)
		return float64(i), err
	}
	if t.typ != types.Double {
		return 0, typeError(t.String(), "expected double term, got %s", t.typ)
	}
	switch t.kind {
	case KindConstD:
		return t.value.Double(), nil
	case KindRef, KindCall, KindAssign:
		v, err := evalValue(t, env)
		return v.Double(), err
	case KindCond:
		branch, err := selectBranch(t, env)
		if err != nil {
			return 0, err
		}
		return EvalD(branch, env)
	case KindNeg:
		v, err := EvalD(t.args[0], env)
		return -v, err
	case KindConv:
		i, err := EvalI(t.args[0], env)
		return float64(i), err
	case KindAdd, KindSub, KindMul, KindDiv, KindMod:
		a, err := EvalD(t.args[0], env)
		if err != nil {
			return 0, err
		}
		b, err := EvalD(t.args[1], env)
		if err != nil {
			return 0, err
		}
		switch t.kind {
		case KindAdd:
			return a + b, nil
		case KindSub:
			return a - b, nil
		case KindMul:
			return a * b, nil
		case KindDiv:
			// IEEE: x/0 gives ±Inf or NaN
			return a / b, nil
		default:
			return math.Mod(a, b), nil
		}
	}
	return 0, typeError(t.String(), "%s cannot be evaluated as double", t.kind)
}

// EvalS evaluates a string term. Terms of other types are evaluated and
// formatted.
func EvalS(t *Term, env *Env) (string, error) {
	switch t.typ {
	case types.Bool:
		b, err := EvalB(t, env)
		return strconv.FormatBool(b), err
	case types.Int:
		i, err := EvalI(t, env)
		return strconv.FormatInt(i, 10), err
	case types.Double:
		d, err := EvalD(t, env)
		return strconv.FormatFloat(d, 'g', -1, 64), err
	}
	switch t.kind {
	case KindConstS:
		return t.value.Str(), nil
	case KindRef, KindCall, KindAssign:
		v, err := evalValue(t, env)
		return v.Str(), err
	case KindCond:
		branch, err := selectBranch(t, env)
		if err != nil {
			return "", err
		}
		return EvalS(branch, env)
	}
	return "", typeError(t.String(), "%s cannot be evaluated as string", t.kind)
}

func selectBranch(t *Term, env *Env) (*Term, error) {
	c, err := EvalB(t.args[0], env)
	if err != nil {
		return nil, err
	}
	if c {
		return t.args[1], nil
	}
	return t.args[2], nil
}

// evalValue evaluates the variants that produce a types.Value directly:
// Ref, Call and Assign.
func evalValue(t *Term, env *Env) (types.Value, error) {
	switch t.kind {
	case KindRef:
		return evalRef(t.sym, env)
	case KindCall:
		args := make([]types.Value, len(t.args))
		for i, a := range t.args {
			v, err := Eval(a, env)
			if err != nil {
				return types.Value{}, err
			}
			args[i] = v
		}
		v, err := t.fn.Call(args)
		if err != nil {
			return types.Value{}, types.WrapError(types.ErrArithmetic, t.String(), err)
		}
		return v, nil
	case KindAssign:
		if env == nil {
			return types.Value{}, types.NewError(types.ErrNoContext, t.String(), "assignment needs an evaluation environment")
		}
		v, err := Eval(t.args[1], env)
		if err != nil {
			return types.Value{}, err
		}
		env.assign(t.sym.name, v)
		return v, nil
	}
	return types.Value{}, typeError(t.String(), "%s is not a value term", t.kind)
}

func evalRef(sym *Symbol, env *Env) (types.Value, error) {
	switch sym.kind {
	case SymbolConst:
		return sym.value, nil
	case SymbolVariable:
		if v, ok := env.Variable(sym.name); ok {
			return v, nil
		}
		return sym.value, nil
	}
	if env == nil || env.Samples == nil {
		return types.Value{}, types.NewError(types.ErrNoContext, sym.name, "symbol '%s' needs a pixel position", sym.name)
	}
	raw, err := env.Samples.Sample(sym.sampleID, env.Index)
	if err != nil {
		return types.Value{}, types.WrapError(types.ErrSample, sym.name, err)
	}
	if sym.kind == SymbolFlag {
		i, err := cast.ToInt64E(raw)
		if err != nil {
			return types.Value{}, types.WrapError(types.ErrSample, sym.name, err)
		}
		return types.BoolValue(i&sym.mask != 0), nil
	}
	return convertSample(sym, raw)
}

func convertSample(sym *Symbol, raw interface{}) (types.Value, error) {
	var v types.Value
	var err error
	switch sym.typ {
	case types.Bool:
		var b bool
		b, err = cast.ToBoolE(raw)
		v = types.BoolValue(b)
	case types.Int:
		var i int64
		i, err = cast.ToInt64E(raw)
		v = types.IntValue(i)
	case types.Double:
		var d float64
		d, err = cast.ToFloat64E(raw)
		v = types.DoubleValue(d)
	default:
		var s string
		s, err = cast.ToStringE(raw)
		v = types.StringValue(s)
	}
	if err != nil {
		return types.Value{}, types.WrapError(types.ErrSample, sym.name, err)
	}
	return v, nil
}
