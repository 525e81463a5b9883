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

package expr

import (
	"fmt"
	"strings"

	"github.com/expr-lang/expr/ast"
	"github.com/expr-lang/expr/parser"

	"github.com/rulego/bandmath/namespace"
	"github.com/rulego/bandmath/term"
	"github.com/rulego/bandmath/types"
)

// Parse compiles expression text into a typed term. Names are resolved
// against ns; a nil ns only knows PI, E and the built-in functions.
func Parse(src string, ns *namespace.Namespace) (*term.Term, error) {
	normalized, err := Normalize(src)
	if err != nil {
		return nil, err
	}
	tree, err := parser.Parse(normalized)
	if err != nil {
		return nil, types.WrapError(types.ErrSyntax, src, err)
	}
	return Build(tree.Node, ns)
}

// Build converts a parsed syntax tree into a typed term
func Build(node ast.Node, ns *namespace.Namespace) (*term.Term, error) {
	if ns == nil {
		var err error
		if ns, err = namespace.New(nil); err != nil {
			return nil, err
		}
	}
	b := &builder{ns: ns}
	return b.build(node)
}

// builder 语法树到项的转换器
type builder struct {
	ns *namespace.Namespace
}

func fragment(node ast.Node) string {
	return fmt.Sprint(node)
}

func unsupported(node ast.Node, what string) error {
	return types.NewError(types.ErrType, fragment(node), "unsupported %s", what)
}

func (b *builder) build(node ast.Node) (*term.Term, error) {
	switch n := node.(type) {
	case *ast.IntegerNode:
		return term.ConstI(int64(n.Value)), nil
	case *ast.FloatNode:
		return term.ConstD(n.Value), nil
	case *ast.BoolNode:
		return term.ConstB(n.Value), nil
	case *ast.StringNode:
		return term.ConstS(n.Value), nil
	case *ast.IdentifierNode:
		return b.ns.ResolveSymbol(n.Value)
	case *ast.MemberNode:
		name, ok := memberName(n)
		if !ok {
			return nil, unsupported(node, "member access")
		}
		return b.ns.ResolveSymbol(name)
	case *ast.ChainNode:
		return b.build(n.Node)
	case *ast.UnaryNode:
		return b.unary(n)
	case *ast.BinaryNode:
		return b.binary(n)
	case *ast.ConditionalNode:
		return b.conditional(n)
	case *ast.CallNode:
		callee, ok := n.Callee.(*ast.IdentifierNode)
		if !ok {
			return nil, unsupported(node, "call target")
		}
		return b.call(n, callee.Value, n.Arguments)
	case *ast.BuiltinNode:
		return b.call(n, n.Name, n.Arguments)
	}
	return nil, unsupported(node, "expression")
}

// memberName flattens band.flag member chains into the dotted symbol name
func memberName(n *ast.MemberNode) (string, bool) {
	prop, ok := n.Property.(*ast.StringNode)
	if !ok {
		return "", false
	}
	switch inner := n.Node.(type) {
	case *ast.IdentifierNode:
		return inner.Value + "." + prop.Value, true
	case *ast.MemberNode:
		prefix, ok := memberName(inner)
		if !ok {
			return "", false
		}
		return prefix + "." + prop.Value, true
	}
	return "", false
}

func (b *builder) unary(n *ast.UnaryNode) (*term.Term, error) {
	arg, err := b.build(n.Node)
	if err != nil {
		return nil, err
	}
	switch n.Operator {
	case "-":
		switch arg.Kind() {
		case term.KindConstI:
			return term.ConstI(-arg.Value().Int()), nil
		case term.KindConstD:
			return term.ConstD(-arg.Value().Double()), nil
		}
		return term.NewNeg(arg)
	case "+":
		if !arg.IsNumeric() {
			return nil, types.NewError(types.ErrType, fragment(n), "operand of unary + must be numeric, got %s", arg.Type())
		}
		return arg, nil
	case "!", "not":
		return term.NewNotB(arg)
	}
	return nil, unsupported(n, "operator '"+n.Operator+"'")
}

var arithmeticKinds = map[string]term.Kind{
	"+": term.KindAdd,
	"-": term.KindSub,
	"*": term.KindMul,
	"/": term.KindDiv,
	"%": term.KindMod,
}

// comparisonKinds lists the bool, int and double variant of each operator
var comparisonKinds = map[string][3]term.Kind{
	"==": {term.KindEqB, term.KindEqI, term.KindEqD},
	"!=": {term.KindNEqB, term.KindNEqI, term.KindNEqD},
	"<":  {0, term.KindLtI, term.KindLtD},
	"<=": {0, term.KindLeI, term.KindLeD},
	">":  {0, term.KindGtI, term.KindGtD},
	">=": {0, term.KindGeI, term.KindGeD},
}

func (b *builder) binary(n *ast.BinaryNode) (*term.Term, error) {
	left, err := b.build(n.Left)
	if err != nil {
		return nil, err
	}
	right, err := b.build(n.Right)
	if err != nil {
		return nil, err
	}

	switch n.Operator {
	case "and", "&&":
		return term.NewAndB(left, right)
	case "or", "||":
		return term.NewOrB(left, right)
	case "**", "^":
		return b.ns.ResolveCall("pow", left, right)
	}

	if kind, ok := arithmeticKinds[n.Operator]; ok {
		typ, l, r, err := promote(n, left, right)
		if err != nil {
			return nil, err
		}
		return term.NewBinary(kind, typ, l, r)
	}

	if kinds, ok := comparisonKinds[n.Operator]; ok {
		if left.IsB() && right.IsB() {
			if kinds[0] == 0 {
				return nil, types.NewError(types.ErrType, fragment(n), "booleans cannot be ordered with '%s'", n.Operator)
			}
			return term.NewBinary(kinds[0], types.Bool, left, right)
		}
		typ, l, r, err := promote(n, left, right)
		if err != nil {
			return nil, err
		}
		kind := kinds[2]
		if typ == types.Int {
			kind = kinds[1]
		}
		return term.NewBinary(kind, types.Bool, l, r)
	}

	return nil, unsupported(n, "operator '"+n.Operator+"'")
}

// promote returns the common numeric type of two operands, converting an
// Int operand when the other one is Double.
func promote(n ast.Node, a, b *term.Term) (types.Type, *term.Term, *term.Term, error) {
	if !a.IsNumeric() || !b.IsNumeric() {
		return types.Invalid, nil, nil, types.NewError(types.ErrType, fragment(n),
			"operands must be numeric, got %s and %s", a.Type(), b.Type())
	}
	if a.IsI() && b.IsI() {
		return types.Int, a, b, nil
	}
	da, err := term.ToDouble(a)
	if err != nil {
		return types.Invalid, nil, nil, err
	}
	db, err := term.ToDouble(b)
	if err != nil {
		return types.Invalid, nil, nil, err
	}
	return types.Double, da, db, nil
}

func (b *builder) conditional(n *ast.ConditionalNode) (*term.Term, error) {
	cond, err := b.build(n.Cond)
	if err != nil {
		return nil, err
	}
	x, err := b.build(n.Exp1)
	if err != nil {
		return nil, err
	}
	y, err := b.build(n.Exp2)
	if err != nil {
		return nil, err
	}
	if x.Type() == y.Type() {
		return term.NewCond(x.Type(), cond, x, y)
	}
	typ, x, y, err := promote(n, x, y)
	if err != nil {
		return nil, err
	}
	return term.NewCond(typ, cond, x, y)
}

// bitwise maps the bit functions onto the integer operators
var bitwise = map[string]term.Kind{
	"bitand": term.KindAndI,
	"bitor":  term.KindOrI,
	"bitxor": term.KindXOrI,
	"bitnot": term.KindNotI,
}

func (b *builder) call(n ast.Node, name string, params []ast.Node) (*term.Term, error) {
	args := make([]*term.Term, len(params))
	for i, p := range params {
		arg, err := b.build(p)
		if err != nil {
			return nil, err
		}
		args[i] = arg
	}

	name = strings.ToLower(name)
	if kind, ok := bitwise[name]; ok {
		if kind == term.KindNotI {
			if len(args) != 1 {
				return nil, types.NewError(types.ErrArity, name, "%s takes 1 argument, got %d", name, len(args))
			}
			return term.NewNotI(args[0])
		}
		if len(args) != 2 {
			return nil, types.NewError(types.ErrArity, name, "%s takes 2 arguments, got %d", name, len(args))
		}
		return term.NewBinary(kind, types.Int, args[0], args[1])
	}

	switch name {
	case "int", "float", "double":
		if len(args) != 1 {
			return nil, types.NewError(types.ErrArity, name, "%s takes 1 argument, got %d", name, len(args))
		}
		return convert(n, name, args[0])
	}
	return b.ns.ResolveCall(name, args...)
}

// convert implements the int() and float()/double() casts
func convert(n ast.Node, name string, arg *term.Term) (*term.Term, error) {
	if !arg.IsNumeric() {
		return nil, types.NewError(types.ErrType, fragment(n), "%s() needs a numeric argument, got %s", name, arg.Type())
	}
	if name == "int" {
		if arg.IsI() {
			return arg, nil
		}
		return term.NewUnary(term.KindConv, types.Int, arg)
	}
	return term.ToDouble(arg)
}
