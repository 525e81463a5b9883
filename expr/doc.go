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

/*
Package expr turns band maths expression text into typed terms.

Parsing is delegated to the expr-lang parser; this package normalizes the text first
(keywords such as AND, OR and NOT are accepted in any case) and then converts the syntax
tree into a term.Term, resolving every name against a namespace.Namespace.

# Supported syntax

	Literals        1, 2.5, 1e-3, true, 'text'
	Symbols         radiance_1, PI, E, flags.INVALID (band.flag)
	Arithmetic      + - * / %      int if both operands are int, double otherwise
	Power           ^ **           mapped to pow()
	Comparison      == != < <= > >=
	Logical         and or not && || !
	Conditional     cond ? a : b
	Functions       sqrt(x), min(a, b), ... as registered in the namespace
	Bit operations  bitand(a, b), bitor(a, b), bitxor(a, b), bitnot(a)
	Casts           int(x), float(x), double(x)

Int operands mixed with doubles are converted explicitly, the resulting term contains a
conversion node rather than relying on implicit promotion.

# Usage

	ns, _ := product.Namespace(nil)
	t, err := expr.Parse("radiance_13 > 0.5 AND NOT l1_flags.INVALID", ns)
	if err != nil {
		log.Fatal(err)
	}

Errors are *types.Error values: ErrSyntax for text the parser rejects, ErrUnresolvedSymbol
and ErrUnresolvedFunction for unknown names, ErrArity and ErrType for calls and operators
whose operands do not fit.

Tokenize and Identifiers expose the tokenizer used for normalization, e.g. to list the
bands an expression needs before building it.
*/
package expr
