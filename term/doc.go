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
Package term implements the typed expression tree of bandmath together with its
comparator and evaluator.

A Term is an immutable node with a declared result type (boolean, int, double or string)
fixed at construction. Constructors check operand types and fail with a types.Error of
kind ErrType; there is no implicit int to double promotion inside a node, the builder
inserts an explicit KindConv node instead.

# Variants

	KindConstB, KindConstI, KindConstD, KindConstS   literals
	KindRef                                          symbol reference (constant, sample, flag, variable)
	KindCall                                         function call
	KindCond, KindAssign                             ternary and assignment
	KindNotB, KindAndB, KindOrB                      logical
	KindNotI, KindXOrI, KindAndI, KindOrI            bitwise
	KindNeg, KindAdd, KindSub, KindMul, KindDiv, KindMod
	KindEqB ... KindGeD                              comparisons, one per operand type
	KindConv                                         int <-> double conversion

# Evaluation

EvalB, EvalI, EvalD and EvalS walk the tree against an Env that carries the pixel
position and a SampleContext. Evaluation does not memoize; logical AND and OR always
evaluate both operands, the ternary evaluates only the selected branch.

	env := term.NewEnv(product).At(x, y, y*width+x)
	ok, err := term.EvalB(t, env)

# Ordering

Compare is a total order used to canonicalize commutative operators and to detect
structurally equal sub-terms.
*/
package term
