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
Package condition wraps a boolean term as a per-pixel predicate.

A Condition is what the mask builders evaluate: it is created either from a term built
elsewhere or directly from expression text, and it always has a boolean result type.

	cond, err := condition.NewExprCondition("radiance_1 > 0 AND NOT flags.INVALID", ns,
		condition.WithSimplify())
	if err != nil {
		log.Fatal(err)
	}
	ok, err := cond.Evaluate(term.NewEnv(product).At(x, y, y*width+x))

Constant reports conditions that do not depend on any pixel, letting callers fill a whole
region without evaluating it.
*/
package condition
