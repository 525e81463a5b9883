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
Package functions provides the function half of the bandmath symbol and function registry.

Every built-in is a Function descriptor with a fixed signature (declared argument types
and result type) and a pure implementation. Descriptors carry a FunctionID so that the
simplifier can recognise sqrt, sqr, pow, exp, log and abs by value rather than by pointer.

# Function Types

	TypeMath    - sin, cos, tan, asin, acos, atan, atan2, log, log10, exp, exp10,
	              sqr, sqrt, pow, abs, sign, min, max, floor, ceil, round, rint, deg, rad
	TypeCompare - nan, inf, feq
	TypeBit     - bit_set
	TypeCustom  - user functions created with NewCustomFunction

# Registry

A Registry is immutable. Build one with NewRegistry or extend an existing one with With;
the built-in registry returned by Builtin is shared read-only:

	reg, err := functions.Builtin().With(myFunc)
	fn, err := reg.Resolve("abs", []types.Type{types.Int})
*/
package functions
