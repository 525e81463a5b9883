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
Package types provides the value model shared by every bandmath package.

# Core Features

• Result Types - Bool, Int, Double and String, the closed set of declared term types
• Runtime Values - Value, a tagged value used for function arguments and generic evaluation
• Errors - Error and ErrorKind, the structured errors of building and evaluating terms
• Configuration - Config, loadable from YAML, consumed by the bandmath engine

Types never convert implicitly: an Int term is promoted to Double only by an explicit
conversion node inserted by the term builder.
*/
package types
