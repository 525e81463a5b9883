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
Package bandmath 是一个面向遥感数据产品的波段表达式引擎。

It compiles band expressions such as

	radiance_13 > 0.5 and not l1_flags.INVALID

into typed terms, simplifies them and evaluates them pixel by pixel to
build flag masks and valid-pixel masks.

# 包结构

  - types: value types, structured errors and the YAML configuration
  - functions: descriptors of the built-in math functions and custom functions
  - term: the term tree, its comparator, printer and evaluator
  - namespace: symbol and function resolution
  - expr: expression text to term
  - simplify: algebraic simplification and constant folding
  - condition: boolean terms used as pixel predicates
  - raster: bands, flag codings, products and the mask builders

# 入门示例

	p := raster.NewProduct("MER_RR", 1121, 1093)
	// ... add bands and flag codings ...

	engine := bandmath.New(bandmath.WithWorkers(4))
	mask, err := engine.CreateValidMaskExpr(ctx, p, "l1_flags.LAND and radiance_13 > 20")
	if err != nil {
		return err
	}
	fmt.Println(mask.Count(), "valid pixels")

# 自定义函数

	clamp := functions.NewCustomFunction("clamp01", "clamp to [0,1]", types.Double,
		[]types.Type{types.Double}, func(args []types.Value) (types.Value, error) {
			return types.DoubleValue(math.Min(1, math.Max(0, args[0].Double()))), nil
		})
	registry, err := functions.Builtin().With(clamp)
	engine := bandmath.New(bandmath.WithFunctions(registry))
*/
package bandmath
