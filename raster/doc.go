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
Package raster holds the pixel data boolean terms are evaluated against and
the mask builders that evaluate them.

A Product groups equally sized Bands. Integer bands may carry a FlagCoding;
each flag becomes a boolean symbol named band.flag that holds for a pixel
when any bit of the flag mask is set in the sample.

# Usage

	p := raster.NewProduct("L1B", width, height)
	flags := raster.NewBand("l1_flags", raster.UInt16, width, height)
	_ = flags.SetDataElems(samples)
	fc := raster.NewFlagCoding("l1_flags")
	_ = fc.AddFlag("INVALID", 0x01, "invalid pixel")
	_ = fc.AddFlag("LAND", 0x10, "land pixel")
	_ = flags.SetFlagCoding(fc)
	_ = p.AddBand(flags)

	t, err := p.ParseExpression("not l1_flags.INVALID and l1_flags.LAND")
	if err != nil {
		return err
	}
	mask, err := p.CreateValidMask(ctx, t, raster.WithWorkers(4))

ReadBitmask and ReadBitmaskValues evaluate a rectangular region into a
caller supplied slice. All preconditions are checked before the first
pixel is evaluated and the slice is written only after the whole region
succeeded, so a failed call leaves it untouched.
*/
package raster
