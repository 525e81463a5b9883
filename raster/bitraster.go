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

package raster

import (
	"github.com/bits-and-blooms/bitset"
)

// BitRaster is a width x height raster of bits, row-major
type BitRaster struct {
	width  int
	height int
	bits   *bitset.BitSet
}

// NewBitRaster creates a raster with all bits cleared
func NewBitRaster(width, height int) *BitRaster {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &BitRaster{
		width:  width,
		height: height,
		bits:   bitset.New(uint(width * height)),
	}
}

func (r *BitRaster) Width() int  { return r.width }
func (r *BitRaster) Height() int { return r.height }

func (r *BitRaster) contains(i int) bool {
	return i >= 0 && i < r.width*r.height
}

// Set sets the bit at element index i. Indices outside the raster are
// ignored.
func (r *BitRaster) Set(i int) {
	if r.contains(i) {
		r.bits.Set(uint(i))
	}
}

// Clear clears the bit at element index i
func (r *BitRaster) Clear(i int) {
	if r.contains(i) {
		r.bits.Clear(uint(i))
	}
}

// IsSet reports the bit at element index i. Indices outside the raster
// are never set.
func (r *BitRaster) IsSet(i int) bool {
	if !r.contains(i) {
		return false
	}
	return r.bits.Test(uint(i))
}

// IsSetAt reports the bit at pixel (x, y)
func (r *BitRaster) IsSetAt(x, y int) bool {
	if x < 0 || y < 0 || x >= r.width || y >= r.height {
		return false
	}
	return r.bits.Test(uint(y*r.width + x))
}

// Count returns the number of set bits
func (r *BitRaster) Count() int {
	return int(r.bits.Count())
}
