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
	"fmt"

	"github.com/hashicorp/go-multierror"

	"github.com/rulego/bandmath/types"
)

// FlagDefinition 标志定义
// A flag is set for a pixel when any bit of Mask is set in the sample.
type FlagDefinition struct {
	Name        string
	Mask        int64
	Description string
}

// FlagCoding is the ordered set of flags defined on an integer band
type FlagCoding struct {
	name  string
	flags []*FlagDefinition
	bands []*Band
}

// NewFlagCoding creates an empty flag coding
func NewFlagCoding(name string) *FlagCoding {
	return &FlagCoding{name: name}
}

// Name returns the coding name
func (fc *FlagCoding) Name() string {
	return fc.name
}

// AddFlag appends a flag. Names are unique within a coding and the mask
// must have at least one bit set. Once the coding is attached the mask
// must also fit the element width of every band carrying it.
func (fc *FlagCoding) AddFlag(name string, mask int64, description string) error {
	if name == "" {
		return fmt.Errorf("flag coding %s: flag name must not be empty", fc.name)
	}
	if mask == 0 {
		return fmt.Errorf("flag coding %s: flag %s has an empty mask", fc.name, name)
	}
	if _, exists := fc.Flag(name); exists {
		return fmt.Errorf("flag coding %s: flag %s already defined", fc.name, name)
	}
	for _, b := range fc.bands {
		if !maskFits(mask, b.dataType) {
			return types.NewError(types.ErrType, name, "flag %s: mask 0x%X does not fit %d bits of band %s",
				name, mask, b.dataType.Bits(), b.name)
		}
	}
	fc.flags = append(fc.flags, &FlagDefinition{Name: name, Mask: mask, Description: description})
	return nil
}

// RemoveFlag removes the named flag and reports whether it existed
func (fc *FlagCoding) RemoveFlag(name string) bool {
	for i, f := range fc.flags {
		if f.Name == name {
			fc.flags = append(fc.flags[:i], fc.flags[i+1:]...)
			return true
		}
	}
	return false
}

// Flag looks up a flag by name
func (fc *FlagCoding) Flag(name string) (*FlagDefinition, bool) {
	for _, f := range fc.flags {
		if f.Name == name {
			return f, true
		}
	}
	return nil, false
}

// Flags returns the flags in definition order
func (fc *FlagCoding) Flags() []*FlagDefinition {
	return append([]*FlagDefinition(nil), fc.flags...)
}

// Validate checks that the coding can be attached to a band of type dt:
// the band must be an integer band and every mask must fit its element
// width. All offending flags are reported together.
func (fc *FlagCoding) Validate(dt DataType) error {
	if !dt.IsInt() {
		return types.NewError(types.ErrType, fc.name, "flags need an integer band, got %s", dt)
	}
	var result *multierror.Error
	for _, f := range fc.flags {
		if !maskFits(f.Mask, dt) {
			result = multierror.Append(result,
				fmt.Errorf("flag %s: mask 0x%X does not fit %d bits", f.Name, f.Mask, dt.Bits()))
		}
	}
	return result.ErrorOrNil()
}

func (fc *FlagCoding) attach(b *Band) {
	fc.bands = append(fc.bands, b)
}

func (fc *FlagCoding) detach(b *Band) {
	for i, attached := range fc.bands {
		if attached == b {
			fc.bands = append(fc.bands[:i], fc.bands[i+1:]...)
			return
		}
	}
}

// maskFits reports whether mask only uses bits of dt's element width
func maskFits(mask int64, dt DataType) bool {
	bits := dt.Bits()
	return bits >= 64 || mask&^(int64(1)<<uint(bits)-1) == 0
}
