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
	"math"
	"reflect"

	"github.com/spf13/cast"

	"github.com/rulego/bandmath/types"
)

// DataType 波段元素类型
type DataType int

const (
	// Int8 signed 8-bit samples
	Int8 DataType = iota + 1
	// UInt8 unsigned 8-bit samples
	UInt8
	// Int16 signed 16-bit samples
	Int16
	// UInt16 unsigned 16-bit samples
	UInt16
	// Int32 signed 32-bit samples
	Int32
	// UInt32 unsigned 32-bit samples
	UInt32
	// Int64 signed 64-bit samples
	Int64
	// Float32 single precision samples
	Float32
	// Float64 double precision samples
	Float64
)

func (dt DataType) String() string {
	switch dt {
	case Int8:
		return "int8"
	case UInt8:
		return "uint8"
	case Int16:
		return "int16"
	case UInt16:
		return "uint16"
	case Int32:
		return "int32"
	case UInt32:
		return "uint32"
	case Int64:
		return "int64"
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	default:
		return "unknown"
	}
}

// IsInt reports whether samples are integers and may carry flags
func (dt DataType) IsInt() bool {
	return dt >= Int8 && dt <= Int64
}

// Bits returns the element width in bits
func (dt DataType) Bits() int {
	switch dt {
	case Int8, UInt8:
		return 8
	case Int16, UInt16:
		return 16
	case Int32, UInt32, Float32:
		return 32
	case Int64, Float64:
		return 64
	default:
		return 0
	}
}

// intRange returns the smallest and largest sample of an integer type
func (dt DataType) intRange() (int64, int64) {
	switch dt {
	case Int8:
		return math.MinInt8, math.MaxInt8
	case UInt8:
		return 0, math.MaxUint8
	case Int16:
		return math.MinInt16, math.MaxInt16
	case UInt16:
		return 0, math.MaxUint16
	case Int32:
		return math.MinInt32, math.MaxInt32
	case UInt32:
		return 0, math.MaxUint32
	default:
		return math.MinInt64, math.MaxInt64
	}
}

// SymbolType returns the term type band samples are read as
func (dt DataType) SymbolType() types.Type {
	if dt.IsInt() {
		return types.Int
	}
	return types.Double
}

func (dt DataType) alloc(n int) interface{} {
	switch dt {
	case Int8:
		return make([]int8, n)
	case UInt8:
		return make([]uint8, n)
	case Int16:
		return make([]int16, n)
	case UInt16:
		return make([]uint16, n)
	case Int32:
		return make([]int32, n)
	case UInt32:
		return make([]uint32, n)
	case Int64:
		return make([]int64, n)
	case Float32:
		return make([]float32, n)
	default:
		return make([]float64, n)
	}
}

// Band 波段
// A Band is a width x height raster of samples stored row-major in a typed
// slice ([]int8 for Int8 and so on). Integer bands may carry a FlagCoding.
type Band struct {
	name       string
	dataType   DataType
	width      int
	height     int
	data       interface{}
	flagCoding *FlagCoding
	product    *Product
	id         int
}

// NewBand creates a zero-filled band
func NewBand(name string, dataType DataType, width, height int) *Band {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Band{
		name:     name,
		dataType: dataType,
		width:    width,
		height:   height,
		data:     dataType.alloc(width * height),
		id:       -1,
	}
}

func (b *Band) Name() string            { return b.name }
func (b *Band) DataType() DataType      { return b.dataType }
func (b *Band) Width() int              { return b.width }
func (b *Band) Height() int             { return b.height }
func (b *Band) FlagCoding() *FlagCoding { return b.flagCoding }
func (b *Band) Product() *Product       { return b.product }
func (b *Band) DataElems() interface{}  { return b.data }
func (b *Band) numElems() int           { return b.width * b.height }
func (b *Band) inRange(index int) bool  { return index >= 0 && index < b.numElems() }
func (b *Band) String() string          { return fmt.Sprintf("%s(%s)", b.name, b.dataType) }

// SetDataElems replaces the sample slice. elems must be a slice of the
// band's element type holding width*height values; it is used as is.
func (b *Band) SetDataElems(elems interface{}) error {
	if reflect.TypeOf(elems) != reflect.TypeOf(b.data) {
		return types.NewError(types.ErrType, b.name, "band %s needs %T, got %T", b.name, b.data, elems)
	}
	if n := sliceLen(elems); n != b.numElems() {
		return types.NewError(types.ErrRegion, b.name, "band %s needs %d elements, got %d", b.name, b.numElems(), n)
	}
	b.data = elems
	return nil
}

// Elem returns sample index as the band's Go element type
func (b *Band) Elem(index int) (interface{}, error) {
	if !b.inRange(index) {
		return nil, types.NewError(types.ErrRegion, b.name, "index %d outside band %s", index, b.name)
	}
	switch data := b.data.(type) {
	case []int8:
		return data[index], nil
	case []uint8:
		return data[index], nil
	case []int16:
		return data[index], nil
	case []uint16:
		return data[index], nil
	case []int32:
		return data[index], nil
	case []uint32:
		return data[index], nil
	case []int64:
		return data[index], nil
	case []float32:
		return data[index], nil
	case []float64:
		return data[index], nil
	}
	return nil, types.NewError(types.ErrType, b.name, "band %s has no data", b.name)
}

// SetPixel stores value at (x, y), converting it to the element type
func (b *Band) SetPixel(x, y int, value interface{}) error {
	if x < 0 || y < 0 || x >= b.width || y >= b.height {
		return types.NewError(types.ErrRegion, b.name, "pixel (%d, %d) outside band %s", x, y, b.name)
	}
	return b.setElem(y*b.width+x, value)
}

func (b *Band) setElem(index int, value interface{}) error {
	if !b.dataType.IsInt() {
		f, err := cast.ToFloat64E(value)
		if err != nil {
			return types.WrapError(types.ErrType, b.name, err)
		}
		if b.dataType == Float32 && !math.IsInf(f, 0) && math.Abs(f) > math.MaxFloat32 {
			return types.NewError(types.ErrType, b.name, "value %v overflows %s band %s", value, b.dataType, b.name)
		}
		switch data := b.data.(type) {
		case []float32:
			data[index] = float32(f)
		case []float64:
			data[index] = f
		}
		return nil
	}

	i, err := toInteger(value)
	if err != nil {
		return types.WrapError(types.ErrType, b.name, err)
	}
	if lo, hi := b.dataType.intRange(); i < lo || i > hi {
		return types.NewError(types.ErrType, b.name, "value %v out of range [%d, %d] of %s band %s",
			value, lo, hi, b.dataType, b.name)
	}
	switch data := b.data.(type) {
	case []int8:
		data[index] = int8(i)
	case []uint8:
		data[index] = uint8(i)
	case []int16:
		data[index] = int16(i)
	case []uint16:
		data[index] = uint16(i)
	case []int32:
		data[index] = int32(i)
	case []uint32:
		data[index] = uint32(i)
	case []int64:
		data[index] = i
	}
	return nil
}

// toInteger converts value without wrapping or truncating it
func toInteger(value interface{}) (int64, error) {
	switch v := value.(type) {
	case float32:
		return integral(float64(v))
	case float64:
		return integral(v)
	case uint:
		if uint64(v) > math.MaxInt64 {
			return 0, fmt.Errorf("value %d exceeds int64", v)
		}
	case uint64:
		if v > math.MaxInt64 {
			return 0, fmt.Errorf("value %d exceeds int64", v)
		}
	}
	return cast.ToInt64E(value)
}

func integral(f float64) (int64, error) {
	if f != math.Trunc(f) || f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, fmt.Errorf("value %v is not an int64", f)
	}
	return int64(f), nil
}

// SetFlagCoding attaches fc after checking that every mask fits the
// element width. Passing nil detaches the coding.
func (b *Band) SetFlagCoding(fc *FlagCoding) error {
	if fc != nil {
		if err := fc.Validate(b.dataType); err != nil {
			return fmt.Errorf("flag coding %s on band %s: %w", fc.Name(), b.name, err)
		}
	}
	if b.flagCoding != nil {
		b.flagCoding.detach(b)
	}
	if fc != nil {
		fc.attach(b)
	}
	b.flagCoding = fc
	return nil
}

func sliceLen(elems interface{}) int {
	switch data := elems.(type) {
	case []int8:
		return len(data)
	case []uint8:
		return len(data)
	case []int16:
		return len(data)
	case []uint16:
		return len(data)
	case []int32:
		return len(data)
	case []uint32:
		return len(data)
	case []int64:
		return len(data)
	case []float32:
		return len(data)
	case []float64:
		return len(data)
	}
	return -1
}
