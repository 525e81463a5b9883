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
	"strings"

	"github.com/rulego/bandmath/expr"
	"github.com/rulego/bandmath/functions"
	"github.com/rulego/bandmath/namespace"
	"github.com/rulego/bandmath/term"
	"github.com/rulego/bandmath/types"
)

// Product 数据产品
// A Product is a set of equally sized bands. It is the SampleContext the
// mask builders evaluate terms against: band symbols and flag symbols it
// hands out carry the band id as sample id and the product as owner.
type Product struct {
	name   string
	width  int
	height int
	bands  []*Band
	byID   map[int]*Band
	nextID int
}

// NewProduct creates an empty product
func NewProduct(name string, width, height int) *Product {
	return &Product{
		name:   name,
		width:  width,
		height: height,
		byID:   make(map[int]*Band),
	}
}

func (p *Product) Name() string { return p.name }
func (p *Product) Width() int   { return p.width }
func (p *Product) Height() int  { return p.height }

// AddBand adds b. Its size must match the product and its name must be
// unique; a band belongs to at most one product.
func (p *Product) AddBand(b *Band) error {
	if b.width != p.width || b.height != p.height {
		return types.NewError(types.ErrRegion, b.name, "band %s is %dx%d, product %s is %dx%d",
			b.name, b.width, b.height, p.name, p.width, p.height)
	}
	if b.product != nil {
		return fmt.Errorf("band %s already belongs to product %s", b.name, b.product.name)
	}
	if _, exists := p.Band(b.name); exists {
		return fmt.Errorf("product %s already has a band %s", p.name, b.name)
	}
	b.product = p
	b.id = p.nextID
	p.nextID++
	p.bands = append(p.bands, b)
	p.byID[b.id] = b
	return nil
}

// RemoveBand removes the named band. Terms built before keep referencing
// it and are rejected by the mask builders.
func (p *Product) RemoveBand(name string) bool {
	for i, b := range p.bands {
		if b.name == name {
			p.bands = append(p.bands[:i], p.bands[i+1:]...)
			delete(p.byID, b.id)
			b.product = nil
			b.id = -1
			return true
		}
	}
	return false
}

// Band looks up a band by name
func (p *Product) Band(name string) (*Band, bool) {
	for _, b := range p.bands {
		if b.name == name {
			return b, true
		}
	}
	return nil, false
}

// Bands returns the bands in insertion order
func (p *Product) Bands() []*Band {
	return append([]*Band(nil), p.bands...)
}

// Sample implements term.SampleContext
func (p *Product) Sample(id int, index int) (interface{}, error) {
	b, ok := p.byID[id]
	if !ok {
		return nil, fmt.Errorf("product %s has no band with id %d", p.name, id)
	}
	return b.Elem(index)
}

// LookupFlag returns the mask of band.flag and the sample id of its band
func (p *Product) LookupFlag(band, flag string) (mask int64, sampleID int, err error) {
	b, ok := p.Band(band)
	if !ok {
		return 0, -1, types.NewError(types.ErrUnresolvedSymbol, band, "product %s has no band %s", p.name, band)
	}
	if b.flagCoding == nil {
		return 0, -1, types.NewError(types.ErrUnresolvedSymbol, band, "band %s has no flag coding", band)
	}
	f, ok := b.flagCoding.Flag(flag)
	if !ok {
		name := band + "." + flag
		return 0, -1, types.NewError(types.ErrUnresolvedSymbol, name, "flag %s is not defined", name)
	}
	return f.Mask, b.id, nil
}

// Symbols creates one symbol per band and one per flag. Flag symbols are
// named band.flag.
func (p *Product) Symbols() []*term.Symbol {
	var symbols []*term.Symbol
	for _, b := range p.bands {
		symbols = append(symbols, term.NewSampleSymbol(b.name, b.dataType.SymbolType(), p, b.id))
		if b.flagCoding == nil {
			continue
		}
		for _, f := range b.flagCoding.flags {
			symbols = append(symbols, term.NewFlagSymbol(b.name+"."+f.Name, p, b.id, f.Mask))
		}
	}
	return symbols
}

// Namespace returns a namespace holding the product's symbols. A nil
// registry means functions.Builtin().
func (p *Product) Namespace(registry *functions.Registry) (*namespace.Namespace, error) {
	return namespace.New(registry, p.Symbols()...)
}

// ParseExpression parses src against the product's symbols and the
// built-in functions.
func (p *Product) ParseExpression(src string) (*term.Term, error) {
	ns, err := p.Namespace(nil)
	if err != nil {
		return nil, err
	}
	return expr.Parse(src, ns)
}

// checkTerm verifies that every sample and flag symbol of t belongs to p
// and still refers to one of its bands. Flag symbols must still name a
// flag of that band with the mask they were built with.
func (p *Product) checkTerm(t *term.Term) error {
	for _, sym := range term.Refs(t) {
		if sym.Kind() != term.SymbolSample && sym.Kind() != term.SymbolFlag {
			continue
		}
		if owner, ok := sym.Owner().(*Product); !ok || owner != p {
			return types.NewError(types.ErrUnresolvedSymbol, sym.Name(),
				"symbol %s does not belong to product %s", sym.Name(), p.name)
		}
		b, ok := p.byID[sym.SampleID()]
		if !ok {
			return types.NewError(types.ErrUnresolvedSymbol, sym.Name(),
				"band of symbol %s was removed from product %s", sym.Name(), p.name)
		}
		if sym.Kind() == term.SymbolFlag {
			if err := p.checkFlag(b, sym); err != nil {
				return err
			}
		}
	}
	return nil
}

// checkFlag resolves the flag symbol sym of band b again
func (p *Product) checkFlag(b *Band, sym *term.Symbol) error {
	flag, ok := strings.CutPrefix(sym.Name(), b.name+".")
	if !ok {
		return types.NewError(types.ErrUnresolvedSymbol, sym.Name(),
			"flag symbol %s does not name a flag of band %s", sym.Name(), b.name)
	}
	mask, _, err := p.LookupFlag(b.name, flag)
	if err != nil {
		return err
	}
	if mask != sym.Mask() {
		return types.NewError(types.ErrUnresolvedSymbol, sym.Name(),
			"flag %s changed its mask from 0x%X to 0x%X", sym.Name(), sym.Mask(), mask)
	}
	return nil
}
