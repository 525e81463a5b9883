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

package bandmath

import (
	"context"
	"strings"

	"github.com/rulego/bandmath/expr"
	"github.com/rulego/bandmath/functions"
	"github.com/rulego/bandmath/logger"
	"github.com/rulego/bandmath/namespace"
	"github.com/rulego/bandmath/raster"
	"github.com/rulego/bandmath/simplify"
	"github.com/rulego/bandmath/term"
	"github.com/rulego/bandmath/types"
)

// Engine 是波段表达式引擎的主要接口。
// It parses expressions against a product, optionally simplifies them and
// builds flag and valid masks with the configured worker count.
//
// 使用示例:
//
//	engine := bandmath.New(bandmath.WithWorkers(4))
//	mask, err := engine.CreateValidMaskExpr(ctx, product, "not l1_flags.INVALID")
type Engine struct {
	registry *functions.Registry
	simplify bool
	workers  int
	logger   logger.Logger
	level    *logger.Level
}

// New 创建一个新的引擎实例。
// Without options the built-in functions are used, parsed terms are
// simplified and masks are built sequentially.
//
// 示例:
//
//	// 默认实例
//	engine := bandmath.New()
//
//	// 从配置创建
//	cfg, _ := types.LoadConfig(file)
//	engine := bandmath.New(bandmath.WithConfig(cfg))
func New(options ...Option) *Engine {
	cfg := types.DefaultConfig()
	e := &Engine{
		registry: functions.Builtin(),
		simplify: cfg.Simplify,
		workers:  cfg.Workers,
		logger:   logger.GetDefault(),
	}
	for _, option := range options {
		option(e)
	}
	if e.level != nil {
		e.logger = logger.WithLevel(e.logger, *e.level)
	}
	return e
}

// Functions returns the function registry expressions are resolved against
func (e *Engine) Functions() *functions.Registry {
	return e.registry
}

// Namespace returns the symbols of p together with the engine's functions
func (e *Engine) Namespace(p *raster.Product) (*namespace.Namespace, error) {
	return p.Namespace(e.registry)
}

// Parse builds the term for src against the symbols of p. The term is
// simplified unless the engine was created with WithSimplify(false).
func (e *Engine) Parse(p *raster.Product, src string) (*term.Term, error) {
	ns, err := e.Namespace(p)
	if err != nil {
		return nil, err
	}
	if err := checkSymbols(src, ns); err != nil {
		e.logger.Debug("bandmath: parse %q failed: %v", src, err)
		return nil, err
	}
	t, err := expr.Parse(src, ns)
	if err != nil {
		e.logger.Debug("bandmath: parse %q failed: %v", src, err)
		return nil, err
	}
	if e.simplify {
		simplified := simplify.Simplify(t)
		e.logger.Debug("bandmath: %s simplified to %s", t, simplified)
		t = simplified
	}
	return t, nil
}

// checkSymbols reports every name of src that ns does not define in one
// error, before the term is built.
func checkSymbols(src string, ns *namespace.Namespace) error {
	names, err := expr.Identifiers(src)
	if err != nil {
		return err
	}
	var missing []string
	for _, name := range names {
		if _, ok := ns.Symbol(name); !ok {
			missing = append(missing, name)
		}
	}
	switch len(missing) {
	case 0:
		return nil
	case 1:
		return types.NewError(types.ErrUnresolvedSymbol, missing[0], "undefined symbol '%s'", missing[0])
	}
	list := strings.Join(missing, ", ")
	return types.NewError(types.ErrUnresolvedSymbol, list, "undefined symbols: %s", list)
}

// Simplify returns the simplified form of t
func (e *Engine) Simplify(t *term.Term) *term.Term {
	return simplify.Simplify(t)
}

// ReadBitmask evaluates t over the region (x, y, w, h) of p into out
func (e *Engine) ReadBitmask(ctx context.Context, p *raster.Product, x, y, w, h int, t *term.Term, out []bool, opts ...raster.Option) error {
	return p.ReadBitmask(ctx, x, y, w, h, t, out, e.maskOptions(opts)...)
}

// ReadBitmaskExpr parses src and evaluates it over the region (x, y, w, h)
func (e *Engine) ReadBitmaskExpr(ctx context.Context, p *raster.Product, x, y, w, h int, src string, out []bool, opts ...raster.Option) error {
	t, err := e.Parse(p, src)
	if err != nil {
		return err
	}
	return e.ReadBitmask(ctx, p, x, y, w, h, t, out, opts...)
}

// CreateValidMask evaluates t over the whole of p
func (e *Engine) CreateValidMask(ctx context.Context, p *raster.Product, t *term.Term, opts ...raster.Option) (*raster.BitRaster, error) {
	return p.CreateValidMask(ctx, t, e.maskOptions(opts)...)
}

// CreateValidMaskExpr parses src and builds the valid mask of p
func (e *Engine) CreateValidMaskExpr(ctx context.Context, p *raster.Product, src string, opts ...raster.Option) (*raster.BitRaster, error) {
	t, err := e.Parse(p, src)
	if err != nil {
		return nil, err
	}
	return e.CreateValidMask(ctx, p, t, opts...)
}

// ReadBitmaskValues is Engine.ReadBitmask writing trueValue and falseValue
func ReadBitmaskValues[T any](ctx context.Context, e *Engine, p *raster.Product, x, y, w, h int, t *term.Term, out []T, trueValue, falseValue T, opts ...raster.Option) error {
	return raster.ReadBitmaskValues(ctx, p, x, y, w, h, t, out, trueValue, falseValue, e.maskOptions(opts)...)
}

// maskOptions puts the engine defaults in front of the caller's options
func (e *Engine) maskOptions(opts []raster.Option) []raster.Option {
	defaults := []raster.Option{
		raster.WithWorkers(e.workers),
		raster.WithLogger(logger.Named(e.logger, "raster")),
	}
	return append(defaults, opts...)
}
