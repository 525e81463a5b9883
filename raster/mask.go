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
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/rulego/bandmath/condition"
	"github.com/rulego/bandmath/logger"
	"github.com/rulego/bandmath/term"
	"github.com/rulego/bandmath/types"
)

// ProgressFunc is called after each evaluated row with the number of rows
// done and the total number of rows. Calls are serialized.
type ProgressFunc func(done, total int)

// Option configures a mask computation
type Option func(*maskOptions)

type maskOptions struct {
	progress ProgressFunc
	logger   logger.Logger
	workers  int
}

// WithProgress reports progress once per row
func WithProgress(fn ProgressFunc) Option {
	return func(o *maskOptions) {
		o.progress = fn
	}
}

// WithLogger sets the logger, the process default is used otherwise
func WithLogger(l logger.Logger) Option {
	return func(o *maskOptions) {
		o.logger = l
	}
}

// WithWorkers evaluates rows on n goroutines. The result does not depend
// on n; n <= 1 evaluates sequentially.
func WithWorkers(n int) Option {
	return func(o *maskOptions) {
		o.workers = n
	}
}

func newMaskOptions(opts []Option) *maskOptions {
	o := &maskOptions{workers: 1}
	for _, opt := range opts {
		opt(o)
	}
	if o.logger == nil {
		o.logger = logger.Named(logger.GetDefault(), "raster")
	}
	return o
}

// region is a rectangle of the product raster
type region struct {
	x, y, w, h int
}

func (r region) size() int { return r.w * r.h }

// ReadBitmask evaluates the boolean term t for every pixel of the region
// (x, y, w, h) and stores the results row-major in out. Nothing is written
// to out unless the whole region was evaluated successfully.
func (p *Product) ReadBitmask(ctx context.Context, x, y, w, h int, t *term.Term, out []bool, opts ...Option) error {
	mask, err := p.evaluate(ctx, region{x, y, w, h}, t, len(out), opts)
	if err != nil {
		return err
	}
	copy(out, mask)
	return nil
}

// ReadBitmaskValues is ReadBitmask writing trueValue where t holds and
// falseValue elsewhere, e.g. to build a byte mask for display.
func ReadBitmaskValues[T any](ctx context.Context, p *Product, x, y, w, h int, t *term.Term, out []T, trueValue, falseValue T, opts ...Option) error {
	mask, err := p.evaluate(ctx, region{x, y, w, h}, t, len(out), opts)
	if err != nil {
		return err
	}
	for i, set := range mask {
		if set {
			out[i] = trueValue
		} else {
			out[i] = falseValue
		}
	}
	return nil
}

// CreateValidMask evaluates t over the whole product and returns a bit
// raster with a bit set wherever t holds.
func (p *Product) CreateValidMask(ctx context.Context, t *term.Term, opts ...Option) (*BitRaster, error) {
	r := region{0, 0, p.width, p.height}
	mask, err := p.evaluate(ctx, r, t, r.size(), opts)
	if err != nil {
		return nil, err
	}
	result := NewBitRaster(p.width, p.height)
	for i, set := range mask {
		if set {
			result.Set(i)
		}
	}
	return result, nil
}

// evaluate checks every precondition before the first pixel is touched and
// then evaluates the region into a fresh slice.
func (p *Product) evaluate(ctx context.Context, r region, t *term.Term, outLen int, opts []Option) ([]bool, error) {
	o := newMaskOptions(opts)

	cond, err := condition.New(t)
	if err != nil {
		return nil, err
	}
	if r.x < 0 || r.y < 0 || r.w < 0 || r.h < 0 || r.x+r.w > p.width || r.y+r.h > p.height {
		return nil, types.NewError(types.ErrRegion, t.String(),
			"region (%d, %d, %d, %d) outside product %s of %dx%d", r.x, r.y, r.w, r.h, p.name, p.width, p.height)
	}
	if outLen < r.size() {
		return nil, types.NewError(types.ErrRegion, t.String(),
			"output holds %d elements, region needs %d", outLen, r.size())
	}
	if err := p.checkTerm(t); err != nil {
		return nil, err
	}

	o.logger.Debug("evaluating %s over (%d, %d, %d, %d) of %s", t, r.x, r.y, r.w, r.h, p.name)
	mask := make([]bool, r.size())
	if value, ok := condition.Constant(cond); ok {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		for i := range mask {
			mask[i] = value
		}
		for row := 1; o.progress != nil && row <= r.h; row++ {
			o.progress(row, r.h)
		}
		return mask, nil
	}

	progress := newProgress(o.progress, r.h)
	if o.workers <= 1 || r.h <= 1 {
		env := term.NewEnv(p)
		for row := 0; row < r.h; row++ {
			if err := ctx.Err(); err != nil {
				o.logger.Warn("evaluation of %s cancelled after %d of %d rows", t, row, r.h)
				return nil, err
			}
			if err := p.evaluateRow(cond, env, r, row, mask); err != nil {
				return nil, err
			}
			progress.rowDone()
		}
		return mask, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.workers)
	for row := 0; row < r.h; row++ {
		row := row
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			if err := p.evaluateRow(cond, term.NewEnv(p), r, row, mask); err != nil {
				return err
			}
			progress.rowDone()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		if ctx.Err() != nil {
			o.logger.Warn("evaluation of %s cancelled", t)
			return nil, ctx.Err()
		}
		return nil, err
	}
	return mask, nil
}

// evaluateRow fills mask[row*w : (row+1)*w]
func (p *Product) evaluateRow(cond condition.Condition, env *term.Env, r region, row int, mask []bool) error {
	py := r.y + row
	for col := 0; col < r.w; col++ {
		px := r.x + col
		env.Reset()
		set, err := cond.Evaluate(env.At(px, py, py*p.width+px))
		if err != nil {
			return err
		}
		mask[row*r.w+col] = set
	}
	return nil
}

// progress serializes the row callbacks of concurrent workers
type progress struct {
	mu    sync.Mutex
	fn    ProgressFunc
	done  int
	total int
}

func newProgress(fn ProgressFunc, total int) *progress {
	return &progress{fn: fn, total: total}
}

func (p *progress) rowDone() {
	if p.fn == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.done++
	p.fn(p.done, p.total)
}
