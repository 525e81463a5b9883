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
	"io"

	"github.com/rulego/bandmath/functions"
	"github.com/rulego/bandmath/logger"
	"github.com/rulego/bandmath/types"
)

// Option 表示对引擎默认行为的修改配置。
type Option func(*Engine)

// WithLogger 设置自定义日志记录器。
//
// 示例:
//
//	customLogger := logger.NewLogger(logger.DEBUG, os.Stderr)
//	engine := bandmath.New(bandmath.WithLogger(customLogger))
func WithLogger(log logger.Logger) Option {
	return func(e *Engine) {
		if log == nil {
			log = logger.NewDiscardLogger()
		}
		e.logger = log
	}
}

// WithLogLevel 设置日志级别。
// The engine logs through its own copy of the configured logger filtered
// at level; the process default and loggers passed to WithLogger keep
// their levels.
func WithLogLevel(level logger.Level) Option {
	return func(e *Engine) {
		e.level = &level
	}
}

// WithLogOutput 设置日志输出目标
func WithLogOutput(output io.Writer, level logger.Level) Option {
	return func(e *Engine) {
		e.logger = logger.NewLogger(level, output)
	}
}

// WithDiscardLog 禁用日志输出
func WithDiscardLog() Option {
	return func(e *Engine) {
		e.logger = logger.NewDiscardLogger()
	}
}

// WithFunctions resolves function calls against registry instead of the
// built-in functions. Use functions.Builtin().With(...) to add to them.
func WithFunctions(registry *functions.Registry) Option {
	return func(e *Engine) {
		if registry != nil {
			e.registry = registry
		}
	}
}

// WithSimplify turns simplification of parsed terms on or off
func WithSimplify(enabled bool) Option {
	return func(e *Engine) {
		e.simplify = enabled
	}
}

// WithWorkers sets the number of goroutines used to build masks
func WithWorkers(n int) Option {
	return func(e *Engine) {
		if n < 1 {
			n = 1
		}
		e.workers = n
	}
}

// WithConfig applies a loaded configuration. An unknown log level is
// reported on the engine's logger and otherwise ignored.
func WithConfig(cfg types.Config) Option {
	return func(e *Engine) {
		e.simplify = cfg.Simplify
		WithWorkers(cfg.Workers)(e)
		if cfg.LogLevel == "" {
			return
		}
		level, err := logger.ParseLevel(cfg.LogLevel)
		if err != nil {
			e.logger.Warn("bandmath: %v", err)
			return
		}
		e.level = &level
	}
}
