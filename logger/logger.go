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

// Package logger provides the leveled logging used by the expression
// engine and the mask builders. A process wide default logger is used
// unless a component is given its own.
package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync/atomic"
	"time"
)

// Level 日志级别
type Level int32

const (
	// DEBUG per evaluation details
	DEBUG Level = iota
	// INFO general information
	INFO
	// WARN recoverable problems, e.g. a cancelled mask computation
	WARN
	// ERROR errors only
	ERROR
	// OFF disables logging
	OFF
)

// String returns string representation of log level
func (l Level) String() string {
	switch l {
	case DEBUG:
		return "DEBUG"
	case INFO:
		return "INFO"
	case WARN:
		return "WARN"
	case ERROR:
		return "ERROR"
	case OFF:
		return "OFF"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel parses a level name, case insensitive
func ParseLevel(s string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return DEBUG, nil
	case "INFO":
		return INFO, nil
	case "WARN", "WARNING":
		return WARN, nil
	case "ERROR":
		return ERROR, nil
	case "OFF", "NONE":
		return OFF, nil
	}
	return OFF, fmt.Errorf("unknown log level %q", s)
}

// Logger interface defines basic methods for logging
type Logger interface {
	// Debug records debug level logs
	Debug(format string, args ...interface{})
	// Info records info level logs
	Info(format string, args ...interface{})
	// Warn records warning level logs
	Warn(format string, args ...interface{})
	// Error records error level logs
	Error(format string, args ...interface{})
	// SetLevel sets the log level
	SetLevel(level Level)
}

// defaultLogger writes one line per message:
//
//	[2025-01-02 15:04:05.000] [INFO] [raster] message
type defaultLogger struct {
	level  atomic.Int32
	prefix string
	logger *log.Logger
}

// NewLogger creates a logger writing to output
//
// Example:
//
//	l := logger.NewLogger(logger.DEBUG, os.Stderr)
//	l.Debug("parsed %s", t)
func NewLogger(level Level, output io.Writer) Logger {
	return newLogger(level, "", log.New(output, "", 0))
}

func newLogger(level Level, prefix string, out *log.Logger) *defaultLogger {
	l := &defaultLogger{prefix: prefix, logger: out}
	l.level.Store(int32(level))
	return l
}

// Named returns a logger that tags every line with name. Loggers created
// by NewLogger share their output and level with the named child; other
// loggers are returned unchanged.
func Named(l Logger, name string) Logger {
	d, ok := l.(*defaultLogger)
	if !ok {
		return l
	}
	prefix := name
	if d.prefix != "" {
		prefix = d.prefix + "." + name
	}
	child := newLogger(Level(d.level.Load()), prefix, d.logger)
	return child
}

// WithLevel returns a logger writing where l writes but filtering at
// level. l itself keeps its level.
func WithLevel(l Logger, level Level) Logger {
	switch d := l.(type) {
	case *defaultLogger:
		return newLogger(level, d.prefix, d.logger)
	case discardLogger:
		return d
	}
	f := &levelFilter{next: l}
	f.level.Store(int32(level))
	return f
}

// levelFilter drops messages below its own level before passing them on
type levelFilter struct {
	level atomic.Int32
	next  Logger
}

func (f *levelFilter) enabled(level Level) bool {
	current := Level(f.level.Load())
	return current != OFF && level >= current
}

func (f *levelFilter) Debug(format string, args ...interface{}) {
	if f.enabled(DEBUG) {
		f.next.Debug(format, args...)
	}
}

func (f *levelFilter) Info(format string, args ...interface{}) {
	if f.enabled(INFO) {
		f.next.Info(format, args...)
	}
}

func (f *levelFilter) Warn(format string, args ...interface{}) {
	if f.enabled(WARN) {
		f.next.Warn(format, args...)
	}
}

func (f *levelFilter) Error(format string, args ...interface{}) {
	if f.enabled(ERROR) {
		f.next.Error(format, args...)
	}
}

func (f *levelFilter) SetLevel(level Level) { f.level.Store(int32(level)) }

func (l *defaultLogger) Debug(format string, args ...interface{}) { l.log(DEBUG, format, args...) }
func (l *defaultLogger) Info(format string, args ...interface{})  { l.log(INFO, format, args...) }
func (l *defaultLogger) Warn(format string, args ...interface{})  { l.log(WARN, format, args...) }
func (l *defaultLogger) Error(format string, args ...interface{}) { l.log(ERROR, format, args...) }

// SetLevel 设置日志级别
func (l *defaultLogger) SetLevel(level Level) {
	l.level.Store(int32(level))
}

func (l *defaultLogger) enabled(level Level) bool {
	current := Level(l.level.Load())
	return current != OFF && level >= current
}

func (l *defaultLogger) log(level Level, format string, args ...interface{}) {
	if !l.enabled(level) {
		return
	}
	var sb strings.Builder
	sb.WriteString("[")
	sb.WriteString(time.Now().Format("2006-01-02 15:04:05.000"))
	sb.WriteString("] [")
	sb.WriteString(level.String())
	sb.WriteString("] ")
	if l.prefix != "" {
		sb.WriteString("[")
		sb.WriteString(l.prefix)
		sb.WriteString("] ")
	}
	fmt.Fprintf(&sb, format, args...)
	l.logger.Println(sb.String())
}

// discardLogger is a logger that discards all log output
type discardLogger struct{}

// NewDiscardLogger creates a logger that discards all logs
func NewDiscardLogger() Logger {
	return discardLogger{}
}

func (discardLogger) Debug(format string, args ...interface{}) {}
func (discardLogger) Info(format string, args ...interface{})  {}
func (discardLogger) Warn(format string, args ...interface{})  {}
func (discardLogger) Error(format string, args ...interface{}) {}
func (discardLogger) SetLevel(level Level)                     {}

type holder struct{ Logger }

var defaultInstance atomic.Value

func init() {
	defaultInstance.Store(holder{NewLogger(INFO, os.Stderr)})
}

// SetDefault sets the global default logger
func SetDefault(logger Logger) {
	if logger == nil {
		logger = NewDiscardLogger()
	}
	defaultInstance.Store(holder{logger})
}

// GetDefault gets the global default logger
func GetDefault() Logger {
	return defaultInstance.Load().(holder).Logger
}

// 便捷的全局日志方法

// Debug uses the default logger to record debug information
func Debug(format string, args ...interface{}) {
	GetDefault().Debug(format, args...)
}

// Info uses the default logger to record information
func Info(format string, args ...interface{}) {
	GetDefault().Info(format, args...)
}

// Warn uses the default logger to record warnings
func Warn(format string, args ...interface{}) {
	GetDefault().Warn(format, args...)
}

// Error uses the default logger to record errors
func Error(format string, args ...interface{}) {
	GetDefault().Error(format, args...)
}
