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

package types

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorKind 定义错误类型
type ErrorKind int

const (
	// ErrType operand types do not match the operator signature
	ErrType ErrorKind = iota
	// ErrUnresolvedSymbol name does not match a band, flag, variable or constant
	ErrUnresolvedSymbol
	// ErrUnresolvedFunction no function of that name is registered
	ErrUnresolvedFunction
	// ErrArity the function exists but not with that number of arguments
	ErrArity
	// ErrArithmetic integer operation without defined result, e.g. mod by zero
	ErrArithmetic
	// ErrNoContext a sample symbol was evaluated without a pixel position
	ErrNoContext
	// ErrSample the sample context failed to deliver a value
	ErrSample
	// ErrRegion pixel region or output buffer does not fit the raster
	ErrRegion
	// ErrSyntax expression text could not be parsed
	ErrSyntax
)

// Error is the structured error raised while building, resolving or
// evaluating terms.
type Error struct {
	Kind     ErrorKind
	Message  string
	Fragment string // offending symbol, function or expression fragment
	Cause    error
}

// NewError creates an error of the given kind
func NewError(kind ErrorKind, fragment string, format string, args ...interface{}) *Error {
	return &Error{
		Kind:     kind,
		Message:  fmt.Sprintf(format, args...),
		Fragment: fragment,
	}
}

// WrapError creates an error of the given kind caused by err
func WrapError(kind ErrorKind, fragment string, err error) *Error {
	return &Error{
		Kind:     kind,
		Message:  err.Error(),
		Fragment: fragment,
		Cause:    err,
	}
}

// Error 实现 error 接口
func (e *Error) Error() string {
	var builder strings.Builder
	builder.WriteString("[")
	builder.WriteString(e.Kind.String())
	builder.WriteString("] ")
	builder.WriteString(e.Message)
	if e.Fragment != "" {
		builder.WriteString(fmt.Sprintf(" (in '%s')", e.Fragment))
	}
	return builder.String()
}

// Unwrap returns the underlying cause, if any
func (e *Error) Unwrap() error {
	return e.Cause
}

// String returns the name printed in error messages
func (k ErrorKind) String() string {
	switch k {
	case ErrType:
		return "TYPE_ERROR"
	case ErrUnresolvedSymbol:
		return "UNRESOLVED_SYMBOL"
	case ErrUnresolvedFunction:
		return "UNRESOLVED_FUNCTION"
	case ErrArity:
		return "ARITY_ERROR"
	case ErrArithmetic:
		return "ARITHMETIC_ERROR"
	case ErrNoContext:
		return "NO_CONTEXT"
	case ErrSample:
		return "SAMPLE_ERROR"
	case ErrRegion:
		return "REGION_ERROR"
	case ErrSyntax:
		return "SYNTAX_ERROR"
	default:
		return "UNKNOWN_ERROR"
	}
}

// IsKind reports whether any error in err's chain is an *Error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}
