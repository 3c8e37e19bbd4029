// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"slices"
)

// ErrorCode classifies a failed load, profile, or recommendation.
type ErrorCode string

const (
	// ErrCodeNotFound indicates a requested resource was not found.
	ErrCodeNotFound ErrorCode = "NOT_FOUND"
	// ErrCodeTimeout indicates an operation exceeded its time limit.
	ErrCodeTimeout ErrorCode = "TIMEOUT"
	// ErrCodeInternal indicates an internal system error.
	ErrCodeInternal ErrorCode = "INTERNAL"
	// ErrCodeInvalidRequest indicates malformed or invalid input.
	ErrCodeInvalidRequest ErrorCode = "INVALID_REQUEST"
	// ErrCodeRateLimitExceeded indicates the client exceeded an enforced request limit.
	ErrCodeRateLimitExceeded ErrorCode = "RATE_LIMIT_EXCEEDED"
	// ErrCodeMethodNotAllowed indicates the HTTP method is not allowed for the resource.
	ErrCodeMethodNotAllowed ErrorCode = "METHOD_NOT_ALLOWED"
	// ErrCodeUnavailable indicates a service or resource is temporarily unavailable.
	ErrCodeUnavailable ErrorCode = "SERVICE_UNAVAILABLE"
	// ErrCodeDataLoad indicates the food dataset could not be loaded.
	// It is fatal at startup; there is no recovery path.
	ErrCodeDataLoad ErrorCode = "DATA_LOAD"
)

type codeTraits struct {
	status    int
	retryable bool
}

// Bad input, an unknown food, and a broken dataset fail the same way on
// every retry; the rest depend on load or timing.
var traits = map[ErrorCode]codeTraits{
	ErrCodeInvalidRequest:    {http.StatusBadRequest, false},
	ErrCodeNotFound:          {http.StatusNotFound, false},
	ErrCodeMethodNotAllowed:  {http.StatusMethodNotAllowed, false},
	ErrCodeDataLoad:          {http.StatusServiceUnavailable, false},
	ErrCodeRateLimitExceeded: {http.StatusTooManyRequests, true},
	ErrCodeTimeout:           {http.StatusGatewayTimeout, true},
	ErrCodeUnavailable:       {http.StatusServiceUnavailable, true},
	ErrCodeInternal:          {http.StatusInternalServerError, true},
}

// Codes returns every known code, sorted.
func Codes() []ErrorCode {
	out := make([]ErrorCode, 0, len(traits))
	for c := range traits {
		out = append(out, c)
	}
	slices.Sort(out)
	return out
}

// Known reports whether c is one of the codes above.
func (c ErrorCode) Known() bool {
	_, ok := traits[c]
	return ok
}

// HTTPStatus returns the response status for c. Unknown codes map to 500.
func (c ErrorCode) HTTPStatus() int {
	if t, ok := traits[c]; ok {
		return t.status
	}
	return http.StatusInternalServerError
}

// Retryable reports whether repeating the same request may succeed.
func (c ErrorCode) Retryable() bool {
	return traits[c].retryable
}

// StructuredError provides structured error information for better observability.
// It includes an error code for programmatic handling, a human-readable message,
// the underlying cause, and optional context for debugging.
type StructuredError struct {
	Code    ErrorCode
	Message string
	Cause   error
	Context map[string]any
}

// Error implements the error interface.
func (e *StructuredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is and errors.As support.
func (e *StructuredError) Unwrap() error {
	return e.Cause
}

// New creates a new StructuredError with the given code and message.
func New(code ErrorCode, message string) *StructuredError {
	return &StructuredError{
		Code:    code,
		Message: message,
	}
}

// NewWithContext creates a new StructuredError with context information.
func NewWithContext(code ErrorCode, message string, context map[string]any) *StructuredError {
	return &StructuredError{
		Code:    code,
		Message: message,
		Context: context,
	}
}

// Wrap wraps an existing error with additional context.
func Wrap(code ErrorCode, message string, cause error) *StructuredError {
	return &StructuredError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// WrapWithContext wraps an error with additional context information.
func WrapWithContext(code ErrorCode, message string, cause error, context map[string]any) *StructuredError {
	return &StructuredError{
		Code:    code,
		Message: message,
		Cause:   cause,
		Context: context,
	}
}

// CodeOf returns the ErrorCode of the first StructuredError in err's chain,
// or ErrCodeInternal when there is none.
func CodeOf(err error) ErrorCode {
	var se *StructuredError
	if stderrors.As(err, &se) {
		return se.Code
	}
	return ErrCodeInternal
}

// IsCode reports whether err carries the given code anywhere in its chain.
func IsCode(err error, code ErrorCode) bool {
	return err != nil && CodeOf(err) == code
}
