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
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeNotFound, "food not found")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if err.Code != ErrCodeNotFound {
		t.Errorf("expected code %s, got %s", ErrCodeNotFound, err.Code)
	}
	if err.Message != "food not found" {
		t.Errorf("expected message 'food not found', got %s", err.Message)
	}
	if err.Cause != nil {
		t.Errorf("expected nil cause, got %v", err.Cause)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := Wrap(ErrCodeDataLoad, "dataset load failed", cause)

	if err.Code != ErrCodeDataLoad {
		t.Errorf("expected code %s, got %s", ErrCodeDataLoad, err.Code)
	}
	if !errors.Is(err, cause) {
		t.Errorf("expected cause to be wrapped")
	}
}

func TestWrapWithContext(t *testing.T) {
	cause := errors.New("missing column")
	ctx := map[string]any{
		"path":   "food_nutrition.csv",
		"column": "calories",
	}

	err := WrapWithContext(ErrCodeDataLoad, "invalid dataset header", cause, ctx)

	if err.Code != ErrCodeDataLoad {
		t.Errorf("expected code %s, got %s", ErrCodeDataLoad, err.Code)
	}
	if err.Context == nil {
		t.Fatal("expected context to be set")
	}
	if err.Context["column"] != "calories" {
		t.Errorf("expected column to be calories")
	}
}

func TestError(t *testing.T) {
	tests := []struct {
		name     string
		err      *StructuredError
		expected string
	}{
		{
			name:     "error without cause",
			err:      New(ErrCodeNotFound, "not found"),
			expected: "[NOT_FOUND] not found",
		},
		{
			name:     "error with cause",
			err:      Wrap(ErrCodeInternal, "failed", errors.New("root cause")),
			expected: "[INTERNAL] failed: root cause",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.err.Error()
			if got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := Wrap(ErrCodeInternal, "wrapped", cause)

	unwrapped := err.Unwrap()
	if !errors.Is(unwrapped, cause) {
		t.Errorf("expected unwrapped error to be original cause")
	}
}

func TestCodeOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorCode
	}{
		{"nil", nil, ErrCodeInternal},
		{"plain", errors.New("boom"), ErrCodeInternal},
		{"structured", New(ErrCodeNotFound, "x"), ErrCodeNotFound},
		{"wrapped structured", fmt.Errorf("outer: %w", New(ErrCodeDataLoad, "x")), ErrCodeDataLoad},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CodeOf(tt.err); got != tt.want {
				t.Errorf("CodeOf() = %v, want %v", got, tt.want)
			}
		})
	}

	if IsCode(nil, ErrCodeInternal) {
		t.Error("IsCode(nil) should be false")
	}
	if !IsCode(New(ErrCodeInvalidRequest, "x"), ErrCodeInvalidRequest) {
		t.Error("IsCode should match the structured code")
	}
}

func TestErrorCodes(t *testing.T) {
	want := []ErrorCode{
		ErrCodeDataLoad,
		ErrCodeInternal,
		ErrCodeInvalidRequest,
		ErrCodeMethodNotAllowed,
		ErrCodeNotFound,
		ErrCodeRateLimitExceeded,
		ErrCodeUnavailable,
		ErrCodeTimeout,
	}
	got := Codes()
	if len(got) != len(want) {
		t.Fatalf("Codes() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Codes()[%d] = %s, want %s", i, got[i], want[i])
		}
	}
	if ErrorCode("SOMETHING_ELSE").Known() {
		t.Error("unknown code reported as known")
	}
}

func TestErrorCode_HTTPStatus(t *testing.T) {
	tests := []struct {
		code      ErrorCode
		status    int
		retryable bool
	}{
		{ErrCodeInvalidRequest, http.StatusBadRequest, false},
		{ErrCodeNotFound, http.StatusNotFound, false},
		{ErrCodeMethodNotAllowed, http.StatusMethodNotAllowed, false},
		{ErrCodeDataLoad, http.StatusServiceUnavailable, false},
		{ErrCodeRateLimitExceeded, http.StatusTooManyRequests, true},
		{ErrCodeTimeout, http.StatusGatewayTimeout, true},
		{ErrCodeUnavailable, http.StatusServiceUnavailable, true},
		{ErrCodeInternal, http.StatusInternalServerError, true},
		{ErrorCode("SOMETHING_ELSE"), http.StatusInternalServerError, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			if got := tt.code.HTTPStatus(); got != tt.status {
				t.Errorf("HTTPStatus() = %d, want %d", got, tt.status)
			}
			if got := tt.code.Retryable(); got != tt.retryable {
				t.Errorf("Retryable() = %v, want %v", got, tt.retryable)
			}
		})
	}
}
