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

package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	nserrors "github.com/nutrisense/nutrisense/pkg/errors"
)

func TestWriteErrorFromErr_StatusFollowsCode(t *testing.T) {
	tests := []struct {
		code          nserrors.ErrorCode
		wantStatus    int
		wantRetryable bool
	}{
		{nserrors.ErrCodeInvalidRequest, http.StatusBadRequest, false},
		{nserrors.ErrCodeNotFound, http.StatusNotFound, false},
		{nserrors.ErrCodeDataLoad, http.StatusServiceUnavailable, false},
		{nserrors.ErrCodeTimeout, http.StatusGatewayTimeout, true},
		{nserrors.ErrCodeRateLimitExceeded, http.StatusTooManyRequests, true},
		{nserrors.ErrorCode("SOMETHING_ELSE"), http.StatusInternalServerError, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			w := httptest.NewRecorder()
			WriteErrorFromErr(w, httptest.NewRequest(http.MethodGet, "/v1/plan", nil),
				nserrors.New(tt.code, "failed"), "fallback", nil)

			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", w.Code, tt.wantStatus)
			}
			var resp ErrorResponse
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatalf("failed to unmarshal response: %v", err)
			}
			if resp.Code != string(tt.code) || resp.Retryable != tt.wantRetryable {
				t.Errorf("code = %q retryable = %v, want %q %v", resp.Code, resp.Retryable, tt.code, tt.wantRetryable)
			}
		})
	}
}

func TestWriteError_RecordsCodeOnWrappedWriters(t *testing.T) {
	outer := newResponseWriter(httptest.NewRecorder())
	inner := newResponseWriter(outer)

	WriteError(inner, httptest.NewRequest(http.MethodGet, "/v1/foods", nil),
		http.StatusNotFound, nserrors.ErrCodeNotFound, "no such food", false, nil)

	if inner.ErrorCode() != nserrors.ErrCodeNotFound || outer.ErrorCode() != nserrors.ErrCodeNotFound {
		t.Errorf("codes = %q/%q, want NOT_FOUND on both", inner.ErrorCode(), outer.ErrorCode())
	}
	if outer.Status() != http.StatusNotFound {
		t.Errorf("outer status = %d, want 404", outer.Status())
	}
}

func TestMergeDetails(t *testing.T) {
	t.Run("both empty returns nil", func(t *testing.T) {
		if got := mergeDetails(nil, nil); got != nil {
			t.Fatalf("expected nil, got %#v", got)
		}
		if got := mergeDetails(map[string]any{}, map[string]any{}); got != nil {
			t.Fatalf("expected nil, got %#v", got)
		}
	})

	t.Run("merges and second overwrites", func(t *testing.T) {
		a := map[string]any{"a": 1, "shared": "old"}
		b := map[string]any{"b": 2, "shared": "new"}

		got := mergeDetails(a, b)
		if got == nil {
			t.Fatal("expected map, got nil")
		}
		if got["a"].(int) != 1 {
			t.Fatalf("expected a=1, got %#v", got["a"])
		}
		if got["b"].(int) != 2 {
			t.Fatalf("expected b=2, got %#v", got["b"])
		}
		if got["shared"].(string) != "new" {
			t.Fatalf("expected shared to be overwritten to 'new', got %#v", got["shared"])
		}
	})
}

func TestWriteError_WritesErrorResponse(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(context.WithValue(req.Context(), contextKeyRequestID, "req-123"))
	w := httptest.NewRecorder()

	WriteError(w, req, http.StatusBadRequest, nserrors.ErrCodeInvalidRequest, "bad request", false, map[string]any{"k": "v"})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, w.Code)
	}

	var resp ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}

	if resp.Code != string(nserrors.ErrCodeInvalidRequest) {
		t.Fatalf("expected code %q, got %q", nserrors.ErrCodeInvalidRequest, resp.Code)
	}
	if resp.Message != "bad request" {
		t.Fatalf("expected message %q, got %q", "bad request", resp.Message)
	}
	if resp.RequestID != "req-123" {
		t.Fatalf("expected requestId %q, got %q", "req-123", resp.RequestID)
	}
	if resp.Retryable {
		t.Fatalf("expected retryable=false, got true")
	}
	if resp.Details == nil || resp.Details["k"].(string) != "v" {
		t.Fatalf("expected details to include k=v, got %#v", resp.Details)
	}
}

func TestWriteErrorFromErr_StructuredErrorMapsStatusAndDetails(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()

	cause := errors.New("open foods.csv: no such file")
	err := nserrors.WrapWithContext(nserrors.ErrCodeUnavailable, "dataset unavailable", cause, map[string]any{"source": "foods.csv"})

	WriteErrorFromErr(w, req, err, "fallback", map[string]any{"extra": "yes"})

	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected status %d, got %d", http.StatusServiceUnavailable, w.Code)
	}

	var resp ErrorResponse
	if uerr := json.Unmarshal(w.Body.Bytes(), &resp); uerr != nil {
		t.Fatalf("failed to unmarshal response: %v", uerr)
	}

	if resp.Code != string(nserrors.ErrCodeUnavailable) {
		t.Fatalf("expected code %q, got %q", nserrors.ErrCodeUnavailable, resp.Code)
	}
	if resp.Message != "dataset unavailable" {
		t.Fatalf("expected message %q, got %q", "dataset unavailable", resp.Message)
	}
	if !resp.Retryable {
		t.Fatalf("expected retryable=true")
	}
	if resp.Details == nil {
		t.Fatalf("expected details, got nil")
	}
	if resp.Details["source"].(string) != "foods.csv" {
		t.Fatalf("expected source=foods.csv, got %#v", resp.Details["source"])
	}
	if resp.Details["extra"].(string) != "yes" {
		t.Fatalf("expected extra=yes, got %#v", resp.Details["extra"])
	}
	if resp.Details["error"].(string) != "open foods.csv: no such file" {
		t.Fatalf("expected error cause propagated, got %#v", resp.Details["error"])
	}
}

func TestWriteErrorFromErr_NonStructuredFallsBackToInternal(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/v1/analyze", nil)
	w := httptest.NewRecorder()

	WriteErrorFromErr(w, req, errors.New("boom"), "fallback", map[string]any{"x": "y"})

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected status %d, got %d", http.StatusInternalServerError, w.Code)
	}

	var resp ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}

	if resp.Code != string(nserrors.ErrCodeInternal) {
		t.Fatalf("expected code %q, got %q", nserrors.ErrCodeInternal, resp.Code)
	}
	if !resp.Retryable {
		t.Fatalf("expected retryable=true")
	}
	if resp.Details == nil || resp.Details["x"].(string) != "y" {
		t.Fatalf("expected details to include x=y, got %#v", resp.Details)
	}
	if resp.Details["error"].(string) != "boom" {
		t.Fatalf("expected details error=boom, got %#v", resp.Details["error"])
	}
}
