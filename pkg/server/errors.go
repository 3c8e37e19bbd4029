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
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	nserrors "github.com/nutrisense/nutrisense/pkg/errors"
	"github.com/nutrisense/nutrisense/pkg/serializer"
)

// ErrorResponse is the body of every error reply.
type ErrorResponse struct {
	Code      string         `json:"code"`
	Message   string         `json:"message"`
	Details   map[string]any `json:"details,omitempty"`
	RequestID string         `json:"requestId"`
	Timestamp time.Time      `json:"timestamp"`
	Retryable bool           `json:"retryable"`
}

// WriteError writes an ErrorResponse with the given status and records code
// for the metrics and logging middleware.
func WriteError(w http.ResponseWriter, r *http.Request, statusCode int,
	code nserrors.ErrorCode, message string, retryable bool, details map[string]any) {

	if rec, ok := w.(errorCodeRecorder); ok {
		rec.recordErrorCode(code)
	}

	requestID := RequestIDFromContext(r.Context())
	if requestID == "" {
		requestID = uuid.New().String()
	}

	errResp := ErrorResponse{
		Code:      string(code),
		Message:   message,
		Details:   details,
		RequestID: requestID,
		Timestamp: time.Now().UTC(),
		Retryable: retryable,
	}

	serializer.RespondJSON(w, statusCode, errResp)
}

// WriteErrorFromErr writes an ErrorResponse derived from err. A
// StructuredError supplies the code, message, and context; anything else is
// reported as an internal error with fallbackMessage.
func WriteErrorFromErr(w http.ResponseWriter, r *http.Request, err error, fallbackMessage string, extraDetails map[string]any) {
	var se *nserrors.StructuredError
	if errors.As(err, &se) {
		details := mergeDetails(se.Context, extraDetails)
		if se.Cause != nil {
			details = mergeDetails(details, map[string]any{"error": se.Cause.Error()})
		}
		WriteError(w, r, se.Code.HTTPStatus(), se.Code, se.Message, se.Code.Retryable(), details)
		return
	}

	slog.Error("unclassified error", "error", err, "path", r.URL.Path)

	details := extraDetails
	if err != nil {
		details = mergeDetails(extraDetails, map[string]any{"error": err.Error()})
	}
	WriteError(w, r, http.StatusInternalServerError, nserrors.ErrCodeInternal, fallbackMessage, true, details)
}

// mergeDetails combines two detail maps; keys in b win. Returns nil when
// both are empty.
func mergeDetails(a, b map[string]any) map[string]any {
	if len(a) == 0 && len(b) == 0 {
		return nil
	}
	out := make(map[string]any, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}
