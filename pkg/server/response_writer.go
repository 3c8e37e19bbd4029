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
	"net/http"

	nserrors "github.com/nutrisense/nutrisense/pkg/errors"
)

// responseWriter records the status and error code of a response for the
// metrics and logging middleware.
type responseWriter struct {
	http.ResponseWriter
	statusCode  int
	wroteHeader bool
	errorCode   nserrors.ErrorCode
}

// errorCodeRecorder is implemented by writers that track which error code a
// response carried.
type errorCodeRecorder interface {
	recordErrorCode(code nserrors.ErrorCode)
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
}

// WriteHeader forwards only the first status code.
func (rw *responseWriter) WriteHeader(statusCode int) {
	if rw.wroteHeader {
		return
	}
	rw.statusCode = statusCode
	rw.wroteHeader = true
	rw.ResponseWriter.WriteHeader(statusCode)
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.wroteHeader {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

// recordErrorCode stores code here and in every wrapped recorder, so outer
// middleware sees codes written deeper in the chain.
func (rw *responseWriter) recordErrorCode(code nserrors.ErrorCode) {
	rw.errorCode = code
	if inner, ok := rw.ResponseWriter.(errorCodeRecorder); ok {
		inner.recordErrorCode(code)
	}
}

// Status returns the status code sent to the client.
func (rw *responseWriter) Status() int {
	return rw.statusCode
}

// ErrorCode returns the error code of the response, empty on success.
func (rw *responseWriter) ErrorCode() nserrors.ErrorCode {
	return rw.errorCode
}

// Unwrap exposes the underlying writer to http.ResponseController.
func (rw *responseWriter) Unwrap() http.ResponseWriter {
	return rw.ResponseWriter
}
