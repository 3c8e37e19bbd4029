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
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	nserrors "github.com/nutrisense/nutrisense/pkg/errors"
)

// withMiddleware wraps a route's handler in the full middleware chain.
func (s *Server) withMiddleware(rt Route) http.HandlerFunc {
	kind := kindLabel(rt.Kind)
	return s.metricsMiddleware(kind,
		s.versionMiddleware(
			s.requestIDMiddleware(
				s.panicRecoveryMiddleware( // recover before spending a rate-limit token
					s.rateLimitMiddleware(
						s.loggingMiddleware(kind, rt.Handler),
					),
				),
			),
		),
	)
}

// versionMiddleware negotiates the API version and echoes it in a header.
func (s *Server) versionMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		version := negotiateAPIVersion(r)
		SetAPIVersionHeader(w, version)

		ctx := context.WithValue(r.Context(), contextKeyAPIVersion, version)
		next.ServeHTTP(w, r.WithContext(ctx))
	}
}

// requestIDMiddleware accepts a client UUID in X-Request-Id or generates one.
func (s *Server) requestIDMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get("X-Request-Id")
		if _, err := uuid.Parse(requestID); err != nil {
			requestID = uuid.New().String()
		}

		ctx := context.WithValue(r.Context(), contextKeyRequestID, requestID)
		w.Header().Set("X-Request-Id", requestID)

		next.ServeHTTP(w, r.WithContext(ctx))
	}
}

// rateLimitMiddleware applies the server-wide token bucket.
func (s *Server) rateLimitMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !s.rateLimiter.Allow() {
			rateLimitRejects.Inc()
			w.Header().Set("Retry-After", "1")
			WriteError(w, r, http.StatusTooManyRequests, nserrors.ErrCodeRateLimitExceeded,
				"Rate limit exceeded", true, map[string]any{
					"limit": float64(s.config.RateLimit),
					"burst": s.config.RateLimitBurst,
				})
			return
		}

		w.Header().Set("X-RateLimit-Limit", fmt.Sprintf("%d", int(s.config.RateLimit)))
		w.Header().Set("X-RateLimit-Remaining", fmt.Sprintf("%d", int(s.rateLimiter.Tokens())))
		w.Header().Set("X-RateLimit-Reset", fmt.Sprintf("%d", time.Now().Add(time.Second).Unix()))

		next.ServeHTTP(w, r)
	}
}

// panicRecoveryMiddleware turns a handler panic into a 500 response.
func (s *Server) panicRecoveryMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				panicRecoveries.Inc()
				slog.Error("panic recovered",
					"error", fmt.Sprintf("%v", rec),
					"requestID", RequestIDFromContext(r.Context()),
					"path", r.URL.Path,
					"method", r.Method,
				)
				WriteError(w, r, http.StatusInternalServerError, nserrors.ErrCodeInternal,
					"Internal server error", true, nil)
			}
		}()
		next.ServeHTTP(w, r)
	}
}

// loggingMiddleware logs each completed request with its result kind. Server
// errors are logged at warn, everything else at debug.
func (s *Server) loggingMiddleware(kind string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := newResponseWriter(w)

		next.ServeHTTP(rw, r)

		level := slog.LevelDebug
		if rw.Status() >= http.StatusInternalServerError {
			level = slog.LevelWarn
		}
		attrs := []any{
			"requestID", RequestIDFromContext(r.Context()),
			"method", r.Method,
			"path", r.URL.Path,
			"kind", kind,
			"status", rw.Status(),
			"duration", time.Since(start).String(),
		}
		if code := rw.ErrorCode(); code != "" {
			attrs = append(attrs, "errorCode", string(code))
		}
		slog.Log(r.Context(), level, "request completed", attrs...)
	}
}
