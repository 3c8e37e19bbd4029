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
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Request metrics are labeled by the kind of document a route returns, not by
// URL, so the series count is fixed by the route table.
var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "nutri_http_requests_total",
			Help: "Total number of API requests by result kind",
		},
		[]string{"method", "kind", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "nutri_http_request_duration_seconds",
			Help:    "API request latency in seconds by result kind",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 5, 10},
		},
		[]string{"kind"},
	)

	httpRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "nutri_http_requests_in_flight",
			Help: "Current number of API requests being processed",
		},
	)

	httpErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "nutri_http_errors_total",
			Help: "Total number of API error responses by result kind and error code",
		},
		[]string{"kind", "code"},
	)

	rateLimitRejects = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "nutri_rate_limit_rejects_total",
			Help: "Total number of requests rejected due to rate limiting",
		},
	)

	panicRecoveries = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "nutri_panic_recoveries_total",
			Help: "Total number of panics recovered in HTTP handlers",
		},
	)
)

// metricsMiddleware records request rate, errors, and duration for one route.
func (s *Server) metricsMiddleware(kind string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		httpRequestsInFlight.Inc()
		defer httpRequestsInFlight.Dec()

		wrapped := newResponseWriter(w)
		next.ServeHTTP(wrapped, r)

		httpRequestsTotal.WithLabelValues(r.Method, kind, strconv.Itoa(wrapped.Status())).Inc()
		httpRequestDuration.WithLabelValues(kind).Observe(time.Since(start).Seconds())
		if code := wrapped.ErrorCode(); code != "" {
			httpErrorsTotal.WithLabelValues(kind, string(code)).Inc()
		}
	}
}
