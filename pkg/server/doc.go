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

// Package server is the HTTP server behind nutrid.
//
// Callers register Routes. Each Route names the kind of result document its
// handler returns; the kind labels request metrics and logs and is listed by
// the root handler. Every route runs behind the same chain:
//
//	metrics -> version -> request id -> panic recovery -> rate limit -> logging -> handler
//
// System endpoints are not rate limited:
//
//	GET /health   liveness
//	GET /ready    readiness and dataset summary (503 until Start, during
//	              shutdown, or while the dataset is empty)
//	GET /metrics  Prometheus exposition
//	GET /         service name, version, dataset, and routes with their kinds
//
// Usage:
//
//	s := server.New(
//	    server.WithName("nutrid"),
//	    server.WithVersion(version),
//	    server.WithCatalog(ds),
//	    server.WithRoutes(server.Route{
//	        Pattern: "/v1/dashboard",
//	        Kind:    header.KindDashboard,
//	        Handler: rec.HandleDashboard,
//	    }),
//	)
//	if err := s.Run(ctx); err != nil { ... }
//
// Metrics:
//
//	nutri_http_requests_total{method,kind,status}
//	nutri_http_request_duration_seconds{kind}
//	nutri_http_errors_total{kind,code}
//	nutri_http_requests_in_flight
//	nutri_rate_limit_rejects_total
//	nutri_panic_recoveries_total
//
// NewConfig reads NUTRI_ADDRESS, PORT, NUTRI_RATE_LIMIT,
// NUTRI_RATE_LIMIT_BURST, and SHUTDOWN_TIMEOUT_SECONDS.
//
// Errors are written as ErrorResponse documents; WriteErrorFromErr takes the
// HTTP status and retryable flag from the StructuredError code.
package server
