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

package defaults

import "time"

// Dataset loading.
const (
	// DatasetLoadTimeout bounds the one-time read of the food dataset.
	DatasetLoadTimeout = 30 * time.Second

	// DatasetMaxRows caps the number of data rows accepted from a file.
	DatasetMaxRows = 1_000_000
)

// Handler timeouts for HTTP request processing.
const (
	// RecommendHandlerTimeout is the timeout for recommendation requests.
	RecommendHandlerTimeout = 10 * time.Second

	// RecommendBuildTimeout is the internal timeout for building a result.
	// Should be less than RecommendHandlerTimeout to allow error handling.
	RecommendBuildTimeout = 8 * time.Second

	// RecommendCacheTTL is the default cache duration for recommendation responses.
	// The dataset never changes during the process lifetime.
	RecommendCacheTTL = 5 * time.Minute

	// MaxRequestBodyBytes limits POSTed profile documents.
	MaxRequestBodyBytes = 1 << 20
)

// Server timeouts for HTTP server configuration.
const (
	// ServerReadTimeout is the maximum duration for reading request headers.
	ServerReadTimeout = 10 * time.Second

	// ServerReadHeaderTimeout prevents slow header attacks.
	ServerReadHeaderTimeout = 5 * time.Second

	// ServerWriteTimeout is the maximum duration for writing a response.
	ServerWriteTimeout = 30 * time.Second

	// ServerIdleTimeout is the maximum duration to wait for the next request.
	ServerIdleTimeout = 120 * time.Second

	// ServerShutdownTimeout is the maximum duration for graceful shutdown.
	ServerShutdownTimeout = 30 * time.Second
)

// Server listener and rate limiting.
const (
	// ServerPort is the default listen port.
	ServerPort = 8080

	// ServerRateLimit is the sustained request rate per second across all API routes.
	ServerRateLimit = 100

	// ServerRateLimitBurst is the token bucket size.
	ServerRateLimitBurst = 200
)

// Result sizes.
const (
	// DashboardLimit is the number of foods shown on the dashboard.
	DashboardLimit = 5

	// MealPlanLimit is the number of meal options returned by the planner.
	MealPlanLimit = 3
)
