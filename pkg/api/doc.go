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

// Package api wires the recommender into the HTTP server behind nutrid.
//
// Usage:
//
//	func main() {
//	    if err := api.Serve(); err != nil {
//	        log.Fatalf("server error: %v", err)
//	    }
//	}
//
// # Endpoints
//
// Application endpoints (rate limited). Endpoints that take a profile accept
// it as query parameters on GET or as a UserProfile document (JSON or YAML)
// on POST:
//   - GET|POST /v1/dashboard - Top recommended foods and a nutrition summary
//   - GET      /v1/explore   - Search by text, calorie range and cook time
//   - GET|POST /v1/plan      - Meal options for ?meal= and ?time=
//   - GET|POST /v1/analyze   - Breakdown of the food named by ?food=
//   - GET|POST /v1/insights  - BMR, TDEE, intake and goal advice
//   - GET      /v1/foods     - Names of every food in the dataset
//
// System endpoints (no rate limiting):
//   - GET /health  - Liveness
//   - GET /ready   - Readiness, with the dataset source and food count
//   - GET /metrics - Prometheus metrics, labeled by result kind
//   - GET /        - Name, version, and each route with its result kind
//
// # Profile Parameters
//
//   - age, gender, weight, height, activity
//   - diet, goal, allergy (repeatable or comma separated)
//   - calories, protein, carbs, fat (daily targets)
//
// Example request body:
//
//	kind: userProfile
//	apiVersion: nutrisense.io/v1alpha1
//	spec:
//	  age: 34
//	  gender: Female
//	  healthGoals: [Weight Loss, High-Protein]
//	  allergies: [Nuts]
//
//	curl -X POST "http://localhost:8080/v1/plan?meal=dinner&time=45" \
//	  -H "Content-Type: application/yaml" --data-binary @profile.yaml
//
// # Configuration
//
//   - NUTRI_ADDRESS: listen address (default: all interfaces)
//   - PORT: HTTP server port (default: 8080)
//   - NUTRI_RATE_LIMIT, NUTRI_RATE_LIMIT_BURST: token bucket (default: 100/s, 200)
//   - LOG_LEVEL: Logging level (debug, info, warn, error)
//   - NUTRI_DATA: path or URL of the food CSV (default: embedded dataset)
//   - SHUTDOWN_TIMEOUT_SECONDS: graceful shutdown budget
//
// Version information is set at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/nutrisense/nutrisense/pkg/api.version=1.0.0'"
package api
