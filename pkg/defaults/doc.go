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

// Package defaults provides centralized configuration constants for nutrisense.
//
// This package defines timeout values, result sizes, and other configuration
// defaults used across the codebase.
//
// # Categories
//
//   - Dataset: one-time load bounds
//   - Handler timeouts: For HTTP request processing
//   - Server timeouts: For HTTP server configuration
//   - Result sizes: dashboard and meal planner list lengths
//
// # Usage
//
//	import "github.com/nutrisense/nutrisense/pkg/defaults"
//
//	ctx, cancel := context.WithTimeout(ctx, defaults.RecommendBuildTimeout)
//	defer cancel()
package defaults
