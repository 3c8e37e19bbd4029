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

// Package dataset loads the food nutrition table and exposes read-only
// queries over it.
//
// The table is a delimited file whose header must contain the columns listed
// in RequiredColumns; column order is free and extra columns are ignored.
// Missing cook times are imputed with the median of the values present,
// computed once at load. Any other problem is reported as a
// StructuredError with code ErrCodeDataLoad.
//
// A loaded Dataset is never modified, so it can be shared between goroutines
// without locking. Cached memoizes loads per path for the process lifetime:
//
//	ds, err := dataset.Cached(ctx, "")          // embedded sample data
//	ds, err := dataset.Cached(ctx, "foods.csv") // file on disk
//
// Cache hits, misses, and load durations are exported as Prometheus metrics.
package dataset
