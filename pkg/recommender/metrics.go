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

package recommender

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	buildDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "nutri_recommend_build_duration_seconds",
			Help:    "Duration of recommendation document builds in seconds",
			Buckets: []float64{.0005, .001, .005, .01, .05, .1, .5, 1},
		},
		[]string{"kind"},
	)

	buildTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "nutri_recommend_builds_total",
			Help: "Total number of recommendation document builds by kind and status",
		},
		[]string{"kind", "status"},
	)
)
