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

package dataset

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	nserrors "github.com/nutrisense/nutrisense/pkg/errors"
)

var (
	datasetCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "nutri_dataset_cache_hits_total",
			Help: "Total number of dataset cache hits",
		},
	)
	datasetCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "nutri_dataset_cache_misses_total",
			Help: "Total number of dataset cache misses (initial loads)",
		},
	)
	datasetLoadDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "nutri_dataset_load_duration_seconds",
			Help:    "Duration of dataset loads in seconds",
			Buckets: []float64{.001, .005, .01, .05, .1, .5, 1, 5},
		},
	)
	datasetItems = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "nutri_dataset_items",
			Help: "Number of food items in each loaded dataset",
		},
		[]string{"source"},
	)
)

// EnvPath names the environment variable holding the dataset path or URL
// used by the nutri and nutrid binaries. Empty means the embedded dataset.
const EnvPath = "NUTRI_DATA"

type cacheEntry struct {
	once sync.Once
	ds   *Dataset
	err  error
}

var (
	cacheMu sync.Mutex
	cache   = make(map[string]*cacheEntry)
)

// Cached returns the dataset for path, loading it on first use and reusing it
// for the rest of the process lifetime. An empty path selects the embedded
// dataset. Failed loads are cached too, except canceled ones; a restart is
// the only invalidation. A caller that waited on a load canceled by another
// caller's context retries with its own.
func Cached(ctx context.Context, path string) (*Dataset, error) {
	key := strings.TrimSpace(path)

	for {
		entry := cacheEntryFor(key)

		loaded := false
		entry.once.Do(func() {
			loaded = true
			datasetCacheMisses.Inc()

			start := time.Now()
			if key == "" {
				entry.ds, entry.err = Default(ctx)
			} else {
				entry.ds, entry.err = Load(ctx, key)
			}
			datasetLoadDuration.Observe(time.Since(start).Seconds())

			if entry.err == nil {
				datasetItems.WithLabelValues(entry.ds.Source()).Set(float64(entry.ds.Len()))
			}
		})

		if !loaded && entry.err == nil {
			datasetCacheHits.Inc()
		}

		// A canceled load says nothing about the file.
		if nserrors.IsCode(entry.err, nserrors.ErrCodeTimeout) {
			evict(key, entry)
			if !loaded && ctx.Err() == nil {
				continue
			}
		}
		return entry.ds, entry.err
	}
}

func cacheEntryFor(key string) *cacheEntry {
	cacheMu.Lock()
	defer cacheMu.Unlock()

	entry, ok := cache[key]
	if !ok {
		entry = &cacheEntry{}
		cache[key] = entry
	}
	return entry
}

func evict(key string, entry *cacheEntry) {
	cacheMu.Lock()
	defer cacheMu.Unlock()

	if cache[key] == entry {
		delete(cache, key)
	}
}

// resetCache drops every memoized dataset.
func resetCache() {
	cacheMu.Lock()
	defer cacheMu.Unlock()
	cache = make(map[string]*cacheEntry)
}
