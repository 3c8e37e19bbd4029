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

// Package header stamps result documents with a kind, an API version and
// generation metadata so JSON and YAML output is self-describing:
//
//	{
//	  "kind": "MealPlan",
//	  "apiVersion": "nutrisense.io/v1alpha1",
//	  "metadata": {
//	    "timestamp": "2026-01-30T10:30:00Z",
//	    "version": "v0.3.0"
//	  }
//	}
package header

import (
	"time"
)

// APIVersion is the schema version of every document this module emits.
const APIVersion = "nutrisense.io/v1alpha1"

// Kind identifies the type of a result document.
type Kind string

const (
	KindUserProfile  Kind = "UserProfile"
	KindDashboard    Kind = "Dashboard"
	KindExplorer     Kind = "Explorer"
	KindMealPlan     Kind = "MealPlan"
	KindFoodAnalysis Kind = "FoodAnalysis"
	KindInsights     Kind = "Insights"
	KindFoodList     Kind = "FoodList"
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	return string(k)
}

// IsValid checks if the Kind is one of the recognized kinds.
func (k Kind) IsValid() bool {
	switch k {
	case KindUserProfile, KindDashboard, KindExplorer, KindMealPlan,
		KindFoodAnalysis, KindInsights, KindFoodList:
		return true
	default:
		return false
	}
}

// Option is a functional option for configuring Header instances.
type Option func(*Header)

// WithMetadata adds a metadata key-value pair, initializing the map if needed.
func WithMetadata(key, value string) Option {
	return func(h *Header) {
		if h.Metadata == nil {
			h.Metadata = make(map[string]string)
		}
		h.Metadata[key] = value
	}
}

// WithKind sets the document kind.
func WithKind(kind Kind) Option {
	return func(h *Header) {
		h.Kind = kind
	}
}

// WithAPIVersion overrides the default API version.
func WithAPIVersion(version string) Option {
	return func(h *Header) {
		h.APIVersion = version
	}
}

// Header is embedded at the top of every result document.
type Header struct {
	Kind       Kind              `json:"kind,omitempty" yaml:"kind,omitempty"`
	APIVersion string            `json:"apiVersion,omitempty" yaml:"apiVersion,omitempty"`
	Metadata   map[string]string `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// New returns a Header with the default API version and the given options applied.
func New(opts ...Option) *Header {
	h := &Header{
		APIVersion: APIVersion,
		Metadata:   make(map[string]string),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Init resets the header for a freshly generated document. The timestamp is
// always set; version is recorded only when non-empty.
func (h *Header) Init(kind Kind, version string) {
	h.Kind = kind
	h.APIVersion = APIVersion
	h.Metadata = map[string]string{
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	}
	if version != "" {
		h.Metadata["version"] = version
	}
}
