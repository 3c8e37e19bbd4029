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

package header

import (
	"testing"
	"time"
)

func TestKind_IsValid(t *testing.T) {
	tests := []struct {
		kind Kind
		want bool
	}{
		{KindDashboard, true},
		{KindExplorer, true},
		{KindMealPlan, true},
		{KindFoodAnalysis, true},
		{KindInsights, true},
		{KindUserProfile, true},
		{KindFoodList, true},
		{Kind("Recipe"), false},
		{Kind(""), false},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			if got := tt.kind.IsValid(); got != tt.want {
				t.Errorf("IsValid() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNew(t *testing.T) {
	h := New(WithKind(KindMealPlan), WithMetadata("source", "test"))

	if h.Kind != KindMealPlan {
		t.Errorf("Kind = %v, want %v", h.Kind, KindMealPlan)
	}
	if h.APIVersion != APIVersion {
		t.Errorf("APIVersion = %q, want %q", h.APIVersion, APIVersion)
	}
	if h.Metadata["source"] != "test" {
		t.Errorf("Metadata[source] = %q, want test", h.Metadata["source"])
	}

	h = New(WithAPIVersion("nutrisense.io/v2"))
	if h.APIVersion != "nutrisense.io/v2" {
		t.Errorf("APIVersion = %q, want override", h.APIVersion)
	}
}

func TestWithMetadata_NilMap(t *testing.T) {
	h := &Header{}
	WithMetadata("k", "v")(h)
	if h.Metadata["k"] != "v" {
		t.Errorf("Metadata = %v", h.Metadata)
	}
}

func TestHeader_Init(t *testing.T) {
	h := New(WithMetadata("stale", "x"))
	h.Init(KindInsights, "v1.2.3")

	if h.Kind != KindInsights {
		t.Errorf("Kind = %v, want %v", h.Kind, KindInsights)
	}
	if _, ok := h.Metadata["stale"]; ok {
		t.Error("Init should reset metadata")
	}
	if h.Metadata["version"] != "v1.2.3" {
		t.Errorf("version = %q", h.Metadata["version"])
	}
	if _, err := time.Parse(time.RFC3339, h.Metadata["timestamp"]); err != nil {
		t.Errorf("timestamp not RFC3339: %v", err)
	}

	h.Init(KindDashboard, "")
	if _, ok := h.Metadata["version"]; ok {
		t.Error("empty version should not be recorded")
	}
}
