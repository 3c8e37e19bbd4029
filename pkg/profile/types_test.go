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

package profile

import "testing"

func TestParseActivityLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    ActivityLevel
		wantErr bool
	}{
		{"Sedentary", ActivitySedentary, false},
		{"lightly active", ActivityLightlyActive, false},
		{"moderately-active", ActivityModeratelyActive, false},
		{"VERY_ACTIVE", ActivityVeryActive, false},
		{" Extremely Active ", ActivityExtremelyActive, false},
		{"couch", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseActivityLevel(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseActivityLevel(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseActivityLevel(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseTags(t *testing.T) {
	if g, err := ParseHealthGoal("weight-loss"); err != nil || g != GoalWeightLoss {
		t.Errorf("ParseHealthGoal() = %v, %v", g, err)
	}
	if g, err := ParseHealthGoal("high protein"); err != nil || g != GoalHighProtein {
		t.Errorf("ParseHealthGoal() = %v, %v", g, err)
	}
	if d, err := ParseDietaryPreference("gluten_free"); err != nil || d != DietGlutenFree {
		t.Errorf("ParseDietaryPreference() = %v, %v", d, err)
	}
	if a, err := ParseAllergy("none"); err != nil || a != AllergyNone {
		t.Errorf("ParseAllergy() = %v, %v", a, err)
	}
	if m, err := ParseMealType("SNACK"); err != nil || m != MealSnack {
		t.Errorf("ParseMealType() = %v, %v", m, err)
	}
	if g, err := ParseGender("other"); err != nil || g != GenderOther {
		t.Errorf("ParseGender() = %v, %v", g, err)
	}
	if _, err := ParseAllergy("gluten"); err == nil {
		t.Error("expected error for unknown allergy")
	}
}

func TestSupportedLists(t *testing.T) {
	tests := []struct {
		name string
		got  []string
		want int
	}{
		{"genders", SupportedGenders(), 3},
		{"activity", SupportedActivityLevels(), 5},
		{"diet", SupportedDietaryPreferences(), 7},
		{"goals", SupportedHealthGoals(), 8},
		{"allergies", SupportedAllergies(), 8},
		{"meals", SupportedMealTypes(), 4},
	}
	for _, tt := range tests {
		if len(tt.got) != tt.want {
			t.Errorf("%s: got %d entries, want %d", tt.name, len(tt.got), tt.want)
		}
	}
}

func TestParseSet(t *testing.T) {
	got, err := parseSet([]string{"Nuts, dairy", "nuts", "", "Eggs"}, ParseAllergy)
	if err != nil {
		t.Fatalf("parseSet() error = %v", err)
	}
	want := []Allergy{AllergyNuts, AllergyDairy, AllergyEggs}
	if len(got) != len(want) {
		t.Fatalf("parseSet() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("parseSet()[%d] = %v, want %v", i, got[i], want[i])
		}
	}

	if _, err := parseSet([]string{"Nuts,Gluten"}, ParseAllergy); err == nil {
		t.Error("expected error for unknown entry")
	}
}
