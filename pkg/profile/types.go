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

import (
	"fmt"
	"strings"
)

// Gender selects the BMR formula branch.
type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
	GenderOther  Gender = "Other"
)

var genders = []Gender{GenderMale, GenderFemale, GenderOther}

// ParseGender parses a gender, case-insensitively.
func ParseGender(s string) (Gender, error) {
	return parseEnum("gender", s, genders)
}

// SupportedGenders returns all genders in display order.
func SupportedGenders() []string {
	return names(genders)
}

// ActivityLevel is one of five ordered activity tiers.
type ActivityLevel string

const (
	ActivitySedentary        ActivityLevel = "Sedentary"
	ActivityLightlyActive    ActivityLevel = "Lightly Active"
	ActivityModeratelyActive ActivityLevel = "Moderately Active"
	ActivityVeryActive       ActivityLevel = "Very Active"
	ActivityExtremelyActive  ActivityLevel = "Extremely Active"
)

var activityLevels = []ActivityLevel{
	ActivitySedentary, ActivityLightlyActive, ActivityModeratelyActive,
	ActivityVeryActive, ActivityExtremelyActive,
}

// ParseActivityLevel parses an activity level. "lightly-active",
// "Lightly Active" and "lightly_active" are equivalent.
func ParseActivityLevel(s string) (ActivityLevel, error) {
	return parseEnum("activity level", s, activityLevels)
}

// SupportedActivityLevels returns all activity levels from least to most active.
func SupportedActivityLevels() []string {
	return names(activityLevels)
}

// DietaryPreference is a diet tag that may exclude foods by name.
type DietaryPreference string

const (
	DietVegetarian  DietaryPreference = "Vegetarian"
	DietVegan       DietaryPreference = "Vegan"
	DietGlutenFree  DietaryPreference = "Gluten-Free"
	DietLowCarb     DietaryPreference = "Low-Carb"
	DietHighProtein DietaryPreference = "High-Protein"
	DietLowFat      DietaryPreference = "Low-Fat"
	DietDairyFree   DietaryPreference = "Dairy-Free"
)

var dietaryPreferences = []DietaryPreference{
	DietVegetarian, DietVegan, DietGlutenFree, DietLowCarb,
	DietHighProtein, DietLowFat, DietDairyFree,
}

// ParseDietaryPreference parses a dietary preference tag.
func ParseDietaryPreference(s string) (DietaryPreference, error) {
	return parseEnum("dietary preference", s, dietaryPreferences)
}

// SupportedDietaryPreferences returns all dietary preference tags.
func SupportedDietaryPreferences() []string {
	return names(dietaryPreferences)
}

// HealthGoal is a goal tag that drives ranking, intake, and tips.
type HealthGoal string

const (
	GoalWeightLoss         HealthGoal = "Weight Loss"
	GoalMuscleGain         HealthGoal = "Muscle Gain"
	GoalMaintenance        HealthGoal = "Maintenance"
	GoalHeartHealth        HealthGoal = "Heart Health"
	GoalDiabetesManagement HealthGoal = "Diabetes Management"
	GoalEnergyBoost        HealthGoal = "Energy Boost"

	// GoalHighProtein and GoalLowCarb are the ranking goals. They share
	// their names with the dietary preferences of the same name.
	GoalHighProtein HealthGoal = "High-Protein"
	GoalLowCarb     HealthGoal = "Low-Carb"
)

var healthGoals = []HealthGoal{
	GoalWeightLoss, GoalMuscleGain, GoalMaintenance, GoalHeartHealth,
	GoalDiabetesManagement, GoalEnergyBoost, GoalHighProtein, GoalLowCarb,
}

// ParseHealthGoal parses a health goal tag.
func ParseHealthGoal(s string) (HealthGoal, error) {
	return parseEnum("health goal", s, healthGoals)
}

// SupportedHealthGoals returns all health goal tags.
func SupportedHealthGoals() []string {
	return names(healthGoals)
}

// Allergy is an allergen tag that may exclude foods by name.
type Allergy string

const (
	AllergyNuts      Allergy = "Nuts"
	AllergyShellfish Allergy = "Shellfish"
	AllergyDairy     Allergy = "Dairy"
	AllergyEggs      Allergy = "Eggs"
	AllergySoy       Allergy = "Soy"
	AllergyWheat     Allergy = "Wheat"
	AllergyFish      Allergy = "Fish"
	AllergyNone      Allergy = "None"
)

var allergies = []Allergy{
	AllergyNuts, AllergyShellfish, AllergyDairy, AllergyEggs,
	AllergySoy, AllergyWheat, AllergyFish, AllergyNone,
}

// ParseAllergy parses an allergy tag.
func ParseAllergy(s string) (Allergy, error) {
	return parseEnum("allergy", s, allergies)
}

// SupportedAllergies returns all allergy tags.
func SupportedAllergies() []string {
	return names(allergies)
}

// MealType selects the keyword set used by the meal planner.
type MealType string

const (
	MealBreakfast MealType = "Breakfast"
	MealLunch     MealType = "Lunch"
	MealDinner    MealType = "Dinner"
	MealSnack     MealType = "Snack"
)

var mealTypes = []MealType{MealBreakfast, MealLunch, MealDinner, MealSnack}

// ParseMealType parses a meal type.
func ParseMealType(s string) (MealType, error) {
	return parseEnum("meal type", s, mealTypes)
}

// SupportedMealTypes returns all meal types.
func SupportedMealTypes() []string {
	return names(mealTypes)
}

// normalize maps display names and their spellings to one lookup key:
// lower case with spaces and underscores turned into hyphens.
func normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.NewReplacer(" ", "-", "_", "-").Replace(s)
}

func parseEnum[T ~string](kind, s string, all []T) (T, error) {
	key := normalize(s)
	for _, v := range all {
		if normalize(string(v)) == key {
			return v, nil
		}
	}
	var zero T
	return zero, fmt.Errorf("invalid %s: %q (supported: %s)", kind, s, strings.Join(names(all), ", "))
}

// parseSet parses every entry, splitting comma-separated lists and dropping
// duplicates while keeping first-seen order.
func parseSet[T ~string](values []string, parse func(string) (T, error)) ([]T, error) {
	var out []T
	seen := make(map[T]bool)
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if strings.TrimSpace(part) == "" {
				continue
			}
			t, err := parse(part)
			if err != nil {
				return nil, err
			}
			if !seen[t] {
				seen[t] = true
				out = append(out, t)
			}
		}
	}
	return out, nil
}

func names[T ~string](all []T) []string {
	out := make([]string, len(all))
	for i, v := range all {
		out[i] = string(v)
	}
	return out
}
