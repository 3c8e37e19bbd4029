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
	"cmp"
	"slices"

	"github.com/nutrisense/nutrisense/pkg/dataset"
	"github.com/nutrisense/nutrisense/pkg/profile"
)

// Name keywords that disqualify an item. Matching is a case-insensitive
// substring test, so "egg" also excludes "Eggplant Parmesan".
var (
	meatKeywords = []string{"chicken", "beef", "pork", "shrimp", "bacon"}

	preferenceExclusions = map[profile.DietaryPreference][]string{
		profile.DietVegetarian: meatKeywords,
		profile.DietVegan:      append(slices.Clone(meatKeywords), "cheese", "cream", "milk", "egg"),
		profile.DietGlutenFree: {"pasta", "bread", "flour", "pancake", "cookie", "cake"},
	}

	allergyExclusions = map[profile.Allergy][]string{
		profile.AllergyNuts:  {"nut", "peanut", "almond"},
		profile.AllergyDairy: {"cheese", "cream", "milk", "butter", "parmesan", "cheddar"},
		profile.AllergyEggs:  {"egg"},
	}

	mealKeywords = map[profile.MealType][]string{
		profile.MealBreakfast: {"pancake", "muffin", "banana", "oat"},
		profile.MealLunch:     {"salad", "sandwich", "soup", "pasta"},
		profile.MealDinner:    {"pasta", "chicken", "beef", "fish", "stir-fry"},
		profile.MealSnack:     {"cookie", "cake", "muffin", "bite"},
	}
)

// FilterByPreferences returns the items whose name matches none of the
// exclusion keywords of the active preferences and allergies. Tags without a
// rule are accepted and have no effect. Input order is preserved.
func FilterByPreferences(items []dataset.FoodItem, prefs []profile.DietaryPreference, allergies []profile.Allergy) []dataset.FoodItem {
	var excluded []string
	for _, p := range prefs {
		excluded = append(excluded, preferenceExclusions[p]...)
	}
	for _, a := range allergies {
		excluded = append(excluded, allergyExclusions[a]...)
	}

	out := make([]dataset.FoodItem, 0, len(items))
	for _, item := range items {
		if len(excluded) > 0 && dataset.ContainsAnyFold(item.Name, excluded...) {
			continue
		}
		out = append(out, item)
	}
	return out
}

// RankByGoal returns a reordered copy of items. High-Protein sorts by protein
// descending, then Low-Carb sorts by carbohydrates ascending; both sorts are
// stable so the last one applied decides the order and ties keep their
// previous relative position.
func RankByGoal(items []dataset.FoodItem, goals []profile.HealthGoal) []dataset.FoodItem {
	out := make([]dataset.FoodItem, len(items))
	copy(out, items)

	if slices.Contains(goals, profile.GoalHighProtein) {
		slices.SortStableFunc(out, func(a, b dataset.FoodItem) int {
			return cmp.Compare(b.Protein, a.Protein)
		})
	}
	if slices.Contains(goals, profile.GoalLowCarb) {
		slices.SortStableFunc(out, func(a, b dataset.FoodItem) int {
			return cmp.Compare(a.Carbohydrates, b.Carbohydrates)
		})
	}
	return out
}

// Explorer defaults.
const (
	DefaultMinCalories = 0
	DefaultMaxCalories = 2000
	DefaultMaxCookTime = 60
)

// ExplorerQuery holds the explorer's range and text filters. Bounds are
// inclusive.
type ExplorerQuery struct {
	MinCalories float64 `json:"minCalories" yaml:"minCalories"`
	MaxCalories float64 `json:"maxCalories" yaml:"maxCalories"`
	MaxCookTime float64 `json:"maxCookTime" yaml:"maxCookTime"`
	Query       string  `json:"query,omitempty" yaml:"query,omitempty"`
}

// DefaultExplorerQuery returns a query that keeps everything up to 2000 kcal
// and one hour of cooking.
func DefaultExplorerQuery() ExplorerQuery {
	return ExplorerQuery{
		MinCalories: DefaultMinCalories,
		MaxCalories: DefaultMaxCalories,
		MaxCookTime: DefaultMaxCookTime,
	}
}

// SearchAndFilter applies the numeric bounds first and then, when q.Query is
// not blank, keeps items whose name or description contains it. The full
// matching set is returned in input order.
func SearchAndFilter(items []dataset.FoodItem, q ExplorerQuery) []dataset.FoodItem {
	out := make([]dataset.FoodItem, 0, len(items))
	for _, item := range items {
		if item.Calories < q.MinCalories || item.Calories > q.MaxCalories {
			continue
		}
		if item.CookTimeMinutes > q.MaxCookTime {
			continue
		}
		if q.Query != "" && !dataset.ContainsFold(item.Name, q.Query) && !dataset.ContainsFold(item.Description, q.Query) {
			continue
		}
		out = append(out, item)
	}
	return out
}

// ClassifyForMeal keeps items that cook within timeAvailable minutes and whose
// name matches a keyword of the meal type, then ranks them by goal.
func ClassifyForMeal(items []dataset.FoodItem, meal profile.MealType, timeAvailable float64, goals []profile.HealthGoal) []dataset.FoodItem {
	keywords := mealKeywords[meal]

	out := make([]dataset.FoodItem, 0, len(items))
	for _, item := range items {
		if item.CookTimeMinutes > timeAvailable {
			continue
		}
		if !dataset.ContainsAnyFold(item.Name, keywords...) {
			continue
		}
		out = append(out, item)
	}
	return RankByGoal(out, goals)
}
