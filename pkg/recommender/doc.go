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

// Package recommender turns a food dataset and a user profile into
// recommendation documents.
//
// The package has two layers. Pure functions operate on slices of
// dataset.FoodItem and never mutate their input:
//
//   - FilterByPreferences drops items whose name matches an exclusion keyword
//     for an active dietary preference or allergy.
//   - RankByGoal reorders items for High-Protein and Low-Carb goals.
//   - SearchAndFilter applies the explorer's calorie, cook time and text filters.
//   - ClassifyForMeal selects items suitable for a meal type and time budget.
//
// A Recommender wraps a loaded dataset and builds header-stamped documents
// (Dashboard, Explorer, MealPlan, FoodAnalysis, Insights) from those
// functions and the calculators in package health. Each builder has a
// matching HTTP handler that accepts the profile as query parameters (GET)
// or as a JSON/YAML UserProfile document (POST).
//
// Usage:
//
//	ds, _ := dataset.Cached(ctx, "")
//	rec := recommender.New(ds, recommender.WithVersion("v0.1.0"))
//	dash, err := rec.Dashboard(ctx, profile.New())
package recommender
