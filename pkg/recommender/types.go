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
	"github.com/nutrisense/nutrisense/pkg/dataset"
	"github.com/nutrisense/nutrisense/pkg/header"
	"github.com/nutrisense/nutrisense/pkg/health"
	"github.com/nutrisense/nutrisense/pkg/profile"
)

// Dashboard is the top recommended foods for a profile plus a nutrition
// summary.
type Dashboard struct {
	header.Header `json:",inline" yaml:",inline"`

	Profile         *profile.Profile   `json:"profile" yaml:"profile"`
	Recommendations []dataset.FoodItem `json:"recommendations" yaml:"recommendations"`
	Summary         NutritionSummary   `json:"summary" yaml:"summary"`
}

// NutritionSummary is derived from the profile only.
type NutritionSummary struct {
	BMI            float64            `json:"bmi" yaml:"bmi"`
	BMIStatus      string             `json:"bmiStatus" yaml:"bmiStatus"`
	TargetCalories float64            `json:"targetCalories" yaml:"targetCalories"`
	MacroCalories  health.MacroSplit  `json:"macroCalories" yaml:"macroCalories"`
	MacroShares    health.MacroShares `json:"macroShares" yaml:"macroShares"`
	WaterLiters    float64            `json:"waterLiters" yaml:"waterLiters"`
}

// Explorer is the result of an explorer search.
type Explorer struct {
	header.Header `json:",inline" yaml:",inline"`

	Query ExplorerQuery      `json:"query" yaml:"query"`
	Count int                `json:"count" yaml:"count"`
	Foods []dataset.FoodItem `json:"foods" yaml:"foods"`
}

// MealPlan lists meal options for a meal type and time budget.
type MealPlan struct {
	header.Header `json:",inline" yaml:",inline"`

	MealType      profile.MealType `json:"mealType" yaml:"mealType"`
	TimeAvailable float64          `json:"timeAvailable" yaml:"timeAvailable"`
	Options       []MealOption     `json:"options" yaml:"options"`
}

// MealOption is one food with its share of the daily targets.
type MealOption struct {
	Food             dataset.FoodItem `json:"food" yaml:"food"`
	PercentOfTargets TargetShares     `json:"percentOfTargets" yaml:"percentOfTargets"`
}

// TargetShares holds percentages of the profile's daily targets.
type TargetShares struct {
	Calories float64 `json:"calories" yaml:"calories"`
	Protein  float64 `json:"protein" yaml:"protein"`
	Carbs    float64 `json:"carbs" yaml:"carbs"`
	Fat      float64 `json:"fat" yaml:"fat"`
}

// FoodAnalysis breaks down a single food.
type FoodAnalysis struct {
	header.Header `json:",inline" yaml:",inline"`

	Food          dataset.FoodItem    `json:"food" yaml:"food"`
	MacroCalories health.MacroSplit   `json:"macroCalories" yaml:"macroCalories"`
	MacroShares   health.MacroShares  `json:"macroShares" yaml:"macroShares"`
	Impact        []health.ImpactNote `json:"impact" yaml:"impact"`
}

// Insights are the profile's energy needs and goal advice.
type Insights struct {
	header.Header `json:",inline" yaml:",inline"`

	BMR               float64                  `json:"bmr" yaml:"bmr"`
	ActivityFactor    float64                  `json:"activityFactor" yaml:"activityFactor"`
	TDEE              float64                  `json:"tdee" yaml:"tdee"`
	RecommendedIntake *float64                 `json:"recommendedIntake,omitempty" yaml:"recommendedIntake,omitempty"`
	MacroDistribution health.MacroDistribution `json:"macroDistribution" yaml:"macroDistribution"`
	Tips              []health.Tip             `json:"tips" yaml:"tips"`
}

// FoodList is the list of food names in the dataset.
type FoodList struct {
	header.Header `json:",inline" yaml:",inline"`

	Source string   `json:"source" yaml:"source"`
	Count  int      `json:"count" yaml:"count"`
	Names  []string `json:"names" yaml:"names"`
}
