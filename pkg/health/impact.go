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

package health

import (
	"fmt"
	"slices"

	"github.com/nutrisense/nutrisense/pkg/profile"
)

// Thresholds used by FoodImpact.
const (
	WeightLossMaxCalories = 500
	HighProteinMinGrams   = 20
	LowCarbMaxGrams       = 50
)

// Severity grades an impact note.
type Severity string

const (
	SeverityGood    Severity = "good"
	SeverityWarning Severity = "warning"
)

// ImpactNote is one goal-specific remark about a food.
type ImpactNote struct {
	Goal     profile.HealthGoal `json:"goal" yaml:"goal"`
	Severity Severity           `json:"severity" yaml:"severity"`
	Message  string             `json:"message" yaml:"message"`
}

// FoodImpact grades a single food against the Weight Loss, High-Protein, and
// Low-Carb goals. Other goals produce no notes.
func FoodImpact(calories, proteinG, carbsG float64, goals []profile.HealthGoal) []ImpactNote {
	var notes []ImpactNote

	if slices.Contains(goals, profile.GoalWeightLoss) {
		if calories > WeightLossMaxCalories {
			notes = append(notes, ImpactNote{profile.GoalWeightLoss, SeverityWarning,
				"This meal is high in calories for weight loss goals."})
		} else {
			notes = append(notes, ImpactNote{profile.GoalWeightLoss, SeverityGood,
				"This meal fits well with weight loss goals."})
		}
	}

	if slices.Contains(goals, profile.GoalHighProtein) {
		if proteinG > HighProteinMinGrams {
			notes = append(notes, ImpactNote{profile.GoalHighProtein, SeverityGood,
				fmt.Sprintf("Excellent protein source (%gg)", proteinG)})
		} else {
			notes = append(notes, ImpactNote{profile.GoalHighProtein, SeverityWarning,
				fmt.Sprintf("Moderate protein content (%gg)", proteinG)})
		}
	}

	if slices.Contains(goals, profile.GoalLowCarb) {
		if carbsG > LowCarbMaxGrams {
			notes = append(notes, ImpactNote{profile.GoalLowCarb, SeverityWarning,
				fmt.Sprintf("High carb content (%gg)", carbsG)})
		} else {
			notes = append(notes, ImpactNote{profile.GoalLowCarb, SeverityGood,
				fmt.Sprintf("Low carb option (%gg)", carbsG)})
		}
	}

	return notes
}
