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

// Range is an inclusive percentage range of daily calories.
type Range struct {
	Min float64 `json:"min" yaml:"min"`
	Max float64 `json:"max" yaml:"max"`
}

// String renders the range as "30-35%".
func (r Range) String() string {
	return fmt.Sprintf("%g-%g%%", r.Min, r.Max)
}

// MacroDistribution is the recommended share of calories per macronutrient.
type MacroDistribution struct {
	Protein Range `json:"protein" yaml:"protein"`
	Carbs   Range `json:"carbs" yaml:"carbs"`
	Fat     Range `json:"fat" yaml:"fat"`
}

var (
	weightLossDistribution = MacroDistribution{
		Protein: Range{30, 35}, Carbs: Range{30, 40}, Fat: Range{25, 35},
	}
	muscleGainDistribution = MacroDistribution{
		Protein: Range{25, 35}, Carbs: Range{40, 50}, Fat: Range{15, 25},
	}
	balancedDistribution = MacroDistribution{
		Protein: Range{20, 30}, Carbs: Range{45, 55}, Fat: Range{20, 35},
	}
)

// MacroDistributionFor returns the distribution for the first matching goal,
// in the same precedence as RecommendedIntake.
func MacroDistributionFor(goals []profile.HealthGoal) MacroDistribution {
	switch {
	case slices.Contains(goals, profile.GoalWeightLoss):
		return weightLossDistribution
	case slices.Contains(goals, profile.GoalMuscleGain):
		return muscleGainDistribution
	default:
		return balancedDistribution
	}
}

// Tip is a block of advice for one goal.
type Tip struct {
	Goal profile.HealthGoal `json:"goal" yaml:"goal"`
	Tips []string           `json:"tips" yaml:"tips"`
}

var tipsByGoal = []Tip{
	{
		Goal: profile.GoalWeightLoss,
		Tips: []string{
			"Focus on high-protein, high-fiber foods to stay full longer",
			"Reduce added sugars and refined carbohydrates",
			"Drink plenty of water before meals to reduce appetite",
			"Incorporate healthy fats in moderation",
		},
	},
	{
		Goal: profile.GoalMuscleGain,
		Tips: []string{
			"Consume protein with every meal (aim for 1.6-2.2g per kg of body weight)",
			"Time carbohydrates around workouts for energy and recovery",
			"Don't neglect healthy fats for hormone production",
			"Consider protein-rich snacks between meals",
		},
	},
	{
		Goal: profile.GoalHeartHealth,
		Tips: []string{
			"Increase intake of omega-3 fatty acids (fish, flaxseeds, walnuts)",
			"Choose unsaturated fats over saturated fats",
			"Eat plenty of fruits and vegetables for antioxidants",
			"Reduce sodium intake to support healthy blood pressure",
		},
	},
	{
		Goal: profile.GoalDiabetesManagement,
		Tips: []string{
			"Focus on low-glycemic index carbohydrates",
			"Pair carbs with protein and fat to slow digestion",
			"Choose high-fiber foods to help regulate blood sugar",
			"Spread carbohydrate intake evenly throughout the day",
		},
	},
}

// TipsFor returns the tip blocks for every active goal that has advice, in a
// fixed order. Unlike the distribution, tips accumulate across goals.
func TipsFor(goals []profile.HealthGoal) []Tip {
	var out []Tip
	for _, t := range tipsByGoal {
		if slices.Contains(goals, t.Goal) {
			out = append(out, Tip{Goal: t.Goal, Tips: slices.Clone(t.Tips)})
		}
	}
	return out
}
