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

// Package health implements the closed-form body metrics used by the
// dashboard and insights: BMI, Harris-Benedict BMR, activity-scaled TDEE,
// goal-adjusted intake, Atwater macro calorie split, and percent of target.
//
// Every function is pure. Degenerate denominators return ok=false instead of
// panicking or producing Inf/NaN.
package health

import (
	"slices"

	"github.com/nutrisense/nutrisense/pkg/profile"
)

// BMI status bands.
const (
	StatusUnderweight = "Underweight"
	StatusNormal      = "Normal"
	StatusOverweight  = "Overweight"
	StatusObese       = "Obese"
)

// Atwater factors in kcal per gram.
const (
	KcalPerGramProtein = 4
	KcalPerGramCarbs   = 4
	KcalPerGramFat     = 9
)

// IntakeAdjustment is the daily kcal deficit or surplus applied for weight
// loss or muscle gain.
const IntakeAdjustment = 500

// WaterLitersPerKg is the daily water recommendation per kg of body weight.
const WaterLitersPerKg = 0.033

// BMI returns weight / (height in meters)^2. ok is false when height is not
// positive.
func BMI(weightKg, heightCm float64) (float64, bool) {
	if heightCm <= 0 {
		return 0, false
	}
	m := heightCm / 100
	return weightKg / (m * m), true
}

// BMIStatus maps a BMI value onto its status band.
func BMIStatus(bmi float64) string {
	switch {
	case bmi < 18.5:
		return StatusUnderweight
	case bmi < 25:
		return StatusNormal
	case bmi < 30:
		return StatusOverweight
	default:
		return StatusObese
	}
}

// BMR estimates basal metabolic rate in kcal/day with the Harris-Benedict
// equation. Every gender other than Male uses the female coefficients.
func BMR(gender profile.Gender, weightKg, heightCm float64, age int) float64 {
	a := float64(age)
	if gender == profile.GenderMale {
		return 88.362 + 13.397*weightKg + 4.799*heightCm - 5.677*a
	}
	return 447.593 + 9.247*weightKg + 3.098*heightCm - 4.330*a
}

var activityFactors = map[profile.ActivityLevel]float64{
	profile.ActivitySedentary:        1.2,
	profile.ActivityLightlyActive:    1.375,
	profile.ActivityModeratelyActive: 1.55,
	profile.ActivityVeryActive:       1.725,
	profile.ActivityExtremelyActive:  1.9,
}

// ActivityFactor returns the TDEE multiplier for an activity level. Unknown
// levels report ok=false.
func ActivityFactor(level profile.ActivityLevel) (float64, bool) {
	f, ok := activityFactors[level]
	return f, ok
}

// TDEE scales BMR by the activity factor. Unknown levels use the sedentary
// factor.
func TDEE(bmr float64, level profile.ActivityLevel) float64 {
	f, ok := ActivityFactor(level)
	if !ok {
		f = activityFactors[profile.ActivitySedentary]
	}
	return bmr * f
}

// RecommendedIntake adjusts TDEE for the active goals. Weight Loss is checked
// first and wins over Muscle Gain. ok is false when neither goal is active.
func RecommendedIntake(tdee float64, goals []profile.HealthGoal) (float64, bool) {
	switch {
	case slices.Contains(goals, profile.GoalWeightLoss):
		return tdee - IntakeAdjustment, true
	case slices.Contains(goals, profile.GoalMuscleGain):
		return tdee + IntakeAdjustment, true
	default:
		return 0, false
	}
}

// MacroSplit holds the calories contributed by each macronutrient.
type MacroSplit struct {
	ProteinKcal float64 `json:"proteinKcal" yaml:"proteinKcal"`
	CarbsKcal   float64 `json:"carbsKcal" yaml:"carbsKcal"`
	FatKcal     float64 `json:"fatKcal" yaml:"fatKcal"`
}

// MacroShares holds each macronutrient's percentage of the total.
type MacroShares struct {
	ProteinPct float64 `json:"proteinPct" yaml:"proteinPct"`
	CarbsPct   float64 `json:"carbsPct" yaml:"carbsPct"`
	FatPct     float64 `json:"fatPct" yaml:"fatPct"`
}

// MacroCalorieSplit converts grams to calories with the Atwater factors.
func MacroCalorieSplit(proteinG, carbsG, fatG float64) MacroSplit {
	return MacroSplit{
		ProteinKcal: proteinG * KcalPerGramProtein,
		CarbsKcal:   carbsG * KcalPerGramCarbs,
		FatKcal:     fatG * KcalPerGramFat,
	}
}

// Total returns the summed calories.
func (m MacroSplit) Total() float64 {
	return m.ProteinKcal + m.CarbsKcal + m.FatKcal
}

// Shares returns each component as a percentage of the total. A zero total
// yields zero shares.
func (m MacroSplit) Shares() MacroShares {
	return shares(m.ProteinKcal, m.CarbsKcal, m.FatKcal)
}

// GramShares returns each macronutrient's percentage of the combined grams.
func GramShares(proteinG, carbsG, fatG float64) MacroShares {
	return shares(proteinG, carbsG, fatG)
}

func shares(p, c, f float64) MacroShares {
	total := p + c + f
	if total <= 0 {
		return MacroShares{}
	}
	return MacroShares{
		ProteinPct: p / total * 100,
		CarbsPct:   c / total * 100,
		FatPct:     f / total * 100,
	}
}

// PercentOfTarget returns value as a percentage of target. A zero or
// negative target reports 0, false.
func PercentOfTarget(value, target float64) (float64, bool) {
	if target <= 0 {
		return 0, false
	}
	return value / target * 100, true
}

// WaterIntakeLiters returns the recommended daily water intake.
func WaterIntakeLiters(weightKg float64) float64 {
	return weightKg * WaterLitersPerKg
}
