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

// Package profile defines the user profile passed into every recommendation
// and health calculation.
//
// A Profile is a value object rebuilt for each request from flags, query
// parameters, or a profile document. It is never persisted. Build it with
// functional options, which validate each field as it is applied:
//
//	p, err := profile.Build(
//	    profile.WithAge(42),
//	    profile.WithGender("female"),
//	    profile.WithHealthGoals("Weight Loss", "High-Protein"),
//	)
//
// Profile documents use a Kubernetes-style envelope:
//
//	kind: userProfile
//	apiVersion: nutrisense.io/v1alpha1
//	metadata:
//	  name: weekday
//	spec:
//	  age: 42
//	  gender: Female
//	  weightKg: 68
//	  heightCm: 165
//	  activityLevel: Lightly Active
//	  dietaryPreferences: [Vegetarian]
//	  healthGoals: [Weight Loss]
//	  allergies: [Nuts]
//	  targets:
//	    calories: 1800
//	    proteinG: 90
//	    carbsG: 180
//	    fatG: 60
package profile

import (
	"fmt"
	"math"
	"slices"

	nserrors "github.com/nutrisense/nutrisense/pkg/errors"
)

// Bounds of the profile inputs.
const (
	MinAge, MaxAge           = 18, 80
	MinWeightKg, MaxWeightKg = 40, 150
	MinHeightCm, MaxHeightCm = 140, 220
	MinCalories, MaxCalories = 1200, 3000
	MinProteinG, MaxProteinG = 20, 200
	MinCarbsG, MaxCarbsG     = 50, 400
	MinFatG, MaxFatG         = 20, 150
)

// Defaults used when a field is not supplied.
const (
	DefaultAge           = 30
	DefaultGender        = GenderMale
	DefaultWeightKg      = 70
	DefaultHeightCm      = 170
	DefaultActivityLevel = ActivitySedentary
	DefaultCalories      = 2000
	DefaultProteinG      = 100
	DefaultCarbsG        = 200
	DefaultFatG          = 70
)

// Targets are the user's direct daily intake targets.
type Targets struct {
	Calories float64 `json:"calories" yaml:"calories"`
	ProteinG float64 `json:"proteinG" yaml:"proteinG"`
	CarbsG   float64 `json:"carbsG" yaml:"carbsG"`
	FatG     float64 `json:"fatG" yaml:"fatG"`
}

// DefaultTargets returns the default daily targets.
func DefaultTargets() Targets {
	return Targets{
		Calories: DefaultCalories,
		ProteinG: DefaultProteinG,
		CarbsG:   DefaultCarbsG,
		FatG:     DefaultFatG,
	}
}

// Profile describes one user for the duration of a request.
type Profile struct {
	Age                int                 `json:"age" yaml:"age"`
	Gender             Gender              `json:"gender" yaml:"gender"`
	WeightKg           float64             `json:"weightKg" yaml:"weightKg"`
	HeightCm           float64             `json:"heightCm" yaml:"heightCm"`
	ActivityLevel      ActivityLevel       `json:"activityLevel" yaml:"activityLevel"`
	DietaryPreferences []DietaryPreference `json:"dietaryPreferences,omitempty" yaml:"dietaryPreferences,omitempty"`
	HealthGoals        []HealthGoal        `json:"healthGoals,omitempty" yaml:"healthGoals,omitempty"`
	Allergies          []Allergy           `json:"allergies,omitempty" yaml:"allergies,omitempty"`
	Targets            Targets             `json:"targets" yaml:"targets"`
}

// New returns a profile populated with defaults.
func New() *Profile {
	return &Profile{
		Age:           DefaultAge,
		Gender:        DefaultGender,
		WeightKg:      DefaultWeightKg,
		HeightCm:      DefaultHeightCm,
		ActivityLevel: DefaultActivityLevel,
		Targets:       DefaultTargets(),
	}
}

// HasGoal reports whether the goal is active.
func (p *Profile) HasGoal(g HealthGoal) bool {
	return slices.Contains(p.HealthGoals, g)
}

// HasPreference reports whether the dietary preference is active.
func (p *Profile) HasPreference(d DietaryPreference) bool {
	return slices.Contains(p.DietaryPreferences, d)
}

// HasAllergy reports whether the allergy is active.
func (p *Profile) HasAllergy(a Allergy) bool {
	return slices.Contains(p.Allergies, a)
}

// checkRange fails for NaN as well as for values outside [lo, hi].
func checkRange(name string, v, lo, hi float64) error {
	if math.IsNaN(v) || v < lo || v > hi {
		return nserrors.NewWithContext(nserrors.ErrCodeInvalidRequest,
			fmt.Sprintf("%s %v out of range [%v, %v]", name, v, lo, hi),
			map[string]any{"field": name, "value": v})
	}
	return nil
}

// Validate checks every field against its allowed range and enum.
func (p *Profile) Validate() error {
	if p == nil {
		return nserrors.New(nserrors.ErrCodeInvalidRequest, "profile is nil")
	}

	checks := []struct {
		name   string
		v      float64
		lo, hi float64
	}{
		{"age", float64(p.Age), MinAge, MaxAge},
		{"weight", p.WeightKg, MinWeightKg, MaxWeightKg},
		{"height", p.HeightCm, MinHeightCm, MaxHeightCm},
		{"target calories", p.Targets.Calories, MinCalories, MaxCalories},
		{"target protein", p.Targets.ProteinG, MinProteinG, MaxProteinG},
		{"target carbs", p.Targets.CarbsG, MinCarbsG, MaxCarbsG},
		{"target fat", p.Targets.FatG, MinFatG, MaxFatG},
	}
	for _, c := range checks {
		if err := checkRange(c.name, c.v, c.lo, c.hi); err != nil {
			return err
		}
	}

	if _, err := ParseGender(string(p.Gender)); err != nil {
		return nserrors.Wrap(nserrors.ErrCodeInvalidRequest, "invalid profile", err)
	}
	if _, err := ParseActivityLevel(string(p.ActivityLevel)); err != nil {
		return nserrors.Wrap(nserrors.ErrCodeInvalidRequest, "invalid profile", err)
	}
	return nil
}

// Option configures a Profile.
type Option func(*Profile) error

// WithAge sets the age in years.
func WithAge(age int) Option {
	return func(p *Profile) error {
		p.Age = age
		return checkRange("age", float64(age), MinAge, MaxAge)
	}
}

// WithGender sets the gender.
func WithGender(s string) Option {
	return func(p *Profile) error {
		g, err := ParseGender(s)
		if err != nil {
			return err
		}
		p.Gender = g
		return nil
	}
}

// WithWeight sets the body weight in kilograms.
func WithWeight(kg float64) Option {
	return func(p *Profile) error {
		p.WeightKg = kg
		return checkRange("weight", kg, MinWeightKg, MaxWeightKg)
	}
}

// WithHeight sets the height in centimeters.
func WithHeight(cm float64) Option {
	return func(p *Profile) error {
		p.HeightCm = cm
		return checkRange("height", cm, MinHeightCm, MaxHeightCm)
	}
}

// WithActivityLevel sets the activity tier.
func WithActivityLevel(s string) Option {
	return func(p *Profile) error {
		a, err := ParseActivityLevel(s)
		if err != nil {
			return err
		}
		p.ActivityLevel = a
		return nil
	}
}

// WithDietaryPreferences replaces the dietary preference set.
func WithDietaryPreferences(values ...string) Option {
	return func(p *Profile) error {
		set, err := parseSet(values, ParseDietaryPreference)
		if err != nil {
			return err
		}
		p.DietaryPreferences = set
		return nil
	}
}

// WithHealthGoals replaces the health goal set.
func WithHealthGoals(values ...string) Option {
	return func(p *Profile) error {
		set, err := parseSet(values, ParseHealthGoal)
		if err != nil {
			return err
		}
		p.HealthGoals = set
		return nil
	}
}

// WithAllergies replaces the allergy set.
func WithAllergies(values ...string) Option {
	return func(p *Profile) error {
		set, err := parseSet(values, ParseAllergy)
		if err != nil {
			return err
		}
		p.Allergies = set
		return nil
	}
}

// WithTargets replaces all four daily targets.
func WithTargets(t Targets) Option {
	return func(p *Profile) error {
		p.Targets = t
		return nil
	}
}

// WithCalorieTarget sets the daily calorie target.
func WithCalorieTarget(kcal float64) Option {
	return func(p *Profile) error {
		p.Targets.Calories = kcal
		return checkRange("target calories", kcal, MinCalories, MaxCalories)
	}
}

// WithProteinTarget sets the daily protein target in grams.
func WithProteinTarget(g float64) Option {
	return func(p *Profile) error {
		p.Targets.ProteinG = g
		return checkRange("target protein", g, MinProteinG, MaxProteinG)
	}
}

// WithCarbsTarget sets the daily carbohydrate target in grams.
func WithCarbsTarget(g float64) Option {
	return func(p *Profile) error {
		p.Targets.CarbsG = g
		return checkRange("target carbs", g, MinCarbsG, MaxCarbsG)
	}
}

// WithFatTarget sets the daily fat target in grams.
func WithFatTarget(g float64) Option {
	return func(p *Profile) error {
		p.Targets.FatG = g
		return checkRange("target fat", g, MinFatG, MaxFatG)
	}
}

// Build creates a profile from defaults plus options and validates the result.
func Build(opts ...Option) (*Profile, error) {
	p := New()
	for _, opt := range opts {
		if err := opt(p); err != nil {
			if nserrors.CodeOf(err) == nserrors.ErrCodeInternal {
				return nil, nserrors.Wrap(nserrors.ErrCodeInvalidRequest, "invalid profile", err)
			}
			return nil, err
		}
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}
