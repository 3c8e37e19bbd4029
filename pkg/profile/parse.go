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
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	nserrors "github.com/nutrisense/nutrisense/pkg/errors"
	"github.com/nutrisense/nutrisense/pkg/header"
	"github.com/nutrisense/nutrisense/pkg/serializer"
)

// Kind is the kind value of profile documents.
const Kind = "userProfile"

// Query parameter names understood by ParseFromValues.
const (
	ParamAge       = "age"
	ParamGender    = "gender"
	ParamWeight    = "weight"
	ParamHeight    = "height"
	ParamActivity  = "activity"
	ParamDiet      = "diet"
	ParamGoal      = "goal"
	ParamAllergy   = "allergy"
	ParamCalories  = "calories"
	ParamProtein   = "protein"
	ParamCarbs     = "carbs"
	ParamFat       = "fat"
	paramDietLong  = "dietaryPreferences"
	paramGoalLong  = "healthGoals"
	paramAllergies = "allergies"
)

// ParseFromRequest parses a profile from HTTP query parameters.
func ParseFromRequest(r *http.Request) (*Profile, error) {
	if r == nil {
		return nil, nserrors.New(nserrors.ErrCodeInvalidRequest, "request cannot be nil")
	}
	return ParseFromValues(r.URL.Query())
}

// ParseFromValues parses a profile from URL values. Every parameter is
// optional and falls back to its default. Tag parameters accept repeated keys
// or comma-separated lists: ?goal=Weight+Loss&goal=High-Protein or
// ?goal=weight-loss,high-protein.
func ParseFromValues(values url.Values) (*Profile, error) {
	var opts []Option

	if s := values.Get(ParamAge); s != "" {
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return nil, invalid(fmt.Errorf("invalid age value: %s", s))
		}
		opts = append(opts, WithAge(n))
	}
	if s := values.Get(ParamGender); s != "" {
		opts = append(opts, WithGender(s))
	}
	if s := values.Get(ParamWeight); s != "" {
		v, err := parseNumber(ParamWeight, s)
		if err != nil {
			return nil, err
		}
		opts = append(opts, WithWeight(v))
	}
	if s := values.Get(ParamHeight); s != "" {
		v, err := parseNumber(ParamHeight, s)
		if err != nil {
			return nil, err
		}
		opts = append(opts, WithHeight(v))
	}
	if s := values.Get(ParamActivity); s != "" {
		opts = append(opts, WithActivityLevel(s))
	}
	if v := multi(values, ParamDiet, paramDietLong); len(v) > 0 {
		opts = append(opts, WithDietaryPreferences(v...))
	}
	if v := multi(values, ParamGoal, paramGoalLong); len(v) > 0 {
		opts = append(opts, WithHealthGoals(v...))
	}
	if v := multi(values, ParamAllergy, paramAllergies); len(v) > 0 {
		opts = append(opts, WithAllergies(v...))
	}

	for _, f := range []struct {
		key string
		opt func(float64) Option
	}{
		{ParamCalories, WithCalorieTarget},
		{ParamProtein, WithProteinTarget},
		{ParamCarbs, WithCarbsTarget},
		{ParamFat, WithFatTarget},
	} {
		if s := values.Get(f.key); s != "" {
			v, err := parseNumber(f.key, s)
			if err != nil {
				return nil, err
			}
			opts = append(opts, f.opt(v))
		}
	}

	return Build(opts...)
}

func parseNumber(name, s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, invalid(fmt.Errorf("invalid %s value: %s", name, s))
	}
	return v, nil
}

func multi(values url.Values, keys ...string) []string {
	var out []string
	for _, k := range keys {
		out = append(out, values[k]...)
	}
	return out
}

func invalid(err error) error {
	return nserrors.Wrap(nserrors.ErrCodeInvalidRequest, "invalid profile", err)
}

// Document is the envelope of a profile file or request body.
type Document struct {
	Kind       string `json:"kind" yaml:"kind"`
	APIVersion string `json:"apiVersion" yaml:"apiVersion"`
	Metadata   struct {
		Name string `json:"name,omitempty" yaml:"name,omitempty"`
	} `json:"metadata" yaml:"metadata"`
	Spec rawSpec `json:"spec" yaml:"spec"`
}

// rawSpec holds enum values as strings so they go through the Parse*
// functions instead of being trusted as typed values. Numbers are pointers so
// an explicit zero is validated rather than read as absent.
type rawSpec struct {
	Age                *int       `json:"age,omitempty" yaml:"age,omitempty"`
	Gender             string     `json:"gender,omitempty" yaml:"gender,omitempty"`
	WeightKg           *float64   `json:"weightKg,omitempty" yaml:"weightKg,omitempty"`
	HeightCm           *float64   `json:"heightCm,omitempty" yaml:"heightCm,omitempty"`
	ActivityLevel      string     `json:"activityLevel,omitempty" yaml:"activityLevel,omitempty"`
	DietaryPreferences []string   `json:"dietaryPreferences,omitempty" yaml:"dietaryPreferences,omitempty"`
	HealthGoals        []string   `json:"healthGoals,omitempty" yaml:"healthGoals,omitempty"`
	Allergies          []string   `json:"allergies,omitempty" yaml:"allergies,omitempty"`
	Targets            rawTargets `json:"targets,omitempty" yaml:"targets,omitempty"`
}

type rawTargets struct {
	Calories *float64 `json:"calories,omitempty" yaml:"calories,omitempty"`
	ProteinG *float64 `json:"proteinG,omitempty" yaml:"proteinG,omitempty"`
	CarbsG   *float64 `json:"carbsG,omitempty" yaml:"carbsG,omitempty"`
	FatG     *float64 `json:"fatG,omitempty" yaml:"fatG,omitempty"`
}

func (d *Document) toProfile() (*Profile, error) {
	if d.Kind != "" && d.Kind != Kind {
		return nil, invalid(fmt.Errorf("invalid kind %q, expected %q", d.Kind, Kind))
	}
	if d.APIVersion != "" && d.APIVersion != header.APIVersion {
		return nil, invalid(fmt.Errorf("invalid apiVersion %q, expected %q", d.APIVersion, header.APIVersion))
	}

	s := d.Spec
	var opts []Option
	if s.Age != nil {
		opts = append(opts, WithAge(*s.Age))
	}
	if s.Gender != "" {
		opts = append(opts, WithGender(s.Gender))
	}
	if s.WeightKg != nil {
		opts = append(opts, WithWeight(*s.WeightKg))
	}
	if s.HeightCm != nil {
		opts = append(opts, WithHeight(*s.HeightCm))
	}
	if s.ActivityLevel != "" {
		opts = append(opts, WithActivityLevel(s.ActivityLevel))
	}
	opts = append(opts,
		WithDietaryPreferences(s.DietaryPreferences...),
		WithHealthGoals(s.HealthGoals...),
		WithAllergies(s.Allergies...),
	)
	for _, t := range []struct {
		v   *float64
		opt func(float64) Option
	}{
		{s.Targets.Calories, WithCalorieTarget},
		{s.Targets.ProteinG, WithProteinTarget},
		{s.Targets.CarbsG, WithCarbsTarget},
		{s.Targets.FatG, WithFatTarget},
	} {
		if t.v != nil {
			opts = append(opts, t.opt(*t.v))
		}
	}
	return Build(opts...)
}

// LoadFromFile loads a profile document from a YAML or JSON file, or from an
// http(s) URL. The format is detected from the extension.
func LoadFromFile(path string) (*Profile, error) {
	doc, err := serializer.FromFile[Document](path)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile file: %w", err)
	}
	return doc.toProfile()
}

// ParseFromBody parses a profile document from a request body. The format
// follows the Content-Type; an empty Content-Type means JSON.
func ParseFromBody(body io.Reader, contentType string) (*Profile, error) {
	if body == nil {
		return nil, invalid(fmt.Errorf("request body cannot be nil"))
	}

	format, err := serializer.FormatFromContentType(contentType)
	if err != nil {
		return nil, invalid(err)
	}

	doc, err := serializer.FromReader[Document](format, body)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, invalid(fmt.Errorf("request body is empty"))
		}
		return nil, invalid(fmt.Errorf("failed to parse %s body: %w", format, err))
	}
	return doc.toProfile()
}
