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

package cli

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/urfave/cli/v3"

	"github.com/nutrisense/nutrisense/pkg/profile"
	"github.com/nutrisense/nutrisense/pkg/serializer"
)

// profileFlags are shared by every command that takes a user profile.
func profileFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "profile",
			Aliases: []string{"f"},
			Usage: `Path/URL of a UserProfile document (YAML or JSON).
	If provided, all other profile flags are ignored.`,
		},
		&cli.IntFlag{
			Name:  profile.ParamAge,
			Value: profile.DefaultAge,
			Usage: fmt.Sprintf("age in years (%d-%d)", profile.MinAge, profile.MaxAge),
		},
		&cli.StringFlag{
			Name:  profile.ParamGender,
			Value: string(profile.DefaultGender),
			Usage: fmt.Sprintf("gender (supported values: %v)", profile.SupportedGenders()),
		},
		&cli.FloatFlag{
			Name:  profile.ParamWeight,
			Value: profile.DefaultWeightKg,
			Usage: "weight in kg",
		},
		&cli.FloatFlag{
			Name:  profile.ParamHeight,
			Value: profile.DefaultHeightCm,
			Usage: "height in cm",
		},
		&cli.StringFlag{
			Name:  profile.ParamActivity,
			Value: string(profile.DefaultActivityLevel),
			Usage: fmt.Sprintf("activity level (supported values: %v)", profile.SupportedActivityLevels()),
		},
		&cli.StringSliceFlag{
			Name:  profile.ParamDiet,
			Usage: fmt.Sprintf("dietary preference, repeatable (supported values: %v)", profile.SupportedDietaryPreferences()),
		},
		&cli.StringSliceFlag{
			Name:  profile.ParamGoal,
			Usage: fmt.Sprintf("health goal, repeatable (supported values: %v)", profile.SupportedHealthGoals()),
		},
		&cli.StringSliceFlag{
			Name:  profile.ParamAllergy,
			Usage: fmt.Sprintf("allergy, repeatable (supported values: %v)", profile.SupportedAllergies()),
		},
		&cli.FloatFlag{Name: profile.ParamCalories, Value: profile.DefaultCalories, Usage: "daily calorie target (kcal)"},
		&cli.FloatFlag{Name: profile.ParamProtein, Value: profile.DefaultProteinG, Usage: "daily protein target (g)"},
		&cli.FloatFlag{Name: profile.ParamCarbs, Value: profile.DefaultCarbsG, Usage: "daily carbohydrate target (g)"},
		&cli.FloatFlag{Name: profile.ParamFat, Value: profile.DefaultFatG, Usage: "daily fat target (g)"},
	}
}

// profileFromCmd builds the profile from --profile or from the individual
// flags. Flags go through the same parser as API query parameters.
func profileFromCmd(cmd *cli.Command) (*profile.Profile, error) {
	if path := cmd.String("profile"); path != "" {
		p, err := profile.LoadFromFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to load profile from %q: %w", path, err)
		}
		return p, nil
	}

	values := url.Values{}
	values.Set(profile.ParamAge, strconv.Itoa(int(cmd.Int(profile.ParamAge))))
	for _, key := range []string{profile.ParamGender, profile.ParamActivity} {
		values.Set(key, cmd.String(key))
	}
	for _, key := range []string{
		profile.ParamWeight, profile.ParamHeight,
		profile.ParamCalories, profile.ParamProtein, profile.ParamCarbs, profile.ParamFat,
	} {
		values.Set(key, strconv.FormatFloat(cmd.Float(key), 'f', -1, 64))
	}
	for _, key := range []string{profile.ParamDiet, profile.ParamGoal, profile.ParamAllergy} {
		values[key] = cmd.StringSlice(key)
	}

	p, err := profile.ParseFromValues(values)
	if err != nil {
		return nil, fmt.Errorf("invalid profile: %w", err)
	}
	return p, nil
}

func parseOutputFormat(cmd *cli.Command) (serializer.Format, error) {
	f := serializer.Format(cmd.String("format"))
	if f.IsUnknown() {
		return "", fmt.Errorf("unknown output format: %q, supported values: %v", f, serializer.SupportedFormats())
	}
	return f, nil
}
