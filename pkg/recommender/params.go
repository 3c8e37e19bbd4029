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
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"

	nserrors "github.com/nutrisense/nutrisense/pkg/errors"
	"github.com/nutrisense/nutrisense/pkg/profile"
)

// Query parameters read by the handlers in addition to the profile ones.
const (
	ParamMeal        = "meal"
	ParamTime        = "time"
	ParamFood        = "food"
	ParamQuery       = "q"
	ParamMinCalories = "minCalories"
	ParamMaxCalories = "maxCalories"
	ParamMaxCookTime = "maxCookTime"
)

// ParseExplorerQuery reads an ExplorerQuery from URL values. Missing bounds
// take their defaults.
func ParseExplorerQuery(values url.Values) (ExplorerQuery, error) {
	q := DefaultExplorerQuery()
	q.Query = strings.TrimSpace(values.Get(ParamQuery))

	for _, f := range []struct {
		key string
		dst *float64
	}{
		{ParamMinCalories, &q.MinCalories},
		{ParamMaxCalories, &q.MaxCalories},
		{ParamMaxCookTime, &q.MaxCookTime},
	} {
		if s := values.Get(f.key); s != "" {
			v, err := parseFloat(f.key, s)
			if err != nil {
				return ExplorerQuery{}, err
			}
			*f.dst = v
		}
	}
	return q, nil
}

// ParseMealRequest reads the meal type and time budget from URL values.
// Missing values default to Breakfast and DefaultTimeAvailable.
func ParseMealRequest(values url.Values) (profile.MealType, float64, error) {
	meal := profile.MealBreakfast
	if s := values.Get(ParamMeal); s != "" {
		m, err := profile.ParseMealType(s)
		if err != nil {
			return "", 0, nserrors.Wrap(nserrors.ErrCodeInvalidRequest, "invalid meal type", err)
		}
		meal = m
	}

	timeAvailable := float64(DefaultTimeAvailable)
	if s := values.Get(ParamTime); s != "" {
		v, err := parseFloat(ParamTime, s)
		if err != nil {
			return "", 0, err
		}
		timeAvailable = v
	}
	return meal, timeAvailable, nil
}

func parseFloat(name, s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || !finite(v) {
		return 0, nserrors.NewWithContext(nserrors.ErrCodeInvalidRequest,
			fmt.Sprintf("invalid %s value: %s", name, s), map[string]any{"param": name})
	}
	return v, nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
