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
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/nutrisense/nutrisense/pkg/dataset"
	"github.com/nutrisense/nutrisense/pkg/defaults"
	nserrors "github.com/nutrisense/nutrisense/pkg/errors"
	"github.com/nutrisense/nutrisense/pkg/header"
	"github.com/nutrisense/nutrisense/pkg/health"
	"github.com/nutrisense/nutrisense/pkg/profile"
)

// DefaultTimeAvailable is the meal planner's default cooking budget in minutes.
const DefaultTimeAvailable = 30

// Recommender builds recommendation documents over a loaded dataset.
// It holds no mutable state and is safe for concurrent use.
type Recommender struct {
	data           *dataset.Dataset
	version        string
	dashboardLimit int
	mealPlanLimit  int
}

// Option is a functional option for configuring the Recommender.
type Option func(*Recommender)

// WithVersion sets the version stamped into document metadata.
func WithVersion(version string) Option {
	return func(r *Recommender) {
		r.version = version
	}
}

// WithDashboardLimit sets how many foods the dashboard recommends.
// Non-positive values are ignored.
func WithDashboardLimit(n int) Option {
	return func(r *Recommender) {
		if n > 0 {
			r.dashboardLimit = n
		}
	}
}

// WithMealPlanLimit sets how many options the meal planner returns.
// Non-positive values are ignored.
func WithMealPlanLimit(n int) Option {
	return func(r *Recommender) {
		if n > 0 {
			r.mealPlanLimit = n
		}
	}
}

// New creates a Recommender over data.
func New(data *dataset.Dataset, opts ...Option) *Recommender {
	r := &Recommender{
		data:           data,
		dashboardLimit: defaults.DashboardLimit,
		mealPlanLimit:  defaults.MealPlanLimit,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Dataset returns the dataset the recommender reads from.
func (r *Recommender) Dataset() *dataset.Dataset {
	return r.data
}

// begin checks the preconditions shared by every builder and returns a
// function that records the build outcome.
func (r *Recommender) begin(ctx context.Context, kind header.Kind, p *profile.Profile, needProfile bool) (func(error), error) {
	start := time.Now()
	done := func(err error) {
		status := "success"
		if err != nil {
			status = string(nserrors.CodeOf(err))
		}
		buildDuration.WithLabelValues(kind.String()).Observe(time.Since(start).Seconds())
		buildTotal.WithLabelValues(kind.String(), status).Inc()
	}

	var err error
	switch {
	case ctx.Err() != nil:
		err = nserrors.Wrap(nserrors.ErrCodeTimeout, "request canceled", ctx.Err())
	case r.data == nil:
		err = nserrors.New(nserrors.ErrCodeUnavailable, "dataset not loaded")
	case needProfile && p == nil:
		err = nserrors.New(nserrors.ErrCodeInvalidRequest, "profile cannot be nil")
	case needProfile:
		err = p.Validate()
	}
	if err != nil {
		done(err)
		return nil, err
	}
	return done, nil
}

func (r *Recommender) stamp(h *header.Header, kind header.Kind) {
	h.Init(kind, r.version)
	h.Metadata["source"] = r.data.Source()
}

// Dashboard recommends the top foods for the profile. Preference filters are
// applied before ranking and allergy filters after it; since filtering keeps
// order the result equals filtering first and ranking the survivors.
func (r *Recommender) Dashboard(ctx context.Context, p *profile.Profile) (*Dashboard, error) {
	done, err := r.begin(ctx, header.KindDashboard, p, true)
	if err != nil {
		return nil, err
	}

	items := FilterByPreferences(r.data.Items(), p.DietaryPreferences, nil)
	items = RankByGoal(items, p.HealthGoals)
	items = FilterByPreferences(items, nil, p.Allergies)
	if len(items) > r.dashboardLimit {
		items = items[:r.dashboardLimit]
	}

	bmi, _ := health.BMI(p.WeightKg, p.HeightCm)
	split := health.MacroCalorieSplit(p.Targets.ProteinG, p.Targets.CarbsG, p.Targets.FatG)

	d := &Dashboard{
		Profile:         p,
		Recommendations: items,
		Summary: NutritionSummary{
			BMI:            bmi,
			BMIStatus:      health.BMIStatus(bmi),
			TargetCalories: p.Targets.Calories,
			MacroCalories:  split,
			MacroShares:    split.Shares(),
			WaterLiters:    health.WaterIntakeLiters(p.WeightKg),
		},
	}
	r.stamp(&d.Header, header.KindDashboard)

	slog.Debug("dashboard built",
		"recommendations", len(items),
		"preferences", len(p.DietaryPreferences),
		"allergies", len(p.Allergies),
		"goals", len(p.HealthGoals),
	)

	done(nil)
	return d, nil
}

// Explore runs an explorer search over the whole dataset.
func (r *Recommender) Explore(ctx context.Context, q ExplorerQuery) (*Explorer, error) {
	done, err := r.begin(ctx, header.KindExplorer, nil, false)
	if err != nil {
		return nil, err
	}

	if err = validateQuery(q); err != nil {
		done(err)
		return nil, err
	}

	foods := SearchAndFilter(r.data.Items(), q)
	e := &Explorer{
		Query: q,
		Count: len(foods),
		Foods: foods,
	}
	r.stamp(&e.Header, header.KindExplorer)

	done(nil)
	return e, nil
}

func validateQuery(q ExplorerQuery) error {
	switch {
	case !finite(q.MinCalories) || !finite(q.MaxCalories) || !finite(q.MaxCookTime):
		return nserrors.New(nserrors.ErrCodeInvalidRequest, "explorer bounds must be finite numbers")
	case q.MinCalories < 0 || q.MaxCalories < 0 || q.MaxCookTime < 0:
		return nserrors.NewWithContext(nserrors.ErrCodeInvalidRequest,
			"explorer bounds must not be negative", map[string]any{
				"minCalories": q.MinCalories,
				"maxCalories": q.MaxCalories,
				"maxCookTime": q.MaxCookTime,
			})
	case q.MinCalories > q.MaxCalories:
		return nserrors.NewWithContext(nserrors.ErrCodeInvalidRequest,
			"minCalories must not exceed maxCalories", map[string]any{
				"minCalories": q.MinCalories,
				"maxCalories": q.MaxCalories,
			})
	}
	return nil
}

// PlanMeal returns the top meal options for the meal type that cook within
// timeAvailable minutes. An empty result is reported as ErrCodeNotFound.
func (r *Recommender) PlanMeal(ctx context.Context, p *profile.Profile, meal profile.MealType, timeAvailable float64) (*MealPlan, error) {
	done, err := r.begin(ctx, header.KindMealPlan, p, true)
	if err != nil {
		return nil, err
	}

	if _, ok := mealKeywords[meal]; !ok {
		err = nserrors.NewWithContext(nserrors.ErrCodeInvalidRequest,
			fmt.Sprintf("unsupported meal type: %q", meal), map[string]any{
				"supported": profile.SupportedMealTypes(),
			})
		done(err)
		return nil, err
	}
	if !finite(timeAvailable) || timeAvailable < 0 {
		err = nserrors.New(nserrors.ErrCodeInvalidRequest, "time available must be a non-negative number")
		done(err)
		return nil, err
	}

	items := ClassifyForMeal(r.data.Items(), meal, timeAvailable, p.HealthGoals)
	if len(items) == 0 {
		err = nserrors.NewWithContext(nserrors.ErrCodeNotFound, "no matching meals", map[string]any{
			"mealType":      string(meal),
			"timeAvailable": timeAvailable,
		})
		done(err)
		return nil, err
	}
	if len(items) > r.mealPlanLimit {
		items = items[:r.mealPlanLimit]
	}

	options := make([]MealOption, 0, len(items))
	for _, item := range items {
		options = append(options, MealOption{
			Food:             item,
			PercentOfTargets: sharesOf(item, p.Targets),
		})
	}

	mp := &MealPlan{
		MealType:      meal,
		TimeAvailable: timeAvailable,
		Options:       options,
	}
	r.stamp(&mp.Header, header.KindMealPlan)

	done(nil)
	return mp, nil
}

func sharesOf(item dataset.FoodItem, t profile.Targets) TargetShares {
	pct := func(v, target float64) float64 {
		out, _ := health.PercentOfTarget(v, target)
		return out
	}
	return TargetShares{
		Calories: pct(item.Calories, t.Calories),
		Protein:  pct(item.Protein, t.ProteinG),
		Carbs:    pct(item.Carbohydrates, t.CarbsG),
		Fat:      pct(item.Fat, t.FatG),
	}
}

// Analyze breaks down the food with the given name and notes its impact on
// the profile's goals.
func (r *Recommender) Analyze(ctx context.Context, p *profile.Profile, name string) (*FoodAnalysis, error) {
	done, err := r.begin(ctx, header.KindFoodAnalysis, p, true)
	if err != nil {
		return nil, err
	}

	if name == "" {
		err = nserrors.New(nserrors.ErrCodeInvalidRequest, "food name is required")
		done(err)
		return nil, err
	}

	item, err := r.data.FindByName(name)
	if err != nil {
		done(err)
		return nil, err
	}

	split := health.MacroCalorieSplit(item.Protein, item.Carbohydrates, item.Fat)
	fa := &FoodAnalysis{
		Food:          item,
		MacroCalories: split,
		MacroShares:   health.GramShares(item.Protein, item.Carbohydrates, item.Fat),
		Impact:        health.FoodImpact(item.Calories, item.Protein, item.Carbohydrates, p.HealthGoals),
	}
	if fa.Impact == nil {
		fa.Impact = []health.ImpactNote{}
	}
	r.stamp(&fa.Header, header.KindFoodAnalysis)

	done(nil)
	return fa, nil
}

// Insights computes the profile's energy needs and goal advice.
func (r *Recommender) Insights(ctx context.Context, p *profile.Profile) (*Insights, error) {
	done, err := r.begin(ctx, header.KindInsights, p, true)
	if err != nil {
		return nil, err
	}

	bmr := health.BMR(p.Gender, p.WeightKg, p.HeightCm, p.Age)
	factor, _ := health.ActivityFactor(p.ActivityLevel)
	tdee := health.TDEE(bmr, p.ActivityLevel)

	in := &Insights{
		BMR:               bmr,
		ActivityFactor:    factor,
		TDEE:              tdee,
		MacroDistribution: health.MacroDistributionFor(p.HealthGoals),
		Tips:              health.TipsFor(p.HealthGoals),
	}
	if in.Tips == nil {
		in.Tips = []health.Tip{}
	}
	if intake, ok := health.RecommendedIntake(tdee, p.HealthGoals); ok {
		in.RecommendedIntake = &intake
	}
	r.stamp(&in.Header, header.KindInsights)

	done(nil)
	return in, nil
}

// Foods lists the names of every food in the dataset.
func (r *Recommender) Foods(ctx context.Context) (*FoodList, error) {
	done, err := r.begin(ctx, header.KindFoodList, nil, false)
	if err != nil {
		return nil, err
	}

	names := r.data.Names()
	fl := &FoodList{
		Source: r.data.Source(),
		Count:  len(names),
		Names:  names,
	}
	r.stamp(&fl.Header, header.KindFoodList)

	done(nil)
	return fl, nil
}
