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
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nutrisense/nutrisense/pkg/dataset"
	nserrors "github.com/nutrisense/nutrisense/pkg/errors"
	"github.com/nutrisense/nutrisense/pkg/header"
	"github.com/nutrisense/nutrisense/pkg/health"
	"github.com/nutrisense/nutrisense/pkg/profile"
)

func menu(t *testing.T) *dataset.Dataset {
	t.Helper()
	return load(t,
		"Banana Oat Muffin,US,sweet breakfast,10,300,6,45,9,3,16,0.8",
		"Grilled Chicken,US,lean protein,25,280,53,0,6,0,0,0.85",
		"Blueberry Pancakes,US,fluffy,20,350,9,54,11,2,14,0.91",
		"Cheese Pizza,IT,mozzarella,30,700,28,80,30,4,8,0.9",
		"Peanut Noodles,TH,spicy,15,520,18,62,22,5,9,0.8",
		"Lentil Soup,TR,red lentils,40,230,16,38,3,15,5,0.89",
		"Tofu Bowl,JP,rice and tofu,20,450,24,50,14,6,4,0.87",
	)
}

func mustProfile(t *testing.T, opts ...profile.Option) *profile.Profile {
	t.Helper()
	p, err := profile.Build(opts...)
	require.NoError(t, err)
	return p
}

func TestNew_Options(t *testing.T) {
	ds := menu(t)

	r := New(ds)
	assert.Equal(t, 5, r.dashboardLimit)
	assert.Equal(t, 3, r.mealPlanLimit)
	assert.Same(t, ds, r.Dataset())

	r = New(ds, WithVersion("v1.0.0"), WithDashboardLimit(2), WithMealPlanLimit(0))
	assert.Equal(t, "v1.0.0", r.version)
	assert.Equal(t, 2, r.dashboardLimit)
	assert.Equal(t, 3, r.mealPlanLimit, "non-positive limit is ignored")
}

func TestDashboard(t *testing.T) {
	r := New(menu(t), WithVersion("v0.1.0"))

	p := mustProfile(t,
		profile.WithDietaryPreferences("Vegetarian"),
		profile.WithAllergies("Nuts"),
		profile.WithHealthGoals("High-Protein"),
	)

	d, err := r.Dashboard(context.Background(), p)
	require.NoError(t, err)

	assert.Equal(t, header.KindDashboard, d.Kind)
	assert.Equal(t, header.APIVersion, d.APIVersion)
	assert.Equal(t, "v0.1.0", d.Metadata["version"])
	assert.Equal(t, "reader", d.Metadata["source"])
	assert.NotEmpty(t, d.Metadata["timestamp"])

	assert.Equal(t,
		[]string{"Cheese Pizza", "Tofu Bowl", "Lentil Soup", "Blueberry Pancakes", "Banana Oat Muffin"},
		names(d.Recommendations))

	assert.InDelta(t, 24.22, d.Summary.BMI, 0.01)
	assert.Equal(t, health.StatusNormal, d.Summary.BMIStatus)
	assert.InDelta(t, 2000, d.Summary.TargetCalories, 0)
	assert.InDelta(t, 400, d.Summary.MacroCalories.ProteinKcal, 1e-9)
	assert.InDelta(t, 800, d.Summary.MacroCalories.CarbsKcal, 1e-9)
	assert.InDelta(t, 630, d.Summary.MacroCalories.FatKcal, 1e-9)
	assert.InDelta(t, 100, d.Summary.MacroShares.ProteinPct+d.Summary.MacroShares.CarbsPct+d.Summary.MacroShares.FatPct, 1e-9)
	assert.InDelta(t, 2.31, d.Summary.WaterLiters, 1e-9)
}

func TestDashboard_Limit(t *testing.T) {
	r := New(menu(t), WithDashboardLimit(2))

	d, err := r.Dashboard(context.Background(), profile.New())
	require.NoError(t, err)
	assert.Equal(t, []string{"Banana Oat Muffin", "Grilled Chicken"}, names(d.Recommendations))
}

func TestBuilders_Preconditions(t *testing.T) {
	r := New(menu(t))

	canceled, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := r.Dashboard(canceled, profile.New())
	assert.True(t, nserrors.IsCode(err, nserrors.ErrCodeTimeout))

	_, err = r.Insights(context.Background(), nil)
	assert.True(t, nserrors.IsCode(err, nserrors.ErrCodeInvalidRequest))

	bad := profile.New()
	bad.Age = 5
	_, err = r.Dashboard(context.Background(), bad)
	assert.True(t, nserrors.IsCode(err, nserrors.ErrCodeInvalidRequest))

	_, err = New(nil).Foods(context.Background())
	assert.True(t, nserrors.IsCode(err, nserrors.ErrCodeUnavailable))
}

func TestExplore(t *testing.T) {
	r := New(menu(t))

	e, err := r.Explore(context.Background(), ExplorerQuery{MinCalories: 300, MaxCalories: 600, MaxCookTime: 20, Query: "p"})
	require.NoError(t, err)
	assert.Equal(t, header.KindExplorer, e.Kind)
	assert.Equal(t, 2, e.Count)
	assert.Equal(t, []string{"Blueberry Pancakes", "Peanut Noodles"}, names(e.Foods))

	_, err = r.Explore(context.Background(), ExplorerQuery{MinCalories: 500, MaxCalories: 100, MaxCookTime: 60})
	assert.True(t, nserrors.IsCode(err, nserrors.ErrCodeInvalidRequest))

	_, err = r.Explore(context.Background(), ExplorerQuery{MinCalories: -1, MaxCalories: 100})
	assert.True(t, nserrors.IsCode(err, nserrors.ErrCodeInvalidRequest))
}

func TestExplore_NonFiniteBounds(t *testing.T) {
	r := New(menu(t))

	tests := []struct {
		name string
		q    ExplorerQuery
	}{
		{"max calories NaN", ExplorerQuery{MaxCalories: math.NaN(), MaxCookTime: 60}},
		{"min calories NaN", ExplorerQuery{MinCalories: math.NaN(), MaxCalories: 2000, MaxCookTime: 60}},
		{"cook time NaN", ExplorerQuery{MaxCalories: 2000, MaxCookTime: math.NaN()}},
		{"max calories Inf", ExplorerQuery{MaxCalories: math.Inf(1), MaxCookTime: 60}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := r.Explore(context.Background(), tt.q)
			require.Error(t, err)
			assert.Nil(t, e)
			assert.True(t, nserrors.IsCode(err, nserrors.ErrCodeInvalidRequest), "got %v", err)
		})
	}
}

func TestPlanMeal(t *testing.T) {
	r := New(menu(t))
	p := mustProfile(t, profile.WithHealthGoals("Low-Carb"))

	mp, err := r.PlanMeal(context.Background(), p, profile.MealBreakfast, 30)
	require.NoError(t, err)
	assert.Equal(t, header.KindMealPlan, mp.Kind)
	require.Len(t, mp.Options, 2)
	assert.Equal(t, "Banana Oat Muffin", mp.Options[0].Food.Name)
	assert.Equal(t, "Blueberry Pancakes", mp.Options[1].Food.Name)

	pct := mp.Options[0].PercentOfTargets
	assert.InDelta(t, 15, pct.Calories, 1e-9)
	assert.InDelta(t, 6, pct.Protein, 1e-9)
	assert.InDelta(t, 22.5, pct.Carbs, 1e-9)
	assert.InDelta(t, 9.0/70*100, pct.Fat, 1e-9)
}

func TestPlanMeal_Errors(t *testing.T) {
	r := New(menu(t))
	ctx := context.Background()

	_, err := r.PlanMeal(ctx, profile.New(), profile.MealLunch, 5)
	require.Error(t, err)
	assert.True(t, nserrors.IsCode(err, nserrors.ErrCodeNotFound))
	assert.Contains(t, err.Error(), "no matching meals")

	_, err = r.PlanMeal(ctx, profile.New(), profile.MealType("Brunch"), 30)
	assert.True(t, nserrors.IsCode(err, nserrors.ErrCodeInvalidRequest))

	_, err = r.PlanMeal(ctx, profile.New(), profile.MealDinner, -1)
	assert.True(t, nserrors.IsCode(err, nserrors.ErrCodeInvalidRequest))

	_, err = r.PlanMeal(ctx, profile.New(), profile.MealDinner, math.NaN())
	assert.True(t, nserrors.IsCode(err, nserrors.ErrCodeInvalidRequest))
}

func TestAnalyze(t *testing.T) {
	r := New(menu(t))
	p := mustProfile(t, profile.WithHealthGoals("Weight Loss", "High-Protein", "Low-Carb"))

	fa, err := r.Analyze(context.Background(), p, "Cheese Pizza")
	require.NoError(t, err)
	assert.Equal(t, header.KindFoodAnalysis, fa.Kind)
	assert.Equal(t, 700.0, fa.Food.Calories)
	assert.InDelta(t, 112, fa.MacroCalories.ProteinKcal, 1e-9)
	assert.InDelta(t, 28.0/138*100, fa.MacroShares.ProteinPct, 1e-9)

	require.Len(t, fa.Impact, 3)
	assert.Equal(t, health.SeverityWarning, fa.Impact[0].Severity)
	assert.Equal(t, health.SeverityGood, fa.Impact[1].Severity)
	assert.Equal(t, health.SeverityWarning, fa.Impact[2].Severity)

	fa, err = r.Analyze(context.Background(), profile.New(), "Lentil Soup")
	require.NoError(t, err)
	assert.NotNil(t, fa.Impact)
	assert.Empty(t, fa.Impact)

	_, err = r.Analyze(context.Background(), profile.New(), "Unicorn Steak")
	assert.True(t, nserrors.IsCode(err, nserrors.ErrCodeNotFound))

	_, err = r.Analyze(context.Background(), profile.New(), "")
	assert.True(t, nserrors.IsCode(err, nserrors.ErrCodeInvalidRequest))
}

func TestInsights(t *testing.T) {
	r := New(menu(t))

	in, err := r.Insights(context.Background(), profile.New())
	require.NoError(t, err)
	assert.Equal(t, header.KindInsights, in.Kind)
	assert.InDelta(t, 1671.672, in.BMR, 1e-6)
	assert.InDelta(t, 1.2, in.ActivityFactor, 0)
	assert.InDelta(t, 2006.0064, in.TDEE, 1e-6)
	assert.Nil(t, in.RecommendedIntake)
	assert.NotNil(t, in.Tips)

	p := mustProfile(t, profile.WithHealthGoals("Muscle Gain", "Weight Loss"))
	in, err = r.Insights(context.Background(), p)
	require.NoError(t, err)
	require.NotNil(t, in.RecommendedIntake)
	assert.InDelta(t, in.TDEE-500, *in.RecommendedIntake, 1e-9)
	assert.Equal(t, health.MacroDistributionFor(p.HealthGoals), in.MacroDistribution)
	assert.Len(t, in.Tips, 2)
}

func TestFoods(t *testing.T) {
	r := New(menu(t))

	fl, err := r.Foods(context.Background())
	require.NoError(t, err)
	assert.Equal(t, header.KindFoodList, fl.Kind)
	assert.Equal(t, 7, fl.Count)
	assert.Equal(t, "reader", fl.Source)
	assert.Equal(t, "Banana Oat Muffin", fl.Names[0])
}
