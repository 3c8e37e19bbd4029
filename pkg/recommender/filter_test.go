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
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nutrisense/nutrisense/pkg/dataset"
	"github.com/nutrisense/nutrisense/pkg/profile"
)

const csvHeader = "name,country,description,cook_time_minutes,calories,protein,carbohydrates,fat,fiber,sugar,user_ratings\n"

func load(t *testing.T, rows ...string) *dataset.Dataset {
	t.Helper()
	ds, err := dataset.LoadFrom(context.Background(), strings.NewReader(csvHeader+strings.Join(rows, "\n")+"\n"))
	require.NoError(t, err)
	return ds
}

func embedded(t *testing.T) *dataset.Dataset {
	t.Helper()
	ds, err := dataset.Default(context.Background())
	require.NoError(t, err)
	return ds
}

func names(items []dataset.FoodItem) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.Name
	}
	return out
}

func TestFilterByPreferences_EmptyIsIdentity(t *testing.T) {
	items := embedded(t).Items()

	got := FilterByPreferences(items, nil, nil)
	assert.Equal(t, items, got)

	got = FilterByPreferences(items, []profile.DietaryPreference{}, []profile.Allergy{})
	assert.Equal(t, items, got)

	assert.Empty(t, FilterByPreferences(nil, []profile.DietaryPreference{profile.DietVegan}, nil))
}

func TestFilterByPreferences_Vegan(t *testing.T) {
	banned := []string{"chicken", "beef", "pork", "shrimp", "bacon", "cheese", "cream", "milk", "egg"}

	got := FilterByPreferences(embedded(t).Items(), []profile.DietaryPreference{profile.DietVegan}, nil)
	require.NotEmpty(t, got)
	for _, item := range got {
		lower := strings.ToLower(item.Name)
		for _, kw := range banned {
			assert.NotContains(t, lower, kw, "vegan result %q", item.Name)
		}
	}
}

func TestFilterByPreferences_Rules(t *testing.T) {
	ds := load(t,
		"Grilled CHICKEN Wrap,US,wrap,10,400,30,30,10,2,2,0.8",
		"Garden Salad,US,greens,5,120,3,10,7,4,3,0.6",
		"Cheese Omelette,FR,eggs and cheese,10,350,20,2,25,0,1,0.7",
		"Almond Cookie,IT,biscuit,30,200,4,25,10,1,12,0.9",
		"Eggplant Stew,GR,aubergine,40,250,6,30,10,8,9,0.8",
		"Shrimp Pasta,IT,seafood,25,500,28,60,14,3,4,0.85",
	)
	items := ds.Items()

	tests := []struct {
		name      string
		prefs     []profile.DietaryPreference
		allergies []profile.Allergy
		want      []string
	}{
		{
			name:  "vegetarian drops meat case-insensitively",
			prefs: []profile.DietaryPreference{profile.DietVegetarian},
			want:  []string{"Garden Salad", "Cheese Omelette", "Almond Cookie", "Eggplant Stew"},
		},
		{
			name:  "gluten free",
			prefs: []profile.DietaryPreference{profile.DietGlutenFree},
			want:  []string{"Grilled CHICKEN Wrap", "Garden Salad", "Cheese Omelette", "Eggplant Stew"},
		},
		{
			name:      "nuts allergy",
			allergies: []profile.Allergy{profile.AllergyNuts},
			want:      []string{"Grilled CHICKEN Wrap", "Garden Salad", "Cheese Omelette", "Eggplant Stew", "Shrimp Pasta"},
		},
		{
			name:      "egg substring also matches eggplant",
			allergies: []profile.Allergy{profile.AllergyEggs},
			want:      []string{"Grilled CHICKEN Wrap", "Garden Salad", "Cheese Omelette", "Almond Cookie", "Shrimp Pasta"},
		},
		{
			name:      "rules compose",
			prefs:     []profile.DietaryPreference{profile.DietVegetarian},
			allergies: []profile.Allergy{profile.AllergyDairy, profile.AllergyNuts},
			want:      []string{"Garden Salad", "Eggplant Stew"},
		},
		{
			name:      "tags without rules have no effect",
			prefs:     []profile.DietaryPreference{profile.DietLowFat, profile.DietDairyFree, profile.DietHighProtein},
			allergies: []profile.Allergy{profile.AllergyShellfish, profile.AllergySoy, profile.AllergyFish, profile.AllergyNone},
			want:      names(items),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterByPreferences(items, tt.prefs, tt.allergies)
			assert.Equal(t, tt.want, names(got))
		})
	}
}

func TestRankByGoal(t *testing.T) {
	ds := load(t,
		"A,US,a,10,100,10,30,1,0,0,0.5",
		"B,US,b,10,100,30,10,1,0,0,0.5",
		"C,US,c,10,100,10,20,1,0,0,0.5",
		"D,US,d,10,100,20,10,1,0,0,0.5",
	)
	items := ds.Items()

	t.Run("no goal keeps order", func(t *testing.T) {
		assert.Equal(t, []string{"A", "B", "C", "D"}, names(RankByGoal(items, []profile.HealthGoal{profile.GoalWeightLoss})))
	})

	t.Run("high protein is non-increasing and stable", func(t *testing.T) {
		got := RankByGoal(items, []profile.HealthGoal{profile.GoalHighProtein})
		assert.Equal(t, []string{"B", "D", "A", "C"}, names(got))
		for i := 1; i < len(got); i++ {
			assert.GreaterOrEqual(t, got[i-1].Protein, got[i].Protein)
		}
	})

	t.Run("low carb applied last wins", func(t *testing.T) {
		got := RankByGoal(items, []profile.HealthGoal{profile.GoalLowCarb, profile.GoalHighProtein})
		// protein order B, D, A, C then stable carbs ascending
		assert.Equal(t, []string{"B", "D", "C", "A"}, names(got))
		for i := 1; i < len(got); i++ {
			assert.LessOrEqual(t, got[i-1].Carbohydrates, got[i].Carbohydrates)
		}
	})

	t.Run("input is not mutated", func(t *testing.T) {
		_ = RankByGoal(items, []profile.HealthGoal{profile.GoalLowCarb})
		assert.Equal(t, []string{"A", "B", "C", "D"}, names(items))
	})
}

func TestSearchAndFilter_DefaultBoundsKeepsQuickItems(t *testing.T) {
	items := embedded(t).Items()

	var want []string
	for _, item := range items {
		if item.CookTimeMinutes <= 60 {
			want = append(want, item.Name)
		}
	}

	got := SearchAndFilter(items, ExplorerQuery{MinCalories: 0, MaxCalories: 2000, MaxCookTime: 60})
	assert.Equal(t, want, names(got))
	assert.Less(t, len(got), len(items))
}

func TestSearchAndFilter(t *testing.T) {
	ds := load(t,
		"Lentil Soup,TR,red lentils,40,230,16,38,3,15,5,0.89",
		"Steak,US,grilled beef,20,700,50,0,40,0,0,0.9",
		"Beef Stew,FR,slow cooked,120,600,40,20,30,4,5,0.8",
		"Salad,US,with soup croutons,5,150,3,10,9,3,2,0.7",
	)
	items := ds.Items()

	tests := []struct {
		name string
		q    ExplorerQuery
		want []string
	}{
		{"inclusive bounds", ExplorerQuery{MinCalories: 230, MaxCalories: 700, MaxCookTime: 40}, []string{"Lentil Soup", "Steak"}},
		{"name or description", ExplorerQuery{MaxCalories: 2000, MaxCookTime: 200, Query: "BEEF"}, []string{"Steak", "Beef Stew"}},
		{"query after bounds", ExplorerQuery{MaxCalories: 2000, MaxCookTime: 60, Query: "soup"}, []string{"Lentil Soup", "Salad"}},
		{"nothing matches", ExplorerQuery{MinCalories: 900, MaxCalories: 2000, MaxCookTime: 60}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, names(SearchAndFilter(items, tt.q)))
		})
	}
}

func TestClassifyForMeal_TimeAndKeyword(t *testing.T) {
	ds := load(t,
		"Banana Oat Muffin,US,breakfast,10,300,6,45,9,3,16,0.8",
		"Steak Dinner,US,beef,5,700,50,2,40,0,0,0.9",
	)

	got := ClassifyForMeal(ds.Items(), profile.MealBreakfast, 30, nil)
	assert.Equal(t, []string{"Banana Oat Muffin"}, names(got))
}

func TestClassifyForMeal(t *testing.T) {
	ds := load(t,
		"Chicken Pasta,IT,creamy,25,600,35,60,20,3,4,0.8",
		"Fish Curry,IN,spicy,45,500,30,30,22,4,6,0.85",
		"Beef Stir-Fry,CN,wok,20,410,35,18,22,4,8,0.88",
		"Pasta Salad,IT,cold,15,350,10,50,12,4,5,0.7",
		"Energy Bite,US,dates,5,120,3,15,6,2,10,0.75",
	)
	items := ds.Items()

	t.Run("dinner within time", func(t *testing.T) {
		got := ClassifyForMeal(items, profile.MealDinner, 30, nil)
		assert.Equal(t, []string{"Chicken Pasta", "Beef Stir-Fry", "Pasta Salad"}, names(got))
	})

	t.Run("dinner ranked low carb", func(t *testing.T) {
		got := ClassifyForMeal(items, profile.MealDinner, 60, []profile.HealthGoal{profile.GoalLowCarb})
		assert.Equal(t, []string{"Beef Stir-Fry", "Fish Curry", "Pasta Salad", "Chicken Pasta"}, names(got))
	})

	t.Run("snack", func(t *testing.T) {
		assert.Equal(t, []string{"Energy Bite"}, names(ClassifyForMeal(items, profile.MealSnack, 30, nil)))
	})

	t.Run("no time yields nothing", func(t *testing.T) {
		assert.Empty(t, ClassifyForMeal(items, profile.MealLunch, 1, nil))
	})

	t.Run("unknown meal yields nothing", func(t *testing.T) {
		assert.Empty(t, ClassifyForMeal(items, profile.MealType("Brunch"), 120, nil))
	})
}
