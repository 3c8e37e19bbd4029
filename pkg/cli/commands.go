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
	"context"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/nutrisense/nutrisense/pkg/defaults"
	nserrors "github.com/nutrisense/nutrisense/pkg/errors"
	"github.com/nutrisense/nutrisense/pkg/profile"
	"github.com/nutrisense/nutrisense/pkg/recommender"
	"github.com/nutrisense/nutrisense/pkg/serializer"
)

func dashboardCmd() *cli.Command {
	flags := append(profileFlags(),
		&cli.IntFlag{
			Name:  "limit",
			Value: defaults.DashboardLimit,
			Usage: "number of foods to recommend",
		},
		outputFlag(),
		formatFlag(),
	)

	return &cli.Command{
		Name:  "dashboard",
		Usage: "Recommend foods for a user profile",
		Description: `Filter the dataset by dietary preferences and allergies, rank it by
health goals (High-Protein, Low-Carb) and show the top foods together with a
nutrition summary: BMI, calorie target, macro split and water intake.`,
		Flags: flags,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return run(ctx, cmd, func(ctx context.Context, rec *recommender.Recommender) (any, error) {
				p, err := profileFromCmd(cmd)
				if err != nil {
					return nil, err
				}
				return rec.Dashboard(ctx, p)
			}, recommender.WithDashboardLimit(int(cmd.Int("limit"))))
		},
	}
}

func exploreCmd() *cli.Command {
	return &cli.Command{
		Name:  "explore",
		Usage: "Search foods by text, calorie range and cook time",
		Description: `Keep foods whose calories fall within [--min-calories, --max-calories]
and whose cook time is at most --max-cook-time minutes, then, if --query is
set, foods whose name or description contains it (case-insensitive).`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "query",
				Aliases: []string{"q"},
				Usage:   "text to find in the food name or description",
			},
			&cli.FloatFlag{
				Name:  "min-calories",
				Value: recommender.DefaultMinCalories,
				Usage: "minimum calories (inclusive)",
			},
			&cli.FloatFlag{
				Name:  "max-calories",
				Value: recommender.DefaultMaxCalories,
				Usage: "maximum calories (inclusive)",
			},
			&cli.FloatFlag{
				Name:  "max-cook-time",
				Value: recommender.DefaultMaxCookTime,
				Usage: "maximum cook time in minutes (inclusive)",
			},
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			q := recommender.ExplorerQuery{
				MinCalories: cmd.Float("min-calories"),
				MaxCalories: cmd.Float("max-calories"),
				MaxCookTime: cmd.Float("max-cook-time"),
				Query:       cmd.String("query"),
			}
			return run(ctx, cmd, func(ctx context.Context, rec *recommender.Recommender) (any, error) {
				return rec.Explore(ctx, q)
			})
		},
	}
}

func planCmd() *cli.Command {
	flags := append(profileFlags(),
		&cli.StringFlag{
			Name:    "meal",
			Aliases: []string{"m"},
			Value:   string(profile.MealBreakfast),
			Usage:   fmt.Sprintf("meal type (supported values: %v)", profile.SupportedMealTypes()),
		},
		&cli.FloatFlag{
			Name:  "time",
			Value: recommender.DefaultTimeAvailable,
			Usage: "minutes available to cook",
		},
		outputFlag(),
		formatFlag(),
	)

	return &cli.Command{
		Name:  "plan",
		Usage: "Suggest meal options for a meal type and time budget",
		Description: `Select foods that match the meal type and cook within --time minutes,
rank them by health goals and show the top options with their share of the
daily calorie and macronutrient targets.`,
		Flags: flags,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			meal, err := profile.ParseMealType(cmd.String("meal"))
			if err != nil {
				return fmt.Errorf("invalid meal type: %w", err)
			}

			err = run(ctx, cmd, func(ctx context.Context, rec *recommender.Recommender) (any, error) {
				p, err := profileFromCmd(cmd)
				if err != nil {
					return nil, err
				}
				return rec.PlanMeal(ctx, p, meal, cmd.Float("time"))
			})
			if nserrors.IsCode(err, nserrors.ErrCodeNotFound) {
				fmt.Fprintln(errWriterOf(cmd), "No meals found matching your criteria. Try adjusting your filters.")
				return nil
			}
			return err
		},
	}
}

func analyzeCmd() *cli.Command {
	flags := append(profileFlags(),
		&cli.StringFlag{
			Name:  "food",
			Usage: "exact name of the food to analyze (or pass it as an argument)",
		},
		outputFlag(),
		formatFlag(),
	)

	return &cli.Command{
		Name:      "analyze",
		Usage:     "Show the nutrition breakdown of a food",
		ArgsUsage: "[food name]",
		Description: `Show the macronutrients of a single food, their share of its calories
and grams, fiber and sugar, and how the food fits the profile's health goals.
Use "nutri foods" to list valid names.`,
		Flags: flags,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			food := cmd.String("food")
			if food == "" {
				food = cmd.Args().First()
			}
			if food == "" {
				return fmt.Errorf("food name is required: use --food or pass it as an argument")
			}

			return run(ctx, cmd, func(ctx context.Context, rec *recommender.Recommender) (any, error) {
				p, err := profileFromCmd(cmd)
				if err != nil {
					return nil, err
				}
				return rec.Analyze(ctx, p, food)
			})
		},
	}
}

func insightsCmd() *cli.Command {
	return &cli.Command{
		Name:  "insights",
		Usage: "Compute BMR, TDEE, daily intake and goal advice",
		Description: `Estimate the basal metabolic rate (Harris-Benedict), total daily energy
expenditure for the activity level, the recommended intake for Weight Loss or
Muscle Gain, the macronutrient distribution and nutrition tips.`,
		Flags: append(profileFlags(), outputFlag(), formatFlag()),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return run(ctx, cmd, func(ctx context.Context, rec *recommender.Recommender) (any, error) {
				p, err := profileFromCmd(cmd)
				if err != nil {
					return nil, err
				}
				return rec.Insights(ctx, p)
			})
		},
	}
}

func foodsCmd() *cli.Command {
	return &cli.Command{
		Name:        "foods",
		Usage:       "List the foods in the dataset",
		Description: `Print the name of every food in the dataset, in file order.`,
		Flags:       []cli.Flag{outputFlag(), formatFlag()},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return run(ctx, cmd, func(ctx context.Context, rec *recommender.Recommender) (any, error) {
				return rec.Foods(ctx)
			})
		},
	}
}

// run loads the dataset, builds a result with build and writes it in the
// requested format.
func run(ctx context.Context, cmd *cli.Command, build func(context.Context, *recommender.Recommender) (any, error), opts ...recommender.Option) error {
	format, err := parseOutputFormat(cmd)
	if err != nil {
		return err
	}

	ds, err := loadDataset(ctx, cmd)
	if err != nil {
		return err
	}

	rec := recommender.New(ds, append([]recommender.Option{recommender.WithVersion(version)}, opts...)...)

	buildCtx, cancel := context.WithTimeout(ctx, defaults.RecommendBuildTimeout)
	defer cancel()

	result, err := build(buildCtx, rec)
	if err != nil {
		return err
	}

	var ser *serializer.Writer
	if path := cmd.String("output"); path != "" {
		ser = serializer.NewFileWriterOrStdout(format, path)
	} else {
		ser = serializer.NewWriter(format, writerOf(cmd))
	}
	defer func() {
		if err := ser.Close(); err != nil {
			slog.Warn("failed to close serializer", "error", err)
		}
	}()

	return ser.Serialize(ctx, result)
}
