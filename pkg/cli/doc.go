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

// Package cli implements the nutri command line.
//
// # Commands
//
// dashboard - Recommended foods and a nutrition summary:
//
//	nutri dashboard --diet vegetarian --allergy nuts --goal high-protein
//
// explore - Search the dataset:
//
//	nutri explore -q salad --max-calories 500 --max-cook-time 20
//
// plan - Meal options that fit a meal type and time budget:
//
//	nutri plan --meal dinner --time 45 --goal low-carb --format table
//
// When nothing matches, plan prints a warning to stderr and exits 0.
//
// analyze - Breakdown of a single food:
//
//	nutri analyze --goal weight-loss "Grilled Chicken Breast"
//
// insights - BMR, TDEE, daily intake and goal advice:
//
//	nutri insights --age 42 --gender female --weight 64 --height 165 --activity moderately-active
//
// foods - Names of every food in the dataset:
//
//	nutri foods --format json
//
// # Profile Flags
//
// Commands that take a profile accept --age, --gender, --weight, --height,
// --activity, the repeatable --diet, --goal and --allergy, and the daily
// targets --calories, --protein, --carbs and --fat. Alternatively
// --profile/-f loads a UserProfile document:
//
//	kind: userProfile
//	apiVersion: nutrisense.io/v1alpha1
//	spec:
//	  age: 34
//	  gender: Female
//	  healthGoals: [Weight Loss]
//
// # Global Flags
//
//	--data, -d      Food CSV path or URL (default: embedded dataset)
//	--log-level     Logging verbosity (debug, info, warn, error)
//	--output, -o    Output file path (default: stdout)
//	--format, -t    Output format: yaml, json, table (default: yaml)
//
// # Environment Variables
//
//	NUTRI_DATA  Same as --data
//	LOG_LEVEL   Same as --log-level
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/nutrisense/nutrisense/pkg/cli.version=1.0.0'"
package cli
