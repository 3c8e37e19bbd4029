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
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/nutrisense/nutrisense/pkg/dataset"
	"github.com/nutrisense/nutrisense/pkg/defaults"
	"github.com/nutrisense/nutrisense/pkg/logging"
	"github.com/nutrisense/nutrisense/pkg/serializer"
)

const (
	name           = "nutri"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

func outputFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "output file path (default: stdout)",
	}
}

func formatFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"t"},
		Value:   string(serializer.FormatYAML),
		Usage:   fmt.Sprintf("output format (supported values: %v)", serializer.SupportedFormats()),
	}
}

// Execute runs the root command with the process arguments and exits
// non-zero on error.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cli.Command {
	return &cli.Command{
		Name:                  name,
		Version:               fmt.Sprintf("%s (commit: %s, date: %s)", version, commit, date),
		Usage:                 "personalized food recommendations and nutrition metrics",
		EnableShellCompletion: true,
		ShellComplete:         commandLister,
		Description: `Recommend foods from a nutrition dataset for a user profile:

  dashboard - top foods for your preferences, allergies and goals
  explore   - search foods by text, calories and cook time
  plan      - meal options for a meal type and time budget
  analyze   - nutrition breakdown of a single food
  insights  - BMR, TDEE, daily intake and goal advice
  foods     - list the foods in the dataset`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "data",
				Aliases: []string{"d"},
				Usage:   "path or URL of the food CSV (default: embedded dataset)",
				Sources: cli.EnvVars(dataset.EnvPath),
			},
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "warn",
				Usage:   "log level (debug, info, warn, error)",
				Sources: cli.EnvVars(logging.EnvLogLevel),
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			logging.SetDefaultStructuredLoggerWithLevel(name, version, cmd.String("log-level"))
			return ctx, nil
		},
		Commands: []*cli.Command{
			dashboardCmd(),
			exploreCmd(),
			planCmd(),
			analyzeCmd(),
			insightsCmd(),
			foodsCmd(),
		},
	}
}

// commandLister prints the visible subcommands for shell completion.
func commandLister(_ context.Context, cmd *cli.Command) {
	if cmd == nil {
		return
	}
	w := writerOf(cmd)
	for _, c := range cmd.Commands {
		if c.Hidden {
			continue
		}
		fmt.Fprintln(w, c.Name)
	}
}

// writerOf returns the root command's writer, or stdout when none is set.
func writerOf(cmd *cli.Command) io.Writer {
	if root := cmd.Root(); root != nil && root.Writer != nil {
		return root.Writer
	}
	return os.Stdout
}

func errWriterOf(cmd *cli.Command) io.Writer {
	if root := cmd.Root(); root != nil && root.ErrWriter != nil {
		return root.ErrWriter
	}
	return os.Stderr
}

func loadDataset(ctx context.Context, cmd *cli.Command) (*dataset.Dataset, error) {
	ctx, cancel := context.WithTimeout(ctx, defaults.DatasetLoadTimeout)
	defer cancel()

	ds, err := dataset.Cached(ctx, cmd.String("data"))
	if err != nil {
		return nil, fmt.Errorf("failed to load dataset: %w", err)
	}
	return ds, nil
}
