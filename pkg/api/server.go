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

package api

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/nutrisense/nutrisense/pkg/dataset"
	"github.com/nutrisense/nutrisense/pkg/defaults"
	"github.com/nutrisense/nutrisense/pkg/header"
	"github.com/nutrisense/nutrisense/pkg/logging"
	"github.com/nutrisense/nutrisense/pkg/recommender"
	"github.com/nutrisense/nutrisense/pkg/server"
)

const (
	name           = "nutrid"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags to reflect actual version info
	// e.g., -X "github.com/nutrisense/nutrisense/pkg/api.version=1.0.0"
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Routes lists every API path with the kind of document it returns.
func Routes(rec *recommender.Recommender) []server.Route {
	return []server.Route{
		{Pattern: "/v1/dashboard", Kind: header.KindDashboard, Handler: rec.HandleDashboard},
		{Pattern: "/v1/explore", Kind: header.KindExplorer, Handler: rec.HandleExplore},
		{Pattern: "/v1/plan", Kind: header.KindMealPlan, Handler: rec.HandleMealPlan},
		{Pattern: "/v1/analyze", Kind: header.KindFoodAnalysis, Handler: rec.HandleAnalyze},
		{Pattern: "/v1/insights", Kind: header.KindInsights, Handler: rec.HandleInsights},
		{Pattern: "/v1/foods", Kind: header.KindFoodList, Handler: rec.HandleFoods},
	}
}

// Serve loads the dataset, starts the API server and blocks until shutdown.
// The dataset is loaded before the listener opens so a bad file fails fast.
func Serve() error {
	ctx := context.Background()

	logging.SetDefaultStructuredLogger(name, version)
	slog.Info("starting",
		"name", name,
		"version", version,
		"commit", commit,
		"date", date,
	)

	loadCtx, cancel := context.WithTimeout(ctx, defaults.DatasetLoadTimeout)
	ds, err := dataset.Cached(loadCtx, os.Getenv(dataset.EnvPath))
	cancel()
	if err != nil {
		slog.Error("failed to load dataset", "error", err)
		return fmt.Errorf("failed to load dataset: %w", err)
	}
	slog.Info("dataset loaded",
		"source", ds.Source(),
		"items", ds.Len(),
		"imputed", ds.Imputed(),
	)

	rec := recommender.New(ds, recommender.WithVersion(version))

	s := server.New(
		server.WithName(name),
		server.WithVersion(version),
		server.WithCatalog(ds),
		server.WithRoutes(Routes(rec)...),
	)

	if err := s.Run(ctx); err != nil {
		slog.Error("server exited with error", "error", err)
		return err
	}

	return nil
}
