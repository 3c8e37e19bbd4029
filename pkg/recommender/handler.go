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
	"net/http"
	"strings"

	"github.com/nutrisense/nutrisense/pkg/defaults"
	nserrors "github.com/nutrisense/nutrisense/pkg/errors"
	"github.com/nutrisense/nutrisense/pkg/profile"
	"github.com/nutrisense/nutrisense/pkg/serializer"
	"github.com/nutrisense/nutrisense/pkg/server"
)

var (
	// cacheTTL can be overridden for testing or custom configurations
	cacheTTL = defaults.RecommendCacheTTL
)

// HandleDashboard serves the dashboard for the profile given as query
// parameters (GET) or as a UserProfile document (POST).
func (r *Recommender) HandleDashboard(w http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), defaults.RecommendHandlerTimeout)
	defer cancel()

	p, ok := readProfile(w, req)
	if !ok {
		return
	}

	result, err := r.Dashboard(ctx, p)
	if err != nil {
		server.WriteErrorFromErr(w, req, err, "Failed to build dashboard", nil)
		return
	}
	respond(w, result)
}

// HandleExplore serves explorer searches. Only GET is supported.
func (r *Recommender) HandleExplore(w http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), defaults.RecommendHandlerTimeout)
	defer cancel()

	if req.Method != http.MethodGet {
		methodNotAllowed(w, req, http.MethodGet)
		return
	}

	q, err := ParseExplorerQuery(req.URL.Query())
	if err != nil {
		invalidRequest(w, req, "Invalid explorer query", err)
		return
	}

	result, err := r.Explore(ctx, q)
	if err != nil {
		server.WriteErrorFromErr(w, req, err, "Failed to search foods", nil)
		return
	}
	respond(w, result)
}

// HandleMealPlan serves meal plans. The meal type and time budget always come
// from the query string; the profile may come from either.
func (r *Recommender) HandleMealPlan(w http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), defaults.RecommendHandlerTimeout)
	defer cancel()

	p, ok := readProfile(w, req)
	if !ok {
		return
	}

	meal, timeAvailable, err := ParseMealRequest(req.URL.Query())
	if err != nil {
		invalidRequest(w, req, "Invalid meal plan request", err)
		return
	}

	result, err := r.PlanMeal(ctx, p, meal, timeAvailable)
	if err != nil {
		server.WriteErrorFromErr(w, req, err, "Failed to plan meal", nil)
		return
	}
	respond(w, result)
}

// HandleAnalyze serves the analysis of the food named by the food parameter.
func (r *Recommender) HandleAnalyze(w http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), defaults.RecommendHandlerTimeout)
	defer cancel()

	p, ok := readProfile(w, req)
	if !ok {
		return
	}

	result, err := r.Analyze(ctx, p, req.URL.Query().Get(ParamFood))
	if err != nil {
		server.WriteErrorFromErr(w, req, err, "Failed to analyze food", nil)
		return
	}
	respond(w, result)
}

// HandleInsights serves the health insights for the profile.
func (r *Recommender) HandleInsights(w http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), defaults.RecommendHandlerTimeout)
	defer cancel()

	p, ok := readProfile(w, req)
	if !ok {
		return
	}

	result, err := r.Insights(ctx, p)
	if err != nil {
		server.WriteErrorFromErr(w, req, err, "Failed to build insights", nil)
		return
	}
	respond(w, result)
}

// HandleFoods lists the food names in the dataset. Only GET is supported.
func (r *Recommender) HandleFoods(w http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), defaults.RecommendHandlerTimeout)
	defer cancel()

	if req.Method != http.MethodGet {
		methodNotAllowed(w, req, http.MethodGet)
		return
	}

	result, err := r.Foods(ctx)
	if err != nil {
		server.WriteErrorFromErr(w, req, err, "Failed to list foods", nil)
		return
	}
	respond(w, result)
}

// readProfile parses the profile from the query string (GET) or the request
// body (POST). On failure it writes the error response and returns false.
func readProfile(w http.ResponseWriter, req *http.Request) (*profile.Profile, bool) {
	var p *profile.Profile
	var err error

	switch req.Method {
	case http.MethodGet:
		p, err = profile.ParseFromRequest(req)
	case http.MethodPost:
		defer func() {
			if req.Body != nil {
				req.Body.Close()
			}
		}()
		body := req.Body
		if body != nil {
			body = http.MaxBytesReader(w, body, defaults.MaxRequestBodyBytes)
		}
		p, err = profile.ParseFromBody(body, req.Header.Get("Content-Type"))
	default:
		methodNotAllowed(w, req, http.MethodGet, http.MethodPost)
		return nil, false
	}

	if err != nil {
		invalidRequest(w, req, "Invalid user profile", err)
		return nil, false
	}
	return p, true
}

func methodNotAllowed(w http.ResponseWriter, req *http.Request, allowed ...string) {
	w.Header().Set("Allow", strings.Join(allowed, ", "))
	server.WriteError(w, req, http.StatusMethodNotAllowed, nserrors.ErrCodeMethodNotAllowed,
		"Method not allowed", false, map[string]any{
			"method":  req.Method,
			"allowed": allowed,
		})
}

func invalidRequest(w http.ResponseWriter, req *http.Request, message string, err error) {
	server.WriteError(w, req, http.StatusBadRequest, nserrors.ErrCodeInvalidRequest,
		message, false, map[string]any{
			"error": err.Error(),
		})
}

func respond(w http.ResponseWriter, result any) {
	w.Header().Set("Cache-Control", fmt.Sprintf("public, max-age=%d", int(cacheTTL.Seconds())))
	serializer.RespondJSON(w, http.StatusOK, result)
}
