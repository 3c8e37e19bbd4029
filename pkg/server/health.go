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

package server

import (
	"net/http"
	"time"

	"github.com/nutrisense/nutrisense/pkg/serializer"
)

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status    string    `json:"status" yaml:"status"`
	Timestamp time.Time `json:"timestamp" yaml:"timestamp"`
}

// ReadyResponse is the body of GET /ready.
type ReadyResponse struct {
	Status    string         `json:"status" yaml:"status"`
	Timestamp time.Time      `json:"timestamp" yaml:"timestamp"`
	Reason    string         `json:"reason,omitempty" yaml:"reason,omitempty"`
	Dataset   *CatalogStatus `json:"dataset,omitempty" yaml:"dataset,omitempty"`
}

// handleHealth handles GET /health. The process is alive as long as it can
// answer; the dataset is not consulted.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	serializer.RespondJSON(w, http.StatusOK, HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC(),
	})
}

// handleReady handles GET /ready.
func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	resp := ReadyResponse{
		Status:    "ready",
		Timestamp: time.Now().UTC(),
		Dataset:   catalogStatus(s.config.Catalog),
	}
	status := http.StatusOK
	if ok, reason := s.readiness(); !ok {
		resp.Status = "not_ready"
		resp.Reason = reason
		status = http.StatusServiceUnavailable
	}
	serializer.RespondJSON(w, status, resp)
}

// readiness reports whether requests can be answered: the listener is up and
// the dataset, when one is configured, has at least one food.
func (s *Server) readiness() (bool, string) {
	if !s.isReady() {
		return false, "service is initializing or shutting down"
	}
	if c := s.config.Catalog; c != nil && c.Len() == 0 {
		return false, "dataset has no foods"
	}
	return true, ""
}
