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

	"github.com/nutrisense/nutrisense/pkg/header"
)

// Route binds a URL pattern to a handler. Kind is the document the handler
// returns; it labels the route's metrics and request logs and is listed by
// the root handler.
type Route struct {
	Pattern string
	Kind    header.Kind
	Handler http.HandlerFunc
}

// RouteInfo describes one route in the root document.
type RouteInfo struct {
	Path string `json:"path"`
	Kind string `json:"kind,omitempty"`
}

func kindLabel(k header.Kind) string {
	if k == "" {
		return "none"
	}
	return string(k)
}

// Catalog is the food dataset the routes answer from.
type Catalog interface {
	Source() string
	Len() int
	Imputed() int
}

// CatalogStatus summarizes the catalog in the /ready and / documents.
type CatalogStatus struct {
	Source  string `json:"source"`
	Foods   int    `json:"foods"`
	Imputed int    `json:"imputed"`
}

func catalogStatus(c Catalog) *CatalogStatus {
	if c == nil {
		return nil
	}
	return &CatalogStatus{
		Source:  c.Source(),
		Foods:   c.Len(),
		Imputed: c.Imputed(),
	}
}
