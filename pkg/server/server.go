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
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"slices"
	"strconv"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	nserrors "github.com/nutrisense/nutrisense/pkg/errors"
	"github.com/nutrisense/nutrisense/pkg/serializer"
)

// Server serves API routes behind a fixed middleware chain, plus the health,
// readiness, and metrics endpoints.
type Server struct {
	config      *Config
	httpServer  *http.Server
	rateLimiter *rate.Limiter

	mu    sync.RWMutex
	ready bool
}

// Option configures a Server.
type Option func(*Server)

// WithName sets the server name reported by the root handler.
func WithName(name string) Option {
	return func(s *Server) {
		s.config.Name = name
	}
}

// WithVersion sets the server version reported by the root handler.
func WithVersion(version string) Option {
	return func(s *Server) {
		s.config.Version = version
	}
}

// WithRoutes registers API routes. A route whose pattern is already
// registered replaces the earlier one.
func WithRoutes(routes ...Route) Option {
	return func(s *Server) {
		for _, rt := range routes {
			if i := slices.IndexFunc(s.config.Routes, func(r Route) bool { return r.Pattern == rt.Pattern }); i >= 0 {
				s.config.Routes[i] = rt
				continue
			}
			s.config.Routes = append(s.config.Routes, rt)
		}
	}
}

// WithCatalog sets the dataset that gates readiness.
func WithCatalog(c Catalog) Option {
	return func(s *Server) {
		s.config.Catalog = c
	}
}

// WithConfig replaces the whole configuration.
func WithConfig(cfg *Config) Option {
	return func(s *Server) {
		if cfg != nil {
			s.config = cfg
		}
	}
}

// New creates a server. A root handler listing the routes and their kinds is
// added unless the caller registered "/" itself.
func New(opts ...Option) *Server {
	s := &Server{config: NewConfig()}
	for _, opt := range opts {
		opt(s)
	}

	if !slices.ContainsFunc(s.config.Routes, func(r Route) bool { return r.Pattern == "/" }) {
		s.config.Routes = append(s.config.Routes, Route{Pattern: "/", Handler: s.handleRoot})
	}

	s.rateLimiter = rate.NewLimiter(s.config.RateLimit, s.config.RateLimitBurst)
	s.httpServer = &http.Server{
		Addr:              net.JoinHostPort(s.config.Address, strconv.Itoa(s.config.Port)),
		Handler:           s.setupRoutes(),
		ReadTimeout:       s.config.ReadTimeout,
		ReadHeaderTimeout: s.config.ReadHeaderTimeout,
		WriteTimeout:      s.config.WriteTimeout,
		IdleTimeout:       s.config.IdleTimeout,
	}
	return s
}

func (s *Server) setupRoutes() http.Handler {
	mux := http.NewServeMux()

	// System endpoints (no rate limiting)
	mux.HandleFunc("/health", s.handleHealth)
	mux.HandleFunc("/ready", s.handleReady)
	mux.Handle("/metrics", promhttp.Handler())

	for _, rt := range s.config.Routes {
		mux.HandleFunc(rt.Pattern, s.withMiddleware(rt))
	}
	return mux
}

// Handler returns the server's root handler, for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// routes lists the API and system routes sorted by path, without "/".
func (s *Server) routes() []RouteInfo {
	out := make([]RouteInfo, 0, len(s.config.Routes)+3)
	for _, rt := range s.config.Routes {
		if rt.Pattern != "/" {
			out = append(out, RouteInfo{Path: rt.Pattern, Kind: string(rt.Kind)})
		}
	}
	out = append(out, RouteInfo{Path: "/health"}, RouteInfo{Path: "/ready"}, RouteInfo{Path: "/metrics"})
	slices.SortFunc(out, func(a, b RouteInfo) int { return strings.Compare(a.Path, b.Path) })
	return out
}

// IndexResponse is the body of GET /.
type IndexResponse struct {
	Name      string         `json:"name"`
	Version   string         `json:"version"`
	Ready     bool           `json:"ready"`
	Timestamp time.Time      `json:"timestamp"`
	Dataset   *CatalogStatus `json:"dataset,omitempty"`
	Routes    []RouteInfo    `json:"routes"`
}

// handleRoot describes the service and the kind of document each route returns.
func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		WriteError(w, r, http.StatusMethodNotAllowed, nserrors.ErrCodeMethodNotAllowed,
			"Method not allowed", false, map[string]any{"method": r.Method})
		return
	}
	if r.URL.Path != "/" {
		WriteError(w, r, http.StatusNotFound, nserrors.ErrCodeNotFound,
			"Route not found", false, map[string]any{"path": r.URL.Path})
		return
	}

	ready, _ := s.readiness()
	serializer.RespondJSON(w, http.StatusOK, IndexResponse{
		Name:      s.config.Name,
		Version:   s.config.Version,
		Ready:     ready,
		Timestamp: time.Now().UTC(),
		Dataset:   catalogStatus(s.config.Catalog),
		Routes:    s.routes(),
	})
}

func (s *Server) setReady(ready bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ready = ready
}

func (s *Server) isReady() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ready
}

// Start serves until ctx is canceled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return nserrors.Wrap(nserrors.ErrCodeUnavailable,
			fmt.Sprintf("failed to listen on %s", s.httpServer.Addr), err)
	}

	s.setReady(true)
	slog.Info("server listening", "address", ln.Addr().String())

	errChan := make(chan error, 1)
	go func() {
		if serveErr := s.httpServer.Serve(ln); serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
			errChan <- serveErr
		}
		close(errChan)
	}()

	select {
	case <-ctx.Done():
		return s.Shutdown(context.Background())
	case serveErr := <-errChan:
		s.setReady(false)
		return serveErr
	}
}

// Shutdown marks the server not ready and drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	s.setReady(false)

	shutdownCtx, cancel := context.WithTimeout(ctx, s.config.ShutdownTimeout)
	defer cancel()

	slog.Info("shutting down server", "timeout", s.config.ShutdownTimeout.String())
	return s.httpServer.Shutdown(shutdownCtx)
}

// Run starts the server and blocks until SIGINT, SIGTERM, or ctx cancellation.
func (s *Server) Run(ctx context.Context) error {
	slog.Info("server config",
		slog.String("name", s.config.Name),
		slog.String("version", s.config.Version),
		slog.String("address", s.httpServer.Addr),
		slog.Int("routes", len(s.config.Routes)),
		slog.Any("rateLimit", float64(s.config.RateLimit)),
		slog.Int("rateLimitBurst", s.config.RateLimitBurst),
		slog.Duration("readTimeout", s.config.ReadTimeout),
		slog.Duration("writeTimeout", s.config.WriteTimeout),
		slog.Duration("idleTimeout", s.config.IdleTimeout),
		slog.Duration("shutdownTimeout", s.config.ShutdownTimeout),
	)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return s.Start(gctx)
	})

	if err := g.Wait(); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	slog.Info("server stopped gracefully")
	return nil
}
