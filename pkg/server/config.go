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
	"log/slog"
	"os"
	"strconv"
	"time"

	"golang.org/x/time/rate"

	"github.com/nutrisense/nutrisense/pkg/defaults"
)

// Environment variables read by NewConfig.
const (
	EnvAddress                = "NUTRI_ADDRESS"
	EnvPort                   = "PORT"
	EnvRateLimit              = "NUTRI_RATE_LIMIT"
	EnvRateLimitBurst         = "NUTRI_RATE_LIMIT_BURST"
	EnvShutdownTimeoutSeconds = "SHUTDOWN_TIMEOUT_SECONDS"
)

// Config holds server configuration.
type Config struct {
	Name    string
	Version string

	// Routes are served behind the middleware chain, in registration order.
	Routes []Route

	// Catalog, when set, gates readiness and is reported by / and /ready.
	Catalog Catalog

	Address string
	Port    int

	RateLimit      rate.Limit // requests per second
	RateLimitBurst int

	ReadTimeout       time.Duration
	ReadHeaderTimeout time.Duration
	WriteTimeout      time.Duration
	IdleTimeout       time.Duration
	ShutdownTimeout   time.Duration
}

// NewConfig returns a Config with defaults and environment overrides applied.
// Invalid overrides are logged and ignored.
func NewConfig() *Config {
	cfg := &Config{
		Name:              "nutrid",
		Version:           "undefined",
		Address:           os.Getenv(EnvAddress),
		Port:              defaults.ServerPort,
		RateLimit:         defaults.ServerRateLimit,
		RateLimitBurst:    defaults.ServerRateLimitBurst,
		ReadTimeout:       defaults.ServerReadTimeout,
		ReadHeaderTimeout: defaults.ServerReadHeaderTimeout,
		WriteTimeout:      defaults.ServerWriteTimeout,
		IdleTimeout:       defaults.ServerIdleTimeout,
		ShutdownTimeout:   defaults.ServerShutdownTimeout,
	}

	if v, ok := envInt(EnvPort, 65535); ok {
		cfg.Port = v
	}
	if v, ok := envInt(EnvRateLimit, 0); ok {
		cfg.RateLimit = rate.Limit(v)
	}
	if v, ok := envInt(EnvRateLimitBurst, 0); ok {
		cfg.RateLimitBurst = v
	}
	// match the orchestrator's termination grace period
	if v, ok := envInt(EnvShutdownTimeoutSeconds, 0); ok {
		cfg.ShutdownTimeout = time.Duration(v) * time.Second
	}

	return cfg
}

// envInt reads a positive integer from the environment. max of zero means no
// upper bound.
func envInt(name string, max int) (int, bool) {
	raw := os.Getenv(name)
	if raw == "" {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 || (max > 0 && v > max) {
		slog.Warn("ignoring invalid environment value", "name", name, "value", raw)
		return 0, false
	}
	return v, true
}
