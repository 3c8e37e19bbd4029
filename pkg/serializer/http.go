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

package serializer

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"os"
	"time"
)

// RespondJSON writes a JSON response with the given status code and data.
// It buffers the JSON encoding before writing headers to prevent partial responses.
func RespondJSON(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")

	buf := &bytes.Buffer{}
	if err := json.NewEncoder(buf).Encode(data); err != nil {
		slog.Error("json encoding failed", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(statusCode)
	if _, err := w.Write(buf.Bytes()); err != nil {
		// Connection is broken, log but can't recover
		slog.Warn("response write failed", "error", err)
	}
}

const (
	// HTTPReaderUserAgent is sent on every outbound request.
	HTTPReaderUserAgent = "nutrisense-serializer/1.0"

	httpReaderTimeout        = 30 * time.Second
	httpReaderConnectTimeout = 5 * time.Second
	httpReaderKeepAlive      = 30 * time.Second
	httpReaderMaxBytes       = 64 << 20
)

// HTTPReaderOption defines a configuration option for HTTPReader.
type HTTPReaderOption func(*HTTPReader)

// HTTPReader fetches remote profile and dataset documents.
type HTTPReader struct {
	UserAgent string
	Client    *http.Client
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(userAgent string) HTTPReaderOption {
	return func(r *HTTPReader) {
		r.UserAgent = userAgent
	}
}

// WithTotalTimeout sets the client's end-to-end request timeout.
func WithTotalTimeout(timeout time.Duration) HTTPReaderOption {
	return func(r *HTTPReader) {
		if timeout > 0 {
			r.Client.Timeout = timeout
		}
	}
}

// WithClient replaces the underlying http.Client.
func WithClient(client *http.Client) HTTPReaderOption {
	return func(r *HTTPReader) {
		if client != nil {
			r.Client = client
		}
	}
}

// NewHTTPReader creates a new HTTPReader with the specified options.
func NewHTTPReader(options ...HTTPReaderOption) *HTTPReader {
	r := &HTTPReader{
		UserAgent: HTTPReaderUserAgent,
		Client: &http.Client{
			Timeout: httpReaderTimeout,
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout:   httpReaderConnectTimeout,
					KeepAlive: httpReaderKeepAlive,
				}).DialContext,
				TLSHandshakeTimeout:   5 * time.Second,
				ResponseHeaderTimeout: 10 * time.Second,
				ForceAttemptHTTP2:     true,
				TLSClientConfig:       &tls.Config{MinVersion: tls.VersionTLS12},
			},
		},
	}

	for _, opt := range options {
		opt(r)
	}
	return r
}

// Read fetches data from the specified URL.
func (r *HTTPReader) Read(url string) ([]byte, error) {
	return r.ReadWithContext(context.Background(), url)
}

// ReadWithContext fetches data from the specified URL bound to ctx.
func (r *HTTPReader) ReadWithContext(ctx context.Context, url string) ([]byte, error) {
	if url == "" {
		return nil, fmt.Errorf("url is empty")
	}
	if r.Client == nil {
		return nil, fmt.Errorf("http client is nil")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request for url %s: %w", url, err)
	}
	if r.UserAgent != "" {
		req.Header.Set("User-Agent", r.UserAgent)
	}

	resp, err := r.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http request failed for url %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch data: status %s", resp.Status)
	}

	return io.ReadAll(io.LimitReader(resp.Body, httpReaderMaxBytes))
}

// Download reads data from the specified URL and writes it to filePath.
func (r *HTTPReader) Download(url, filePath string) error {
	return r.DownloadWithContext(context.Background(), url, filePath)
}

// DownloadWithContext is Download bound to ctx.
func (r *HTTPReader) DownloadWithContext(ctx context.Context, url, filePath string) error {
	data, err := r.ReadWithContext(ctx, url)
	if err != nil {
		return fmt.Errorf("failed to read from url %s: %w", url, err)
	}

	if err := os.WriteFile(filePath, data, 0600); err != nil {
		return fmt.Errorf("failed to write file %s: %w", filePath, err)
	}

	return nil
}
