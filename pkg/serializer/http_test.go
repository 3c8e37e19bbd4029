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
	"context"
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestRespondJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondJSON(rec, http.StatusCreated, map[string]string{"status": "ok"})

	if rec.Code != http.StatusCreated {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusCreated)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", ct)
	}

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("body = %v", body)
	}
}

func TestRespondJSON_EncodingError(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondJSON(rec, http.StatusOK, math.Inf(1))

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusInternalServerError)
	}
}

func TestHTTPReader_Read(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/missing" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte("name,calories\n"))
	}))
	defer srv.Close()

	reader := NewHTTPReader(WithUserAgent("test-agent"), WithTotalTimeout(5*time.Second))
	if reader.UserAgent != "test-agent" {
		t.Errorf("UserAgent = %q, want test-agent", reader.UserAgent)
	}

	data, err := reader.Read(srv.URL + "/data.csv")
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if string(data) != "name,calories\n" {
		t.Errorf("unexpected data: %q", data)
	}

	if _, err := reader.Read(srv.URL + "/missing"); err == nil {
		t.Error("expected error for 404")
	}
	if _, err := reader.Read(""); err == nil {
		t.Error("expected error for empty url")
	}
}

func TestHTTPReader_ContextCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("ok"))
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := NewHTTPReader().ReadWithContext(ctx, srv.URL); err == nil {
		t.Error("expected error for cancelled context")
	}
}

func TestHTTPReader_Download(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("payload"))
	}))
	defer srv.Close()

	path := filepath.Join(t.TempDir(), "out.bin")
	client := &http.Client{Timeout: time.Second}
	if err := NewHTTPReader(WithClient(client)).Download(srv.URL, path); err != nil {
		t.Fatalf("Download failed: %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read file: %v", err)
	}
	if string(content) != "payload" {
		t.Errorf("content = %q, want payload", content)
	}
}
