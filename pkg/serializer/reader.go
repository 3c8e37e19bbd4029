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
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// FormatFromPath determines the serialization format based on file extension.
// Supported extensions:
//   - .json → FormatJSON
//   - .yaml, .yml → FormatYAML
//   - .table, .txt → FormatTable
//
// Returns FormatJSON as default for unknown extensions.
func FormatFromPath(filePath string) Format {
	lowerPath := strings.ToLower(filePath)
	switch {
	case strings.HasSuffix(lowerPath, ".json"):
		return FormatJSON
	case strings.HasSuffix(lowerPath, ".yaml"), strings.HasSuffix(lowerPath, ".yml"):
		return FormatYAML
	case strings.HasSuffix(lowerPath, ".table"), strings.HasSuffix(lowerPath, ".txt"):
		return FormatTable
	default:
		slog.Warn("unknown file extension, defaulting to JSON", "filePath", filePath)
		return FormatJSON
	}
}

// FormatFromContentType maps an HTTP Content-Type to a readable format.
// Supported: application/json, application/x-yaml, application/yaml, text/yaml.
// An empty content type is treated as JSON.
func FormatFromContentType(contentType string) (Format, error) {
	if strings.TrimSpace(contentType) == "" {
		return FormatJSON, nil
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return "", fmt.Errorf("invalid content type %q: %w", contentType, err)
	}
	switch mediaType {
	case "application/json":
		return FormatJSON, nil
	case "application/x-yaml", "application/yaml", "text/yaml", "text/x-yaml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported content type: %s", mediaType)
	}
}

// Reader handles deserialization of structured data from JSON or YAML.
// Close must be called when the Reader was created by NewFileReader.
type Reader struct {
	format Format
	input  io.Reader
	closer io.Closer
	// temp is a downloaded copy of a remote file, removed on Close.
	temp string
}

// NewReader creates a new Reader for deserializing data from an io.Reader source.
// Table format is write-only and rejected.
func NewReader(format Format, input io.Reader) (*Reader, error) {
	if format.IsUnknown() {
		return nil, fmt.Errorf("unknown format: %s", format)
	}

	if format == FormatTable {
		return nil, fmt.Errorf("table format does not support deserialization")
	}

	r := &Reader{
		format: format,
		input:  input,
	}

	if closer, ok := input.(io.Closer); ok {
		r.closer = closer
	}

	return r, nil
}

// NewFileReader creates a new Reader that reads from a local path or an
// http(s) URL. Remote content is downloaded to a temporary file that Close
// removes.
func NewFileReader(format Format, filePath string) (*Reader, error) {
	if format.IsUnknown() {
		return nil, fmt.Errorf("unknown format: %s", format)
	}

	if format == FormatTable {
		return nil, fmt.Errorf("table format does not support deserialization")
	}

	var temp string
	path := filePath
	if isRemote(filePath) {
		temp = filepath.Join(os.TempDir(), fmt.Sprintf("nutri-%d.tmp", time.Now().UnixNano()))
		if err := NewHTTPReader().Download(filePath, temp); err != nil {
			return nil, fmt.Errorf("failed to download remote file: %w", err)
		}
		path = temp
	}

	file, err := os.Open(path)
	if err != nil {
		if temp != "" {
			_ = os.Remove(temp)
		}
		return nil, fmt.Errorf("failed to open file: %w", err)
	}

	return &Reader{
		format: format,
		input:  file,
		closer: file,
		temp:   temp,
	}, nil
}

// NewFileReaderAuto creates a new Reader with the format derived from the
// file extension.
func NewFileReaderAuto(filePath string) (*Reader, error) {
	return NewFileReader(FormatFromPath(filePath), filePath)
}

func isRemote(path string) bool {
	return strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://")
}

// Deserialize reads data from the input source and unmarshals it into v,
// which must be a pointer.
func (r *Reader) Deserialize(v any) error {
	if r == nil {
		return fmt.Errorf("reader is nil")
	}

	if r.input == nil {
		return fmt.Errorf("input source is nil")
	}

	switch r.format {
	case FormatJSON:
		decoder := json.NewDecoder(r.input)
		if err := decoder.Decode(v); err != nil {
			return fmt.Errorf("failed to decode JSON: %w", err)
		}
		return nil

	case FormatYAML:
		decoder := yaml.NewDecoder(r.input)
		if err := decoder.Decode(v); err != nil {
			return fmt.Errorf("failed to decode YAML: %w", err)
		}
		return nil

	default:
		return fmt.Errorf("unsupported format for deserialization: %s", r.format)
	}
}

// Close releases the file handle and any downloaded temporary file.
// Safe to call multiple times and on a nil Reader.
func (r *Reader) Close() error {
	if r == nil {
		return nil
	}

	var err error
	if r.closer != nil {
		err = r.closer.Close()
		r.closer = nil
	}
	if r.temp != "" {
		if rmErr := os.Remove(r.temp); rmErr != nil && err == nil && !os.IsNotExist(rmErr) {
			err = rmErr
		}
		r.temp = ""
	}
	return err
}

// FromFile reads and deserializes a local file or http(s) URL into T.
// The format comes from the path extension.
func FromFile[T any](path string) (*T, error) {
	fileFormat := FormatFromPath(path)
	slog.Debug("determined file format",
		slog.String("path", path),
		slog.String("format", string(fileFormat)),
	)

	ser, err := NewFileReader(fileFormat, path)
	if err != nil {
		return nil, fmt.Errorf("failed to create reader for %q: %w", path, err)
	}

	defer func() {
		if closeErr := ser.Close(); closeErr != nil {
			slog.Warn("failed to close reader", "error", closeErr)
		}
	}()

	var r T
	if err := ser.Deserialize(&r); err != nil {
		return nil, fmt.Errorf("failed to deserialize object from %q: %w", path, err)
	}

	slog.Debug("successfully loaded object from file",
		slog.String("path", path),
	)

	return &r, nil
}

// FromReader deserializes a single document of the given format into T.
func FromReader[T any](format Format, input io.Reader) (*T, error) {
	ser, err := NewReader(format, input)
	if err != nil {
		return nil, err
	}

	var r T
	if err := ser.Deserialize(&r); err != nil {
		return nil, err
	}
	return &r, nil
}
