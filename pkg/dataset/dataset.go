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

package dataset

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/nutrisense/nutrisense/pkg/defaults"
	nserrors "github.com/nutrisense/nutrisense/pkg/errors"
	"github.com/nutrisense/nutrisense/pkg/serializer"
)

//go:embed data/food_nutrition.csv
var defaultCSV []byte

// Field names a column of the dataset.
type Field string

const (
	FieldName            Field = "name"
	FieldCountry         Field = "country"
	FieldDescription     Field = "description"
	FieldCookTimeMinutes Field = "cook_time_minutes"
	FieldCalories        Field = "calories"
	FieldProtein         Field = "protein"
	FieldCarbohydrates   Field = "carbohydrates"
	FieldFat             Field = "fat"
	FieldFiber           Field = "fiber"
	FieldSugar           Field = "sugar"
	FieldUserRatings     Field = "user_ratings"
)

// RequiredColumns is the header contract of the input file.
var RequiredColumns = []Field{
	FieldName, FieldCountry, FieldDescription, FieldCookTimeMinutes,
	FieldCalories, FieldProtein, FieldCarbohydrates, FieldFat,
	FieldFiber, FieldSugar, FieldUserRatings,
}

// NumericFields lists the columns holding non-negative numbers.
var NumericFields = []Field{
	FieldCookTimeMinutes, FieldCalories, FieldProtein, FieldCarbohydrates,
	FieldFat, FieldFiber, FieldSugar, FieldUserRatings,
}

// IsNumeric reports whether the field holds a number.
func (f Field) IsNumeric() bool {
	for _, n := range NumericFields {
		if n == f {
			return true
		}
	}
	return false
}

// ParseField parses a column name, case-insensitively.
func ParseField(s string) (Field, error) {
	f := Field(strings.ToLower(strings.TrimSpace(s)))
	for _, c := range RequiredColumns {
		if c == f {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown field: %q", s)
}

// FoodItem is one row of the dataset.
type FoodItem struct {
	Name            string  `json:"name" yaml:"name"`
	Country         string  `json:"country" yaml:"country"`
	Description     string  `json:"description" yaml:"description"`
	CookTimeMinutes float64 `json:"cookTimeMinutes" yaml:"cookTimeMinutes"`
	Calories        float64 `json:"calories" yaml:"calories"`
	Protein         float64 `json:"protein" yaml:"protein"`
	Carbohydrates   float64 `json:"carbohydrates" yaml:"carbohydrates"`
	Fat             float64 `json:"fat" yaml:"fat"`
	Fiber           float64 `json:"fiber" yaml:"fiber"`
	Sugar           float64 `json:"sugar" yaml:"sugar"`
	UserRatings     float64 `json:"userRatings" yaml:"userRatings"`
}

// Value returns the numeric value of a field. ok is false for text fields.
func (f FoodItem) Value(field Field) (float64, bool) {
	switch field {
	case FieldCookTimeMinutes:
		return f.CookTimeMinutes, true
	case FieldCalories:
		return f.Calories, true
	case FieldProtein:
		return f.Protein, true
	case FieldCarbohydrates:
		return f.Carbohydrates, true
	case FieldFat:
		return f.Fat, true
	case FieldFiber:
		return f.Fiber, true
	case FieldSugar:
		return f.Sugar, true
	case FieldUserRatings:
		return f.UserRatings, true
	default:
		return 0, false
	}
}

func (f *FoodItem) set(field Field, v float64) {
	switch field {
	case FieldCookTimeMinutes:
		f.CookTimeMinutes = v
	case FieldCalories:
		f.Calories = v
	case FieldProtein:
		f.Protein = v
	case FieldCarbohydrates:
		f.Carbohydrates = v
	case FieldFat:
		f.Fat = v
	case FieldFiber:
		f.Fiber = v
	case FieldSugar:
		f.Sugar = v
	case FieldUserRatings:
		f.UserRatings = v
	}
}

// Dataset is the immutable, loaded food table.
type Dataset struct {
	source  string
	items   []FoodItem
	medians map[Field]float64
	imputed int
}

// Source describes where the dataset was loaded from.
func (d *Dataset) Source() string {
	return d.source
}

// Imputed returns the number of rows whose cook time was filled with the median.
func (d *Dataset) Imputed() int {
	return d.imputed
}

// Median returns the median of a numeric column over the values present in
// the source file. ok is false for text fields.
func (d *Dataset) Median(field Field) (float64, bool) {
	m, ok := d.medians[field]
	return m, ok
}

// Load reads the dataset from a file on disk or an http(s) URL.
func Load(ctx context.Context, path string) (*Dataset, error) {
	if isRemote(path) {
		return loadRemote(ctx, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, nserrors.WrapWithContext(nserrors.ErrCodeDataLoad,
			"failed to open dataset", err, map[string]any{"path": path})
	}
	defer f.Close()

	ds, err := parse(ctx, f)
	if err != nil {
		return nil, err
	}
	ds.source = path

	slog.Debug("dataset loaded",
		"source", path,
		"items", len(ds.items),
		"imputed", ds.imputed,
	)
	return ds, nil
}

func isRemote(path string) bool {
	return strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://")
}

func loadRemote(ctx context.Context, url string) (*Dataset, error) {
	data, err := serializer.NewHTTPReader().ReadWithContext(ctx, url)
	if err != nil {
		if ctx.Err() != nil {
			return nil, nserrors.Wrap(nserrors.ErrCodeTimeout, "dataset download canceled", err)
		}
		return nil, nserrors.WrapWithContext(nserrors.ErrCodeDataLoad,
			"failed to download dataset", err, map[string]any{"url": url})
	}

	ds, err := parse(ctx, bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	ds.source = url
	return ds, nil
}

// LoadFrom reads the dataset from an arbitrary reader.
func LoadFrom(ctx context.Context, r io.Reader) (*Dataset, error) {
	ds, err := parse(ctx, r)
	if err != nil {
		return nil, err
	}
	ds.source = "reader"
	return ds, nil
}

// Default loads the sample dataset embedded in the binary.
func Default(ctx context.Context) (*Dataset, error) {
	ds, err := parse(ctx, bytes.NewReader(defaultCSV))
	if err != nil {
		return nil, err
	}
	ds.source = "embedded"
	return ds, nil
}

// isMissing reports whether a cell holds no value.
func isMissing(s string) bool {
	switch strings.ToLower(s) {
	case "", "nan", "na", "n/a", "null", "none":
		return true
	default:
		return false
	}
}

func parse(ctx context.Context, r io.Reader) (*Dataset, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = false

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nserrors.New(nserrors.ErrCodeDataLoad, "dataset is empty")
		}
		return nil, nserrors.Wrap(nserrors.ErrCodeDataLoad, "failed to read dataset header", err)
	}

	columns := make(map[Field]int, len(header))
	for i, h := range header {
		name := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
		if _, dup := columns[Field(name)]; !dup {
			columns[Field(name)] = i
		}
	}

	var missing []string
	for _, c := range RequiredColumns {
		if _, ok := columns[c]; !ok {
			missing = append(missing, string(c))
		}
	}
	if len(missing) > 0 {
		return nil, nserrors.NewWithContext(nserrors.ErrCodeDataLoad,
			fmt.Sprintf("missing required columns: %s", strings.Join(missing, ", ")),
			map[string]any{"missing": missing})
	}

	ds := &Dataset{medians: make(map[Field]float64, len(NumericFields))}
	present := make(map[Field][]float64, len(NumericFields))
	var missingCook []int

	for line := 2; ; line++ {
		if line%1000 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, nserrors.Wrap(nserrors.ErrCodeTimeout, "dataset load canceled", err)
			}
		}

		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, nserrors.Wrap(nserrors.ErrCodeDataLoad, "malformed dataset row", err)
		}
		if len(ds.items) >= defaults.DatasetMaxRows {
			return nil, nserrors.New(nserrors.ErrCodeDataLoad,
				fmt.Sprintf("dataset exceeds %d rows", defaults.DatasetMaxRows))
		}

		item := FoodItem{
			Name:        strings.TrimSpace(record[columns[FieldName]]),
			Country:     strings.TrimSpace(record[columns[FieldCountry]]),
			Description: strings.TrimSpace(record[columns[FieldDescription]]),
		}

		for _, field := range NumericFields {
			raw := strings.TrimSpace(record[columns[field]])
			if field == FieldCookTimeMinutes && isMissing(raw) {
				missingCook = append(missingCook, len(ds.items))
				continue
			}

			v, err := strconv.ParseFloat(raw, 64)
			if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, nserrors.NewWithContext(nserrors.ErrCodeDataLoad,
					fmt.Sprintf("invalid %s value %q", field, raw),
					map[string]any{"line": line, "column": string(field)})
			}
			if v < 0 {
				return nil, nserrors.NewWithContext(nserrors.ErrCodeDataLoad,
					fmt.Sprintf("negative %s value %v", field, v),
					map[string]any{"line": line, "column": string(field)})
			}
			item.set(field, v)
			present[field] = append(present[field], v)
		}

		ds.items = append(ds.items, item)
	}

	if len(ds.items) == 0 {
		return nil, nserrors.New(nserrors.ErrCodeDataLoad, "dataset has no rows")
	}

	for _, field := range NumericFields {
		ds.medians[field] = median(present[field])
	}

	cookMedian := ds.medians[FieldCookTimeMinutes]
	for _, idx := range missingCook {
		ds.items[idx].CookTimeMinutes = cookMedian
	}
	ds.imputed = len(missingCook)

	return ds, nil
}

// median returns the middle value of vs, averaging the two middle values for
// an even count. An empty slice yields 0.
func median(vs []float64) float64 {
	if len(vs) == 0 {
		return 0
	}
	sorted := make([]float64, len(vs))
	copy(sorted, vs)
	sort.Float64s(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid]
	}
	return (sorted[mid-1] + sorted[mid]) / 2
}
