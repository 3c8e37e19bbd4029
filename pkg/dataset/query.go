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
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/cases"

	nserrors "github.com/nutrisense/nutrisense/pkg/errors"
)

// Fold returns the Unicode case-folded form of s for case-insensitive matching.
func Fold(s string) string {
	// Casers carry state and are not safe for concurrent use.
	return cases.Fold().String(s)
}

// ContainsFold reports whether substr is within s, ignoring case.
func ContainsFold(s, substr string) bool {
	return strings.Contains(Fold(s), Fold(substr))
}

// ContainsAnyFold reports whether s contains any of the keywords, ignoring case.
func ContainsAnyFold(s string, keywords ...string) bool {
	folded := Fold(s)
	for _, k := range keywords {
		if strings.Contains(folded, Fold(k)) {
			return true
		}
	}
	return false
}

// Items returns a copy of every row in file order.
func (d *Dataset) Items() []FoodItem {
	out := make([]FoodItem, len(d.items))
	copy(out, d.items)
	return out
}

// Len returns the number of rows.
func (d *Dataset) Len() int {
	return len(d.items)
}

// Filter returns the rows for which keep returns true, in file order.
func (d *Dataset) Filter(keep func(FoodItem) bool) []FoodItem {
	out := make([]FoodItem, 0, len(d.items))
	for _, item := range d.items {
		if keep(item) {
			out = append(out, item)
		}
	}
	return out
}

// Search returns the rows whose name or description contains query,
// ignoring case. An empty query matches every row.
func (d *Dataset) Search(query string) []FoodItem {
	q := Fold(strings.TrimSpace(query))
	if q == "" {
		return d.Items()
	}
	return d.Filter(func(item FoodItem) bool {
		return strings.Contains(Fold(item.Name), q) ||
			strings.Contains(Fold(item.Description), q)
	})
}

// SortBy returns the rows ordered by a field. The sort is stable, so rows
// with equal keys keep file order.
func (d *Dataset) SortBy(field Field, ascending bool) ([]FoodItem, error) {
	if _, err := ParseField(string(field)); err != nil {
		return nil, nserrors.Wrap(nserrors.ErrCodeInvalidRequest, "cannot sort dataset", err)
	}

	out := d.Items()
	less := func(a, b FoodItem) bool {
		if field.IsNumeric() {
			av, _ := a.Value(field)
			bv, _ := b.Value(field)
			return av < bv
		}
		return textValue(a, field) < textValue(b, field)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if ascending {
			return less(out[i], out[j])
		}
		return less(out[j], out[i])
	})
	return out, nil
}

func textValue(item FoodItem, field Field) string {
	switch field {
	case FieldName:
		return Fold(item.Name)
	case FieldCountry:
		return Fold(item.Country)
	case FieldDescription:
		return Fold(item.Description)
	default:
		return ""
	}
}

// Names returns the name of every row in file order. Names are not
// guaranteed to be unique.
func (d *Dataset) Names() []string {
	out := make([]string, len(d.items))
	for i, item := range d.items {
		out[i] = item.Name
	}
	return out
}

// FindByName returns the first row whose name equals name exactly.
func (d *Dataset) FindByName(name string) (FoodItem, error) {
	for _, item := range d.items {
		if item.Name == name {
			return item, nil
		}
	}
	return FoodItem{}, nserrors.New(nserrors.ErrCodeNotFound, fmt.Sprintf("food not found: %q", name))
}
