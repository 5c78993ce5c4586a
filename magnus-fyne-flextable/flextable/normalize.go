// Copyright 2025 Magnus Pierre
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

package flextable

import (
	"strconv"
	"strings"
)

// idFallbackFields are the record fields combined into a row identity when
// the record carries no usable id field, in this order.
var idFallbackFields = []string{"key", "name", "label", "title"}

// Row is a normalized row record with stable identity.
type Row struct {
	// ID uniquely identifies the row within the current dataset. It is
	// stable across sorting and pagination, so per-row UI state keyed by ID
	// survives view changes.
	ID string

	// Index is the row's 1-based position in the original dataset order.
	Index int

	// Fields holds one value per non-reserved column accessor. Accessors
	// absent from the source record map to an empty-string value.
	Fields map[string]Value

	// Source is the original raw record, for renderers that need fields
	// outside the column set.
	Source map[string]interface{}

	// FullRow marks the row for full-width rendering.
	FullRow bool
}

// NormalizeRows converts raw records into normalized rows for the given
// column set. Entries that are nil or not records are dropped silently.
// The function is pure: it never modifies its inputs.
func NormalizeRows(raw []interface{}, columns []Column) []Row {
	rows := make([]Row, 0, len(raw))

	for _, entry := range raw {
		record, ok := entry.(map[string]interface{})
		if !ok || record == nil {
			continue
		}

		index := len(rows) + 1
		row := Row{
			ID:      rowID(record, index),
			Index:   index,
			Fields:  make(map[string]Value, len(columns)),
			Source:  record,
			FullRow: isTruthy(record[FullRowField]),
		}

		for _, col := range columns {
			if isReservedAccessor(col.Accessor) {
				continue
			}
			v, present := record[col.Accessor]
			if !present {
				row.Fields[col.Accessor] = NewValue("", TypeString)
				continue
			}
			row.Fields[col.Accessor] = ValueOf(v)
		}

		rows = append(rows, row)
	}

	return rows
}

// rowID derives the row identity. A trimmed non-empty id field wins; failing
// that, the fallback identifier fields present on the record are joined with
// hyphens and the positional index is appended, which keeps empty and
// duplicated composites unique.
func rowID(record map[string]interface{}, index int) string {
	if v, ok := record["id"]; ok {
		if s := strings.TrimSpace(ValueOf(v).Formatted); s != "" {
			return s
		}
	}

	parts := make([]string, 0, len(idFallbackFields)+1)
	for _, field := range idFallbackFields {
		v, ok := record[field]
		if !ok {
			continue
		}
		if s := strings.TrimSpace(ValueOf(v).Formatted); s != "" {
			parts = append(parts, s)
		}
	}
	parts = append(parts, strconv.Itoa(index))

	return strings.Join(parts, "-")
}

// isTruthy interprets a record field as a flag.
func isTruthy(v interface{}) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != "" && !strings.EqualFold(t, "false")
	default:
		f, ok := ValueOf(v).numericValue()
		return ok && f != 0
	}
}
