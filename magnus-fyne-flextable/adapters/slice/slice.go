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

// Package slice adapts in-memory Go records to the flextable Source
// interface.
package slice

import (
	"sort"

	"github.com/magpierre/fyne-flextable/flextable"
)

// Source serves records held in memory.
type Source struct {
	columns []flextable.Column
	records []interface{}
	meta    flextable.Metadata
}

// New builds a source from explicit column definitions and records.
func New(columns []flextable.Column, records []interface{}, meta flextable.Metadata) *Source {
	if meta == nil {
		meta = flextable.Metadata{}
	}
	return &Source{
		columns: append([]flextable.Column(nil), columns...),
		records: append([]interface{}(nil), records...),
		meta:    meta,
	}
}

// NewFromMaps builds a source from map records, deriving the column set from
// the sorted union of record keys. Reserved marker fields do not become
// columns. All derived columns are sortable.
// Returns ErrEmptyData when no records are given.
func NewFromMaps(records []map[string]interface{}) (*Source, error) {
	if len(records) == 0 {
		return nil, flextable.ErrEmptyData
	}

	keys := make(map[string]bool)
	raw := make([]interface{}, len(records))
	for i, record := range records {
		raw[i] = record
		for k := range record {
			keys[k] = true
		}
	}

	names := make([]string, 0, len(keys))
	for k := range keys {
		switch k {
		case flextable.OrdinalAccessor, flextable.MetaAccessor, flextable.FullRowField:
			continue
		}
		names = append(names, k)
	}
	sort.Strings(names)

	columns := make([]flextable.Column, len(names))
	for i, name := range names {
		columns[i] = flextable.Column{Accessor: name, Label: name, Sortable: true}
	}

	return &Source{columns: columns, records: raw, meta: flextable.Metadata{}}, nil
}

// Columns implements flextable.Source.
func (s *Source) Columns() []flextable.Column {
	return append([]flextable.Column(nil), s.columns...)
}

// Records implements flextable.Source.
func (s *Source) Records() []interface{} {
	return s.records
}

// Metadata implements flextable.Source.
func (s *Source) Metadata() flextable.Metadata {
	return s.meta
}

// RowCount returns the number of records.
func (s *Source) RowCount() int {
	return len(s.records)
}

// ColumnCount returns the number of columns.
func (s *Source) ColumnCount() int {
	return len(s.columns)
}
