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

// Package csv adapts delimiter-separated files to the flextable Source
// interface. Field values stay strings; the table's sort engine already
// compares numeric-looking strings numerically.
package csv

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/magpierre/fyne-flextable/flextable"
)

// Config controls CSV parsing.
type Config struct {
	// HasHeaders treats the first record as column names. Without headers,
	// columns are named column_1, column_2, ...
	HasHeaders bool

	// TrimSpace removes surrounding whitespace from headers and fields.
	TrimSpace bool

	// Delimiter is the field separator. Zero means comma.
	Delimiter rune
}

// DefaultConfig returns a comma-separated configuration with headers and
// whitespace trimming.
func DefaultConfig() Config {
	return Config{
		HasHeaders: true,
		TrimSpace:  true,
		Delimiter:  ',',
	}
}

// Source serves rows parsed from CSV data.
type Source struct {
	columns []flextable.Column
	records []interface{}
	meta    flextable.Metadata
}

// NewFromFile reads a CSV file into a source.
func NewFromFile(path string, cfg Config) (*Source, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer f.Close()

	s, err := NewFromReader(f, cfg)
	if err != nil {
		return nil, err
	}
	s.meta["path"] = path
	return s, nil
}

// NewFromReader parses CSV data into a source. Returns ErrEmptyData when the
// input contains no records, headers aside.
func NewFromReader(r io.Reader, cfg Config) (*Source, error) {
	if cfg.Delimiter == 0 {
		cfg.Delimiter = ','
	}

	reader := csv.NewReader(r)
	reader.Comma = cfg.Delimiter
	reader.FieldsPerRecord = -1 // tolerate ragged rows

	lines, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse CSV: %w", err)
	}
	if len(lines) == 0 {
		return nil, flextable.ErrEmptyData
	}

	var headers []string
	if cfg.HasHeaders {
		headers = headerNames(lines[0], cfg.TrimSpace)
		lines = lines[1:]
	} else {
		headers = make([]string, len(lines[0]))
		for i := range headers {
			headers[i] = "column_" + strconv.Itoa(i+1)
		}
	}
	if len(lines) == 0 {
		return nil, flextable.ErrEmptyData
	}

	columns := make([]flextable.Column, len(headers))
	for i, h := range headers {
		columns[i] = flextable.Column{Accessor: h, Label: h, Sortable: true}
	}

	records := make([]interface{}, 0, len(lines))
	for _, line := range lines {
		record := make(map[string]interface{}, len(headers))
		for i, h := range headers {
			if i >= len(line) {
				break
			}
			field := line[i]
			if cfg.TrimSpace {
				field = strings.TrimSpace(field)
			}
			record[h] = field
		}
		records = append(records, record)
	}

	return &Source{
		columns: columns,
		records: records,
		meta:    flextable.Metadata{"format": "csv"},
	}, nil
}

// headerNames cleans the header record: blank names get positional fallbacks
// and duplicates get a numeric suffix so accessors stay unique.
func headerNames(header []string, trim bool) []string {
	names := make([]string, len(header))
	seen := make(map[string]int, len(header))
	for i, h := range header {
		if trim {
			h = strings.TrimSpace(h)
		}
		if h == "" {
			h = "column_" + strconv.Itoa(i+1)
		}
		if n, dup := seen[h]; dup {
			seen[h] = n + 1
			h = fmt.Sprintf("%s_%d", h, n+1)
		}
		seen[h] = 1
		names[i] = h
	}
	return names
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

// RowCount returns the number of data records.
func (s *Source) RowCount() int {
	return len(s.records)
}

// ColumnCount returns the number of columns.
func (s *Source) ColumnCount() int {
	return len(s.columns)
}
