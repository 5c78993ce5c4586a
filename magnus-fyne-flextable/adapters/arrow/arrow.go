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

// Package arrow adapts Apache Arrow tables to the flextable Source
// interface. The table is materialized into records once at construction;
// the Arrow table may be released afterwards.
package arrow

import (
	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"

	"github.com/magpierre/fyne-flextable/flextable"
)

// readBatchSize is the chunk size used when walking the Arrow table.
const readBatchSize = 1024

// Source serves rows extracted from an Arrow table.
type Source struct {
	columns []flextable.Column
	records []interface{}
	meta    flextable.Metadata
}

// NewFromArrowTable materializes an Arrow table into a source. Column
// definitions come from the schema; every column is sortable.
// Returns ErrEmptyData when the table is nil.
func NewFromArrowTable(table arrow.Table) (*Source, error) {
	if table == nil {
		return nil, flextable.ErrEmptyData
	}

	schema := table.Schema()
	columns := make([]flextable.Column, schema.NumFields())
	for i := 0; i < schema.NumFields(); i++ {
		field := schema.Field(i)
		columns[i] = flextable.Column{
			Accessor: field.Name,
			Label:    field.Name,
			Sortable: true,
		}
	}

	records := make([]interface{}, 0, table.NumRows())
	tr := array.NewTableReader(table, readBatchSize)
	defer tr.Release()

	for tr.Next() {
		rec := tr.Record()
		for row := 0; row < int(rec.NumRows()); row++ {
			record := make(map[string]interface{}, len(columns))
			for c, col := range columns {
				record[col.Accessor] = valueAt(rec.Column(c), row)
			}
			records = append(records, record)
		}
	}

	return &Source{
		columns: columns,
		records: records,
		meta: flextable.Metadata{
			"format":  "arrow",
			"rows":    table.NumRows(),
			"columns": int64(schema.NumFields()),
		},
	}, nil
}

// valueAt extracts one cell as a plain Go value. Scalar types map to their
// native Go representation; everything else falls back to the array's string
// form.
func valueAt(col arrow.Array, pos int) interface{} {
	if col.IsNull(pos) {
		return nil
	}

	switch col.DataType().ID() {
	case arrow.STRING:
		return col.(*array.String).Value(pos)
	case arrow.LARGE_STRING:
		return col.(*array.LargeString).Value(pos)
	case arrow.BOOL:
		return col.(*array.Boolean).Value(pos)
	case arrow.INT8:
		return col.(*array.Int8).Value(pos)
	case arrow.INT16:
		return col.(*array.Int16).Value(pos)
	case arrow.INT32:
		return col.(*array.Int32).Value(pos)
	case arrow.INT64:
		return col.(*array.Int64).Value(pos)
	case arrow.UINT8:
		return col.(*array.Uint8).Value(pos)
	case arrow.UINT16:
		return col.(*array.Uint16).Value(pos)
	case arrow.UINT32:
		return col.(*array.Uint32).Value(pos)
	case arrow.UINT64:
		return col.(*array.Uint64).Value(pos)
	case arrow.FLOAT16:
		return col.(*array.Float16).Value(pos).Float32()
	case arrow.FLOAT32:
		return col.(*array.Float32).Value(pos)
	case arrow.FLOAT64:
		return col.(*array.Float64).Value(pos)
	case arrow.DATE32:
		return col.(*array.Date32).Value(pos).ToTime().Format("2006-01-02")
	case arrow.DATE64:
		return col.(*array.Date64).Value(pos).ToTime().Format("2006-01-02")
	case arrow.TIMESTAMP:
		unit := col.DataType().(*arrow.TimestampType).Unit
		return col.(*array.Timestamp).Value(pos).ToTime(unit)
	case arrow.BINARY:
		return col.(*array.Binary).Value(pos)
	default:
		// Decimals, lists, structs and the rest keep their display form.
		return col.ValueStr(pos)
	}
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

// RowCount returns the number of materialized rows.
func (s *Source) RowCount() int {
	return len(s.records)
}

// ColumnCount returns the number of columns.
func (s *Source) ColumnCount() int {
	return len(s.columns)
}
