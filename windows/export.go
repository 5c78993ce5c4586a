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

package windows

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/apache/arrow-go/v18/parquet"
	"github.com/apache/arrow-go/v18/parquet/compress"
	"github.com/apache/arrow-go/v18/parquet/pqarrow"

	"github.com/magpierre/fyne-flextable/flextable"
)

// ExportFormat represents the supported export formats
type ExportFormat int

const (
	FormatParquet ExportFormat = iota
	FormatCSV
	FormatJSON
)

// ExportToParquet writes the model's rows, in their current sort order, to a
// Parquet file
func ExportToParquet(model *flextable.TableModel, filePath string) error {
	table, err := buildArrowTable(model)
	if err != nil {
		return err
	}
	defer table.Release()

	// Create the output file
	f, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("failed to create parquet file: %w", err)
	}
	defer f.Close()

	// Create Parquet writer properties
	props := parquet.NewWriterProperties(parquet.WithCompression(compress.Codecs.Snappy))
	arrowProps := pqarrow.NewArrowWriterProperties(pqarrow.WithStoreSchema())

	// Create a Parquet file writer
	writer, err := pqarrow.NewFileWriter(table.Schema(), f, props, arrowProps)
	if err != nil {
		return fmt.Errorf("failed to create parquet writer: %w", err)
	}
	defer writer.Close()

	// Write the table
	err = writer.WriteTable(table, table.NumRows())
	if err != nil {
		return fmt.Errorf("failed to write table to parquet: %w", err)
	}

	return nil
}

// ExportToCSV writes the model's rows, in their current sort order, to a CSV
// file. Headers carry the column accessors so the file loads back with the
// same columns.
func ExportToCSV(model *flextable.TableModel, filePath string) error {
	// Create the output file
	f, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("failed to create CSV file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	// Write header
	columns := model.Columns()
	headers := make([]string, len(columns))
	for i, col := range columns {
		headers[i] = col.Accessor
	}
	if err := writer.Write(headers); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	// Process each row
	for _, row := range model.SortedRows() {
		record := make([]string, len(columns))
		for i, col := range columns {
			record[i] = row.Fields[col.Accessor].Formatted
		}

		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	return nil
}

// ExportToJSON writes the model's rows, in their current sort order, to a
// JSON file as an array of objects. Values keep their original types, nulls
// stay null.
func ExportToJSON(model *flextable.TableModel, filePath string) error {
	// Create the output file
	f, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("failed to create JSON file: %w", err)
	}
	defer f.Close()

	columns := model.Columns()

	// Collect all rows into a slice of maps
	rows := model.SortedRows()
	records := make([]map[string]interface{}, 0, len(rows))
	for _, row := range rows {
		record := make(map[string]interface{}, len(columns))
		for _, col := range columns {
			value := row.Fields[col.Accessor]
			if value.IsNull {
				record[col.Accessor] = nil
			} else {
				record[col.Accessor] = value.Raw
			}
		}
		records = append(records, record)
	}

	// Encode to JSON with indentation
	encoder := json.NewEncoder(f)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(records); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}

	return nil
}

// buildArrowTable reconstructs an Arrow table from the model's columns and
// sorted rows. Column types are inferred from the first non-null value; types
// without a numeric or boolean mapping fall back to strings.
func buildArrowTable(model *flextable.TableModel) (arrow.Table, error) {
	columns := model.Columns()
	rows := model.SortedRows()

	if len(rows) == 0 {
		return nil, fmt.Errorf("no data to export")
	}

	pool := memory.NewGoAllocator()

	fields := make([]arrow.Field, len(columns))
	builders := make([]array.Builder, len(columns))
	for i, col := range columns {
		dataType := arrowTypeFor(columnType(rows, col.Accessor))
		fields[i] = arrow.Field{Name: col.Accessor, Type: dataType, Nullable: true}
		builders[i] = array.NewBuilder(pool, dataType)
	}

	for _, row := range rows {
		for i, col := range columns {
			appendModelValue(builders[i], row.Fields[col.Accessor])
		}
	}

	schema := arrow.NewSchema(fields, nil)

	arrowColumns := make([]arrow.Column, len(columns))
	for i, field := range fields {
		arr := builders[i].NewArray()
		chunked := arrow.NewChunked(field.Type, []arrow.Array{arr})
		arrowColumns[i] = *arrow.NewColumn(field, chunked)
		arr.Release()
		builders[i].Release()
	}

	return array.NewTable(schema, arrowColumns, int64(len(rows))), nil
}

// columnType returns the type of the first non-null value in a column.
func columnType(rows []flextable.Row, accessor string) flextable.DataType {
	for _, row := range rows {
		if value, ok := row.Fields[accessor]; ok && !value.IsNull {
			return value.Type
		}
	}
	return flextable.TypeString
}

// arrowTypeFor maps a model data type onto an Arrow type.
func arrowTypeFor(dataType flextable.DataType) arrow.DataType {
	switch dataType {
	case flextable.TypeInt:
		return arrow.PrimitiveTypes.Int64
	case flextable.TypeFloat:
		return arrow.PrimitiveTypes.Float64
	case flextable.TypeBool:
		return arrow.FixedWidthTypes.Boolean
	default:
		return arrow.BinaryTypes.String
	}
}

// appendModelValue appends a model value to an Arrow builder. Values that do
// not fit the builder's type become nulls.
func appendModelValue(builder array.Builder, value flextable.Value) {
	if value.IsNull {
		builder.AppendNull()
		return
	}

	switch b := builder.(type) {
	case *array.Int64Builder:
		if n, ok := asInt64(value.Raw); ok {
			b.Append(n)
		} else {
			b.AppendNull()
		}
	case *array.Float64Builder:
		if f, ok := asFloat64(value.Raw); ok {
			b.Append(f)
		} else {
			b.AppendNull()
		}
	case *array.BooleanBuilder:
		if bv, ok := value.Raw.(bool); ok {
			b.Append(bv)
		} else {
			b.AppendNull()
		}
	case *array.StringBuilder:
		b.Append(value.Formatted)
	default:
		builder.AppendNull()
	}
}

// asInt64 converts any integer raw value to int64
func asInt64(raw interface{}) (int64, bool) {
	switch n := raw.(type) {
	case int:
		return int64(n), true
	case int8:
		return int64(n), true
	case int16:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case uint:
		return int64(n), true
	case uint8:
		return int64(n), true
	case uint16:
		return int64(n), true
	case uint32:
		return int64(n), true
	case uint64:
		return int64(n), true
	default:
		return 0, false
	}
}

// asFloat64 converts any numeric raw value to float64
func asFloat64(raw interface{}) (float64, bool) {
	switch f := raw.(type) {
	case float32:
		return float64(f), true
	case float64:
		return f, true
	default:
		if n, ok := asInt64(raw); ok {
			return float64(n), true
		}
		return 0, false
	}
}
