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

// Package flextable provides the state engine for a sortable, paginated,
// resizable-column data table, plus the model consumed by the Fyne widget
// layer.
package flextable

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DataType represents the type of data in a cell.
type DataType int

const (
	// TypeString represents string data.
	TypeString DataType = iota
	// TypeInt represents integer data (any size).
	TypeInt
	// TypeFloat represents floating-point data (any precision).
	TypeFloat
	// TypeBool represents boolean data.
	TypeBool
	// TypeDate represents date data (without time).
	TypeDate
	// TypeTimestamp represents timestamp data (date + time).
	TypeTimestamp
	// TypeBinary represents binary/blob data.
	TypeBinary
	// TypeDecimal represents decimal/numeric data (fixed precision).
	TypeDecimal
	// TypeStruct represents structured data (nested fields).
	TypeStruct
	// TypeList represents list/array data.
	TypeList
)

// String returns the string representation of a DataType.
func (dt DataType) String() string {
	switch dt {
	case TypeString:
		return "String"
	case TypeInt:
		return "Int"
	case TypeFloat:
		return "Float"
	case TypeBool:
		return "Bool"
	case TypeDate:
		return "Date"
	case TypeTimestamp:
		return "Timestamp"
	case TypeBinary:
		return "Binary"
	case TypeDecimal:
		return "Decimal"
	case TypeStruct:
		return "Struct"
	case TypeList:
		return "List"
	default:
		return fmt.Sprintf("Unknown(%d)", dt)
	}
}

// Value is a typed container for cell values.
// It holds the raw value, type information, and a pre-formatted string for
// display.
type Value struct {
	// Raw holds the underlying value.
	// The type depends on the DataType field.
	Raw interface{}

	// Type indicates the data type of this value.
	Type DataType

	// IsNull indicates whether this value is null/nil.
	IsNull bool

	// Formatted is a pre-formatted string representation for display.
	// This improves UI performance by avoiding repeated formatting.
	Formatted string
}

// NewValue creates a new Value from a raw value and type.
func NewValue(raw interface{}, dataType DataType) Value {
	if raw == nil {
		return Value{
			Raw:       nil,
			Type:      dataType,
			IsNull:    true,
			Formatted: "",
		}
	}

	return Value{
		Raw:       raw,
		Type:      dataType,
		IsNull:    false,
		Formatted: formatValue(raw, dataType),
	}
}

// NewNullValue creates a null value of the specified type.
func NewNullValue(dataType DataType) Value {
	return Value{
		Raw:       nil,
		Type:      dataType,
		IsNull:    true,
		Formatted: "",
	}
}

// ValueOf creates a Value from an arbitrary raw value, inferring its type.
// Row normalization uses this for untyped record fields.
func ValueOf(raw interface{}) Value {
	return NewValue(raw, inferType(raw))
}

// inferType maps a raw Go value onto a DataType.
func inferType(raw interface{}) DataType {
	switch raw.(type) {
	case nil, string:
		return TypeString
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return TypeInt
	case float32, float64:
		return TypeFloat
	case bool:
		return TypeBool
	case time.Time:
		return TypeTimestamp
	case []byte:
		return TypeBinary
	case map[string]interface{}:
		return TypeStruct
	case []interface{}:
		return TypeList
	default:
		return TypeString
	}
}

// formatValue converts a raw value to a formatted string.
func formatValue(raw interface{}, dataType DataType) string {
	if raw == nil {
		return ""
	}

	switch dataType {
	case TypeFloat:
		switch f := raw.(type) {
		case float64:
			return strconv.FormatFloat(f, 'g', -1, 64)
		case float32:
			return strconv.FormatFloat(float64(f), 'g', -1, 32)
		}
	case TypeBool:
		if b, ok := raw.(bool); ok {
			return strconv.FormatBool(b)
		}
	case TypeDate:
		if t, ok := raw.(time.Time); ok {
			return t.Format("2006-01-02")
		}
	case TypeTimestamp:
		if t, ok := raw.(time.Time); ok {
			return t.Format(time.RFC3339)
		}
	}

	return fmt.Sprintf("%v", raw)
}

// numericValue reports the value as a float64 when it is numeric-like:
// a numeric raw value, or a string that parses as a number.
func (v Value) numericValue() (float64, bool) {
	if v.IsNull {
		return 0, false
	}

	switch n := v.Raw.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	}

	f, err := strconv.ParseFloat(strings.TrimSpace(v.Formatted), 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// Metadata holds optional metadata about a data source.
type Metadata map[string]interface{}

// SortDirection specifies the direction of sorting.
type SortDirection int

const (
	// SortNone indicates no sorting.
	SortNone SortDirection = iota
	// SortAscending indicates ascending sort order.
	SortAscending
	// SortDescending indicates descending sort order.
	SortDescending
)

// String returns the string representation of a SortDirection.
func (sd SortDirection) String() string {
	switch sd {
	case SortNone:
		return "None"
	case SortAscending:
		return "Ascending"
	case SortDescending:
		return "Descending"
	default:
		return fmt.Sprintf("Unknown(%d)", sd)
	}
}

// SortState represents the current sorting configuration.
type SortState struct {
	// Key is the accessor of the sorted column ("" if unsorted).
	Key string
	// Direction is the sort direction.
	Direction SortDirection
}

// IsSorted returns true if this state represents an active sort.
func (s SortState) IsSorted() bool {
	return s.Key != "" && s.Direction != SortNone
}
