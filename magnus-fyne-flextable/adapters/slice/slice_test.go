package slice

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magpierre/fyne-flextable/flextable"
)

func TestNewFromMaps(t *testing.T) {
	records := []map[string]interface{}{
		{"name": "A", "size": 1, flextable.FullRowField: true},
		{"name": "B", "modified": "yesterday"},
	}

	src, err := NewFromMaps(records)
	require.NoError(t, err)

	cols := src.Columns()
	require.Len(t, cols, 3, "marker fields do not become columns")
	assert.Equal(t, "modified", cols[0].Accessor)
	assert.Equal(t, "name", cols[1].Accessor)
	assert.Equal(t, "size", cols[2].Accessor)
	for _, col := range cols {
		assert.True(t, col.Sortable, "derived columns are sortable")
	}

	assert.Equal(t, 2, src.RowCount())
	assert.Equal(t, 3, src.ColumnCount())
}

func TestNewFromMapsEmpty(t *testing.T) {
	_, err := NewFromMaps(nil)
	assert.ErrorIs(t, err, flextable.ErrEmptyData)
}

func TestNewCopiesInput(t *testing.T) {
	columns := []flextable.Column{{Accessor: "a", Label: "A"}}
	records := []interface{}{map[string]interface{}{"a": 1}}

	src := New(columns, records, nil)

	columns[0].Label = "mutated"
	assert.Equal(t, "A", src.Columns()[0].Label)
	assert.Equal(t, flextable.Metadata{}, src.Metadata())
}

func TestSliceSourceFeedsModel(t *testing.T) {
	src, err := NewFromMaps([]map[string]interface{}{
		{"id": 2, "name": "B"},
		{"id": 1, "name": "A"},
	})
	require.NoError(t, err)

	m, err := flextable.NewTableModel(src, flextable.DefaultConfig())
	require.NoError(t, err)
	m.SortBy("id")

	rows := m.VisibleRows()
	require.Len(t, rows, 2)
	assert.Equal(t, "A", rows[0].Row.Fields["name"].Formatted)
}
