package flextable

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testColumns() []Column {
	return []Column{
		{Accessor: "id", Label: "ID", Sortable: true},
		{Accessor: "name", Label: "Name", Sortable: true},
	}
}

func TestNormalizeRowsDropsNonRecords(t *testing.T) {
	raw := []interface{}{
		map[string]interface{}{"id": 1, "name": "first"},
		nil,
		"not a record",
		42,
		[]interface{}{"also", "not", "a", "record"},
		map[string]interface{}{"id": 2, "name": "second"},
	}

	rows := NormalizeRows(raw, testColumns())

	require.Len(t, rows, 2)
	assert.Equal(t, 1, rows[0].Index)
	assert.Equal(t, 2, rows[1].Index)
	assert.Equal(t, "first", rows[0].Fields["name"].Formatted)
	assert.Equal(t, "second", rows[1].Fields["name"].Formatted)
}

func TestNormalizeRowsIdentity(t *testing.T) {
	t.Run("id field wins", func(t *testing.T) {
		rows := NormalizeRows([]interface{}{
			map[string]interface{}{"id": " 42 ", "name": "padded"},
			map[string]interface{}{"id": 7, "name": "numeric"},
		}, testColumns())

		require.Len(t, rows, 2)
		assert.Equal(t, "42", rows[0].ID)
		assert.Equal(t, "7", rows[1].ID)
	})

	t.Run("fallback fields joined with index suffix", func(t *testing.T) {
		rows := NormalizeRows([]interface{}{
			map[string]interface{}{"key": "a", "name": "b", "title": "c"},
			map[string]interface{}{"id": "   ", "name": "blank-id"},
		}, testColumns())

		require.Len(t, rows, 2)
		assert.Equal(t, "a-b-c-1", rows[0].ID)
		assert.Equal(t, "blank-id-2", rows[1].ID)
	})

	t.Run("bare index when nothing usable", func(t *testing.T) {
		rows := NormalizeRows([]interface{}{
			map[string]interface{}{"name": "x"},
			map[string]interface{}{"foo": "bar"},
		}, testColumns())

		require.Len(t, rows, 2)
		assert.Equal(t, "x-1", rows[0].ID)
		assert.Equal(t, "2", rows[1].ID)
	})

	t.Run("duplicate composites stay unique", func(t *testing.T) {
		rows := NormalizeRows([]interface{}{
			map[string]interface{}{"key": "dup"},
			map[string]interface{}{"key": "dup"},
		}, testColumns())

		require.Len(t, rows, 2)
		assert.Equal(t, "dup-1", rows[0].ID)
		assert.Equal(t, "dup-2", rows[1].ID)
	})

	t.Run("stable across repeated calls", func(t *testing.T) {
		raw := []interface{}{
			map[string]interface{}{"id": 2, "name": "B"},
			map[string]interface{}{"name": "A"},
			map[string]interface{}{"key": "k", "title": "t"},
		}

		first := NormalizeRows(raw, testColumns())
		second := NormalizeRows(raw, testColumns())

		require.Equal(t, len(first), len(second))
		for i := range first {
			assert.Equal(t, first[i].ID, second[i].ID)
		}
	})
}

func TestNormalizeRowsFieldMaterialization(t *testing.T) {
	columns := []Column{
		{Accessor: OrdinalAccessor, Label: "#"},
		{Accessor: MetaAccessor},
		{Accessor: "name", Label: "Name"},
		{Accessor: "missing", Label: "Missing"},
	}
	raw := []interface{}{
		map[string]interface{}{"name": "only name", "#": "sneaky", "_meta": "sneakier"},
	}

	rows := NormalizeRows(raw, columns)

	require.Len(t, rows, 1)
	fields := rows[0].Fields
	assert.NotContains(t, fields, OrdinalAccessor)
	assert.NotContains(t, fields, MetaAccessor)
	assert.Equal(t, "only name", fields["name"].Formatted)

	missing, ok := fields["missing"]
	require.True(t, ok)
	assert.Equal(t, TypeString, missing.Type)
	assert.Equal(t, "", missing.Formatted)

	// The raw record stays reachable for renderers, reserved fields included.
	assert.Equal(t, "sneaky", rows[0].Source["#"])
}

func TestNormalizeRowsValueTyping(t *testing.T) {
	columns := []Column{
		{Accessor: "count"},
		{Accessor: "ratio"},
		{Accessor: "ok"},
		{Accessor: "name"},
	}
	raw := []interface{}{
		map[string]interface{}{"count": 3, "ratio": 0.5, "ok": true, "name": "x"},
	}

	rows := NormalizeRows(raw, columns)

	require.Len(t, rows, 1)
	fields := rows[0].Fields
	assert.Equal(t, TypeInt, fields["count"].Type)
	assert.Equal(t, TypeFloat, fields["ratio"].Type)
	assert.Equal(t, TypeBool, fields["ok"].Type)
	assert.Equal(t, TypeString, fields["name"].Type)
	assert.Equal(t, "0.5", fields["ratio"].Formatted)
	assert.Equal(t, "true", fields["ok"].Formatted)
}

func TestNormalizeRowsFullRowMarker(t *testing.T) {
	raw := []interface{}{
		map[string]interface{}{"name": "plain"},
		map[string]interface{}{"name": "flagged", FullRowField: true},
		map[string]interface{}{"name": "stringy", FullRowField: "yes"},
		map[string]interface{}{"name": "off", FullRowField: "false"},
		map[string]interface{}{"name": "one", FullRowField: 1},
		map[string]interface{}{"name": "zero", FullRowField: 0},
	}

	rows := NormalizeRows(raw, testColumns())

	require.Len(t, rows, 6)
	want := []bool{false, true, true, false, true, false}
	for i, row := range rows {
		assert.Equal(t, want[i], row.FullRow, "row %d (%s)", i, row.Fields["name"].Formatted)
	}
}
