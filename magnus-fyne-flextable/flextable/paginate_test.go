package flextable

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// makeRecords builds n records with 1-based ids and a name field.
func makeRecords(n int) []interface{} {
	records := make([]interface{}, n)
	for i := 0; i < n; i++ {
		records[i] = map[string]interface{}{
			"id":   i + 1,
			"name": fmt.Sprintf("row %03d", i+1),
		}
	}
	return records
}

func makeRows(n int) []Row {
	return NormalizeRows(makeRecords(n), testColumns())
}

func TestEffectivePagination(t *testing.T) {
	cases := []struct {
		count   int
		size    int
		enabled bool
		want    bool
	}{
		{125, 60, true, true},
		{10, 60, true, false},
		{60, 60, true, false},
		{61, 60, true, true},
		{125, 60, false, false},
		{125, 0, true, false},
	}
	for _, c := range cases {
		got := EffectivePagination(c.count, c.size, c.enabled)
		assert.Equal(t, c.want, got, "count=%d size=%d enabled=%v", c.count, c.size, c.enabled)
	}
}

func TestTotalPages(t *testing.T) {
	cases := []struct {
		count int
		size  int
		want  int
	}{
		{125, 60, 3},
		{120, 60, 2},
		{1, 60, 1},
		{0, 60, 1},
		{60, 60, 1},
		{61, 60, 2},
		{5, 0, 1},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, TotalPages(c.count, c.size), "count=%d size=%d", c.count, c.size)
	}
}

func TestPaginateRowsCoverage(t *testing.T) {
	rows := makeRows(125)
	total := TotalPages(len(rows), 60)
	require.Equal(t, 3, total)

	var joined []Row
	for page := 1; page <= total; page++ {
		joined = append(joined, PaginateRows(rows, page, 60, true)...)
	}

	require.Len(t, joined, len(rows))
	for i := range rows {
		assert.Equal(t, rows[i].ID, joined[i].ID, "position %d", i)
	}

	assert.Len(t, PaginateRows(rows, 1, 60, true), 60)
	assert.Len(t, PaginateRows(rows, 2, 60, true), 60)
	assert.Len(t, PaginateRows(rows, 3, 60, true), 5)
}

func TestPaginateRowsClampsPage(t *testing.T) {
	rows := makeRows(125)

	last := PaginateRows(rows, 3, 60, true)
	beyond := PaginateRows(rows, 9, 60, true)
	require.Equal(t, len(last), len(beyond))
	assert.Equal(t, last[0].ID, beyond[0].ID)

	first := PaginateRows(rows, 1, 60, true)
	below := PaginateRows(rows, -2, 60, true)
	require.Equal(t, len(first), len(below))
	assert.Equal(t, first[0].ID, below[0].ID)
}

func TestPaginateRowsInactive(t *testing.T) {
	rows := makeRows(10)

	page := PaginateRows(rows, 5, 60, true)
	assert.Len(t, page, 10, "small datasets ignore the page argument")

	disabled := PaginateRows(makeRows(125), 2, 60, false)
	assert.Len(t, disabled, 125, "disabled pagination returns everything")
}
