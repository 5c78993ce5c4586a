package widget

import (
	"fmt"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magpierre/fyne-flextable/flextable"
)

func testColumns() []flextable.Column {
	return []flextable.Column{
		{Accessor: "id", Label: "ID", Sortable: true},
		{Accessor: "name", Label: "Name", Sortable: true},
	}
}

func testRecords(n int) []interface{} {
	records := make([]interface{}, 0, n)
	for i := 1; i <= n; i++ {
		records = append(records, map[string]interface{}{
			"id":   i,
			"name": fmt.Sprintf("row %03d", i),
		})
	}
	return records
}

// renderedTable builds a table inside a test window so CreateRenderer runs.
func renderedTable(t *testing.T, model *flextable.TableModel, cfg Config) (*DataTable, fyne.Window) {
	t.Helper()
	test.NewTempApp(t)
	dt := NewDataTableWithConfig(model, cfg)
	w := test.NewWindow(dt)
	t.Cleanup(w.Close)
	w.Resize(fyne.NewSize(900, 600))
	require.NotNil(t, dt.header, "renderer should have been created")
	return dt, w
}

func headerCellAt(t *testing.T, dt *DataTable, i int) *headerCell {
	t.Helper()
	composite, ok := dt.header.Objects[i].(*fyne.Container)
	require.True(t, ok)
	cell, ok := composite.Objects[0].(*headerCell)
	require.True(t, ok)
	return cell
}

func resizeHandleAt(t *testing.T, dt *DataTable, i int) *resizeHandle {
	t.Helper()
	composite, ok := dt.header.Objects[i].(*fyne.Container)
	require.True(t, ok)
	handle, ok := composite.Objects[1].(*resizeHandle)
	require.True(t, ok)
	return handle
}

func TestDataTableEmptyState(t *testing.T) {
	model := flextable.NewTableModelFromData(testColumns(), nil, flextable.DefaultConfig())
	dt, _ := renderedTable(t, model, DefaultConfig())

	assert.Empty(t, dt.body.Objects)
	assert.True(t, dt.emptyLabel.Visible())

	model.SetRows(testRecords(2))
	dt.Refresh()
	assert.Len(t, dt.body.Objects, 2)
	assert.False(t, dt.emptyLabel.Visible())
}

func TestDataTableNilModel(t *testing.T) {
	test.NewTempApp(t)
	dt := NewDataTable(nil)
	w := test.NewWindow(dt)
	t.Cleanup(w.Close)

	require.NotNil(t, dt.Model())
	assert.True(t, dt.emptyLabel.Visible())
}

func TestDataTableHeaderTapSorts(t *testing.T) {
	model := flextable.NewTableModelFromData(testColumns(), []interface{}{
		map[string]interface{}{"id": 2, "name": "B"},
		map[string]interface{}{"id": 1, "name": "A"},
	}, flextable.DefaultConfig())
	dt, _ := renderedTable(t, model, DefaultConfig())

	test.Tap(headerCellAt(t, dt, 1))
	assert.Equal(t, flextable.SortState{Key: "name", Direction: flextable.SortAscending}, model.GetSortState())
	assert.Contains(t, headerCellAt(t, dt, 1).label.Text, "↑")

	test.Tap(headerCellAt(t, dt, 1))
	assert.Equal(t, flextable.SortDescending, model.GetSortState().Direction)
	assert.Contains(t, headerCellAt(t, dt, 1).label.Text, "↓")
	assert.NotContains(t, headerCellAt(t, dt, 0).label.Text, "↓")
}

func TestDataTablePaginationControls(t *testing.T) {
	cfg := flextable.DefaultConfig()
	cfg.ShouldPaginate = true
	model := flextable.NewTableModelFromData(testColumns(), testRecords(125), cfg)
	dt, _ := renderedTable(t, model, DefaultConfig())

	require.True(t, dt.pager.Visible())
	assert.Equal(t, "1/3", dt.pager.pageLabel.Text)
	assert.True(t, dt.pager.prevBtn.Disabled())
	assert.False(t, dt.pager.nextBtn.Disabled())
	assert.Len(t, dt.body.Objects, 60)

	test.Tap(dt.pager.nextBtn)
	assert.Equal(t, "2/3", dt.pager.pageLabel.Text)
	assert.False(t, dt.pager.prevBtn.Disabled())

	test.Tap(dt.pager.nextBtn)
	assert.Equal(t, "3/3", dt.pager.pageLabel.Text)
	assert.True(t, dt.pager.nextBtn.Disabled())
	assert.Len(t, dt.body.Objects, 5)

	test.Tap(dt.pager.prevBtn)
	assert.Equal(t, "2/3", dt.pager.pageLabel.Text)
}

func TestDataTablePaginationHiddenWhenInactive(t *testing.T) {
	cfg := flextable.DefaultConfig()
	cfg.ShouldPaginate = true
	model := flextable.NewTableModelFromData(testColumns(), testRecords(10), cfg)
	dt, _ := renderedTable(t, model, DefaultConfig())

	assert.False(t, dt.pager.Visible())
	assert.Len(t, dt.body.Objects, 10)
}

func TestDataTablePageSizeSelector(t *testing.T) {
	cfg := flextable.DefaultConfig()
	cfg.ShouldPaginate = true
	model := flextable.NewTableModelFromData(testColumns(), testRecords(125), cfg)

	var reported int
	wcfg := DefaultConfig()
	wcfg.OnRowsPerPageChange = func(n int) { reported = n }
	dt, _ := renderedTable(t, model, wcfg)

	require.NotNil(t, dt.pager.sizeSel)
	assert.Equal(t, []string{"20", "50", "100"}, dt.pager.sizeSel.Options)
	assert.Equal(t, "60", dt.pager.sizeSel.Selected)

	dt.pager.sizeSel.SetSelected("20")
	assert.Equal(t, 20, reported)
	assert.Equal(t, 20, model.RowsPerPage())
	assert.Equal(t, "1/7", dt.pager.pageLabel.Text)
	assert.Len(t, dt.body.Objects, 20)
}

func TestDataTableNoPageSizeSelectorWithoutCallback(t *testing.T) {
	cfg := flextable.DefaultConfig()
	cfg.ShouldPaginate = true
	model := flextable.NewTableModelFromData(testColumns(), testRecords(125), cfg)
	dt, _ := renderedTable(t, model, DefaultConfig())

	assert.Nil(t, dt.pager.sizeSel)
}

func TestDataTableRowTapAndCopy(t *testing.T) {
	model := flextable.NewTableModelFromData(testColumns(), []interface{}{
		map[string]interface{}{"id": 1, "name": "A"},
		map[string]interface{}{"id": 2, "name": "B"},
	}, flextable.DefaultConfig())

	var gotIndex int
	var gotRow flextable.Row
	wcfg := DefaultConfig()
	wcfg.OnRowTapped = func(index int, row flextable.Row) {
		gotIndex = index
		gotRow = row
	}
	dt, w := renderedTable(t, model, wcfg)
	dt.SetWindow(w)

	row, ok := dt.body.Objects[1].(*tableRow)
	require.True(t, ok)
	test.Tap(row)

	assert.Equal(t, 1, gotIndex)
	assert.Equal(t, "2", gotRow.ID)

	dt.copySelectedRow()
	assert.Equal(t, "2\tB", w.Clipboard().Content())
}

func TestDataTableExpandedRow(t *testing.T) {
	model := flextable.NewTableModelFromData(testColumns(), testRecords(3), flextable.DefaultConfig())

	wcfg := DefaultConfig()
	wcfg.RenderExpandedRow = func(row flextable.Row) fyne.CanvasObject {
		return widget.NewLabel("details for " + row.ID)
	}
	dt, _ := renderedTable(t, model, wcfg)
	require.Len(t, dt.body.Objects, 3)

	dt.SetExpandedRow("2")
	require.Len(t, dt.body.Objects, 4)
	detail, ok := dt.body.Objects[2].(*widget.Label)
	require.True(t, ok)
	assert.Equal(t, "details for 2", detail.Text)

	dt.SetExpandedRow("")
	assert.Len(t, dt.body.Objects, 3)
}

func TestDataTableFullRowRender(t *testing.T) {
	records := []interface{}{
		map[string]interface{}{"id": 1, "name": "A"},
		map[string]interface{}{"id": 2, "name": "spanning", "_fullRow": true},
	}
	model := flextable.NewTableModelFromData(testColumns(), records, flextable.DefaultConfig())

	wcfg := DefaultConfig()
	wcfg.RenderFullRow = func(row flextable.Row) fyne.CanvasObject {
		return widget.NewLabel("full " + row.ID)
	}
	dt, _ := renderedTable(t, model, wcfg)

	first, ok := dt.body.Objects[0].(*tableRow)
	require.True(t, ok)
	_, isContainer := first.content.(*fyne.Container)
	assert.True(t, isContainer, "regular rows render per-column cells")

	second, ok := dt.body.Objects[1].(*tableRow)
	require.True(t, ok)
	full, ok := second.content.(*widget.Label)
	require.True(t, ok)
	assert.Equal(t, "full 2", full.Text)
}

func TestDataTableCompactResize(t *testing.T) {
	cfg := flextable.DefaultConfig()
	cfg.MobileAutoSizeOnHeaderTap = true
	model := flextable.NewTableModelFromData(testColumns(), testRecords(3), cfg)
	dt, _ := renderedTable(t, model, DefaultConfig())

	test.Tap(headerCellAt(t, dt, 0))
	require.Contains(t, headerCellAt(t, dt, 0).label.Text, "↑")

	dt.Resize(fyne.NewSize(500, 400))
	require.True(t, model.Compact())
	assert.NotContains(t, headerCellAt(t, dt, 0).label.Text, "↑")

	test.Tap(headerCellAt(t, dt, 1))
	assert.Equal(t, "id", model.GetSortState().Key, "compact tap must not change the sort")
	assert.True(t, model.ColumnExpanded("name"))

	dt.Resize(fyne.NewSize(900, 400))
	require.False(t, model.Compact())
	assert.Contains(t, headerCellAt(t, dt, 0).label.Text, "↑")
}

func TestDataTableDragResize(t *testing.T) {
	model := flextable.NewTableModelFromData(testColumns(), testRecords(3), flextable.DefaultConfig())
	dt, _ := renderedTable(t, model, DefaultConfig())

	start := model.ColumnWidth("name")
	handle := resizeHandleAt(t, dt, 1)

	handle.Dragged(&fyne.DragEvent{Dragged: fyne.Delta{DX: 25}})
	handle.Dragged(&fyne.DragEvent{Dragged: fyne.Delta{DX: 15}})
	handle.DragEnd()
	assert.Equal(t, start+40, model.ColumnWidth("name"))

	handle.Dragged(&fyne.DragEvent{Dragged: fyne.Delta{DX: -10000}})
	handle.DragEnd()
	assert.Equal(t, float32(50), model.ColumnWidth("name"), "drag clamps at the width floor")
}

func TestDataTableAutoSizeColumns(t *testing.T) {
	columns := []flextable.Column{
		{Accessor: "id", Label: "ID", Width: 60},
		{Accessor: "name", Label: "Name"},
	}
	records := []interface{}{
		map[string]interface{}{"id": 1, "name": "a market maker of considerable length"},
	}
	model := flextable.NewTableModelFromData(columns, records, flextable.DefaultConfig())

	wcfg := DefaultConfig()
	wcfg.AutoSizeColumns = true
	dt, _ := renderedTable(t, model, wcfg)
	_ = dt

	assert.Equal(t, float32(60), model.ColumnWidth("id"), "declared widths are kept")
	assert.Greater(t, model.ColumnWidth("name"), float32(50), "unsized columns grow to fit content")
}

func TestDataTableStatusText(t *testing.T) {
	model := flextable.NewTableModelFromData(testColumns(), testRecords(4), flextable.DefaultConfig())
	dt, _ := renderedTable(t, model, DefaultConfig())

	assert.Equal(t, "2 columns x 4 rows", dt.status.Text)

	test.Tap(headerCellAt(t, dt, 1))
	assert.Equal(t, "2 columns x 4 rows | Sorted: name ↑", dt.status.Text)
}

func TestWrapWithTooltips(t *testing.T) {
	test.NewTempApp(t)
	content := widget.NewLabel("x")
	w := test.NewWindow(nil)
	t.Cleanup(w.Close)

	wrapped := WrapWithTooltips(content, w.Canvas())
	require.NotNil(t, wrapped)
	assert.NotEqual(t, fyne.CanvasObject(content), wrapped)
}

func TestPreferencesStore(t *testing.T) {
	app := test.NewTempApp(t)
	store := NewPreferencesStore(app.Preferences())

	_, err := store.Get("missing")
	require.ErrorIs(t, err, flextable.ErrNoStoredValue)

	require.NoError(t, store.Set("widths", `{"a":10}`))
	value, err := store.Get("widths")
	require.NoError(t, err)
	assert.Equal(t, `{"a":10}`, value)
}
