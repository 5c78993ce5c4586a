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

import "fmt"

// TableModel owns the full state of one table: column definitions, raw and
// normalized rows, sort and pagination state, the column width map, the
// expanded-column set and the compact-mode flag. All methods must be called
// from a single goroutine (for Fyne applications, the UI event flow); the
// model does no locking of its own.
//
// Derived state flows one way: raw records are normalized into rows, rows
// are sorted, the sorted sequence is paginated, and the current page is
// rendered through the column set. User events (header taps, drags, page
// navigation) mutate the inputs of that pipeline and the affected stages are
// recomputed. Caller-supplied slices are never modified.
type TableModel struct {
	cfg Config

	columns []Column
	raw     []interface{}
	meta    Metadata

	rows   []Row // normalized, dataset order
	sorted []Row // rows under the current sort

	sort SortState
	page int

	widths   map[string]float32
	expanded map[string]bool
	resize   *resizeSession

	viewportWidth float32
	measurer      TextMeasurer
}

// NewTableModel builds a model from a data source. The source is read once;
// use SetSource or SetData to pick up later changes.
func NewTableModel(src Source, cfg Config) (*TableModel, error) {
	if src == nil {
		return nil, ErrNoSource
	}
	m := newModel(cfg)
	m.setData(src.Columns(), src.Records(), src.Metadata())
	return m, nil
}

// NewTableModelFromData builds a model directly from column definitions and
// raw records.
func NewTableModelFromData(columns []Column, records []interface{}, cfg Config) *TableModel {
	m := newModel(cfg)
	m.setData(columns, records, nil)
	return m
}

func newModel(cfg Config) *TableModel {
	cfg = cfg.normalize()
	sort := cfg.InitialSort
	if sort.Key != "" && sort.Direction == SortNone {
		sort.Direction = SortAscending
	}
	return &TableModel{
		cfg:      cfg,
		sort:     sort,
		page:     1,
		widths:   make(map[string]float32),
		expanded: make(map[string]bool),
		measurer: defaultMeasurer(),
	}
}

// setData replaces columns, records and metadata, then rebuilds all derived
// state: the width map is reseeded, the expanded-column set cleared, rows
// renormalized and resorted. Sort and pagination state survive, except that
// a now out-of-range page resets to 1.
func (m *TableModel) setData(columns []Column, records []interface{}, meta Metadata) {
	m.columns = append([]Column(nil), columns...)
	m.raw = append([]interface{}(nil), records...)
	m.meta = meta
	m.seedWidths()
	m.renormalize()
}

// SetData replaces columns and records in one step, as when a new dataset is
// loaded.
func (m *TableModel) SetData(columns []Column, records []interface{}, meta Metadata) {
	m.setData(columns, records, meta)
}

// SetSource re-reads a data source, replacing columns, records and metadata.
func (m *TableModel) SetSource(src Source) error {
	if src == nil {
		return ErrNoSource
	}
	m.setData(src.Columns(), src.Records(), src.Metadata())
	return nil
}

// SetRows replaces the raw records while keeping the current column set.
// Column widths, expanded columns, sort and pagination are preserved; the
// page resets to 1 only when it falls beyond the new last page.
func (m *TableModel) SetRows(records []interface{}) {
	m.raw = append([]interface{}(nil), records...)
	m.renormalize()
}

// SetColumns replaces the column definitions. The width map is reseeded,
// merging persisted preferences over declared widths, and the
// expanded-column set is cleared. Sort and pagination state survive.
func (m *TableModel) SetColumns(columns []Column) {
	m.columns = append([]Column(nil), columns...)
	m.seedWidths()
	m.renormalize()
}

// renormalize rebuilds normalized rows from the raw records and re-derives
// everything downstream.
func (m *TableModel) renormalize() {
	m.rows = NormalizeRows(m.raw, m.columns)
	m.resort()
}

// resort re-derives the sorted sequence and corrects the current page
// against the new total.
func (m *TableModel) resort() {
	m.sorted = SortRows(m.rows, m.sort)
	m.normalizePage()
}

// normalizePage is the explicit out-of-range correction: a page beyond the
// last page resets to 1.
func (m *TableModel) normalizePage() {
	if m.page < 1 || m.page > TotalPages(len(m.sorted), m.cfg.RowsPerPage) {
		m.page = 1
	}
}

// SortBy applies a header-click sort action to a column. Clicking an
// already-ascending column toggles to descending; any other click sets
// ascending. Non-sortable and unknown columns are no-ops. Every accepted
// action resets pagination to the first page.
func (m *TableModel) SortBy(accessor string) {
	col, ok := m.columnByAccessor(accessor)
	if !ok || !col.Sortable {
		return
	}
	if m.sort.Key == accessor && m.sort.Direction == SortAscending {
		m.sort.Direction = SortDescending
	} else {
		m.sort = SortState{Key: accessor, Direction: SortAscending}
	}
	m.page = 1
	m.resort()
}

// HeaderTap handles a header click. In compact mode with
// MobileAutoSizeOnHeaderTap enabled the tap toggles column auto-sizing and
// never sorts; otherwise it sorts per SortBy.
func (m *TableModel) HeaderTap(accessor string) {
	if m.Compact() && m.cfg.MobileAutoSizeOnHeaderTap {
		m.ToggleColumnExpand(accessor)
		return
	}
	m.SortBy(accessor)
}

// GetSortState returns the current sort state.
func (m *TableModel) GetSortState() SortState {
	return m.sort
}

// SetViewportWidth records the viewport width and reports whether the
// compact-mode state changed as a result. A zero width means "not yet laid
// out" and is never compact.
func (m *TableModel) SetViewportWidth(width float32) bool {
	was := m.Compact()
	m.viewportWidth = width
	return m.Compact() != was
}

// Compact reports whether the viewport is narrower than the configured
// breakpoint.
func (m *TableModel) Compact() bool {
	return m.viewportWidth > 0 && m.viewportWidth < m.cfg.MobileBreakpoint
}

// SetPage requests a page by number. In-range requests move to that page;
// out-of-range requests reset to the first page.
func (m *TableModel) SetPage(page int) {
	if page < 1 || page > TotalPages(len(m.sorted), m.cfg.RowsPerPage) {
		m.page = 1
		return
	}
	m.page = page
}

// NextPage advances one page. At the last page it is a no-op.
func (m *TableModel) NextPage() {
	if m.page < TotalPages(len(m.sorted), m.cfg.RowsPerPage) {
		m.page++
	}
}

// PrevPage goes back one page. At the first page it is a no-op.
func (m *TableModel) PrevPage() {
	if m.page > 1 {
		m.page--
	}
}

// SetRowsPerPage changes the page size and resets to the first page.
// Non-positive sizes are ignored.
func (m *TableModel) SetRowsPerPage(size int) {
	if size <= 0 {
		return
	}
	m.cfg.RowsPerPage = size
	m.page = 1
}

// RowsPerPage returns the current page size.
func (m *TableModel) RowsPerPage() int {
	return m.cfg.RowsPerPage
}

// RowsPerPageOptions returns the configured page-size choices.
func (m *TableModel) RowsPerPageOptions() []int {
	return append([]int(nil), m.cfg.RowsPerPageOptions...)
}

// PageInfo returns the pagination summary for the current view.
func (m *TableModel) PageInfo() PageInfo {
	return PageInfo{
		Page:       m.page,
		TotalPages: TotalPages(len(m.sorted), m.cfg.RowsPerPage),
		TotalRows:  len(m.sorted),
		Active:     EffectivePagination(len(m.sorted), m.cfg.RowsPerPage, m.cfg.ShouldPaginate),
	}
}

// Headers returns the render-ready header list in column order. The sort
// indicator is suppressed in compact tap-to-expand mode, where header taps
// no longer sort.
func (m *TableModel) Headers() []HeaderView {
	hideSort := m.Compact() && m.cfg.MobileAutoSizeOnHeaderTap
	headers := make([]HeaderView, len(m.columns))
	for i, col := range m.columns {
		h := HeaderView{
			Accessor: col.Accessor,
			Label:    col.Label,
			Sortable: col.Sortable,
			Width:    m.ColumnWidth(col.Accessor),
			Expanded: m.expanded[col.Accessor],
		}
		if !hideSort && m.sort.Key == col.Accessor {
			h.Direction = m.sort.Direction
		}
		headers[i] = h
	}
	return headers
}

// visibleRows returns the rows of the current page.
func (m *TableModel) visibleRows() []Row {
	return PaginateRows(m.sorted, m.page, m.cfg.RowsPerPage, m.cfg.ShouldPaginate)
}

// VisibleRows returns the current page as render-ready rows, with one
// rendered cell per column.
func (m *TableModel) VisibleRows() []RowView {
	page := m.visibleRows()
	rows := make([]RowView, len(page))
	for i, row := range page {
		rows[i] = m.rowView(row)
	}
	return rows
}

// VisibleRow returns one row of the current page by position.
func (m *TableModel) VisibleRow(i int) (RowView, error) {
	page := m.visibleRows()
	if i < 0 || i >= len(page) {
		return RowView{}, fmt.Errorf("%w: %d", ErrInvalidRow, i)
	}
	return m.rowView(page[i]), nil
}

// VisibleCell returns the cell value at a current-page row position and a
// column accessor.
func (m *TableModel) VisibleCell(i int, accessor string) (Value, error) {
	page := m.visibleRows()
	if i < 0 || i >= len(page) {
		return Value{}, fmt.Errorf("%w: %d", ErrInvalidRow, i)
	}
	col, ok := m.columnByAccessor(accessor)
	if !ok {
		return Value{}, fmt.Errorf("%w: %s", ErrColumnNotFound, accessor)
	}
	return m.cellValue(page[i], col), nil
}

// rowView renders one row through the column set.
func (m *TableModel) rowView(row Row) RowView {
	cells := make([]string, len(m.columns))
	for i, col := range m.columns {
		cells[i] = m.renderCell(row, col)
	}
	return RowView{Row: row, Cells: cells}
}

// cellValue resolves the value a column shows for a row. The ordinal column
// carries the row's 1-based index; fields absent from the row default to an
// empty string.
func (m *TableModel) cellValue(row Row, col Column) Value {
	if col.Accessor == OrdinalAccessor {
		return NewValue(row.Index, TypeInt)
	}
	if v, ok := row.Fields[col.Accessor]; ok {
		return v
	}
	return NewValue("", TypeString)
}

// renderCell produces the display text for one cell, applying the column's
// renderer when present.
func (m *TableModel) renderCell(row Row, col Column) string {
	value := m.cellValue(row, col)
	if col.Renderer != nil {
		return col.Renderer(row, value)
	}
	return value.Formatted
}

// SortedRows returns a copy of the full sorted sequence, ignoring
// pagination. Exports iterate over it.
func (m *TableModel) SortedRows() []Row {
	return append([]Row(nil), m.sorted...)
}

// Columns returns a copy of the current column definitions.
func (m *TableModel) Columns() []Column {
	return append([]Column(nil), m.columns...)
}

// Metadata returns the source metadata captured at load time.
func (m *TableModel) Metadata() Metadata {
	return m.meta
}

// OriginalRowCount returns the number of raw records supplied, counting
// entries dropped during normalization.
func (m *TableModel) OriginalRowCount() int {
	return len(m.raw)
}

// VisibleRowCount returns the number of rows on the current page.
func (m *TableModel) VisibleRowCount() int {
	return len(m.visibleRows())
}

// SetTextMeasurer replaces the text measurer used for auto-sizing. Passing
// nil restores the fallback measurer.
func (m *TableModel) SetTextMeasurer(tm TextMeasurer) {
	if tm == nil {
		m.measurer = defaultMeasurer()
		return
	}
	m.measurer = tm
}

// columnByAccessor finds a column definition by accessor.
func (m *TableModel) columnByAccessor(accessor string) (Column, bool) {
	for _, col := range m.columns {
		if col.Accessor == accessor {
			return col, true
		}
	}
	return Column{}, false
}
