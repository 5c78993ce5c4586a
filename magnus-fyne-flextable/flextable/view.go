package flextable

// HeaderView is the render-ready description of one column header.
type HeaderView struct {
	// Accessor identifies the column for actions (HeaderTap, resizing).
	Accessor string

	// Label is the text to render.
	Label string

	// Sortable reports whether tapping this header may change the sort.
	Sortable bool

	// Width is the resolved column width, after persisted and declared
	// values and the minimum floor have been applied.
	Width float32

	// Direction is the sort direction to indicate on this header, or
	// SortNone when the table is not sorted by this column. It is always
	// SortNone in compact mode with header-tap auto-sizing enabled, since
	// taps then no longer sort.
	Direction SortDirection

	// Expanded reports whether the column is currently auto-sized.
	Expanded bool
}

// RowView is the render-ready description of one visible row.
type RowView struct {
	// Row is the normalized row backing this view.
	Row Row

	// Cells holds one rendered string per column, in column order.
	Cells []string
}

// PageInfo describes the pagination state of the current view.
type PageInfo struct {
	// Page is the current 1-based page number.
	Page int

	// TotalPages is the number of pages at the current page size, at
	// least 1.
	TotalPages int

	// TotalRows is the number of rows after normalization, before
	// pagination.
	TotalRows int

	// Active reports whether pagination is currently in effect. It is
	// false when disabled or when all rows fit on a single page.
	Active bool
}
