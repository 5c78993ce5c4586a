package widget

import (
	"fyne.io/fyne/v2"

	"github.com/magpierre/fyne-flextable/flextable"
)

// Config controls the visual layer of the table. Model behavior such as
// sorting, pagination and width persistence is configured on the
// flextable.Config passed to the model instead.
type Config struct {
	// ShowStatusBar renders a row/sort summary under the table.
	ShowStatusBar bool

	// AutoSizeColumns sizes columns without a declared or stored width to
	// fit their header and current content when the widget is created.
	AutoSizeColumns bool

	// Height fixes the height of the scrolling body. Zero lets the table
	// grow with its content.
	Height float32

	// RowHeight fixes the height of each data row. Zero uses the natural
	// height of the row's cells.
	RowHeight float32

	// OnRowTapped is called when a data row is tapped, with the row's
	// position on the visible page and the underlying row.
	OnRowTapped func(index int, row flextable.Row)

	// OnRowsPerPageChange is called after the user picks a new page size.
	// The page size selector is only shown when this callback is set.
	OnRowsPerPageChange func(rowsPerPage int)

	// RenderExpandedRow builds the detail view shown under the expanded
	// row. Rows are expanded through DataTable.SetExpandedRow.
	RenderExpandedRow func(row flextable.Row) fyne.CanvasObject

	// RenderFullRow builds the content of rows flagged as full-width
	// rows, replacing their per-column cells.
	RenderFullRow func(row flextable.Row) fyne.CanvasObject
}

// DefaultConfig returns the configuration used by NewDataTable.
func DefaultConfig() Config {
	return Config{
		ShowStatusBar: true,
	}
}
