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

// Package widget renders a flextable model as a Fyne widget with sortable
// headers, draggable column dividers, pagination controls and tooltips.
package widget

import (
	"fmt"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"github.com/magpierre/fyne-flextable/flextable"
)

// DataTable is the table widget. All state lives in the model; the widget
// rebuilds its header and visible rows from the model's views whenever it
// refreshes.
type DataTable struct {
	widget.BaseWidget

	model *flextable.TableModel
	cfg   Config
	win   fyne.Window

	header     *fyne.Container
	body       *fyne.Container
	emptyLabel *widget.Label
	status     *widget.Label
	pager      *paginationBar

	selectedRow   int
	expandedRowID string
}

// NewDataTable creates a table with the default configuration.
func NewDataTable(model *flextable.TableModel) *DataTable {
	return NewDataTableWithConfig(model, DefaultConfig())
}

// NewDataTableWithConfig creates a table for the given model. A nil model is
// replaced with an empty one so the widget renders its empty state.
func NewDataTableWithConfig(model *flextable.TableModel, cfg Config) *DataTable {
	if model == nil {
		model = flextable.NewTableModelFromData(nil, nil, flextable.DefaultConfig())
	}
	t := &DataTable{
		model:       model,
		cfg:         cfg,
		selectedRow: -1,
	}
	t.ExtendBaseWidget(t)

	model.SetTextMeasurer(canvasMeasurer{})
	if cfg.AutoSizeColumns {
		for _, col := range model.Columns() {
			if !model.HasColumnWidth(col.Accessor) {
				model.AutoSizeColumn(col.Accessor)
			}
		}
	}
	return t
}

// Model returns the table's model for direct state access.
func (t *DataTable) Model() *flextable.TableModel {
	return t.model
}

// SetWindow attaches the window used for clipboard access and registers the
// copy-row shortcut (Ctrl+C, Cmd+C on macOS) on its canvas.
func (t *DataTable) SetWindow(w fyne.Window) {
	t.win = w
	if w == nil {
		return
	}
	copyRow := &desktop.CustomShortcut{KeyName: fyne.KeyC, Modifier: fyne.KeyModifierShortcutDefault}
	w.Canvas().AddShortcut(copyRow, func(fyne.Shortcut) {
		t.copySelectedRow()
	})
}

// SetOnRowTapped replaces the row tap callback after construction.
func (t *DataTable) SetOnRowTapped(callback func(index int, row flextable.Row)) {
	t.cfg.OnRowTapped = callback
}

// SetExpandedRow shows the detail view under the row with the given id. An
// empty id collapses any open detail view. Without a RenderExpandedRow in
// the configuration this is a no-op.
func (t *DataTable) SetExpandedRow(rowID string) {
	if t.expandedRowID == rowID {
		return
	}
	t.expandedRowID = rowID
	t.Refresh()
}

// ExpandedRow returns the id of the currently expanded row, or "".
func (t *DataTable) ExpandedRow() string {
	return t.expandedRowID
}

func (t *DataTable) CreateRenderer() fyne.WidgetRenderer {
	t.header = container.New(newColumnLayout(t.model, 0))
	t.body = container.NewVBox()

	t.emptyLabel = widget.NewLabel("No data to display.")
	t.emptyLabel.Alignment = fyne.TextAlignCenter
	t.emptyLabel.TextStyle = fyne.TextStyle{Italic: true}

	t.status = widget.NewLabel("")
	t.status.TextStyle = fyne.TextStyle{Italic: true}
	if !t.cfg.ShowStatusBar {
		t.status.Hide()
	}

	t.pager = newPaginationBar(t)

	bodyArea := container.NewStack(t.body, container.NewCenter(t.emptyLabel))
	var center fyne.CanvasObject = bodyArea
	if t.cfg.Height > 0 {
		scroll := container.NewVScroll(bodyArea)
		scroll.SetMinSize(fyne.NewSize(0, t.cfg.Height))
		center = scroll
	}

	top := container.NewVBox(t.header, widget.NewSeparator())
	bottom := container.NewVBox(
		widget.NewSeparator(),
		container.NewBorder(nil, nil, nil, t.pager, t.status),
	)
	content := container.NewBorder(top, bottom, nil, nil, center)

	t.Refresh()
	return widget.NewSimpleRenderer(content)
}

// Refresh rebuilds the header, the visible rows and the footer from the
// model. Call it after mutating the model directly.
func (t *DataTable) Refresh() {
	if t.header == nil {
		t.BaseWidget.Refresh()
		return
	}
	t.rebuildHeader()
	t.rebuildBody()
	t.status.SetText(t.statusText())
	t.pager.refresh()
	t.BaseWidget.Refresh()
}

// Resize reports the new width to the model; a compact mode transition
// requires rebuilding the header so tap behavior and indicators follow.
func (t *DataTable) Resize(size fyne.Size) {
	t.BaseWidget.Resize(size)
	if t.model.SetViewportWidth(size.Width) {
		t.Refresh()
	}
}

// refreshLayout re-lays out header and body at the model's current column
// widths without rebuilding any widgets. Used on every drag tick.
func (t *DataTable) refreshLayout() {
	if t.header == nil {
		return
	}
	t.header.Refresh()
	t.body.Refresh()
}

func (t *DataTable) rebuildHeader() {
	headers := t.model.Headers()
	cells := make([]fyne.CanvasObject, 0, len(headers))
	for _, view := range headers {
		accessor := view.Accessor
		cell := newHeaderCell(view, func() {
			t.model.HeaderTap(accessor)
			t.Refresh()
		})
		handle := newResizeHandle(t, accessor)
		cells = append(cells, container.NewBorder(nil, nil, nil, handle, cell))
	}
	t.header.Objects = cells
	t.header.Refresh()
}

func (t *DataTable) rebuildBody() {
	views := t.model.VisibleRows()
	rows := make([]fyne.CanvasObject, 0, len(views))
	for i, view := range views {
		index, row := i, view.Row

		var content fyne.CanvasObject
		if row.FullRow && t.cfg.RenderFullRow != nil {
			content = t.cfg.RenderFullRow(row)
		} else {
			cells := make([]fyne.CanvasObject, 0, len(view.Cells))
			for _, text := range view.Cells {
				cells = append(cells, newCellLabel(text))
			}
			content = container.New(newColumnLayout(t.model, t.cfg.RowHeight), cells...)
		}

		rows = append(rows, newTableRow(content, func() {
			t.selectRow(index, row)
		}))

		if t.expandedRowID != "" && row.ID == t.expandedRowID && t.cfg.RenderExpandedRow != nil {
			rows = append(rows, t.cfg.RenderExpandedRow(row))
		}
	}
	t.body.Objects = rows
	t.body.Refresh()

	if len(views) == 0 {
		t.emptyLabel.Show()
	} else {
		t.emptyLabel.Hide()
	}
}

func (t *DataTable) selectRow(index int, row flextable.Row) {
	t.selectedRow = index
	if t.cfg.OnRowTapped != nil {
		t.cfg.OnRowTapped(index, row)
	}
}

// copySelectedRow puts the selected row's cells on the clipboard, tab
// separated.
func (t *DataTable) copySelectedRow() {
	if t.win == nil || t.selectedRow < 0 {
		return
	}
	view, err := t.model.VisibleRow(t.selectedRow)
	if err != nil {
		return
	}
	t.win.Clipboard().SetContent(strings.Join(view.Cells, "\t"))
}

func (t *DataTable) statusText() string {
	info := t.model.PageInfo()
	text := fmt.Sprintf("%d columns x %d rows", len(t.model.Columns()), info.TotalRows)
	if state := t.model.GetSortState(); state.IsSorted() {
		arrow := "↑"
		if state.Direction == flextable.SortDescending {
			arrow = "↓"
		}
		text += fmt.Sprintf(" | Sorted: %s %s", state.Key, arrow)
	}
	return text
}
