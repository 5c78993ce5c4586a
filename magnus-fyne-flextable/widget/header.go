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

package widget

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	ttwidget "github.com/dweymouth/fyne-tooltip/widget"

	"github.com/magpierre/fyne-flextable/flextable"
)

// resizeHandleWidth is the grab area between columns, in device independent
// pixels.
const resizeHandleWidth float32 = 8

// headerCell is a tappable column header with a tooltip and an inline sort
// indicator.
type headerCell struct {
	ttwidget.ToolTipWidget

	label    *widget.Label
	onTapped func()
}

func newHeaderCell(view flextable.HeaderView, onTapped func()) *headerCell {
	h := &headerCell{onTapped: onTapped}
	h.label = widget.NewLabelWithStyle(headerText(view), fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	h.label.Truncation = fyne.TextTruncateEllipsis
	h.SetToolTip(view.Label)
	h.ExtendBaseWidget(h)
	return h
}

func (h *headerCell) Tapped(_ *fyne.PointEvent) {
	if h.onTapped != nil {
		h.onTapped()
	}
}

func (h *headerCell) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(h.label)
}

// headerText appends the sort indicator to the column label. The model
// already blanks the direction when indicators should be hidden.
func headerText(view flextable.HeaderView) string {
	switch view.Direction {
	case flextable.SortAscending:
		return view.Label + " ↑"
	case flextable.SortDescending:
		return view.Label + " ↓"
	default:
		return view.Label
	}
}

// resizeHandle is the draggable divider at the right edge of a header cell.
// Drag deltas are accumulated and fed to the model's resize session so the
// column tracks the pointer from where the drag started.
type resizeHandle struct {
	widget.BaseWidget

	table    *DataTable
	accessor string

	dragging bool
	totalDX  float32
}

func newResizeHandle(table *DataTable, accessor string) *resizeHandle {
	h := &resizeHandle{table: table, accessor: accessor}
	h.ExtendBaseWidget(h)
	return h
}

func (h *resizeHandle) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(widget.NewSeparator())
}

func (h *resizeHandle) MinSize() fyne.Size {
	return fyne.NewSize(resizeHandleWidth, h.BaseWidget.MinSize().Height)
}

func (h *resizeHandle) Cursor() desktop.Cursor {
	return desktop.HResizeCursor
}

func (h *resizeHandle) Dragged(e *fyne.DragEvent) {
	if !h.dragging {
		h.dragging = true
		h.totalDX = 0
		h.table.model.BeginResize(h.accessor, 0)
	}
	h.totalDX += e.Dragged.DX
	h.table.model.DragResize(h.totalDX)
	h.table.refreshLayout()
}

func (h *resizeHandle) DragEnd() {
	if !h.dragging {
		return
	}
	h.dragging = false
	h.table.model.EndResize()
}
