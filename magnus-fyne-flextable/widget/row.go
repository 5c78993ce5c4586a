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
	"fyne.io/fyne/v2/widget"

	ttwidget "github.com/dweymouth/fyne-tooltip/widget"

	"github.com/magpierre/fyne-flextable/flextable"
)

// cellLabel renders one cell value. The full value is exposed as a tooltip
// since narrow columns truncate the label.
type cellLabel struct {
	ttwidget.ToolTipWidget

	label *widget.Label
}

func newCellLabel(text string) *cellLabel {
	c := &cellLabel{label: widget.NewLabel(text)}
	c.label.Truncation = fyne.TextTruncateEllipsis
	c.SetToolTip(text)
	c.ExtendBaseWidget(c)
	return c
}

func (c *cellLabel) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(c.label)
}

// tableRow makes a whole data row tappable.
type tableRow struct {
	widget.BaseWidget

	content  fyne.CanvasObject
	onTapped func()
}

func newTableRow(content fyne.CanvasObject, onTapped func()) *tableRow {
	r := &tableRow{content: content, onTapped: onTapped}
	r.ExtendBaseWidget(r)
	return r
}

func (r *tableRow) Tapped(_ *fyne.PointEvent) {
	if r.onTapped != nil {
		r.onTapped()
	}
}

func (r *tableRow) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(r.content)
}

// columnLayout places one object per column at the model's resolved column
// widths, so header and body stay aligned and react to resizes together.
// Objects beyond the column count keep their minimum width.
type columnLayout struct {
	model     *flextable.TableModel
	rowHeight float32
}

func newColumnLayout(model *flextable.TableModel, rowHeight float32) *columnLayout {
	return &columnLayout{model: model, rowHeight: rowHeight}
}

func (l *columnLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	headers := l.model.Headers()
	var width, height float32
	for i, obj := range objects {
		if i < len(headers) {
			width += l.model.ColumnWidth(headers[i].Accessor)
		} else {
			width += obj.MinSize().Width
		}
		if h := obj.MinSize().Height; h > height {
			height = h
		}
	}
	if l.rowHeight > 0 {
		height = l.rowHeight
	}
	return fyne.NewSize(width, height)
}

func (l *columnLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	headers := l.model.Headers()
	var x float32
	for i, obj := range objects {
		width := obj.MinSize().Width
		if i < len(headers) {
			width = l.model.ColumnWidth(headers[i].Accessor)
		}
		obj.Resize(fyne.NewSize(width, size.Height))
		obj.Move(fyne.NewPos(x, 0))
		x += width
	}
}
