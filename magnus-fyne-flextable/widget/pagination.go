package widget

import (
	"fmt"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	ttwidget "github.com/dweymouth/fyne-tooltip/widget"
)

// paginationBar shows the previous/next controls, the current page, and the
// optional page size selector. The whole bar hides itself while pagination
// is inactive.
type paginationBar struct {
	widget.BaseWidget

	table *DataTable

	prevBtn   *ttwidget.Button
	nextBtn   *ttwidget.Button
	pageLabel *widget.Label
	sizeSel   *widget.Select
	content   *fyne.Container
}

func newPaginationBar(table *DataTable) *paginationBar {
	b := &paginationBar{table: table}

	b.prevBtn = ttwidget.NewButtonWithIcon("", theme.NavigateBackIcon(), func() {
		table.model.PrevPage()
		table.Refresh()
	})
	b.prevBtn.SetToolTip("Previous page")

	b.nextBtn = ttwidget.NewButtonWithIcon("", theme.NavigateNextIcon(), func() {
		table.model.NextPage()
		table.Refresh()
	})
	b.nextBtn.SetToolTip("Next page")

	b.pageLabel = widget.NewLabel("1/1")
	b.pageLabel.Alignment = fyne.TextAlignCenter

	objects := []fyne.CanvasObject{b.prevBtn, b.pageLabel, b.nextBtn}
	if table.cfg.OnRowsPerPageChange != nil {
		options := make([]string, 0, len(table.model.RowsPerPageOptions()))
		for _, n := range table.model.RowsPerPageOptions() {
			options = append(options, strconv.Itoa(n))
		}
		b.sizeSel = widget.NewSelect(options, func(selected string) {
			n, err := strconv.Atoi(selected)
			if err != nil {
				return
			}
			table.model.SetRowsPerPage(n)
			table.cfg.OnRowsPerPageChange(n)
			table.Refresh()
		})
		// Assigning the field directly avoids firing the callback during
		// construction.
		b.sizeSel.Selected = strconv.Itoa(table.model.RowsPerPage())
		objects = append(objects, widget.NewLabel("Rows:"), b.sizeSel)
	}

	b.content = container.NewHBox(objects...)
	b.ExtendBaseWidget(b)
	b.refresh()
	return b
}

func (b *paginationBar) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(b.content)
}

// refresh syncs the controls with the model's page info.
func (b *paginationBar) refresh() {
	info := b.table.model.PageInfo()
	if !info.Active {
		b.Hide()
		return
	}
	b.Show()

	b.pageLabel.SetText(fmt.Sprintf("%d/%d", info.Page, info.TotalPages))

	if info.Page > 1 {
		b.prevBtn.Enable()
	} else {
		b.prevBtn.Disable()
	}
	if info.Page < info.TotalPages {
		b.nextBtn.Enable()
	} else {
		b.nextBtn.Disable()
	}
}
