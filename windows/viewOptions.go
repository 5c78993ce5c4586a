package windows

import (
	"fmt"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/magpierre/fyne-flextable/flextable"
)

// ViewOptions holds the view configuration applied when loading a data file
type ViewOptions struct {
	SelectedColumns []string
	Limit           int
}

// ViewOptionsDialog creates a dialog for choosing columns and a row limit
// before a file is displayed
type ViewOptionsDialog struct {
	dialog       dialog.Dialog
	window       fyne.Window
	columns      []flextable.Column
	columnChecks map[string]*widget.Check
	limitEntry   *widget.Entry
	callback     func(*ViewOptions)
}

// NewViewOptionsDialog creates a new view options dialog
func NewViewOptionsDialog(w fyne.Window, columns []flextable.Column, callback func(*ViewOptions)) *ViewOptionsDialog {
	vod := &ViewOptionsDialog{
		window:       w,
		columns:      columns,
		columnChecks: make(map[string]*widget.Check),
		callback:     callback,
	}
	vod.createDialog()
	return vod
}

func (vod *ViewOptionsDialog) createDialog() {
	// Column selection
	columnSelectLabel := widget.NewLabel("Select Columns:")
	columnSelectLabel.TextStyle = fyne.TextStyle{Bold: true}

	// Create checkboxes for each column
	columnCheckboxes := container.NewVBox()

	// Add "Select All" / "Deselect All" buttons
	selectAllBtn := widget.NewButton("Select All", func() {
		for _, check := range vod.columnChecks {
			check.SetChecked(true)
		}
	})

	deselectAllBtn := widget.NewButton("Deselect All", func() {
		for _, check := range vod.columnChecks {
			check.SetChecked(false)
		}
	})

	selectButtons := container.NewHBox(selectAllBtn, deselectAllBtn)

	for _, col := range vod.columns {
		check := widget.NewCheck(fmt.Sprintf("%s (%s)", col.Label, col.Accessor), nil)
		check.SetChecked(true) // Default to all columns selected
		vod.columnChecks[col.Accessor] = check
		columnCheckboxes.Add(check)
	}

	columnScroll := container.NewVScroll(columnCheckboxes)
	columnScroll.SetMinSize(fyne.NewSize(400, 200))

	// Limit input
	limitLabel := widget.NewLabel("Row Limit:")
	limitLabel.TextStyle = fyne.TextStyle{Bold: true}

	vod.limitEntry = widget.NewEntry()
	vod.limitEntry.SetText("1000") // Default to 1000 rows
	vod.limitEntry.SetPlaceHolder("Leave empty for all rows, or enter a number (e.g., 1000)")

	limitHelp := widget.NewLabel("Maximum number of rows to display. Leave empty to display all rows.")
	limitHelp.TextStyle = fyne.TextStyle{Italic: true}

	// Create form layout
	content := container.NewVBox(
		columnSelectLabel,
		selectButtons,
		columnScroll,
		widget.NewSeparator(),
		limitLabel,
		vod.limitEntry,
		limitHelp,
	)

	// Create dialog with custom buttons
	vod.dialog = dialog.NewCustomConfirm(
		"View Options",
		"Load Data",
		"Cancel",
		content,
		func(confirmed bool) {
			if confirmed {
				vod.handleConfirm()
			}
		},
		vod.window,
	)

	vod.dialog.Resize(fyne.NewSize(500, 600))
}

func (vod *ViewOptionsDialog) handleConfirm() {
	options := &ViewOptions{
		SelectedColumns: make([]string, 0),
	}

	// Collect selected columns in display order
	for _, col := range vod.columns {
		if check, ok := vod.columnChecks[col.Accessor]; ok && check.Checked {
			options.SelectedColumns = append(options.SelectedColumns, col.Accessor)
		}
	}

	// If no columns selected, show error
	if len(options.SelectedColumns) == 0 {
		dialog.ShowError(fmt.Errorf("please select at least one column"), vod.window)
		return
	}

	// Get limit
	limitText := strings.TrimSpace(vod.limitEntry.Text)
	if limitText != "" {
		limit, err := strconv.Atoi(limitText)
		if err != nil || limit <= 0 {
			dialog.ShowError(fmt.Errorf("invalid limit: must be a positive number"), vod.window)
			return
		}
		options.Limit = limit
	} else {
		options.Limit = -1 // No limit
	}

	// Call the callback
	if vod.callback != nil {
		vod.callback(options)
	}
}

func (vod *ViewOptionsDialog) Show() {
	vod.dialog.Show()
}
