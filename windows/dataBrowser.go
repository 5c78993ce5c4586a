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

package windows

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/magpierre/fyne-flextable/flextable"
	ftwidget "github.com/magpierre/fyne-flextable/widget"
)

// Data holds information about a table tab.
type Data struct {
	model     *flextable.TableModel
	dataTable *ftwidget.DataTable
	tab       *container.TabItem
	tableName string
}

// DataBrowser manages the display of loaded table data.
type DataBrowser struct {
	w              fyne.Window
	prefs          fyne.Preferences
	innerTabs      *container.DocTabs
	docTabs        *container.DocTabs
	browserTab     *container.TabItem
	tabDataMap     map[*container.TabItem]*Data
	statusCallback func(string)
}

// CreateWindow initializes the data browser.
func (t *DataBrowser) CreateWindow(w fyne.Window, prefs fyne.Preferences, docTabs *container.DocTabs, statusCallback func(string)) {
	t.w = w
	t.prefs = prefs
	t.docTabs = docTabs
	t.tabDataMap = make(map[*container.TabItem]*Data)
	t.statusCallback = statusCallback

	// Create persistent inner tabs for individual tables
	t.innerTabs = container.NewDocTabs()
	t.innerTabs.SetTabLocation(container.TabLocationBottom)

	// Set up close intercept to clean up when tabs are closed
	t.innerTabs.CloseIntercept = func(ti *container.TabItem) {
		// Drop the model reference so the data can be collected
		delete(t.tabDataMap, ti)
		t.innerTabs.Remove(ti)

		// Update status bar to reflect the currently selected tab (if any)
		if t.innerTabs.Selected() != nil {
			t.updateStatusForTab(t.innerTabs.Selected())
		} else {
			// No tabs left, clear status
			if t.statusCallback != nil {
				t.statusCallback("Ready")
			}
		}
	}

	// Set up tab selection callback to update status bar
	t.innerTabs.OnSelected = func(ti *container.TabItem) {
		t.updateStatusForTab(ti)
	}

	// Create persistent Browser tab
	t.browserTab = container.NewTabItem("Browser", t.innerTabs)
	t.docTabs.Append(t.browserTab)
}

// updateStatusForTab updates the status bar with information about the given tab.
func (t *DataBrowser) updateStatusForTab(ti *container.TabItem) {
	if ti == nil || t.statusCallback == nil {
		return
	}

	// Get the data associated with this tab
	data, exists := t.tabDataMap[ti]
	if !exists {
		return
	}

	model := data.model
	statusText := fmt.Sprintf("Table %s (%d columns x %d rows)",
		data.tableName, len(model.Columns()), model.OriginalRowCount())

	// Add sort info
	sortState := model.GetSortState()
	if sortState.IsSorted() {
		direction := "↑"
		if sortState.Direction == flextable.SortDescending {
			direction = "↓"
		}
		statusText += fmt.Sprintf(" | Sorted: %s %s", columnLabel(model, sortState.Key), direction)
	}

	t.statusCallback(statusText)
}

// columnLabel resolves an accessor to its display label.
func columnLabel(model *flextable.TableModel, accessor string) string {
	for _, col := range model.Columns() {
		if col.Accessor == accessor {
			return col.Label
		}
	}
	return accessor
}

// AddTable creates a browser tab showing the given model. Loading a file
// that is already open replaces the content of its tab.
func (t *DataBrowser) AddTable(tableName string, model *flextable.TableModel) {
	config := ftwidget.DefaultConfig()
	config.ShowStatusBar = true
	config.AutoSizeColumns = true
	config.OnRowsPerPageChange = func(rowsPerPage int) {
		t.prefs.SetInt(prefRowsPerPage, rowsPerPage)
	}
	config.RenderExpandedRow = func(row flextable.Row) fyne.CanvasObject {
		return createRowDetail(model, row)
	}

	// Tapping a row toggles its detail view
	var dataTable *ftwidget.DataTable
	config.OnRowTapped = func(index int, row flextable.Row) {
		if dataTable.ExpandedRow() == row.ID {
			dataTable.SetExpandedRow("")
		} else {
			dataTable.SetExpandedRow(row.ID)
		}
	}

	dataTable = ftwidget.NewDataTableWithConfig(model, config)

	// Set window reference for keyboard shortcuts
	dataTable.SetWindow(t.w)

	// Wrap dataTable with tooltip layer to enable tooltips on cells
	content := ftwidget.WrapWithTooltips(dataTable, t.w.Canvas())

	data := &Data{
		model:     model,
		dataTable: dataTable,
		tableName: tableName,
	}

	// Check if a tab with this name already exists
	for _, tab := range t.innerTabs.Items {
		if tab.Text == tableName {
			tab.Content = content
			data.tab = tab
			t.tabDataMap[tab] = data
			t.innerTabs.Select(tab)
			t.innerTabs.Refresh()
			t.selectBrowserTab()
			t.updateStatusForTab(tab)
			return
		}
	}

	newTab := container.NewTabItem(tableName, content)
	data.tab = newTab
	t.tabDataMap[newTab] = data

	t.innerTabs.Append(newTab)
	t.innerTabs.Select(newTab)
	t.selectBrowserTab()
	t.updateStatusForTab(newTab)
}

// selectBrowserTab brings the Browser tab to the front, recreating it if the
// user closed it.
func (t *DataBrowser) selectBrowserTab() {
	browserExists := false
	for _, item := range t.docTabs.Items {
		if item == t.browserTab {
			browserExists = true
			break
		}
	}

	if !browserExists {
		t.browserTab = container.NewTabItem("Browser", t.innerTabs)
		t.docTabs.Append(t.browserTab)
	}

	t.docTabs.Select(t.browserTab)
}

// createRowDetail builds the expanded detail view for a row, one line per
// column with the full formatted value.
func createRowDetail(model *flextable.TableModel, row flextable.Row) fyne.CanvasObject {
	form := container.NewVBox()
	for _, col := range model.Columns() {
		value := row.Fields[col.Accessor]
		name := widget.NewLabelWithStyle(col.Label+":", fyne.TextAlignTrailing, fyne.TextStyle{Bold: true})
		val := widget.NewLabel(value.Formatted)
		val.Wrapping = fyne.TextWrapWord
		form.Add(container.NewBorder(nil, nil, name, nil, val))
	}
	return container.NewPadded(form)
}

// ShowExportDialog asks for an export format for the active table and runs
// the export.
func (t *DataBrowser) ShowExportDialog() {
	data, exists := t.tabDataMap[t.innerTabs.Selected()]
	if !exists {
		dialog.ShowInformation("Export", "Open a data file first.", t.w)
		return
	}

	formats := widget.NewRadioGroup([]string{"Parquet", "CSV", "JSON"}, nil)
	formats.SetSelected("Parquet")

	d := dialog.NewCustomConfirm(
		"Export Table",
		"Export",
		"Cancel",
		formats,
		func(confirmed bool) {
			if !confirmed {
				return
			}

			var format ExportFormat
			switch formats.Selected {
			case "CSV":
				format = FormatCSV
			case "JSON":
				format = FormatJSON
			default:
				format = FormatParquet
			}

			t.exportData(data, format, data.tableName)
		},
		t.w,
	)
	d.Resize(fyne.NewSize(300, 200))
	d.Show()
}

// exportData handles the export of data to different formats.
func (t *DataBrowser) exportData(dataItem *Data, format ExportFormat, tableName string) {
	// Determine file extension based on format
	var ext string
	switch format {
	case FormatParquet:
		ext = ".parquet"
	case FormatCSV:
		ext = ".csv"
	case FormatJSON:
		ext = ".json"
	}

	// Create file save dialog
	saveDialog := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, t.w)
			return
		}
		if writer == nil {
			// User cancelled
			return
		}

		// The save dialog only supplies the target path, the exporters open
		// the file themselves
		filePath := writer.URI().Path()
		writer.Close()

		progressBar := widget.NewProgressBarInfinite()
		progressDialog := dialog.NewCustomWithoutButtons("Exporting...", progressBar, t.w)
		progressDialog.Resize(fyne.NewSize(300, 100))
		progressDialog.Show()
		progressBar.Start()

		go func() {
			var exportErr error

			switch format {
			case FormatParquet:
				exportErr = ExportToParquet(dataItem.model, filePath)
			case FormatCSV:
				exportErr = ExportToCSV(dataItem.model, filePath)
			case FormatJSON:
				exportErr = ExportToJSON(dataItem.model, filePath)
			}

			// Show result dialog on main thread
			fyne.Do(func() {
				progressBar.Stop()
				progressDialog.Hide()

				if exportErr != nil {
					dialog.ShowError(fmt.Errorf("export failed: %w", exportErr), t.w)
				} else {
					dialog.ShowInformation("Export Successful",
						fmt.Sprintf("Data exported successfully to:\n%s", filePath), t.w)
				}
			})
		}()
	}, t.w)

	// Set default filename
	defaultName := cleanFilename(tableName) + ext
	saveDialog.SetFileName(defaultName)

	saveDialog.Show()
}
