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
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/apache/arrow-go/v18/parquet"
	"github.com/apache/arrow-go/v18/parquet/file"
	"github.com/apache/arrow-go/v18/parquet/pqarrow"
	arrowadapter "github.com/magpierre/fyne-flextable/adapters/arrow"
	csvadapter "github.com/magpierre/fyne-flextable/adapters/csv"
	sliceadapter "github.com/magpierre/fyne-flextable/adapters/slice"
	"github.com/magpierre/fyne-flextable/flextable"
	ftwidget "github.com/magpierre/fyne-flextable/widget"
)

// FileType represents the type of data file
type FileType int

const (
	FileTypeUnknown FileType = iota
	FileTypeCSV
	FileTypeParquet
	FileTypeJSON
)

// DetectFileType determines the type of file based on its extension. Plain
// .txt and .tsv files go through the CSV path, which detects the actual
// separator from the content.
func DetectFileType(filePath string) FileType {
	ext := strings.ToLower(filepath.Ext(filePath))

	switch ext {
	case ".csv", ".tsv", ".txt":
		return FileTypeCSV
	case ".parquet":
		return FileTypeParquet
	case ".json":
		return FileTypeJSON
	default:
		return FileTypeUnknown
	}
}

// fileTypeName returns a display name for the file type
func fileTypeName(fileType FileType) string {
	switch fileType {
	case FileTypeCSV:
		return "CSV"
	case FileTypeParquet:
		return "Parquet"
	case FileTypeJSON:
		return "JSON"
	default:
		return "data"
	}
}

// detectCSVSeparator tries to detect the CSV separator from the first line
func detectCSVSeparator(filePath string) (rune, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return ',', fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	if !scanner.Scan() {
		// Empty file or error, use default comma
		return ',', nil
	}

	firstLine := scanner.Text()
	if firstLine == "" {
		return ',', nil
	}

	// Count occurrences of common separators. Ties resolve to the earlier
	// candidate, so comma wins over the rest.
	candidates := []rune{',', ';', '\t', '|'}

	maxCount := 0
	detectedSep := ','
	for _, sep := range candidates {
		count := strings.Count(firstLine, string(sep))
		if count > maxCount {
			maxCount = count
			detectedSep = sep
		}
	}

	return detectedSep, nil
}

// getSeparatorName returns a human-readable name for the separator
func getSeparatorName(sep rune) string {
	switch sep {
	case ',':
		return "comma"
	case ';':
		return "semicolon"
	case '\t':
		return "tab"
	case '|':
		return "pipe"
	default:
		return string(sep)
	}
}

// loadDataSource reads a file into a source using the adapter matching its
// type. The detail string carries type-specific extras for the status bar.
func loadDataSource(filePath string) (flextable.Source, string, error) {
	switch DetectFileType(filePath) {
	case FileTypeCSV:
		return loadCSVSource(filePath)
	case FileTypeParquet:
		return loadParquetSource(filePath)
	case FileTypeJSON:
		return loadJSONSource(filePath)
	default:
		return nil, "", fmt.Errorf("unsupported file type")
	}
}

// loadCSVSource loads a CSV file using the CSV adapter
func loadCSVSource(filePath string) (flextable.Source, string, error) {
	// Detect the CSV separator from the first line
	separator, err := detectCSVSeparator(filePath)
	if err != nil {
		separator = ','
	}

	// Use CSV adapter to load the file with detected separator
	config := csvadapter.DefaultConfig()
	config.HasHeaders = true
	config.TrimSpace = true
	config.Delimiter = separator

	dataSource, err := csvadapter.NewFromFile(filePath, config)
	if err != nil {
		return nil, "", fmt.Errorf("failed to load CSV file: %w", err)
	}

	return dataSource, "separator: " + getSeparatorName(separator), nil
}

// loadParquetSource loads a Parquet file using the Arrow adapter
func loadParquetSource(filePath string) (flextable.Source, string, error) {
	// Open the parquet file
	f, err := os.Open(filePath)
	if err != nil {
		return nil, "", fmt.Errorf("failed to open parquet file: %w", err)
	}
	defer f.Close()

	// Get file info for size
	fileInfo, err := f.Stat()
	if err != nil {
		return nil, "", fmt.Errorf("failed to get file info: %w", err)
	}

	// Create a parquet file reader
	pf, err := file.NewParquetReader(f, file.WithReadProps(&parquet.ReaderProperties{}))
	if err != nil {
		return nil, "", fmt.Errorf("failed to create parquet reader: %w", err)
	}
	defer pf.Close()

	// Convert parquet to Arrow table
	mem := memory.NewGoAllocator()
	arrowReader, err := pqarrow.NewFileReader(pf, pqarrow.ArrowReadProperties{}, mem)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create arrow reader: %w", err)
	}

	// Read all data into an Arrow table
	table, err := arrowReader.ReadTable(context.Background())
	if err != nil {
		return nil, "", fmt.Errorf("failed to read parquet data: %w", err)
	}
	defer table.Release()

	// The adapter copies everything out of the table before it is released
	dataSource, err := arrowadapter.NewFromArrowTable(table)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create arrow data source: %w", err)
	}

	detail := fmt.Sprintf("%.2f MB", float64(fileInfo.Size())/(1024*1024))
	return dataSource, detail, nil
}

// loadJSONSource loads a JSON file using the slice adapter
func loadJSONSource(filePath string) (flextable.Source, string, error) {
	// Read the file
	content, err := os.ReadFile(filePath)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read JSON file: %w", err)
	}

	// Try to parse as array of objects
	var data []map[string]interface{}
	if err := json.Unmarshal(content, &data); err != nil {
		// Try as single object
		var singleObj map[string]interface{}
		if err := json.Unmarshal(content, &singleObj); err != nil {
			return nil, "", fmt.Errorf("failed to parse JSON: %w", err)
		}
		data = []map[string]interface{}{singleObj}
	}

	if len(data) == 0 {
		return nil, "", fmt.Errorf("JSON file is empty or has no records")
	}

	// Use slice adapter to create data source
	dataSource, err := sliceadapter.NewFromMaps(data)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create data source from JSON: %w", err)
	}

	return dataSource, "", nil
}

// LoadDataFile loads a data file using the appropriate adapter and displays it
func (t *MainWindow) LoadDataFile(filePath string) error {
	fileType := DetectFileType(filePath)
	if fileType == FileTypeUnknown {
		return fmt.Errorf("unsupported file type")
	}

	name := filepath.Base(filePath)
	t.SetStatus(fmt.Sprintf("Loading %s file: %s", fileTypeName(fileType), name))

	src, detail, err := loadDataSource(filePath)
	if err != nil {
		return err
	}

	model, err := flextable.NewTableModel(src, t.tableConfig(name))
	if err != nil {
		return fmt.Errorf("failed to create table model: %w", err)
	}

	// Display the data on the UI thread
	fyne.Do(func() {
		t.displayDataTable(model, name)
	})

	status := fmt.Sprintf("Loaded %s file: %s (%d rows, %d columns",
		fileTypeName(fileType), name, len(src.Records()), len(src.Columns()))
	if detail != "" {
		status += ", " + detail
	}
	status += ")"
	t.SetStatus(status)
	t.rememberRecentFile(filePath)

	return nil
}

// LoadDataFileWithOptions reads a file's schema, lets the user pick columns
// and a row limit, and displays the resulting view.
func (t *MainWindow) LoadDataFileWithOptions(filePath string) {
	name := filepath.Base(filePath)

	// Create and show progress dialog on calling thread (which should be main/UI thread)
	progressBar := widget.NewProgressBarInfinite()
	progressBar.Start()

	progressDialog := dialog.NewCustomWithoutButtons("Reading Schema", progressBar, t.w)
	progressDialog.Resize(fyne.NewSize(300, 100))
	progressDialog.Show()

	// Launch single background goroutine to read the file
	go func() {
		src, _, err := loadDataSource(filePath)

		fyne.Do(func() {
			progressBar.Stop()
			progressDialog.Hide()

			if err != nil {
				dialog.ShowError(fmt.Errorf("failed to read %s: %w", name, err), t.w)
				return
			}

			// Create and show view options dialog
			vod := NewViewOptionsDialog(t.w, src.Columns(), func(options *ViewOptions) {
				columns, records := applyViewOptions(src, options)
				model := flextable.NewTableModelFromData(columns, records, t.tableConfig(name))

				t.displayDataTable(model, name)
				t.SetStatus(fmt.Sprintf("Loaded %s (%d rows, %d columns)", name, len(records), len(columns)))
				t.rememberRecentFile(filePath)
			})
			vod.Show()
		})
	}()
}

// applyViewOptions filters a source's columns and rows down to the selected
// view. Column order follows the source, not the selection order.
func applyViewOptions(src flextable.Source, options *ViewOptions) ([]flextable.Column, []interface{}) {
	selected := make(map[string]bool, len(options.SelectedColumns))
	for _, accessor := range options.SelectedColumns {
		selected[accessor] = true
	}

	columns := make([]flextable.Column, 0, len(options.SelectedColumns))
	for _, col := range src.Columns() {
		if selected[col.Accessor] {
			columns = append(columns, col)
		}
	}

	records := src.Records()
	if options.Limit > 0 && options.Limit < len(records) {
		records = records[:options.Limit]
	}

	return columns, records
}

// tableConfig builds the model configuration for a named table, wiring column
// width persistence and the preferred page size to application preferences.
func (t *MainWindow) tableConfig(name string) flextable.Config {
	cfg := flextable.DefaultConfig()
	cfg.RowsPerPage = t.a.Preferences().IntWithFallback(prefRowsPerPage, flextable.DefaultRowsPerPage)
	cfg.WidthStorageKey = "colwidths/" + name
	cfg.Store = ftwidget.NewPreferencesStore(t.a.Preferences())
	return cfg
}

// displayDataTable hands the model to the data browser, which owns the tabs
func (t *MainWindow) displayDataTable(model *flextable.TableModel, tabName string) {
	if t.browser != nil {
		t.browser.AddTable(tabName, model)
	}
}

// Helper method to handle file loading with error dialogs
func (t *MainWindow) handleDataFileLoad(filePath string) {
	go func() {
		err := t.LoadDataFile(filePath)
		if err != nil {
			// Show error on UI thread by creating a closure that captures the error
			errMsg := err.Error()
			t.a.SendNotification(&fyne.Notification{
				Title:   "Error Loading File",
				Content: errMsg,
			})
			fmt.Println("Error loading file: " + errMsg)
			t.SetStatus("Error loading file: " + errMsg)
		}
	}()
}
