package windows

import (
	"os"
	"path/filepath"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

type DataFileDialog struct {
	dialog      dialog.Dialog
	window      fyne.Window
	callback    func(string, error)
	fileList    *widget.List
	files       []string
	homeDir     string
	currentPath string
	pathLabel   *widget.Label
}

func NewDataFileDialog(w fyne.Window, callback func(string, error)) *DataFileDialog {
	fd := &DataFileDialog{
		window:   w,
		callback: callback,
		files:    make([]string, 0),
	}

	// Get home directory
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = "."
	}
	fd.homeDir = homeDir
	fd.currentPath = homeDir

	return fd
}

func (fd *DataFileDialog) Show() {
	// Create path label showing current directory
	fd.pathLabel = widget.NewLabel(fd.currentPath)
	fd.pathLabel.Wrapping = fyne.TextTruncate
	fd.pathLabel.TextStyle = fyne.TextStyle{Bold: true}

	// Create file list
	fd.fileList = widget.NewList(
		func() int {
			return len(fd.files)
		},
		func() fyne.CanvasObject {
			icon := widget.NewIcon(theme.DocumentIcon())
			label := widget.NewLabel("template")
			return container.NewHBox(icon, label)
		},
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			cont := obj.(*fyne.Container)
			icon := cont.Objects[0].(*widget.Icon)
			label := cont.Objects[1].(*widget.Label)

			fileName := fd.files[id]
			label.SetText(fileName)

			fullPath := filepath.Join(fd.currentPath, fileName)
			fileInfo, err := os.Stat(fullPath)
			if err == nil && fileInfo.IsDir() {
				icon.SetResource(theme.FolderIcon())
			} else if isSupportedDataFile(fileName) {
				icon.SetResource(theme.DocumentIcon())
			} else {
				icon.SetResource(theme.FileIcon())
			}
		},
	)

	// Handle file selection
	fd.fileList.OnSelected = func(id widget.ListItemID) {
		fileName := fd.files[id]
		fullPath := filepath.Join(fd.currentPath, fileName)

		fileInfo, err := os.Stat(fullPath)
		if err != nil {
			return
		}

		if fileInfo.IsDir() {
			// Navigate into directory
			fd.currentPath = fullPath
			fd.loadDirectory()
			fd.fileList.UnselectAll()
		} else {
			// File selected - hand the path to the loader
			fd.callback(fullPath, nil)
			fd.dialog.Hide()
		}
	}

	// Create navigation buttons
	homeButton := widget.NewButtonWithIcon("Home", theme.HomeIcon(), func() {
		fd.currentPath = fd.homeDir
		fd.loadDirectory()
	})

	upButton := widget.NewButtonWithIcon("Up", theme.NavigateBackIcon(), func() {
		parent := filepath.Dir(fd.currentPath)
		if parent != fd.currentPath {
			fd.currentPath = parent
			fd.loadDirectory()
		}
	})

	refreshButton := widget.NewButtonWithIcon("Refresh", theme.ViewRefreshIcon(), func() {
		fd.loadDirectory()
	})

	// Create filter info
	filterInfo := widget.NewLabel("Showing: .csv, .tsv, .parquet, .json, and .txt files, and directories")
	filterInfo.TextStyle = fyne.TextStyle{Italic: true}

	// Navigation toolbar
	navToolbar := container.NewBorder(
		nil, nil,
		container.NewHBox(homeButton, upButton, refreshButton),
		nil,
		fd.pathLabel,
	)

	// Instructions
	instructions := widget.NewRichTextFromMarkdown("**Select a data file (.csv, .tsv, .parquet, .json, or .txt)**\n\nDouble-click a folder to navigate, or click a file to select it.")
	instructions.Wrapping = fyne.TextWrapWord

	// Main content with better spacing
	content := container.NewBorder(
		container.NewVBox(
			instructions,
			widget.NewSeparator(),
			navToolbar,
			widget.NewSeparator(),
			filterInfo,
		),
		nil, nil, nil,
		fd.fileList,
	)

	// Create the custom dialog
	fd.dialog = dialog.NewCustom("Open Data File", "Close", content, fd.window)

	// Make it much larger
	fd.dialog.Resize(fyne.NewSize(800, 600))

	// Load initial directory
	fd.loadDirectory()

	fd.dialog.Show()
}

func (fd *DataFileDialog) loadDirectory() {
	entries, err := os.ReadDir(fd.currentPath)
	if err != nil {
		dialog.ShowError(err, fd.window)
		return
	}

	fd.files = make([]string, 0)

	// Add directories first
	for _, entry := range entries {
		if entry.IsDir() && !strings.HasPrefix(entry.Name(), ".") {
			fd.files = append(fd.files, entry.Name())
		}
	}

	// Add supported data files
	for _, entry := range entries {
		if !entry.IsDir() && !strings.HasPrefix(entry.Name(), ".") {
			if isSupportedDataFile(entry.Name()) {
				fd.files = append(fd.files, entry.Name())
			}
		}
	}

	fd.pathLabel.SetText(fd.currentPath)
	fd.fileList.Refresh()
}
