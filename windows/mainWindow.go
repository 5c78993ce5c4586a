package windows

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// Preference keys
const (
	prefRecentFiles = "recentFiles"
	prefRowsPerPage = "rowsPerPage"
	prefLastFolder  = "lastFolder"
)

// maxRecentFiles caps the recent files list
const maxRecentFiles = 10

// TappableListItem is a label that supports both regular click and right-click
type TappableListItem struct {
	widget.Label
	onRightClick func(widget.ListItemID, *fyne.PointEvent)
	onTap        func(widget.ListItemID)
	itemID       widget.ListItemID
}

func newTappableListItem(onRightClick func(widget.ListItemID, *fyne.PointEvent)) *TappableListItem {
	item := &TappableListItem{
		onRightClick: onRightClick,
		itemID:       -1,
	}
	item.Truncation = fyne.TextTruncateEllipsis
	item.ExtendBaseWidget(item)
	return item
}

func (t *TappableListItem) SetItemID(id widget.ListItemID) {
	t.itemID = id
}

func (t *TappableListItem) SetOnTap(callback func(widget.ListItemID)) {
	t.onTap = callback
}

// Tapped handles regular left-click
func (t *TappableListItem) Tapped(e *fyne.PointEvent) {
	if t.onTap != nil && t.itemID >= 0 {
		t.onTap(t.itemID)
	}
}

// TappedSecondary handles right-click
func (t *TappableListItem) TappedSecondary(e *fyne.PointEvent) {
	if t.onRightClick != nil && t.itemID >= 0 {
		t.onRightClick(t.itemID, e)
	}
}

type MainWindow struct {
	a                        fyne.App
	w                        fyne.Window
	top, left, right, bottom fyne.CanvasObject
	navTree                  *NavigationTree
	treeWidget               *widget.Tree
	recentFiles              []string
	recentBindingList        binding.StringList
	docTabs                  *container.DocTabs
	browser                  *DataBrowser
	statusBar                *widget.Label
}

func CreateMainWindow() *MainWindow {
	var v MainWindow
	v.NewMainWindow()
	return &v
}

// OpenDataFile shows the file dialog and loads the chosen file.
func (t *MainWindow) OpenDataFile() {
	fd := NewDataFileDialog(t.w, func(path string, err error) {
		if err != nil {
			t.SetStatus("Error opening file")
			dialog.ShowError(err, t.w)
			return
		}

		if path == "" {
			return
		}

		t.handleDataFileLoad(path)
	})
	fd.Show()
}

// OpenFolder shows the folder dialog and loads the chosen folder into the
// navigation tree.
func (t *MainWindow) OpenFolder() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil {
			dialog.ShowError(err, t.w)
			return
		}
		if uri == nil {
			return
		}
		t.loadFolder(uri.Path())
	}, t.w)
}

// loadFolder points the navigation tree at a folder and kicks off a
// background scan for the status bar.
func (t *MainWindow) loadFolder(path string) {
	if err := t.navTree.LoadRoot(path); err != nil {
		t.SetStatus("Error opening folder")
		dialog.ShowError(err, t.w)
		return
	}

	t.treeWidget.Refresh()
	t.treeWidget.OpenBranch(t.navTree.RootID())
	t.a.Preferences().SetString(prefLastFolder, path)
	t.SetStatus("Folder opened: " + path)
	t.scanFolder(path)
}

// SetStatus updates the status bar message. Safe to call from any goroutine.
func (t *MainWindow) SetStatus(message string) {
	if t.statusBar != nil {
		fyne.Do(func() {
			t.statusBar.SetText(message)
		})
	}
}

// rememberRecentFile moves a path to the front of the recent files list.
func (t *MainWindow) rememberRecentFile(path string) {
	fyne.Do(func() {
		recent := []string{path}
		for _, p := range t.recentFiles {
			if p != path && len(recent) < maxRecentFiles {
				recent = append(recent, p)
			}
		}
		t.recentFiles = recent
		t.recentBindingList.Set(t.recentFiles)
		t.a.Preferences().SetStringList(prefRecentFiles, t.recentFiles)
	})
}

// removeRecentFile drops a path from the recent files list.
func (t *MainWindow) removeRecentFile(path string) {
	recent := make([]string, 0, len(t.recentFiles))
	for _, p := range t.recentFiles {
		if p != path {
			recent = append(recent, p)
		}
	}
	t.recentFiles = recent
	t.recentBindingList.Set(t.recentFiles)
	t.a.Preferences().SetStringList(prefRecentFiles, t.recentFiles)
}

func (t *MainWindow) NewMainWindow() {
	t.a = app.NewWithID("dfb")
	t.a.Settings().SetTheme(&CustomTheme{})
	t.top = widget.NewToolbar()
	t.right = container.NewVBox()

	// Create status bar
	t.statusBar = widget.NewLabel("Ready")
	t.statusBar.TextStyle = fyne.TextStyle{Italic: true}
	t.bottom = container.NewHBox(t.statusBar)

	t.recentBindingList = binding.NewStringList()
	t.w = t.a.NewWindow("Data File Browser")
	t.w.Resize(fyne.NewSize(1000, 700))

	t.navTree = NewNavigationTree()

	t.treeWidget = widget.NewTree(
		t.navTree.GetChildren,
		t.navTree.IsBranch,
		func(branch bool) fyne.CanvasObject {
			return container.NewHBox(widget.NewIcon(theme.FolderIcon()), widget.NewLabel("template"))
		},
		func(nodeID widget.TreeNodeID, branch bool, obj fyne.CanvasObject) {
			t.navTree.UpdateNodeDisplay(nodeID, obj, branch)
		},
	)

	t.treeWidget.OnSelected = func(nodeID widget.TreeNodeID) {
		node := t.navTree.GetNode(nodeID)
		if node == nil || node.IsDir {
			return
		}
		t.SetStatus("Opening " + node.Name)
		t.handleDataFileLoad(node.Path)
		t.treeWidget.UnselectAll()
	}

	// Store reference to the context menu callback
	var showRecentContextMenu func(widget.ListItemID, *fyne.PointEvent)

	recentWidget := widget.NewListWithData(t.recentBindingList, func() fyne.CanvasObject {
		return newTappableListItem(func(id widget.ListItemID, e *fyne.PointEvent) {
			if showRecentContextMenu != nil {
				showRecentContextMenu(id, e)
			}
		})
	}, func(di binding.DataItem, co fyne.CanvasObject) {
		item := co.(*TappableListItem)
		item.Bind(di.(binding.String))
	})

	// Set item IDs and tap handler when updating
	originalUpdateItem := recentWidget.UpdateItem
	recentWidget.UpdateItem = func(id widget.ListItemID, item fyne.CanvasObject) {
		if tappableItem, ok := item.(*TappableListItem); ok {
			tappableItem.SetItemID(id)
			// Connect regular tap to the list's OnSelected handler
			tappableItem.SetOnTap(func(itemID widget.ListItemID) {
				if recentWidget.OnSelected != nil {
					recentWidget.OnSelected(itemID)
				}
			})
		}
		originalUpdateItem(id, item)
	}

	recentWidget.OnSelected = func(id widget.ListItemID) {
		if id < 0 || id >= widget.ListItemID(len(t.recentFiles)) {
			return
		}
		path := t.recentFiles[id]
		t.SetStatus("Opening " + filepath.Base(path))
		t.handleDataFileLoad(path)
		recentWidget.UnselectAll()
	}

	// Define the context menu callback function
	showRecentContextMenu = func(itemID widget.ListItemID, e *fyne.PointEvent) {
		if itemID < 0 || itemID >= widget.ListItemID(len(t.recentFiles)) {
			return
		}
		path := t.recentFiles[itemID]

		// Create the context menu
		recentContextMenu := fyne.NewMenu("",
			fyne.NewMenuItem("Open", func() {
				t.handleDataFileLoad(path)
			}),
			fyne.NewMenuItem("Open with Options...", func() {
				t.LoadDataFileWithOptions(path)
			}),
			fyne.NewMenuItem("Remove from Recent Files", func() {
				t.removeRecentFile(path)
			}),
		)

		// Show the context menu at the click position
		widget.ShowPopUpMenuAtPosition(recentContextMenu, t.w.Canvas(), e.AbsolutePosition)
	}

	gr := container.NewVSplit(
		widget.NewCard("", "Folders", t.treeWidget),
		widget.NewCard("", "Recent Files", recentWidget),
	)
	t.left = container.NewGridWrap(fyne.NewSize(250, 768), gr)

	welcome := widget.NewRichTextFromMarkdown(`# Data File Browser

Open a folder to browse its data files, or open a single file directly.

**Supported formats:** CSV, TSV, Parquet, JSON, and delimited text files.

- Click a file in the folder tree to open it in the browser.
- Right-click a recent file for more actions.
- Click a column header to sort, drag a column edge to resize it.
- Use the export action to save the current view as Parquet, CSV, or JSON.`)
	welcome.Wrapping = fyne.TextWrapWord

	tabs := container.NewDocTabs(container.NewTabItem("Start", container.NewVScroll(welcome)))
	tabs.CloseIntercept = func(ti *container.TabItem) {
		if ti.Text == "Browser" {
			tabs.Remove(ti)
		}
	}

	t.docTabs = tabs

	var db DataBrowser
	db.CreateWindow(t.w, t.a.Preferences(), t.docTabs, t.SetStatus)
	t.browser = &db

	t.top.(*widget.Toolbar).Append(widget.NewToolbarAction(theme.MenuIcon(), func() {
		if !t.left.Visible() {
			t.left.Show()
		} else {
			t.left.Hide()
		}
	}))
	t.top.(*widget.Toolbar).Append(widget.NewToolbarSeparator())
	t.top.(*widget.Toolbar).Append(widget.NewToolbarAction(
		theme.FolderOpenIcon(), func() {
			t.OpenFolder()
		}))
	t.top.(*widget.Toolbar).Append(widget.NewToolbarAction(
		theme.FileIcon(), func() {
			t.OpenDataFile()
		}))
	t.top.(*widget.Toolbar).Append(widget.NewToolbarSeparator())
	t.top.(*widget.Toolbar).Append(widget.NewToolbarAction(
		theme.DownloadIcon(), func() {
			t.browser.ShowExportDialog()
		}))

	t.top.(*widget.Toolbar).Append(widget.NewToolbarSpacer())

	// Restore state from the previous session
	t.recentFiles = t.a.Preferences().StringList(prefRecentFiles)
	t.recentBindingList.Set(t.recentFiles)
	if folder := t.a.Preferences().StringWithFallback(prefLastFolder, ""); folder != "" {
		if err := t.navTree.LoadRoot(folder); err == nil {
			t.SetStatus("Folder opened: " + folder)
		}
	}

	c := container.NewBorder(t.top, t.bottom, t.left, t.right, widget.NewCard("", "", tabs))
	t.w.SetContent(c)
	t.w.ShowAndRun()
}

// scanFolder counts the data files under a folder in the background and
// reports the result in the status bar.
func (t *MainWindow) scanFolder(path string) {
	pbi := widget.NewProgressBarInfinite()
	di := dialog.NewCustomWithoutButtons("Please wait", pbi, t.w)
	di.Resize(fyne.NewSize(200, 100))
	di.Show()
	pbi.Start()

	go func() {
		fileCount := 0
		filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				// Skip unreadable entries
				return nil
			}
			if d.IsDir() {
				if p != path && strings.HasPrefix(d.Name(), ".") {
					return fs.SkipDir
				}
				return nil
			}
			if isSupportedDataFile(d.Name()) {
				fileCount++
			}
			return nil
		})

		fyne.Do(func() {
			pbi.Stop()
			di.Hide()
		})
		t.SetStatus(fmt.Sprintf("Folder %s: %d data files found", filepath.Base(path), fileCount))
	}()
}
