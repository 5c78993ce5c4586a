package windows

import (
	"os"
	"path/filepath"
	"testing"

	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// treeFixture lays out a folder with subdirectories, data files, an
// unsupported file and hidden entries.
func treeFixture(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(root, "b_dir"), 0o755))
	require.NoError(t, os.Mkdir(filepath.Join(root, "a_dir"), 0o755))
	require.NoError(t, os.Mkdir(filepath.Join(root, ".git"), 0o755))
	for _, name := range []string{"data.csv", "records.json", "notes.txt", "events.parquet", "ignore.exe", ".hidden.csv"} {
		require.NoError(t, os.WriteFile(filepath.Join(root, name), []byte("x"), 0o644))
	}
	return root
}

func childNames(tree *NavigationTree, ids []widget.TreeNodeID) []string {
	names := make([]string, len(ids))
	for i, id := range ids {
		names[i] = tree.GetNode(id).Name
	}
	return names
}

func TestNavigationTreeLoadRoot(t *testing.T) {
	tree := NewNavigationTree()

	err := tree.LoadRoot(filepath.Join(t.TempDir(), "nope"))
	assert.ErrorContains(t, err, "failed to open folder")

	file := filepath.Join(t.TempDir(), "data.csv")
	require.NoError(t, os.WriteFile(file, []byte("a,b\n1,2\n"), 0o644))
	err = tree.LoadRoot(file)
	assert.ErrorContains(t, err, "is not a directory")

	root := treeFixture(t)
	require.NoError(t, tree.LoadRoot(root))
	assert.Equal(t, root, tree.RootID())

	node := tree.GetNode(tree.RootID())
	require.NotNil(t, node)
	assert.True(t, node.IsDir)
	assert.Equal(t, filepath.Base(root), node.Name)
}

func TestNavigationTreeChildren(t *testing.T) {
	tree := NewNavigationTree()
	assert.Empty(t, tree.GetChildren(""), "no root loaded yet")

	root := treeFixture(t)
	require.NoError(t, tree.LoadRoot(root))

	assert.Equal(t, []widget.TreeNodeID{root}, tree.GetChildren(""))

	children := tree.GetChildren(root)
	want := []string{"a_dir", "b_dir", "data.csv", "events.parquet", "notes.txt", "records.json"}
	assert.Equal(t, want, childNames(tree, children), "directories first, hidden and unsupported entries skipped")

	csvID := filepath.Join(root, "data.csv")
	assert.Empty(t, tree.GetChildren(csvID), "files have no children")
	assert.Empty(t, tree.GetChildren("/no/such/node"))
}

func TestNavigationTreeLazyLoading(t *testing.T) {
	tree := NewNavigationTree()
	root := treeFixture(t)
	require.NoError(t, tree.LoadRoot(root))

	assert.False(t, tree.GetNode(root).ChildrenLoaded)
	first := tree.GetChildren(root)
	assert.True(t, tree.GetNode(root).ChildrenLoaded)

	// New files are invisible until the node is refreshed
	require.NoError(t, os.WriteFile(filepath.Join(root, "later.csv"), []byte("x"), 0o644))
	assert.Equal(t, first, tree.GetChildren(root))

	tree.RefreshNode(root)
	assert.False(t, tree.GetNode(root).ChildrenLoaded)
	assert.Contains(t, childNames(tree, tree.GetChildren(root)), "later.csv")
}

func TestNavigationTreeRefreshNode(t *testing.T) {
	tree := NewNavigationTree()
	root := treeFixture(t)
	require.NoError(t, tree.LoadRoot(root))
	tree.GetChildren(root)

	csvID := filepath.Join(root, "data.csv")
	require.NotNil(t, tree.GetNode(csvID))

	tree.RefreshNode(root)
	assert.Nil(t, tree.GetNode(csvID), "cached child nodes are dropped")

	// Refreshing a leaf or unknown node is a no-op
	tree.GetChildren(root)
	tree.RefreshNode(csvID)
	tree.RefreshNode("/no/such/node")
	require.NotNil(t, tree.GetNode(csvID))
}

func TestNavigationTreeIsBranch(t *testing.T) {
	tree := NewNavigationTree()
	root := treeFixture(t)
	require.NoError(t, tree.LoadRoot(root))
	tree.GetChildren(root)

	assert.True(t, tree.IsBranch(""))
	assert.True(t, tree.IsBranch(root))
	assert.True(t, tree.IsBranch(filepath.Join(root, "a_dir")))
	assert.False(t, tree.IsBranch(filepath.Join(root, "data.csv")))
	assert.False(t, tree.IsBranch("/no/such/node"))
}

func TestNavigationTreeReload(t *testing.T) {
	tree := NewNavigationTree()
	first := treeFixture(t)
	require.NoError(t, tree.LoadRoot(first))
	tree.GetChildren(first)
	oldChild := filepath.Join(first, "data.csv")
	require.NotNil(t, tree.GetNode(oldChild))

	second := treeFixture(t)
	require.NoError(t, tree.LoadRoot(second))
	assert.Equal(t, second, tree.RootID())
	assert.Nil(t, tree.GetNode(oldChild), "previous tree state is cleared")
}

func TestNavigationTreeUpdateNodeDisplay(t *testing.T) {
	test.NewTempApp(t)

	tree := NewNavigationTree()
	root := treeFixture(t)
	require.NoError(t, tree.LoadRoot(root))
	tree.GetChildren(root)

	icon := widget.NewIcon(theme.DocumentIcon())
	label := widget.NewLabel("template")
	box := container.NewHBox(icon, label)

	dirID := filepath.Join(root, "a_dir")
	tree.UpdateNodeDisplay(dirID, box, true)
	assert.Equal(t, theme.FolderOpenIcon().Name(), icon.Resource.Name())
	assert.Equal(t, "a_dir", label.Text)

	tree.UpdateNodeDisplay(dirID, box, false)
	assert.Equal(t, theme.FolderIcon().Name(), icon.Resource.Name())

	tree.UpdateNodeDisplay(filepath.Join(root, "data.csv"), box, false)
	assert.Equal(t, theme.DocumentIcon().Name(), icon.Resource.Name())
	assert.Equal(t, "data.csv", label.Text)

	// Unknown nodes and unexpected templates leave the object untouched
	tree.UpdateNodeDisplay("/no/such/node", box, false)
	assert.Equal(t, "data.csv", label.Text)
	tree.UpdateNodeDisplay(dirID, widget.NewLabel("plain"), false)
}
