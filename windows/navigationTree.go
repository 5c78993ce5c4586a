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
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// TreeNode represents one directory or data file in the navigation tree.
type TreeNode struct {
	ID             string   // Node ID, the absolute path
	Name           string   // Display name
	Path           string   // Absolute filesystem path
	IsDir          bool     // Directories are branches, files are leaves
	Children       []string // Child node IDs
	ChildrenLoaded bool     // Whether the directory has been read yet
}

// NavigationTree manages the directory tree shown in the left panel. Only
// directories and supported data files appear in it. Directory contents are
// read lazily the first time a branch is opened.
type NavigationTree struct {
	nodes  map[string]*TreeNode
	rootID string
	mu     sync.RWMutex // Protect concurrent access during lazy loading
}

// NewNavigationTree creates an empty navigation tree.
func NewNavigationTree() *NavigationTree {
	return &NavigationTree{
		nodes: make(map[string]*TreeNode),
	}
}

// LoadRoot points the tree at a directory and clears any previous state.
func (nt *NavigationTree) LoadRoot(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to open folder: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", path)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}

	nt.mu.Lock()
	defer nt.mu.Unlock()

	nt.nodes = make(map[string]*TreeNode)
	nt.rootID = abs
	nt.nodes[abs] = &TreeNode{
		ID:    abs,
		Name:  filepath.Base(abs),
		Path:  abs,
		IsDir: true,
	}
	return nil
}

// RootID returns the node ID of the current root directory, or "" before
// LoadRoot has been called.
func (nt *NavigationTree) RootID() string {
	nt.mu.RLock()
	defer nt.mu.RUnlock()
	return nt.rootID
}

// GetChildren returns the child node IDs for a given parent node. Passing
// the empty ID returns the root. Directory contents are read on first
// access.
func (nt *NavigationTree) GetChildren(nodeID widget.TreeNodeID) []widget.TreeNodeID {
	nt.mu.Lock()
	defer nt.mu.Unlock()

	if nodeID == "" {
		if nt.rootID == "" {
			return []widget.TreeNodeID{}
		}
		return []widget.TreeNodeID{nt.rootID}
	}

	node, exists := nt.nodes[nodeID]
	if !exists || !node.IsDir {
		return []widget.TreeNodeID{}
	}

	if !node.ChildrenLoaded {
		nt.loadChildrenLocked(node)
	}
	return node.Children
}

// loadChildrenLocked reads a directory and creates nodes for its
// subdirectories and supported data files, directories first. Unreadable
// directories end up as empty branches.
func (nt *NavigationTree) loadChildrenLocked(node *TreeNode) {
	node.ChildrenLoaded = true
	node.Children = make([]string, 0)

	entries, err := os.ReadDir(node.Path)
	if err != nil {
		return
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].IsDir() != entries[j].IsDir() {
			return entries[i].IsDir()
		}
		return entries[i].Name() < entries[j].Name()
	})

	for _, entry := range entries {
		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}
		if !entry.IsDir() && !isSupportedDataFile(name) {
			continue
		}

		childPath := filepath.Join(node.Path, name)
		child := &TreeNode{
			ID:    childPath,
			Name:  name,
			Path:  childPath,
			IsDir: entry.IsDir(),
		}
		nt.nodes[childPath] = child
		node.Children = append(node.Children, childPath)
	}
}

// IsBranch returns true if the node can have children.
func (nt *NavigationTree) IsBranch(nodeID widget.TreeNodeID) bool {
	nt.mu.RLock()
	defer nt.mu.RUnlock()

	if nodeID == "" {
		return true
	}
	node, exists := nt.nodes[nodeID]
	return exists && node.IsDir
}

// GetNode retrieves a node by ID.
func (nt *NavigationTree) GetNode(nodeID widget.TreeNodeID) *TreeNode {
	nt.mu.RLock()
	defer nt.mu.RUnlock()

	return nt.nodes[nodeID]
}

// RefreshNode forgets a directory's cached children so the next access
// re-reads it from disk.
func (nt *NavigationTree) RefreshNode(nodeID widget.TreeNodeID) {
	nt.mu.Lock()
	defer nt.mu.Unlock()

	node, exists := nt.nodes[nodeID]
	if !exists || !node.IsDir {
		return
	}
	for _, childID := range node.Children {
		delete(nt.nodes, childID)
	}
	node.Children = nil
	node.ChildrenLoaded = false
}

// UpdateNodeDisplay updates the visual representation of a tree node.
func (nt *NavigationTree) UpdateNodeDisplay(nodeID widget.TreeNodeID, obj fyne.CanvasObject, branch bool) {
	node := nt.GetNode(nodeID)
	if node == nil {
		return
	}

	box, ok := obj.(*fyne.Container)
	if !ok || len(box.Objects) < 2 {
		return
	}

	icon, ok := box.Objects[0].(*widget.Icon)
	if ok {
		switch {
		case node.IsDir && branch:
			icon.SetResource(theme.FolderOpenIcon())
		case node.IsDir:
			icon.SetResource(theme.FolderIcon())
		default:
			icon.SetResource(theme.DocumentIcon())
		}
	}

	label, ok := box.Objects[1].(*widget.Label)
	if ok {
		label.SetText(node.Name)
	}
}
