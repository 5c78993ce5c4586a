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

package flextable

import (
	"encoding/json"
	"errors"
	"log"
	"strconv"
	"strings"
)

// resizeSession tracks one in-progress column drag. At most one session is
// active at a time; it is created on drag-start and discarded on release.
type resizeSession struct {
	accessor   string
	startX     float32
	startWidth float32
	minWidth   float32
}

// widthFloor returns the lower bound for a column's width: the larger of the
// column's declared minimum and the table-wide minimum.
func (m *TableModel) widthFloor(col Column) float32 {
	if col.MinWidth > m.cfg.MinColumnWidth {
		return col.MinWidth
	}
	return m.cfg.MinColumnWidth
}

// ColumnWidth returns the resolved width of the column with the given
// accessor. Columns with no explicit width fall back to their minimum floor.
// Unknown accessors resolve to the table-wide minimum.
func (m *TableModel) ColumnWidth(accessor string) float32 {
	col, ok := m.columnByAccessor(accessor)
	if !ok {
		return m.cfg.MinColumnWidth
	}
	if w, ok := m.widths[accessor]; ok {
		return w
	}
	return m.widthFloor(col)
}

// HasColumnWidth reports whether the column resolved an explicit width from
// its declaration, the preference store, or a runtime assignment.
func (m *TableModel) HasColumnWidth(accessor string) bool {
	_, ok := m.widths[accessor]
	return ok
}

// SetColumnWidth assigns an explicit width to a column, clamped to the
// column's minimum floor, and persists the width map. Unknown accessors are
// ignored.
func (m *TableModel) SetColumnWidth(accessor string, width float32) {
	col, ok := m.columnByAccessor(accessor)
	if !ok {
		return
	}
	if floor := m.widthFloor(col); width < floor {
		width = floor
	}
	m.widths[accessor] = width
	m.persistWidths()
}

// AutoSizeColumn widens or narrows a column so its header label and every
// current cell value fit without truncation, plus a fixed padding. All rows
// are measured, not just the visible page.
func (m *TableModel) AutoSizeColumn(accessor string) {
	col, ok := m.columnByAccessor(accessor)
	if !ok {
		return
	}
	m.widths[accessor] = m.autoSizeWidth(col)
	m.persistWidths()
}

// autoSizeWidth computes the content-fitting width for one column.
func (m *TableModel) autoSizeWidth(col Column) float32 {
	width := m.measurer.TextWidth(col.Label)
	for _, row := range m.rows {
		if w := m.measurer.TextWidth(m.renderCell(row, col)); w > width {
			width = w
		}
	}
	width += autoSizePadding
	if floor := m.widthFloor(col); width < floor {
		return floor
	}
	return width
}

// ResetColumnWidth restores a column's originally declared width, or removes
// the override entirely when the column declared none.
func (m *TableModel) ResetColumnWidth(accessor string) {
	col, ok := m.columnByAccessor(accessor)
	if !ok {
		return
	}
	if col.Width > 0 {
		m.widths[accessor] = col.Width
	} else {
		delete(m.widths, accessor)
	}
	m.persistWidths()
}

// ToggleColumnExpand switches a column between its default width and its
// auto-sized width. This backs the compact-mode header tap behavior but may
// be called directly as well.
func (m *TableModel) ToggleColumnExpand(accessor string) {
	if _, ok := m.columnByAccessor(accessor); !ok {
		return
	}
	if m.expanded[accessor] {
		delete(m.expanded, accessor)
		m.ResetColumnWidth(accessor)
		return
	}
	m.expanded[accessor] = true
	m.AutoSizeColumn(accessor)
}

// ColumnExpanded reports whether a column is currently auto-sized via
// ToggleColumnExpand.
func (m *TableModel) ColumnExpanded(accessor string) bool {
	return m.expanded[accessor]
}

// BeginResize opens a drag-resize session for a column, capturing the
// pointer origin and the column's current rendered width. Unknown accessors
// open no session.
func (m *TableModel) BeginResize(accessor string, startX float32) {
	col, ok := m.columnByAccessor(accessor)
	if !ok {
		return
	}
	m.resize = &resizeSession{
		accessor:   accessor,
		startX:     startX,
		startWidth: m.ColumnWidth(accessor),
		minWidth:   m.widthFloor(col),
	}
}

// DragResize applies one pointer-move event to the active resize session,
// updating the width map for live feedback. It is a no-op when no session is
// active.
func (m *TableModel) DragResize(currentX float32) {
	s := m.resize
	if s == nil {
		return
	}
	width := s.startWidth + (currentX - s.startX)
	if width < s.minWidth {
		width = s.minWidth
	}
	m.widths[s.accessor] = width
	m.persistWidths()
}

// EndResize closes the active resize session. The last applied width stays
// committed.
func (m *TableModel) EndResize() {
	m.resize = nil
}

// seedWidths rebuilds the width map for the current column set: declared
// widths first, then persisted widths overlaid for accessors that still
// exist. It also clears the expanded-column set.
func (m *TableModel) seedWidths() {
	stored := m.loadStoredWidths()
	m.widths = make(map[string]float32, len(m.columns))
	for _, col := range m.columns {
		if col.Width > 0 {
			m.widths[col.Accessor] = col.Width
		}
		if w, ok := stored[col.Accessor]; ok {
			m.widths[col.Accessor] = w
		}
	}
	m.expanded = make(map[string]bool)
}

// loadStoredWidths reads the persisted width map. Storage failures and
// malformed payloads degrade to "nothing stored" with a logged warning.
func (m *TableModel) loadStoredWidths() map[string]float32 {
	if m.cfg.Store == nil || m.cfg.WidthStorageKey == "" {
		return nil
	}
	raw, err := m.cfg.Store.Get(m.cfg.WidthStorageKey)
	if err != nil {
		if !errors.Is(err, ErrNoStoredValue) {
			log.Printf("flextable: reading column widths %q: %v", m.cfg.WidthStorageKey, err)
		}
		return nil
	}
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	var entries map[string]interface{}
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		log.Printf("flextable: decoding column widths %q: %v", m.cfg.WidthStorageKey, err)
		return nil
	}
	widths := make(map[string]float32, len(entries))
	for accessor, v := range entries {
		if w, ok := parseStoredWidth(v); ok {
			widths[accessor] = w
		}
	}
	return widths
}

// parseStoredWidth converts one persisted entry to a width. Positive numbers
// and numeric strings, with an optional px suffix, are accepted; anything
// else is ignored so a corrupt entry falls back to the declared width.
func parseStoredWidth(v interface{}) (float32, bool) {
	switch w := v.(type) {
	case float64:
		if w > 0 {
			return float32(w), true
		}
	case string:
		s := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(w), "px"))
		if f, err := strconv.ParseFloat(s, 32); err == nil && f > 0 {
			return float32(f), true
		}
	}
	return 0, false
}

// persistWidths writes the current width map as a flat JSON object under the
// configured storage key. Failures are logged and swallowed; persistence is
// best effort.
func (m *TableModel) persistWidths() {
	if m.cfg.Store == nil || m.cfg.WidthStorageKey == "" {
		return
	}
	payload, err := json.Marshal(m.widths)
	if err != nil {
		log.Printf("flextable: encoding column widths: %v", err)
		return
	}
	if err := m.cfg.Store.Set(m.cfg.WidthStorageKey, string(payload)); err != nil {
		log.Printf("flextable: saving column widths %q: %v", m.cfg.WidthStorageKey, err)
	}
}
