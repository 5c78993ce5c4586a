package flextable

// Reserved accessors and record fields. The ordinal and metadata columns are
// synthetic: they may appear in a column set but never carry record data.
const (
	// OrdinalAccessor addresses the synthetic row-number column.
	OrdinalAccessor = "#"

	// MetaAccessor addresses the synthetic internal-metadata column.
	MetaAccessor = "_meta"

	// FullRowField is the record field that marks a row for full-width
	// rendering. Any truthy value sets the flag.
	FullRowField = "_fullRow"
)

// CellRenderer produces the display text for one cell. It receives the
// normalized row and the cell's value; returning a different string overrides
// the value's default formatting.
type CellRenderer func(row Row, value Value) string

// Column describes one table column.
// A column set is immutable for the lifetime of a table configuration;
// replacing columns means supplying a whole new slice.
type Column struct {
	// Accessor is the unique key used to read this column's field from row
	// records.
	Accessor string

	// Label is the header display text.
	Label string

	// Sortable enables sorting by this column via header clicks.
	Sortable bool

	// Width is the declared initial width in pixels. Zero means undefined:
	// the renderer falls back to the minimum width and auto-sizing may take
	// over.
	Width float32

	// MinWidth is this column's width floor. Zero defers to the table-wide
	// minimum.
	MinWidth float32

	// Renderer optionally overrides cell display text.
	Renderer CellRenderer
}

// isReservedAccessor reports whether an accessor addresses a synthetic
// column.
func isReservedAccessor(accessor string) bool {
	return accessor == OrdinalAccessor || accessor == MetaAccessor
}
