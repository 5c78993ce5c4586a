package flextable

// Default values applied by DefaultConfig and by normalization when a Config
// field is left at its zero value.
const (
	DefaultRowsPerPage      = 60
	DefaultMinColumnWidth   = 50
	DefaultMobileBreakpoint = 768
)

// defaultRowsPerPageOptions lists the page sizes offered to the user when the
// application does not supply its own.
var defaultRowsPerPageOptions = []int{20, 50, 100}

// Config controls table behavior. The zero value is not usable directly;
// start from DefaultConfig and override fields as needed, or pass any Config
// to NewTableModel which normalizes invalid fields back to defaults.
type Config struct {
	// RowsPerPage is the page size used when pagination is active.
	RowsPerPage int

	// RowsPerPageOptions lists the page sizes the pagination controls
	// offer. The current RowsPerPage need not appear in it.
	RowsPerPageOptions []int

	// ShouldPaginate enables pagination. Even when true, pagination only
	// becomes active once the row count exceeds RowsPerPage.
	ShouldPaginate bool

	// MinColumnWidth is the global lower bound for column widths, in
	// pixels. A column's own MinWidth takes precedence when larger.
	MinColumnWidth float32

	// MobileBreakpoint is the viewport width, in pixels, below which the
	// table enters compact mode.
	MobileBreakpoint float32

	// MobileAutoSizeOnHeaderTap repurposes header taps in compact mode to
	// toggle column auto-sizing instead of sorting.
	MobileAutoSizeOnHeaderTap bool

	// WidthStorageKey is the preference key under which user column widths
	// are persisted. Leave empty to disable persistence.
	WidthStorageKey string

	// Store is the preference backend for width persistence. Leave nil to
	// disable persistence.
	Store PreferenceStore

	// InitialSort is applied when the model is created. Leave the zero
	// value for no initial sort.
	InitialSort SortState
}

// DefaultConfig returns a Config with pagination enabled and all numeric
// fields at their default values.
func DefaultConfig() Config {
	return Config{
		RowsPerPage:        DefaultRowsPerPage,
		RowsPerPageOptions: append([]int(nil), defaultRowsPerPageOptions...),
		ShouldPaginate:     true,
		MinColumnWidth:     DefaultMinColumnWidth,
		MobileBreakpoint:   DefaultMobileBreakpoint,
	}
}

// normalize replaces out-of-range fields with their defaults.
func (c Config) normalize() Config {
	if c.RowsPerPage <= 0 {
		c.RowsPerPage = DefaultRowsPerPage
	}
	if len(c.RowsPerPageOptions) == 0 {
		c.RowsPerPageOptions = append([]int(nil), defaultRowsPerPageOptions...)
	}
	if c.MinColumnWidth <= 0 {
		c.MinColumnWidth = DefaultMinColumnWidth
	}
	if c.MobileBreakpoint <= 0 {
		c.MobileBreakpoint = DefaultMobileBreakpoint
	}
	return c
}
