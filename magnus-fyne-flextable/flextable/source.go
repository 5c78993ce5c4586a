package flextable

// Source provides column definitions and raw row records for a table.
// Implementations must be immutable after construction so the model can read
// them without synchronization.
type Source interface {
	// Columns returns the column definitions, in display order.
	Columns() []Column

	// Records returns the raw row records. Elements that are nil or not
	// map[string]interface{} records are dropped during normalization.
	Records() []interface{}

	// Metadata returns optional metadata about the data source.
	// Returns an empty Metadata map if no metadata is available.
	Metadata() Metadata
}
