package flextable

import "errors"

// Common errors returned by the flextable package.
var (
	// ErrNoSource is returned when a required data source is nil.
	ErrNoSource = errors.New("data source is nil")

	// ErrInvalidRow is returned when a row index is out of range.
	ErrInvalidRow = errors.New("invalid row index")

	// ErrColumnNotFound is returned when a column accessor is not found.
	ErrColumnNotFound = errors.New("column not found")

	// ErrEmptyData is returned when data is empty where it shouldn't be.
	ErrEmptyData = errors.New("data is empty")

	// ErrNoStoredValue is returned by preference stores when a key has no
	// stored value.
	ErrNoStoredValue = errors.New("no stored value")
)
