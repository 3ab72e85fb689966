package services

import "errors"

var (
	// ErrBatchFailed marks a batch that did not load completely. Nothing from
	// it was appended; the caller may retry.
	ErrBatchFailed = errors.New("batch failed")

	// ErrLoadInProgress is returned when a load is requested while another
	// batch is still in flight.
	ErrLoadInProgress = errors.New("a batch is already loading")

	// ErrInvariant marks a programming error, such as opening an index that
	// is not in the catalogue.
	ErrInvariant = errors.New("invariant violation")
)
