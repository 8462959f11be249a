package collections

import "errors"

// Sentinel errors returned by Collection operations.
var (
	// ErrInvalidArgument is returned when an argument is outside the range an
	// operation accepts, e.g. requesting more random items than exist.
	ErrInvalidArgument = errors.New("collections: invalid argument")

	// ErrNoMatchingItems is returned by FirstOrFail / LastOrFail when no
	// item satisfies the predicate.
	ErrNoMatchingItems = errors.New("collections: no items match the given condition")

	// ErrMismatchedLengths is returned by Combine when the key and value
	// collections have different lengths.
	ErrMismatchedLengths = errors.New("collections: keys and values must have the same length")

	// ErrMacroNotFound is returned when an unregistered macro name is called.
	ErrMacroNotFound = errors.New("collections: macro not found")
)
