package collections

import "github.com/hasbyte1/go-laravel-collections/arr"

// Enumerable is the read-side surface of [Collection].
//
// Accept Enumerable in your own functions when they only inspect or filter
// items, so callers may pass any implementation.
type Enumerable interface {
	// Items returns a copy of the underlying mapping.
	Items() *arr.Map

	// Count returns the number of items.
	Count() int

	// Each calls fn(value, key) for every item until fn returns false.
	Each(fn func(value, key any) bool) *Collection

	// Filter returns the items fns[0] accepts, keeping keys.
	Filter(fns ...Predicate) *Collection

	// First returns the first item, optionally matching fns[0].
	First(fns ...Predicate) (any, bool)

	// IsEmpty reports whether there are no items.
	IsEmpty() bool

	// IsNotEmpty reports whether there is at least one item.
	IsNotEmpty() bool

	// Last returns the last item, optionally matching fns[0].
	Last(fns ...Predicate) (any, bool)

	// Reject returns the items that a predicate rejects, or that do not
	// loosely equal a value.
	Reject(predicateOrValue any) *Collection

	// ToSlice returns the values in order.
	ToSlice() []any
}

var _ Enumerable = (*Collection)(nil)
