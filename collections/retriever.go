package collections

import (
	"fmt"

	"github.com/hasbyte1/go-laravel-collections/arr"
	"github.com/hasbyte1/go-laravel-collections/compare"
)

// Predicate reports whether an entry matches.
type Predicate func(value, key any) bool

// Retriever extracts a derived value from an entry, e.g. a grouping or
// sort key.
type Retriever func(value, key any) any

// valueRetriever resolves a keyOrFn argument:
//
//	nil                       the value itself
//	string                    a dot path into the value
//	Retriever, func(v, k any) any
//	func(any) any             called with the value only
//
// Any other argument is formatted and used as a path.
func valueRetriever(keyOrFn any) Retriever {
	switch t := keyOrFn.(type) {
	case nil:
		return func(value, _ any) any { return value }
	case Retriever:
		return t
	case func(value, key any) any:
		return t
	case func(any) any:
		return func(value, _ any) any { return t(value) }
	case string:
		if t == "" {
			return func(value, _ any) any { return value }
		}
		return func(value, _ any) any { return dataGet(value, t) }
	}
	path := fmt.Sprint(arr.NormalizeKey(keyOrFn))
	return func(value, _ any) any { return dataGet(value, path) }
}

// optionalRetriever resolves a trailing variadic keyOrFn.
func optionalRetriever(keyOrFn []any) Retriever {
	if len(keyOrFn) == 0 {
		return valueRetriever(nil)
	}
	return valueRetriever(keyOrFn[0])
}

// dataGet resolves a dot path, yielding nil for missing segments.
func dataGet(target any, path string) any {
	v, _ := arr.Get(target, path)
	return v
}

// asPredicate reports whether v is callable as a predicate.
func asPredicate(v any) (Predicate, bool) {
	switch t := v.(type) {
	case Predicate:
		return t, t != nil
	case func(value, key any) bool:
		return t, t != nil
	case func(any) bool:
		if t == nil {
			return nil, false
		}
		return func(value, _ any) bool { return t(value) }, true
	}
	return nil, false
}

// truthPredicate resolves a predicate-or-key argument: callables are used
// as-is and anything else is retrieved and tested for truthiness.
func truthPredicate(predicateOrKey any) Predicate {
	if p, ok := asPredicate(predicateOrKey); ok {
		return p
	}
	retrieve := valueRetriever(predicateOrKey)
	return func(value, key any) bool { return compare.Truthy(retrieve(value, key)) }
}

// operatorForWhere builds the predicate behind Where and Contains.
func operatorForWhere(key string, op compare.Operator, value any) Predicate {
	return func(item, _ any) bool {
		return op.Apply(dataGet(item, key), value)
	}
}
