package collections

import (
	"iter"

	"github.com/hasbyte1/go-laravel-collections/arr"
)

// Collection is an ordered mapping from int or string keys to arbitrary
// values with a fluent transformation API modelled on Laravel's
// Illuminate\Support\Collection.
//
// Keys behave like PHP array keys: insertion order is kept, "1" and 1 are
// the same key, and appending picks the next free integer key. A collection
// whose keys are exactly 0 … Count()-1 is in list mode; anything else is in
// map mode. Both can coexist.
//
// # Creating a collection
//
//	c := collections.New(1, 2, 3)
//	c := collections.From(map[string]any{"a": 1})
//	c := collections.From(user)          // exported struct fields
//	c := collections.Empty()
//
// # Method chaining
//
//	names := collections.From(users).
//	    Where("active", true).
//	    SortBy("profile.age").
//	    Pluck("name").
//	    Values()
//
// # Copying and mutation
//
// Transformations return a new Collection and never touch the receiver.
// The mutating methods are Put, Push, Pop, Shift, Forget, Pull, Splice,
// SpliceWith, Transform, Prepend and the Offset* methods; they change the
// receiver in place and return it, or the value they extract.
//
// Values held by a collection are shared, not deep-copied. A Collection is
// not safe for concurrent mutation. The zero value is an empty collection
// ready to use.
type Collection struct {
	items *arr.Map
}

// mapping returns the backing Map, allocating it for a zero Collection.
func (c *Collection) mapping() *arr.Map {
	if c.items == nil {
		c.items = arr.New()
	}
	return c.items
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// New creates a list Collection from values.
func New(values ...any) *Collection {
	return &Collection{items: arr.List(values...)}
}

// Empty creates an empty Collection.
func Empty() *Collection {
	return &Collection{items: arr.New()}
}

// From creates a Collection from items, which may be nil, a Collection, an
// *arr.Map, a Go slice, array or map, an iter.Seq or iter.Seq2, a value
// implementing one of the contracts interfaces, a struct, or a single
// scalar. Containers are copied one level deep; see [CapabilityOf].
func From(items any) *Collection {
	return &Collection{items: arrayableItems(items)}
}

// Make is an alias for [From].
func Make(items any) *Collection { return From(items) }

// wrap adopts m without copying.
func wrap(m *arr.Map) *Collection {
	return &Collection{items: m}
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// Items returns a copy of the underlying mapping.
func (c *Collection) Items() *arr.Map { return c.items.Clone() }

// All is an alias for [Collection.Items].
func (c *Collection) All() *arr.Map { return c.Items() }

// ToSlice returns the values in order.
func (c *Collection) ToSlice() []any { return c.items.Values() }

// Count returns the number of items in the collection.
func (c *Collection) Count() int { return c.items.Len() }

// IsEmpty reports whether the collection contains no items.
func (c *Collection) IsEmpty() bool { return c.items.Len() == 0 }

// IsNotEmpty reports whether the collection has at least one item.
func (c *Collection) IsNotEmpty() bool { return c.items.Len() > 0 }

// Get returns the item stored under key, or def[0] (nil when omitted) if the
// key is absent. A func() any default is called lazily.
func (c *Collection) Get(key any, def ...any) any {
	if v, ok := c.items.Get(key); ok {
		return v
	}
	return resolveDefault(def)
}

// Has reports whether key is present.
func (c *Collection) Has(key any) bool { return c.items.Has(key) }

// Keys returns a list Collection of the keys.
func (c *Collection) Keys() *Collection { return New(c.items.Keys()...) }

// Values returns a list Collection of the values, re-indexed from 0.
func (c *Collection) Values() *Collection { return New(c.items.Values()...) }

// ─────────────────────────────────────────────────────────────────────────────
// Iteration
// ─────────────────────────────────────────────────────────────────────────────

// Iter returns an iterator over the entries in order.
//
//	for k, v := range c.Iter() { … }
func (c *Collection) Iter() iter.Seq2[any, any] { return c.items.All() }

// Each calls fn(value, key) for every item and stops early when fn returns
// false. It returns c for chaining.
func (c *Collection) Each(fn func(value, key any) bool) *Collection {
	for k, v := range c.items.All() {
		if !fn(v, k) {
			break
		}
	}
	return c
}

// Tap calls fn(c) for side-effects (e.g. logging or debugging) and returns
// c unchanged for further chaining.
func (c *Collection) Tap(fn func(*Collection)) *Collection {
	fn(c)
	return c
}

// Pipe passes c to fn and returns the result.
func (c *Collection) Pipe(fn func(*Collection) any) any {
	return fn(c)
}

// ─────────────────────────────────────────────────────────────────────────────
// Conditional pipeline
// ─────────────────────────────────────────────────────────────────────────────

// When calls fn(c) if condition is true and returns the result.
// Otherwise returns c unchanged.
func (c *Collection) When(condition bool, fn func(*Collection) *Collection) *Collection {
	if condition {
		return fn(c)
	}
	return c
}

// Unless calls fn(c) if condition is false; otherwise returns c.
func (c *Collection) Unless(condition bool, fn func(*Collection) *Collection) *Collection {
	return c.When(!condition, fn)
}

// WhenEmpty calls fn(c) if c is empty; otherwise returns c.
func (c *Collection) WhenEmpty(fn func(*Collection) *Collection) *Collection {
	return c.When(c.IsEmpty(), fn)
}

// WhenNotEmpty calls fn(c) if c is not empty; otherwise returns c.
func (c *Collection) WhenNotEmpty(fn func(*Collection) *Collection) *Collection {
	return c.When(c.IsNotEmpty(), fn)
}

func resolveDefault(def []any) any {
	if len(def) == 0 {
		return nil
	}
	if fn, ok := def[0].(func() any); ok {
		return fn()
	}
	return def[0]
}
