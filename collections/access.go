package collections

import (
	"github.com/hasbyte1/go-laravel-collections/arr"
)

// ─────────────────────────────────────────────────────────────────────────────
// Search & Lookup
// ─────────────────────────────────────────────────────────────────────────────

// First returns the first item, optionally the first matching fns[0].
// Returns nil and false when the collection is empty or nothing matches.
func (c *Collection) First(fns ...Predicate) (any, bool) {
	if len(fns) > 0 {
		for k, v := range c.items.All() {
			if fns[0](v, k) {
				return v, true
			}
		}
		return nil, false
	}
	e, ok := c.items.First()
	return e.Value, ok
}

// FirstOr is like [Collection.First] but returns def instead of reporting a
// miss. A func() any default is called lazily.
func (c *Collection) FirstOr(def any, fns ...Predicate) any {
	if v, ok := c.First(fns...); ok {
		return v
	}
	return resolveDefault([]any{def})
}

// FirstOrFail returns the first item matching fn, or [ErrNoMatchingItems].
func (c *Collection) FirstOrFail(fn Predicate) (any, error) {
	v, ok := c.First(fn)
	if !ok {
		return nil, ErrNoMatchingItems
	}
	return v, nil
}

// Last returns the last item, optionally the last matching fns[0].
// Returns nil and false when the collection is empty or nothing matches.
func (c *Collection) Last(fns ...Predicate) (any, bool) {
	if len(fns) > 0 {
		for k, v := range c.items.Backward() {
			if fns[0](v, k) {
				return v, true
			}
		}
		return nil, false
	}
	e, ok := c.items.Last()
	return e.Value, ok
}

// LastOr is like [Collection.Last] but returns def instead of reporting a
// miss.
func (c *Collection) LastOr(def any, fns ...Predicate) any {
	if v, ok := c.Last(fns...); ok {
		return v
	}
	return resolveDefault([]any{def})
}

// LastOrFail returns the last item matching fn, or [ErrNoMatchingItems].
func (c *Collection) LastOrFail(fn Predicate) (any, error) {
	v, ok := c.Last(fn)
	if !ok {
		return nil, ErrNoMatchingItems
	}
	return v, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Offset access
// ─────────────────────────────────────────────────────────────────────────────

// OffsetExists reports whether key is present.
func (c *Collection) OffsetExists(key any) bool { return c.items.Has(key) }

// OffsetGet returns the item at key. A missing key is not an error: it logs
// an "undefined index" warning and returns nil, false.
func (c *Collection) OffsetGet(key any) (any, bool) {
	v, ok := c.items.Get(key)
	if !ok {
		logger().Warn().Interface("key", key).Msg("collections: undefined index")
	}
	return v, ok
}

// OffsetSet stores value under key, or appends it when key is nil.
func (c *Collection) OffsetSet(key, value any) {
	if key == nil {
		c.mapping().Append(value)
		return
	}
	c.mapping().Set(key, value)
}

// OffsetUnset removes key. Remaining keys are not re-indexed.
func (c *Collection) OffsetUnset(key any) { c.items.Delete(key) }

// ─────────────────────────────────────────────────────────────────────────────
// Add / Remove (mutating)
// ─────────────────────────────────────────────────────────────────────────────

// Put stores value under key and returns c.
func (c *Collection) Put(key, value any) *Collection {
	c.OffsetSet(key, value)
	return c
}

// Push appends values and returns c.
func (c *Collection) Push(values ...any) *Collection {
	m := c.mapping()
	for _, v := range values {
		m.Append(v)
	}
	return c
}

// Pop removes and returns the last item. Returns nil, false if c is empty.
func (c *Collection) Pop() (any, bool) {
	e, ok := c.items.Pop()
	return e.Value, ok
}

// Shift removes and returns the first item. The remaining keys are left as
// they are; call Values to re-index.
func (c *Collection) Shift() (any, bool) {
	e, ok := c.items.Shift()
	return e.Value, ok
}

// Forget removes each key, which may also be given as a single slice or
// collection of keys. Absent keys are ignored. Returns c.
func (c *Collection) Forget(keys ...any) *Collection {
	for _, k := range keyList(keys) {
		c.items.Delete(k)
	}
	return c
}

// Pull removes and returns the item at key, or def[0] if it is absent.
func (c *Collection) Pull(key any, def ...any) any {
	v, ok := c.items.Delete(key)
	if !ok {
		return resolveDefault(def)
	}
	return v
}

// Prepend inserts value at the front and returns c. With a key the entry is
// stored under it, replacing any existing entry. Without one the value takes
// key 0 and the integer keys that follow are renumbered, as in PHP's
// array_unshift.
func (c *Collection) Prepend(value any, key ...any) *Collection {
	if len(key) > 0 {
		c.mapping().Prepend(key[0], value)
		return c
	}
	out := arr.List(value)
	for k, v := range c.items.All() {
		if _, isInt := k.(int); isInt {
			out.Append(v)
		} else {
			out.Set(k, v)
		}
	}
	c.items = out
	return c
}

// Splice removes the items from offset onwards, or length items when given,
// and returns them. Negative offset and length count from the end. Integer
// keys of both the receiver and the result are renumbered; string keys are
// kept.
//
//	c := collections.New("foo", "baz")
//	cut := c.Splice(1) // c: [foo], cut: [baz]
func (c *Collection) Splice(offset int, length ...int) *Collection {
	n := c.items.Len()
	l := n
	if len(length) > 0 {
		l = length[0]
	}
	return c.splice(offset, l, nil)
}

// SpliceWith is like [Collection.Splice] but inserts replacement in place of
// the removed items.
//
//	c := collections.New("foo", "baz")
//	c.SpliceWith(1, 0, "bar") // c: [foo bar baz]
func (c *Collection) SpliceWith(offset, length int, replacement ...any) *Collection {
	return c.splice(offset, length, replacement)
}

func (c *Collection) splice(offset, length int, replacement []any) *Collection {
	start, end := sliceBounds(c.items.Len(), offset, length)

	kept := arr.New()
	removed := arr.New()
	i := 0
	for k, v := range c.items.All() {
		if i == start {
			for _, r := range replacement {
				kept.Append(r)
			}
		}
		target := kept
		if i >= start && i < end {
			target = removed
		}
		if _, isInt := k.(int); isInt {
			target.Append(v)
		} else {
			target.Set(k, v)
		}
		i++
	}
	if start >= i {
		for _, r := range replacement {
			kept.Append(r)
		}
	}
	c.items = kept
	return wrap(removed)
}

// sliceBounds converts PHP array_slice style offset and length into a
// half-open index range over n items.
func sliceBounds(n, offset, length int) (int, int) {
	start := offset
	if start < 0 {
		start = max(n+start, 0)
	}
	start = min(start, n)

	end := n
	if length < 0 {
		end = max(n+length, start)
	} else if length < n-start {
		end = start + length
	}
	return start, end
}

// keyList flattens variadic key arguments: a single slice, map or
// collection argument stands for its values.
func keyList(keys []any) []any {
	if len(keys) == 1 {
		if m, ok := arrayLike(keys[0]); ok {
			return m.Values()
		}
	}
	return keys
}
