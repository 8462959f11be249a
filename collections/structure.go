package collections

import (
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/hasbyte1/go-laravel-collections/arr"
	"github.com/hasbyte1/go-laravel-collections/compare"
)

// ─────────────────────────────────────────────────────────────────────────────
// Flattening
// ─────────────────────────────────────────────────────────────────────────────

// Flatten unwraps nested collections, slices and maps into a flat list,
// discarding keys. With no argument it flattens fully; depth[0] limits how
// many levels are descended, so Flatten(0) only re-indexes the top level.
// A negative depth flattens fully.
//
//	collections.New(1, []any{2, []any{3}}).Flatten()  // [1 2 3]
//	collections.New(1, []any{2, []any{3}}).Flatten(1) // [1 2 [3]]
func (c *Collection) Flatten(depth ...int) *Collection {
	d := -1
	if len(depth) > 0 {
		d = depth[0]
	}
	out := arr.New()
	flattenInto(out, c.items, d)
	return wrap(out)
}

func flattenInto(out, items *arr.Map, depth int) {
	for _, v := range items.All() {
		nested, ok := arrayLike(v)
		if !ok || depth == 0 {
			out.Append(v)
			continue
		}
		flattenInto(out, nested, depth-1)
	}
}

// Collapse merges the values of each nested collection, slice or map one
// level into a single list. Non-container values are kept as they are.
func (c *Collection) Collapse() *Collection {
	out := arr.New()
	for _, v := range c.items.All() {
		nested, ok := arrayLike(v)
		if !ok {
			out.Append(v)
			continue
		}
		for _, nv := range nested.All() {
			out.Append(nv)
		}
	}
	return wrap(out)
}

// ─────────────────────────────────────────────────────────────────────────────
// Slicing & Pagination
// ─────────────────────────────────────────────────────────────────────────────

// Slice returns the items from offset onwards, or length[0] items, with
// their keys. Negative offset and length count from the end.
func (c *Collection) Slice(offset int, length ...int) *Collection {
	n := c.items.Len()
	l := n
	if len(length) > 0 {
		l = length[0]
	}
	start, end := sliceBounds(n, offset, l)
	out := arr.New()
	i := 0
	for k, v := range c.items.All() {
		if i >= end {
			break
		}
		if i >= start {
			out.Set(k, v)
		}
		i++
	}
	return wrap(out)
}

// Take returns the first n items, or the last -n items when n is negative.
// Keys are kept.
func (c *Collection) Take(n int) *Collection {
	if n < 0 {
		return c.Slice(n, -n)
	}
	return c.Slice(0, n)
}

// ForPage returns page (1-based) of perPage items as a list.
func (c *Collection) ForPage(page, perPage int) *Collection {
	return c.Slice((page-1)*perPage, perPage).Values()
}

// Every returns every step-th item, starting at position offset[0], with
// its key. Items are kept when position%step == offset, so an offset of
// step or more selects nothing. A step below 1 yields an empty collection.
func (c *Collection) Every(step int, offset ...int) *Collection {
	out := arr.New()
	if step < 1 {
		return wrap(out)
	}
	off := 0
	if len(offset) > 0 {
		off = offset[0]
	}
	position := 0
	for k, v := range c.items.All() {
		if position%step == off {
			out.Set(k, v)
		}
		position++
	}
	return wrap(out)
}

// Chunk splits the collection into a list of collections of at most size
// items, keeping keys inside each chunk. A size below 1 yields an empty
// collection.
func (c *Collection) Chunk(size int) *Collection {
	out := arr.New()
	if size < 1 {
		return wrap(out)
	}
	var chunk *arr.Map
	for k, v := range c.items.All() {
		if chunk == nil || chunk.Len() == size {
			chunk = arr.New()
			out.Append(wrap(chunk))
		}
		chunk.Set(k, v)
	}
	return wrap(out)
}

// Split divides the collection into groups collections of near-equal size;
// the first count%groups groups get one extra item. There are fewer groups
// when there are fewer items. Keys are kept.
//
//	collections.New("a", "b", "c").Split(2) // [[a b] [c]]
func (c *Collection) Split(groups int) *Collection {
	n := c.items.Len()
	out := arr.New()
	if groups < 1 || n == 0 {
		return wrap(out)
	}
	groups = min(groups, n)
	base, extra := n/groups, n%groups

	var group *arr.Map
	size := 0
	for k, v := range c.items.All() {
		if group == nil || group.Len() == size {
			size = base
			if out.Len() < extra {
				size++
			}
			group = arr.New()
			out.Append(wrap(group))
		}
		group.Set(k, v)
	}
	return wrap(out)
}

// Partition splits the items into those that pass and those that fail. The
// argument is a predicate, or a key or callback whose result is tested for
// truthiness. Keys are kept in both halves.
//
//	free, paid := courses.Partition("free")
func (c *Collection) Partition(predicateOrKey any) (*Collection, *Collection) {
	pass := truthPredicate(predicateOrKey)
	yes, no := arr.New(), arr.New()
	for k, v := range c.items.All() {
		if pass(v, k) {
			yes.Set(k, v)
		} else {
			no.Set(k, v)
		}
	}
	return wrap(yes), wrap(no)
}

// ─────────────────────────────────────────────────────────────────────────────
// Sampling
// ─────────────────────────────────────────────────────────────────────────────

// Random returns one item chosen with the configured random source.
// An empty collection yields [ErrInvalidArgument].
func (c *Collection) Random() (any, error) {
	n := c.items.Len()
	if n == 0 {
		return nil, fmt.Errorf("%w: you requested 1 item, but there are only 0 items in the collection", ErrInvalidArgument)
	}
	return c.items.Values()[intn(n)], nil
}

// RandomN returns n distinct items chosen with the configured random
// source. The chosen items keep their keys and relative order. Requesting
// more items than exist, or a negative number, yields [ErrInvalidArgument].
func (c *Collection) RandomN(n int) (*Collection, error) {
	count := c.items.Len()
	if n < 0 || n > count {
		return nil, fmt.Errorf("%w: you requested %d items, but there are only %d items in the collection", ErrInvalidArgument, n, count)
	}
	picked := perm(count)[:n]
	slices.Sort(picked)
	entries := c.items.Entries()
	out := arr.New()
	for _, i := range picked {
		out.Set(entries[i].Key, entries[i].Value)
	}
	return wrap(out), nil
}

// ─────────────────────────────────────────────────────────────────────────────
// String helpers
// ─────────────────────────────────────────────────────────────────────────────

// Implode joins the values into a string. When the items are arrays or
// objects the first argument is the dot path to pluck and glue[0] the
// separator; otherwise the first argument is the separator.
//
//	collections.New("a", "b").Implode(", ")         // "a, b"
//	users.Implode("email", ",")                      // "a@x,b@x"
func (c *Collection) Implode(valueOrGlue string, glue ...string) string {
	values := c.items.Values()
	sep := valueOrGlue
	if first, ok := c.First(); ok && !isScalar(first) {
		values = c.Pluck(valueOrGlue).ToSlice()
		sep = ""
		if len(glue) > 0 {
			sep = glue[0]
		}
	}
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = compare.ToString(v)
	}
	return strings.Join(parts, sep)
}

func isScalar(v any) bool {
	if v == nil {
		return true
	}
	switch reflect.ValueOf(v).Kind() {
	case reflect.Bool, reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}
