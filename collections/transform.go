package collections

import (
	"reflect"
	"slices"

	"github.com/hasbyte1/go-laravel-collections/arr"
	"github.com/hasbyte1/go-laravel-collections/compare"
)

// ─────────────────────────────────────────────────────────────────────────────
// Transformation
// ─────────────────────────────────────────────────────────────────────────────

// Map returns a new collection with every value replaced by fn(value, key).
// Keys are kept.
func (c *Collection) Map(fn func(value, key any) any) *Collection {
	out := arr.New()
	for k, v := range c.items.All() {
		out.Set(k, fn(v, k))
	}
	return wrap(out)
}

// MapWithKeys builds a new collection from the key/value pairs returned by
// fn. Later pairs overwrite earlier ones with the same key.
//
//	byEmail := users.MapWithKeys(func(u, _ any) (any, any) {
//	    return u.(User).Email, u.(User).Name
//	})
func (c *Collection) MapWithKeys(fn func(value, key any) (any, any)) *Collection {
	out := arr.New()
	for k, v := range c.items.All() {
		nk, nv := fn(v, k)
		out.Set(nk, nv)
	}
	return wrap(out)
}

// FlatMap maps every item through fn and collapses the results one level
// into a list.
func (c *Collection) FlatMap(fn func(value, key any) any) *Collection {
	return c.Map(fn).Collapse()
}

// Transform replaces every value with fn(value, key) in place and returns c.
func (c *Collection) Transform(fn func(value, key any) any) *Collection {
	c.items = c.Map(fn).items
	return c
}

// GroupBy groups items by the key keyOrFn resolves to (a dot path, a
// callback or nil for the value itself). Groups are Collections and appear
// in first-seen order. When the resolved key is a slice or map the item
// joins every group named in it. preserveKeys[0] keeps the original keys
// inside each group.
//
//	byType := c.GroupBy("type")
func (c *Collection) GroupBy(keyOrFn any, preserveKeys ...bool) *Collection {
	retrieve := valueRetriever(keyOrFn)
	keep := len(preserveKeys) > 0 && preserveKeys[0]
	groups := arr.New()
	for k, v := range c.items.All() {
		groupKeys := []any{retrieve(v, k)}
		if m, ok := arr.Of(groupKeys[0]); ok {
			groupKeys = m.Values()
		}
		for _, gk := range groupKeys {
			g, ok := groups.Get(gk)
			if !ok {
				g = Empty()
				groups.Set(gk, g)
			}
			if keep {
				g.(*Collection).OffsetSet(k, v)
			} else {
				g.(*Collection).OffsetSet(nil, v)
			}
		}
	}
	return wrap(groups)
}

// KeyBy re-keys the collection by the key keyOrFn resolves to. Later items
// overwrite earlier ones with the same key.
func (c *Collection) KeyBy(keyOrFn any) *Collection {
	retrieve := valueRetriever(keyOrFn)
	out := arr.New()
	for k, v := range c.items.All() {
		out.Set(retrieve(v, k), v)
	}
	return wrap(out)
}

// Pluck extracts the value at the dot path valuePath from every item. With
// keyPath[0] the result is keyed by the value at that path; otherwise it is
// a list.
//
//	names := users.Pluck("name")
//	byID := users.Pluck("name", "id")
func (c *Collection) Pluck(valuePath string, keyPath ...string) *Collection {
	out := arr.New()
	for _, item := range c.items.All() {
		v := dataGet(item, valuePath)
		if len(keyPath) == 0 {
			out.Append(v)
			continue
		}
		out.Set(dataGet(item, keyPath[0]), v)
	}
	return wrap(out)
}

// Flip swaps keys and values. Only integer and string values can become
// keys; any other value is skipped with a logged warning.
func (c *Collection) Flip() *Collection {
	out := arr.New()
	for k, v := range c.items.All() {
		if !isKeyable(v) {
			logger().Warn().Interface("key", k).Msg("collections: flip skipped non-scalar value")
			continue
		}
		out.Set(v, k)
	}
	return wrap(out)
}

func isKeyable(v any) bool {
	switch reflect.ValueOf(v).Kind() {
	case reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return true
	}
	return false
}

// Combine uses the values of c as keys for the values of values.
// Returns [ErrMismatchedLengths] if the counts differ.
//
//	collections.New("name", "age").Combine([]any{"Ann", 30}) // {name: Ann, age: 30}
func (c *Collection) Combine(values any) (*Collection, error) {
	vals := arrayableItems(values).Values()
	keys := c.items.Values()
	if len(keys) != len(vals) {
		return nil, ErrMismatchedLengths
	}
	out := arr.New()
	for i, k := range keys {
		out.Set(k, vals[i])
	}
	return wrap(out), nil
}

// Zip pairs the values of c with the values at the same position in each
// of others. The result is a list of list Collections as long as the
// longest input; shorter inputs are padded with nil.
//
//	collections.New(1, 2).Zip([]int{3, 4}) // [[1 3] [2 4]]
func (c *Collection) Zip(others ...any) *Collection {
	inputs := make([][]any, 0, len(others)+1)
	inputs = append(inputs, c.items.Values())
	longest := c.items.Len()
	for _, o := range others {
		vals := arrayableItems(o).Values()
		inputs = append(inputs, vals)
		longest = max(longest, len(vals))
	}
	out := arr.New()
	for i := 0; i < longest; i++ {
		tuple := make([]any, len(inputs))
		for j, in := range inputs {
			if i < len(in) {
				tuple[j] = in[i]
			}
		}
		out.Append(New(tuple...))
	}
	return wrap(out)
}

// ─────────────────────────────────────────────────────────────────────────────
// Ordering
// ─────────────────────────────────────────────────────────────────────────────

// Sort returns the items sorted by cmp[0], or by [compare.Loose] when
// omitted. The sort is stable and keys are kept; call Values to re-index.
func (c *Collection) Sort(cmp ...func(a, b any) int) *Collection {
	order := compare.Loose
	if len(cmp) > 0 {
		order = cmp[0]
	}
	entries := c.items.Entries()
	slices.SortStableFunc(entries, func(a, b arr.Entry) int {
		return order(a.Value, b.Value)
	})
	return wrap(arr.FromEntries(entries...))
}

// SortBy returns the items sorted by the value keyOrFn resolves to, using
// loose comparison. The sort is stable and keys are kept. descending[0]
// reverses the order while keeping ties in their original order.
//
//	c.SortBy("profile.age")
func (c *Collection) SortBy(keyOrFn any, descending ...bool) *Collection {
	retrieve := valueRetriever(keyOrFn)
	desc := len(descending) > 0 && descending[0]

	type ranked struct {
		entry arr.Entry
		rank  any
	}
	rows := make([]ranked, 0, c.items.Len())
	for k, v := range c.items.All() {
		rows = append(rows, ranked{entry: arr.Entry{Key: k, Value: v}, rank: retrieve(v, k)})
	}
	slices.SortStableFunc(rows, func(a, b ranked) int {
		if desc {
			return compare.Loose(b.rank, a.rank)
		}
		return compare.Loose(a.rank, b.rank)
	})
	out := arr.New()
	for _, r := range rows {
		out.Set(r.entry.Key, r.entry.Value)
	}
	return wrap(out)
}

// SortByDesc is [Collection.SortBy] in descending order.
func (c *Collection) SortByDesc(keyOrFn any) *Collection {
	return c.SortBy(keyOrFn, true)
}

// Reverse returns the items in reverse order. Keys stay with their values.
func (c *Collection) Reverse() *Collection {
	out := arr.New()
	for k, v := range c.items.Backward() {
		out.Set(k, v)
	}
	return wrap(out)
}

// Shuffle returns the values in random order as a list, using the
// configured random source.
func (c *Collection) Shuffle() *Collection {
	vals := c.items.Values()
	out := make([]any, len(vals))
	for i, j := range perm(len(vals)) {
		out[i] = vals[j]
	}
	return New(out...)
}
