package collections

import (
	"fmt"

	"github.com/hasbyte1/go-laravel-collections/arr"
)

// Merge appends the integer-keyed items of items (renumbered) and
// overwrites string keys, like PHP's array_merge. The receiver's own
// integer keys are renumbered too.
func (c *Collection) Merge(items any) *Collection {
	return wrap(arr.Merge(c.items, arrayableItems(items)))
}

// Union adds the entries of items whose keys c does not have yet.
func (c *Collection) Union(items any) *Collection {
	out := c.items.Clone()
	for k, v := range arrayableItems(items).All() {
		if !out.Has(k) {
			out.Set(k, v)
		}
	}
	return wrap(out)
}

// Diff keeps the items whose value loosely equals no value of items.
func (c *Collection) Diff(items any) *Collection {
	other := arrayableItems(items).Values()
	return c.Filter(func(value, _ any) bool { return !inList(value, other, false) })
}

// DiffKeys keeps the items whose key is absent from items.
func (c *Collection) DiffKeys(items any) *Collection {
	other := arrayableItems(items)
	return c.Filter(func(_, key any) bool { return !other.Has(key) })
}

// Intersect keeps the items whose value loosely equals some value of
// items. Keys are kept.
func (c *Collection) Intersect(items any) *Collection {
	other := arrayableItems(items).Values()
	return c.Filter(func(value, _ any) bool { return inList(value, other, false) })
}

// Unique removes items whose identity was already seen; the first
// occurrence wins and keys are kept. The identity is the value itself or
// what keyOrFn[0] resolves to, compared loosely.
func (c *Collection) Unique(keyOrFn ...any) *Collection {
	return c.unique(optionalRetriever(keyOrFn), false)
}

// UniqueStrict is [Collection.Unique] with strict comparison.
func (c *Collection) UniqueStrict(keyOrFn ...any) *Collection {
	return c.unique(optionalRetriever(keyOrFn), true)
}

func (c *Collection) unique(retrieve Retriever, strict bool) *Collection {
	var seen []any
	return c.Filter(func(value, key any) bool {
		id := retrieve(value, key)
		if inList(id, seen, strict) {
			return false
		}
		seen = append(seen, id)
		return true
	})
}

// Only keeps the listed keys, in the collection's order. Keys may be passed
// individually or as one slice or collection; no keys, or nil, returns a
// copy.
func (c *Collection) Only(keys ...any) *Collection {
	if len(keys) == 0 || len(keys) == 1 && keys[0] == nil {
		return wrap(c.items.Clone())
	}
	return wrap(arr.Only(c.items, keyList(keys)...))
}

// Except removes the listed keys. Keys are dot paths, so "user.name"
// removes a nested entry; the nested containers are copied first.
func (c *Collection) Except(keys ...any) *Collection {
	list := keyList(keys)
	paths := make([]string, 0, len(list))
	for _, k := range list {
		paths = append(paths, fmt.Sprint(arr.NormalizeKey(k)))
	}
	return wrap(arr.Except(c.items, paths...))
}
