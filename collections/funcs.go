package collections

import (
	"cmp"
	"slices"

	"github.com/hasbyte1/go-laravel-collections/arr"
)

// This file contains package-level generic functions that move between
// typed Go values and the dynamically typed Collection.
//
// Go generics do not allow methods to introduce their own type parameters, so
// these operations are stand-alone functions that compose with method
// chains:
//
//	names := collections.As[string](
//	    collections.Collect(users).Where("active", true).Pluck("name"),
//	)

// Collect creates a list Collection from a typed slice.
//
//	c := collections.Collect([]int{1, 2, 3})
func Collect[T any](items []T) *Collection {
	m := arr.New()
	for _, item := range items {
		m.Append(item)
	}
	return wrap(m)
}

// CollectMap creates a Collection from a typed map. Go maps are unordered,
// so entries are inserted in ascending key order.
//
//	c := collections.CollectMap(map[string]int{"b": 2, "a": 1}) // {a: 1, b: 2}
func CollectMap[K cmp.Ordered, V any](items map[K]V) *Collection {
	keys := make([]K, 0, len(items))
	for k := range items {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	m := arr.New()
	for _, k := range keys {
		m.Set(k, items[k])
	}
	return wrap(m)
}

// As returns the values of c that have type T, in order. Values of any
// other type are skipped.
//
//	ints := collections.As[int](collections.New(1, "a", 2)) // [1 2]
func As[T any](c *Collection) []T {
	out := make([]T, 0, c.Count())
	for _, v := range c.items.All() {
		if t, ok := v.(T); ok {
			out = append(out, t)
		}
	}
	return out
}

// MapInto applies fn to every value of type T and returns the results as a
// typed slice. Values of any other type are skipped.
//
//	lengths := collections.MapInto(c, func(s string, _ any) int { return len(s) })
func MapInto[T, U any](c *Collection, fn func(value T, key any) U) []U {
	out := make([]U, 0, c.Count())
	for k, v := range c.items.All() {
		if t, ok := v.(T); ok {
			out = append(out, fn(t, k))
		}
	}
	return out
}

// Reduce folds the values of c into a typed accumulator.
//
//	sum := collections.Reduce(c, func(acc int, v, _ any) int { return acc + v.(int) }, 0)
func Reduce[U any](c *Collection, fn func(acc U, value, key any) U, initial U) U {
	result := initial
	for k, v := range c.items.All() {
		result = fn(result, v, k)
	}
	return result
}

// GroupInto groups the values of type T by the comparable key fn extracts,
// returning typed slices. Values of any other type are skipped.
//
//	byDept := collections.GroupInto(staff, func(e Employee) string { return e.Dept })
func GroupInto[T any, K comparable](c *Collection, fn func(T) K) map[K][]T {
	groups := make(map[K][]T)
	for _, v := range c.items.All() {
		if t, ok := v.(T); ok {
			k := fn(t)
			groups[k] = append(groups[k], t)
		}
	}
	return groups
}
