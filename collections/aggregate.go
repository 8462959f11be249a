package collections

import (
	"slices"

	"github.com/hasbyte1/go-laravel-collections/compare"
)

// ─────────────────────────────────────────────────────────────────────────────
// Aggregation
// ─────────────────────────────────────────────────────────────────────────────

// Sum adds up the values, or what keyOrFn[0] resolves to for each item.
// Non-numeric values are converted with [compare.ToFloat].
func (c *Collection) Sum(keyOrFn ...any) float64 {
	retrieve := optionalRetriever(keyOrFn)
	var total float64
	for k, v := range c.items.All() {
		total += compare.ToFloat(retrieve(v, k))
	}
	return total
}

// Avg returns the arithmetic mean of what [Collection.Sum] adds up.
// Returns 0, false for an empty collection.
func (c *Collection) Avg(keyOrFn ...any) (float64, bool) {
	n := c.Count()
	if n == 0 {
		return 0, false
	}
	return c.Sum(keyOrFn...) / float64(n), true
}

// Average is an alias for [Collection.Avg].
func (c *Collection) Average(keyOrFn ...any) (float64, bool) { return c.Avg(keyOrFn...) }

// Max returns the largest value, or the largest of what keyOrFn[0]
// resolves to, using loose comparison. nil values are ignored.
func (c *Collection) Max(keyOrFn ...any) (any, bool) {
	return c.extremum(optionalRetriever(keyOrFn), compare.Gt)
}

// Min returns the smallest value, or the smallest of what keyOrFn[0]
// resolves to, using loose comparison. nil values are ignored.
func (c *Collection) Min(keyOrFn ...any) (any, bool) {
	return c.extremum(optionalRetriever(keyOrFn), compare.Lt)
}

func (c *Collection) extremum(retrieve Retriever, better compare.Operator) (any, bool) {
	var result any
	found := false
	for k, v := range c.items.All() {
		value := retrieve(v, k)
		if value == nil {
			continue
		}
		if !found || better.Apply(value, result) {
			result, found = value, true
		}
	}
	return result, found
}

// Median returns the median of the values, or of what keyOrFn[0] resolves
// to. An even count averages the two middle values. Returns 0, false for an
// empty collection.
//
//	collections.New(1, 2, 2, 4).Median() // 2
func (c *Collection) Median(keyOrFn ...any) (float64, bool) {
	n := c.Count()
	if n == 0 {
		return 0, false
	}
	retrieve := optionalRetriever(keyOrFn)
	values := make([]any, 0, n)
	for k, v := range c.items.All() {
		values = append(values, retrieve(v, k))
	}
	slices.SortStableFunc(values, compare.Loose)

	middle := n / 2
	if n%2 == 1 {
		return compare.ToFloat(values[middle]), true
	}
	return (compare.ToFloat(values[middle-1]) + compare.ToFloat(values[middle])) / 2, true
}

// Mode returns the most frequent values, or most frequent results of
// keyOrFn[0]. Ties are returned in order of first appearance. Returns nil
// for an empty collection.
//
//	collections.New(1, 2, 2, 1).Mode() // [1 2]
func (c *Collection) Mode(keyOrFn ...any) []any {
	if c.IsEmpty() {
		return nil
	}
	retrieve := optionalRetriever(keyOrFn)
	type tally struct {
		value any
		n     int
	}
	var counts []tally
	highest := 0
	for k, v := range c.items.All() {
		value := retrieve(v, k)
		i := slices.IndexFunc(counts, func(t tally) bool { return compare.StrictEqual(t.value, value) })
		if i < 0 {
			counts = append(counts, tally{value: value})
			i = len(counts) - 1
		}
		counts[i].n++
		highest = max(highest, counts[i].n)
	}
	var modes []any
	for _, t := range counts {
		if t.n == highest {
			modes = append(modes, t.value)
		}
	}
	return modes
}

// Reduce folds the values from the left, starting from initial[0] (nil
// when omitted).
//
//	total := c.Reduce(func(carry, v any) any { return carry.(int) + v.(int) }, 0)
func (c *Collection) Reduce(fn func(carry, value any) any, initial ...any) any {
	var carry any
	if len(initial) > 0 {
		carry = initial[0]
	}
	for _, v := range c.items.All() {
		carry = fn(carry, v)
	}
	return carry
}
