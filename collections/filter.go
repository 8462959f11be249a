package collections

import (
	"github.com/hasbyte1/go-laravel-collections/arr"
	"github.com/hasbyte1/go-laravel-collections/compare"
)

// ─────────────────────────────────────────────────────────────────────────────
// Filtering
// ─────────────────────────────────────────────────────────────────────────────

// Filter returns the items for which fns[0](value, key) is true, keeping
// their keys. Without a predicate it keeps truthy values (see
// [compare.Truthy]).
func (c *Collection) Filter(fns ...Predicate) *Collection {
	keep := func(value, _ any) bool { return compare.Truthy(value) }
	if len(fns) > 0 {
		keep = fns[0]
	}
	out := arr.New()
	for k, v := range c.items.All() {
		if keep(v, k) {
			out.Set(k, v)
		}
	}
	return wrap(out)
}

// Reject is the complement of [Collection.Filter]. predicateOrValue may be a
// predicate, or a value compared loosely against each item.
//
//	collections.New("a", "b", "a").Reject("a") // {1: "b"}
func (c *Collection) Reject(predicateOrValue any) *Collection {
	if p, ok := asPredicate(predicateOrValue); ok {
		return c.Filter(func(value, key any) bool { return !p(value, key) })
	}
	return c.Filter(func(value, _ any) bool {
		return !compare.LooseEqual(value, predicateOrValue)
	})
}

// Where keeps the items whose value at the dot path key compares true.
//
//	c.Where("price", 100)        // loose ==
//	c.Where("price", ">", 100)   // operator form
//
// Operators are those of [compare.LookupOperator]; an unknown operator
// falls back to loose equality. With no arguments items whose key value is
// truthy are kept.
func (c *Collection) Where(key string, args ...any) *Collection {
	switch len(args) {
	case 0:
		return c.Filter(truthPredicate(key))
	case 1:
		return c.Filter(operatorForWhere(key, compare.LooseEq, args[0]))
	}
	op := compare.LooseEq
	switch o := args[0].(type) {
	case compare.Operator:
		op = o
	case string:
		op = compare.ParseOperator(o)
	}
	return c.Filter(operatorForWhere(key, op, args[1]))
}

// WhereStrict keeps the items whose value at key is strictly equal (===) to
// value.
func (c *Collection) WhereStrict(key string, value any) *Collection {
	return c.WhereOperator(key, compare.StrictEq, value)
}

// WhereOperator is the typed form of the three-argument [Collection.Where].
func (c *Collection) WhereOperator(key string, op compare.Operator, value any) *Collection {
	return c.Filter(operatorForWhere(key, op, value))
}

// WhereIn keeps the items whose value at key loosely equals one of values.
func (c *Collection) WhereIn(key string, values any) *Collection {
	return c.whereIn(key, values, false)
}

// WhereInStrict is [Collection.WhereIn] with strict comparison.
func (c *Collection) WhereInStrict(key string, values any) *Collection {
	return c.whereIn(key, values, true)
}

func (c *Collection) whereIn(key string, values any, strict bool) *Collection {
	candidates := arrayableItems(values).Values()
	return c.Filter(func(item, _ any) bool {
		return inList(dataGet(item, key), candidates, strict)
	})
}

// ─────────────────────────────────────────────────────────────────────────────
// Search
// ─────────────────────────────────────────────────────────────────────────────

// Contains reports whether the collection holds a matching item:
//
//	c.Contains(value)              // loose membership
//	c.Contains(predicate)          // any item matches
//	c.Contains(key, value)         // dot path key loosely equals value
//	c.Contains(key, ">", value)    // operator form
func (c *Collection) Contains(args ...any) bool {
	switch len(args) {
	case 0:
		return false
	case 1:
		if p, ok := asPredicate(args[0]); ok {
			_, found := c.First(p)
			return found
		}
		return inList(args[0], c.items.Values(), false)
	case 2:
		_, found := c.First(operatorForWhere(pathArg(args[0]), compare.LooseEq, args[1]))
		return found
	}
	op := compare.LooseEq
	switch o := args[1].(type) {
	case compare.Operator:
		op = o
	case string:
		op = compare.ParseOperator(o)
	}
	_, found := c.First(operatorForWhere(pathArg(args[0]), op, args[2]))
	return found
}

// ContainsStrict is [Collection.Contains] with strict comparison: 0 does
// not match "0" and nil only matches nil. It accepts a value, a predicate,
// or a key and value.
func (c *Collection) ContainsStrict(args ...any) bool {
	switch len(args) {
	case 0:
		return false
	case 1:
		if p, ok := asPredicate(args[0]); ok {
			_, found := c.First(p)
			return found
		}
		return inList(args[0], c.items.Values(), true)
	}
	_, found := c.First(operatorForWhere(pathArg(args[0]), compare.StrictEq, args[1]))
	return found
}

// Search returns the key of the first item equal to value, or matching it
// when value is a predicate. strict[0] selects strict comparison.
func (c *Collection) Search(valueOrPredicate any, strict ...bool) (any, bool) {
	match, ok := asPredicate(valueOrPredicate)
	if !ok {
		op := compare.LooseEq
		if len(strict) > 0 && strict[0] {
			op = compare.StrictEq
		}
		match = func(value, _ any) bool { return op.Apply(value, valueOrPredicate) }
	}
	for k, v := range c.items.All() {
		if match(v, k) {
			return k, true
		}
	}
	return nil, false
}

func inList(needle any, haystack []any, strict bool) bool {
	for _, v := range haystack {
		if strict && compare.StrictEqual(v, needle) || !strict && compare.LooseEqual(v, needle) {
			return true
		}
	}
	return false
}

func pathArg(key any) string {
	if s, ok := key.(string); ok {
		return s
	}
	return compare.ToString(key)
}
