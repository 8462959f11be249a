// Package collections provides Collection, an ordered mapping of int or
// string keys to arbitrary values with a fluent, chainable API inspired by
// Laravel's Illuminate\Support\Collection.
//
// # Overview
//
//	names := collections.From(users).
//	    Where("age", ">=", 18).
//	    SortBy("name").
//	    Pluck("name").
//	    Implode(", ")
//
// Keys follow PHP array rules: insertion order is kept, numeric strings
// such as "7" become int keys, and appending uses the next free int key.
// Values are compared the way PHP compares them; see package compare.
//
// # Copying
//
// Transformation methods return a new Collection and leave the receiver
// untouched. The methods documented as mutating (Put, Push, Pop, Shift,
// Forget, Pull, Prepend, Splice, Transform and the Offset* family) change
// the receiver in place.
//
// # Arguments
//
// Many methods accept a "key or callback" argument: a dot path such as
// "profile.name" (with * wildcards), a func(value, key any) any, a
// func(any) any, or nil for the value itself. Predicates are
// func(value, key any) bool or func(any) bool.
//
// # Typed helpers
//
// Methods cannot introduce type parameters, so conversions to and from
// typed Go values are package-level functions: [Collect], [CollectMap],
// [As], [MapInto], [Reduce] and [GroupInto].
//
// # Macros (runtime extension)
//
// Register named functions at runtime via [RegisterMacro] and call them
// through [Collection.Macro]:
//
//	collections.RegisterMacro("evens", func(c *collections.Collection, _ ...any) any {
//	    return c.Filter(func(v, _ any) bool { return v.(int)%2 == 0 })
//	})
//
//	evens, _ := collections.New(1, 2, 3, 4).Macro("evens")
//
// # Configuration
//
// [Configure] installs a zerolog logger for non-fatal warnings (reads of
// undefined offsets, values Flip cannot use as keys) and the random source
// used by Random, RandomN and Shuffle.
package collections
