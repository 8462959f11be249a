package collections_test

import (
	"fmt"

	"github.com/hasbyte1/go-laravel-collections/collections"
)

func ExampleNew() {
	c := collections.New(1, 2, 3, 4, 5)
	fmt.Println(c.Count(), c.Sum())
	// Output: 5 15
}

func ExampleCollection_Filter() {
	result := collections.New(1, 2, 3, 4, 5, 6).
		Filter(func(v, _ any) bool { return v.(int)%2 == 0 }).
		Values().
		ToSlice()
	fmt.Println(result)
	// Output: [2 4 6]
}

func ExampleCollection_Where() {
	users := collections.New(
		map[string]any{"name": "Ann", "age": 31},
		map[string]any{"name": "Bob", "age": 17},
		map[string]any{"name": "Cid", "age": "45"},
	)
	fmt.Println(users.Where("age", ">=", 18).Pluck("name").ToSlice())
	// Output: [Ann Cid]
}

func ExampleCollection_Sort() {
	result := collections.New(5, 3, 1, 4, 2).Sort().Values().ToSlice()
	fmt.Println(result)
	// Output: [1 2 3 4 5]
}

func ExampleCollection_Partition() {
	evens, odds := collections.New(1, 2, 3, 4, 5).
		Partition(func(v any) bool { return v.(int)%2 == 0 })
	fmt.Println(evens.ToSlice(), odds.ToSlice())
	// Output: [2 4] [1 3 5]
}

func ExampleCollection_Chunk() {
	for _, chunk := range collections.New(1, 2, 3, 4, 5).Chunk(2).Iter() {
		fmt.Println(chunk.(*collections.Collection).ToSlice())
	}
	// Output:
	// [1 2]
	// [3 4]
	// [5]
}

func ExampleCollection_Flatten() {
	c := collections.New(1, []any{2, []any{3}})
	fmt.Println(c.Flatten().ToSlice())
	fmt.Println(c.Flatten(1).ToSlice())
	// Output:
	// [1 2 3]
	// [1 2 [3]]
}

func ExampleCollection_GroupBy() {
	food := collections.New(
		map[string]any{"type": "fruit", "name": "apple"},
		map[string]any{"type": "veg", "name": "carrot"},
		map[string]any{"type": "fruit", "name": "banana"},
	)
	names := food.GroupBy("type").Map(func(g, _ any) any {
		return g.(*collections.Collection).Pluck("name")
	})
	fmt.Println(names)
	// Output: {"fruit":["apple","banana"],"veg":["carrot"]}
}

func ExampleCollection_Implode() {
	fmt.Println(collections.New(1, 2, 3).Implode(", "))
	// Output: 1, 2, 3
}

func ExampleCollection_String() {
	c := collections.Empty().Put("name", "Ann").Put("age", 30)
	fmt.Println(c)
	// Output: {"name":"Ann","age":30}
}

func ExampleCollection_ToYAML() {
	b, _ := collections.Empty().Put("name", "Ann").Put("age", 30).ToYAML()
	fmt.Print(string(b))
	// Output:
	// name: Ann
	// age: 30
}

func ExampleCollection_Splice() {
	c := collections.New("foo", "bar", "baz")
	removed := c.Splice(1, 1)
	fmt.Println(c.ToSlice(), removed.ToSlice())
	// Output: [foo baz] [bar]
}

func ExampleCollection_Median() {
	m, _ := collections.New(1, 2, 2, 4).Median()
	fmt.Println(m)
	// Output: 2
}

func ExampleCollection_Macro() {
	collections.RegisterMacro("double", func(c *collections.Collection, _ ...any) any {
		return c.Map(func(v, _ any) any { return v.(int) * 2 })
	})
	defer collections.FlushMacros()

	res, _ := collections.New(1, 2, 3).Macro("double")
	fmt.Println(res.(*collections.Collection).ToSlice())
	// Output: [2 4 6]
}

func ExampleCollection_When() {
	result := collections.New(1, 2, 3).
		When(true, func(c *collections.Collection) *collections.Collection {
			return c.Push(4)
		}).
		Count()
	fmt.Println(result)
	// Output: 4
}

func ExampleReduce() {
	sum := collections.Reduce(
		collections.New(1, 2, 3, 4, 5),
		func(acc int, v, _ any) int { return acc + v.(int) },
		0,
	)
	fmt.Println(sum)
	// Output: 15
}

func ExampleCollectMap() {
	c := collections.CollectMap(map[string]int{"b": 2, "a": 1})
	fmt.Println(c)
	// Output: {"a":1,"b":2}
}
