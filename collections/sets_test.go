package collections_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hasbyte1/go-laravel-collections/arr"
	"github.com/hasbyte1/go-laravel-collections/collections"
)

func TestMerge(t *testing.T) {
	c := collections.New("a", "b").Merge([]any{"c", "d"})
	assert.Equal(t, []any{"a", "b", "c", "d"}, c.ToSlice())
	assert.Equal(t, []any{0, 1, 2, 3}, keysOf(c))

	m := assoc("id", 1, "name", "Hello").Merge(map[string]any{"name": "World", "id": 1})
	assert.Equal(t, []any{"id", "name"}, keysOf(m))
	assert.Equal(t, "World", m.Get("name"))
}

func TestMergeRenumbersIntegerKeys(t *testing.T) {
	c := assoc(5, "x", "k", "v").Merge(assoc(9, "y"))
	assert.Equal(t, []any{0, "k", 1}, keysOf(c))
}

func TestMergeNil(t *testing.T) {
	assert.Equal(t, []any{"a"}, collections.New("a").Merge(nil).ToSlice())
}

func TestUnion(t *testing.T) {
	c := assoc("name", "Hello").Union(map[string]any{"id": 1, "name": "World"})
	assert.Equal(t, []any{"name", "id"}, keysOf(c))
	assert.Equal(t, []any{"Hello", 1}, c.ToSlice())
}

func TestDiff(t *testing.T) {
	c := assoc("id", 1, "first_word", "Hello")
	diff := c.Diff(assoc("first_word", "Hello", "last_word", "World"))
	assert.Equal(t, []any{"id"}, keysOf(diff))

	assert.Equal(t, []any{3}, collections.New(1, "2", 3).Diff([]any{"1", 2}).ToSlice())
}

func TestDiffKeys(t *testing.T) {
	c := assoc("id", 1, "first_word", "Hello")
	diff := c.DiffKeys(assoc("id", 123, "foo_bar", "Hello"))
	assert.Equal(t, []any{"first_word"}, keysOf(diff))
}

func TestIntersect(t *testing.T) {
	c := assoc("id", 1, "first_word", "Hello")
	out := c.Intersect(assoc("first_world", "Hello", "last_word", "World"))
	assert.Equal(t, []any{"first_word"}, keysOf(out))
	assert.True(t, c.Intersect(nil).IsEmpty())
}

func TestUnique(t *testing.T) {
	c := collections.New("Hello", "World", "World").Unique()
	assert.Equal(t, []any{"Hello", "World"}, c.ToSlice())

	c = collections.New("a", "b", "A", "a", "B")
	assert.Equal(t, []any{0, 1, 2, 4}, keysOf(c.Unique()))
}

func TestUniqueByKey(t *testing.T) {
	c := collections.New(
		map[string]any{"id": 1, "first": "Taylor", "last": "Otwell"},
		map[string]any{"id": 2, "first": "Taylor", "last": "Otwell"},
		map[string]any{"id": 3, "first": "Abigail", "last": "Otwell"},
		map[string]any{"id": 4, "first": "Abigail", "last": "Otwell"},
		map[string]any{"id": 5, "first": "Taylor", "last": "Swift"},
	)
	assert.Equal(t, []any{0, 2}, keysOf(c.Unique("first")))

	byName := c.Unique(func(v any) any {
		m := v.(map[string]any)
		return m["first"].(string) + m["last"].(string)
	})
	assert.Equal(t, []any{0, 2, 4}, keysOf(byName))
}

func TestUniqueStrict(t *testing.T) {
	c := collections.New(1, "1", 2, 2)
	assert.Equal(t, []any{0, 2}, keysOf(c.Unique()))
	assert.Equal(t, []any{0, 1, 2}, keysOf(c.UniqueStrict()))
}

func TestOnly(t *testing.T) {
	c := assoc("first", "Taylor", "last", "Otwell", "email", "taylorotwell@gmail.com")
	assert.Equal(t, []any{"first", "email"}, keysOf(c.Only("email", "first")))
	assert.Equal(t, []any{"first"}, keysOf(c.Only([]any{"first", "missing"})))
	assert.Equal(t, keysOf(c), keysOf(c.Only()))
	assert.Equal(t, keysOf(c), keysOf(c.Only(nil)))
}

func TestExcept(t *testing.T) {
	c := assoc("first", "Taylor", "last", "Otwell", "email", "taylorotwell@gmail.com")
	assert.Equal(t, []any{"first", "email"}, keysOf(c.Except("last")))
	assert.Equal(t, []any{"first"}, keysOf(c.Except([]any{"last", "email", "missing"})))
	assert.Equal(t, []any{1}, keysOf(collections.New("a", "b").Except(0)))
}

func TestExceptDotPath(t *testing.T) {
	m := arr.New()
	arr.Set(m, "user.name", "taylor")
	arr.Set(m, "user.age", 34)
	c := collections.From(m)

	out := c.Except("user.age")
	nested := out.Get("user").(*arr.Map)
	assert.Equal(t, []any{"name"}, nested.Keys())

	assert.True(t, c.Get("user").(*arr.Map).Has("age"))
}
