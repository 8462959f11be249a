package collections_test

import (
	"math/rand"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-laravel-collections/collections"
)

func nested() *collections.Collection {
	return collections.New(1, []any{2, []any{3, []any{4}}})
}

func TestFlatten(t *testing.T) {
	assert.Equal(t, []any{1, 2, 3, 4}, nested().Flatten().ToSlice())
	assert.Equal(t, []any{1, 2, []any{3, []any{4}}}, nested().Flatten(1).ToSlice())
	assert.Equal(t, []any{1, 2, 3, 4}, nested().Flatten(-1).ToSlice())
}

func TestFlattenDepthZeroDoesNotFlatten(t *testing.T) {
	c := assoc("a", 1, "b", []any{2, 3})
	flat := c.Flatten(0)
	assert.Equal(t, []any{1, []any{2, 3}}, flat.ToSlice())
	assert.Equal(t, []any{0, 1}, keysOf(flat))
}

func TestFlattenIsIdempotent(t *testing.T) {
	once := nested().Flatten()
	assert.Equal(t, once.ToSlice(), once.Flatten().ToSlice())
}

func TestFlattenDescendsIntoCollectionsAndMaps(t *testing.T) {
	c := assoc("#foo", assoc("bar", "baz"), "#baz", collections.New("x", []any{"y"}))
	assert.Equal(t, []any{"baz", "x", "y"}, c.Flatten().ToSlice())
}

func TestCollapse(t *testing.T) {
	c := collections.New([]any{1}, []any{2, 3}, 4)
	assert.Equal(t, []any{1, 2, 3, 4}, c.Collapse().ToSlice())

	c = collections.New(collections.New("a"), collections.New("b", []any{"c"}))
	assert.Equal(t, []any{"a", "b", []any{"c"}}, c.Collapse().ToSlice())
}

// ─────────────────────────────────────────────────────────────────────────────
// Slicing
// ─────────────────────────────────────────────────────────────────────────────

func oneToEight() *collections.Collection { return collections.New(1, 2, 3, 4, 5, 6, 7, 8) }

func TestSlice(t *testing.T) {
	s := oneToEight().Slice(3)
	assert.Equal(t, []any{4, 5, 6, 7, 8}, s.ToSlice())
	assert.Equal(t, []any{3, 4, 5, 6, 7}, keysOf(s))

	assert.Equal(t, []any{7, 8}, oneToEight().Slice(-2).ToSlice())
	assert.Equal(t, []any{3, 4}, oneToEight().Slice(2, 2).ToSlice())
	assert.Equal(t, []any{4, 5, 6}, oneToEight().Slice(-5, -2).ToSlice())
	assert.Equal(t, []any{4, 5, 6, 7}, oneToEight().Slice(3, -1).ToSlice())
	assert.True(t, oneToEight().Slice(10).IsEmpty())
}

func TestTake(t *testing.T) {
	c := collections.New("taylor", "dayle", "shawn")
	assert.Equal(t, []any{"taylor", "dayle"}, c.Take(2).ToSlice())

	last := c.Take(-2)
	assert.Equal(t, []any{"dayle", "shawn"}, last.ToSlice())
	assert.Equal(t, []any{1, 2}, keysOf(last))
}

func TestForPage(t *testing.T) {
	page := collections.New(1, 2, 3, 4, 5, 6, 7, 8, 9).ForPage(2, 3)
	assert.Equal(t, []any{4, 5, 6}, page.ToSlice())
	assert.Equal(t, []any{0, 1, 2}, keysOf(page))

	assert.True(t, collections.New(1, 2).ForPage(3, 2).IsEmpty())
}

func TestEvery(t *testing.T) {
	c := collections.New("a", "b", "c", "d", "e", "f")

	every := c.Every(4)
	assert.Equal(t, []any{"a", "e"}, every.ToSlice())
	assert.Equal(t, []any{0, 4}, keysOf(every))

	assert.Equal(t, []any{"b", "f"}, c.Every(4, 1).ToSlice())
	assert.Equal(t, []any{"d"}, c.Every(4, 3).ToSlice())
	assert.True(t, c.Every(4, 4).IsEmpty())
	assert.Equal(t, c.ToSlice(), c.Every(1).ToSlice())
	assert.True(t, c.Every(0).IsEmpty())
}

func TestChunk(t *testing.T) {
	chunks := collections.New(1, 2, 3, 4, 5, 6, 7, 8, 9, 10).Chunk(3)
	require.Equal(t, 4, chunks.Count())

	first := chunks.Get(0).(*collections.Collection)
	assert.Equal(t, []any{1, 2, 3}, first.ToSlice())

	last := chunks.Get(3).(*collections.Collection)
	assert.Equal(t, []any{10}, last.ToSlice())
	assert.Equal(t, []any{9}, keysOf(last))

	assert.True(t, collections.New(1, 2).Chunk(0).IsEmpty())
	assert.True(t, collections.New(1, 2).Chunk(-1).IsEmpty())
}

func TestSplit(t *testing.T) {
	groups := collections.New("a", "b", "c").Split(2)
	require.Equal(t, 2, groups.Count())
	assert.Equal(t, []any{"a", "b"}, groups.Get(0).(*collections.Collection).ToSlice())
	second := groups.Get(1).(*collections.Collection)
	assert.Equal(t, []any{"c"}, second.ToSlice())
	assert.Equal(t, []any{2}, keysOf(second))
}

func TestSplitSizes(t *testing.T) {
	sizes := func(c *collections.Collection) []any {
		return c.Map(func(g, _ any) any { return g.(*collections.Collection).Count() }).ToSlice()
	}
	assert.Equal(t, []any{2, 2, 1}, sizes(collections.New(1, 2, 3, 4, 5).Split(3)))
	assert.Equal(t, []any{1, 1, 1}, sizes(collections.New(1, 2, 3).Split(6)))
	assert.Equal(t, []any{3, 3, 2, 2}, sizes(collections.New(1, 2, 3, 4, 5, 6, 7, 8, 9, 10).Split(4)))
	assert.True(t, collections.Empty().Split(2).IsEmpty())
	assert.True(t, collections.New(1).Split(0).IsEmpty())
}

func TestPartition(t *testing.T) {
	yes, no := collections.New(1, 2, 3, 4, 5, 6).Partition(func(v any) bool { return v.(int) < 3 })
	assert.Equal(t, []any{1, 2}, yes.ToSlice())
	assert.Equal(t, []any{3, 4, 5, 6}, no.ToSlice())
	assert.Equal(t, []any{2, 3, 4, 5}, keysOf(no))

	courses := collections.New(
		map[string]any{"free": true, "title": "Basic"},
		map[string]any{"free": false, "title": "Premium"},
	)
	free, paid := courses.Partition("free")
	assert.Equal(t, []any{"Basic"}, free.Pluck("title").ToSlice())
	assert.Equal(t, []any{"Premium"}, paid.Pluck("title").ToSlice())
}

// ─────────────────────────────────────────────────────────────────────────────
// Sampling
// ─────────────────────────────────────────────────────────────────────────────

func seeded(t *testing.T) {
	withConfig(t, collections.Config{Logger: zerolog.Nop(), Rand: rand.New(rand.NewSource(42))})
}

func TestRandom(t *testing.T) {
	seeded(t)
	c := collections.New(1, 2, 3, 4, 5, 6)
	v, err := c.Random()
	require.NoError(t, err)
	assert.Contains(t, c.ToSlice(), v)

	_, err = collections.Empty().Random()
	assert.ErrorIs(t, err, collections.ErrInvalidArgument)
}

func TestRandomN(t *testing.T) {
	seeded(t)
	c := collections.New(1, 2, 3, 4, 5, 6)

	sample, err := c.RandomN(3)
	require.NoError(t, err)
	require.Equal(t, 3, sample.Count())
	assert.Equal(t, 3, sample.UniqueStrict().Count())
	for k, v := range sample.Iter() {
		assert.Contains(t, c.ToSlice(), v)
		assert.Equal(t, c.Get(k), v)
	}

	keys := keysOf(sample)
	for i := 1; i < len(keys); i++ {
		assert.Less(t, keys[i-1].(int), keys[i].(int))
	}

	empty, err := c.RandomN(0)
	require.NoError(t, err)
	assert.True(t, empty.IsEmpty())

	all, err := c.RandomN(6)
	require.NoError(t, err)
	assert.Equal(t, c.ToSlice(), all.ToSlice())
}

func TestRandomNTooMany(t *testing.T) {
	_, err := collections.New(1, 2, 3, 4, 5, 6).RandomN(7)
	require.ErrorIs(t, err, collections.ErrInvalidArgument)
	assert.Contains(t, err.Error(), "you requested 7 items, but there are only 6 items in the collection")
}

func TestImplode(t *testing.T) {
	c := collections.New(
		map[string]any{"name": "taylor", "email": "foo"},
		map[string]any{"name": "dayle", "email": "bar"},
	)
	assert.Equal(t, "foobar", c.Implode("email"))
	assert.Equal(t, "foo,bar", c.Implode("email", ","))

	names := collections.New("taylor", "dayle")
	assert.Equal(t, "taylordayle", names.Implode(""))
	assert.Equal(t, "taylor,dayle", names.Implode(","))
	assert.Equal(t, "1, 2.5, 1, ", collections.New(1, 2.5, true, false).Implode(", "))
}
