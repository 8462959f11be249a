package arr_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-laravel-collections/arr"
)

// ─────────────────────────────────────────────────────────────────────────────
// helpers
// ─────────────────────────────────────────────────────────────────────────────

func assertKeys(t *testing.T, m *arr.Map, want []any) {
	t.Helper()
	assert.Equal(t, want, m.Keys())
}

func assertValues(t *testing.T, m *arr.Map, want []any) {
	t.Helper()
	assert.Equal(t, want, m.Values())
}

// ─────────────────────────────────────────────────────────────────────────────
// Map
// ─────────────────────────────────────────────────────────────────────────────

func TestZeroMapIsUsable(t *testing.T) {
	var m arr.Map
	assert.Equal(t, 0, m.Len())
	assert.False(t, m.Has("a"))
	m.Set("a", 1)
	m.Append(2)
	assertKeys(t, &m, []any{"a", 0})
}

func TestList(t *testing.T) {
	m := arr.List("a", "b", "c")
	assertKeys(t, m, []any{0, 1, 2})
	assertValues(t, m, []any{"a", "b", "c"})
	assert.True(t, m.IsList())
}

func TestSetKeepsPosition(t *testing.T) {
	m := arr.New().Set("a", 1).Set("b", 2).Set("a", 3)
	assertKeys(t, m, []any{"a", "b"})
	assertValues(t, m, []any{3, 2})
}

func TestSetNormalisesKeys(t *testing.T) {
	m := arr.New().Set("1", "one").Set(int64(2), "two").Set(true, "yes")
	assertKeys(t, m, []any{1, 2})
	v, _ := m.Get(1)
	assert.Equal(t, "yes", v)
	assert.True(t, m.Has("2"), `Has("2") should find int key 2`)
}

func TestAppendUsesNextIndex(t *testing.T) {
	m := arr.New().Set(5, "five").Set("x", "ex")
	assert.Equal(t, 6, m.Append("six"))
	m.Delete(6)
	assert.Equal(t, 7, m.Append("seven"))
	m.Set(-3, "neg")
	assert.Equal(t, 8, m.NextIndex())
}

func TestPopReleasesHighestIndex(t *testing.T) {
	m := arr.List("a", "b", "c")
	e, ok := m.Pop()
	require.True(t, ok)
	assert.Equal(t, arr.Entry{Key: 2, Value: "c"}, e)
	assert.Equal(t, 2, m.Append("d"))
}

func TestShiftKeepsKeys(t *testing.T) {
	m := arr.List("a", "b", "c")
	e, ok := m.Shift()
	require.True(t, ok)
	assert.Equal(t, "a", e.Value)
	assertKeys(t, m, []any{1, 2})

	_, ok = arr.New().Shift()
	assert.False(t, ok)
}

func TestPrepend(t *testing.T) {
	m := arr.New().Set("b", 2).Set("c", 3)
	m.Prepend("a", 1)
	assertKeys(t, m, []any{"a", "b", "c"})
	m.Prepend("c", 30)
	assertKeys(t, m, []any{"c", "a", "b"})
}

func TestFirstLast(t *testing.T) {
	m := arr.New().Set("x", 1).Set("y", 2)
	first, _ := m.First()
	last, _ := m.Last()
	assert.Equal(t, "x", first.Key)
	assert.Equal(t, "y", last.Key)

	_, ok := arr.New().First()
	assert.False(t, ok)
}

func TestBackward(t *testing.T) {
	var got []any
	for _, v := range arr.List(1, 2, 3).Backward() {
		got = append(got, v)
	}
	assert.Equal(t, []any{3, 2, 1}, got)
}

func TestAllStopsEarly(t *testing.T) {
	n := 0
	for range arr.List(1, 2, 3, 4).All() {
		n++
		if n == 2 {
			break
		}
	}
	assert.Equal(t, 2, n)
}

func TestCloneIsIndependent(t *testing.T) {
	m := arr.List("a", "b")
	c := m.Clone()
	c.Set(0, "z")
	c.Append("c")
	assertValues(t, m, []any{"a", "b"})
	assertValues(t, c, []any{"z", "b", "c"})
}

func TestReindex(t *testing.T) {
	r := arr.New().Set(3, "a").Set("k", "b").Set(9, "c").Reindex()
	assertKeys(t, r, []any{0, "k", 1})
	assert.Equal(t, 2, r.NextIndex())
}

func TestIsList(t *testing.T) {
	assert.True(t, arr.New().IsList(), "empty Map is a list")
	assert.False(t, arr.New().Set(1, "a").Set(0, "b").IsList(), "out-of-order keys")
	assert.False(t, arr.New().Set("a", 1).IsList(), "string keys")
}

func TestFromEntries(t *testing.T) {
	m := arr.FromEntries(arr.Entry{Key: "a", Value: 1}, arr.Entry{Key: "b", Value: 2}, arr.Entry{Key: "a", Value: 3})
	assertKeys(t, m, []any{"a", "b"})
	assertValues(t, m, []any{3, 2})
	assert.Equal(t, "(a, 3)", m.Entries()[0].String())
}

// ─────────────────────────────────────────────────────────────────────────────
// Keys and array-like values
// ─────────────────────────────────────────────────────────────────────────────

type stringer struct{}

func (stringer) String() string { return "7" }

func TestNormalizeKey(t *testing.T) {
	cases := []struct {
		in   any
		want any
	}{
		{1, 1},
		{"8", 8},
		{"-3", -3},
		{"08", "08"},
		{"+1", "+1"},
		{"-0", "-0"},
		{" 1", " 1"},
		{"1.5", "1.5"},
		{nil, ""},
		{true, 1},
		{false, 0},
		{1.9, 1},
		{-1.9, -1},
		{uint8(4), 4},
		{int32(-2), -2},
		{stringer{}, 7},
		{[]int{1}, "[1]"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, arr.NormalizeKey(c.in), "NormalizeKey(%#v)", c.in)
	}
}

func TestOf(t *testing.T) {
	m, ok := arr.Of(map[string]int{"b": 2, "10": 10, "a": 1, "2": 20})
	require.True(t, ok)
	assertKeys(t, m, []any{2, 10, "a", "b"})

	l, _ := arr.Of([]string{"x", "y"})
	assertValues(t, l, []any{"x", "y"})

	same := arr.List(1)
	got, _ := arr.Of(same)
	assert.Same(t, same, got)

	for _, v := range []any{nil, 3, "str", []byte("raw"), struct{}{}} {
		assert.False(t, arr.Accessible(v), "Accessible(%#v)", v)
	}
}

func TestOfSortsMixedMapKeys(t *testing.T) {
	m, ok := arr.Of(map[any]string{"b": "", 3: "", "-1": "", "a": "", 1: "", "01": ""})
	require.True(t, ok)
	assertKeys(t, m, []any{-1, 1, 3, "01", "a", "b"})
}

func TestWrap(t *testing.T) {
	assertValues(t, arr.Wrap("a"), []any{"a"})
	assertValues(t, arr.Wrap([]int{1, 2}), []any{1, 2})
	assert.Equal(t, 0, arr.Wrap(nil).Len())
}

func TestFromStruct(t *testing.T) {
	m, ok := arr.FromStruct(&profile{Name: "Ann", Email: "a@b.c", Secret: "s"})
	require.True(t, ok)
	assertKeys(t, m, []any{"Name", "email_address", "Tags"})

	_, ok = arr.FromStruct(3)
	assert.False(t, ok)

	var nilp *profile
	_, ok = arr.FromStruct(nilp)
	assert.False(t, ok)
}
