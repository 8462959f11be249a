package arr

import (
	"iter"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Map is an ordered mapping from int or string keys to arbitrary values,
// with the semantics of a PHP array:
//
//   - iteration follows insertion order;
//   - re-assigning a key keeps its position;
//   - [Map.Append] uses the next integer key, one past the largest
//     non-negative integer key ever stored.
//
// Keys passed to any method are normalised with [NormalizeKey], so Get("1")
// and Get(1) address the same entry.
//
// The zero value is an empty Map ready to use. A Map is not safe for
// concurrent mutation.
type Map struct {
	om   *orderedmap.OrderedMap[any, any]
	next int
}

// New returns an empty Map.
func New() *Map {
	return &Map{om: orderedmap.New[any, any]()}
}

// List returns a Map holding values under the keys 0 … len(values)-1.
func List(values ...any) *Map {
	m := New()
	for _, v := range values {
		m.Append(v)
	}
	return m
}

// FromEntries builds a Map from entries in order; later duplicates overwrite
// earlier ones but keep the first position.
func FromEntries(entries ...Entry) *Map {
	m := New()
	for _, e := range entries {
		m.Set(e.Key, e.Value)
	}
	return m
}

func (m *Map) init() {
	if m.om == nil {
		m.om = orderedmap.New[any, any]()
	}
}

// Len returns the number of entries.
func (m *Map) Len() int {
	if m == nil || m.om == nil {
		return 0
	}
	return m.om.Len()
}

// Get returns the value stored under key together with a presence flag.
func (m *Map) Get(key any) (any, bool) {
	if m.Len() == 0 {
		return nil, false
	}
	return m.om.Get(NormalizeKey(key))
}

// Has reports whether key is present. A present key holding nil counts.
func (m *Map) Has(key any) bool {
	_, ok := m.Get(key)
	return ok
}

// Set stores value under key and returns m.
func (m *Map) Set(key, value any) *Map {
	m.init()
	k := NormalizeKey(key)
	m.om.Set(k, value)
	if i, ok := k.(int); ok && i >= m.next {
		m.next = i + 1
	}
	return m
}

// Append stores value under the next integer key and returns that key.
func (m *Map) Append(value any) int {
	m.init()
	k := m.next
	m.om.Set(k, value)
	m.next = k + 1
	return k
}

// NextIndex returns the key the next [Map.Append] will use.
func (m *Map) NextIndex() int {
	if m == nil {
		return 0
	}
	return m.next
}

// Delete removes key and returns the value it held.
func (m *Map) Delete(key any) (any, bool) {
	if m.Len() == 0 {
		return nil, false
	}
	return m.om.Delete(NormalizeKey(key))
}

// Prepend stores value under key and moves the entry to the front.
func (m *Map) Prepend(key, value any) *Map {
	m.Set(key, value)
	_ = m.om.MoveToFront(NormalizeKey(key))
	return m
}

// First returns the oldest entry.
func (m *Map) First() (Entry, bool) {
	if m.Len() == 0 {
		return Entry{}, false
	}
	p := m.om.Oldest()
	return Entry{Key: p.Key, Value: p.Value}, true
}

// Last returns the newest entry.
func (m *Map) Last() (Entry, bool) {
	if m.Len() == 0 {
		return Entry{}, false
	}
	p := m.om.Newest()
	return Entry{Key: p.Key, Value: p.Value}, true
}

// Pop removes and returns the last entry. Popping the highest integer key
// releases it for the next [Map.Append].
func (m *Map) Pop() (Entry, bool) {
	e, ok := m.Last()
	if !ok {
		return e, false
	}
	m.om.Delete(e.Key)
	if i, isInt := e.Key.(int); isInt && i == m.next-1 {
		m.next--
	}
	return e, true
}

// Shift removes and returns the first entry. Remaining keys are untouched.
func (m *Map) Shift() (Entry, bool) {
	e, ok := m.First()
	if !ok {
		return e, false
	}
	m.om.Delete(e.Key)
	return e, true
}

// All returns an iterator over the entries in order.
func (m *Map) All() iter.Seq2[any, any] {
	return func(yield func(any, any) bool) {
		if m.Len() == 0 {
			return
		}
		for p := m.om.Oldest(); p != nil; p = p.Next() {
			if !yield(p.Key, p.Value) {
				return
			}
		}
	}
}

// Backward returns an iterator over the entries from newest to oldest.
func (m *Map) Backward() iter.Seq2[any, any] {
	return func(yield func(any, any) bool) {
		if m.Len() == 0 {
			return
		}
		for p := m.om.Newest(); p != nil; p = p.Prev() {
			if !yield(p.Key, p.Value) {
				return
			}
		}
	}
}

// Keys returns the keys in order.
func (m *Map) Keys() []any {
	out := make([]any, 0, m.Len())
	for k := range m.All() {
		out = append(out, k)
	}
	return out
}

// Values returns the values in order.
func (m *Map) Values() []any {
	out := make([]any, 0, m.Len())
	for _, v := range m.All() {
		out = append(out, v)
	}
	return out
}

// Entries returns the key/value pairs in order.
func (m *Map) Entries() []Entry {
	out := make([]Entry, 0, m.Len())
	for k, v := range m.All() {
		out = append(out, Entry{Key: k, Value: v})
	}
	return out
}

// Clone returns a shallow copy of m, including its append counter.
func (m *Map) Clone() *Map {
	out := New()
	for k, v := range m.All() {
		out.om.Set(k, v)
	}
	if m != nil {
		out.next = m.next
	}
	return out
}

// Reindex returns a copy of m in which integer keys are renumbered from 0
// in order and string keys are kept.
func (m *Map) Reindex() *Map {
	out := New()
	for k, v := range m.All() {
		if _, ok := k.(int); ok {
			out.Append(v)
		} else {
			out.Set(k, v)
		}
	}
	return out
}

// IsList reports whether the keys are exactly 0 … Len()-1 in order.
func (m *Map) IsList() bool {
	i := 0
	for k := range m.All() {
		if n, ok := k.(int); !ok || n != i {
			return false
		}
		i++
	}
	return true
}
