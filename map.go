package formflat

import "iter"

// Entry is a single key/value pair of a [Map].
type Entry struct {
	Key   string
	Value Value
}

// Map is a string-keyed mapping that remembers the order in which keys were
// first set. The zero Map is empty and ready to use.
type Map struct {
	keys  []string
	index map[string]int
	vals  []Value
}

// NewMap returns a Map holding entries in the given order. A repeated key
// keeps its first position and its last value.
func NewMap(entries ...Entry) *Map {
	m := &Map{}
	for _, e := range entries {
		m.Set(e.Key, e.Value)
	}
	return m
}

// Len returns the number of entries in m.
func (m *Map) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

// Set stores v under key. Overwriting an existing key keeps its position.
func (m *Map) Set(key string, v Value) {
	if i, ok := m.index[key]; ok {
		m.vals[i] = v
		return
	}
	if m.index == nil {
		m.index = make(map[string]int)
	}
	m.index[key] = len(m.keys)
	m.keys = append(m.keys, key)
	m.vals = append(m.vals, v)
}

// Get returns the value stored under key. A missing key yields [Undefined]
// and false.
func (m *Map) Get(key string) (Value, bool) {
	if m == nil {
		return Undefined(), false
	}
	i, ok := m.index[key]
	if !ok {
		return Undefined(), false
	}
	return m.vals[i], true
}

// Has reports whether key is present in m.
func (m *Map) Has(key string) bool {
	_, ok := m.Get(key)
	return ok
}

// Delete removes key from m, preserving the order of the remaining keys.
func (m *Map) Delete(key string) {
	if m == nil {
		return
	}
	i, ok := m.index[key]
	if !ok {
		return
	}
	m.keys = append(m.keys[:i], m.keys[i+1:]...)
	m.vals = append(m.vals[:i], m.vals[i+1:]...)
	delete(m.index, key)
	for j := i; j < len(m.keys); j++ {
		m.index[m.keys[j]] = j
	}
}

// Keys returns the keys of m in order.
func (m *Map) Keys() []string {
	if m == nil {
		return nil
	}
	return append([]string(nil), m.keys...)
}

// Entries returns a copy of the entries of m in order.
func (m *Map) Entries() []Entry {
	if m == nil {
		return nil
	}
	out := make([]Entry, len(m.keys))
	for i, k := range m.keys {
		out[i] = Entry{Key: k, Value: m.vals[i]}
	}
	return out
}

// All iterates over the entries of m in order.
func (m *Map) All() iter.Seq2[string, Value] {
	return func(yield func(string, Value) bool) {
		if m == nil {
			return
		}
		for i, k := range m.keys {
			if !yield(k, m.vals[i]) {
				return
			}
		}
	}
}

// Equal reports whether m and o hold equal entries in the same order.
func (m *Map) Equal(o *Map) bool {
	if m.Len() != o.Len() {
		return false
	}
	for i := 0; i < m.Len(); i++ {
		if m.keys[i] != o.keys[i] || !m.vals[i].Equal(o.vals[i]) {
			return false
		}
	}
	return true
}
