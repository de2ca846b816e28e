// Copyright 2024 The Cockroach Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cuckoo

// Map is an unordered map from keys to values backed by the inline
// cuckoo grid: entries are embedded directly in table slots next to an
// occupancy bit, so lookups touch no pointers beyond the grid itself.
//
// A Map is NOT goroutine-safe.
type Map[K comparable, V any] struct {
	tbl table[K, Entry[K, V], *inlineStore[Entry[K, V]]]
}

// NewMap constructs an empty Map. The zero value for a Map is not
// usable.
func NewMap[K comparable, V any](opts ...Option) *Map[K, V] {
	m := &Map[K, V]{}
	m.tbl.init(&inlineStore[Entry[K, V]]{}, mapKey[K, V], applyOptions(opts))
	return m
}

func mapKey[K comparable, V any](e *Entry[K, V]) *K { return &e.Key }

// Insert inserts the key/value pair. It returns true on a new insertion
// and false if an entry with an equal key is already present, in which
// case the map is unchanged.
func (m *Map[K, V]) Insert(key K, value V) bool {
	return m.tbl.insert(Entry[K, V]{Key: key, Value: value})
}

// InsertEntry is Insert for a prepared Entry.
func (m *Map[K, V]) InsertEntry(e Entry[K, V]) bool {
	return m.tbl.insert(e)
}

// InsertMany inserts each entry in order and returns one outcome per
// input, each the result of the corresponding single Insert. A later
// entry observes the effects of earlier ones, including duplicate
// suppression.
func (m *Map[K, V]) InsertMany(entries ...Entry[K, V]) []bool {
	results := make([]bool, len(entries))
	for i := range entries {
		results[i] = m.tbl.insert(entries[i])
	}
	return results
}

// InsertPairs inserts key/value pairs drawn from parallel slices. The
// shorter slice bounds the batch.
func (m *Map[K, V]) InsertPairs(keys []K, values []V) []bool {
	n := min(len(keys), len(values))
	results := make([]bool, n)
	for i := 0; i < n; i++ {
		results[i] = m.tbl.insert(Entry[K, V]{Key: keys[i], Value: values[i]})
	}
	return results
}

// InsertOrAssign inserts the key/value pair, overwriting the value of
// an existing entry with an equal key. It returns true on a new
// insertion and false when an existing entry was assigned.
func (m *Map[K, V]) InsertOrAssign(key K, value V) bool {
	return m.tbl.insertOrAssign(Entry[K, V]{Key: key, Value: value})
}

// InsertOrAssignMany applies InsertOrAssign to each entry in order and
// returns one outcome per input.
func (m *Map[K, V]) InsertOrAssignMany(entries ...Entry[K, V]) []bool {
	results := make([]bool, len(entries))
	for i := range entries {
		results[i] = m.tbl.insertOrAssign(entries[i])
	}
	return results
}

// Get retrieves the value for key, returning ok=false if the key is not
// present.
func (m *Map[K, V]) Get(key K) (value V, ok bool) {
	p, ok := m.tbl.lookup(key)
	if !ok {
		return value, false
	}
	return m.tbl.slots.at(p).Value, true
}

// Find returns a pointer to the value for key, or nil if the key is not
// present. The pointer is valid only until the next mutating call on
// the map.
func (m *Map[K, V]) Find(key K) *V {
	p, ok := m.tbl.lookup(key)
	if !ok {
		return nil
	}
	return &m.tbl.slots.at(p).Value
}

// Contains reports whether an entry with the given key is present.
func (m *Map[K, V]) Contains(key K) bool {
	_, ok := m.tbl.lookup(key)
	return ok
}

// Count returns the number of entries with the given key: 1 or 0.
func (m *Map[K, V]) Count(key K) int {
	if m.Contains(key) {
		return 1
	}
	return 0
}

// Erase removes the entry with the given key, returning whether an
// entry was removed.
func (m *Map[K, V]) Erase(key K) bool {
	return m.tbl.erase(key)
}

// EraseMany erases each key in order and returns one outcome per input.
func (m *Map[K, V]) EraseMany(keys ...K) []bool {
	results := make([]bool, len(keys))
	for i, k := range keys {
		results[i] = m.tbl.erase(k)
	}
	return results
}

// EraseIf removes every entry satisfying the predicate and returns the
// number of removals.
func (m *Map[K, V]) EraseIf(pred func(key K, value V) bool) int {
	return m.tbl.eraseIf(func(e *Entry[K, V]) bool {
		return pred(e.Key, e.Value)
	})
}

// CountIf returns the number of entries satisfying the predicate.
func (m *Map[K, V]) CountIf(pred func(key K, value V) bool) int {
	return m.tbl.countIf(func(e *Entry[K, V]) bool {
		return pred(e.Key, e.Value)
	})
}

// Extract removes the entry with the given key and hands it to the
// caller. ok is false, and the entry zero, if the key is not present.
func (m *Map[K, V]) Extract(key K) (e Entry[K, V], ok bool) {
	return m.tbl.extract(key)
}

// ExtractMany extracts each key in order. The result holds one entry
// per input key, zero for keys that were not present.
func (m *Map[K, V]) ExtractMany(keys ...K) []Entry[K, V] {
	results := make([]Entry[K, V], len(keys))
	for i, k := range keys {
		if e, ok := m.tbl.extract(k); ok {
			results[i] = e
		}
	}
	return results
}

// Clear removes all entries, keeping the current grid shape.
func (m *Map[K, V]) Clear() {
	m.tbl.clear()
}

// Swap exchanges the entire state of the two maps. Pointers previously
// returned by Find on either map are invalidated.
func (m *Map[K, V]) Swap(other *Map[K, V]) {
	m.tbl, other.tbl = other.tbl, m.tbl
}

// Resize sets the per-sub-table capacity and reinserts every live
// entry. newCapacity <= 0 selects the growth schedule.
func (m *Map[K, V]) Resize(newCapacity int) bool {
	return m.tbl.resize(newCapacity)
}

// Restrain grows the sub-table count, widening the per-key choice set.
// newTables <= 2, or below the current count, is rejected with no state
// change.
func (m *Map[K, V]) Restrain(newTables int) bool {
	return m.tbl.restrain(newTables)
}

// Len returns the number of entries in the map.
func (m *Map[K, V]) Len() int { return m.tbl.used }

// LoadFactor returns the fraction of occupied slots, in [0, 1].
func (m *Map[K, V]) LoadFactor() float64 { return m.tbl.loadFactor() }

// TablesCount returns the sub-table count T.
func (m *Map[K, V]) TablesCount() int { return m.tbl.tables }

// Capacity returns the per-sub-table capacity C.
func (m *Map[K, V]) Capacity() int { return m.tbl.capacity }

// TotalCapacity returns T*C.
func (m *Map[K, V]) TotalCapacity() int { return m.tbl.tables * m.tbl.capacity }

// All calls yield for each key and value present in the map until yield
// returns false. The iteration order is the grid order, which is not
// stable across structural mutations.
func (m *Map[K, V]) All(yield func(key K, value V) bool) {
	m.tbl.all(func(_ place, e *Entry[K, V]) bool {
		return yield(e.Key, e.Value)
	})
}

// Walk calls yield for each occupied slot with its sub-table and slot
// coordinates. It is a diagnostic affordance for inspecting placement,
// not a stable iteration contract.
func (m *Map[K, V]) Walk(yield func(table, slot int, key K, value V) bool) {
	m.tbl.all(func(p place, e *Entry[K, V]) bool {
		return yield(p.table, p.slot, e.Key, e.Value)
	})
}
