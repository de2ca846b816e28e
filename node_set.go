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

// NodeSet is a Set whose values live behind owned heap cells rather
// than inline in the grid: slot memory cost is bounded by a pointer and
// an empty slot holds no allocation.
//
// A NodeSet is NOT goroutine-safe.
type NodeSet[V comparable] struct {
	tbl table[V, V, *nodeStore[V]]
}

// NewNodeSet constructs an empty NodeSet. The zero value for a NodeSet
// is not usable.
func NewNodeSet[V comparable](opts ...Option) *NodeSet[V] {
	s := &NodeSet[V]{}
	s.tbl.init(&nodeStore[V]{}, setKey[V], applyOptions(opts))
	return s
}

// Insert inserts the value. It returns true on a new insertion and
// false if an equal value is already present.
func (s *NodeSet[V]) Insert(value V) bool {
	return s.tbl.insert(value)
}

// InsertMany inserts each value in order and returns one outcome per
// input.
func (s *NodeSet[V]) InsertMany(values ...V) []bool {
	results := make([]bool, len(values))
	for i := range values {
		results[i] = s.tbl.insert(values[i])
	}
	return results
}

// Get retrieves the stored value equal to value, returning ok=false if
// it is not present.
func (s *NodeSet[V]) Get(value V) (stored V, ok bool) {
	p, ok := s.tbl.lookup(value)
	if !ok {
		return stored, false
	}
	return *s.tbl.slots.at(p), true
}

// Contains reports whether the value is present.
func (s *NodeSet[V]) Contains(value V) bool {
	_, ok := s.tbl.lookup(value)
	return ok
}

// Count returns the number of stored values equal to value: 1 or 0.
func (s *NodeSet[V]) Count(value V) int {
	if s.Contains(value) {
		return 1
	}
	return 0
}

// Erase removes the value, returning whether it was present.
func (s *NodeSet[V]) Erase(value V) bool {
	return s.tbl.erase(value)
}

// EraseMany erases each value in order and returns one outcome per
// input.
func (s *NodeSet[V]) EraseMany(values ...V) []bool {
	results := make([]bool, len(values))
	for i := range values {
		results[i] = s.tbl.erase(values[i])
	}
	return results
}

// EraseIf removes every value satisfying the predicate and returns the
// number of removals.
func (s *NodeSet[V]) EraseIf(pred func(value V) bool) int {
	return s.tbl.eraseIf(func(e *V) bool { return pred(*e) })
}

// CountIf returns the number of values satisfying the predicate.
func (s *NodeSet[V]) CountIf(pred func(value V) bool) int {
	return s.tbl.countIf(func(e *V) bool { return pred(*e) })
}

// Extract removes the value and hands ownership to the caller. ok is
// false, and the value zero, if it is not present.
func (s *NodeSet[V]) Extract(value V) (stored V, ok bool) {
	return s.tbl.extract(value)
}

// ExtractMany extracts each value in order. The result holds one value
// per input, zero for values that were not present.
func (s *NodeSet[V]) ExtractMany(values ...V) []V {
	results := make([]V, len(values))
	for i := range values {
		if v, ok := s.tbl.extract(values[i]); ok {
			results[i] = v
		}
	}
	return results
}

// Clear removes all values, keeping the current grid shape.
func (s *NodeSet[V]) Clear() {
	s.tbl.clear()
}

// Swap exchanges the entire state of the two sets.
func (s *NodeSet[V]) Swap(other *NodeSet[V]) {
	s.tbl, other.tbl = other.tbl, s.tbl
}

// Resize sets the per-sub-table capacity and reinserts every live
// value. newCapacity <= 0 selects the growth schedule.
func (s *NodeSet[V]) Resize(newCapacity int) bool {
	return s.tbl.resize(newCapacity)
}

// Restrain grows the sub-table count. newTables <= 2, or below the
// current count, is rejected with no state change.
func (s *NodeSet[V]) Restrain(newTables int) bool {
	return s.tbl.restrain(newTables)
}

// Len returns the number of values in the set.
func (s *NodeSet[V]) Len() int { return s.tbl.used }

// LoadFactor returns the fraction of occupied slots, in [0, 1].
func (s *NodeSet[V]) LoadFactor() float64 { return s.tbl.loadFactor() }

// TablesCount returns the sub-table count T.
func (s *NodeSet[V]) TablesCount() int { return s.tbl.tables }

// Capacity returns the per-sub-table capacity C.
func (s *NodeSet[V]) Capacity() int { return s.tbl.capacity }

// TotalCapacity returns T*C.
func (s *NodeSet[V]) TotalCapacity() int { return s.tbl.tables * s.tbl.capacity }

// All calls yield for each value in the set until yield returns false.
func (s *NodeSet[V]) All(yield func(value V) bool) {
	s.tbl.all(func(_ place, e *V) bool {
		return yield(*e)
	})
}

// Walk calls yield for each occupied slot with its sub-table and slot
// coordinates. Diagnostic affordance, not a stable iteration contract.
func (s *NodeSet[V]) Walk(yield func(table, slot int, value V) bool) {
	s.tbl.all(func(p place, e *V) bool {
		return yield(p.table, p.slot, *e)
	})
}
