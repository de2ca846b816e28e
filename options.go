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

import "unsafe"

// Option provides an interface to configure a container while it is
// being created. The same options apply to all four container shapes.
// The grid shape is set at construction; afterwards it changes only
// through Resize, Restrain, and the capacity growth of an insert that
// exhausts its displacement budget.
type Option interface {
	apply(*config)
}

type config struct {
	capacity int
	tables   int
	// hash holds a func(*K, uintptr) uintptr supplied via WithHash,
	// type-checked against the container's key type at construction.
	hash any
}

func applyOptions(opts []Option) config {
	cfg := config{capacity: defaultCapacity, tables: defaultTables}
	for _, o := range opts {
		o.apply(&cfg)
	}
	if cfg.capacity < 1 {
		cfg.capacity = 1
	}
	if cfg.tables < 2 {
		cfg.tables = 2
	}
	return cfg
}

type capacityOption int

func (o capacityOption) apply(c *config) { c.capacity = int(o) }

// WithCapacity sets the initial capacity of each sub-table. The default
// is 64; values below 1 are raised to 1.
func WithCapacity(capacity int) Option { return capacityOption(capacity) }

type tablesOption int

func (o tablesOption) apply(c *config) { c.tables = int(o) }

// WithTables sets the initial sub-table count, which is also the number
// of candidate slots per key. The default is 2; values below 2 are
// raised to 2.
func WithTables(tables int) Option { return tablesOption(tables) }

type hashOption struct {
	hash any
}

func (o hashOption) apply(c *config) { c.hash = o.hash }

// WithHash specifies the hash function to use for keys in place of the
// one extracted from the runtime. K must match the container's key type
// (for the set shapes, the element type); a mismatch panics at
// construction. The hash must distribute keys reasonably: a function
// that sends every key to the same value caps the usable capacity at
// the sub-table count and makes growth futile, and the library does not
// detect this.
func WithHash[K comparable](hash func(key *K, seed uintptr) uintptr) Option {
	return hashOption{hash: hash}
}

func resolveHash[K comparable](h any) hashFn {
	if h == nil {
		return getRuntimeHasher[K]()
	}
	fn, ok := h.(func(key *K, seed uintptr) uintptr)
	if !ok {
		panic("cuckoo: WithHash key type does not match the container key type")
	}
	return *(*hashFn)(noescape(unsafe.Pointer(&fn)))
}
