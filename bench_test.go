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

import (
	"fmt"
	"io"
	"strconv"
	"testing"
)

func BenchmarkMapGetHit(b *testing.B) {
	b.Run("impl=runtimeMap", func(b *testing.B) {
		b.Run("t=Int64", benchSizes(benchmarkRuntimeMapGetHit[int64], genKeys[int64]))
		b.Run("t=Int32", benchSizes(benchmarkRuntimeMapGetHit[int32], genKeys[int32]))
		b.Run("t=String", benchSizes(benchmarkRuntimeMapGetHit[string], genKeys[string]))
	})
	b.Run("impl=cuckooMap", func(b *testing.B) {
		b.Run("t=Int64", benchSizes(benchmarkCuckooMapGetHit[int64], genKeys[int64]))
		b.Run("t=Int32", benchSizes(benchmarkCuckooMapGetHit[int32], genKeys[int32]))
		b.Run("t=String", benchSizes(benchmarkCuckooMapGetHit[string], genKeys[string]))
	})
	b.Run("impl=cuckooNodeMap", func(b *testing.B) {
		b.Run("t=Int64", benchSizes(benchmarkCuckooNodeMapGetHit[int64], genKeys[int64]))
		b.Run("t=String", benchSizes(benchmarkCuckooNodeMapGetHit[string], genKeys[string]))
	})
}

func BenchmarkMapGetMiss(b *testing.B) {
	b.Run("impl=runtimeMap", func(b *testing.B) {
		b.Run("t=Int64", benchSizes(benchmarkRuntimeMapGetMiss[int64], genKeys[int64]))
		b.Run("t=String", benchSizes(benchmarkRuntimeMapGetMiss[string], genKeys[string]))
	})
	b.Run("impl=cuckooMap", func(b *testing.B) {
		b.Run("t=Int64", benchSizes(benchmarkCuckooMapGetMiss[int64], genKeys[int64]))
		b.Run("t=String", benchSizes(benchmarkCuckooMapGetMiss[string], genKeys[string]))
	})
}

func BenchmarkMapPutGrow(b *testing.B) {
	b.Run("impl=runtimeMap", func(b *testing.B) {
		b.Run("t=Int64", benchSizes(benchmarkRuntimeMapPutGrow[int64], genKeys[int64]))
		b.Run("t=String", benchSizes(benchmarkRuntimeMapPutGrow[string], genKeys[string]))
	})
	b.Run("impl=cuckooMap", func(b *testing.B) {
		b.Run("t=Int64", benchSizes(benchmarkCuckooMapPutGrow[int64], genKeys[int64]))
		b.Run("t=String", benchSizes(benchmarkCuckooMapPutGrow[string], genKeys[string]))
	})
}

func BenchmarkMapPutDelete(b *testing.B) {
	b.Run("impl=runtimeMap", func(b *testing.B) {
		b.Run("t=Int64", benchSizes(benchmarkRuntimeMapPutDelete[int64], genKeys[int64]))
		b.Run("t=String", benchSizes(benchmarkRuntimeMapPutDelete[string], genKeys[string]))
	})
	b.Run("impl=cuckooMap", func(b *testing.B) {
		b.Run("t=Int64", benchSizes(benchmarkCuckooMapPutDelete[int64], genKeys[int64]))
		b.Run("t=String", benchSizes(benchmarkCuckooMapPutDelete[string], genKeys[string]))
	})
}

func BenchmarkMapIter(b *testing.B) {
	b.Run("impl=runtimeMap", func(b *testing.B) {
		b.Run("t=Int64", benchSizes(benchmarkRuntimeMapIter[int64], genKeys[int64]))
	})
	b.Run("impl=cuckooMap", func(b *testing.B) {
		b.Run("t=Int64", benchSizes(benchmarkCuckooMapIter[int64], genKeys[int64]))
	})
}

type benchTypes interface {
	int32 | int64 | string
}

func benchSizes[T benchTypes](
	f func(b *testing.B, n int, genKeys func(start, end int) []T), genKeys func(start, end int) []T,
) func(*testing.B) {
	var cases = []int{
		6, 12, 18, 24, 30,
		64,
		128,
		256,
		512,
		1024,
		2048,
		4096,
		8192,
		1 << 16,
	}

	return func(b *testing.B) {
		for _, n := range cases {
			b.Run("len="+strconv.Itoa(n), func(b *testing.B) { f(b, n, genKeys) })
		}
	}
}

func genKeys[T benchTypes](start, end int) []T {
	keys := make([]T, end-start)
	for i := range keys {
		switch k := any(&keys[i]).(type) {
		case *int32:
			*k = int32(start + i)
		case *int64:
			*k = int64(start + i)
		case *string:
			*k = strconv.Itoa(start + i)
		}
	}
	return keys
}

func benchmarkRuntimeMapGetHit[T benchTypes](
	b *testing.B, n int, genKeys func(start, end int) []T,
) {
	m := make(map[T]T, n)
	keys := genKeys(0, n)
	for _, k := range keys {
		m[k] = k
	}

	// Go's builtin map has an optimization to avoid string comparisons
	// if there is pointer equality. Defeat this optimization to get a
	// better apples-to-apples comparison.
	keys = genKeys(0, n)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = m[keys[i%n]]
	}
}

func benchmarkCuckooMapGetHit[T benchTypes](b *testing.B, n int, genKeys func(start, end int) []T) {
	m := NewMap[T, T](WithCapacity(n))
	keys := genKeys(0, n)
	for _, k := range keys {
		m.Insert(k, k)
	}
	keys = genKeys(0, n)

	b.ResetTimer()
	var ok bool
	for i := 0; i < b.N; i++ {
		_, ok = m.Get(keys[i%n])
	}
	b.StopTimer()
	fmt.Fprint(io.Discard, ok)
}

func benchmarkCuckooNodeMapGetHit[T benchTypes](
	b *testing.B, n int, genKeys func(start, end int) []T,
) {
	m := NewNodeMap[T, T](WithCapacity(n))
	keys := genKeys(0, n)
	for _, k := range keys {
		m.Insert(k, k)
	}
	keys = genKeys(0, n)

	b.ResetTimer()
	var ok bool
	for i := 0; i < b.N; i++ {
		_, ok = m.Get(keys[i%n])
	}
	b.StopTimer()
	fmt.Fprint(io.Discard, ok)
}

func benchmarkRuntimeMapGetMiss[T benchTypes](
	b *testing.B, n int, genKeys func(start, end int) []T,
) {
	m := make(map[T]T)
	keys := genKeys(0, n)
	miss := genKeys(-n, 0)
	for _, k := range keys {
		m[k] = k
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = m[miss[i%n]]
	}
}

func benchmarkCuckooMapGetMiss[T benchTypes](b *testing.B, n int, genKeys func(start, end int) []T) {
	m := NewMap[T, T](WithCapacity(n))
	keys := genKeys(0, n)
	miss := genKeys(-n, 0)
	for _, k := range keys {
		m.Insert(k, k)
	}

	b.ResetTimer()
	var ok bool
	for i := 0; i < b.N; i++ {
		_, ok = m.Get(miss[i%n])
	}
	b.StopTimer()
	fmt.Fprint(io.Discard, ok)
}

func benchmarkRuntimeMapPutGrow[T benchTypes](
	b *testing.B, n int, genKeys func(start, end int) []T,
) {
	keys := genKeys(0, n)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m := make(map[T]T)
		for _, k := range keys {
			m[k] = k
		}
	}
}

func benchmarkCuckooMapPutGrow[T benchTypes](b *testing.B, n int, genKeys func(start, end int) []T) {
	keys := genKeys(0, n)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m := NewMap[T, T](WithCapacity(1))
		for _, k := range keys {
			m.Insert(k, k)
		}
	}
}

func benchmarkRuntimeMapPutDelete[T benchTypes](
	b *testing.B, n int, genKeys func(start, end int) []T,
) {
	m := make(map[T]T, n)
	keys := genKeys(0, n)
	for _, k := range keys {
		m[k] = k
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		j := i % n
		delete(m, keys[j])
		m[keys[j]] = keys[j]
	}
}

func benchmarkCuckooMapPutDelete[T benchTypes](
	b *testing.B, n int, genKeys func(start, end int) []T,
) {
	m := NewMap[T, T](WithCapacity(n))
	keys := genKeys(0, n)
	for _, k := range keys {
		m.Insert(k, k)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		j := i % n
		m.Erase(keys[j])
		m.Insert(keys[j], keys[j])
	}
}

func benchmarkRuntimeMapIter[T benchTypes](b *testing.B, n int, genKeys func(start, end int) []T) {
	m := make(map[T]T, n)
	keys := genKeys(0, n)
	for _, k := range keys {
		m[k] = k
	}
	b.ResetTimer()
	var tmp int
	for i := 0; i < b.N; i++ {
		for range m {
			tmp++
		}
	}
	fmt.Fprint(io.Discard, tmp)
}

func benchmarkCuckooMapIter[T benchTypes](b *testing.B, n int, genKeys func(start, end int) []T) {
	m := NewMap[T, T](WithCapacity(n))
	keys := genKeys(0, n)
	for _, k := range keys {
		m.Insert(k, k)
	}
	b.ResetTimer()
	var tmp int
	for i := 0; i < b.N; i++ {
		m.All(func(T, T) bool {
			tmp++
			return true
		})
	}
	fmt.Fprint(io.Discard, tmp)
}
