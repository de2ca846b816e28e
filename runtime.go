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

// hashFn is the signature of the hash function used by the runtime's
// map implementation: a pointer to the key and a seed.
type hashFn func(key unsafe.Pointer, seed uintptr) uintptr

// getRuntimeHasher extracts the hash function for K from Go's
// implementation of map[K]struct{} by reaching into the internals of
// the type. (This might break in a future version of Go, but is likely
// fixable unless the runtime does something drastic.)
func getRuntimeHasher[K comparable]() hashFn {
	a := any(map[K]struct{}(nil))
	return (*mapiface)(unsafe.Pointer(&a)).typ.hasher
}

type mapiface struct {
	typ *maptype
	val unsafe.Pointer
}

// maptype mirrors the layout of runtime.maptype.
type maptype struct {
	typ    _type
	key    *_type
	elem   *_type
	bucket *_type
	// hasher is the function for hashing keys: (ptr to key, seed) -> hash.
	hasher     hashFn
	keysize    uint8
	elemsize   uint8
	bucketsize uint16
	flags      uint32
}

// _type mirrors the layout of runtime._type.
type _type struct {
	size       uintptr
	ptrdata    uintptr
	hash       uint32
	tflag      uint8
	align      uint8
	fieldAlign uint8
	kind       uint8
	equal      func(unsafe.Pointer, unsafe.Pointer) bool
	gcdata     *byte
	str        int32
	ptrToThis  int32
}

// noescape hides a pointer from escape analysis.  noescape is
// the identity function but escape analysis doesn't think the
// output depends on the input.  noescape is inlined and currently
// compiles down to zero instructions.
// USE CAREFULLY!
//
//go:nosplit
//go:nocheckptr
func noescape(p unsafe.Pointer) unsafe.Pointer {
	x := uintptr(p)
	return unsafe.Pointer(x ^ 0)
}
