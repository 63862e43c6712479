package Go_Utils

import (
	"hash/maphash"
	_ "runtime"
	"unsafe"
)

//go:linkname rtHash runtime.memhash
//go:noescape
func rtHash(ptr unsafe.Pointer, seed uint, len uintptr) uint

//go:linkname rtHash64 runtime.memhash64
//go:noescape
func rtHash64(ptr unsafe.Pointer, seed uint) uint

//go:linkname rtHash32 runtime.memhash32
//go:noescape
func rtHash32(ptr unsafe.Pointer, seed uint) uint

//go:linkname rtStrHash runtime.strhash
//go:noescape
func rtStrHash(ptr unsafe.Pointer, seed uint) uint

type hold struct {
	rtype *uintptr
	ptr   unsafe.Pointer
}

// Hasher is a hash seed held as a uint; processSeed below builds one from a
// zero-value maphash.Hash's Sum64. The receivers are thread-safe, but the memory contents aren't read in a
// thread-safe way, so only use it on synchronized memory.
type Hasher uint

// HashAny hashes an interface value based on memory content of v. It uses
// internal struct's memory layout, which is unsafe practice. Avoid using it
// on values that embed pointers you don't otherwise own.
func (u Hasher) HashAny(v any) uint {
	h := (*hold)(unsafe.Pointer(&v))
	return u.HashMem(h.ptr, *h.rtype)
}

// HashMem hashes the memory contents in the range [addr, addr+size) as bytes.
func (u Hasher) HashMem(addr unsafe.Pointer, size uintptr) uint {
	if size == 4 {
		return rtHash32(addr, uint(u))
	} else if size == 8 {
		return rtHash64(addr, uint(u))
	}
	return rtHash(addr, uint(u), size)
}

// HashBytes hashes the given byte slice.
func (u Hasher) HashBytes(b []byte) uint {
	return u.HashMem(unsafe.Pointer(&b[0]), uintptr(uint(len(b))))
}

// HashString directly hashes a string, it's faster than HashAny(string).
func (u Hasher) HashString(v string) uint {
	return rtStrHash(unsafe.Pointer(&v), uint(u))
}

// processSeed is fixed for the life of the process: a fingerprint must stay
// stable across the repeated Add/Remove/Replace calls a given element goes
// through, so it can't be re-rolled the way a plain hash table's resize hook
// might re-roll its own seed. A zero-value maphash.Hash carries its own
// runtime-entropy seed, which is a convenient way to get one random uint64
// without reaching for crypto/rand.
var processSeed = Hasher(func() uint64 {
	var h maphash.Hash
	return h.Sum64()
}())

// Fingerprint reduces any comparable element to the 32-bit signed key a
// LazySet orders its nodes by. Two elements that collide under this
// reduction are indistinguishable to the set.
func Fingerprint(item any) int32 {
	return int32(processSeed.HashAny(item))
}
