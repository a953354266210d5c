package rescache

import (
	"encoding/binary"
	"hash/fnv"
	"hash/maphash"
)

// Hasher is a function that computes a hash for a key. The cache uses it
// to place entries in the backing store, so two keys that are equal under
// the configured [EqualFunc] must hash to the same value.
type Hasher[K any] func(K) uint64

// EqualFunc reports whether two keys identify the same cache entry.
type EqualFunc[K any] func(a, b K) bool

// StringHasher computes the FNV-1a hash of a string key.
func StringHasher(s string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(s)) // fnv.Write never returns an error
	return h.Sum64()
}

// BytesHasher computes the FNV-1a hash of a byte-slice key.
func BytesHasher(b []byte) uint64 {
	h := fnv.New64a()
	_, _ = h.Write(b)
	return h.Sum64()
}

// IntHasher computes a hash of an int key using FNV-1a.
func IntHasher(i int) uint64 {
	h := fnv.New64a()
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(i))
	_, _ = h.Write(buf[:])
	return h.Sum64()
}

// Uint64Hasher returns the key itself as the hash (identity hash).
func Uint64Hasher(u uint64) uint64 {
	return u
}

// defaultHasher returns a Hasher backed by a fresh maphash seed. Hashes
// are consistent within one cache but differ between caches and runs.
func defaultHasher[K comparable]() Hasher[K] {
	seed := maphash.MakeSeed()
	return func(k K) uint64 {
		return maphash.Comparable(seed, k)
	}
}

// defaultEqual is the key equality used when no EqualFunc is configured.
func defaultEqual[K comparable](a, b K) bool { return a == b }
