// Package hashfn provides the hash functions a hash map can be built with.
package hashfn

import (
	"hash/maphash"
	"reflect"

	"github.com/cespare/xxhash/v2"
	"github.com/spaolacci/murmur3"
	"golang.org/x/exp/constraints"
)

// Func maps a key to its hash.
// Equal keys must have equal hashes.
type Func[K any] func(K) uint64

var seed = maphash.MakeSeed()

// Default picks the hash function for K.
// String kinded keys are hashed with xxhash, anything else with maphash.Comparable using a per-process seed.
func Default[K comparable]() Func[K] {
	if reflect.TypeFor[K]().Kind() == reflect.String {
		return func(k K) uint64 {
			if s, ok := any(k).(string); ok {
				return xxhash.Sum64String(s)
			}
			return xxhash.Sum64String(reflect.ValueOf(k).String())
		}
	}
	return Comparable[K](seed)
}

func XXHash[K ~string]() Func[K] {
	return func(k K) uint64 { return xxhash.Sum64String(string(k)) }
}

// Murmur3 hashes with the 64-bit variant of MurmurHash3.
func Murmur3[K ~string | ~[]byte]() Func[K] {
	return func(k K) uint64 { return murmur3.Sum64([]byte(k)) }
}

// Comparable hashes any comparable key with maphash.
// Hashes are only stable within the process, and only for the same seed.
func Comparable[K comparable](seed maphash.Seed) Func[K] {
	return func(k K) uint64 { return maphash.Comparable(seed, k) }
}

// Integer uses the key itself as its hash, which makes bucket placement predictable.
func Integer[K constraints.Integer]() Func[K] {
	return func(k K) uint64 { return uint64(k) }
}
