package lru

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
	"github.com/mitchellh/hashstructure/v2"
)

// Digester reduces a key to its 64-bit storage identity.
//
// Equal keys must produce equal digests. Distinct keys hashing to the same
// digest are indistinguishable from a single entry, the newer key silently
// takes over the slot of the older one. Callers needing stronger guarantees
// must pick a digester with collision probability adequate for their key
// space and cardinality.
type Digester[K comparable] func(key K) uint64

// DigestOf is the default Digester.
//
// Strings and integers are digested with xxHash, other comparable types fall
// back to reflection-based structure hashing.
func DigestOf[K comparable](key K) uint64 {
	switch k := any(key).(type) {
	case string:
		return xxhash.Sum64String(k)
	case int:
		return sum64(uint64(k))
	case int32:
		return sum64(uint64(k))
	case int64:
		return sum64(uint64(k))
	case uint:
		return sum64(uint64(k))
	case uint32:
		return sum64(uint64(k))
	case uint64:
		return sum64(k)
	default:
		h, err := hashstructure.Hash(key, hashstructure.FormatV2, nil)
		if err != nil {
			panic("lru: key type is not hashable: " + err.Error())
		}

		return h
	}
}

func sum64(v uint64) uint64 {
	var b [8]byte

	binary.LittleEndian.PutUint64(b[:], v)

	return xxhash.Sum64(b[:])
}
