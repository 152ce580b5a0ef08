// Package xxhash computes fingerprints of option name sets.
package xxhash

import (
	"encoding/binary"
	"iter"

	"github.com/cespare/xxhash/v2"
)

// KeySetFingerprint returns a hash of a set of unique keys. The result does
// not depend on iteration order, so two maps with the same key set have the
// same fingerprint regardless of their values.
func KeySetFingerprint(keys iter.Seq[string]) uint64 {
	var sum, xor, n uint64
	for key := range keys {
		h := xxhash.Sum64String(key)
		sum += h
		xor ^= h
		n++
	}

	var buf [24]byte
	binary.LittleEndian.PutUint64(buf[0:8], sum)
	binary.LittleEndian.PutUint64(buf[8:16], xor)
	binary.LittleEndian.PutUint64(buf[16:24], n)
	return xxhash.Sum64(buf[:])
}
