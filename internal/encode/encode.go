// Package encode implements the canonical, length-prefixed byte encodings
// used for content-addressed hashing throughout the engine. Every encoder
// here is a pure function of its arguments: no wall-clock reads, no
// randomness, no map iteration without an explicit sort first.
package encode

import (
	"encoding/binary"
	"sort"
)

// String writes a u32 big-endian length prefix followed by the raw bytes
// of s. Used for addresses, token symbols, and set elements; signature
// blobs go through Bytes.
func String(buf []byte, s string) []byte {
	buf = Uint32(buf, uint32(len(s)))
	buf = append(buf, s...)
	return buf
}

// Bytes writes a u32 big-endian length prefix followed by b.
func Bytes(buf []byte, b []byte) []byte {
	buf = Uint32(buf, uint32(len(b)))
	buf = append(buf, b...)
	return buf
}

// Uint32 appends the big-endian encoding of v.
func Uint32(buf []byte, v uint32) []byte {
	var tmp [4]byte
	binary.BigEndian.PutUint32(tmp[:], v)
	return append(buf, tmp[:]...)
}

// Uint64 appends the big-endian encoding of v.
func Uint64(buf []byte, v uint64) []byte {
	var tmp [8]byte
	binary.BigEndian.PutUint64(tmp[:], v)
	return append(buf, tmp[:]...)
}

// StringSet writes a u32 big-endian element count followed by the
// lexicographically sorted, length-prefixed elements of set. The input
// is never assumed sorted — set ordering from map iteration is explicitly
// forbidden by the determinism contract.
func StringSet(buf []byte, set []string) []byte {
	sorted := append([]string(nil), set...)
	sort.Strings(sorted)
	buf = Uint32(buf, uint32(len(sorted)))
	for _, s := range sorted {
		buf = String(buf, s)
	}
	return buf
}
