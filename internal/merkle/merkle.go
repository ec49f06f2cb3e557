// Package merkle is a flat sorted-leaf Merkle tree, used to compute a
// single content hash over a state snapshot's entries
// (state.Snapshot.ContentHash).
package merkle

import "crypto/sha256"

// RootHash computes the Merkle root over leaves, in the order given.
// Callers are responsible for presenting leaves in a deterministic
// order (sorted by key) before calling this — RootHash itself never
// reorders, so that it stays a pure function of its input slice.
func RootHash(leaves [][]byte) []byte {
	if len(leaves) == 0 {
		empty := sha256.Sum256(nil)
		return empty[:]
	}

	level := make([][]byte, len(leaves))
	for i, leaf := range leaves {
		h := sha256.Sum256(leaf)
		level[i] = h[:]
	}

	for len(level) > 1 {
		if len(level)%2 != 0 {
			level = append(level, level[len(level)-1])
		}
		next := make([][]byte, 0, len(level)/2)
		for i := 0; i < len(level); i += 2 {
			combined := make([]byte, 0, len(level[i])+len(level[i+1]))
			combined = append(combined, level[i]...)
			combined = append(combined, level[i+1]...)
			h := sha256.Sum256(combined)
			next = append(next, h[:])
		}
		level = next
	}
	return level[0]
}
