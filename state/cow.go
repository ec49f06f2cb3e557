package state

// cowMap is a whole-map copy-on-write wrapper: Snapshot() hands out a
// read-only reference to the live backing map in O(1) and marks this
// wrapper shared; the next mutation after that clones the backing map
// once (O(n) in the number of keys) before writing, so the snapshot it
// handed out is never observed to change.
//
// Taking a snapshot is O(1). The O(n) clone happens at most once per
// outstanding snapshot, on the first write after it, not once per write.
type cowMap[K comparable, V any] struct {
	data   map[K]V
	shared bool
}

func newCOWMap[K comparable, V any]() *cowMap[K, V] {
	return &cowMap[K, V]{data: make(map[K]V)}
}

// fromShared wraps an existing map as shared — used by restore, where
// the map comes from a Snapshot and must not be mutated in place.
func fromShared[K comparable, V any](m map[K]V) *cowMap[K, V] {
	return &cowMap[K, V]{data: m, shared: true}
}

func (c *cowMap[K, V]) get(k K) (V, bool) {
	v, ok := c.data[k]
	return v, ok
}

func (c *cowMap[K, V]) set(k K, v V) {
	c.ensureUnshared()
	c.data[k] = v
}

func (c *cowMap[K, V]) ensureUnshared() {
	if !c.shared {
		return
	}
	clone := make(map[K]V, len(c.data))
	for k, v := range c.data {
		clone[k] = v
	}
	c.data = clone
	c.shared = false
}

// snapshot returns a read-only view of the current backing map and marks
// this wrapper shared, so any future write clones first.
func (c *cowMap[K, V]) snapshot() map[K]V {
	c.shared = true
	return c.data
}

func (c *cowMap[K, V]) len() int { return len(c.data) }
