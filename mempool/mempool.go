// Package mempool implements the fair, deterministic pending pool: a map
// keyed by transaction hash plus a monotonic arrival counter, with a
// total order given by (arrival_index, hash).
package mempool

import (
	"math"
	"sort"
	"sync"

	"github.com/PlatariumNetwork/PlatariumCore/perr"
	"github.com/PlatariumNetwork/PlatariumCore/txn"
)

// ErrCounterExhausted is returned when the arrival counter would wrap.
// This is a fatal invariant violation: the mempool's lifetime is finite
// and wrap must never silently happen.
var ErrCounterExhausted = &mempoolError{"mempool arrival counter exhausted: pool lifetime exceeded"}

type mempoolError struct{ msg string }

func (e *mempoolError) Error() string { return e.msg }

type entry struct {
	arrivalIndex uint64
	tx           *txn.Transaction
}

// Mempool is a deduplicated, FIFO-fair pool of admitted transactions.
// Anti-starvation is automatic: arrival indices never decrease, so
// get_all_transactions always returns admissions oldest-first.
type Mempool struct {
	mu          sync.RWMutex
	entries     map[string]entry // hash -> entry
	nextArrival uint64
}

// New returns an empty Mempool.
func New() *Mempool {
	return &Mempool{entries: make(map[string]entry)}
}

// AddTransaction admits tx, assigning it the next arrival index. Fails
// with DuplicateTransaction if tx.Hash is already present.
func (m *Mempool) AddTransaction(tx *txn.Transaction) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.entries[tx.Hash]; exists {
		return perr.DuplicateTransaction(tx.Hash)
	}
	if m.nextArrival == math.MaxUint64 {
		return ErrCounterExhausted
	}
	m.entries[tx.Hash] = entry{arrivalIndex: m.nextArrival, tx: tx}
	m.nextArrival++
	return nil
}

// GetTransaction returns the transaction with the given hash, if present.
func (m *Mempool) GetTransaction(hash string) (*txn.Transaction, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	e, ok := m.entries[hash]
	if !ok {
		return nil, false
	}
	return e.tx, true
}

// Contains reports whether hash is currently admitted.
func (m *Mempool) Contains(hash string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.entries[hash]
	return ok
}

// RemoveTransaction removes hash, reporting whether it was present.
func (m *Mempool) RemoveTransaction(hash string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.entries[hash]; !ok {
		return false
	}
	delete(m.entries, hash)
	return true
}

// RemoveTransactions removes every hash in hashes, ignoring ones that
// are not present.
func (m *Mempool) RemoveTransactions(hashes []string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, h := range hashes {
		delete(m.entries, h)
	}
}

// Clear empties the pool. It does not reset the arrival counter, since
// arrival indices must never decrease for the lifetime of the pool.
func (m *Mempool) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = make(map[string]entry)
}

// Len returns the number of admitted transactions.
func (m *Mempool) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}

// IsEmpty reports whether the pool holds no transactions.
func (m *Mempool) IsEmpty() bool { return m.Len() == 0 }

// GetAllTransactions returns every admitted transaction ordered by
// (arrival_index ASC, hash ASC). The hash tiebreak is unreachable in
// practice since arrival_index alone is unique, but keeps the total
// order well-defined regardless of map iteration order.
func (m *Mempool) GetAllTransactions() []*txn.Transaction {
	m.mu.RLock()
	defer m.mu.RUnlock()

	ordered := make([]entry, 0, len(m.entries))
	for _, e := range m.entries {
		ordered = append(ordered, e)
	}
	sort.Slice(ordered, func(i, j int) bool {
		if ordered[i].arrivalIndex != ordered[j].arrivalIndex {
			return ordered[i].arrivalIndex < ordered[j].arrivalIndex
		}
		return ordered[i].tx.Hash < ordered[j].tx.Hash
	})

	out := make([]*txn.Transaction, len(ordered))
	for i, e := range ordered {
		out[i] = e.tx
	}
	return out
}
