// Package determinism is the design-time discipline plus runtime check
// behind the engine's determinism guarantee. The engine's execution
// paths (asset, fee, txn, state, execution, mempool) are audited against
// a short list of forbidden primitives:
//
//  1. No floating point in value math — amounts and fees are integers
//     (u128.Int, asset.MicroPLP) end to end.
//  2. No random number generation in execution paths. (RNG is permitted
//     only in the signer package's key-generation helpers, which are not
//     on any execution path.)
//  3. No wall-clock reads — no function on an execution path takes a
//     time.Time or calls time.Now.
//  4. No unsorted map iteration feeding a hash or an ordering decision —
//     internal/encode.StringSet and mempool.GetAllTransactions both sort
//     explicitly before use.
//  5. No goroutine- or thread-ID-sensitive branching.
//
// This package does not and cannot prove the absence of these by static
// analysis; it gives tests a predicate to assert the *observable*
// consequence — that repeated execution of the same function against the
// same inputs produces byte-identical output.
package determinism

import "bytes"

// IsDeterministic runs fn twice and compares its encoded output.
// Callers pass a thunk that re-derives its inputs from scratch each call
// (e.g. a fresh State built from the same Snapshot) so that IsDeterministic
// observes what a cold re-execution on another machine would see, not
// just idempotence against shared mutable state.
func IsDeterministic(fn func() []byte) bool {
	a := fn()
	b := fn()
	return bytes.Equal(a, b)
}

// IsDeterministicN runs fn n times (n >= 2) and requires every run to
// match the first. Useful for property tests that want more than one
// repetition's worth of confidence.
func IsDeterministicN(n int, fn func() []byte) bool {
	if n < 2 {
		n = 2
	}
	first := fn()
	for i := 1; i < n; i++ {
		if !bytes.Equal(first, fn()) {
			return false
		}
	}
	return true
}
