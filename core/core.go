// Package core is the façade that glues mempool admission and execution
// together behind a single submit_transaction entrypoint. It is the
// only package in this module that logs (through internal/plog): the
// engine's internal packages (asset, fee, txn, state, execution, mempool)
// stay silent, and the CLI writes its errors to stderr directly.
package core

import (
	"github.com/PlatariumNetwork/PlatariumCore/execution"
	"github.com/PlatariumNetwork/PlatariumCore/internal/plog"
	"github.com/PlatariumNetwork/PlatariumCore/mempool"
	"github.com/PlatariumNetwork/PlatariumCore/state"
	"github.com/PlatariumNetwork/PlatariumCore/txn"
)

// Core owns the live State and Mempool for a single logical executor
// under single-threaded cooperative scheduling.
type Core struct {
	State   *state.State
	Mempool *mempool.Mempool

	verifier txn.Verifier
}

// New constructs an empty Core. verifier is the concrete signature
// predicate (e.g. signer.Secp256k1Verifier{}) used by SubmitTransaction;
// core never imports a concrete crypto package itself.
func New(verifier txn.Verifier) *Core {
	return &Core{
		State:    state.New(),
		Mempool:  mempool.New(),
		verifier: verifier,
	}
}

// SubmitTransaction validates, verifies signatures, admits to the
// mempool, executes in Production, then drops the mempool entry. On any
// failure after mempool admission, the entry is removed so it cannot
// leak; state mutation is atomic (state.ApplyTransfer), so no partial
// state is ever observable.
func (c *Core) SubmitTransaction(tx *txn.Transaction) (string, error) {
	if err := tx.ValidateBasic(); err != nil {
		plog.Warn.Printf("reject tx %s: %v", tx.Hash, err)
		return "", err
	}
	if err := tx.VerifySignatures(c.verifier); err != nil {
		plog.Warn.Printf("reject tx %s: %v", tx.Hash, err)
		return "", err
	}
	if err := c.Mempool.AddTransaction(tx); err != nil {
		plog.Warn.Printf("reject tx %s: %v", tx.Hash, err)
		return "", err
	}

	if _, err := execution.ExecuteTransaction(c.State, tx, execution.Production); err != nil {
		c.Mempool.RemoveTransaction(tx.Hash)
		plog.Warn.Printf("execution failed for tx %s: %v", tx.Hash, err)
		return "", err
	}

	c.Mempool.RemoveTransaction(tx.Hash)
	plog.Info.Printf("applied tx %s (from=%s to=%s)", tx.Hash, tx.From, tx.To)
	return tx.Hash, nil
}

// Simulate runs tx against a snapshot of the live state without
// mutating it.
func (c *Core) Simulate(tx *txn.Transaction) *execution.Result {
	return execution.Simulate(tx, c.State.Snapshot())
}

// PendingCount returns the mempool's current occupancy, the sole input
// to fee.CalculateFeeFromLoad.
func (c *Core) PendingCount() uint64 {
	return uint64(c.Mempool.Len())
}
