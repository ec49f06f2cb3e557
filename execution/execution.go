// Package execution implements validation, applicability checking,
// effect application, and the Production/Simulation execution contexts.
package execution

import (
	"github.com/PlatariumNetwork/PlatariumCore/perr"
	"github.com/PlatariumNetwork/PlatariumCore/state"
	"github.com/PlatariumNetwork/PlatariumCore/txn"
)

// Context distinguishes whether a transaction's effects are committed
// or only simulated.
type Context int

const (
	Production Context = iota
	Simulation
)

// ValidateTransaction runs tx.ValidateBasic(), the signature-independent
// checks.
func ValidateTransaction(tx *txn.Transaction) error {
	return tx.ValidateBasic()
}

// CheckTransactionApplicability runs the read-only nonce/balance checks
// against st, without mutating it.
func CheckTransactionApplicability(st *state.State, tx *txn.Transaction) error {
	currentNonce := st.GetNonce(tx.From)
	if tx.Nonce != currentNonce {
		return perr.NonceMismatch(currentNonce, tx.Nonce)
	}
	fromUPLP := st.GetUPLPBalance(tx.From)
	if !fromUPLP.GreaterOrEqual(tx.FeeUPLP) {
		return perr.InsufficientFee(tx.FeeUPLP.String(), fromUPLP.String())
	}
	fromBal := st.GetAssetBalance(tx.From, tx.Asset)
	if !fromBal.GreaterOrEqual(tx.Amount) {
		return perr.InsufficientBalance(tx.Amount.String(), fromBal.String())
	}
	return nil
}

// ApplyTransactionEffects mutates st with tx's effects. It is a thin
// wrapper over state.State.ApplyTransaction, re-exposed here so that
// execution's public surface stays self-contained.
func ApplyTransactionEffects(st *state.State, tx *txn.Transaction) error {
	return st.ApplyTransaction(tx)
}

// ExecuteTransaction composes validation, applicability, and effect
// application. On Simulation, it operates on an independent copy of st
// derived from a snapshot, and never mutates the caller's live state.
func ExecuteTransaction(st *state.State, tx *txn.Transaction, ctx Context) (*state.State, error) {
	if err := ValidateTransaction(tx); err != nil {
		return nil, err
	}

	target := st
	if ctx == Simulation {
		target = st.Copy()
	}

	if err := CheckTransactionApplicability(target, tx); err != nil {
		return nil, err
	}
	if err := ApplyTransactionEffects(target, tx); err != nil {
		return nil, err
	}
	return target, nil
}

// Commit is a no-op in Production and fails in Simulation.
func Commit(ctx Context) error {
	if ctx == Simulation {
		return perr.CommitNotAllowedInSimulation()
	}
	return nil
}

// Result is the outcome of Simulate: either Success with the resulting
// Snapshot, or Failure with the error that occurred. Simulate never
// mutates the snapshot it was given.
type Result struct {
	success    bool
	finalState *state.Snapshot
	err        error
}

// IsSuccess reports whether execution succeeded.
func (r *Result) IsSuccess() bool { return r.success }

// IsFailure reports whether execution failed.
func (r *Result) IsFailure() bool { return !r.success }

// FinalState returns the resulting snapshot when execution succeeded,
// or nil otherwise.
func (r *Result) FinalState() *state.Snapshot { return r.finalState }

// Err returns the error that occurred when execution failed, or nil.
func (r *Result) Err() error { return r.err }

// Simulate runs tx against a fresh State rebuilt from snap, leaving snap
// itself — and any live State — untouched. Repeated calls with the same
// (tx, snap) yield identical results: the only inputs are tx and snap.
func Simulate(tx *txn.Transaction, snap *state.Snapshot) *Result {
	scratch := state.New()
	scratch.Restore(snap)

	if err := ValidateTransaction(tx); err != nil {
		return &Result{success: false, err: err}
	}
	if err := CheckTransactionApplicability(scratch, tx); err != nil {
		return &Result{success: false, err: err}
	}
	if err := ApplyTransactionEffects(scratch, tx); err != nil {
		return &Result{success: false, err: err}
	}
	return &Result{success: true, finalState: scratch.Snapshot()}
}
