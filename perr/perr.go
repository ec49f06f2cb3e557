// Package perr is the engine's structured error taxonomy. Errors from
// transaction validation, signature checks, state transitions, execution
// and mempool deduplication are *perr.Error values, so that callers can
// render "<kind>: <detail>" and switch on Kind. The low-level helpers
// (asset.Token, asset.MicroPLP, u128) and mempool.ErrCounterExhausted
// return plain error values instead.
package perr

import "fmt"

// Kind identifies one of the top-level error categories.
type Kind string

const (
	KindInvalidTransaction          Kind = "InvalidTransaction"
	KindSignatureInvalid            Kind = "SignatureInvalid"
	KindNonceMismatch               Kind = "NonceMismatch"
	KindInsufficientFee             Kind = "InsufficientFee"
	KindInsufficientBalance         Kind = "InsufficientBalance"
	KindArithmeticOverflow          Kind = "ArithmeticOverflow"
	KindDuplicateTransaction        Kind = "DuplicateTransaction"
	KindCommitNotAllowedInSimulation Kind = "CommitNotAllowedInSimulation"
	KindAssetMismatch               Kind = "AssetMismatch"
)

// InvalidTransactionSub enumerates the sub-kinds of InvalidTransaction,
// one per basic-validation check.
type InvalidTransactionSub string

const (
	SubZeroAmount      InvalidTransactionSub = "ZeroAmount"
	SubZeroFee         InvalidTransactionSub = "ZeroFee"
	SubSameParty       InvalidTransactionSub = "SameParty"
	SubTreasurySender  InvalidTransactionSub = "TreasurySender"
	SubEmptySignature  InvalidTransactionSub = "EmptySignature"
	SubHashMismatch    InvalidTransactionSub = "HashMismatch"
)

// SignatureWhich distinguishes which of the two signatures failed
// verification.
type SignatureWhich string

const (
	WhichMain    SignatureWhich = "main"
	WhichDerived SignatureWhich = "derived"
)

// Error is the engine's single error type. Sub carries the sub-kind for
// InvalidTransaction/SignatureInvalid; it is empty for the other kinds.
type Error struct {
	Kind   Kind
	Sub    string
	Detail string
}

func (e *Error) Error() string {
	if e.Sub != "" {
		return fmt.Sprintf("%s(%s): %s", e.Kind, e.Sub, e.Detail)
	}
	if e.Detail == "" {
		return string(e.Kind)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Detail)
}

// Is supports errors.Is by comparing Kind, and also Sub when the
// target's Sub is set.
func (e *Error) Is(target error) bool {
	other, ok := target.(*Error)
	if !ok {
		return false
	}
	if e.Kind != other.Kind {
		return false
	}
	if other.Sub == "" {
		return true
	}
	return e.Sub == other.Sub
}

func InvalidTransaction(sub InvalidTransactionSub, detail string) *Error {
	return &Error{Kind: KindInvalidTransaction, Sub: string(sub), Detail: detail}
}

func SignatureInvalid(which SignatureWhich) *Error {
	return &Error{Kind: KindSignatureInvalid, Sub: string(which), Detail: fmt.Sprintf("%s signature failed verification", which)}
}

func NonceMismatch(expected, actual uint64) *Error {
	return &Error{Kind: KindNonceMismatch, Detail: fmt.Sprintf("expected %d, got %d", expected, actual)}
}

func InsufficientFee(required, available string) *Error {
	return &Error{Kind: KindInsufficientFee, Detail: fmt.Sprintf("required %s, available %s", required, available)}
}

func InsufficientBalance(required, available string) *Error {
	return &Error{Kind: KindInsufficientBalance, Detail: fmt.Sprintf("required %s, available %s", required, available)}
}

func ArithmeticOverflow(detail string) *Error {
	return &Error{Kind: KindArithmeticOverflow, Detail: detail}
}

func DuplicateTransaction(hash string) *Error {
	return &Error{Kind: KindDuplicateTransaction, Detail: hash}
}

func CommitNotAllowedInSimulation() *Error {
	return &Error{Kind: KindCommitNotAllowedInSimulation}
}

func AssetMismatch(detail string) *Error {
	return &Error{Kind: KindAssetMismatch, Detail: detail}
}
