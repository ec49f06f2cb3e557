// Package txn implements the canonical Transaction record: content-
// addressed hashing, basic validation, and signature verification
// against an abstract Verifier.
package txn

import (
	"crypto/sha256"
	"encoding/hex"
	"sort"

	"github.com/PlatariumNetwork/PlatariumCore/asset"
	"github.com/PlatariumNetwork/PlatariumCore/internal/encode"
	"github.com/PlatariumNetwork/PlatariumCore/perr"
	"github.com/PlatariumNetwork/PlatariumCore/u128"
)

// Treasury is the sole fee sink; it may never appear as a transaction's
// From address.
const Treasury = "treasury"

// Verifier is the abstract signature predicate "verify(sig, msg, pubkey)
// -> bool". Concrete implementations (ECDSA secp256k1, etc.) live
// outside this package, in signer.
type Verifier interface {
	Verify(sig, msg, pubkey []byte) bool
}

// Transaction is an immutable transfer record. Construct with New, which
// computes Hash from the other fields per the canonical encoding below.
type Transaction struct {
	Hash       string
	From       string
	To         string
	Asset      asset.Asset
	Amount     u128.Int
	FeeUPLP    u128.Int
	Nonce      uint64
	Reads      []string
	Writes     []string
	SigMain    []byte
	SigDerived []byte

	// PubKeyMain/PubKeyDerived bind the signatures to the sender's
	// identity for verify_signatures; they are not part of the hash.
	PubKeyMain    []byte
	PubKeyDerived []byte
}

// Params bundles the fields needed to build a Transaction.
type Params struct {
	From, To      string
	Asset         asset.Asset
	Amount        u128.Int
	FeeUPLP       u128.Int
	Nonce         uint64
	Reads, Writes []string
	SigMain       []byte
	SigDerived    []byte
	PubKeyMain    []byte
	PubKeyDerived []byte
}

// New builds a Transaction and computes its Hash. It does not validate;
// call ValidateBasic afterward.
func New(p Params) *Transaction {
	tx := &Transaction{
		From:          p.From,
		To:            p.To,
		Asset:         p.Asset,
		Amount:        p.Amount,
		FeeUPLP:       p.FeeUPLP,
		Nonce:         p.Nonce,
		Reads:         p.Reads,
		Writes:        p.Writes,
		SigMain:       p.SigMain,
		SigDerived:    p.SigDerived,
		PubKeyMain:    p.PubKeyMain,
		PubKeyDerived: p.PubKeyDerived,
	}
	tx.Hash = tx.computeHash()
	return tx
}

// PreHash is the canonical encoding of every field except the two
// signatures. Clients wanting to sign the transaction use this two-phase
// scheme: sign PreHash() with both keys, attach the signatures, then New
// computes the final Hash including them.
func (tx *Transaction) PreHash() []byte {
	var buf []byte
	buf = encode.String(buf, tx.From)
	buf = encode.String(buf, tx.To)
	buf = tx.Asset.Encode(buf)
	amt := tx.Amount.Bytes16()
	fee := tx.FeeUPLP.Bytes16()
	buf = append(buf, amt[:]...)
	buf = append(buf, fee[:]...)
	buf = encode.Uint64(buf, tx.Nonce)
	buf = encode.StringSet(buf, tx.Reads)
	buf = encode.StringSet(buf, tx.Writes)
	return buf
}

// computeHash is the full canonical encoding, including the two
// signatures. It is a pure function of the transaction's fields: no
// randomness, no system time.
func (tx *Transaction) computeHash() string {
	buf := tx.PreHash()
	buf = encode.Bytes(buf, tx.SigMain)
	buf = encode.Bytes(buf, tx.SigDerived)
	sum := sha256.Sum256(buf)
	return hex.EncodeToString(sum[:])
}

// ComputeHash recomputes the hash from the transaction's current fields,
// exposed for validation and for callers wanting to check hash stability.
func (tx *Transaction) ComputeHash() string { return tx.computeHash() }

// ValidateBasic checks amount, fee, party distinctness, the treasury
// sender restriction, non-empty signatures, and hash integrity.
func (tx *Transaction) ValidateBasic() error {
	if !tx.Amount.GreaterThanZero() {
		return perr.InvalidTransaction(perr.SubZeroAmount, "amount must be > 0")
	}
	if !tx.FeeUPLP.GreaterThanZero() {
		return perr.InvalidTransaction(perr.SubZeroFee, "fee_uplp must be >= 1")
	}
	if tx.From == tx.To {
		return perr.InvalidTransaction(perr.SubSameParty, "from and to must differ")
	}
	if tx.From == Treasury {
		return perr.InvalidTransaction(perr.SubTreasurySender, "treasury may not be a sender")
	}
	if len(tx.SigMain) == 0 || len(tx.SigDerived) == 0 {
		return perr.InvalidTransaction(perr.SubEmptySignature, "both signatures must be present")
	}
	if tx.Hash != tx.computeHash() {
		return perr.InvalidTransaction(perr.SubHashMismatch, "stored hash does not match computed hash")
	}
	return nil
}

// VerifySignatures checks both signatures against PreHash using v.
func (tx *Transaction) VerifySignatures(v Verifier) error {
	pre := tx.PreHash()
	if !v.Verify(tx.SigMain, pre, tx.PubKeyMain) {
		return perr.SignatureInvalid(perr.WhichMain)
	}
	if !v.Verify(tx.SigDerived, pre, tx.PubKeyDerived) {
		return perr.SignatureInvalid(perr.WhichDerived)
	}
	return nil
}

// sortedCopy returns set in sorted order without mutating it.
// encode.StringSet already sorts internally; this is exposed for callers
// that want the sorted view without re-deriving it (e.g. tests).
func sortedCopy(set []string) []string {
	out := append([]string(nil), set...)
	sort.Strings(out)
	return out
}

// SortedReads returns Reads in canonical sorted order.
func (tx *Transaction) SortedReads() []string { return sortedCopy(tx.Reads) }

// SortedWrites returns Writes in canonical sorted order.
func (tx *Transaction) SortedWrites() []string { return sortedCopy(tx.Writes) }
