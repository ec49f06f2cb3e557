package txn_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PlatariumNetwork/PlatariumCore/asset"
	"github.com/PlatariumNetwork/PlatariumCore/perr"
	"github.com/PlatariumNetwork/PlatariumCore/txn"
	"github.com/PlatariumNetwork/PlatariumCore/u128"
)

func validParams() txn.Params {
	return txn.Params{
		From:          "alice",
		To:            "bob",
		Asset:         asset.PLP(),
		Amount:        u128.FromUint64(100),
		FeeUPLP:       u128.FromUint64(1),
		Nonce:         0,
		Reads:         []string{"alice"},
		Writes:        []string{"alice", "bob", txn.Treasury},
		SigMain:       []byte{0x01},
		SigDerived:    []byte{0x02},
		PubKeyMain:    []byte{0x03},
		PubKeyDerived: []byte{0x04},
	}
}

func TestNewComputesHash(t *testing.T) {
	tx := txn.New(validParams())
	assert.NotEmpty(t, tx.Hash)
	assert.Equal(t, tx.Hash, tx.ComputeHash())
}

// TestHashStability mirrors the "compute_hash is a pure function" property:
// two transactions with identical fields must hash identically.
func TestHashStability(t *testing.T) {
	a := txn.New(validParams())
	b := txn.New(validParams())
	assert.Equal(t, a.Hash, b.Hash)
}

func TestHashChangesWithSignature(t *testing.T) {
	a := txn.New(validParams())

	p := validParams()
	p.SigMain = []byte{0xff}
	b := txn.New(p)

	assert.NotEqual(t, a.Hash, b.Hash)
}

func TestPreHashExcludesSignatures(t *testing.T) {
	a := txn.New(validParams())

	p := validParams()
	p.SigMain = []byte{0xff, 0xff}
	p.SigDerived = []byte{0xee}
	b := txn.New(p)

	assert.Equal(t, a.PreHash(), b.PreHash())
	assert.NotEqual(t, a.Hash, b.Hash)
}

func TestValidateBasicRejectsZeroAmount(t *testing.T) {
	p := validParams()
	p.Amount = u128.Zero
	tx := txn.New(p)
	err := tx.ValidateBasic()
	require.Error(t, err)
	assert.True(t, isInvalidSub(err, perr.SubZeroAmount))
}

func TestValidateBasicRejectsZeroFee(t *testing.T) {
	p := validParams()
	p.FeeUPLP = u128.Zero
	tx := txn.New(p)
	err := tx.ValidateBasic()
	require.Error(t, err)
	assert.True(t, isInvalidSub(err, perr.SubZeroFee))
}

func TestValidateBasicRejectsSameParty(t *testing.T) {
	p := validParams()
	p.To = p.From
	tx := txn.New(p)
	err := tx.ValidateBasic()
	require.Error(t, err)
	assert.True(t, isInvalidSub(err, perr.SubSameParty))
}

func TestValidateBasicRejectsTreasurySender(t *testing.T) {
	p := validParams()
	p.From = txn.Treasury
	tx := txn.New(p)
	err := tx.ValidateBasic()
	require.Error(t, err)
	assert.True(t, isInvalidSub(err, perr.SubTreasurySender))
}

func TestValidateBasicRejectsEmptySignature(t *testing.T) {
	p := validParams()
	p.SigDerived = nil
	tx := txn.New(p)
	err := tx.ValidateBasic()
	require.Error(t, err)
	assert.True(t, isInvalidSub(err, perr.SubEmptySignature))
}

func TestValidateBasicRejectsHashMismatch(t *testing.T) {
	tx := txn.New(validParams())
	tx.Hash = "not-the-real-hash"
	err := tx.ValidateBasic()
	require.Error(t, err)
	assert.True(t, isInvalidSub(err, perr.SubHashMismatch))
}

func TestValidateBasicAccepts(t *testing.T) {
	tx := txn.New(validParams())
	assert.NoError(t, tx.ValidateBasic())
}

// stubVerifier always returns the configured result, for exercising
// VerifySignatures without a real cryptographic backend.
type stubVerifier struct {
	mainOK, derivedOK bool
	calls             []string
}

func (v *stubVerifier) Verify(sig, msg, pubkey []byte) bool {
	if string(sig) == "main" {
		v.calls = append(v.calls, "main")
		return v.mainOK
	}
	v.calls = append(v.calls, "derived")
	return v.derivedOK
}

func TestVerifySignaturesBothValid(t *testing.T) {
	p := validParams()
	p.SigMain = []byte("main")
	p.SigDerived = []byte("derived")
	tx := txn.New(p)

	v := &stubVerifier{mainOK: true, derivedOK: true}
	assert.NoError(t, tx.VerifySignatures(v))
}

func TestVerifySignaturesMainInvalid(t *testing.T) {
	p := validParams()
	p.SigMain = []byte("main")
	p.SigDerived = []byte("derived")
	tx := txn.New(p)

	v := &stubVerifier{mainOK: false, derivedOK: true}
	err := tx.VerifySignatures(v)
	require.Error(t, err)
	perrErr, ok := err.(*perr.Error)
	require.True(t, ok)
	assert.Equal(t, perr.KindSignatureInvalid, perrErr.Kind)
	assert.Equal(t, string(perr.WhichMain), perrErr.Sub)
}

func TestVerifySignaturesDerivedInvalid(t *testing.T) {
	p := validParams()
	p.SigMain = []byte("main")
	p.SigDerived = []byte("derived")
	tx := txn.New(p)

	v := &stubVerifier{mainOK: true, derivedOK: false}
	err := tx.VerifySignatures(v)
	require.Error(t, err)
	perrErr, ok := err.(*perr.Error)
	require.True(t, ok)
	assert.Equal(t, string(perr.WhichDerived), perrErr.Sub)
}

func TestSortedReadsWrites(t *testing.T) {
	p := validParams()
	p.Reads = []string{"zebra", "alice"}
	p.Writes = []string{"zebra", "alice", "mid"}
	tx := txn.New(p)

	assert.Equal(t, []string{"alice", "zebra"}, tx.SortedReads())
	assert.Equal(t, []string{"alice", "mid", "zebra"}, tx.SortedWrites())
	// Originals must not be mutated in place.
	assert.Equal(t, "zebra", tx.Reads[0])
}

func isInvalidSub(err error, sub perr.InvalidTransactionSub) bool {
	e, ok := err.(*perr.Error)
	if !ok {
		return false
	}
	return e.Kind == perr.KindInvalidTransaction && e.Sub == string(sub)
}
