package signer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PlatariumNetwork/PlatariumCore/signer"
)

func TestGenerateKeyPairProducesUsablePair(t *testing.T) {
	kp, err := signer.GenerateKeyPair()
	require.NoError(t, err)
	assert.NotEmpty(t, kp.Pub)
	assert.NotEmpty(t, kp.PrivBytes())
}

func TestGenerateKeyPairIsRandom(t *testing.T) {
	a, err := signer.GenerateKeyPair()
	require.NoError(t, err)
	b, err := signer.GenerateKeyPair()
	require.NoError(t, err)
	assert.NotEqual(t, a.Pub, b.Pub)
}

func TestDerivedKeyPairDeterministicFromMain(t *testing.T) {
	main, err := signer.GenerateKeyPair()
	require.NoError(t, err)

	a, err := signer.DerivedKeyPair(main)
	require.NoError(t, err)
	b, err := signer.DerivedKeyPair(main)
	require.NoError(t, err)

	assert.Equal(t, a.Pub, b.Pub)
}

func TestDerivedKeyPairDiffersFromMain(t *testing.T) {
	main, err := signer.GenerateKeyPair()
	require.NoError(t, err)

	derived, err := signer.DerivedKeyPair(main)
	require.NoError(t, err)

	assert.NotEqual(t, main.Pub, derived.Pub)
}

func TestDerivedKeyPairRejectsNil(t *testing.T) {
	_, err := signer.DerivedKeyPair(nil)
	assert.Error(t, err)
}

func TestSignAndVerifyRoundTrip(t *testing.T) {
	kp, err := signer.GenerateKeyPair()
	require.NoError(t, err)

	msg := []byte("a message to sign")
	sig := kp.Sign(msg)

	v := signer.Secp256k1Verifier{}
	assert.True(t, v.Verify(sig, msg, kp.Pub))
}

func TestVerifyRejectsWrongKey(t *testing.T) {
	kp, err := signer.GenerateKeyPair()
	require.NoError(t, err)
	other, err := signer.GenerateKeyPair()
	require.NoError(t, err)

	msg := []byte("a message to sign")
	sig := kp.Sign(msg)

	v := signer.Secp256k1Verifier{}
	assert.False(t, v.Verify(sig, msg, other.Pub))
}

func TestVerifyRejectsTamperedMessage(t *testing.T) {
	kp, err := signer.GenerateKeyPair()
	require.NoError(t, err)

	sig := kp.Sign([]byte("original"))

	v := signer.Secp256k1Verifier{}
	assert.False(t, v.Verify(sig, []byte("tampered"), kp.Pub))
}

func TestVerifyRejectsGarbageSignature(t *testing.T) {
	kp, err := signer.GenerateKeyPair()
	require.NoError(t, err)

	v := signer.Secp256k1Verifier{}
	assert.False(t, v.Verify([]byte{0x01, 0x02, 0x03}, []byte("msg"), kp.Pub))
}

func TestVerifyRejectsGarbagePubkey(t *testing.T) {
	kp, err := signer.GenerateKeyPair()
	require.NoError(t, err)
	sig := kp.Sign([]byte("msg"))

	v := signer.Secp256k1Verifier{}
	assert.False(t, v.Verify(sig, []byte("msg"), []byte{0x01, 0x02}))
}
