package signer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PlatariumNetwork/PlatariumCore/signer"
)

func TestHashMessageDeterministic(t *testing.T) {
	a := signer.HashMessage([]byte("hello"))
	b := signer.HashMessage([]byte("hello"))
	assert.Equal(t, a, b)
}

func TestHashMessageDiffersByContent(t *testing.T) {
	a := signer.HashMessage([]byte("hello"))
	b := signer.HashMessage([]byte("world"))
	assert.NotEqual(t, a, b)
}

func TestSignMessageVerifiesAgainstBothKeys(t *testing.T) {
	main, err := signer.GenerateKeyPair()
	require.NoError(t, err)
	derived, err := signer.DerivedKeyPair(main)
	require.NoError(t, err)

	msg := []byte(`{"amount":100}`)
	hash, sigMain, sigDerived, err := signer.SignMessage(main, msg)
	require.NoError(t, err)
	assert.Equal(t, len(signer.HashMessage(msg))*2, len(hash))

	domainMsg := append([]byte(signer.MessageDomainPrefix), msg...)
	v := signer.Secp256k1Verifier{}
	assert.True(t, v.Verify(sigMain, domainMsg, main.Pub))
	assert.True(t, v.Verify(sigDerived, domainMsg, derived.Pub))
}

func TestSignMessageHashMatchesHashMessage(t *testing.T) {
	main, err := signer.GenerateKeyPair()
	require.NoError(t, err)

	msg := []byte("a payload")
	hash, _, _, err := signer.SignMessage(main, msg)
	require.NoError(t, err)

	want := signer.HashMessage(msg)
	assert.Equal(t, hashToHex(want), hash)
}

func hashToHex(b []byte) string {
	const hextable = "0123456789abcdef"
	out := make([]byte, len(b)*2)
	for i, v := range b {
		out[i*2] = hextable[v>>4]
		out[i*2+1] = hextable[v&0x0f]
	}
	return string(out)
}
