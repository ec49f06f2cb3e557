// Package signer is the concrete signature collaborator kept out of the
// core packages: ECDSA over secp256k1 for the main key, plus an
// HKDF-derived second key for the auxiliary sig_derived signature. Core
// packages depend only on txn.Verifier; nothing in asset, fee, txn,
// state, execution, or mempool imports this package.
package signer

import (
	"crypto/sha256"
	"errors"
	"io"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"
	"golang.org/x/crypto/hkdf"
)

// derivedKeyInfo is the HKDF context string binding a derived key to its
// purpose: an auxiliary signature usable for an audit trail or a
// key-rotation proof, independent of the main signature.
const derivedKeyInfo = "platarium:derived-signing-key:v1"

// KeyPair bundles a secp256k1 private key with its public key bytes.
type KeyPair struct {
	priv *secp256k1.PrivateKey
	Pub  []byte // compressed SEC1 encoding
}

// GenerateKeyPair produces a fresh secp256k1 key pair from the system
// CSPRNG. Key and mnemonic generation (GenerateKeyPair, GenerateMnemonic)
// are the only places in this package where randomness is used: the
// determinism contract binds execution paths, not key material creation.
func GenerateKeyPair() (*KeyPair, error) {
	priv, err := secp256k1.GeneratePrivateKey()
	if err != nil {
		return nil, err
	}
	return &KeyPair{priv: priv, Pub: priv.PubKey().SerializeCompressed()}, nil
}

// DerivedKeyPair derives the auxiliary signing key from main via HKDF,
// using sha256 as the HKDF hash.
func DerivedKeyPair(main *KeyPair) (*KeyPair, error) {
	if main == nil {
		return nil, errors.New("signer: nil main key pair")
	}
	reader := hkdf.New(sha256.New, main.priv.Serialize(), nil, []byte(derivedKeyInfo))
	seed := make([]byte, 32)
	if _, err := io.ReadFull(reader, seed); err != nil {
		return nil, err
	}
	priv := secp256k1.PrivKeyFromBytes(seed)
	return &KeyPair{priv: priv, Pub: priv.PubKey().SerializeCompressed()}, nil
}

// Sign signs msg (already the transaction's PreHash or message-hash
// domain-separated bytes) with the key pair's private key.
func (kp *KeyPair) Sign(msg []byte) []byte {
	digest := sha256.Sum256(msg)
	sig := ecdsa.Sign(kp.priv, digest[:])
	return sig.Serialize()
}

// Secp256k1Verifier implements txn.Verifier (and backs the CLI's
// verify-signature command) against DER-encoded ECDSA secp256k1
// signatures.
type Secp256k1Verifier struct{}

// Verify reports whether sig is a valid ECDSA secp256k1 signature over
// sha256(msg) for the given compressed public key.
func (Secp256k1Verifier) Verify(sig, msg, pubkey []byte) bool {
	pub, err := secp256k1.ParsePubKey(pubkey)
	if err != nil {
		return false
	}
	parsed, err := ecdsa.ParseDERSignature(sig)
	if err != nil {
		return false
	}
	digest := sha256.Sum256(msg)
	return parsed.Verify(digest[:], pub)
}
