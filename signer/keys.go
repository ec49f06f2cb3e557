package signer

import (
	"crypto/sha256"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

func sha256Sum(b []byte) []byte {
	sum := sha256.Sum256(b)
	return sum[:]
}

// keyFromSeed builds a secp256k1 key pair deterministically from a
// 32-byte seed, for DeriveFromMnemonic.
func keyFromSeed(seed []byte) (*KeyPair, error) {
	digest := sha256Sum(seed)
	priv := secp256k1.PrivKeyFromBytes(digest)
	return &KeyPair{priv: priv, Pub: priv.PubKey().SerializeCompressed()}, nil
}

// PrivBytes returns the raw 32-byte private scalar.
func (kp *KeyPair) PrivBytes() []byte { return kp.priv.Serialize() }
