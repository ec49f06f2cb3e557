package signer

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
)

// wordlist is a small stand-in for a real BIP39 wordlist. Full BIP39
// mnemonic generation and BIP32 HD derivation are out of scope for the
// core engine; this gives the CLI commands something runnable without
// pulling in a wordlist compliance dependency.
var wordlist = [256]string{}

func init() {
	base := []string{
		"anchor", "beacon", "cipher", "delta", "echo", "forge", "glacier", "harbor",
		"ingot", "jungle", "karst", "lumen", "mosaic", "nebula", "oracle", "piston",
		"quartz", "raptor", "salvo", "tundra", "umbra", "vertex", "willow", "xenon",
		"yonder", "zephyr", "amber", "basalt", "cobalt", "dune", "ember", "flint",
	}
	for i := range wordlist {
		wordlist[i] = base[i%len(base)] + fmt.Sprintf("%02x", i/len(base))
	}
}

// GenerateMnemonic produces a 24-word phrase and a 12-character
// alphanumeric string for the `generate-mnemonic` CLI command, without
// claiming BIP39 compliance.
func GenerateMnemonic() (mnemonic string, alphanumeric string, err error) {
	idxBytes := make([]byte, 24)
	if _, err = rand.Read(idxBytes); err != nil {
		return "", "", err
	}
	words := make([]string, 24)
	for i, b := range idxBytes {
		words[i] = wordlist[b]
	}
	mnemonic = strings.Join(words, " ")

	alnum := make([]byte, 6)
	if _, err = rand.Read(alnum); err != nil {
		return "", "", err
	}
	alphanumeric = hex.EncodeToString(alnum)
	return mnemonic, alphanumeric, nil
}

// DeriveFromMnemonic turns (mnemonic, alphanumeric, seedIndex) into a
// deterministic main key pair. This stands in for full BIP39 seed
// derivation and BIP32 HD paths: same inputs always yield the same key,
// but the derivation itself is not claimed to be interoperable with any
// external wallet.
func DeriveFromMnemonic(mnemonic, alphanumeric string, seedIndex uint32) (*KeyPair, error) {
	seed := sha256Sum([]byte(fmt.Sprintf("%s|%s|%d", mnemonic, alphanumeric, seedIndex)))
	return keyFromSeed(seed)
}
