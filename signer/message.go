package signer

import "crypto/sha256"

// MessageDomainPrefix is the fixed ASCII domain separator prepended to
// message bytes before hashing for the `sign-message`/`verify-signature`
// CLI commands.
const MessageDomainPrefix = "platarium:msg:v1\n"

// HashMessage returns sha256(MessageDomainPrefix || msg).
func HashMessage(msg []byte) []byte {
	h := sha256.New()
	h.Write([]byte(MessageDomainPrefix))
	h.Write(msg)
	return h.Sum(nil)
}

// SignMessage signs the domain-separated msg with both the main key and
// its HKDF-derived counterpart, matching the two-signature shape
// `sign-message` prints. The returned hash is
// sha256(MessageDomainPrefix || msg), the same digest Sign and Verify
// compute internally from the domain-separated bytes — callers verifying
// with Secp256k1Verifier must pass the same domain-separated bytes, not
// the hash. The verify-signature command takes the raw message and
// prepends MessageDomainPrefix itself.
func SignMessage(main *KeyPair, msg []byte) (hash string, sigMain, sigDerived []byte, err error) {
	derived, err := DerivedKeyPair(main)
	if err != nil {
		return "", nil, nil, err
	}
	domainMsg := append([]byte(MessageDomainPrefix), msg...)
	digest := HashMessage(msg)
	return hexString(digest), main.Sign(domainMsg), derived.Sign(domainMsg), nil
}

func hexString(b []byte) string {
	const hextable = "0123456789abcdef"
	out := make([]byte, len(b)*2)
	for i, v := range b {
		out[i*2] = hextable[v>>4]
		out[i*2+1] = hextable[v&0x0f]
	}
	return string(out)
}
