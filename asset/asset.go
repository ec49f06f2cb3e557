// Package asset implements the typed value model: the Asset tag and the
// MicroPLP fee scalar.
package asset

import (
	"fmt"
	"regexp"

	"github.com/PlatariumNetwork/PlatariumCore/internal/encode"
)

// Kind distinguishes the base asset from a token.
type Kind uint8

const (
	KindPLP   Kind = 0
	KindToken Kind = 1
)

var tokenSymbolRe = regexp.MustCompile(`^[A-Z0-9:_-]{1,32}$`)

// Asset is a tagged union: either the base network currency PLP, or a
// Token identified by a symbol. Equality is structural.
type Asset struct {
	kind   Kind
	symbol string // empty for PLP
}

// PLP returns the base asset.
func PLP() Asset { return Asset{kind: KindPLP} }

// Token returns a token asset for symbol, validating the symbol's
// character class: `[A-Z0-9:_-]{1,32}`.
func Token(symbol string) (Asset, error) {
	if !tokenSymbolRe.MatchString(symbol) {
		return Asset{}, fmt.Errorf("invalid token symbol %q: must match [A-Z0-9:_-]{1,32}", symbol)
	}
	return Asset{kind: KindToken, symbol: symbol}, nil
}

// IsPLP reports whether a is the base asset.
func (a Asset) IsPLP() bool { return a.kind == KindPLP }

// Symbol returns the token symbol, or "" for PLP.
func (a Asset) Symbol() string { return a.symbol }

// Less implements the canonical ordering: PLP < Token(s), tokens ordered
// lexicographically by symbol. Used only for canonical hashing.
func (a Asset) Less(b Asset) bool {
	if a.kind != b.kind {
		return a.kind < b.kind
	}
	return a.symbol < b.symbol
}

// Key returns a value suitable for use as a map key (e.g. in
// asset_balances), since Asset itself is comparable but we want a single
// canonical string form shared with hashing.
func (a Asset) Key() string {
	if a.kind == KindPLP {
		return "PLP"
	}
	return "Token:" + a.symbol
}

func (a Asset) String() string { return a.Key() }

// Encode appends the canonical encoding used by transaction hashing: one
// tag byte (0 for PLP, 1 for Token) followed by the length-prefixed
// UTF-8 symbol bytes for tokens.
func (a Asset) Encode(buf []byte) []byte {
	buf = append(buf, byte(a.kind))
	if a.kind == KindToken {
		buf = encode.String(buf, a.symbol)
	}
	return buf
}
