// Package state implements the account-based State store and its
// copy-on-write Snapshot.
package state

import (
	"encoding/hex"
	"sort"

	"github.com/PlatariumNetwork/PlatariumCore/asset"
	"github.com/PlatariumNetwork/PlatariumCore/internal/encode"
	"github.com/PlatariumNetwork/PlatariumCore/internal/merkle"
	"github.com/PlatariumNetwork/PlatariumCore/perr"
	"github.com/PlatariumNetwork/PlatariumCore/txn"
	"github.com/PlatariumNetwork/PlatariumCore/u128"
)

// Treasury is the sole fee sink address.
const Treasury = txn.Treasury

type assetBalanceKey struct {
	Addr     string
	AssetKey string
}

// State is the mapping from address to account state. Missing addresses
// read as the zero account; accounts are created lazily on first write
// and are never deleted.
type State struct {
	assetBalances *cowMap[assetBalanceKey, u128.Int]
	uplpBalances  *cowMap[string, u128.Int]
	nonces        *cowMap[string, uint64]
}

// New returns an empty State.
func New() *State {
	return &State{
		assetBalances: newCOWMap[assetBalanceKey, u128.Int](),
		uplpBalances:  newCOWMap[string, u128.Int](),
		nonces:        newCOWMap[string, uint64](),
	}
}

// GetAssetBalance returns the balance of asset a held by addr, or 0 if
// unset.
func (s *State) GetAssetBalance(addr string, a asset.Asset) u128.Int {
	v, ok := s.assetBalances.get(assetBalanceKey{addr, a.Key()})
	if !ok {
		return u128.Zero
	}
	return v
}

// GetUPLPBalance returns addr's µPLP fee balance, or 0 if unset. This is
// distinct from any PLP asset balance.
func (s *State) GetUPLPBalance(addr string) u128.Int {
	v, ok := s.uplpBalances.get(addr)
	if !ok {
		return u128.Zero
	}
	return v
}

// GetNonce returns addr's nonce, or 0 if unset.
func (s *State) GetNonce(addr string) uint64 {
	v, _ := s.nonces.get(addr)
	return v
}

// SetAssetBalance is an unchecked setter for test/boot use.
func (s *State) SetAssetBalance(addr string, a asset.Asset, v u128.Int) {
	s.assetBalances.set(assetBalanceKey{addr, a.Key()}, v)
}

// SetUPLPBalance is an unchecked setter for test/boot use.
func (s *State) SetUPLPBalance(addr string, v u128.Int) {
	s.uplpBalances.set(addr, v)
}

// SetNonce is an unchecked setter for test/boot use.
func (s *State) SetNonce(addr string, v uint64) {
	s.nonces.set(addr, v)
}

// SetBalance aliases SetAssetBalance(addr, asset.PLP(), v).
func (s *State) SetBalance(addr string, v u128.Int) {
	s.SetAssetBalance(addr, asset.PLP(), v)
}

// GetBalance aliases GetAssetBalance(addr, asset.PLP()).
func (s *State) GetBalance(addr string) u128.Int {
	return s.GetAssetBalance(addr, asset.PLP())
}

// ApplyTransaction applies tx's transfer to the state.
func (s *State) ApplyTransaction(tx *txn.Transaction) error {
	return s.ApplyTransfer(tx.From, tx.To, tx.Asset, tx.Amount, tx.FeeUPLP, tx.Nonce)
}

// ApplyTransfer stages every read and checked computation first, and
// only writes once every check has passed, so a failure at any step
// leaves the State byte-identical to its pre-call value.
func (s *State) ApplyTransfer(from, to string, a asset.Asset, amount, feeUPLP u128.Int, nonce uint64) error {
	currentNonce := s.GetNonce(from)
	if nonce != currentNonce {
		return perr.NonceMismatch(currentNonce, nonce)
	}

	fromUPLP := s.GetUPLPBalance(from)
	if !fromUPLP.GreaterOrEqual(feeUPLP) {
		return perr.InsufficientFee(feeUPLP.String(), fromUPLP.String())
	}

	fromBal := s.GetAssetBalance(from, a)
	if !fromBal.GreaterOrEqual(amount) {
		return perr.InsufficientBalance(amount.String(), fromBal.String())
	}

	newFromUPLP, err := fromUPLP.Sub(feeUPLP)
	if err != nil {
		return perr.ArithmeticOverflow(err.Error())
	}
	newFromBal, err := fromBal.Sub(amount)
	if err != nil {
		return perr.ArithmeticOverflow(err.Error())
	}
	toBal := s.GetAssetBalance(to, a)
	newToBal, err := toBal.Add(amount)
	if err != nil {
		return perr.ArithmeticOverflow(err.Error())
	}
	treasuryUPLP := s.GetUPLPBalance(Treasury)
	newTreasuryUPLP, err := treasuryUPLP.Add(feeUPLP)
	if err != nil {
		return perr.ArithmeticOverflow(err.Error())
	}
	newNonce := currentNonce + 1
	if newNonce < currentNonce {
		return perr.ArithmeticOverflow("nonce overflow")
	}

	// All checks passed; commit every staged value. No step here can
	// fail, so the mutation below is effectively atomic.
	s.uplpBalances.set(from, newFromUPLP)
	s.SetAssetBalance(from, a, newFromBal)
	s.SetAssetBalance(to, a, newToBal)
	s.uplpBalances.set(Treasury, newTreasuryUPLP)
	s.nonces.set(from, newNonce)
	return nil
}

// Snapshot captures the current State in O(1) amortized time. The
// returned Snapshot is immutable and survives arbitrary subsequent
// mutation of the live State.
func (s *State) Snapshot() *Snapshot {
	return &Snapshot{
		assetBalances: s.assetBalances.snapshot(),
		uplpBalances:  s.uplpBalances.snapshot(),
		nonces:        s.nonces.snapshot(),
	}
}

// Restore atomically replaces the live State's contents with snap's.
// Calling Restore with two snapshots taken from the same state in a row
// is idempotent.
func (s *State) Restore(snap *Snapshot) {
	s.assetBalances = fromShared(snap.assetBalances)
	s.uplpBalances = fromShared(snap.uplpBalances)
	s.nonces = fromShared(snap.nonces)
}

// Copy returns a new, independently-mutable State initialized from a
// snapshot of s — used by execution to build the throwaway state a
// Simulation context mutates.
func (s *State) Copy() *State {
	cp := New()
	cp.Restore(s.Snapshot())
	return cp
}

// ContentHash is State.Snapshot().ContentHash(), a convenience for
// comparing live state without holding onto the snapshot.
func (s *State) ContentHash() string {
	return s.Snapshot().ContentHash()
}

// Snapshot is an immutable, cheaply-cloned view of State at a point in
// time.
type Snapshot struct {
	assetBalances map[assetBalanceKey]u128.Int
	uplpBalances  map[string]u128.Int
	nonces        map[string]uint64
}

// GetAssetBalance returns the balance of asset a held by addr in this
// snapshot, or 0 if unset.
func (snap *Snapshot) GetAssetBalance(addr string, a asset.Asset) u128.Int {
	v, ok := snap.assetBalances[assetBalanceKey{addr, a.Key()}]
	if !ok {
		return u128.Zero
	}
	return v
}

// GetBalance returns the PLP balance of addr in this snapshot.
func (snap *Snapshot) GetBalance(addr string) u128.Int {
	return snap.GetAssetBalance(addr, asset.PLP())
}

// GetUPLPBalance returns the µPLP balance of addr in this snapshot.
func (snap *Snapshot) GetUPLPBalance(addr string) u128.Int {
	v, ok := snap.uplpBalances[addr]
	if !ok {
		return u128.Zero
	}
	return v
}

// GetNonce returns the nonce of addr in this snapshot.
func (snap *Snapshot) GetNonce(addr string) uint64 {
	return snap.nonces[addr]
}

// ContentHash is a deterministic SHA-256-based Merkle root over a
// canonical, sorted, length-prefixed encoding of every entry in the
// snapshot, giving callers a cheap way to compare two states for
// equality without diffing every balance by hand.
func (snap *Snapshot) ContentHash() string {
	leaves := make([][]byte, 0, len(snap.assetBalances)+len(snap.uplpBalances)+len(snap.nonces))

	type abEntry struct {
		key assetBalanceKey
		val u128.Int
	}
	abEntries := make([]abEntry, 0, len(snap.assetBalances))
	for k, v := range snap.assetBalances {
		abEntries = append(abEntries, abEntry{k, v})
	}
	sort.Slice(abEntries, func(i, j int) bool {
		if abEntries[i].key.Addr != abEntries[j].key.Addr {
			return abEntries[i].key.Addr < abEntries[j].key.Addr
		}
		return abEntries[i].key.AssetKey < abEntries[j].key.AssetKey
	})
	for _, e := range abEntries {
		var buf []byte
		buf = encode.String(buf, "asset")
		buf = encode.String(buf, e.key.Addr)
		buf = encode.String(buf, e.key.AssetKey)
		amt := e.val.Bytes16()
		buf = append(buf, amt[:]...)
		leaves = append(leaves, buf)
	}

	uplpAddrs := make([]string, 0, len(snap.uplpBalances))
	for addr := range snap.uplpBalances {
		uplpAddrs = append(uplpAddrs, addr)
	}
	sort.Strings(uplpAddrs)
	for _, addr := range uplpAddrs {
		var buf []byte
		buf = encode.String(buf, "uplp")
		buf = encode.String(buf, addr)
		amt := snap.uplpBalances[addr].Bytes16()
		buf = append(buf, amt[:]...)
		leaves = append(leaves, buf)
	}

	nonceAddrs := make([]string, 0, len(snap.nonces))
	for addr := range snap.nonces {
		nonceAddrs = append(nonceAddrs, addr)
	}
	sort.Strings(nonceAddrs)
	for _, addr := range nonceAddrs {
		var buf []byte
		buf = encode.String(buf, "nonce")
		buf = encode.String(buf, addr)
		buf = encode.Uint64(buf, snap.nonces[addr])
		leaves = append(leaves, buf)
	}

	return hex.EncodeToString(merkle.RootHash(leaves))
}
