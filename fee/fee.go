// Package fee implements the load-adaptive fee schedule. It is a pure
// function of pending-pool occupancy: no clock, no randomness, no other
// input.
package fee

// BaseTxFeeMicroPLP is the unscaled per-transaction fee, in µPLP.
const BaseTxFeeMicroPLP = 1

// MaxBatchSize is the occupancy ceiling load is measured against.
const MaxBatchSize = 1000

// CalculateFeeFromLoad returns the fee, in µPLP, for a mempool holding
// pendingCount transactions. A pure function of pendingCount.
func CalculateFeeFromLoad(pendingCount uint64) uint64 {
	return BaseTxFeeMicroPLP * uint64(multiplierForLoad(loadPercent(pendingCount)))
}

// loadPercent computes p = min(pendingCount, MaxBatchSize) * 100 / MaxBatchSize,
// an integer percentage in [0, 100].
func loadPercent(pendingCount uint64) uint64 {
	clamped := pendingCount
	if clamped > MaxBatchSize {
		clamped = MaxBatchSize
	}
	return clamped * 100 / MaxBatchSize
}

// multiplierForLoad maps a load percentage to its fee multiplier. Upper
// bucket endpoints are inclusive: p=30 -> 1x, p=31 -> 2x, p=60 -> 2x,
// p=61 -> 3x, p=80 -> 3x, p=81 -> 5x.
func multiplierForLoad(p uint64) uint64 {
	switch {
	case p <= 30:
		return 1
	case p <= 60:
		return 2
	case p <= 80:
		return 3
	default:
		return 5
	}
}
