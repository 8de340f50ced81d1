// Package spawn schedules obstacle and flyer creation: fixed-interval
// timers, distance-accumulated triggers and the randomized placement rules
// they feed.
package spawn

import (
	"errors"
	"math/rand/v2"
)

var ErrUnsatisfiablePair = errors.New("spawn: pair range narrower than minimum distance")

// Rand is the randomness source used by every spawn decision. *rand.Rand
// from math/rand/v2 satisfies it; tests substitute scripted sources.
type Rand interface {
	Float64() float64
	IntN(n int) int
}

// NewRand returns a PCG-backed source. A zero seed is still deterministic;
// callers wanting fresh runs pass a time-derived seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// IntBetween draws uniformly from the inclusive range [lo, hi].
func IntBetween(r Rand, lo, hi int) int {
	if hi < lo {
		lo, hi = hi, lo
	}
	return lo + r.IntN(hi-lo+1)
}

// FloatBetween draws uniformly from [lo, hi).
func FloatBetween(r Rand, lo, hi float64) float64 {
	if hi < lo {
		lo, hi = hi, lo
	}
	return lo + r.Float64()*(hi-lo)
}

// Chance reports true with probability p.
func Chance(r Rand, p float64) bool {
	return r.Float64() < p
}

// PairedPositions draws two positions from [lo, hi] that are at least
// minDistance apart. The first draw is limited to positions that leave room
// for a partner, and the second is drawn from what remains on either side,
// so any range accepted by CheckPairRange takes exactly two draws.
func PairedPositions(r Rand, lo, hi, minDistance int) (int, int, error) {
	if hi < lo {
		lo, hi = hi, lo
	}
	if err := CheckPairRange(lo, hi, minDistance); err != nil {
		return 0, 0, err
	}
	if minDistance <= 0 {
		return IntBetween(r, lo, hi), IntBetween(r, lo, hi), nil
	}
	y1 := unionDraw(r, lo, hi-minDistance, max(lo+minDistance, hi-minDistance+1), hi)
	y2 := unionDraw(r, lo, y1-minDistance, y1+minDistance, hi)
	return y1, y2, nil
}

// unionDraw picks uniformly from the disjoint inclusive ranges [a1, b1] and
// [a2, b2]. Either may be empty, not both.
func unionDraw(r Rand, a1, b1, a2, b2 int) int {
	n1 := max(0, b1-a1+1)
	n2 := max(0, b2-a2+1)
	k := r.IntN(n1 + n2)
	if k < n1 {
		return a1 + k
	}
	return a2 + k - n1
}

// CheckPairRange rejects ranges where no pair can be far enough apart.
func CheckPairRange(lo, hi, minDistance int) error {
	if hi < lo {
		lo, hi = hi, lo
	}
	if hi-lo < minDistance {
		return ErrUnsatisfiablePair
	}
	return nil
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
