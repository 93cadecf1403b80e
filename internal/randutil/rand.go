package randutil

import (
	rand "math/rand/v2"
	"time"
)

const (
	goldenRatio64 = 0x9e3779b97f4a7c15
)

// New returns a *rand.Rand seeded deterministically from the provided int64.
// Both 64-bit PCG seeds are derived from it so equal seeds replay the same
// deals.
func New(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64)))
}

// Resolve returns seed unchanged, or a time-derived seed when seed is zero.
// Callers log the resolved seed so a session can be replayed.
func Resolve(seed int64) int64 {
	if seed != 0 {
		return seed
	}
	return time.Now().UnixNano()
}

// Child derives an independent generator from parent, for handing to a
// worker or a bot without sharing state.
func Child(parent *rand.Rand) *rand.Rand {
	return New(parent.Int64())
}

func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
