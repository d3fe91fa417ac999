package bsgs

import "math/rand"

// rngFromSeed and deriveSeed give every independent random stream its own
// reproducible seed derived from a single top-level seed via a
// SplitMix64-style mix. The product-replacement randomizer draws from one
// such stream (stream 0), shared by all of its pool slots.
func rngFromSeed(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

func deriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) + stream*0x9E3779B97F4A7C15
	x = (x ^ (x >> 30)) * 0xBF58476D1CE4E5B9
	x = (x ^ (x >> 27)) * 0x94D049BB133111EB
	x = x ^ (x >> 31)
	return int64(x)
}

func deriveRNG(base *rand.Rand, stream uint64) *rand.Rand {
	return rngFromSeed(deriveSeed(int64(base.Uint64()), stream))
}
