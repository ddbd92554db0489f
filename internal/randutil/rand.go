package randutil

import (
	rand "math/rand/v2"

	"github.com/coder/quartz"
)

const (
	goldenRatio64 = 0x9e3779b97f4a7c15
)

// New returns a *rand.Rand seeded deterministically from the provided int64.
// The two PCG seeds are derived with splitmix so that nearby seeds still give
// unrelated shuffles.
func New(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64)))
}

// Seed returns explicit when it is non-zero, otherwise a seed taken from the
// clock. Zero is reserved to mean "not set" throughout configuration.
func Seed(explicit int64, clock quartz.Clock) int64 {
	if explicit != 0 {
		return explicit
	}
	seed := clock.Now().UnixNano()
	if seed == 0 {
		seed = 1
	}
	return seed
}

// Derive returns n independent seeds drawn from rng, one per worker.
func Derive(rng *rand.Rand, n int) []int64 {
	seeds := make([]int64, n)
	for i := range seeds {
		seeds[i] = rng.Int64()
	}
	return seeds
}

func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
