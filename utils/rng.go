package utils

import (
	"math/rand/v2"
	"time"
)

// NewRNG creates a deterministic generator for the provided seed. A zero seed
// is replaced with the current time.
func NewRNG(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewPCG(uint64(seed), 0))
}
