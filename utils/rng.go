package utils

import (
	"math/rand/v2"
	"time"
)

// NewRNG creates a PCG-backed generator. A zero seed picks one from the clock.
func NewRNG(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewPCG(uint64(seed), 0))
}
