// Package core holds small helpers shared by the engine and its front ends.
package core

import (
	"math/rand/v2"
	"time"
)

// RNG wraps a PCG-backed math/rand/v2 source so that a seed fully
// determines the sequence.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Bool returns a random boolean value.
func (r *RNG) Bool() bool {
	return r.r.IntN(2) == 1
}

// Source exposes the underlying rand.Rand.
func (r *RNG) Source() *rand.Rand { return r.r }

// FillBinary writes an independent 0 or 1 into every element of buf.
func FillBinary[T ~uint8](r *rand.Rand, buf []T) {
	for i := range buf {
		buf[i] = T(r.IntN(2))
	}
}

// TimeSeed returns a seed derived from the wall clock, for callers that
// want a fresh board rather than a reproducible one.
func TimeSeed() int64 { return time.Now().UnixNano() }
