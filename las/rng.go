// SPDX-License-Identifier: MIT

package las

import "math/rand/v2"

// Random streams.
//
// Realizations are reproducible from a uint64 seed: NewRand(seed) returns a
// PCG-backed *rand.Rand, and DeriveSeed(seed, r) gives realization r of an
// ensemble its own stream. A *rand.Rand is not goroutine-safe; give every
// worker its own.

// DefaultSeed replaces seed 0.
const DefaultSeed uint64 = 1

// NewRand returns a deterministic generator. Policy: seed==0 ⇒ DefaultSeed.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = DefaultSeed
	}

	return rand.New(rand.NewPCG(seed, DeriveSeed(seed, 0)))
}

// DeriveSeed mixes a parent seed and a stream identifier with the SplitMix64
// finalizer, so neighboring stream ids give unrelated seeds.
func DeriveSeed(parent, stream uint64) uint64 {
	x := parent ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return x
}
