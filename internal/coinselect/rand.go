// Copyright (c) 2025 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package coinselect

import "math/rand/v2"

// Source is the engine's single external dependency: a uniform sampling
// primitive. Seeding it is the caller's concern; tests pass a deterministic
// fixture so that two runs with identical seeds, inputs, and constraints
// produce identical selections.
type Source interface {
	// UintN returns a value uniformly distributed over [0, n). It is only
	// ever called with n > 0.
	UintN(n uint64) uint64
}

// MathRandSource wraps math/rand/v2 as a Source, the production source a
// CLI or service process passes to PerformSelection/CreatePlan.
type MathRandSource struct {
	r *rand.Rand
}

// NewMathRandSource builds a MathRandSource seeded from seed.
func NewMathRandSource(seed uint64) *MathRandSource {
	return &MathRandSource{r: rand.New(rand.NewPCG(seed, seed))}
}

func (s *MathRandSource) UintN(n uint64) uint64 {
	return s.r.Uint64N(n)
}
