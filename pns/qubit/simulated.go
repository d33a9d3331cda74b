package qubit

import "math/rand"

// NewSimulated returns an Oracle simulating an ideal quantum channel:
// no noise, no loss, no detector inefficiency. Conjugate-basis
// measurement outcomes are drawn from rng, which must be non-nil. This
// may use pRNG for experiments and testing; modeling a real adversary
// would require true randomness.
func NewSimulated(rng *rand.Rand) *Simulated {
	return &Simulated{rng: rng}
}

// A Simulated is an ideal in-memory Oracle.
type Simulated struct {
	rng *rand.Rand
}

type state struct {
	bit   byte
	basis Basis
}

// Prepare implements the Oracle interface.
func (s *Simulated) Prepare(bit byte, basis Basis) Carrier {
	return state{bit: bit & 1, basis: basis}
}

// Measure implements the Oracle interface. Measuring a Carrier that
// this Oracle did not prepare panics.
func (s *Simulated) Measure(c Carrier, basis Basis) byte {
	st := c.(state)
	if st.basis == basis {
		return st.bit
	}
	return byte(s.rng.Intn(2))
}
