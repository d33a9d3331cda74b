// Package pns estimates the impact of photon-number-splitting (PNS)
// attacks on BB84 key distribution. It simulates weak-pulse
// transmission rounds at a configurable mean photon number per pulse,
// sifts the matching-basis rounds into key material, and reports the
// resulting error rate alongside how much of the sifted key the
// eavesdropper could intercept.
package pns

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/qkdlab/pns/go/pns/qubit"
	exprand "golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Stats packages together the summary statistics of a completed
// simulation run.
type Stats struct {
	// QBER is the bit-error rate between the sender's and receiver's
	// sifted keys.
	QBER float64

	// EveAccuracy is the fraction of intercepted bits on which Eve
	// agrees with the sender, among the bits she intercepted. Zero
	// when she intercepted none.
	EveAccuracy float64

	// EveCoverage is the fraction of sifted bits Eve was able to
	// intercept.
	EveCoverage float64

	// Pulses is the number of pulses sent, sifted or not.
	Pulses int

	// SiftedBits is the length of the sifted key.
	SiftedBits int
}

// A SimulatorOpts packages together the arguments necessary to
// construct a new Simulator. Rand must be non-nil; the remaining
// fields have usable zero values or defaults.
type SimulatorOpts struct {
	// Mu is the mean photon number per pulse. Pulse photon counts are
	// Poisson-distributed with this mean. Must be non-negative.
	Mu float64

	// Rounds is the number of pulses to send. Non-positive values
	// yield an empty sifted key and all-zero statistics.
	Rounds int

	// Rand provides this run's source of randomness. Runs sharing a
	// Rand are not statistically independent of each other. Must be
	// non-nil.
	Rand *rand.Rand

	// Oracle prepares and measures the quantum carriers. Defaults to
	// an ideal simulated carrier drawing on Rand.
	Oracle qubit.Oracle
}

// NewSimulator returns a new Simulator, configured in accordance with
// opts, or an error if the options are nonsensical.
func NewSimulator(opts SimulatorOpts) (*Simulator, error) {
	if opts.Rand == nil {
		return nil, errors.New("must provide Rand")
	}
	if opts.Mu < 0 {
		return nil, fmt.Errorf("negative mean photon number: %v", opts.Mu)
	}
	oracle := opts.Oracle
	if oracle == nil {
		oracle = qubit.NewSimulated(opts.Rand)
	}
	return &Simulator{
		mu:     opts.Mu,
		rounds: opts.Rounds,
		rand:   opts.Rand,
		oracle: oracle,
		photons: distuv.Poisson{
			Lambda: opts.Mu,
			Src:    exprand.NewSource(uint64(opts.Rand.Int63())),
		},
	}, nil
}
