package pns

import (
	"math/rand"

	"github.com/qkdlab/pns/go/pns/bitmap"
	"github.com/qkdlab/pns/go/pns/qubit"
	"gonum.org/v1/gonum/stat/distuv"
)

// A Simulator executes BB84 transmission rounds under a
// photon-number-splitting eavesdropper and accumulates the sifted key
// material for a single mean photon number. Simulators are
// single-shot: construct a fresh one per run.
type Simulator struct {
	mu      float64
	rounds  int
	rand    *rand.Rand
	oracle  qubit.Oracle
	photons distuv.Poisson

	key keyMaterial
}

// keyMaterial holds the parallel sifted sequences of one run. The i-th
// bit of each field refers to the same sifted round; eveBits is
// meaningful only where eveKnown is set.
type keyMaterial struct {
	sender   bitmap.Dense
	receiver bitmap.Dense
	eveBits  bitmap.Dense
	eveKnown bitmap.Dense
}

// Run executes all configured rounds and returns the run's summary
// statistics.
func (s *Simulator) Run() Stats {
	sent := 0
	for i := 0; i < s.rounds; i++ {
		s.round()
		sent++
	}
	stats := tally(s.key)
	stats.Pulses = sent
	return stats
}

// round executes a single transmission: the sender draws a bit and a
// basis, the receiver draws a basis, and the pulse's photon count
// decides whether Eve can split off and keep a photon. Rounds with
// mismatched bases are discarded whole; matching-basis rounds append
// one bit to each sifted sequence.
func (s *Simulator) round() {
	sendBit := byte(s.rand.Intn(2))
	sendBasis := s.randBasis()
	recvBasis := s.randBasis()

	photons := 0
	if s.mu > 0 {
		photons = int(s.photons.Rand())
	}
	// Eve can only split multi-photon pulses, and this model further
	// assumes her splitter is calibrated for the diagonal basis: she
	// keeps a photon only when both parties chose X. An intentional
	// simplification, not a physical constraint on PNS.
	eligible := photons > 1 && sendBasis == qubit.X && recvBasis == qubit.X

	c := s.oracle.Prepare(sendBit, sendBasis)
	recvBit := s.oracle.Measure(c, recvBasis)

	if sendBasis != recvBasis {
		return
	}
	s.key.sender.AppendBit(sendBit == 1)
	s.key.receiver.AppendBit(recvBit == 1)
	s.key.eveKnown.AppendBit(eligible)
	// A split photon measured after basis announcement reads out the
	// sender's bit exactly.
	s.key.eveBits.AppendBit(eligible && sendBit == 1)
}

func (s *Simulator) randBasis() qubit.Basis {
	if s.rand.Intn(2) == 0 {
		return qubit.Z
	}
	return qubit.X
}

// tally reduces completed key material into summary statistics. An
// empty key yields all-zero statistics rather than an error.
func tally(k keyMaterial) Stats {
	n := k.sender.Size()
	if n == 0 {
		return Stats{}
	}
	stats := Stats{SiftedBits: n}
	errs := bitmap.CountOnes(bitmap.XOr(k.sender, k.receiver))
	stats.QBER = float64(errs) / float64(n)

	known := bitmap.CountOnes(k.eveKnown)
	stats.EveCoverage = float64(known) / float64(n)
	if known > 0 {
		eve := bitmap.Select(k.eveBits, k.eveKnown)
		sent := bitmap.Select(k.sender, k.eveKnown)
		wrong := bitmap.CountOnes(bitmap.XOr(eve, sent))
		stats.EveAccuracy = float64(known-wrong) / float64(known)
	}
	return stats
}
