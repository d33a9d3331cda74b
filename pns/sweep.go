package pns

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/montanaflynn/stats"
	"golang.org/x/sync/errgroup"
)

// A SweepPoint pairs one mean photon number with the statistics
// observed when simulating at it.
type SweepPoint struct {
	Mu    float64
	Stats Stats
}

// A SweepOpts packages together the arguments necessary to sweep a
// range of mean photon numbers.
type SweepOpts struct {
	// Mus lists the mean photon numbers to simulate, in the order the
	// results should appear.
	Mus []float64

	// Rounds is the number of pulses to send per run.
	Rounds int

	// Rand seeds the per-run generators. Must be non-nil.
	Rand *rand.Rand

	// Repeats averages each sweep point over this many independent
	// runs. Defaults to 1.
	Repeats int

	// Workers bounds how many sweep points are simulated
	// concurrently. Defaults to 1, i.e. sequential execution.
	Workers int
}

// Sweep simulates each mean photon number in opts.Mus on a fresh
// Simulator and returns one point per input, in input order. Runs are
// fully independent: no key material, generator state, or statistics
// carry over between sweep points.
func Sweep(opts SweepOpts) ([]SweepPoint, error) {
	if opts.Rand == nil {
		return nil, errors.New("must provide Rand")
	}
	repeats := opts.Repeats
	if repeats <= 0 {
		repeats = 1
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = 1
	}

	// Seeds are drawn up front so that results depend only on
	// opts.Rand, never on worker scheduling.
	seeds := make([][]int64, len(opts.Mus))
	for i := range seeds {
		seeds[i] = make([]int64, repeats)
		for j := range seeds[i] {
			seeds[i][j] = opts.Rand.Int63()
		}
	}

	points := make([]SweepPoint, len(opts.Mus))
	var g errgroup.Group
	g.SetLimit(workers)
	for i, mu := range opts.Mus {
		i, mu := i, mu
		g.Go(func() error {
			st, err := averageRuns(mu, opts.Rounds, seeds[i])
			if err != nil {
				return fmt.Errorf("sweeping mu=%v: %w", mu, err)
			}
			points[i] = SweepPoint{Mu: mu, Stats: st}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return points, nil
}

// averageRuns executes one run per seed and averages the resulting
// statistics.
func averageRuns(mu float64, rounds int, seeds []int64) (Stats, error) {
	var qber, acc, cov, sifted []float64
	pulses := 0
	for _, seed := range seeds {
		st, err := runOnce(mu, rounds, seed)
		if err != nil {
			return Stats{}, err
		}
		qber = append(qber, st.QBER)
		acc = append(acc, st.EveAccuracy)
		cov = append(cov, st.EveCoverage)
		sifted = append(sifted, float64(st.SiftedBits))
		pulses = st.Pulses
	}
	if len(seeds) == 1 {
		return runStats(qber[0], acc[0], cov[0], sifted[0], pulses), nil
	}
	mq, err := stats.Mean(qber)
	if err != nil {
		return Stats{}, fmt.Errorf("averaging QBER: %w", err)
	}
	ma, err := stats.Mean(acc)
	if err != nil {
		return Stats{}, fmt.Errorf("averaging accuracy: %w", err)
	}
	mc, err := stats.Mean(cov)
	if err != nil {
		return Stats{}, fmt.Errorf("averaging coverage: %w", err)
	}
	ms, err := stats.Mean(sifted)
	if err != nil {
		return Stats{}, fmt.Errorf("averaging sifted bits: %w", err)
	}
	return runStats(mq, ma, mc, ms, pulses), nil
}

func runStats(qber, acc, cov, sifted float64, pulses int) Stats {
	return Stats{
		QBER:        qber,
		EveAccuracy: acc,
		EveCoverage: cov,
		SiftedBits:  int(math.Round(sifted)),
		Pulses:      pulses,
	}
}

// runOnce executes a single run on its own generator, so that
// concurrently executing runs observe no shared randomness state.
func runOnce(mu float64, rounds int, seed int64) (Stats, error) {
	sim, err := NewSimulator(SimulatorOpts{
		Mu:     mu,
		Rounds: rounds,
		Rand:   rand.New(rand.NewSource(seed)),
	})
	if err != nil {
		return Stats{}, err
	}
	return sim.Run(), nil
}
