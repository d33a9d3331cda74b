// pnsweep simulates BB84 key distribution under a
// photon-number-splitting eavesdropper for each requested mean photon
// number per pulse, and outputs a CSV of error-rate and interception
// statistics with one row per sweep point.
package main

import (
	"fmt"
	"log"
	"math/rand"
	"strings"
	"time"

	"github.com/qkdlab/pns/go/pns"
	flag "github.com/spf13/pflag"
)

var (
	mus = flag.Float64Slice("mu", []float64{0.1, 0.5, 1.3},
		"The mean photon numbers per pulse to sweep.")
	rounds  = flag.Int("rounds", 10000, "The number of pulses to send per sweep point.")
	repeats = flag.Int("repeats", 1, "The number of independent runs to average per sweep point.")
	workers = flag.Int("workers", 1, "The number of sweep points to simulate concurrently.")
	seed    = flag.Int64("seed", 0, "The master seed for the sweep. Defaults to the current time.")
)

var columns = []string{"Mu", "Pulses", "SiftedBits", "QBER", "EveAccuracy", "EveCoverage"}

func main() {
	flag.Parse()
	s := *seed
	if s == 0 {
		s = time.Now().UnixNano()
	}
	points, err := pns.Sweep(pns.SweepOpts{
		Mus:     *mus,
		Rounds:  *rounds,
		Repeats: *repeats,
		Workers: *workers,
		Rand:    rand.New(rand.NewSource(s)),
	})
	if err != nil {
		log.Fatalf("Sweeping: %v", err)
	}
	fmt.Println(strings.Join(columns, ", "))
	for _, p := range points {
		fmt.Printf("%v, %d, %d, %v, %v, %v\n",
			p.Mu, p.Stats.Pulses, p.Stats.SiftedBits,
			p.Stats.QBER, p.Stats.EveAccuracy, p.Stats.EveCoverage)
	}
}
