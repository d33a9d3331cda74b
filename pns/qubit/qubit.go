// Package qubit provides an idealized two-level quantum carrier for
// single-photon BB84 pulses.
package qubit

// A Basis identifies one of the two conjugate measurement bases used in
// BB84.
type Basis byte

const (
	// Z is the rectilinear basis.
	Z Basis = iota
	// X is the diagonal basis.
	X
)

// String returns the conventional single-letter name of b.
func (b Basis) String() string {
	if b == Z {
		return "Z"
	}
	return "X"
}

// A Carrier is an opaque quantum state in flight between sender and
// receiver. Its contents are meaningful only to the Oracle that
// prepared it.
type Carrier interface{}

// An Oracle prepares and measures quantum carriers. Measuring a
// carrier in its preparation basis yields the encoded bit; measuring
// in the conjugate basis yields a uniformly random bit. Any
// implementation honoring that contract -- simulated state vector,
// lookup table, or hardware backend -- is interchangeable.
type Oracle interface {
	// Prepare encodes bit in basis and returns the resulting carrier.
	Prepare(bit byte, basis Basis) Carrier

	// Measure collapses c in basis and returns the outcome bit.
	// Carriers must only be measured by the Oracle that prepared them.
	Measure(c Carrier, basis Basis) byte
}
