package bitmap

import "testing"

func TestXOr(t *testing.T) {
	tcs := []struct {
		name string
		a    Dense
		b    Dense
		eout Dense
	}{
		{
			name: "equal lengths",
			a:    mustDense(t, "1100"),
			b:    mustDense(t, "1010"),
			eout: mustDense(t, "0110"),
		}, {
			name: "zero extension",
			a:    mustDense(t, "101"),
			b:    mustDense(t, "1010 1100 11"),
			eout: mustDense(t, "0000 1100 11"),
		}, {
			name: "empty operand",
			a:    mustDense(t, ""),
			b:    mustDense(t, "1011"),
			eout: mustDense(t, "1011"),
		}, {
			name: "multibyte",
			a:    mustDense(t, "1111 1111 1"),
			b:    mustDense(t, "1010 1010 1"),
			eout: mustDense(t, "0101 0101 0"),
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			out := XOr(tc.a, tc.b)
			if !Equal(out, tc.eout) {
				t.Errorf("XOr(%v, %v) == %v, want %v", tc.a.bits, tc.b.bits, out.bits, tc.eout.bits)
			}
		})
	}
}
