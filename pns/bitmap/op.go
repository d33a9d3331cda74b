package bitmap

// XOr returns the bitwise XOR of two bitmaps. If the operands differ
// in length, the shorter is treated as zero-extended to the longer.
func XOr(a, b Dense) Dense {
	short, long := a, b
	if b.len < a.len {
		short, long = b, a
	}
	r := Dense{
		bits: make([]byte, 0, BytesFor(long.len)),
		len:  long.len,
	}
	for i := range short.bits {
		r.bits = append(r.bits, a.bits[i]^b.bits[i])
	}
	for i := len(short.bits); i < len(long.bits); i++ {
		r.bits = append(r.bits, long.bits[i])
	}
	return r
}
