package bitmap

// A Dense is a bitmap where every bit is explicitly represented.
type Dense struct {
	bits []byte
	len  int
}

// NewDense returns a new dense bitmap whose contents are a copy of
// data, and whose length is bitLen. If bitLen is longer than data,
// trailing zeros are added. If bitLen is negative, it is inferred from
// data.
func NewDense(data []byte, bitLen int) Dense {
	if bitLen < 0 {
		bitLen = len(data) * byteSize
	}
	d := Dense{
		bits: make([]byte, BytesFor(bitLen)),
		len:  bitLen,
	}
	copy(d.bits, data)
	// Mask implicit trailing bits so that ops operating bytewise, like
	// CountOnes, never see data past len.
	if off := bitLen % byteSize; off != 0 {
		d.bits[len(d.bits)-1] &= 0xFF >> (byteSize - off)
	}
	return d
}

// Get returns the i-th bit in this bitmap. Bits past the end read as
// zero.
func (d Dense) Get(i int) bool {
	if i >= d.len {
		return false
	}
	j, pos := i/byteSize, i%byteSize
	return 0 < d.bits[j]&(1<<pos)
}

// Size returns the number of bits in this bitmap.
func (d Dense) Size() int {
	return d.len
}

// SizeBytes returns the number of bytes needed to hold this bitmap.
func (d Dense) SizeBytes() int {
	return BytesFor(d.len)
}

// Data returns a view of the bytes underlying this bitmap. Modifying
// the returned slice modifies this bitmap.
func (d Dense) Data() []byte {
	return d.bits
}

// AppendBit adds a single bit to the end of d.
func (d *Dense) AppendBit(bit bool) {
	i, pos := d.len/byteSize, d.len%byteSize
	d.len++
	if pos == 0 {
		d.bits = append(d.bits, 0)
	}
	if bit {
		d.bits[i] |= 1 << pos
	}
}
