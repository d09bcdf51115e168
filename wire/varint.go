package wire

// AppendVarint appends the base-128, little-endian varint encoding of x to
// b. Negative 64-bit values must already have been reinterpreted as
// unsigned by the caller (two's-complement), which is what makes negative
// int32/int64 values always occupy the full 10 bytes.
func AppendVarint(b []byte, x uint64) []byte {
	for x >= 1<<7 {
		b = append(b, byte(x&0x7f|0x80))
		x >>= 7
	}
	return append(b, byte(x))
}

// SizeVarint returns the number of bytes the varint encoding of x occupies.
func SizeVarint(x uint64) int {
	n := 1
	for x >= 1<<7 {
		x >>= 7
		n++
	}
	return n
}

// ConsumeVarint parses a varint at the front of b, returning its value and
// the number of bytes consumed. The count is negative when the varint
// overflows 64 bits (no terminator within 10 bytes), and zero when b ends
// before a terminator byte (including when b is empty).
func ConsumeVarint(b []byte) (v uint64, n int) {
	for i := 0; i < len(b); i++ {
		c := b[i]
		if i >= 10 || (i == 9 && c > 1) {
			return 0, -1 // overflows a 64-bit varint
		}
		v |= uint64(c&0x7f) << (7 * uint(i))
		if c < 0x80 {
			return v, i + 1
		}
	}
	return 0, 0 // ran out of input before the terminator
}

// EncodeZigzag64 maps a signed 64-bit integer to an unsigned one such that
// small-magnitude negatives still encode as short varints: n>=0 -> 2n,
// n<0 -> -2n-1.
func EncodeZigzag64(n int64) uint64 {
	return uint64(n<<1) ^ uint64(n>>63)
}

// DecodeZigzag64 inverts EncodeZigzag64.
func DecodeZigzag64(z uint64) int64 {
	return int64(z>>1) ^ -int64(z&1)
}

// EncodeZigzag32 is the 32-bit form of EncodeZigzag64.
func EncodeZigzag32(n int32) uint32 {
	return uint32(n<<1) ^ uint32(n>>31)
}

// DecodeZigzag32 inverts EncodeZigzag32.
func DecodeZigzag32(z uint32) int32 {
	return int32(z>>1) ^ -int32(z&1)
}
