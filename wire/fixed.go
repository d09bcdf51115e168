package wire

import "math"

// AppendFixed32 appends x as 4 little-endian bytes (fixed32, sfixed32,
// float).
func AppendFixed32(b []byte, x uint32) []byte {
	return append(b, byte(x), byte(x>>8), byte(x>>16), byte(x>>24))
}

// ConsumeFixed32 parses 4 little-endian bytes from the front of b.
func ConsumeFixed32(b []byte) (x uint32, n int) {
	if len(b) < 4 {
		return 0, -1
	}
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24, 4
}

// AppendFixed64 appends x as 8 little-endian bytes (fixed64, sfixed64,
// double).
func AppendFixed64(b []byte, x uint64) []byte {
	return append(b,
		byte(x), byte(x>>8), byte(x>>16), byte(x>>24),
		byte(x>>32), byte(x>>40), byte(x>>48), byte(x>>56))
}

// ConsumeFixed64 parses 8 little-endian bytes from the front of b.
func ConsumeFixed64(b []byte) (x uint64, n int) {
	if len(b) < 8 {
		return 0, -1
	}
	x = uint64(b[0]) | uint64(b[1])<<8 | uint64(b[2])<<16 | uint64(b[3])<<24 |
		uint64(b[4])<<32 | uint64(b[5])<<40 | uint64(b[6])<<48 | uint64(b[7])<<56
	return x, 8
}

// Float-to-bits conversions route through math.Float32bits/Float64bits,
// which already produce the wire-compatible bit patterns for infinities and
// the canonical quiet NaN on every platform Go supports — there's no
// special-casing left for AppendFloat32/64 to do; they're named here to
// keep the scalar codec's type table readable.

// AppendFloat32 appends a float32 as its 4-byte IEEE-754 bit pattern.
func AppendFloat32(b []byte, f float32) []byte {
	return AppendFixed32(b, math.Float32bits(f))
}

// AppendFloat64 appends a float64 as its 8-byte IEEE-754 bit pattern.
func AppendFloat64(b []byte, f float64) []byte {
	return AppendFixed64(b, math.Float64bits(f))
}
