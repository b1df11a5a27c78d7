// Package bcd converts between decimal values and packed binary-coded decimal, the encoding used by the time registers
// of most real-time clocks: the high nibble holds the tens digit and the low nibble the units digit.
package bcd

// Encode converts a decimal value in [0,99] to packed BCD. Larger values are not rejected; the tens digit simply
// overflows into the upper bits of the high nibble.
func Encode(v uint8) uint8 {
	return ((v / 10) << 4) | (v % 10)
}

// Decode converts a packed BCD byte to its decimal value. Nibbles above 9 are not rejected and are evaluated as-is.
func Decode(b uint8) uint8 {
	return ((b >> 4) * 10) + (b & 0x0F)
}
