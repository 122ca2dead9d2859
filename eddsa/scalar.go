package eddsa

// Arithmetic modulo the group order
// L = 2^252 + 27742317777372353535851937790883648493.

// L as 32 little-endian bytes.
var order_L = [32]byte{
	0xed, 0xd3, 0xf5, 0x5c, 0x1a, 0x63, 0x12, 0x58,
	0xd6, 0x9c, 0xf7, 0xa2, 0xde, 0xf9, 0xde, 0x14,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x10,
}

// Reduce a 512-bit value, held as 64 signed byte-sized limbs in x,
// modulo L; the 32-byte result is written to r. x is consumed. Limbs
// may exceed a byte in magnitude on input (products land here before
// any reduction), within the headroom of int64.
func sc_modL(r []byte, x *[64]int64) {
	var carry int64
	for i := 63; i >= 32; i-- {
		carry = 0
		j := i - 32
		for ; j < i-12; j++ {
			x[j] += carry - 16*x[i]*int64(order_L[j-(i-32)])
			carry = (x[j] + 128) >> 8
			x[j] -= carry << 8
		}
		x[j] += carry
		x[i] = 0
	}
	carry = 0
	for j := 0; j < 32; j++ {
		x[j] += carry - (x[31]>>4)*int64(order_L[j])
		carry = x[j] >> 8
		x[j] &= 255
	}
	for j := 0; j < 32; j++ {
		x[j] -= carry * int64(order_L[j])
	}
	for i := 0; i < 32; i++ {
		x[i+1] += x[i] >> 8
		r[i] = uint8(x[i])
	}
}

// Reduce the 64-byte little-endian value in r modulo L, in place; the
// result occupies r[0:32] and the rest is cleared.
func sc_reduce(r []byte) {
	var x [64]int64
	for i := 0; i < 64; i++ {
		x[i] = int64(r[i])
		r[i] = 0
	}
	sc_modL(r, &x)
}

// Check that the 32-byte little-endian scalar s is canonically reduced
// (strictly below L). Signatures carrying S >= L are rejected to rule
// out malleability; S is public at this point, so the comparison need
// not be constant time.
func sc_canonical(s []byte) bool {
	for i := 31; i >= 0; i-- {
		if s[i] < order_L[i] {
			return true
		}
		if s[i] > order_L[i] {
			return false
		}
	}
	return false
}
