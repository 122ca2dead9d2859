package eddsa

// Arithmetic in the field GF(2^255-19). A field element is held as 16
// little-endian limbs of 16 bits each, carried in int64 so that
// products and sums can accumulate without overflow before reduction.
// Elements are not kept in canonical form internally; pack25519
// produces the unique canonical encoding.
//
// Nothing in this file branches on limb values: carry propagation,
// selection and packing are all branchless, which keeps every caller
// (in particular the scalar-multiplication ladder) constant time.

type gf [16]int64

var gf0 = gf{}
var gf1 = gf{1}

// d, 2*d, the base point coordinates, and sqrt(-1), where d is the
// Edwards curve constant -121665/121666.
var gf_D = gf{
	0x78a3, 0x1359, 0x4dca, 0x75eb, 0xd8ab, 0x4141, 0x0a4d, 0x0070,
	0xe898, 0x7779, 0x4079, 0x8cc7, 0xfe73, 0x2b6f, 0x6cee, 0x5203,
}
var gf_D2 = gf{
	0xf159, 0x26b2, 0x9b94, 0xebd6, 0xb156, 0x8283, 0x149a, 0x00e0,
	0xd130, 0xeef3, 0x80f2, 0x198e, 0xfce7, 0x56df, 0xd9dc, 0x2406,
}
var gf_X = gf{
	0xd51a, 0x8f25, 0x2d60, 0xc956, 0xa7b2, 0x9525, 0xc760, 0x692c,
	0xdc5c, 0xfdd6, 0xe231, 0xc0a4, 0x53fe, 0xcd6e, 0x36d3, 0x2169,
}
var gf_Y = gf{
	0x6658, 0x6666, 0x6666, 0x6666, 0x6666, 0x6666, 0x6666, 0x6666,
	0x6666, 0x6666, 0x6666, 0x6666, 0x6666, 0x6666, 0x6666, 0x6666,
}
var gf_I = gf{
	0xa0b0, 0x4a0e, 0x1b27, 0xc4ee, 0xe478, 0xad2f, 0x1806, 0x2f43,
	0xd7a7, 0x3dfb, 0x0099, 0x2b4d, 0xdf0b, 0x4fc1, 0x2480, 0x2b83,
}

// Propagate carries once; each limb ends up in [0, 2^16) except for a
// small excess folded into limb 0 (times 38, since 2^256 = 38 mod p
// over the top limb position).
func car25519(o *gf) {
	for i := 0; i < 16; i++ {
		o[i] += 1 << 16
		c := o[i] >> 16
		if i < 15 {
			o[i+1] += c - 1
		} else {
			o[0] += 38 * (c - 1)
		}
		o[i] -= c << 16
	}
}

// Conditionally swap p and q, in constant time: b must be 0 (no swap)
// or 1 (swap).
func sel25519(p *gf, q *gf, b int64) {
	c := ^(b - 1)
	for i := 0; i < 16; i++ {
		t := c & (p[i] ^ q[i])
		p[i] ^= t
		q[i] ^= t
	}
}

// Encode a field element into its unique canonical 32-byte form
// (little-endian value in [0, p-1]).
func pack25519(o []byte, n *gf) {
	var m, t gf
	t = *n
	car25519(&t)
	car25519(&t)
	car25519(&t)
	for j := 0; j < 2; j++ {
		m[0] = t[0] - 0xffed
		for i := 1; i < 15; i++ {
			m[i] = t[i] - 0xffff - ((m[i-1] >> 16) & 1)
			m[i-1] &= 0xffff
		}
		m[15] = t[15] - 0x7fff - ((m[14] >> 16) & 1)
		b := (m[15] >> 16) & 1
		m[14] &= 0xffff
		sel25519(&t, &m, 1-b)
	}
	for i := 0; i < 16; i++ {
		o[2*i] = uint8(t[i])
		o[2*i+1] = uint8(t[i] >> 8)
	}
}

// Decode 32 bytes into a field element. The top bit (the point sign
// bit in compressed encodings) is ignored; non-canonical values are
// reduced implicitly by subsequent operations.
func unpack25519(o *gf, n []byte) {
	for i := 0; i < 16; i++ {
		o[i] = int64(n[2*i]) + (int64(n[2*i+1]) << 8)
	}
	o[15] &= 0x7fff
}

func gf_add(o *gf, a *gf, b *gf) {
	for i := 0; i < 16; i++ {
		o[i] = a[i] + b[i]
	}
}

func gf_sub(o *gf, a *gf, b *gf) {
	for i := 0; i < 16; i++ {
		o[i] = a[i] - b[i]
	}
}

func gf_mul(o *gf, a *gf, b *gf) {
	var t [31]int64
	for i := 0; i < 16; i++ {
		ai := a[i]
		for j := 0; j < 16; j++ {
			t[i+j] += ai * b[j]
		}
	}
	// Fold limbs 16..30 back down (2^256 = 38 mod p at limb 16).
	for i := 0; i < 15; i++ {
		t[i] += 38 * t[i+16]
	}
	for i := 0; i < 16; i++ {
		o[i] = t[i]
	}
	car25519(o)
	car25519(o)
}

func gf_sqr(o *gf, a *gf) {
	gf_mul(o, a, a)
}

// Invert a nonzero element: a^(p-2). The exponent is fixed, so the
// square/multiply schedule does not depend on the operand.
func gf_inv(o *gf, a *gf) {
	c := *a
	for i := 253; i >= 0; i-- {
		gf_sqr(&c, &c)
		if i != 2 && i != 4 {
			gf_mul(&c, &c, a)
		}
	}
	*o = c
}

// Raise to the power (p-5)/8 = 2^252 - 3, used for square-root
// extraction during point decompression.
func gf_pow2523(o *gf, a *gf) {
	c := *a
	for i := 250; i >= 0; i-- {
		gf_sqr(&c, &c)
		if i != 1 {
			gf_mul(&c, &c, a)
		}
	}
	*o = c
}

// Parity (bit 0 of the canonical encoding), used as the sign bit in
// compressed points.
func gf_parity(a *gf) uint8 {
	var d [32]byte
	pack25519(d[:], a)
	return d[0] & 1
}

// Equality of two field elements, via their canonical encodings and
// the constant-time byte compare.
func gf_eq(a *gf, b *gf) bool {
	var c, d [32]byte
	pack25519(c[:], a)
	pack25519(d[:], b)
	return ConstantTimeEqual(c[:], d[:])
}
