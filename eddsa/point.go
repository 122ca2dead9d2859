package eddsa

// Group operations on the twisted Edwards curve
// -x^2 + y^2 = 1 + d*x^2*y^2 over GF(2^255-19). Points are held in
// extended homogeneous coordinates (X : Y : Z : T) with X*Y = Z*T.

type ge struct {
	x, y, z, t gf
}

// Set p to the neutral element (0 : 1 : 1 : 0).
func ge_zero(p *ge) {
	p.x = gf0
	p.y = gf1
	p.z = gf1
	p.t = gf0
}

// p <- p + q (unified addition; also valid for doubling).
func ge_add(p *ge, q *ge) {
	var a, b, c, d, t, e, f, g, h gf
	gf_sub(&a, &p.y, &p.x)
	gf_sub(&t, &q.y, &q.x)
	gf_mul(&a, &a, &t)
	gf_add(&b, &p.x, &p.y)
	gf_add(&t, &q.x, &q.y)
	gf_mul(&b, &b, &t)
	gf_mul(&c, &p.t, &q.t)
	gf_mul(&c, &c, &gf_D2)
	gf_mul(&d, &p.z, &q.z)
	gf_add(&d, &d, &d)
	gf_sub(&e, &b, &a)
	gf_sub(&f, &d, &c)
	gf_add(&g, &d, &c)
	gf_add(&h, &b, &a)
	gf_mul(&p.x, &e, &f)
	gf_mul(&p.y, &h, &g)
	gf_mul(&p.z, &g, &f)
	gf_mul(&p.t, &e, &h)
}

// Conditionally swap p and q (b is 0 or 1), in constant time.
func ge_cswap(p *ge, q *ge, b int64) {
	sel25519(&p.x, &q.x, b)
	sel25519(&p.y, &q.y, b)
	sel25519(&p.z, &q.z, b)
	sel25519(&p.t, &q.t, b)
}

// p <- s*q, where s is a 32-byte little-endian scalar. Montgomery-style
// double-and-add ladder over all 256 scalar bits: each iteration does
// the same two additions and two swaps whatever the bit value, so the
// sequence of operations and memory accesses does not depend on the
// scalar. q is used as workspace and clobbered.
func ge_scalarmult(p *ge, q *ge, s []byte) {
	ge_zero(p)
	for i := 255; i >= 0; i-- {
		b := int64(s[i>>3]>>(uint(i)&7)) & 1
		ge_cswap(p, q, b)
		ge_add(q, p)
		ge_add(p, p)
		ge_cswap(p, q, b)
	}
}

// p <- s*B, where B is the conventional base point.
func ge_scalarbase(p *ge, s []byte) {
	var q ge
	q.x = gf_X
	q.y = gf_Y
	q.z = gf1
	gf_mul(&q.t, &gf_X, &gf_Y)
	ge_scalarmult(p, &q, s)
}

// Compress p into 32 bytes: the canonical encoding of y with the
// parity of x in the top bit.
func ge_pack(dst []byte, p *ge) {
	var zi, tx, ty gf
	gf_inv(&zi, &p.z)
	gf_mul(&tx, &p.x, &zi)
	gf_mul(&ty, &p.y, &zi)
	pack25519(dst, &ty)
	dst[31] ^= gf_parity(&tx) << 7
}

// Decompress src into r, negating the x coordinate (the verifier wants
// -A). Returns false if src does not encode a point on the curve; the
// caller must treat that as an invalid signature, not as a fault.
func ge_unpack_neg(r *ge, src []byte) bool {
	var t, chk, num, den, den2, den4, den6 gf
	r.z = gf1
	unpack25519(&r.y, src)

	// x^2 = (y^2 - 1) / (d*y^2 + 1)
	gf_sqr(&num, &r.y)
	gf_mul(&den, &num, &gf_D)
	gf_sub(&num, &num, &r.z)
	gf_add(&den, &r.z, &den)

	// Candidate root: x = (num/den)^((p+3)/8), computed as
	// num * den^3 * (num*den^7)^((p-5)/8) to avoid a division.
	gf_sqr(&den2, &den)
	gf_sqr(&den4, &den2)
	gf_mul(&den6, &den4, &den2)
	gf_mul(&t, &den6, &num)
	gf_mul(&t, &t, &den)
	gf_pow2523(&t, &t)
	gf_mul(&t, &t, &num)
	gf_mul(&t, &t, &den)
	gf_mul(&t, &t, &den)
	gf_mul(&r.x, &t, &den)

	// If x^2*den != num, multiply by sqrt(-1) and re-check; if it
	// still fails, the encoding is not a curve point.
	gf_sqr(&chk, &r.x)
	gf_mul(&chk, &chk, &den)
	if !gf_eq(&chk, &num) {
		gf_mul(&r.x, &r.x, &gf_I)
	}
	gf_sqr(&chk, &r.x)
	gf_mul(&chk, &chk, &den)
	if !gf_eq(&chk, &num) {
		return false
	}

	// Pick the root whose parity is opposite the sign bit (negated x).
	if gf_parity(&r.x) == (src[31] >> 7) {
		gf_sub(&r.x, &gf0, &r.x)
	}
	gf_mul(&r.t, &r.x, &r.y)
	return true
}
