package eddsa

// Verify a signature over a message.
//
//   - msg is the message (any length, including empty)
//   - sig is the signature to verify
//   - vkey is the signer's public key
//
// Returned value is true for a valid signature, false otherwise. A
// corrupt point encoding (in R or in the key), a non-canonical S, or a
// plain mismatch all produce the same false result: the outcome is
// binary by design and does not reveal why a signature was rejected.
// Verification is stateless and repeated calls on the same inputs
// always agree.
func Verify(msg []byte, sig Signature, vkey PublicKey) bool {
	// Decompress -A; failure means the key bytes are not a curve
	// point, which is an expected path for garbage input.
	var q ge
	if !ge_unpack_neg(&q, vkey[:]) {
		return false
	}

	// S must be canonically reduced modulo the group order.
	if !sc_canonical(sig[32:]) {
		return false
	}

	// k = H(R || A || msg) mod L
	var h sha512ctx
	h.init()
	h.update(sig[:32])
	h.update(vkey[:])
	h.update(msg)
	k := h.finish()
	sc_reduce(k[:])

	// Check S*B == R + k*A by computing k*(-A) + S*B and comparing
	// its compressed form against R. Compression always yields the
	// canonical encoding, so byte equality is point equality; the
	// compare itself is constant time.
	var p ge
	ge_scalarmult(&p, &q, k[:32])
	ge_scalarbase(&q, sig[32:])
	ge_add(&p, &q)
	var t [32]byte
	ge_pack(t[:], &p)
	return ConstantTimeEqual(sig[:32], t[:])
}
