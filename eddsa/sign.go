package eddsa

// Sign a message using a given secret key.
//
//   - msg is the message (any length, including empty)
//   - skey is the secret key (seed and cached public key)
//
// Signing is deterministic: the per-message nonce is derived by
// hashing the key's prefix with the message, never drawn from an RNG,
// so the same key and message always yield the same signature and a
// nonce can never repeat across distinct messages. The call is total
// for any well-formed secret key; there is no error channel.
func Sign(msg []byte, skey SecretKey) Signature {
	// Hash the seed; the low half clamps into the secret scalar a,
	// the high half is the nonce prefix.
	az := Hash(skey[:SeedSize])
	clamp(az[:32])

	// r = H(prefix || msg) mod L
	var h sha512ctx
	h.init()
	h.update(az[32:])
	h.update(msg)
	r := h.finish()
	sc_reduce(r[:])

	// R = r*B, compressed into the first half of the signature.
	var p ge
	ge_scalarbase(&p, r[:32])
	var sig Signature
	ge_pack(sig[:32], &p)

	// k = H(R || A || msg) mod L
	h.init()
	h.update(sig[:32])
	h.update(skey[SeedSize:])
	h.update(msg)
	k := h.finish()
	sc_reduce(k[:])

	// S = (r + k*a) mod L
	var x [64]int64
	for i := 0; i < 32; i++ {
		x[i] = int64(r[i])
	}
	for i := 0; i < 32; i++ {
		for j := 0; j < 32; j++ {
			x[i+j] += int64(k[i]) * int64(az[j])
		}
	}
	sc_modL(sig[32:], &x)
	return sig
}
