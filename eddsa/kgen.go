package eddsa

import (
	"errors"
)

// Clamp the low half of a hashed seed into a valid secret scalar:
// clear the cofactor bits, clear the top bit, set bit 254.
func clamp(a []byte) {
	a[0] &= 248
	a[31] &= 127
	a[31] |= 64
}

// Generate a new key pair.
//
//   - es is the entropy source to draw the seed from (nil to use the
//     operating system's RNG).
//
// Output is the new key pair (secret and public keys, both encoded).
// An error is reported if the entropy request fails; in that case no
// portion of the random buffer is used and no key material is
// produced. Key generation is the only operation that consumes
// entropy; signing and verification never do.
func KeyGen(es *EntropySource) (skey SecretKey, vkey PublicKey, err error) {
	if es == nil {
		es = SystemEntropy()
	}
	var seed [SeedSize]byte
	if st := es.Request(seed[:]); st != EntropyOK {
		err = errors.New("Entropy request failed: " + st.String())
		return
	}

	// A full seed has been obtained; from here the process cannot fail.
	skey, vkey = NewKeyFromSeed(seed)
	return
}

// Derive a key pair from a 32-byte seed, deterministically. The seed
// is hashed; the low half of the digest is clamped into a scalar,
// which is multiplied by the base point to yield the public key. The
// encoded secret key is the seed followed by the derived public key,
// so that signing does not re-derive the public half on every call.
func NewKeyFromSeed(seed [SeedSize]byte) (SecretKey, PublicKey) {
	d := Hash(seed[:])
	clamp(d[:32])

	var p ge
	ge_scalarbase(&p, d[:32])

	var vkey PublicKey
	ge_pack(vkey[:], &p)
	var skey SecretKey
	copy(skey[:SeedSize], seed[:])
	copy(skey[SeedSize:], vkey[:])
	return skey, vkey
}
