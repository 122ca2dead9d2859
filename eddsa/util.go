package eddsa

// Sizes (in bytes) of the fixed-width values handled by this package.
const (
	// Size of a SHA-512 digest.
	DigestSize = 64

	// Size of a secret seed.
	SeedSize = 32

	// Size of an encoded public (verifying) key.
	PublicKeySize = 32

	// Size of an encoded secret (signing) key: the seed followed by
	// the derived public key.
	SecretKeySize = SeedSize + PublicKeySize

	// Size of a signature: compressed point R followed by scalar S.
	SignatureSize = 64
)

// A SHA-512 digest.
type Digest [DigestSize]byte

// An encoded public key (compressed curve point).
type PublicKey [PublicKeySize]byte

// An encoded secret key. The first 32 bytes are the seed; the last 32
// bytes are the public key derived from that seed. The package never
// retains secret keys; zeroization after use is the caller's job.
type SecretKey [SecretKeySize]byte

// An encoded signature.
type Signature [SignatureSize]byte

// Compare two byte slices for equality in constant time. All bytes are
// inspected regardless of where (or whether) a mismatch occurs; only
// the lengths and the final result are allowed to influence timing.
// Slices of unequal length compare as not equal.
func ConstantTimeEqual(a []byte, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	var d uint8
	for i := 0; i < len(a); i++ {
		d |= a[i] ^ b[i]
	}
	// Map d (0 or nonzero) to 1 or 0 without branching.
	return ((uint32(d)-1)>>31)&1 == 1
}

// Extract the public key half of a secret key. The secret key stores
// the derived public key precisely so that signing (and callers) need
// not recompute the scalar multiplication.
func PublicKeyOf(skey SecretKey) PublicKey {
	var vkey PublicKey
	copy(vkey[:], skey[SeedSize:])
	return vkey
}
