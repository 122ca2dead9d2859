// This package implements the Ed25519 signature algorithm together
// with the SHA-512 hash function and a pluggable source of secure
// entropy, as a self-contained primitive layer suitable for porting to
// constrained targets.
//
// All arithmetic (field, curve group, scalar) is implemented locally;
// nothing is delegated to platform crypto. Scalar multiplication and
// all comparisons on secret-derived or verification data are constant
// time with respect to the data.
//
// Keys and signatures use fixed sizes: a public key is 32 bytes (a
// compressed curve point), a secret key is 64 bytes (the 32-byte seed
// followed by the derived public key), and a signature is 64 bytes
// (compressed point R followed by scalar S). A new key pair is created
// with [KeyGen], which takes an [EntropySource]; passing nil uses the
// operating system's RNG. The entropy source MUST be cryptographically
// secure; it is consulted only during key generation, never by signing
// or verification. Deterministic key derivation from a known seed is
// available through [NewKeyFromSeed].
//
// Signing is fully deterministic: the per-message nonce is derived by
// hashing, so the same key and message always produce the same
// signature and nonce reuse across distinct messages cannot occur.
// Verification returns a plain boolean; corrupt encodings, forged
// signatures and non-canonical scalars all collapse into the same
// false result, deliberately leaking nothing about the cause.
//
// Secret keys are caller-owned. The package never retains key
// material; zeroizing buffers after use is the caller's obligation.
package eddsa
