package eddsa

import (
	"math/bits"
)

// SHA-512 (FIPS 180-4). Digest computation over well-formed input is
// total: there is no error channel anywhere in this file.

// Round constants: fractional parts of the cube roots of the first 80
// primes.
var sha512_k = [80]uint64{
	0x428a2f98d728ae22, 0x7137449123ef65cd, 0xb5c0fbcfec4d3b2f, 0xe9b5dba58189dbbc,
	0x3956c25bf348b538, 0x59f111f1b605d019, 0x923f82a4af194f9b, 0xab1c5ed5da6d8118,
	0xd807aa98a3030242, 0x12835b0145706fbe, 0x243185be4ee4b28c, 0x550c7dc3d5ffb4e2,
	0x72be5d74f27b896f, 0x80deb1fe3b1696b1, 0x9bdc06a725c71235, 0xc19bf174cf692694,
	0xe49b69c19ef14ad2, 0xefbe4786384f25e3, 0x0fc19dc68b8cd5b5, 0x240ca1cc77ac9c65,
	0x2de92c6f592b0275, 0x4a7484aa6ea6e483, 0x5cb0a9dcbd41fbd4, 0x76f988da831153b5,
	0x983e5152ee66dfab, 0xa831c66d2db43210, 0xb00327c898fb213f, 0xbf597fc7beef0ee4,
	0xc6e00bf33da88fc2, 0xd5a79147930aa725, 0x06ca6351e003826f, 0x142929670a0e6e70,
	0x27b70a8546d22ffc, 0x2e1b21385c26c926, 0x4d2c6dfc5ac42aed, 0x53380d139d95b3df,
	0x650a73548baf63de, 0x766a0abb3c77b2a8, 0x81c2c92e47edaee6, 0x92722c851482353b,
	0xa2bfe8a14cf10364, 0xa81a664bbc423001, 0xc24b8b70d0f89791, 0xc76c51a30654be30,
	0xd192e819d6ef5218, 0xd69906245565a910, 0xf40e35855771202a, 0x106aa07032bbd1b8,
	0x19a4c116b8d2d0c8, 0x1e376c085141ab53, 0x2748774cdf8eeb99, 0x34b0bcb5e19b48a8,
	0x391c0cb3c5c95a63, 0x4ed8aa4ae3418acb, 0x5b9cca4f7763e373, 0x682e6ff3d6b2b8a3,
	0x748f82ee5defb2fc, 0x78a5636f43172f60, 0x84c87814a1f0ab72, 0x8cc702081a6439ec,
	0x90befffa23631e28, 0xa4506cebde82bde9, 0xbef9a3f7b2c67915, 0xc67178f2e372532b,
	0xca273eceea26619c, 0xd186b8c721c0c207, 0xeada7dd6cde0eb1e, 0xf57d4f7fee6ed178,
	0x06f067aa72176fba, 0x0a637dc5a2c898a6, 0x113f9804bef90dae, 0x1b710b35131c471b,
	0x28db77f523047d84, 0x32caab7b40c72493, 0x3c9ebe0a15c9bebc, 0x431d67c49c100d4c,
	0x4cc5d4becb3e42b6, 0x597f299cfc657e2a, 0x5fcb6fab3ad6faec, 0x6c44198c4a475817,
}

// Streaming SHA-512 state. A zero value is not usable; call init()
// first. The state may be reused by calling init() again.
type sha512ctx struct {
	h   [8]uint64
	buf [128]byte
	ptr int
	// Total input length, in bytes. Inputs of 2^64 bytes or more are
	// not representable; that is far beyond any buffer this package
	// can be handed.
	count uint64
}

func (s *sha512ctx) init() {
	s.h = [8]uint64{
		0x6a09e667f3bcc908, 0xbb67ae8584caa73b,
		0x3c6ef372fe94f82b, 0xa54ff53a5f1d36f1,
		0x510e527fade682d1, 0x9b05688c2b3e6c1f,
		0x1f83d9abfb41bd6b, 0x5be0cd19137e2179,
	}
	s.ptr = 0
	s.count = 0
}

// Process one 128-byte block.
func (s *sha512ctx) process(b []byte) {
	var w [80]uint64
	for i := 0; i < 16; i++ {
		j := i << 3
		w[i] = (uint64(b[j]) << 56) | (uint64(b[j+1]) << 48) |
			(uint64(b[j+2]) << 40) | (uint64(b[j+3]) << 32) |
			(uint64(b[j+4]) << 24) | (uint64(b[j+5]) << 16) |
			(uint64(b[j+6]) << 8) | uint64(b[j+7])
	}
	for i := 16; i < 80; i++ {
		x := w[i-15]
		s0 := bits.RotateLeft64(x, -1) ^ bits.RotateLeft64(x, -8) ^ (x >> 7)
		x = w[i-2]
		s1 := bits.RotateLeft64(x, -19) ^ bits.RotateLeft64(x, -61) ^ (x >> 6)
		w[i] = w[i-16] + s0 + w[i-7] + s1
	}
	a, b2, c, d := s.h[0], s.h[1], s.h[2], s.h[3]
	e, f, g, h := s.h[4], s.h[5], s.h[6], s.h[7]
	for i := 0; i < 80; i++ {
		e1 := bits.RotateLeft64(e, -14) ^ bits.RotateLeft64(e, -18) ^
			bits.RotateLeft64(e, -41)
		ch := (e & f) ^ (^e & g)
		t1 := h + e1 + ch + sha512_k[i] + w[i]
		e0 := bits.RotateLeft64(a, -28) ^ bits.RotateLeft64(a, -34) ^
			bits.RotateLeft64(a, -39)
		mj := (a & b2) ^ (a & c) ^ (b2 & c)
		t2 := e0 + mj
		h = g
		g = f
		f = e
		e = d + t1
		d = c
		c = b2
		b2 = a
		a = t1 + t2
	}
	s.h[0] += a
	s.h[1] += b2
	s.h[2] += c
	s.h[3] += d
	s.h[4] += e
	s.h[5] += f
	s.h[6] += g
	s.h[7] += h
}

// Absorb more input bytes.
func (s *sha512ctx) update(data []byte) {
	s.count += uint64(len(data))
	if s.ptr != 0 {
		n := copy(s.buf[s.ptr:], data)
		s.ptr += n
		if s.ptr < len(s.buf) {
			return
		}
		s.process(s.buf[:])
		s.ptr = 0
		data = data[n:]
	}
	for len(data) >= 128 {
		s.process(data[:128])
		data = data[128:]
	}
	if len(data) > 0 {
		s.ptr = copy(s.buf[:], data)
	}
}

// Pad and produce the digest. The state is invalid afterwards (until
// the next init()).
func (s *sha512ctx) finish() Digest {
	n := s.count
	s.buf[s.ptr] = 0x80
	s.ptr++
	if s.ptr > 112 {
		for i := s.ptr; i < 128; i++ {
			s.buf[i] = 0
		}
		s.process(s.buf[:])
		s.ptr = 0
	}
	for i := s.ptr; i < 120; i++ {
		s.buf[i] = 0
	}
	// 128-bit big-endian bit length; the upper 61 bits of the byte
	// count land in the first eight bytes.
	hi := n >> 61
	lo := n << 3
	for i := 0; i < 8; i++ {
		s.buf[120+i] = uint8(lo >> (56 - (i << 3)))
		s.buf[112+i] = uint8(hi >> (56 - (i << 3)))
	}
	s.process(s.buf[:])
	var d Digest
	for i := 0; i < 8; i++ {
		v := s.h[i]
		j := i << 3
		d[j] = uint8(v >> 56)
		d[j+1] = uint8(v >> 48)
		d[j+2] = uint8(v >> 40)
		d[j+3] = uint8(v >> 32)
		d[j+4] = uint8(v >> 24)
		d[j+5] = uint8(v >> 16)
		d[j+6] = uint8(v >> 8)
		d[j+7] = uint8(v)
	}
	return d
}

// Compute the SHA-512 digest of the provided data. The digest has
// length [DigestSize] for all inputs, including the empty sequence.
func Hash(data []byte) Digest {
	var s sha512ctx
	s.init()
	s.update(data)
	return s.finish()
}
