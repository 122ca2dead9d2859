package eddsa

import (
	"bytes"
	"encoding/hex"
	"testing"
)

// Known-answer vectors: input (hex) and expected SHA-512 digest.
var kat_sha512 = [][2]string{
	// Empty input.
	{"",
		"cf83e1357eefb8bdf1542850d66d8007d620e4050b5715dc83f4a921d36ce9ce" +
			"47d0d13c5d85f2b0ff8318d2877eec2f63b931bd47417a81a538327af927da3e"},
	// "abc" (FIPS 180-4 sample).
	{"616263",
		"ddaf35a193617abacc417349ae20413112e6fa4e89a97ea20a9eeee64b55d39a" +
			"2192992a274fc1a836ba3c23a3feebbd454d4423643ce80e2a9ac94fa54ca49f"},
	// "I am a duck" (11 bytes, no terminator).
	{"4920616d2061206475636b",
		"b3b5c6b4b35c4093f65fc639a406393547ca600462e25b8369d5bd7654f5d9e7" +
			"6cf8c108a0cbb76963417fe6a53f6b681a3bdadc658d3e80469768ef026c5900"},
}

func TestSHA512_KAT(t *testing.T) {
	for i, kv := range kat_sha512 {
		data, err := hex.DecodeString(kv[0])
		if err != nil {
			t.Fatal(err)
		}
		expected, err := hex.DecodeString(kv[1])
		if err != nil {
			t.Fatal(err)
		}
		d := Hash(data)
		if len(d) != DigestSize {
			t.Fatalf("wrong digest size: %d\n", len(d))
		}
		if !bytes.Equal(d[:], expected) {
			t.Fatalf("KAT %d: wrong digest:\n  %x\n  (exp: %x)\n",
				i, d[:], expected)
		}
	}
}

func TestSHA512_ZeroPage(t *testing.T) {
	expected, _ := hex.DecodeString(
		"2d23913d3759ef01704a86b4bee3ac8a29002313ecc98a7424425a78170f2195" +
			"77822fd77e4ae96313547696ad7d5949b58e12d5063ef2ee063b595740a3a12d")
	data := make([]byte, 4096)
	d := Hash(data)
	if !bytes.Equal(d[:], expected) {
		t.Fatalf("wrong digest over 4096 zero bytes:\n  %x\n", d[:])
	}
}

func TestSHA512_Deterministic(t *testing.T) {
	data := []byte("determinism check over a moderately long input string")
	d1 := Hash(data)
	d2 := Hash(data)
	if d1 != d2 {
		t.Fatalf("same input hashed to distinct digests\n")
	}
}

// Feeding the input in chunks of any size must produce the same digest
// as the one-shot call; this exercises the buffering in update() over
// all alignments around the 128-byte block size.
func TestSHA512_Chunked(t *testing.T) {
	data := make([]byte, 1000)
	for i := range data {
		data[i] = uint8(i*7 + 3)
	}
	ref := Hash(data)
	for chunk := 1; chunk <= 300; chunk += 13 {
		var s sha512ctx
		s.init()
		for off := 0; off < len(data); off += chunk {
			end := off + chunk
			if end > len(data) {
				end = len(data)
			}
			s.update(data[off:end])
		}
		d := s.finish()
		if d != ref {
			t.Fatalf("chunk size %d: digest mismatch\n", chunk)
		}
	}
}

// Every length around the padding boundaries (block size minus the
// 17-byte minimum padding) must round through process() correctly.
func TestSHA512_Lengths(t *testing.T) {
	data := make([]byte, 260)
	for i := range data {
		data[i] = uint8(i)
	}
	for n := 100; n <= 140; n++ {
		var s sha512ctx
		s.init()
		s.update(data[:n])
		d1 := s.finish()
		d2 := Hash(data[:n])
		if d1 != d2 {
			t.Fatalf("length %d: streaming and one-shot disagree\n", n)
		}
	}
}
