package eddsa

import (
	"bytes"
	"errors"
	"testing"
)

type failingProvider struct{}

func (failingProvider) FillEntropy(dst []byte) error {
	return errors.New("hardware RNG unavailable")
}

func TestEntropy_NotInitialized(t *testing.T) {
	var es EntropySource
	var buf [32]byte
	if st := es.Request(buf[:]); st != EntropyNotInitialized {
		t.Fatalf("wrong status before configure: %v\n", st)
	}
	if es.LastError() != EntropyNotInitialized {
		t.Fatalf("sticky status not recorded\n")
	}
}

func TestEntropy_InvalidParameter(t *testing.T) {
	es := SystemEntropy()
	if st := es.Request(nil); st != EntropyInvalidParameter {
		t.Fatalf("nil buffer: wrong status %v\n", st)
	}
	if st := es.Request([]byte{}); st != EntropyInvalidParameter {
		t.Fatalf("empty buffer: wrong status %v\n", st)
	}
	// The zero-length check fires before the provider is consulted,
	// so an unconfigured source reports the same status.
	var bare EntropySource
	if st := bare.Request(nil); st != EntropyInvalidParameter {
		t.Fatalf("nil buffer, no provider: wrong status %v\n", st)
	}
}

func TestEntropy_ProviderFailed(t *testing.T) {
	var es EntropySource
	es.Configure(failingProvider{})
	var buf [16]byte
	if st := es.Request(buf[:]); st != EntropyProviderFailed {
		t.Fatalf("wrong status for failing provider\n")
	}
	if es.LastError() != EntropyProviderFailed {
		t.Fatalf("sticky status not recorded\n")
	}

	// Key generation must fail closed on a broken provider.
	if _, _, err := KeyGen(&es); err == nil {
		t.Fatalf("KeyGen succeeded with failing provider\n")
	}
}

func TestEntropy_StickyLastError(t *testing.T) {
	var es EntropySource
	es.Configure(failingProvider{})
	var buf [8]byte
	es.Request(buf[:])

	// A later successful request leaves the sticky value in place.
	es.Configure(NewShakeProvider([]byte("seed")))
	if st := es.Request(buf[:]); st != EntropyOK {
		t.Fatalf("request failed after reconfigure\n")
	}
	if es.LastError() != EntropyProviderFailed {
		t.Fatalf("sticky status was implicitly reset\n")
	}

	// Explicit clear.
	es.SetLastError(EntropyOK)
	if es.LastError() != EntropyOK {
		t.Fatalf("sticky status not cleared\n")
	}
	es.SetLastError(EntropyUnknown)
	if es.LastError() != EntropyUnknown {
		t.Fatalf("sticky status not settable\n")
	}
}

func TestEntropy_ReconfigureReplaces(t *testing.T) {
	var es EntropySource
	es.Configure(failingProvider{})
	es.Configure(NewShakeProvider([]byte("x")))
	var buf [8]byte
	if st := es.Request(buf[:]); st != EntropyOK {
		t.Fatalf("most recent configuration did not win\n")
	}
}

func TestEntropy_ShakeDeterministic(t *testing.T) {
	p1 := NewShakeProvider([]byte("fixed seed"))
	p2 := NewShakeProvider([]byte("fixed seed"))
	var a, b [48]byte
	if p1.FillEntropy(a[:]) != nil || p2.FillEntropy(b[:]) != nil {
		t.Fatalf("shake provider failed\n")
	}
	if !bytes.Equal(a[:], b[:]) {
		t.Fatalf("same seed produced different streams\n")
	}
	// Successive reads continue the stream rather than repeating it.
	var c [48]byte
	p1.FillEntropy(c[:])
	if bytes.Equal(a[:], c[:]) {
		t.Fatalf("stream repeated itself\n")
	}
}

func TestEntropy_SystemFills(t *testing.T) {
	es := SystemEntropy()
	var buf [64]byte
	if st := es.Request(buf[:]); st != EntropyOK {
		t.Fatalf("OS RNG request failed: %v\n", st)
	}
	var zero [64]byte
	if bytes.Equal(buf[:], zero[:]) {
		t.Fatalf("OS RNG returned 64 zero bytes\n")
	}
}
