package eddsa

import (
	"crypto/rand"
	"io"

	sha3 "golang.org/x/crypto/sha3"
)

// Status codes for entropy requests.
type EntropyStatus int

const (
	// The request completed and the buffer is fully filled.
	EntropyOK EntropyStatus = iota

	// An unclassified failure.
	EntropyUnknown

	// No provider has been configured on the source.
	EntropyNotInitialized

	// The destination buffer was nil or empty; detected before any
	// provider call.
	EntropyInvalidParameter

	// The configured provider reported a failure. The buffer contents
	// are unspecified and MUST NOT be used as key material.
	EntropyProviderFailed
)

func (st EntropyStatus) String() string {
	switch st {
	case EntropyOK:
		return "ok"
	case EntropyNotInitialized:
		return "entropy source not initialized"
	case EntropyInvalidParameter:
		return "invalid parameter"
	case EntropyProviderFailed:
		return "entropy provider failed"
	default:
		return "unknown entropy error"
	}
}

// A provider of cryptographically secure random bytes. FillEntropy
// must either fill dst completely and return nil, or return a non-nil
// error; a partial fill is a failure.
type EntropyProvider interface {
	FillEntropy(dst []byte) error
}

// A source of secure entropy: a configured provider plus a sticky
// diagnostic status. The zero value is a valid, unconfigured source.
//
// A source is meant to be owned by whichever component performs
// process initialization: configured once, then read by every request.
// There is no internal locking; concurrent Configure/Request calls, or
// several independent callers sharing one source, can yield misleading
// LastError diagnostics. Callers on multi-threaded hosts must
// synchronize externally.
type EntropySource struct {
	prov    EntropyProvider
	lastErr EntropyStatus
}

// Register p as the active provider. A later call replaces the
// provider; the most recent configuration wins. The sticky status is
// not touched.
func (s *EntropySource) Configure(p EntropyProvider) {
	s.prov = p
}

// Fill dst with cryptographically secure random bytes from the
// configured provider. On any status other than [EntropyOK] the buffer
// must be considered unfilled; the status is also recorded as the
// source's sticky last error.
func (s *EntropySource) Request(dst []byte) EntropyStatus {
	if len(dst) == 0 {
		s.lastErr = EntropyInvalidParameter
		return EntropyInvalidParameter
	}
	if s.prov == nil {
		s.lastErr = EntropyNotInitialized
		return EntropyNotInitialized
	}
	if err := s.prov.FillEntropy(dst); err != nil {
		s.lastErr = EntropyProviderFailed
		return EntropyProviderFailed
	}
	return EntropyOK
}

// Get the sticky diagnostic status. It reflects the most recent failed
// request (or an explicit SetLastError) and is never reset implicitly;
// a successful request leaves it unchanged, so that a caller can log a
// failure after the fact without having retained the original return
// code.
func (s *EntropySource) LastError() EntropyStatus {
	return s.lastErr
}

// Set (or, with [EntropyOK], clear) the sticky diagnostic status.
func (s *EntropySource) SetLastError(st EntropyStatus) {
	s.lastErr = st
}

// An EntropyProvider reading from an io.Reader.
type readerProvider struct {
	r io.Reader
}

// Wrap an io.Reader as an entropy provider. The reader MUST be a
// cryptographically secure source, such as crypto/rand.Reader.
func NewReaderProvider(r io.Reader) EntropyProvider {
	return &readerProvider{r: r}
}

func (p *readerProvider) FillEntropy(dst []byte) error {
	_, err := io.ReadFull(p.r, dst)
	return err
}

// Get a new source configured with the operating system's RNG.
func SystemEntropy() *EntropySource {
	s := new(EntropySource)
	s.Configure(NewReaderProvider(rand.Reader))
	return s
}

// A deterministic provider producing the SHAKE256 output stream of a
// seed. Useful for reproducible key generation in tests and research;
// it is only as secure as the seed and MUST NOT back production key
// generation with a low-entropy seed.
type shakeProvider struct {
	xof sha3.ShakeHash
}

// Create a deterministic SHAKE256-based entropy provider from a seed.
func NewShakeProvider(seed []byte) EntropyProvider {
	p := new(shakeProvider)
	p.xof = sha3.NewShake256()
	p.xof.Write(seed)
	return p
}

func (p *shakeProvider) FillEntropy(dst []byte) error {
	_, err := io.ReadFull(p.xof, dst)
	return err
}
