// Package sampling implements a seedable source of randomness for test vectors and random polynomials.
package sampling

import (
	"crypto/rand"
	"encoding/binary"
	mrand "math/rand/v2"

	"golang.org/x/crypto/blake2b"
)

// Source is a deterministic source of randomness keyed by a 32 byte seed.
// Two instances created from the same seed produce the same stream.
// WARNING: Source should NOT be called by multiple goroutines. If that occurs,
// the generated sequence will not be deterministic. Use [Source.Derive] to obtain
// independent sub-sources instead.
type Source struct {
	seed [32]byte
	*mrand.ChaCha8
	rand *mrand.Rand
}

// NewSeed returns a new seed read from crypto/rand.
func NewSeed() (seed [32]byte) {
	if _, err := rand.Read(seed[:]); err != nil {
		panic(err)
	}
	return
}

// NewSource creates a new [Source] keyed with seed.
func NewSource(seed [32]byte) (s *Source) {
	s = &Source{seed: seed, ChaCha8: mrand.NewChaCha8(seed)}
	s.rand = mrand.New(s.ChaCha8)
	return
}

// Seed returns the seed of the receiver.
func (s *Source) Seed() [32]byte {
	return s.seed
}

// Reset resets the receiver to its initial state.
func (s *Source) Reset() {
	s.ChaCha8.Seed(s.seed)
}

// Derive returns a new [Source] keyed with blake2b(seed || label).
// The stream of the receiver is left untouched.
func (s *Source) Derive(label uint64) *Source {
	var buf [40]byte
	copy(buf[:32], s.seed[:])
	binary.LittleEndian.PutUint64(buf[32:], label)
	return NewSource(blake2b.Sum256(buf[:]))
}

// IntN returns a uniform integer in [0, n).
// The method panics if n <= 0.
func (s *Source) IntN(n int) int {
	return s.rand.IntN(n)
}

// Float64 returns a uniform float64 in [min, max).
func (s *Source) Float64(min, max float64) float64 {
	return min + s.rand.Float64()*(max-min)
}

// Float32 returns a uniform float32 in [min, max).
func (s *Source) Float32(min, max float32) float32 {
	return min + s.rand.Float32()*(max-min)
}

// Complex128 returns a complex128 whose real part is uniform in
// [real(min), real(max)) and imaginary part uniform in [imag(min), imag(max)).
func (s *Source) Complex128(min, max complex128) complex128 {
	return complex(s.Float64(real(min), real(max)), s.Float64(imag(min), imag(max)))
}

// Bernoulli returns true with probability p.
func (s *Source) Bernoulli(p float64) bool {
	return s.rand.Float64() < p
}
