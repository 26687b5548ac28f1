package ring

import (
	"fmt"
	"math"

	"github.com/Pro7ech/polyring/utils/sampling"
)

// SamplerParameters defines the distribution of the random polynomials
// generated by a [Sampler].
//
//   - MaxDegree: the degree is uniform in [0, MaxDegree].
//   - Bound: real and imaginary parts are uniform in [-Bound, Bound).
//   - Density: probability for a non-leading coefficient to be non-zero.
//     The leading coefficient is never zero.
type SamplerParameters struct {
	MaxDegree int
	Bound     float32
	Density   float64
}

// DefaultSamplerParameters returns the parameters used by [RandomPoly]:
// degree at most 7, coefficients in [-10, 10) and 70% density.
func DefaultSamplerParameters() SamplerParameters {
	return SamplerParameters{
		MaxDegree: 7,
		Bound:     10,
		Density:   0.7,
	}
}

// Validate returns an error wrapping [ErrInvalidParameters] if the receiver is invalid.
func (p SamplerParameters) Validate() error {

	if p.MaxDegree < 0 {
		return fmt.Errorf("%w: MaxDegree=%d must be non-negative", ErrInvalidParameters, p.MaxDegree)
	}

	if !(p.Bound > 0) || math.IsInf(float64(p.Bound), 0) {
		return fmt.Errorf("%w: Bound=%v must be strictly positive and finite", ErrInvalidParameters, p.Bound)
	}

	if !(p.Density >= 0 && p.Density <= 1) {
		return fmt.Errorf("%w: Density=%v must be in [0, 1]", ErrInvalidParameters, p.Density)
	}

	return nil
}

// Sampler generates random polynomials and matrices
// from a [sampling.Source] according to its [SamplerParameters].
// A Sampler is not safe for concurrent use, see [Sampler.WithSource].
type Sampler struct {
	SamplerParameters
	*sampling.Source
}

// NewSampler instantiates a new [Sampler] from a [sampling.Source] and [SamplerParameters].
// Returns an error wrapping [ErrInvalidParameters] if the parameters are invalid.
func NewSampler(source *sampling.Source, params SamplerParameters) (*Sampler, error) {
	if err := params.Validate(); err != nil {
		return nil, fmt.Errorf("cannot NewSampler: %w", err)
	}
	return &Sampler{SamplerParameters: params, Source: source}, nil
}

// RandomPoly returns a random polynomial sampled from source
// with the [DefaultSamplerParameters].
func RandomPoly(source *sampling.Source) *Poly {
	return (&Sampler{SamplerParameters: DefaultSamplerParameters(), Source: source}).ReadNew()
}

// GetSource returns the underlying [sampling.Source] used by the sampler.
func (s Sampler) GetSource() *sampling.Source {
	return s.Source
}

// WithSource returns an instance of the underlying sampler with
// a new [sampling.Source].
// It can be used concurrently with the receiver.
func (s Sampler) WithSource(source *sampling.Source) *Sampler {
	return &Sampler{
		SamplerParameters: s.SamplerParameters,
		Source:            source,
	}
}

func (s *Sampler) coefficient() Complex {
	return NewComplex(s.Float32(-s.Bound, s.Bound), s.Float32(-s.Bound, s.Bound))
}

// ReadNew returns a new random polynomial.
func (s *Sampler) ReadNew() *Poly {

	degree := s.IntN(s.MaxDegree + 1)

	coeffs := make([]Complex, degree+1)

	for i := 0; i < degree; i++ {
		if s.Bernoulli(s.Density) {
			coeffs[i] = s.coefficient()
		}
	}

	for coeffs[degree].IsZero() {
		coeffs[degree] = s.coefficient()
	}

	return NewPolyFromSlice(coeffs)
}

// ReadMatrixNew returns a new random matrix of the given dimensions.
// A fresh seed is drawn from the source of the receiver and the cell i
// is sampled from the source derived from that seed and i, so that
// the result is reproducible and does not depend on the order of the cells.
func (s *Sampler) ReadMatrixNew(width, height int) (m *Matrix, err error) {

	if m, err = NewMatrix(nil, width, height); err != nil {
		return nil, fmt.Errorf("cannot ReadMatrixNew: %w", err)
	}

	var seed [32]byte
	if _, err = s.Read(seed[:]); err != nil {
		return nil, fmt.Errorf("cannot ReadMatrixNew: %w", err)
	}

	source := sampling.NewSource(seed)

	for i := range m.cells {
		m.cells[i] = *s.WithSource(source.Derive(uint64(i))).ReadNew()
	}

	return
}
