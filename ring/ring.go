// Package ring implements arithmetic on single precision complex numbers, polynomials with
// complex coefficients and matrices of such polynomials, either free or reduced in the
// quotient ring C[X]/(X^N - 1) (cyclic) or C[X]/(X^N + 1) (negacyclic).
package ring

import (
	"encoding/json"
	"fmt"

	"github.com/google/go-cmp/cmp"
)

// Reduction is the quotient polynomial used to reduce products and sums in a [Ring].
type Reduction int

// Cyclic and Negacyclic are the two supported reductions.
const (
	Cyclic     = Reduction(0) // C[X]/(X^N - 1) (Default)
	Negacyclic = Reduction(1) // C[X]/(X^N + 1)
)

// String returns the string representation of the [Reduction].
func (rd Reduction) String() string {
	switch rd {
	case Cyclic:
		return "Cyclic"
	case Negacyclic:
		return "Negacyclic"
	default:
		return "Invalid"
	}
}

// MarshalJSON marshals the receiver [Reduction] into a JSON []byte
func (rd Reduction) MarshalJSON() ([]byte, error) {
	return json.Marshal(rd.String())
}

// UnmarshalJSON reads a JSON byte slice into the receiver [Reduction]
func (rd *Reduction) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	switch s {
	default:
		return fmt.Errorf("%w: invalid reduction: %s", ErrInvalidParameters, s)
	case "Cyclic":
		*rd = Cyclic
	case "Negacyclic":
		*rd = Negacyclic
	}

	return nil
}

// ParametersLiteral is a literal representation of the parameters of a [Ring].
// It has public fields and is used to express unchecked user-defined parameters
// literally into Go programs. The [NewRingFromLiteral] function is used to
// generate the actual checked [Ring] from the literal representation.
//
//   - N: the ring degree, must be strictly positive.
//   - Reduction: the quotient polynomial, [Cyclic] by default.
//   - Workers: the number of goroutines used by the matrix operations.
//     Zero or one means sequential.
type ParametersLiteral struct {
	N         int
	Reduction Reduction
	Workers   int `json:",omitempty"`
}

// Ring stores the validated parameters of the quotient ring C[X]/(X^N -/+ 1).
// A Ring is immutable and safe for concurrent use.
type Ring struct {
	n         int
	reduction Reduction
	workers   int
}

// NewRing returns a new cyclic [Ring] of degree N.
// Returns an error wrapping [ErrInvalidRingDegree] if N <= 0.
func NewRing(N int) (*Ring, error) {
	return NewRingFromLiteral(ParametersLiteral{N: N})
}

// NewRingFromType returns a new [Ring] of degree N with the given reduction.
func NewRingFromType(N int, reduction Reduction) (*Ring, error) {
	return NewRingFromLiteral(ParametersLiteral{N: N, Reduction: reduction})
}

// NewRingFromLiteral instantiates a new [Ring] from a [ParametersLiteral].
// Returns an error wrapping [ErrInvalidRingDegree] if N <= 0 and an error
// wrapping [ErrInvalidParameters] for any other invalid field.
func NewRingFromLiteral(pl ParametersLiteral) (*Ring, error) {

	if pl.N <= 0 {
		return nil, fmt.Errorf("%w: N=%d must be strictly positive", ErrInvalidRingDegree, pl.N)
	}

	switch pl.Reduction {
	case Cyclic, Negacyclic:
	default:
		return nil, fmt.Errorf("%w: invalid reduction %d", ErrInvalidParameters, pl.Reduction)
	}

	if pl.Workers < 0 {
		return nil, fmt.Errorf("%w: Workers=%d must be positive", ErrInvalidParameters, pl.Workers)
	}

	return &Ring{
		n:         pl.N,
		reduction: pl.Reduction,
		workers:   max(pl.Workers, 1),
	}, nil
}

// N returns the ring degree.
func (r Ring) N() int {
	return r.n
}

// Reduction returns the [Reduction] of the ring.
func (r Ring) Reduction() Reduction {
	return r.reduction
}

// Workers returns the number of goroutines used by the matrix operations.
func (r Ring) Workers() int {
	return r.workers
}

// ParametersLiteral returns the [ParametersLiteral] of the receiver.
func (r Ring) ParametersLiteral() ParametersLiteral {
	return ParametersLiteral{
		N:         r.n,
		Reduction: r.reduction,
		Workers:   r.workers,
	}
}

// Equal returns true if the receiver and other have the same parameters.
func (r Ring) Equal(other *Ring) bool {
	return cmp.Equal(r.ParametersLiteral(), other.ParametersLiteral())
}

// String returns a string representation of the quotient ring, e.g. "C[X]/(X^8 + 1)".
func (r Ring) String() string {
	sign := "-"
	if r.reduction == Negacyclic {
		sign = "+"
	}
	return fmt.Sprintf("C[X]/(X^%d %s 1)", r.n, sign)
}

// MarshalJSON encodes the receiver into a JSON []byte.
func (r Ring) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.ParametersLiteral())
}

// UnmarshalJSON decodes a JSON []byte on the receiver.
func (r *Ring) UnmarshalJSON(b []byte) (err error) {
	var pl ParametersLiteral
	if err = json.Unmarshal(b, &pl); err != nil {
		return
	}
	var rr *Ring
	if rr, err = NewRingFromLiteral(pl); err != nil {
		return
	}
	*r = *rr
	return
}

func (r Ring) negacyclic() bool {
	return r.reduction == Negacyclic
}

// Reduce returns p mod X^N -/+ 1.
// The result has min(p.Len(), N) coefficients.
func (r Ring) Reduce(p *Poly) *Poly {
	a := p.view()
	out := make([]Complex, min(len(a), r.n))
	foldThenAdd(a, out, r.n, r.negacyclic())
	return &Poly{coeffs: out}
}

// Add returns a + b mod X^N -/+ 1.
// The result has min(max(a.Len(), b.Len()), N) coefficients.
// Each operand is folded into the result in turn, so when both operands
// exceed N coefficients the float32 rounding can differ from reducing a.Add(b).
func (r Ring) Add(a, b *Poly) *Poly {
	x, y := a.view(), b.view()
	out := make([]Complex, min(max(len(x), len(y)), r.n))
	foldThenAdd(x, out, r.n, r.negacyclic())
	foldThenAdd(y, out, r.n, r.negacyclic())
	return &Poly{coeffs: out}
}

// Sub returns a - b mod X^N -/+ 1.
// The result has min(max(a.Len(), b.Len()), N) coefficients.
func (r Ring) Sub(a, b *Poly) *Poly {
	return r.Reduce(a.Sub(b))
}

// Neg returns -a mod X^N -/+ 1.
func (r Ring) Neg(a *Poly) *Poly {
	return r.Reduce(a.Neg())
}

// Mul returns a * b mod X^N -/+ 1.
// The result has min(a.Len() + b.Len() - 1, N) coefficients.
func (r Ring) Mul(a, b *Poly) *Poly {
	x, y := a.view(), b.view()
	out := make([]Complex, min(len(x)+len(y)-1, r.n))
	convolveThenAdd(x, y, out, r.n, r.negacyclic())
	return &Poly{coeffs: out}
}
