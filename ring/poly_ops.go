package ring

import (
	"fmt"
)

// Add returns p + other.
// The result has max(p.Len(), other.Len()) coefficients.
func (p *Poly) Add(other *Poly) *Poly {
	a, b := p.view(), other.view()
	if len(a) < len(b) {
		a, b = b, a
	}
	out := append([]Complex(nil), a...)
	AddVec(out[:len(b)], b, out[:len(b)])
	return &Poly{coeffs: out}
}

// Sub returns p - other.
// The result has max(p.Len(), other.Len()) coefficients.
func (p *Poly) Sub(other *Poly) *Poly {
	a, b := p.view(), other.view()
	out := make([]Complex, max(len(a), len(b)))
	copy(out, a)
	SubVec(out[:len(b)], b, out[:len(b)])
	return &Poly{coeffs: out}
}

// Neg returns -p.
func (p *Poly) Neg() *Poly {
	a := p.view()
	out := make([]Complex, len(a))
	NegVec(a, out)
	return &Poly{coeffs: out}
}

// Scale returns p * c.
func (p *Poly) Scale(c Complex) *Poly {
	a := p.view()
	out := make([]Complex, len(a))
	MulScalarVec(a, c, out)
	return &Poly{coeffs: out}
}

// Mul returns the schoolbook product p * other.
// The result has p.Len() + other.Len() - 1 coefficients.
func (p *Poly) Mul(other *Poly) *Poly {
	a, b := p.view(), other.view()
	N := len(a) + len(b) - 1
	out := make([]Complex, N)
	convolveThenAdd(a, b, out, N, false)
	return &Poly{coeffs: out}
}

// Evaluate returns p(x) using Horner's scheme.
func (p *Poly) Evaluate(x Complex) (y Complex) {
	coeffs := p.view()
	y = coeffs[len(coeffs)-1]
	for i := len(coeffs) - 2; i >= 0; i-- {
		y = y.Mul(x).Add(coeffs[i])
	}
	return
}

// DivMod returns the quotient and remainder of the long division of p by den,
// such that p = quo * den + rem with rem.Degree() < den.Trim().Degree(),
// or rem of degree zero if den is a constant.
// Returns an error wrapping [ErrDivisionByZero] if den is the zero polynomial.
func (p *Poly) DivMod(den *Poly) (quo, rem *Poly, err error) {

	d := den.Trim().view()

	if len(d) == 1 && d[0].IsZero() {
		return nil, nil, fmt.Errorf("%w: cannot DivMod", ErrDivisionByZero)
	}

	r := p.Trim().Coeffs()

	dd := len(d) - 1
	lead := d[dd]

	if len(r) < len(d) {
		return NewZeroPoly(0), NewPolyFromSlice(r), nil
	}

	q := make([]Complex, len(r)-dd)

	for i := len(r) - 1; i >= dd; i-- {
		c := r[i].Quo(lead)
		q[i-dd] = c
		// r[i-dd:i+1] -= c * d
		MulScalarThenAddVec(d, c.Neg(), r[i-dd:i+1])
		r[i] = Complex{}
	}

	if dd == 0 {
		return NewPolyFromSlice(q), NewZeroPoly(0), nil
	}

	return NewPolyFromSlice(q), NewPolyFromSlice(r[:dd]).Trim(), nil
}

// AddInRing returns p + other mod X^ringDegree - 1.
// Returns an error wrapping [ErrInvalidRingDegree] if ringDegree <= 0.
func (p *Poly) AddInRing(other *Poly, ringDegree int) (*Poly, error) {
	r, err := NewRing(ringDegree)
	if err != nil {
		return nil, fmt.Errorf("cannot AddInRing: %w", err)
	}
	return r.Add(p, other), nil
}

// MulInRing returns p * other mod X^ringDegree - 1.
// Returns an error wrapping [ErrInvalidRingDegree] if ringDegree <= 0.
func (p *Poly) MulInRing(other *Poly, ringDegree int) (*Poly, error) {
	r, err := NewRing(ringDegree)
	if err != nil {
		return nil, fmt.Errorf("cannot MulInRing: %w", err)
	}
	return r.Mul(p, other), nil
}
