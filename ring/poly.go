package ring

import (
	"fmt"
	"strings"
)

// Poly is a polynomial with [Complex] coefficients in the monomial basis:
// the i-th coefficient is the coefficient of X^i.
//
// A Poly always holds at least one coefficient and its degree is
// len(coefficients)-1. Leading zero coefficients are allowed and
// preserved by every operation, see [Poly.Trim].
// The zero value of Poly is the zero polynomial.
type Poly struct {
	coeffs []Complex
}

// NewPoly returns a new [Poly] with a copy of the given coefficients.
// If no coefficient is given, the zero polynomial is returned.
func NewPoly(coeffs ...Complex) *Poly {
	if len(coeffs) == 0 {
		return NewZeroPoly(0)
	}
	return &Poly{coeffs: append([]Complex(nil), coeffs...)}
}

// NewPolyFromSlice returns a new [Poly] backed by coeffs.
// The caller must not modify coeffs afterward.
// If coeffs is empty, the zero polynomial is returned.
func NewPolyFromSlice(coeffs []Complex) *Poly {
	if len(coeffs) == 0 {
		return NewZeroPoly(0)
	}
	return &Poly{coeffs: coeffs}
}

// NewZeroPoly returns the zero polynomial with degree+1 coefficients.
// A negative degree is treated as zero.
func NewZeroPoly(degree int) *Poly {
	return &Poly{coeffs: make([]Complex, max(degree, 0)+1)}
}

// view returns the coefficients of the receiver, or
// those of the zero polynomial if the receiver is nil or released.
func (p *Poly) view() []Complex {
	if p == nil || len(p.coeffs) == 0 {
		return []Complex{{}}
	}
	return p.coeffs
}

// Degree returns the degree of the receiver, that is Len()-1.
func (p *Poly) Degree() int {
	return len(p.view()) - 1
}

// Len returns the number of coefficients of the receiver.
func (p *Poly) Len() int {
	return len(p.view())
}

// At returns the coefficient of X^i.
// The method panics if i is out of range.
func (p *Poly) At(i int) Complex {
	coeffs := p.view()
	if i < 0 || i >= len(coeffs) {
		panic(fmt.Errorf("invalid index: %d not in [0, %d]", i, len(coeffs)-1))
	}
	return coeffs[i]
}

// Coeffs returns a copy of the coefficients of the receiver.
func (p *Poly) Coeffs() []Complex {
	return append([]Complex(nil), p.view()...)
}

// Complex64 returns the coefficients of the receiver as a []complex64.
func (p *Poly) Complex64() (coeffs []complex64) {
	view := p.view()
	coeffs = make([]complex64, len(view))
	for i := range view {
		coeffs[i] = view[i].Complex64()
	}
	return
}

// Clone returns a deep copy of the receiver.
func (p *Poly) Clone() *Poly {
	return NewPoly(p.view()...)
}

// Copy copies the coefficients of other on the receiver.
// The receiver is resized if necessary.
func (p *Poly) Copy(other *Poly) {
	if p == other {
		return
	}
	src := other.view()
	if cap(p.coeffs) < len(src) {
		p.coeffs = make([]Complex, len(src))
	}
	p.coeffs = p.coeffs[:len(src)]
	copy(p.coeffs, src)
}

// Equal returns true if the receiver and other have the same
// number of coefficients and the coefficients are equal.
func (p *Poly) Equal(other *Poly) bool {
	a, b := p.view(), other.view()

	if len(a) != len(b) {
		return false
	}

	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

// IsZero returns true if all the coefficients of the receiver are zero.
func (p *Poly) IsZero() bool {
	for _, c := range p.view() {
		if !c.IsZero() {
			return false
		}
	}
	return true
}

// Trim returns a copy of the receiver without its leading zero coefficients.
// The zero polynomial is returned as a single zero coefficient.
func (p *Poly) Trim() *Poly {
	coeffs := p.view()
	n := len(coeffs)
	for n > 1 && coeffs[n-1].IsZero() {
		n--
	}
	return NewPoly(coeffs[:n]...)
}

// Release drops the coefficients of the receiver.
// A released Poly behaves as the zero polynomial.
// Release is idempotent and can be called on a nil receiver.
func (p *Poly) Release() {
	if p != nil {
		p.coeffs = nil
	}
}

// String returns the receiver formatted from the highest to the lowest
// degree, e.g. "(1 + 2i)X^2 + (-3)X + (4)". Zero coefficients are skipped
// and the zero polynomial is formatted as "0".
// The output can be read back with [ParsePoly].
func (p *Poly) String() string {

	coeffs := p.view()

	var sb strings.Builder
	for i := len(coeffs) - 1; i >= 0; i-- {

		if coeffs[i].IsZero() {
			continue
		}

		if sb.Len() != 0 {
			sb.WriteString(" + ")
		}

		sb.WriteString("(")
		sb.WriteString(coeffs[i].String())
		sb.WriteString(")")

		switch {
		case i == 1:
			sb.WriteString("X")
		case i > 1:
			fmt.Fprintf(&sb, "X^%d", i)
		}
	}

	if sb.Len() == 0 {
		return "0"
	}

	return sb.String()
}
