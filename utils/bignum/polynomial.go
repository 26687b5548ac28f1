package bignum

import (
	"fmt"
	"math/big"
)

// Polynomial is an arbitrary precision polynomial in the monomial basis.
// Coeffs[i] is the coefficient of X^i.
type Polynomial struct {
	Coeffs []Complex
}

// NewPolynomial creates a new polynomial from the input coefficients:
// coeffs: []complex64, []complex128, []float64 or []bignum.Complex
// The coefficients are set to prec bits of precision.
func NewPolynomial(coeffs interface{}, prec uint) *Polynomial {
	var coefficients []Complex

	switch coeffs := coeffs.(type) {
	case []complex64:
		coefficients = make([]Complex, len(coeffs))
		ToComplexSlice(coeffs, prec, coefficients)
	case []complex128:
		coefficients = make([]Complex, len(coeffs))
		ToComplexSlice(coeffs, prec, coefficients)
	case []float64:
		coefficients = make([]Complex, len(coeffs))
		for i, c := range coeffs {
			coefficients[i][0].SetPrec(prec).SetFloat64(c)
			coefficients[i][1].SetPrec(prec)
		}
	case []Complex:
		coefficients = make([]Complex, len(coeffs))
		for i := range coeffs {
			coefficients[i].Set(&coeffs[i])
			coefficients[i].SetPrec(prec)
		}
	default:
		panic(fmt.Sprintf("invalid coefficient type, allowed types are []{complex64, complex128, float64, bignum.Complex} but is %T", coeffs))
	}

	return &Polynomial{Coeffs: coefficients}
}

// Prec returns the precision of the first coefficient.
func (p *Polynomial) Prec() uint {
	return p.Coeffs[0].Prec()
}

func (p *Polynomial) Clone() *Polynomial {
	Coeffs := make([]Complex, len(p.Coeffs))
	for i := range p.Coeffs {
		Coeffs[i] = *p.Coeffs[i].Clone()
	}
	return &Polynomial{Coeffs: Coeffs}
}

// Degree returns the degree of the polynomial.
func (p *Polynomial) Degree() int {
	return len(p.Coeffs) - 1
}

// Complex128 returns the coefficients of the receiver as a []complex128.
func (p *Polynomial) Complex128() (coeffs []complex128) {
	coeffs = make([]complex128, len(p.Coeffs))
	for i := range coeffs {
		coeffs[i] = p.Coeffs[i].Complex128()
	}
	return
}

// Evaluate takes x a *big.Float or *bignum.Complex and returns y = P(x).
// The precision of x is used as reference precision for y.
func (p *Polynomial) Evaluate(x interface{}) (y *Complex) {

	var xcmplx *Complex
	switch x := x.(type) {
	case *big.Float:
		xcmplx = ToComplex(x, x.Prec())
	case *Complex:
		xcmplx = ToComplex(x, x.Prec())
	default:
		xcmplx = ToComplex(x, 64)
	}

	coeffs := p.Coeffs
	n := len(coeffs)

	mul := NewComplexMultiplier()

	y = coeffs[n-1].Clone()
	y.SetPrec(xcmplx.Prec())
	for i := n - 2; i >= 0; i-- {
		mul.Mul(y, xcmplx, y)
		y.Add(y, &coeffs[i])
	}

	return
}

// Mul returns the schoolbook product a * b.
func Mul(a, b *Polynomial) (c *Polynomial) {
	return MulInRing(a, b, len(a.Coeffs)+len(b.Coeffs)-1, false)
}

// MulInRing returns a * b mod X^N - 1 or, if negacyclic is true, a * b mod X^N + 1.
// The result has min(N, deg(a)+deg(b)+1) coefficients.
// The method panics if N <= 0.
func MulInRing(a, b *Polynomial, N int, negacyclic bool) (c *Polynomial) {

	if N <= 0 {
		panic(fmt.Errorf("invalid N: must be positive but is %d", N))
	}

	prec := max(a.Prec(), b.Prec())

	c = &Polynomial{Coeffs: make([]Complex, min(N, len(a.Coeffs)+len(b.Coeffs)-1))}
	for i := range c.Coeffs {
		c.Coeffs[i].SetPrec(prec)
	}

	mul := NewComplexMultiplier()
	tmp := new(Complex).SetPrec(prec)

	for i := range a.Coeffs {
		for j := range b.Coeffs {
			mul.Mul(&a.Coeffs[i], &b.Coeffs[j], tmp)
			k := i + j
			if negacyclic && (k/N)&1 == 1 {
				c.Coeffs[k%N].Sub(&c.Coeffs[k%N], tmp)
			} else {
				c.Coeffs[k%N].Add(&c.Coeffs[k%N], tmp)
			}
		}
	}

	return
}
