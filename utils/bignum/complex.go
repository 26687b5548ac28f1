package bignum

import (
	"fmt"
	"math/big"
)

// Complex is a type for arbitrary precision complex number
type Complex [2]big.Float

// ToComplex takes a
// - complex64, complex128
// - float32, float64,
// - int, int64,
// - *big.Float, big.Float
// - *bignum.Complex, bignum.Complex
// and returns a *bignum.Complex set to the given precision.
func ToComplex(value interface{}, prec uint) (cmplx *Complex) {

	cmplx = new(Complex)
	cmplx[0].SetPrec(prec)
	cmplx[1].SetPrec(prec)

	switch value := value.(type) {
	case complex64:
		cmplx[0].SetFloat64(float64(real(value)))
		cmplx[1].SetFloat64(float64(imag(value)))
	case complex128:
		cmplx[0].SetFloat64(real(value))
		cmplx[1].SetFloat64(imag(value))
	case float32:
		cmplx[0].SetFloat64(float64(value))
	case float64:
		cmplx[0].SetFloat64(value)
	case int:
		cmplx[0].SetInt64(int64(value))
	case int64:
		cmplx[0].SetInt64(value)
	case *big.Float:
		cmplx[0].Set(value)
	case big.Float:
		cmplx[0].Set(&value)
	case *Complex:
		cmplx[0].Set(&value[0])
		cmplx[1].Set(&value[1])
	case Complex:
		cmplx[0].Set(&value[0])
		cmplx[1].Set(&value[1])
	default:
		panic(fmt.Errorf("invalid value.(type): must be int, int64, float32, float64, complex64, complex128, *big.Float, big.Float or *bignum.Complex, bignum.Complex but is %T", value))
	}

	return
}

// ToComplexSlice takes a []complex64 or []complex128 and
// writes it on cmplxSlice at the given precision.
func ToComplexSlice(values interface{}, prec uint, cmplxSlice []Complex) {

	switch values := values.(type) {
	case []complex64:
		for i := range min(len(values), len(cmplxSlice)) {
			cmplxSlice[i][0].SetPrec(prec).SetFloat64(float64(real(values[i])))
			cmplxSlice[i][1].SetPrec(prec).SetFloat64(float64(imag(values[i])))
		}
	case []complex128:
		for i := range min(len(values), len(cmplxSlice)) {
			cmplxSlice[i][0].SetPrec(prec).SetFloat64(real(values[i]))
			cmplxSlice[i][1].SetPrec(prec).SetFloat64(imag(values[i]))
		}
	default:
		panic(fmt.Errorf("invalid value.(type): must be []complex64 or []complex128 but is %T", values))
	}
}

// IsReal returns true if the imaginary part is zero.
func (c *Complex) IsReal() bool {
	return c[1].Sign() == 0
}

// Set sets an arbitrary precision complex number
func (c *Complex) Set(a *Complex) *Complex {
	c[0].Set(&a[0])
	c[1].Set(&a[1])
	return c
}

func (c *Complex) Prec() uint {
	return min(c[0].Prec(), c[1].Prec())
}

func (c *Complex) SetPrec(prec uint) *Complex {
	c[0].SetPrec(prec)
	c[1].SetPrec(prec)
	return c
}

// Clone returns a new copy of the target arbitrary precision complex number
func (c *Complex) Clone() (clone *Complex) {
	clone = &Complex{}
	clone[0].Set(&c[0])
	clone[1].Set(&c[1])
	return
}

// IsZero return true if the receiver is zero
func (c *Complex) IsZero() bool {
	return c[0].Sign() == 0 && c[1].Sign() == 0
}

// Real returns the real part as a big.Float
func (c *Complex) Real() *big.Float {
	return &c[0]
}

// Imag returns the imaginary part as a big.Float
func (c *Complex) Imag() *big.Float {
	return &c[1]
}

// Complex128 returns the arbitrary precision complex number as a complex128
func (c *Complex) Complex128() complex128 {

	real, _ := c[0].Float64()
	imag, _ := c[1].Float64()

	return complex(real, imag)
}

// Add adds two arbitrary precision complex numbers together
func (c *Complex) Add(a, b *Complex) *Complex {
	c[0].Add(&a[0], &b[0])
	c[1].Add(&a[1], &b[1])
	return c
}

// Sub subtracts two arbitrary precision complex numbers together
func (c *Complex) Sub(a, b *Complex) *Complex {
	c[0].Sub(&a[0], &b[0])
	c[1].Sub(&a[1], &b[1])
	return c
}

// Neg negates a and writes the result on c.
func (c *Complex) Neg(a *Complex) *Complex {
	c[0].Neg(&a[0])
	c[1].Neg(&a[1])
	return c
}

// Abs returns |c| = sqrt(re^2 + im^2) at the precision of c.
func (c *Complex) Abs() (abs *big.Float) {
	abs = new(big.Float).SetPrec(c.Prec())
	tmp := new(big.Float).SetPrec(c.Prec())
	abs.Mul(&c[0], &c[0])
	tmp.Mul(&c[1], &c[1])
	abs.Add(abs, tmp)
	return abs.Sqrt(abs)
}

// ComplexMultiplier is a struct for the multiplication of two arbitrary precision complex numbers
type ComplexMultiplier struct {
	tmp0 *big.Float
	tmp1 *big.Float
	tmp2 *big.Float
	tmp3 *big.Float
}

// NewComplexMultiplier creates a new ComplexMultiplier
func NewComplexMultiplier() (cEval *ComplexMultiplier) {
	cEval = new(ComplexMultiplier)
	cEval.tmp0 = new(big.Float)
	cEval.tmp1 = new(big.Float)
	cEval.tmp2 = new(big.Float)
	cEval.tmp3 = new(big.Float)
	return
}

// Mul evaluates c = a * b.
// c can alias a or b.
func (cEval *ComplexMultiplier) Mul(a, b, c *Complex) {

	if a.IsReal() && b.IsReal() {
		c[0].Mul(&a[0], &b[0])
		c[1].SetFloat64(0)
		return
	}

	cEval.tmp0.Mul(&a[0], &b[0])
	cEval.tmp1.Mul(&a[1], &b[1])
	cEval.tmp2.Mul(&a[0], &b[1])
	cEval.tmp3.Mul(&a[1], &b[0])

	c[0].Sub(cEval.tmp0, cEval.tmp1)
	c[1].Add(cEval.tmp2, cEval.tmp3)
}
