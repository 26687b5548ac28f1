package ring

import (
	"strconv"
)

// Complex is a single precision complex number.
// It is a value type: every operation returns a new value.
type Complex struct {
	Re, Im float32
}

// NewComplex returns re + im*i.
func NewComplex(re, im float32) Complex {
	return Complex{Re: re, Im: im}
}

// Add returns a + b.
func (a Complex) Add(b Complex) Complex {
	return Complex{a.Re + b.Re, a.Im + b.Im}
}

// Sub returns a - b.
func (a Complex) Sub(b Complex) Complex {
	return Complex{a.Re - b.Re, a.Im - b.Im}
}

// Mul returns a * b.
// Products are rounded to float32 before the sum (no fused multiply-add).
func (a Complex) Mul(b Complex) Complex {
	return Complex{
		float32(a.Re*b.Re) - float32(a.Im*b.Im),
		float32(a.Re*b.Im) + float32(a.Im*b.Re),
	}
}

// Neg returns -a.
func (a Complex) Neg() Complex {
	return Complex{-a.Re, -a.Im}
}

// Conj returns the complex conjugate of a.
func (a Complex) Conj() Complex {
	return Complex{a.Re, -a.Im}
}

// Quo returns a / b.
// Division by zero follows IEEE-754 and yields NaN or Inf components.
func (a Complex) Quo(b Complex) Complex {
	den := b.Re*b.Re + b.Im*b.Im
	num := a.Mul(b.Conj())
	return Complex{num.Re / den, num.Im / den}
}

// IsZero returns true if both components are zero.
func (a Complex) IsZero() bool {
	return a.Re == 0 && a.Im == 0
}

// Complex64 returns a as a complex64.
func (a Complex) Complex64() complex64 {
	return complex(a.Re, a.Im)
}

// String returns "0", "re", "imi" or "re + imi" (resp. "re - imi"),
// omitting the zero components.
func (a Complex) String() string {
	switch {
	case a.IsZero():
		return "0"
	case a.Im == 0:
		return formatFloat(a.Re)
	case a.Re == 0:
		return formatFloat(a.Im) + "i"
	case a.Im < 0:
		return formatFloat(a.Re) + " - " + formatFloat(-a.Im) + "i"
	default:
		return formatFloat(a.Re) + " + " + formatFloat(a.Im) + "i"
	}
}

func formatFloat(f float32) string {
	return strconv.FormatFloat(float64(f), 'g', -1, 32)
}
