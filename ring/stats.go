package ring

import (
	"fmt"
	"math"
	"math/big"

	"github.com/Pro7ech/polyring/utils"
	"github.com/Pro7ech/polyring/utils/bignum"
	"github.com/montanaflynn/stats"
)

// ReferencePrecision is the precision in bits of the reference
// arithmetic used by [Ring.PrecisionStats].
const ReferencePrecision = 128

// MaxLog2Precision is the precision in bits reported for an exact coefficient.
// It is the base 2 logarithm of the smallest positive float32.
const MaxLog2Precision = 149

// PrecisionStats is a struct storing statistics about the precision
// of the coefficients of a polynomial compared to reference values.
// Precisions are given in bits, as -log2(|error|), and errors as |error|.
type PrecisionStats struct {
	MaxPrec Stats
	MinPrec Stats
	AvgPrec Stats
	MedPrec Stats
	StdPrec Stats

	MaxErr Stats
	MinErr Stats
	AvgErr Stats
	MedErr Stats
	StdErr Stats

	// Coefficients is the number of compared coefficients.
	Coefficients int
}

// Stats is a struct storing the real, imaginary and L2 norm (modulus)
// about the precision of a complex value.
type Stats struct {
	Real, Imag, L2 float64
}

func (prec PrecisionStats) String() string {
	return fmt.Sprintf(`
┌─────────┬────────┬────────┬────────┐
│    Log2 │ REAL   │ IMAG   │ L2     │
├─────────┼────────┼────────┼────────┤
│MIN Prec │ %6.2f │ %6.2f │ %6.2f │
│MAX Prec │ %6.2f │ %6.2f │ %6.2f │
│AVG Prec │ %6.2f │ %6.2f │ %6.2f │
│MED Prec │ %6.2f │ %6.2f │ %6.2f │
│STD Prec │ %6.2f │ %6.2f │ %6.2f │
├─────────┼────────┼────────┼────────┤
│MIN Err  │ %6.0e │ %6.0e │ %6.0e │
│MAX Err  │ %6.0e │ %6.0e │ %6.0e │
│AVG Err  │ %6.0e │ %6.0e │ %6.0e │
│MED Err  │ %6.0e │ %6.0e │ %6.0e │
│STD Err  │ %6.0e │ %6.0e │ %6.0e │
└─────────┴────────┴────────┴────────┘
`,
		prec.MinPrec.Real, prec.MinPrec.Imag, prec.MinPrec.L2,
		prec.MaxPrec.Real, prec.MaxPrec.Imag, prec.MaxPrec.L2,
		prec.AvgPrec.Real, prec.AvgPrec.Imag, prec.AvgPrec.L2,
		prec.MedPrec.Real, prec.MedPrec.Imag, prec.MedPrec.L2,
		prec.StdPrec.Real, prec.StdPrec.Imag, prec.StdPrec.L2,
		prec.MinErr.Real, prec.MinErr.Imag, prec.MinErr.L2,
		prec.MaxErr.Real, prec.MaxErr.Imag, prec.MaxErr.L2,
		prec.AvgErr.Real, prec.AvgErr.Imag, prec.AvgErr.L2,
		prec.MedErr.Real, prec.MedErr.Imag, prec.MedErr.L2,
		prec.StdErr.Real, prec.StdErr.Imag, prec.StdErr.L2,
	)
}

// PrecisionStats computes a * b in the ring with single precision and with
// [ReferencePrecision] bits of precision, and returns the [PrecisionStats]
// of the former against the latter.
func (r Ring) PrecisionStats(a, b *Poly) PrecisionStats {
	want := bignum.MulInRing(
		bignum.NewPolynomial(a.Complex64(), ReferencePrecision),
		bignum.NewPolynomial(b.Complex64(), ReferencePrecision),
		r.n, r.negacyclic())
	return GetPrecisionStats(want.Coeffs, r.Mul(a, b))
}

// EvaluatePrecisionStats evaluates p at x with single precision and with
// [ReferencePrecision] bits of precision, and returns the [PrecisionStats]
// of the former against the latter.
func EvaluatePrecisionStats(p *Poly, x Complex) PrecisionStats {
	want := bignum.NewPolynomial(p.Complex64(), ReferencePrecision).
		Evaluate(bignum.ToComplex(x.Complex64(), ReferencePrecision))
	return GetPrecisionStats([]bignum.Complex{*want}, NewPoly(p.Evaluate(x)))
}

// GetPrecisionStats generates a [PrecisionStats] struct from the reference values
// and the coefficients of have. Missing coefficients on either side are treated as zero.
// Non-finite coefficients have a precision of -Inf.
func GetPrecisionStats(want []bignum.Complex, have *Poly) (prec PrecisionStats) {

	coeffs := have.view()

	n := max(len(want), len(coeffs))

	var precReal, precImag, precL2 = make([]float64, n), make([]float64, n), make([]float64, n)
	var errReal, errImag, errL2 = make([]float64, n), make([]float64, n), make([]float64, n)

	w := new(bignum.Complex).SetPrec(ReferencePrecision)
	h := new(bignum.Complex).SetPrec(ReferencePrecision)
	delta := new(bignum.Complex).SetPrec(ReferencePrecision)
	deltaReal := new(big.Float).SetPrec(ReferencePrecision)
	deltaImag := new(big.Float).SetPrec(ReferencePrecision)

	for i := 0; i < n; i++ {

		w[0].SetFloat64(0)
		w[1].SetFloat64(0)
		if i < len(want) {
			w.Set(&want[i])
		}

		var c Complex
		if i < len(coeffs) {
			c = coeffs[i]
		}

		if !isFinite(c.Re) || !isFinite(c.Im) {
			precReal[i], precImag[i], precL2[i] = math.Inf(-1), math.Inf(-1), math.Inf(-1)
			errReal[i], errImag[i], errL2[i] = math.Inf(1), math.Inf(1), math.Inf(1)
			continue
		}

		h[0].SetFloat64(float64(c.Re))
		h[1].SetFloat64(float64(c.Im))

		delta.Sub(h, w)
		deltaReal.Abs(delta.Real())
		deltaImag.Abs(delta.Imag())
		deltaL2 := delta.Abs()

		precReal[i], errReal[i] = log2Precision(deltaReal)
		precImag[i], errImag[i] = log2Precision(deltaImag)
		precL2[i], errL2[i] = log2Precision(deltaL2)
	}

	prec.MinPrec.Real, prec.MaxPrec.Real, prec.AvgPrec.Real, prec.MedPrec.Real, prec.StdPrec.Real = summarize(precReal)
	prec.MinPrec.Imag, prec.MaxPrec.Imag, prec.AvgPrec.Imag, prec.MedPrec.Imag, prec.StdPrec.Imag = summarize(precImag)
	prec.MinPrec.L2, prec.MaxPrec.L2, prec.AvgPrec.L2, prec.MedPrec.L2, prec.StdPrec.L2 = summarize(precL2)

	prec.MinErr.Real, prec.MaxErr.Real, prec.AvgErr.Real, prec.MedErr.Real, prec.StdErr.Real = summarize(errReal)
	prec.MinErr.Imag, prec.MaxErr.Imag, prec.AvgErr.Imag, prec.MedErr.Imag, prec.StdErr.Imag = summarize(errImag)
	prec.MinErr.L2, prec.MaxErr.L2, prec.AvgErr.L2, prec.MedErr.L2, prec.StdErr.L2 = summarize(errL2)

	prec.Coefficients = n

	return
}

func isFinite(f float32) bool {
	return !math.IsNaN(float64(f)) && !math.IsInf(float64(f), 0)
}

// log2Precision returns -log2(delta), capped to [MaxLog2Precision], and delta as a float64.
func log2Precision(delta *big.Float) (prec, abs float64) {

	abs, _ = delta.Float64()

	if delta.Sign() == 0 {
		return MaxLog2Precision, abs
	}

	lg, _ := bignum.Log2(delta).Float64()

	return min(-lg, MaxLog2Precision), abs
}

func summarize(values []float64) (minimum, maximum, mean, median, std float64) {
	minimum = utils.MinSlice(values)
	maximum = utils.MaxSlice(values)
	mean, _ = stats.Mean(values)
	median, _ = stats.Median(values)
	std, _ = stats.StandardDeviation(values)
	return
}
