package ring

import (
	"testing"

	"github.com/Pro7ech/polyring/utils/sampling"
	"github.com/stretchr/testify/require"
)

func TestPoly(t *testing.T) {

	sampler, err := NewSampler(sampling.NewSource([32]byte{}), DefaultSamplerParameters())
	require.NoError(t, err)

	t.Run("NewPoly", func(t *testing.T) {
		p := NewPoly()
		require.Equal(t, 0, p.Degree())
		require.True(t, p.IsZero())

		z := NewZeroPoly(4)
		require.Equal(t, 4, z.Degree())
		require.Equal(t, 5, z.Len())
		require.True(t, z.IsZero())

		coeffs := []Complex{NewComplex(1, 0), NewComplex(2, 0)}
		q := NewPoly(coeffs...)
		coeffs[0] = NewComplex(9, 9)
		require.Equal(t, NewComplex(1, 0), q.At(0))

		require.Panics(t, func() { q.At(2) })
		require.Panics(t, func() { q.At(-1) })
	})

	t.Run("Coeffs/Copy", func(t *testing.T) {
		p := ints(1, 2, 3)
		c := p.Coeffs()
		c[0] = NewComplex(7, 0)
		require.True(t, ints(1, 2, 3).Equal(p))

		q := NewZeroPoly(0)
		q.Copy(p)
		require.True(t, p.Equal(q))
	})

	t.Run("Trim", func(t *testing.T) {
		p := ints(1, 2, 0, 0)
		require.Equal(t, 3, p.Degree())
		require.Equal(t, 1, p.Trim().Degree())
		require.Equal(t, 0, NewZeroPoly(5).Trim().Degree())
		require.Equal(t, 3, p.Degree())
	})

	t.Run("Release", func(t *testing.T) {
		p := ints(1, 2, 3)
		p.Release()
		p.Release()
		require.True(t, p.IsZero())
		require.Equal(t, 0, p.Degree())

		var nilPoly *Poly
		require.NotPanics(t, func() { nilPoly.Release() })
		require.Equal(t, "0", nilPoly.String())
	})

	t.Run("String", func(t *testing.T) {
		require.Equal(t, "0", NewZeroPoly(3).String())
		p := NewPoly(NewComplex(1, 2), Complex{}, NewComplex(-3, 0), NewComplex(0, 1))
		require.Equal(t, "(1i)X^3 + (-3)X^2 + (1 + 2i)", p.String())
		require.Equal(t, "(2)X + (1)", ints(1, 2).String())
	})

	t.Run("Add", func(t *testing.T) {
		have := ints(1, 2, 3).Add(ints(4, 5))
		require.True(t, ints(5, 7, 3).Equal(have))

		// no trimming on cancellation
		have = ints(1, 2).Add(ints(0, -2))
		require.Equal(t, 1, have.Degree())
		require.True(t, ints(1, 0).Equal(have))

		for i := 0; i < 32; i++ {
			a, b := sampler.ReadNew(), sampler.ReadNew()
			sum := a.Add(b)
			require.Equal(t, max(a.Degree(), b.Degree()), sum.Degree())
			require.True(t, sum.Equal(b.Add(a)))
		}
	})

	t.Run("Sub/Neg/Scale", func(t *testing.T) {
		require.True(t, ints(-3, -3, 3).Equal(ints(1, 2, 3).Sub(ints(4, 5))))
		require.True(t, ints(-1, 2).Equal(ints(1, -2).Neg()))
		require.True(t, NewPoly(NewComplex(0, 2), NewComplex(0, -4)).Equal(ints(2, -4).Scale(NewComplex(0, 1))))
	})

	t.Run("Mul", func(t *testing.T) {
		require.True(t, ints(3, 10, 8).Equal(ints(1, 2).Mul(ints(3, 4))))

		for i := 0; i < 32; i++ {
			a, b := sampler.ReadNew(), sampler.ReadNew()
			prod := a.Mul(b)
			require.Equal(t, a.Degree()+b.Degree(), prod.Degree())
			require.Equal(t, a.Evaluate(NewComplex(0, 0)).Mul(b.Evaluate(NewComplex(0, 0))), prod.At(0))
		}
	})

	t.Run("Evaluate", func(t *testing.T) {
		require.Equal(t, NewComplex(1, 2), ints(1, 2).Evaluate(NewComplex(0, 1)))
		require.Equal(t, NewComplex(17, 0), ints(1, 2, 3).Evaluate(NewComplex(2, 0)))
	})

	t.Run("DivMod", func(t *testing.T) {

		q, r, err := ints(-1, 0, 1).DivMod(ints(-1, 1))
		require.NoError(t, err)
		require.True(t, ints(1, 1).Equal(q))
		require.True(t, r.IsZero())

		num, den := ints(5, 0, 3, 2, 1), ints(1, 0, 1, 0)
		q, r, err = num.DivMod(den)
		require.NoError(t, err)
		require.Less(t, r.Degree(), den.Trim().Degree())
		require.True(t, num.Equal(q.Mul(den).Add(r).Trim()))

		q, r, err = ints(1, 2).DivMod(ints(1, 2, 3))
		require.NoError(t, err)
		require.True(t, q.IsZero())
		require.True(t, ints(1, 2).Equal(r))

		_, _, err = ints(1, 2).DivMod(NewZeroPoly(3))
		require.ErrorIs(t, err, ErrDivisionByZero)
	})

	t.Run("NonAliasing", func(t *testing.T) {
		a, b := ints(1, 2, 3), ints(4, 5)
		for _, c := range []*Poly{a.Add(b), a.Mul(b), a.Sub(b), a.Neg(), a.Clone(), a.Trim()} {
			c.Release()
		}
		require.True(t, ints(1, 2, 3).Equal(a))
		require.True(t, ints(4, 5).Equal(b))

		// The result of an operation can be reused as an operand.
		c := a.Add(b)
		c = c.Add(c)
		require.True(t, ints(10, 14, 6).Equal(c))
	})
}
