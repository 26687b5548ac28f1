package ring

import (
	"math"
	"testing"

	"github.com/Pro7ech/polyring/utils/sampling"
	"github.com/stretchr/testify/require"
)

// intMatrix returns a height x width matrix whose cells are the given integer polynomials.
func intMatrix(t *testing.T, width, height int, cells ...*Poly) *Matrix {
	m, err := NewMatrixFromPolys(cells, width, height)
	require.NoError(t, err)
	return m
}

func TestMatrix(t *testing.T) {

	testNewMatrix(t)
	testMatrixFree(t)

	for _, pl := range testParameters {

		tc, err := genTestContext(pl)
		require.NoError(t, err)

		testMatrixRing(tc, t)
	}
}

func testNewMatrix(t *testing.T) {

	t.Run("NewMatrix", func(t *testing.T) {
		p := ints(1, 2)
		m, err := NewMatrix(p, 3, 2)
		require.NoError(t, err)

		w, h := m.Dims()
		require.Equal(t, 3, w)
		require.Equal(t, 2, h)

		for i := 0; i < h; i++ {
			for j := 0; j < w; j++ {
				require.True(t, p.Equal(m.At(i, j)))
			}
		}

		// cells are independent copies
		m.At(0, 0).Release()
		require.True(t, p.Equal(m.At(0, 1)))
		require.True(t, ints(1, 2).Equal(p))

		m.Set(1, 2, ints(7))
		require.True(t, ints(7).Equal(m.At(1, 2)))
		require.Panics(t, func() { m.At(2, 0) })
		require.Panics(t, func() { m.At(0, 3) })
	})

	t.Run("NewMatrix/Empty", func(t *testing.T) {
		m, err := NewMatrix(ints(1), 0, 4)
		require.NoError(t, err)
		require.Equal(t, 0, m.Width())
		require.Equal(t, 4, m.Height())
		require.Equal(t, "[]\n[]\n[]\n[]", m.String())
	})

	t.Run("NewMatrix/Errors", func(t *testing.T) {
		_, err := NewMatrix(ints(1), -1, 2)
		require.ErrorIs(t, err, ErrDimensionMismatch)

		_, err = NewMatrix(ints(1), math.MaxInt, 2)
		require.ErrorIs(t, err, ErrAllocation)

		_, err = NewMatrix(ints(1), 1<<30, 1<<30)
		require.ErrorIs(t, err, ErrAllocation)

		_, err = NewMatrixFromPolys([]*Poly{ints(1)}, 2, 1)
		require.ErrorIs(t, err, ErrDimensionMismatch)
	})

	t.Run("Matrix/Release", func(t *testing.T) {
		m, err := NewMatrix(ints(1, 2), 2, 2)
		require.NoError(t, err)
		m.Release()
		m.Release()
		w, h := m.Dims()
		require.Zero(t, w)
		require.Zero(t, h)

		var nilMatrix *Matrix
		require.NotPanics(t, func() { nilMatrix.Release() })
	})

	t.Run("Matrix/Clone/Copy", func(t *testing.T) {
		m := intMatrix(t, 2, 1, ints(1), ints(2, 3))
		c := m.Clone()
		require.True(t, m.Equal(c))
		c.Set(0, 0, ints(5))
		require.False(t, m.Equal(c))

		d := new(Matrix)
		d.Copy(m)
		require.True(t, m.Equal(d))
	})

	t.Run("Matrix/String", func(t *testing.T) {
		m := intMatrix(t, 2, 2, ints(2, 1), NewZeroPoly(0), NewZeroPoly(1), ints(3))
		require.Equal(t, "[(1)X + (2), 0]\n[0, (3)]", m.String())
	})
}

func testMatrixFree(t *testing.T) {

	t.Run("Matrix/Add", func(t *testing.T) {
		a := intMatrix(t, 2, 1, ints(1, 2), ints(3))
		b := intMatrix(t, 2, 1, ints(4), ints(5, 6))
		have, err := a.Add(b)
		require.NoError(t, err)
		require.True(t, intMatrix(t, 2, 1, ints(5, 2), ints(8, 6)).Equal(have))
	})

	t.Run("Matrix/Add/DimensionMismatch", func(t *testing.T) {
		a, err := NewMatrix(ints(1), 3, 2)
		require.NoError(t, err)
		b, err := NewMatrix(ints(1), 2, 3)
		require.NoError(t, err)

		_, err = a.Add(b)
		require.ErrorIs(t, err, ErrDimensionMismatch)

		_, err = a.AddInRing(b, 4)
		require.ErrorIs(t, err, ErrDimensionMismatch)

		// dimensions are checked before the ring degree
		_, err = a.AddInRing(b, 0)
		require.ErrorIs(t, err, ErrDimensionMismatch)

		_, err = a.AddInRing(a, 0)
		require.ErrorIs(t, err, ErrInvalidRingDegree)
	})

	t.Run("Matrix/Mul/1x1", func(t *testing.T) {
		a := intMatrix(t, 1, 1, ints(1))
		have, err := a.Mul(a)
		require.NoError(t, err)
		require.True(t, intMatrix(t, 1, 1, ints(1)).Equal(have))
	})

	t.Run("Matrix/Mul", func(t *testing.T) {
		// [1  X] * [1]   [1 + X^2]
		//          [X] = [       ]
		a := intMatrix(t, 2, 1, ints(1), ints(0, 1))
		b := intMatrix(t, 1, 2, ints(1), ints(0, 1))

		have, err := a.Mul(b)
		require.NoError(t, err)
		require.True(t, intMatrix(t, 1, 1, ints(1, 0, 1)).Equal(have))

		have, err = b.Mul(a)
		require.NoError(t, err)
		w, h := have.Dims()
		require.Equal(t, 2, w)
		require.Equal(t, 2, h)
		require.True(t, intMatrix(t, 2, 2, ints(1), ints(0, 1), ints(0, 1), ints(0, 0, 1)).Equal(have))

		have, err = a.MulInRing(b, 2)
		require.NoError(t, err)
		require.True(t, intMatrix(t, 1, 1, ints(2, 0)).Equal(have))
	})

	t.Run("Matrix/Mul/DimensionMismatch", func(t *testing.T) {
		a, err := NewMatrix(ints(1), 3, 2)
		require.NoError(t, err)

		_, err = a.Mul(a)
		require.ErrorIs(t, err, ErrDimensionMismatch)

		_, err = a.MulInRing(a, 0)
		require.ErrorIs(t, err, ErrDimensionMismatch)

		b, err := NewMatrix(ints(1), 2, 3)
		require.NoError(t, err)

		_, err = a.MulInRing(b, -1)
		require.ErrorIs(t, err, ErrInvalidRingDegree)
	})

	t.Run("Matrix/MulInRing/LargeRingDegree", func(t *testing.T) {
		a := intMatrix(t, 2, 1, ints(1, 2), ints(0, 0, 1))
		b := intMatrix(t, 1, 2, ints(3, 4), ints(5))

		for _, N := range []int{math.MaxInt32, math.MaxInt} {

			have, err := a.MulInRing(b, N)
			require.NoError(t, err)

			want, err := ints(1, 2).MulInRing(ints(3, 4), N)
			require.NoError(t, err)
			cell, err := ints(0, 0, 1).MulInRing(ints(5), N)
			require.NoError(t, err)
			want, err = want.AddInRing(cell, N)
			require.NoError(t, err)

			require.True(t, want.Equal(have.At(0, 0)), have.String())

			r, err := NewRingFromType(N, Negacyclic)
			require.NoError(t, err)
			pow, err := r.PowMatrix(intMatrix(t, 1, 1, ints(1, 1)), 3)
			require.NoError(t, err)
			require.True(t, ints(1, 3, 3, 1).Equal(pow.At(0, 0)))
		}
	})

	t.Run("Matrix/Nil", func(t *testing.T) {
		var m *Matrix
		a := intMatrix(t, 1, 1, ints(1))

		require.NotPanics(t, func() {
			_, err := m.Add(m)
			require.ErrorIs(t, err, ErrDimensionMismatch)
			_, err = m.Mul(m)
			require.ErrorIs(t, err, ErrDimensionMismatch)
			_, err = a.Add(m)
			require.ErrorIs(t, err, ErrDimensionMismatch)
			_, err = m.AddInRing(m, 2)
			require.ErrorIs(t, err, ErrDimensionMismatch)
			_, err = m.MulInRing(a, 2)
			require.ErrorIs(t, err, ErrDimensionMismatch)
		})

		r, err := NewRing(2)
		require.NoError(t, err)

		require.NotPanics(t, func() {
			_, err := r.AddMatrix(m, m)
			require.ErrorIs(t, err, ErrDimensionMismatch)
			_, err = r.MulMatrix(a, m)
			require.ErrorIs(t, err, ErrDimensionMismatch)
			_, err = r.PowMatrix(m, 2)
			require.ErrorIs(t, err, ErrDimensionMismatch)
		})
	})

	t.Run("Matrix/Mul/EmptyInnerDimension", func(t *testing.T) {
		a, err := NewMatrix(ints(1), 0, 2)
		require.NoError(t, err)
		b, err := NewMatrix(ints(1), 3, 0)
		require.NoError(t, err)

		have, err := a.Mul(b)
		require.NoError(t, err)

		w, h := have.Dims()
		require.Equal(t, 3, w)
		require.Equal(t, 2, h)

		zero, err := NewMatrix(NewZeroPoly(0), 3, 2)
		require.NoError(t, err)
		require.True(t, zero.Equal(have))
	})
}

func testMatrixRing(tc *testContext, t *testing.T) {

	r := tc.ring

	sequential, err := NewRingFromType(r.N(), r.Reduction())
	require.NoError(t, err)

	t.Run(testString("AddMatrix", r), func(t *testing.T) {
		a, err := tc.sampler.ReadMatrixNew(3, 2)
		require.NoError(t, err)
		b, err := tc.sampler.ReadMatrixNew(3, 2)
		require.NoError(t, err)

		have, err := r.AddMatrix(a, b)
		require.NoError(t, err)

		for i := 0; i < 2; i++ {
			for j := 0; j < 3; j++ {
				require.True(t, r.Add(a.At(i, j), b.At(i, j)).Equal(have.At(i, j)))
				require.LessOrEqual(t, have.At(i, j).Len(), r.N())
			}
		}
	})

	t.Run(testString("MulMatrix", r), func(t *testing.T) {
		a, err := tc.sampler.ReadMatrixNew(3, 4)
		require.NoError(t, err)
		b, err := tc.sampler.ReadMatrixNew(5, 3)
		require.NoError(t, err)

		have, err := r.MulMatrix(a, b)
		require.NoError(t, err)

		w, h := have.Dims()
		require.Equal(t, 5, w)
		require.Equal(t, 4, h)

		for i := 0; i < h; i++ {
			for j := 0; j < w; j++ {
				want := NewZeroPoly(0)
				for k := 0; k < a.Width(); k++ {
					want = r.Add(want, r.Mul(a.At(i, k), b.At(k, j)))
				}
				require.True(t, want.Equal(have.At(i, j)), "(%d, %d)", i, j)
				require.LessOrEqual(t, have.At(i, j).Len(), r.N())
			}
		}

		// the number of workers does not change the result
		seq, err := sequential.MulMatrix(a, b)
		require.NoError(t, err)
		require.True(t, seq.Equal(have))
	})

	t.Run(testString("MulMatrix/NonAliasing", r), func(t *testing.T) {
		a, err := tc.sampler.ReadMatrixNew(2, 2)
		require.NoError(t, err)
		ac := a.Clone()

		have, err := r.MulMatrix(a, a)
		require.NoError(t, err)
		have.Release()
		require.True(t, ac.Equal(a))
	})

	t.Run(testString("PowMatrix", r), func(t *testing.T) {
		m := intMatrix(t, 2, 2, ints(1, 1), ints(0, 1), ints(1), ints(-1, 0, 1))

		id, err := r.PowMatrix(m, 0)
		require.NoError(t, err)
		want, err := IdentityMatrix(2)
		require.NoError(t, err)
		require.True(t, want.Equal(id))

		m2, err := r.MulMatrix(m, m)
		require.NoError(t, err)
		m4, err := r.MulMatrix(m2, m2)
		require.NoError(t, err)
		m5, err := r.MulMatrix(m4, m)
		require.NoError(t, err)

		have, err := r.PowMatrix(m, 5)
		require.NoError(t, err)

		for i := 0; i < 2; i++ {
			for j := 0; j < 2; j++ {
				require.True(t, m5.At(i, j).Trim().Equal(have.At(i, j).Trim()))
			}
		}

		_, err = r.PowMatrix(m, -1)
		require.ErrorIs(t, err, ErrInvalidParameters)

		rect, err := NewMatrix(ints(1), 2, 1)
		require.NoError(t, err)
		_, err = r.PowMatrix(rect, 2)
		require.ErrorIs(t, err, ErrDimensionMismatch)
	})
}

func TestReadMatrixNew(t *testing.T) {

	sampler, err := NewSampler(sampling.NewSource([32]byte{1}), DefaultSamplerParameters())
	require.NoError(t, err)

	a, err := sampler.ReadMatrixNew(4, 3)
	require.NoError(t, err)
	b, err := sampler.ReadMatrixNew(4, 3)
	require.NoError(t, err)
	require.False(t, a.Equal(b))

	sampler.Reset()
	c, err := sampler.ReadMatrixNew(4, 3)
	require.NoError(t, err)
	require.True(t, a.Equal(c))

	_, err = sampler.ReadMatrixNew(-1, 3)
	require.ErrorIs(t, err, ErrDimensionMismatch)
}
