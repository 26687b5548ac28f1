package ring

import (
	"fmt"

	"github.com/Pro7ech/polyring/utils/concurrency"
	"github.com/Pro7ech/polyring/utils/structs"
)

func checkNotNil(a, b *Matrix) error {
	if a == nil || b == nil {
		return fmt.Errorf("%w: nil matrix operand", ErrDimensionMismatch)
	}
	return nil
}

func checkSameDims(a, b *Matrix) error {
	if err := checkNotNil(a, b); err != nil {
		return err
	}
	if a.Width() != b.Width() || a.Height() != b.Height() {
		return fmt.Errorf("%w: %d x %d and %d x %d", ErrDimensionMismatch, a.Height(), a.Width(), b.Height(), b.Width())
	}
	return nil
}

func checkMulDims(a, b *Matrix) error {
	if err := checkNotNil(a, b); err != nil {
		return err
	}
	if a.Width() != b.Height() {
		return fmt.Errorf("%w: a.Width()=%d != b.Height()=%d", ErrDimensionMismatch, a.Width(), b.Height())
	}
	return nil
}

// Add returns m + other, computed cell by cell.
// Returns an error wrapping [ErrDimensionMismatch] if the dimensions differ
// or if an operand is nil.
func (m *Matrix) Add(other *Matrix) (*Matrix, error) {

	if err := checkSameDims(m, other); err != nil {
		return nil, fmt.Errorf("cannot Add: %w", err)
	}

	out := &Matrix{width: m.width, height: m.height, cells: make(structs.Vector[Poly], len(m.cells))}
	for i := range out.cells {
		out.cells[i] = *m.cells[i].Add(&other.cells[i])
	}

	return out, nil
}

// Mul returns the matrix product m * other, of dimensions m.Height() x other.Width(),
// whose cell (row, col) is the sum over k of m[row, k] * other[k, col].
// If the inner dimension is zero, every cell is the zero polynomial.
// Returns an error wrapping [ErrDimensionMismatch] if m.Width() != other.Height()
// or if an operand is nil.
func (m *Matrix) Mul(other *Matrix) (out *Matrix, err error) {

	if err = checkMulDims(m, other); err != nil {
		return nil, fmt.Errorf("cannot Mul: %w", err)
	}

	if out, err = NewMatrix(nil, other.width, m.height); err != nil {
		return nil, fmt.Errorf("cannot Mul: %w", err)
	}

	for i := 0; i < m.height; i++ {
		for j := 0; j < other.width; j++ {
			acc := NewZeroPoly(0)
			for k := 0; k < m.width; k++ {
				acc = acc.Add(m.At(i, k).Mul(other.At(k, j)))
			}
			out.cells[i*out.width+j] = *acc
		}
	}

	return
}

// AddInRing returns m + other with every cell reduced mod X^ringDegree - 1.
// The dimensions are checked first: returns an error wrapping [ErrDimensionMismatch]
// if they differ, else an error wrapping [ErrInvalidRingDegree] if ringDegree <= 0.
func (m *Matrix) AddInRing(other *Matrix, ringDegree int) (*Matrix, error) {

	if err := checkSameDims(m, other); err != nil {
		return nil, fmt.Errorf("cannot AddInRing: %w", err)
	}

	r, err := NewRing(ringDegree)
	if err != nil {
		return nil, fmt.Errorf("cannot AddInRing: %w", err)
	}

	return r.AddMatrix(m, other)
}

// MulInRing returns m * other with every product and sum reduced mod X^ringDegree - 1.
// The dimensions are checked first: returns an error wrapping [ErrDimensionMismatch]
// if m.Width() != other.Height(), else an error wrapping [ErrInvalidRingDegree] if ringDegree <= 0.
func (m *Matrix) MulInRing(other *Matrix, ringDegree int) (*Matrix, error) {

	if err := checkMulDims(m, other); err != nil {
		return nil, fmt.Errorf("cannot MulInRing: %w", err)
	}

	r, err := NewRing(ringDegree)
	if err != nil {
		return nil, fmt.Errorf("cannot MulInRing: %w", err)
	}

	return r.MulMatrix(m, other)
}

// AddMatrix returns a + b with every cell reduced mod X^N -/+ 1.
// Returns an error wrapping [ErrDimensionMismatch] if the dimensions differ.
func (r Ring) AddMatrix(a, b *Matrix) (out *Matrix, err error) {

	if err = checkSameDims(a, b); err != nil {
		return nil, fmt.Errorf("cannot AddMatrix: %w", err)
	}

	out = &Matrix{width: a.width, height: a.height, cells: make(structs.Vector[Poly], len(a.cells))}

	if err = runCells(r.workers, len(out.cells), func() struct{} { return struct{}{} }, func(i int, _ struct{}) error {
		out.cells[i] = *r.Add(&a.cells[i], &b.cells[i])
		return nil
	}); err != nil {
		return nil, fmt.Errorf("cannot AddMatrix: %w", err)
	}

	return
}

// mulScratch is the per-worker scratch space of [Ring.MulMatrix].
type mulScratch struct {
	acc  []Complex
	prod []Complex
}

// MulMatrix returns the matrix product a * b, of dimensions a.Height() x b.Width(),
// whose cell (row, col) is the sum in the ring over k of a[row, k] * b[k, col].
// If the inner dimension is zero, every cell is the zero polynomial.
// Returns an error wrapping [ErrDimensionMismatch] if a.Width() != b.Height().
//
// If the ring has more than one worker, the cells are computed concurrently.
// The result does not depend on the number of workers.
func (r Ring) MulMatrix(a, b *Matrix) (out *Matrix, err error) {

	if err = checkMulDims(a, b); err != nil {
		return nil, fmt.Errorf("cannot MulMatrix: %w", err)
	}

	if out, err = NewMatrix(nil, b.width, a.height); err != nil {
		return nil, fmt.Errorf("cannot MulMatrix: %w", err)
	}

	N, negacyclic := r.n, r.negacyclic()

	// No cell of the product is longer than size.
	size := min(N, maxCellLen(a)+maxCellLen(b)-1)

	newScratch := func() *mulScratch {
		return &mulScratch{acc: make([]Complex, size), prod: make([]Complex, size)}
	}

	if err = runCells(r.workers, len(out.cells), newScratch, func(i int, s *mulScratch) error {

		row, col := i/out.width, i%out.width

		clear(s.acc)
		length := 1

		for k := 0; k < a.width; k++ {
			x, y := a.At(row, k).view(), b.At(k, col).view()
			n := min(len(x)+len(y)-1, N)
			clear(s.prod[:n])
			convolveThenAdd(x, y, s.prod, N, negacyclic)
			AddVec(s.acc[:n], s.prod[:n], s.acc[:n])
			length = max(length, n)
		}

		out.cells[i] = *NewPoly(s.acc[:length]...)

		return nil

	}); err != nil {
		return nil, fmt.Errorf("cannot MulMatrix: %w", err)
	}

	return
}

// maxCellLen returns the largest Len() among the cells of m, or 1 if m has no cell.
func maxCellLen(m *Matrix) (n int) {
	n = 1
	for i := range m.cells {
		n = max(n, m.cells[i].Len())
	}
	return
}

// IdentityMatrix returns the size x size identity matrix:
// the constant 1 on the diagonal and the zero polynomial elsewhere.
func IdentityMatrix(size int) (m *Matrix, err error) {
	if m, err = NewMatrix(nil, size, size); err != nil {
		return nil, fmt.Errorf("cannot IdentityMatrix: %w", err)
	}
	for i := 0; i < size; i++ {
		m.cells[i*size+i] = *NewPoly(NewComplex(1, 0))
	}
	return
}

// PowMatrix returns m^e in the ring by square-and-multiply.
// m^0 is the identity matrix.
// Returns an error wrapping [ErrDimensionMismatch] if m is nil or not square
// and an error wrapping [ErrInvalidParameters] if e < 0.
func (r Ring) PowMatrix(m *Matrix, e int) (out *Matrix, err error) {

	if m == nil {
		return nil, fmt.Errorf("cannot PowMatrix: %w: nil matrix operand", ErrDimensionMismatch)
	}

	if m.Width() != m.Height() {
		return nil, fmt.Errorf("cannot PowMatrix: %w: matrix is %d x %d", ErrDimensionMismatch, m.Height(), m.Width())
	}

	if e < 0 {
		return nil, fmt.Errorf("cannot PowMatrix: %w: negative exponent %d", ErrInvalidParameters, e)
	}

	if out, err = IdentityMatrix(m.Width()); err != nil {
		return nil, fmt.Errorf("cannot PowMatrix: %w", err)
	}

	base := m
	for e > 0 {

		if e&1 == 1 {
			if out, err = r.MulMatrix(out, base); err != nil {
				return nil, fmt.Errorf("cannot PowMatrix: %w", err)
			}
		}

		if e >>= 1; e > 0 {
			if base, err = r.MulMatrix(base, base); err != nil {
				return nil, fmt.Errorf("cannot PowMatrix: %w", err)
			}
		}
	}

	return
}

// runCells calls f(i, resource) for every i in [0, cells).
// If workers > 1, the calls are distributed over up to workers goroutines,
// each owning one resource created with newResource.
// Returns the first error returned by f.
func runCells[T any](workers, cells int, newResource func() T, f func(i int, resource T) error) (err error) {

	if workers <= 1 || cells <= 1 {
		resource := newResource()
		for i := 0; i < cells; i++ {
			if err = f(i, resource); err != nil {
				return
			}
		}
		return
	}

	resources := make([]T, min(workers, cells))
	for i := range resources {
		resources[i] = newResource()
	}

	rm := concurrency.NewResourceManager(resources)

	for i := 0; i < cells; i++ {
		rm.Run(func(resource T) error {
			return f(i, resource)
		})
	}

	return rm.Wait()
}
