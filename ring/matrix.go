package ring

import (
	"fmt"
	"math"
	"strings"

	"github.com/Pro7ech/polyring/utils/structs"
)

// Matrix is a matrix of [Poly] with Height rows and Width columns,
// stored in row-major order: the cell (row, col) is at index row*Width + col.
// Every cell is independently owned by the matrix.
type Matrix struct {
	width, height int
	cells         structs.Vector[Poly]
}

// NewMatrix returns a new [Matrix] of the given dimensions
// whose cells are all independent copies of template.
// A nil template is treated as the zero polynomial.
//
// Returns an error wrapping [ErrDimensionMismatch] if a dimension is negative
// and an error wrapping [ErrAllocation] if the cells cannot be allocated.
func NewMatrix(template *Poly, width, height int) (m *Matrix, err error) {

	var cells structs.Vector[Poly]
	if cells, err = allocateCells(width, height); err != nil {
		return nil, fmt.Errorf("cannot NewMatrix: %w", err)
	}

	for i := range cells {
		cells[i] = *template.Clone()
	}

	return &Matrix{width: width, height: height, cells: cells}, nil
}

// NewMatrixFromPolys returns a new [Matrix] of the given dimensions
// whose cells are copies of the given row-major polynomials.
// Returns an error wrapping [ErrDimensionMismatch] if len(polys) != width * height.
func NewMatrixFromPolys(polys []*Poly, width, height int) (m *Matrix, err error) {

	var cells structs.Vector[Poly]
	if cells, err = allocateCells(width, height); err != nil {
		return nil, fmt.Errorf("cannot NewMatrixFromPolys: %w", err)
	}

	if len(polys) != len(cells) {
		return nil, fmt.Errorf("cannot NewMatrixFromPolys: %w: len(polys)=%d != %d x %d", ErrDimensionMismatch, len(polys), width, height)
	}

	for i := range cells {
		cells[i] = *polys[i].Clone()
	}

	return &Matrix{width: width, height: height, cells: cells}, nil
}

// allocateCells allocates width * height zero-valued cells.
func allocateCells(width, height int) (cells structs.Vector[Poly], err error) {

	if width < 0 || height < 0 {
		return nil, fmt.Errorf("%w: negative dimensions %d x %d", ErrDimensionMismatch, width, height)
	}

	if width != 0 && height > math.MaxInt/width {
		return nil, fmt.Errorf("%w: %d x %d cells overflows", ErrAllocation, width, height)
	}

	defer func() {
		if r := recover(); r != nil {
			cells, err = nil, fmt.Errorf("%w: %d x %d cells: %v", ErrAllocation, width, height, r)
		}
	}()

	return make(structs.Vector[Poly], width*height), nil
}

// Width returns the number of columns of the receiver.
func (m *Matrix) Width() int {
	if m == nil {
		return 0
	}
	return m.width
}

// Height returns the number of rows of the receiver.
func (m *Matrix) Height() int {
	if m == nil {
		return 0
	}
	return m.height
}

// Dims returns the width and height of the receiver.
func (m *Matrix) Dims() (width, height int) {
	return m.Width(), m.Height()
}

func (m *Matrix) index(row, col int) int {
	if row < 0 || row >= m.height || col < 0 || col >= m.width {
		panic(fmt.Errorf("invalid index: (%d, %d) out of %d x %d", row, col, m.height, m.width))
	}
	return row*m.width + col
}

// At returns the cell (row, col) of the receiver.
// The returned [Poly] shares the memory of the receiver.
// The method panics if the index is out of range.
func (m *Matrix) At(row, col int) *Poly {
	return &m.cells[m.index(row, col)]
}

// Set copies p on the cell (row, col) of the receiver.
// The method panics if the index is out of range.
func (m *Matrix) Set(row, col int, p *Poly) {
	m.cells[m.index(row, col)] = *p.Clone()
}

// Clone returns a deep copy of the receiver.
func (m *Matrix) Clone() *Matrix {
	return &Matrix{
		width:  m.width,
		height: m.height,
		cells:  m.cells.Clone(),
	}
}

// Copy copies other on the receiver, resizing the receiver if necessary.
func (m *Matrix) Copy(other *Matrix) {
	if m == other {
		return
	}
	if len(m.cells) != len(other.cells) {
		m.cells = make(structs.Vector[Poly], len(other.cells))
	}
	m.width, m.height = other.width, other.height
	m.cells.Copy(other.cells)
}

// Equal returns true if the receiver and other have the same dimensions and cells.
func (m *Matrix) Equal(other *Matrix) bool {
	return m.Width() == other.Width() && m.Height() == other.Height() && m.cells.Equal(other.cells)
}

// Release drops every cell of the receiver and sets its dimensions to zero.
// Release is idempotent and can be called on a nil receiver.
func (m *Matrix) Release() {
	if m == nil {
		return
	}
	for i := range m.cells {
		m.cells[i].Release()
	}
	m.cells = nil
	m.width, m.height = 0, 0
}

// String returns the receiver formatted one row per line, e.g.
//
//	[(1)X + (2), 0]
//	[0, (3)]
func (m *Matrix) String() string {
	var sb strings.Builder
	for i := 0; i < m.Height(); i++ {
		if i != 0 {
			sb.WriteString("\n")
		}
		sb.WriteString("[")
		for j := 0; j < m.Width(); j++ {
			if j != 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(m.At(i, j).String())
		}
		sb.WriteString("]")
	}
	return sb.String()
}
