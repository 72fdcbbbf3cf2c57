package tensor2d

import (
	"errors"
	"fmt"

	"github.com/chewxy/math32"
	"golang.org/x/exp/slices"
	"gonum.org/v1/gonum/blas/blas32"
)

var (
	ErrNotSquare = errors.New("tensor2d: matrix is not square")
	ErrBadStride = errors.New("tensor2d: stride shorter than row")
	ErrRagged    = errors.New("tensor2d: rows differ in length")
)

func NewZeros(rows, cols int) blas32.General {
	return blas32.General{
		Rows:   rows,
		Cols:   cols,
		Stride: cols,
		Data:   make([]float32, rows*cols),
	}
}

func NewZerosLike(gen blas32.General) blas32.General {
	return NewZeros(gen.Rows, gen.Cols)
}

// FromRows packs rows into a row-major General with Stride == Cols.
func FromRows(rows [][]float32) (blas32.General, error) {
	if len(rows) == 0 {
		return NewZeros(0, 0), nil
	}
	cols := len(rows[0])
	gen := NewZeros(len(rows), cols)
	for i, row := range rows {
		if len(row) != cols {
			return blas32.General{}, fmt.Errorf("row %d has %d columns, want %d: %w", i, len(row), cols, ErrRagged)
		}
		copy(gen.Data[i*cols:], row)
	}
	return gen, nil
}

func ToRows(gen blas32.General) [][]float32 {
	rows := make([][]float32, gen.Rows)
	for i := range rows {
		offset := i * gen.Stride
		rows[i] = slices.Clone(gen.Data[offset : offset+gen.Cols])
	}
	return rows
}

func N(gen blas32.General) int {
	return gen.Rows * gen.Cols
}

// Clone returns a packed copy of gen. Padding between rows of a strided view
// is not carried over.
func Clone(gen blas32.General) blas32.General {
	if gen.Stride == gen.Cols {
		return blas32.General{
			Rows:   gen.Rows,
			Cols:   gen.Cols,
			Stride: gen.Stride,
			Data:   slices.Clone(gen.Data[:N(gen)]),
		}
	}
	y := NewZerosLike(gen)
	for i := 0; i < gen.Rows; i++ {
		copy(y.Data[i*y.Stride:(i+1)*y.Stride], gen.Data[i*gen.Stride:i*gen.Stride+gen.Cols])
	}
	return y
}

func At(gen blas32.General, row, col int) int {
	return row*gen.Stride + col
}

func Transpose(gen blas32.General) blas32.General {
	t := NewZeros(gen.Cols, gen.Rows)
	for i := 0; i < t.Rows; i++ {
		for j := 0; j < t.Cols; j++ {
			t.Data[At(t, i, j)] = gen.Data[At(gen, j, i)]
		}
	}
	return t
}

func check(gen blas32.General) error {
	if gen.Stride < gen.Cols {
		return fmt.Errorf("stride %d, cols %d: %w", gen.Stride, gen.Cols, ErrBadStride)
	}
	return nil
}

func checkSquare(gen blas32.General) error {
	if err := check(gen); err != nil {
		return err
	}
	if gen.Rows != gen.Cols {
		return fmt.Errorf("%d×%d: %w", gen.Rows, gen.Cols, ErrNotSquare)
	}
	return nil
}

// TransposeInPlace transposes a square matrix by swapping, for each i, the
// row tail right of the diagonal with the column tail below it.
func TransposeInPlace(gen blas32.General) error {
	if err := checkSquare(gen); err != nil {
		return err
	}
	n, s := gen.Rows, gen.Stride
	for i := 0; i < n-1; i++ {
		k := n - 1 - i
		row := blas32.Vector{N: k, Inc: 1, Data: gen.Data[i*s+i+1:]}
		col := blas32.Vector{N: k, Inc: s, Data: gen.Data[(i+1)*s+i:]}
		blas32.Swap(row, col)
	}
	return nil
}

// ReverseRows reverses each row by swapping its first half with its second
// half walked backwards.
func ReverseRows(gen blas32.General) error {
	if err := check(gen); err != nil {
		return err
	}
	reverseRows(gen)
	return nil
}

func reverseRows(gen blas32.General) {
	h := gen.Cols / 2
	if h == 0 {
		return
	}
	for i := 0; i < gen.Rows; i++ {
		offset := i * gen.Stride
		head := blas32.Vector{N: h, Inc: 1, Data: gen.Data[offset : offset+h]}
		tail := blas32.Vector{N: h, Inc: -1, Data: gen.Data[offset+gen.Cols-h : offset+gen.Cols]}
		blas32.Swap(head, tail)
	}
}

// Rotate90InPlace turns a square matrix 90 degrees clockwise without
// allocating.
func Rotate90InPlace(gen blas32.General) error {
	if err := TransposeInPlace(gen); err != nil {
		return err
	}
	reverseRows(gen)
	return nil
}

// Rotate90 returns gen turned 90 degrees clockwise. Rectangular input is
// allowed; an r×c matrix yields a c×r one.
func Rotate90(gen blas32.General) blas32.General {
	t := Transpose(gen)
	reverseRows(t)
	return t
}

func ApproxEqual(a, b blas32.General, tol float32) bool {
	if a.Rows != b.Rows || a.Cols != b.Cols {
		return false
	}
	for i := 0; i < a.Rows; i++ {
		for j := 0; j < a.Cols; j++ {
			if math32.Abs(a.Data[At(a, i, j)]-b.Data[At(b, i, j)]) > tol {
				return false
			}
		}
	}
	return true
}
