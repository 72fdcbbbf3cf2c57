package matrix2d

import (
	"fmt"

	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/mat"
)

// RotateDense turns a square mat.Dense 90 degrees clockwise in place. It works
// on the raw backing storage, so views with Stride > Cols are rotated without
// touching the elements outside the view.
func RotateDense(m *mat.Dense) error {
	r, c := m.Dims()
	if r != c {
		return fmt.Errorf("%d×%d dense matrix: %w", r, c, ErrNotSquare)
	}
	raw := m.RawMatrix()
	n, s := raw.Rows, raw.Stride

	// Row tail (i, i+1..n-1) against column tail (i+1..n-1, i).
	for i := 0; i < n-1; i++ {
		k := n - 1 - i
		row := blas64.Vector{N: k, Inc: 1, Data: raw.Data[i*s+i+1:]}
		col := blas64.Vector{N: k, Inc: s, Data: raw.Data[(i+1)*s+i:]}
		blas64.Swap(row, col)
	}

	h := n / 2
	if h == 0 {
		return nil
	}
	for i := 0; i < n; i++ {
		head := blas64.Vector{N: h, Inc: 1, Data: raw.Data[i*s : i*s+h]}
		tail := blas64.Vector{N: h, Inc: -1, Data: raw.Data[i*s+n-h : i*s+n]}
		blas64.Swap(head, tail)
	}
	return nil
}
