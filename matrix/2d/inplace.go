package matrix2d

import (
	"errors"
	"fmt"
)

var ErrNotSquare = errors.New("matrix2d: matrix is not square")

// IsSquare reports whether every row of ss has len(ss) elements. An empty
// matrix is square.
func IsSquare[Ss ~[]S, S ~[]E, E any](ss Ss) bool {
	n := len(ss)
	for i := range ss {
		if len(ss[i]) != n {
			return false
		}
	}
	return true
}

func checkSquare[Ss ~[]S, S ~[]E, E any](ss Ss) error {
	n := len(ss)
	for i := range ss {
		if len(ss[i]) != n {
			return fmt.Errorf("row %d has %d columns in a %d-row matrix: %w", i, len(ss[i]), n, ErrNotSquare)
		}
	}
	return nil
}

// TransposeInPlace reflects a square matrix across its main diagonal by
// swapping (i, j) with (j, i) for every i < j.
func TransposeInPlace[Ss ~[]S, S ~[]E, E any](ss Ss) error {
	if err := checkSquare(ss); err != nil {
		return err
	}
	transpose(ss)
	return nil
}

func transpose[Ss ~[]S, S ~[]E, E any](ss Ss) {
	n := len(ss)
	for i := 0; i < n-1; i++ {
		for j := i + 1; j < n; j++ {
			ss[i][j], ss[j][i] = ss[j][i], ss[i][j]
		}
	}
}

// ReverseRows reverses the element order within each row. Rows may differ in
// length.
func ReverseRows[Ss ~[]S, S ~[]E, E any](ss Ss) {
	for _, row := range ss {
		for l, r := 0, len(row)-1; l < r; l, r = l+1, r-1 {
			row[l], row[r] = row[r], row[l]
		}
	}
}

// RotateInPlace turns a square matrix 90 degrees clockwise, moving the
// element at (i, j) to (j, n-1-i). It transposes and then reverses every row,
// so no storage beyond a few indices is used.
//
// A non-square matrix yields an error wrapping ErrNotSquare and is left
// unmodified.
func RotateInPlace[Ss ~[]S, S ~[]E, E any](ss Ss) error {
	if err := checkSquare(ss); err != nil {
		return err
	}
	transpose(ss)
	ReverseRows(ss)
	return nil
}

// RotateCounterclockwiseInPlace turns a square matrix 90 degrees
// counterclockwise: transpose, then reverse the order of the rows.
func RotateCounterclockwiseInPlace[Ss ~[]S, S ~[]E, E any](ss Ss) error {
	if err := checkSquare(ss); err != nil {
		return err
	}
	transpose(ss)
	for t, b := 0, len(ss)-1; t < b; t, b = t+1, b-1 {
		ss[t], ss[b] = ss[b], ss[t]
	}
	return nil
}
