// Package matrix2d rotates and transposes row-major matrices held as slices of
// rows. The InPlace functions reuse the caller's storage; Rotate90, Rotate180
// and Rotate270 allocate a fresh matrix and also accept rectangular input.
package matrix2d

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// Clone returns a deep copy of ss.
func Clone[Ss ~[]S, S ~[]E, E any](ss Ss) Ss {
	y := make(Ss, len(ss))
	for i := range y {
		y[i] = slices.Clone(ss[i])
	}
	return y
}

// Rotate90 returns ss turned 90 degrees clockwise. An m×n input yields an n×m
// result. It panics if ss is ragged.
func Rotate90[Ss ~[]S, S ~[]E, E any](ss Ss) Ss {
	if len(ss) == 0 {
		return Ss{}
	}
	m := len(ss)
	n := len(ss[0])
	for i := range ss {
		if len(ss[i]) != n {
			panic(fmt.Sprintf("matrix2d: row %d has %d columns, want %d", i, len(ss[i]), n))
		}
	}

	rotated := make(Ss, n)
	for i := range rotated {
		rotated[i] = make(S, m)
	}
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			rotated[j][m-1-i] = ss[i][j]
		}
	}
	return rotated
}

func Rotate180[Ss ~[]S, S ~[]E, E any](ss Ss) Ss {
	return Rotate90(Rotate90(ss))
}

func Rotate270[Ss ~[]S, S ~[]E, E any](ss Ss) Ss {
	return Rotate90(Rotate180(ss))
}
