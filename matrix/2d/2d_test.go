package matrix2d_test

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/sw965/leetcode/matrix/2d"
)

func newRandomSquare(n int, rng *rand.Rand) [][]int {
	ss := make([][]int, n)
	for i := range ss {
		ss[i] = make([]int, n)
		for j := range ss[i] {
			ss[i][j] = rng.Intn(1000) - 500
		}
	}
	return ss
}

func TestRotateInPlace(t *testing.T) {
	tests := []struct {
		name     string
		matrix   [][]int
		expected [][]int
	}{
		{
			name:     "3x3",
			matrix:   [][]int{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}},
			expected: [][]int{{7, 4, 1}, {8, 5, 2}, {9, 6, 3}},
		},
		{
			name:     "2x2",
			matrix:   [][]int{{1, 2}, {3, 4}},
			expected: [][]int{{3, 1}, {4, 2}},
		},
		{
			name:     "4x4",
			matrix:   [][]int{{5, 1, 9, 11}, {2, 4, 8, 10}, {13, 3, 6, 7}, {15, 14, 12, 16}},
			expected: [][]int{{15, 13, 2, 5}, {14, 3, 4, 1}, {12, 6, 8, 9}, {16, 7, 10, 11}},
		},
		{
			name:     "1x1",
			matrix:   [][]int{{42}},
			expected: [][]int{{42}},
		},
		{
			name:     "empty",
			matrix:   [][]int{},
			expected: [][]int{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NoError(t, matrix2d.RotateInPlace(tt.matrix))
			if diff := cmp.Diff(tt.expected, tt.matrix); diff != "" {
				t.Errorf("RotateInPlace mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRotateInPlace_NilMatrix(t *testing.T) {
	var ss [][]int
	assert.NoError(t, matrix2d.RotateInPlace(ss))
	assert.Nil(t, ss)
}

func TestRotateInPlace_NotSquare(t *testing.T) {
	tests := []struct {
		name   string
		matrix [][]int
	}{
		{"wide", [][]int{{1, 2, 3}, {4, 5, 6}}},
		{"tall", [][]int{{1}, {2}}},
		{"ragged", [][]int{{1, 2}, {3}}},
		{"ragged last row", [][]int{{1, 2, 3}, {4, 5, 6}, {7, 8}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := matrix2d.Clone(tt.matrix)
			err := matrix2d.RotateInPlace(tt.matrix)
			require.ErrorIs(t, err, matrix2d.ErrNotSquare)
			assert.Equal(t, before, tt.matrix, "matrix must be left untouched")
		})
	}
}

func TestRotateInPlace_MatchesRotate90(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for n := 0; n <= 12; n++ {
		ss := newRandomSquare(n, rng)
		want := matrix2d.Rotate90(ss)
		require.NoError(t, matrix2d.RotateInPlace(ss))
		assert.Equal(t, want, ss, "n=%d", n)
	}
}

func TestRotateInPlace_FourTimesIsIdentity(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for n := 0; n <= 16; n++ {
		ss := newRandomSquare(n, rng)
		original := matrix2d.Clone(ss)
		for k := 0; k < 4; k++ {
			require.NoError(t, matrix2d.RotateInPlace(ss))
		}
		assert.Equal(t, original, ss, "n=%d", n)
	}
}

func TestRotateInPlace_PreservesSize(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for n := 0; n <= 16; n++ {
		ss := newRandomSquare(n, rng)
		require.NoError(t, matrix2d.RotateInPlace(ss))
		require.Len(t, ss, n)
		for i := range ss {
			assert.Len(t, ss[i], n)
		}
	}
}

func TestRotateInPlace_ReusesStorage(t *testing.T) {
	ss := [][]int{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}
	rows := make([]*int, len(ss))
	for i := range ss {
		rows[i] = &ss[i][0]
	}

	require.NoError(t, matrix2d.RotateInPlace(ss))
	for i := range ss {
		assert.Same(t, rows[i], &ss[i][0], "row %d was reallocated", i)
	}

	allocs := testing.AllocsPerRun(100, func() {
		_ = matrix2d.RotateInPlace(ss)
	})
	assert.Zero(t, allocs)
}

func TestRotateCounterclockwiseInPlace(t *testing.T) {
	ss := [][]int{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}
	require.NoError(t, matrix2d.RotateCounterclockwiseInPlace(ss))
	assert.Equal(t, [][]int{{3, 6, 9}, {2, 5, 8}, {1, 4, 7}}, ss)

	err := matrix2d.RotateCounterclockwiseInPlace([][]int{{1, 2}})
	assert.ErrorIs(t, err, matrix2d.ErrNotSquare)
}

func TestRotateCounterclockwiseInPlace_UndoesClockwise(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	for n := 0; n <= 10; n++ {
		ss := newRandomSquare(n, rng)
		original := matrix2d.Clone(ss)
		require.NoError(t, matrix2d.RotateInPlace(ss))
		require.NoError(t, matrix2d.RotateCounterclockwiseInPlace(ss))
		assert.Equal(t, original, ss, "n=%d", n)
	}
}

func TestRotateCounterclockwiseInPlace_MatchesRotate270(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	ss := newRandomSquare(7, rng)
	want := matrix2d.Rotate270(ss)
	require.NoError(t, matrix2d.RotateCounterclockwiseInPlace(ss))
	assert.Equal(t, want, ss)
}

func TestTransposeInPlace(t *testing.T) {
	ss := [][]string{{"a", "b"}, {"c", "d"}}
	require.NoError(t, matrix2d.TransposeInPlace(ss))
	assert.Equal(t, [][]string{{"a", "c"}, {"b", "d"}}, ss)

	err := matrix2d.TransposeInPlace([][]string{{"a"}, {"b"}})
	assert.ErrorIs(t, err, matrix2d.ErrNotSquare)
}

func TestReverseRows(t *testing.T) {
	ss := [][]int{{1, 2, 3}, {4, 5}, {}, {6}}
	matrix2d.ReverseRows(ss)
	assert.Equal(t, [][]int{{3, 2, 1}, {5, 4}, {}, {6}}, ss)
}

func TestIsSquare(t *testing.T) {
	assert.True(t, matrix2d.IsSquare([][]int{}))
	assert.True(t, matrix2d.IsSquare([][]int{{1}}))
	assert.True(t, matrix2d.IsSquare([][]int{{1, 2}, {3, 4}}))
	assert.False(t, matrix2d.IsSquare([][]int{{1, 2}}))
	assert.False(t, matrix2d.IsSquare([][]int{{1, 2}, {3}}))
	assert.False(t, matrix2d.IsSquare([][]int{{}}))
}

func TestRotate90_Rectangular(t *testing.T) {
	ss := [][]int{
		{1, 2, 3},
		{4, 5, 6},
	}
	assert.Equal(t, [][]int{{4, 1}, {5, 2}, {6, 3}}, matrix2d.Rotate90(ss))
	assert.Equal(t, [][]int{{6, 5, 4}, {3, 2, 1}}, matrix2d.Rotate180(ss))
	assert.Equal(t, [][]int{{3, 6}, {2, 5}, {1, 4}}, matrix2d.Rotate270(ss))
	assert.Equal(t, [][]int{{1, 2, 3}, {4, 5, 6}}, ss, "input must not change")
}

func TestRotate90_RaggedPanics(t *testing.T) {
	assert.Panics(t, func() {
		matrix2d.Rotate90([][]int{{1, 2}, {3}})
	})
}

func TestClone(t *testing.T) {
	ss := [][]int{{1, 2}, {3, 4}}
	c := matrix2d.Clone(ss)
	c[0][0] = 100
	assert.Equal(t, 1, ss[0][0])
	assert.Equal(t, [][]int{{100, 2}, {3, 4}}, c)
}

func TestRotateDense(t *testing.T) {
	m := mat.NewDense(3, 3, []float64{
		1, 2, 3,
		4, 5, 6,
		7, 8, 9,
	})
	require.NoError(t, matrix2d.RotateDense(m))

	want := mat.NewDense(3, 3, []float64{
		7, 4, 1,
		8, 5, 2,
		9, 6, 3,
	})
	assert.True(t, mat.Equal(want, m), "got\n%v", mat.Formatted(m))
}

func TestRotateDense_OneByOne(t *testing.T) {
	m := mat.NewDense(1, 1, []float64{7})
	require.NoError(t, matrix2d.RotateDense(m))
	assert.Equal(t, 7.0, m.At(0, 0))
}

func TestRotateDense_NotSquare(t *testing.T) {
	m := mat.NewDense(2, 3, []float64{1, 2, 3, 4, 5, 6})
	err := matrix2d.RotateDense(m)
	require.ErrorIs(t, err, matrix2d.ErrNotSquare)
	assert.Equal(t, []float64{1, 2, 3, 4, 5, 6}, m.RawMatrix().Data)
}

func TestRotateDense_View(t *testing.T) {
	m := mat.NewDense(3, 4, []float64{
		1, 2, 0, -1,
		3, 4, 0, -1,
		0, 0, 0, -1,
	})
	view := m.Slice(0, 2, 0, 2).(*mat.Dense)
	require.NoError(t, matrix2d.RotateDense(view))

	assert.Equal(t, []float64{
		3, 1, 0, -1,
		4, 2, 0, -1,
		0, 0, 0, -1,
	}, m.RawMatrix().Data)
}

func TestRotateDense_MatchesRotateInPlace(t *testing.T) {
	rng := rand.New(rand.NewSource(6))
	for n := 1; n <= 9; n++ {
		ss := newRandomSquare(n, rng)
		data := make([]float64, 0, n*n)
		for _, row := range ss {
			for _, v := range row {
				data = append(data, float64(v))
			}
		}
		m := mat.NewDense(n, n, data)

		require.NoError(t, matrix2d.RotateInPlace(ss))
		require.NoError(t, matrix2d.RotateDense(m))
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				assert.Equal(t, float64(ss[i][j]), m.At(i, j), "n=%d (%d,%d)", n, i, j)
			}
		}
	}
}
