package clip_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-sparse/internal/testutil"
	"github.com/cwbudde/algo-sparse/sparse/clip"
	"github.com/cwbudde/algo-sparse/sparse/core"
	"github.com/cwbudde/algo-sparse/sparse/csr"
)

func TestMaxClipAlignedAndUnaligned(t *testing.T) {
	a := csr.New[int32, float64](2, []int32{0, 2}, []int32{0, 1}, []float64{5, 5})
	b := csr.New[int32, float64](2, []int32{0, 1}, []int32{0}, []float64{2})

	require.NoError(t, clip.MaxClip(a, b, []float64{1}))
	assert.Equal(t, []float64{3, 1}, a.Data)
}

func TestMaxClipKeepsSmallValues(t *testing.T) {
	a := csr.New[int64, float32](4, []int64{0, 3, 4}, []int64{0, 2, 3, 1}, []float32{-4, 0.5, 9, 2})
	b := csr.New[int64, float32](4, []int64{0, 2, 2}, []int64{1, 3}, []float32{10, 1})

	require.NoError(t, clip.MaxClip(a, b, []float32{1, 3}))
	// Row 0: col 0 and col 2 have no B entry, col 3 is raised to 1+1.
	// Row 1: B is empty so the ceiling is c[1].
	assert.Equal(t, []float32{-4, 0.5, 2, 2}, a.Data)
}

func TestMaxClipRejectsNegativeOperands(t *testing.T) {
	tests := []struct {
		name string
		b    []float64
		c    []float64
	}{
		{"negative c", []float64{1, 1}, []float64{1, -0.5}},
		{"negative b", []float64{1, -1}, []float64{1, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := csr.New[int32, float64](3, []int32{0, 2, 3}, []int32{0, 2, 1}, []float64{7, 8, 9})
			b := csr.New[int32, float64](3, []int32{0, 1, 2}, []int32{0, 1}, tt.b)
			before := a.Clone()

			err := clip.MaxClip(a, b, tt.c)
			require.ErrorIs(t, err, clip.ErrNegativeOperand)
			assert.Equal(t, before, a)
		})
	}
}

func TestMaxClipMatchesDense(t *testing.T) {
	a := testutil.RandomCSR[int32, float64](1, 200, 50, 0.3, 10)
	b := testutil.RandomNonNegativeCSR[int32, float64](2, 200, 50, 0.3, 3)
	c := make([]float64, a.Rows())
	for i := range c {
		c[i] = float64(i%7) * 0.5
	}

	denseA, denseB := a.ToDense(), b.ToDense()
	want := a.Clone()
	for r := range want.Rows() {
		cols, vals := want.Row(r)
		for k, col := range cols {
			bound := c[r]
			if denseB[r][col] != 0 {
				bound += denseB[r][col]
			}
			vals[k] = min(denseA[r][col], bound)
		}
	}

	require.NoError(t, clip.MaxClip(a, b, c, core.WithWorkers(4), core.WithGrain(9)))
	assert.Equal(t, want.Data, a.Data)
}

func TestMaxClipScansAllBoundData(t *testing.T) {
	a := csr.New[int32, float64](2, []int32{0, 1}, []int32{0}, []float64{5})
	b := csr.New[int32, float64](2, []int32{0, 1}, []int32{0, 1}, []float64{1, -2})

	err := clip.MaxClip(a, b, []float64{0})
	require.ErrorIs(t, err, clip.ErrNegativeOperand)
	assert.Contains(t, err.Error(), "b.Data[1]")
	assert.Equal(t, []float64{5}, a.Data)
}
