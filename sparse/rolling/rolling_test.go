package rolling_test

import (
	"fmt"
	"slices"
	"testing"

	"github.com/montanaflynn/stats"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-sparse/internal/testutil"
	"github.com/cwbudde/algo-sparse/sparse/core"
	"github.com/cwbudde/algo-sparse/sparse/csr"
	"github.com/cwbudde/algo-sparse/sparse/rolling"
)

var allKinds = []rolling.Kind{rolling.KindMin, rolling.KindMax, rolling.KindMean, rolling.KindMedian}

func TestBoundaryClamp(t *testing.T) {
	m := csr.New[int32, float64](5, []int32{0, 3}, []int32{0, 2, 4}, []float64{5, 1, 3})

	tests := []struct {
		kind rolling.Kind
		want []float64
	}{
		{rolling.KindMin, []float64{0, 0, 0, 0, 0}},
		{rolling.KindMax, []float64{5, 5, 1, 3, 3}},
		{rolling.KindMean, []float64{5.0 / 3, 6.0 / 3, 1.0 / 3, 4.0 / 3, 3.0 / 3}},
		{rolling.KindMedian, []float64{0, 1, 0, 1, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			out := rolling.Apply[int32](m, 3, tt.kind)
			require.Equal(t, []int32{0, 5}, out.RowPtr)
			require.Equal(t, []int32{0, 1, 2, 3, 4}, out.ColIdx)
			testutil.RequireSliceNearlyEqual(t, out.Data, tt.want, 1e-15)
		})
	}

	// Logical column 1 covers columns 0, 1 and 2: values 5, 0 (implicit) and 1.
	require.Equal(t, 0.0, rolling.Apply[int32](m, 3, rolling.KindMin).Data[1])
	require.Equal(t, 5.0, rolling.Apply[int32](m, 3, rolling.KindMax).Data[1])
}

func TestIdentityWindow(t *testing.T) {
	m := testutil.RandomCSR[int64, float64](3, 40, 25, 0.3, 5)

	for _, kind := range allKinds {
		t.Run(kind.String(), func(t *testing.T) {
			out := rolling.Apply[int64](m, 1, kind)
			require.Equal(t, m.RowPtr, out.RowPtr)
			require.Equal(t, m.ColIdx, out.ColIdx)
			require.Equal(t, m.Data, out.Data)
		})
	}
}

// The mean divides by the configured width even where the window holds a
// single stored value or runs past the matrix edge. This is deliberate
// zero-padding behavior, not a renormalized edge mean.
func TestMeanDividesByConfiguredWidth(t *testing.T) {
	const v = 7.5

	interior := csr.New[int32, float64](9, []int32{0, 1}, []int32{4}, []float64{v})
	out := rolling.Apply[int32](interior, 3, rolling.KindMean)
	require.Equal(t, []int32{3, 4, 5}, out.ColIdx)
	for _, got := range out.Data {
		require.Equal(t, v/3, got)
	}

	edge := csr.New[int32, float64](1, []int32{0, 1}, []int32{0}, []float64{v})
	out = rolling.Apply[int32](edge, 3, rolling.KindMean)
	require.Equal(t, []int32{0}, out.ColIdx)
	require.Equal(t, []float64{v / 3}, out.Data)
}

func TestMedianEvenWidthTakesUpperMiddle(t *testing.T) {
	m := csr.New[int32, float64](4, []int32{0, 4}, []int32{0, 1, 2, 3}, []float64{4, 1, 3, 2})

	out := rolling.Apply[int32](m, 4, rolling.KindMedian)
	// Column 1 covers columns 0..3: sorted 1, 2, 3, 4 -> element 2.
	idx := slices.Index(out.ColIdx, 1)
	require.GreaterOrEqual(t, idx, 0)
	require.Equal(t, 3.0, out.Data[idx])
}

func TestMaxOfNegativeValues(t *testing.T) {
	m := csr.New[int32, float32](3, []int32{0, 2}, []int32{0, 1}, []float32{-5, -1})

	out := rolling.Apply[int32](m, 1, rolling.KindMax)
	require.Equal(t, []float32{-5, -1}, out.Data)

	out = rolling.Apply[int32](m, 2, rolling.KindMax)
	// An even window extends to the right: column 1 covers columns 1 and 2,
	// which hold -1 and an implicit zero.
	require.Equal(t, []int32{0, 1}, out.ColIdx)
	require.Equal(t, []float32{-1, 0}, out.Data)
}

func TestEmptyRowsAndMatrix(t *testing.T) {
	m := csr.New[int32, float64](6, []int32{0, 0, 1, 1}, []int32{5}, []float64{2})

	rowPtr := make([]int64, m.Rows()+1)
	nnz := rolling.Alloc(m, rowPtr, 3)
	require.Equal(t, []int64{0, 0, 2, 2}, rowPtr)
	require.Equal(t, int64(2), nnz)

	out := rolling.Apply[int64](m, 3, rolling.KindMax)
	require.Equal(t, []int64{4, 5}, out.ColIdx)
	require.Equal(t, []float64{2, 2}, out.Data)

	empty := csr.New[int64, float64](10, []int64{0}, nil, nil)
	require.Equal(t, 0, rolling.Apply[int32](empty, 5, rolling.KindMean).NNZ())
}

func TestWindowWiderThanMatrix(t *testing.T) {
	m := csr.New[int32, float64](2, []int32{0, 1}, []int32{0}, []float64{1})

	out := rolling.Apply[int32](m, 5, rolling.KindMean)
	require.Equal(t, []int32{0, 1}, out.ColIdx)
	require.Equal(t, []float64{0.2, 0.2}, out.Data)
}

func TestAllocMatchesDenseReference(t *testing.T) {
	for seed := int64(0); seed < 6; seed++ {
		m := testutil.RandomCSR[int32, float64](seed, 30, 40, 0.05+0.1*float64(seed), 3)
		for w := 1; w <= 9; w++ {
			want := testutil.DenseRolling(m, w, maxOf)

			rowPtr := make([]int32, m.Rows()+1)
			nnz := rolling.Alloc(m, rowPtr, w)
			require.Equalf(t, want.RowPtr, rowPtr, "seed=%d w=%d", seed, w)
			require.Equal(t, int32(want.NNZ()), nnz)
		}
	}
}

func TestFillMatchesDenseReference(t *testing.T) {
	reducers := map[rolling.Kind]func([]float64) float64{
		rolling.KindMin:    must(stats.Min),
		rolling.KindMax:    must(stats.Max),
		rolling.KindMean:   must(stats.Mean),
		rolling.KindMedian: sortedMiddle,
	}

	for seed := int64(10); seed < 14; seed++ {
		m := testutil.RandomCSR[int64, float64](seed, 25, 30, 0.15, 4)
		for w := 1; w <= 8; w++ {
			for _, kind := range allKinds {
				name := fmt.Sprintf("seed=%d/w=%d/%s", seed, w, kind)
				t.Run(name, func(t *testing.T) {
					want := testutil.DenseRolling(m, w, reducers[kind])
					got := rolling.Apply[int64](m, w, kind)
					require.Equal(t, want.RowPtr, got.RowPtr)
					require.Equal(t, want.ColIdx, got.ColIdx)
					testutil.RequireSliceNearlyEqual(t, got.Data, want.Data, 1e-12)
				})
			}
		}
	}
}

func TestMedianOddWidthMatchesStats(t *testing.T) {
	m := testutil.RandomCSR[int32, float64](21, 10, 50, 0.4, 2)
	for _, w := range []int{1, 3, 5, 7} {
		want := testutil.DenseRolling(m, w, must(stats.Median))
		got := rolling.Apply[int32](m, w, rolling.KindMedian)
		require.Equal(t, want.ColIdx, got.ColIdx)
		require.Equal(t, want.Data, got.Data)
	}
}

func TestAllIndexAndValueWidths(t *testing.T) {
	m64 := testutil.RandomCSR[int64, float64](5, 12, 20, 0.25, 1)
	m32 := testutil.RandomCSR[int32, float32](5, 12, 20, 0.25, 1)
	mixedA := testutil.RandomCSR[int32, float64](5, 12, 20, 0.25, 1)
	mixedB := testutil.RandomCSR[int64, float32](5, 12, 20, 0.25, 1)

	want := rolling.Apply[int64](m64, 4, rolling.KindMean)

	check := func(t *testing.T, rowPtr, cols []int64, data []float64, eps float64) {
		t.Helper()
		require.Equal(t, want.RowPtr, rowPtr)
		require.Equal(t, want.ColIdx, cols)
		testutil.RequireSliceNearlyEqual(t, data, want.Data, eps)
	}

	a := rolling.Apply[int32](mixedA, 4, rolling.KindMean)
	check(t, widen(a.RowPtr), widen(a.ColIdx), a.Data, 0)

	b := rolling.Apply[int64](mixedB, 4, rolling.KindMean)
	check(t, b.RowPtr, b.ColIdx, toFloat64(b.Data), 1e-6)

	c := rolling.Apply[int32](m32, 4, rolling.KindMean)
	check(t, widen(c.RowPtr), widen(c.ColIdx), toFloat64(c.Data), 1e-6)
}

func TestParallelMatchesSequential(t *testing.T) {
	m := testutil.RandomCSR[int32, float64](99, 500, 64, 0.1, 10)

	for _, kind := range allKinds {
		t.Run(kind.String(), func(t *testing.T) {
			seq := rolling.Apply[int32](m, 5, kind, core.Sequential())
			par := rolling.Apply[int32](m, 5, kind, core.WithWorkers(8), core.WithGrain(16))
			require.Equal(t, seq, par)
		})
	}
}

type sumSquares struct{ acc float64 }

func (k *sumSquares) Init()          { k.acc = 0 }
func (k *sumSquares) Push(v float64) { k.acc += v * v }
func (k *sumSquares) Pop() float64   { return k.acc }

func TestFillWithCustomKernel(t *testing.T) {
	m := csr.New[int32, float64](5, []int32{0, 3}, []int32{0, 2, 4}, []float64{5, 1, 3})

	rowPtr := make([]int32, 2)
	nnz := rolling.Alloc(m, rowPtr, 3)
	cols := make([]int32, nnz)
	vals := make([]float64, nnz)

	rolling.FillWith(m, rowPtr, cols, vals, 3, func(int) *sumSquares { return &sumSquares{} })

	require.Equal(t, []int32{0, 1, 2, 3, 4}, cols)
	require.Equal(t, []float64{25, 26, 1, 10, 9}, vals)
}

func TestFillPanicsOnUnknownKind(t *testing.T) {
	m := csr.New[int32, float64](1, []int32{0, 1}, []int32{0}, []float64{1})
	require.Panics(t, func() {
		rolling.Apply[int32](m, 1, rolling.Kind(42))
	})
}

func TestKindNames(t *testing.T) {
	for _, kind := range allKinds {
		parsed, err := rolling.ParseKind(kind.String())
		require.NoError(t, err)
		require.Equal(t, kind, parsed)
	}

	_, err := rolling.ParseKind("mode")
	require.ErrorIs(t, err, rolling.ErrUnknownKind)
	require.Equal(t, "Kind(9)", rolling.Kind(9).String())
}

func maxOf(w []float64) float64 { return slices.Max(w) }

func sortedMiddle(w []float64) float64 {
	s := slices.Clone(w)
	slices.Sort(s)
	return s[len(s)/2]
}

func must(f func(stats.Float64Data) (float64, error)) func([]float64) float64 {
	return func(w []float64) float64 {
		v, err := f(w)
		if err != nil {
			panic(err)
		}
		return v
	}
}

func widen(s []int32) []int64 {
	out := make([]int64, len(s))
	for i, v := range s {
		out[i] = int64(v)
	}
	return out
}

func toFloat64(s []float32) []float64 {
	out := make([]float64, len(s))
	for i, v := range s {
		out[i] = float64(v)
	}
	return out
}

func TestNonCanonicalRowsStayWithinAlloc(t *testing.T) {
	matrices := map[string]csr.Matrix[int32, float64]{
		"duplicate": csr.New[int32, float64](6, []int32{0, 2}, []int32{1, 1}, []float64{1, 2}),
		"unsorted":  csr.New[int32, float64](6, []int32{0, 2}, []int32{4, 1}, []float64{1, 2}),
		"mixed": csr.New[int32, float64](9, []int32{0, 3, 3, 7},
			[]int32{5, 5, 0, 8, 2, 2, 7}, []float64{1, -1, 3, 4, 5, 6, 7}),
	}

	for name, m := range matrices {
		for _, kind := range allKinds {
			for _, window := range []int{1, 3, 4} {
				t.Run(fmt.Sprintf("%s/%s/w=%d", name, kind, window), func(t *testing.T) {
					require.NotPanics(t, func() {
						out := rolling.Apply[int32](m, window, kind, core.WithWorkers(4), core.WithGrain(1))
						require.Len(t, out.ColIdx, int(out.RowPtr[m.Rows()]))
						require.Len(t, out.Data, int(out.RowPtr[m.Rows()]))
					})
				})
			}
		}
	}
}
