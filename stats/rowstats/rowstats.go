package rowstats

import (
	"math"

	"github.com/cwbudde/algo-sparse/internal/parallel"
	"github.com/cwbudde/algo-sparse/sparse/core"
	"github.com/cwbudde/algo-sparse/sparse/csr"
)

// Mean writes the mean of each row to out.
func Mean[I core.Index, D core.Float](m csr.Matrix[I, D], out []D, opts ...core.Option) {
	reduceRows(m, out, opts, func(vals []D, n D) D {
		var sum D
		for _, v := range vals {
			sum += v
		}

		return sum / n
	})
}

// Variance writes the population variance of each row to out.
func Variance[I core.Index, D core.Float](m csr.Matrix[I, D], out []D, opts ...core.Option) {
	reduceRows(m, out, opts, variance[D])
}

// Stdev writes the population standard deviation of each row to out.
func Stdev[I core.Index, D core.Float](m csr.Matrix[I, D], out []D, opts ...core.Option) {
	reduceRows(m, out, opts, func(vals []D, n D) D {
		return D(math.Sqrt(float64(variance(vals, n))))
	})
}

// StableStdev is Stdev computed with Welford's update over the stored
// values, merged with the block of implicit zeros.
func StableStdev[I core.Index, D core.Float](m csr.Matrix[I, D], out []D, opts ...core.Option) {
	reduceRows(m, out, opts, func(vals []D, n D) D {
		var mean, m2 float64
		for i, v := range vals {
			x := float64(v)
			delta := x - mean
			mean += delta / float64(i+1)
			m2 += delta * (x - mean)
		}

		stored := float64(len(vals))
		zeros := float64(n) - stored
		m2 += mean * mean * stored * zeros / float64(n)

		return D(math.Sqrt(m2 / float64(n)))
	})
}

func variance[D core.Float](vals []D, n D) D {
	var sum, sumSq D
	for _, v := range vals {
		sum += v
		sumSq += v * v
	}
	mean := sum / n

	return sumSq/n - mean*mean
}

func reduceRows[I core.Index, D core.Float](m csr.Matrix[I, D], out []D, opts []core.Option, reduce func(vals []D, n D) D) {
	n := D(m.NumCols)

	parallel.For(m.Rows(), core.ApplyOptions(opts...), func(lo, hi int) {
		for r := lo; r < hi; r++ {
			_, vals := m.Row(r)
			out[r] = reduce(vals, n)
		}
	})
}
