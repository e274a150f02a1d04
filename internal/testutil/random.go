package testutil

import (
	"math/rand"

	"github.com/cwbudde/algo-sparse/sparse/core"
	"github.com/cwbudde/algo-sparse/sparse/csr"
)

// RandomCSR generates a canonical matrix with a fixed seed for
// reproducibility. Each cell is stored with probability density and gets a
// non-zero value in [-amplitude, amplitude].
func RandomCSR[I core.Index, D core.Float](seed int64, rows, cols int, density, amplitude float64) csr.Matrix[I, D] {
	rng := rand.New(rand.NewSource(seed))
	m := csr.Matrix[I, D]{
		RowPtr:  make([]I, 1, rows+1),
		NumCols: cols,
	}

	for range rows {
		for c := range cols {
			if rng.Float64() >= density {
				continue
			}
			v := (rng.Float64()*2 - 1) * amplitude
			if v == 0 {
				v = amplitude
			}
			m.ColIdx = append(m.ColIdx, I(c))
			m.Data = append(m.Data, D(v))
		}
		m.RowPtr = append(m.RowPtr, I(len(m.ColIdx)))
	}

	return m
}

// RandomNonNegativeCSR is RandomCSR with values in (0, amplitude].
func RandomNonNegativeCSR[I core.Index, D core.Float](seed int64, rows, cols int, density, amplitude float64) csr.Matrix[I, D] {
	m := RandomCSR[I, D](seed, rows, cols, density, amplitude)
	for i, v := range m.Data {
		if v < 0 {
			m.Data[i] = -v
		}
	}

	return m
}
