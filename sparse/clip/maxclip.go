package clip

import (
	"fmt"

	"github.com/cwbudde/algo-sparse/internal/parallel"
	"github.com/cwbudde/algo-sparse/sparse/core"
	"github.com/cwbudde/algo-sparse/sparse/csr"
)

// MaxClip caps the values of a in place. b must have as many rows as a and
// c one entry per row. Both matrices must be canonical; this is not
// checked.
func MaxClip[I core.Index, D core.Float](a, b csr.Matrix[I, D], c []D, opts ...core.Option) error {
	if err := checkNonNegative(b, c); err != nil {
		return err
	}

	parallel.For(a.Rows(), core.ApplyOptions(opts...), func(lo, hi int) {
		for r := lo; r < hi; r++ {
			clipRow(a, b, r, c[r])
		}
	})

	return nil
}

func checkNonNegative[I core.Index, D core.Float](b csr.Matrix[I, D], c []D) error {
	for i, v := range c {
		if v < 0 {
			return fmt.Errorf("%w: c[%d] = %v", ErrNegativeOperand, i, v)
		}
	}

	for k, v := range b.Data {
		if v < 0 {
			return fmt.Errorf("%w: b.Data[%d] = %v", ErrNegativeOperand, k, v)
		}
	}

	return nil
}

func clipRow[I core.Index, D core.Float](a, b csr.Matrix[I, D], r int, ceiling D) {
	aCols, aVals := a.Row(r)
	bCols, bVals := b.Row(r)

	k := 0
	for col, val := range core.Zip(aCols, aVals) {
		for k < len(bCols) && bCols[k] < *col {
			k++
		}

		bound := ceiling
		if k < len(bCols) && bCols[k] == *col {
			bound += bVals[k]
		}
		*val = min(*val, bound)
	}
}
