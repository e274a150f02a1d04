package csr_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"

	"github.com/cwbudde/algo-sparse/internal/testutil"
	"github.com/cwbudde/algo-sparse/sparse/csr"
)

func TestValidateAcceptsCanonical(t *testing.T) {
	m := testutil.RandomCSR[int64, float64](1, 50, 40, 0.1, 1)
	require.NoError(t, csr.Validate(m))

	empty := csr.New[int32, float32](0, []int32{0}, nil, nil)
	require.NoError(t, csr.Validate(empty))
}

func TestValidateReportsViolations(t *testing.T) {
	tests := []struct {
		name string
		m    csr.Matrix[int32, float64]
		want []error
	}{
		{
			name: "empty row pointer",
			m:    csr.New[int32, float64](3, nil, nil, nil),
			want: []error{csr.ErrRowPtrStart},
		},
		{
			name: "bad start",
			m:    csr.New(3, []int32{1, 2}, []int32{0, 1}, []float64{1, 1}),
			want: []error{csr.ErrRowPtrStart},
		},
		{
			name: "bad end",
			m:    csr.New(3, []int32{0, 1}, []int32{0, 1}, []float64{1, 1}),
			want: []error{csr.ErrRowPtrEnd},
		},
		{
			name: "decreasing",
			m:    csr.New(3, []int32{0, 2, 1, 2}, []int32{0, 1}, []float64{1, 1}),
			want: []error{csr.ErrRowPtrOrder},
		},
		{
			name: "length mismatch",
			m:    csr.New(3, []int32{0, 2}, []int32{0, 1}, []float64{1}),
			want: []error{csr.ErrLengthMismatch},
		},
		{
			name: "column range",
			m:    csr.New(2, []int32{0, 2}, []int32{0, 2}, []float64{1, 1}),
			want: []error{csr.ErrColumnRange},
		},
		{
			name: "negative column count",
			m:    csr.New(-1, []int32{0}, nil, []float64(nil)),
			want: []error{csr.ErrNumCols},
		},
		{
			name: "not canonical",
			m:    csr.New(3, []int32{0, 1, 3}, []int32{0, 2, 2}, []float64{1, 1, 1}),
			want: []error{csr.ErrNotCanonical},
		},
		{
			name: "several at once",
			m:    csr.New(2, []int32{0, 2}, []int32{1, 5, 0}, []float64{1, 1}),
			want: []error{csr.ErrRowPtrEnd, csr.ErrLengthMismatch, csr.ErrColumnRange},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := csr.Validate(tt.m)
			require.Error(t, err)
			require.Len(t, multierr.Errors(err), len(tt.want))
			for _, want := range tt.want {
				require.Truef(t, errors.Is(err, want), "%v does not wrap %v", err, want)
			}
		})
	}
}
