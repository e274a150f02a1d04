package csr

import "errors"

// Errors reported by Validate and FromCOO.
var (
	ErrRowPtrStart    = errors.New("csr: row pointer must start at 0")
	ErrRowPtrEnd      = errors.New("csr: last row pointer must equal nnz")
	ErrRowPtrOrder    = errors.New("csr: row pointer must be non-decreasing")
	ErrLengthMismatch = errors.New("csr: column and data length mismatch")
	ErrNumCols        = errors.New("csr: negative column count")
	ErrColumnRange    = errors.New("csr: column index out of range")
	ErrRowRange       = errors.New("csr: row index out of range")
	ErrNotCanonical   = errors.New("csr: columns not strictly increasing")
)
