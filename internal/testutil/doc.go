// Package testutil holds helpers shared by the package tests: numeric
// tolerances, deterministic random matrices and dense reference
// implementations of the windowed kernels.
package testutil
