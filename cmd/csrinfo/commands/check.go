package commands

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/multierr"

	"github.com/cwbudde/algo-sparse/internal/csrio"
	"github.com/cwbudde/algo-sparse/sparse/csr"
)

var errInvalidMatrix = errors.New("matrix is not canonical CSR")

type checkReport struct {
	Rows      int      `json:"rows"`
	NumCols   int      `json:"n_cols"`
	NNZ       int      `json:"nnz"`
	Canonical bool     `json:"canonical"`
	Errors    []string `json:"errors"`
}

func newCheckCommand(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate the structure and canonical form of a matrix",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			in, err := openInput(cmd, v)
			if err != nil {
				return err
			}
			defer in.Close()

			m, err := csrio.Decode(in)
			if err != nil {
				return err
			}

			verr := csr.Validate(m)
			report := checkReport{
				Rows:      m.Rows(),
				NumCols:   m.NumCols,
				NNZ:       len(m.ColIdx),
				Canonical: verr == nil,
				Errors:    []string{},
			}
			for _, e := range multierr.Errors(verr) {
				report.Errors = append(report.Errors, e.Error())
			}

			if err := writeReport(cmd, v, report); err != nil {
				return err
			}
			if verr != nil {
				return fmt.Errorf("%w: %d problem(s)", errInvalidMatrix, len(report.Errors))
			}

			return nil
		},
	}
}

func writeReport(cmd *cobra.Command, v *viper.Viper, report checkReport) error {
	out := cmd.OutOrStdout()
	if !v.GetBool("table") {
		return json.NewEncoder(out).Encode(report)
	}

	tw, err := newTable(out, "Property", "Value")
	if err != nil {
		return err
	}
	rows := [][2]string{
		{"rows", strconv.Itoa(report.Rows)},
		{"columns", strconv.Itoa(report.NumCols)},
		{"stored entries", strconv.Itoa(report.NNZ)},
		{"canonical", strconv.FormatBool(report.Canonical)},
	}
	for _, e := range report.Errors {
		rows = append(rows, [2]string{"error", e})
	}
	for _, row := range rows {
		if _, err := fmt.Fprintf(tw, "%s\t%s\n", row[0], row[1]); err != nil {
			return err
		}
	}

	return tw.Flush()
}
