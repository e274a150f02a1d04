package commands

import (
	"fmt"
	"io"
	"math"
	"strings"
	"text/tabwriter"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/cwbudde/algo-sparse/internal/csrio"
)

func newTable(w io.Writer, header ...string) (*tabwriter.Writer, error) {
	rule := make([]string, len(header))
	for i, h := range header {
		rule[i] = strings.Repeat("-", len(h))
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "%s\n%s\n", strings.Join(header, "\t"), strings.Join(rule, "\t")); err != nil {
		return nil, fmt.Errorf("failed to write output header: %w", err)
	}

	return tw, nil
}

func writeMatrix(cmd *cobra.Command, v *viper.Viper, m csrio.Matrix) error {
	out := cmd.OutOrStdout()
	if !v.GetBool("table") {
		return csrio.Encode(out, m)
	}

	tw, err := newTable(out, "Row", "Column", "Value")
	if err != nil {
		return err
	}
	for r := range m.Rows() {
		cols, vals := m.Row(r)
		for k, c := range cols {
			if _, err := fmt.Fprintf(tw, "%d\t%d\t%g\n", r, c, vals[k]); err != nil {
				return err
			}
		}
	}

	return tw.Flush()
}

// writeVector prints one value per row. JSON has no NaN or infinity, so
// non-finite values are written as null there and as %g in a table.
func writeVector(cmd *cobra.Command, v *viper.Viper, name string, vals []float64) error {
	out := cmd.OutOrStdout()
	if !v.GetBool("table") {
		encoded := make([]*float64, len(vals))
		for i := range vals {
			if !math.IsNaN(vals[i]) && !math.IsInf(vals[i], 0) {
				encoded[i] = &vals[i]
			}
		}

		return json.NewEncoder(out).Encode(map[string][]*float64{name: encoded})
	}

	tw, err := newTable(out, "Row", name)
	if err != nil {
		return err
	}
	for r, x := range vals {
		if _, err := fmt.Fprintf(tw, "%d\t%g\n", r, x); err != nil {
			return err
		}
	}

	return tw.Flush()
}
