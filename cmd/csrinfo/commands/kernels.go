package commands

import (
	"fmt"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/cwbudde/algo-sparse/sparse/conv"
	"github.com/cwbudde/algo-sparse/sparse/rolling"
)

var (
	rollingKinds = []rolling.Kind{rolling.KindMin, rolling.KindMax, rolling.KindMean, rolling.KindMedian}
	kernelShapes = []conv.Shape{conv.ShapeRectangular, conv.ShapeTriangle, conv.ShapeHann, conv.ShapeHamming, conv.ShapeBlackman}
)

func newKernelsCommand(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "kernels",
		Short: "List rolling kernels and convolution shapes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var kinds, shapes []string
			for _, k := range rollingKinds {
				kinds = append(kinds, k.String())
			}
			for _, s := range kernelShapes {
				shapes = append(shapes, s.String())
			}

			out := cmd.OutOrStdout()
			if !v.GetBool("table") {
				return json.NewEncoder(out).Encode(map[string][]string{
					"rolling":  kinds,
					"convolve": shapes,
				})
			}

			tw, err := newTable(out, "Command", "Name")
			if err != nil {
				return err
			}
			for _, k := range kinds {
				if _, err := fmt.Fprintf(tw, "rolling\t%s\n", k); err != nil {
					return err
				}
			}
			for _, s := range shapes {
				if _, err := fmt.Fprintf(tw, "convolve\t%s\n", s); err != nil {
					return err
				}
			}

			return tw.Flush()
		},
	}
}
