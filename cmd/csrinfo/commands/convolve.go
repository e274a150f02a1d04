package commands

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/cwbudde/algo-sparse/internal/logging"
	"github.com/cwbudde/algo-sparse/sparse/conv"
)

func newConvolveCommand(v *viper.Viper) *cobra.Command {
	command := &cobra.Command{
		Use:   "convolve",
		Short: "Convolve each row with a kernel given by --coeffs or --shape",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			coeffs, err := convolutionKernel(cmd, v)
			if err != nil {
				return err
			}

			m, err := loadCanonical(cmd, v)
			if err != nil {
				return err
			}

			out := conv.Convolve[int64](m, coeffs, kernelOptions(v)...)
			logging.FromContext(cmd.Context()).Debugw("Convolution applied",
				"taps", len(coeffs), "nnz", out.NNZ())

			return writeMatrix(cmd, v, out)
		},
	}

	command.Flags().Float64Slice("coeffs", nil, "explicit kernel taps, e.g. 1,2,1")
	command.Flags().String("shape", conv.ShapeRectangular.String(), "generated kernel: rectangular, triangle, hann, hamming or blackman")
	command.Flags().Int("window", 3, "generated kernel width")
	command.Flags().Bool("normalize", false, "scale the kernel to unit sum")

	return command
}

func convolutionKernel(cmd *cobra.Command, v *viper.Viper) ([]float64, error) {
	coeffs, err := cmd.Flags().GetFloat64Slice("coeffs")
	if err != nil {
		return nil, err
	}

	if len(coeffs) == 0 {
		shape, err := conv.ParseShape(strings.TrimSpace(v.GetString("shape")))
		if err != nil {
			return nil, err
		}
		window, err := windowFlag(v)
		if err != nil {
			return nil, err
		}

		if coeffs, err = conv.Coefficients(shape, window); err != nil {
			return nil, err
		}
	}

	if v.GetBool("normalize") {
		if err := conv.Normalize(coeffs); err != nil {
			return nil, err
		}
	}

	return coeffs, nil
}
