package commands

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/cwbudde/algo-sparse/internal/logging"
	"github.com/cwbudde/algo-sparse/sparse/rolling"
)

func newRollingCommand(v *viper.Viper) *cobra.Command {
	command := &cobra.Command{
		Use:   "rolling",
		Short: "Reduce a sliding window along each row with min, max, mean or median",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			kind, err := rolling.ParseKind(strings.ToLower(v.GetString("kernel")))
			if err != nil {
				return err
			}
			window, err := windowFlag(v)
			if err != nil {
				return err
			}

			m, err := loadCanonical(cmd, v)
			if err != nil {
				return err
			}

			out := rolling.Apply[int64](m, window, kind, kernelOptions(v)...)
			logging.FromContext(cmd.Context()).Debugw("Rolling window applied",
				"kernel", kind.String(), "window", window, "nnz", out.NNZ())

			return writeMatrix(cmd, v, out)
		},
	}

	command.Flags().String("kernel", "max", "window kernel: min, max, mean or median")
	command.Flags().Int("window", 3, "window width in columns")

	return command
}
