package commands

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/cwbudde/algo-sparse/stats/rowstats"
)

func newStdevCommand(v *viper.Viper) *cobra.Command {
	command := &cobra.Command{
		Use:   "stdev",
		Short: "Print the population standard deviation of every row",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := loadCanonical(cmd, v)
			if err != nil {
				return err
			}

			out := make([]float64, m.Rows())
			if v.GetBool("stable") {
				rowstats.StableStdev(m, out, kernelOptions(v)...)
			} else {
				rowstats.Stdev(m, out, kernelOptions(v)...)
			}

			return writeVector(cmd, v, "stdev", out)
		},
	}

	command.Flags().Bool("stable", false, "use Welford's update, which avoids negative round-off variance")

	return command
}
