package commands

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/cwbudde/algo-sparse/sparse/csr"
)

func newTransposeCommand(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "transpose",
		Short: "Print the transpose of a matrix, which is its CSC form",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := loadCanonical(cmd, v)
			if err != nil {
				return err
			}

			return writeMatrix(cmd, v, csr.Transpose(m))
		},
	}
}
