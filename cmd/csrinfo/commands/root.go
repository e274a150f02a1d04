// Package commands implements the csrinfo subcommands.
package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/cwbudde/algo-sparse/internal/csrio"
	"github.com/cwbudde/algo-sparse/internal/logging"
	"github.com/cwbudde/algo-sparse/sparse/core"
	"github.com/cwbudde/algo-sparse/sparse/csr"
)

// EnvPrefix prefixes the environment variables that override flags.
const EnvPrefix = "CSRINFO"

var errInvalidWindow = errors.New("window must be positive")

// Execute runs the root command and exits with status 1 on failure.
func Execute() {
	if err := NewRootCommand().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

// NewRootCommand builds the csrinfo command tree. Each call returns an
// independent tree with its own configuration.
func NewRootCommand() *cobra.Command {
	v := viper.New()

	command := &cobra.Command{
		Use:          "csrinfo",
		Short:        "Inspect and transform CSR matrices stored as JSON",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := loadConfig(v, cmd); err != nil {
				return err
			}
			logger := logging.NewLogger().Named(cmd.Name())
			cmd.SetContext(logging.WithLogger(cmd.Context(), logger))

			return nil
		},
	}

	flags := command.PersistentFlags()
	flags.StringP("file", "f", "-", "input matrix, - for stdin")
	flags.Int("workers", 0, "maximum worker goroutines, 0 for GOMAXPROCS")
	flags.Int("grain", 0, "minimum rows per worker, 0 for the default")
	flags.Bool("table", false, "print an aligned table instead of JSON")
	flags.Bool("sort", false, "sort unsorted rows instead of rejecting them")
	flags.String("config", "", "config file (yaml, json or toml)")

	command.AddCommand(
		newCheckCommand(v),
		newRollingCommand(v),
		newConvolveCommand(v),
		newMaxClipCommand(v),
		newStdevCommand(v),
		newTransposeCommand(v),
		newKernelsCommand(v),
	)

	return command
}

func loadConfig(v *viper.Viper, cmd *cobra.Command) error {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return err
	}

	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to load configuration file. %w", err)
		}
	}

	return nil
}

func kernelOptions(v *viper.Viper) []core.Option {
	return []core.Option{
		core.WithWorkers(v.GetInt("workers")),
		core.WithGrain(v.GetInt("grain")),
	}
}

func openInput(cmd *cobra.Command, v *viper.Viper) (io.ReadCloser, error) {
	path := v.GetString("file")
	if path == "-" {
		return io.NopCloser(cmd.InOrStdin()), nil
	}

	return os.Open(path)
}

// loadCanonical reads the input matrix and makes sure its rows are
// canonical, sorting them first when --sort is set.
func loadCanonical(cmd *cobra.Command, v *viper.Viper) (csrio.Matrix, error) {
	logger := logging.FromContext(cmd.Context())

	in, err := openInput(cmd, v)
	if err != nil {
		return csrio.Matrix{}, err
	}
	defer in.Close()

	m, err := csrio.Load(in)
	if err != nil {
		return csrio.Matrix{}, err
	}
	logger.Debugw("Loaded matrix", "rows", m.Rows(), "cols", m.NumCols, "nnz", m.NNZ())

	if !m.IsCanonical() && v.GetBool("sort") {
		logger.Warnw("Sorting unsorted rows", "rows", m.Rows())
		csr.SortIndices(m, kernelOptions(v)...)
	}
	if !m.IsCanonical() {
		return csrio.Matrix{}, fmt.Errorf("%w (use --sort for unsorted rows)", csr.ErrNotCanonical)
	}

	return m, nil
}

func windowFlag(v *viper.Viper) (int, error) {
	w := v.GetInt("window")
	if w <= 0 {
		return 0, fmt.Errorf("%w, got %d", errInvalidWindow, w)
	}

	return w, nil
}
