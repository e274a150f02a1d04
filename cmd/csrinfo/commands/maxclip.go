package commands

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/cwbudde/algo-sparse/internal/csrio"
	"github.com/cwbudde/algo-sparse/sparse/clip"
	"github.com/cwbudde/algo-sparse/sparse/csr"
)

var (
	errBoundShape  = errors.New("bound matrix shape does not match input")
	errOffsetCount = errors.New("offset needs one value or one per row")
)

func newMaxClipCommand(v *viper.Viper) *cobra.Command {
	command := &cobra.Command{
		Use:   "maxclip",
		Short: "Cap stored values at a per-row offset plus an aligned bound matrix",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := loadCanonical(cmd, v)
			if err != nil {
				return err
			}

			bound, err := loadBound(v, m)
			if err != nil {
				return err
			}
			if bound.Rows() != m.Rows() || bound.NumCols != m.NumCols {
				return fmt.Errorf("%w: %dx%d vs %dx%d", errBoundShape, bound.Rows(), bound.NumCols, m.Rows(), m.NumCols)
			}

			offsets, err := readOffsets(v.Get("offset"))
			if err != nil {
				return err
			}
			c, err := broadcast(offsets, m.Rows())
			if err != nil {
				return err
			}

			if err := clip.MaxClip(m, bound, c, kernelOptions(v)...); err != nil {
				return err
			}

			return writeMatrix(cmd, v, m)
		},
	}

	command.Flags().String("bound", "", "bound matrix file; an empty bound matrix is used when unset")
	command.Flags().StringSlice("offset", []string{"0"}, "per-row ceiling, a single value applies to every row")

	return command
}

// loadBound reads the --bound matrix, or returns a matrix with the shape of
// m and no stored entries.
func loadBound(v *viper.Viper, m csrio.Matrix) (csrio.Matrix, error) {
	path := v.GetString("bound")
	if path == "" {
		return csr.New[int64, float64](m.NumCols, make([]int64, m.Rows()+1), nil, nil), nil
	}

	b, err := csrio.ReadFile(path)
	if err != nil {
		return csrio.Matrix{}, err
	}
	if !b.IsCanonical() && v.GetBool("sort") {
		csr.SortIndices(b, kernelOptions(v)...)
	}
	if !b.IsCanonical() {
		return csrio.Matrix{}, fmt.Errorf("bound: %w", csr.ErrNotCanonical)
	}

	return b, nil
}

// readOffsets converts the offset setting to numbers. The flag yields a
// string slice, CSRINFO_OFFSET a comma or space separated string, and a
// config file either a list or a single number.
func readOffsets(raw any) ([]float64, error) {
	var items []any
	switch raw := raw.(type) {
	case nil:
		return nil, nil
	case string:
		for _, field := range strings.FieldsFunc(raw, func(r rune) bool { return r == ',' || unicode.IsSpace(r) }) {
			items = append(items, field)
		}
	case []string:
		for _, field := range raw {
			items = append(items, strings.TrimSpace(field))
		}
	case []any:
		items = raw
	default:
		items = []any{raw}
	}

	offsets := make([]float64, 0, len(items))
	for _, item := range items {
		f, err := cast.ToFloat64E(item)
		if err != nil {
			return nil, fmt.Errorf("offset: %w", err)
		}
		offsets = append(offsets, f)
	}

	return offsets, nil
}

func broadcast(offsets []float64, rows int) ([]float64, error) {
	switch len(offsets) {
	case rows:
		return offsets, nil
	case 1:
		c := make([]float64, rows)
		for i := range c {
			c[i] = offsets[0]
		}

		return c, nil
	default:
		return nil, fmt.Errorf("%w: got %d values for %d rows", errOffsetCount, len(offsets), rows)
	}
}
