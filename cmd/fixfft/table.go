package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	fixfft "github.com/cwbudde/algo-fixfft"
)

func newTableCmd(a *app) *cobra.Command {
	var opts struct {
		nlog     int
		strategy string
		format   string
		out      string
		pkg      string
		name     string
	}

	cmd := &cobra.Command{
		Use:   "table",
		Short: "Generate a twiddle table offline",
		Long: "Generate a twiddle table as YAML (loadable with fixfft.ImportTable) or as Go source " +
			"(loadable with fixfft.LoadTable).",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			strategy, err := fixfft.ParseTwiddleStrategy(opts.strategy)
			if err != nil {
				return err
			}

			tbl, err := fixfft.NewTable(opts.nlog, strategy)
			if err != nil {
				return err
			}

			var write func(io.Writer) error

			switch opts.format {
			case "yaml":
				write = func(w io.Writer) error { return fixfft.WriteTableYAML(w, tbl) }
			case "go":
				write = func(w io.Writer) error { return fixfft.WriteTableGo(w, opts.pkg, opts.name, tbl) }
			default:
				return fmt.Errorf("unknown table format %q (want yaml or go)", opts.format)
			}

			if opts.out == "" {
				err = write(cmd.OutOrStdout())
			} else {
				err = writeFile(opts.out, write)
			}

			if err != nil {
				return err
			}

			a.log.Printf("wrote %v table for 2^%d points (%d values)", strategy, opts.nlog, len(tbl.Values()))

			return nil
		},
	}

	cmd.Flags().IntVarP(&opts.nlog, "nlog", "n", fixfft.DefaultMaxLog, "log2 of the table size")
	cmd.Flags().StringVarP(&opts.strategy, "strategy", "s", "accuracy", "twiddle strategy: accuracy or size")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "yaml", "output format: yaml or go")
	cmd.Flags().StringVarP(&opts.out, "out", "o", "", "output file (default: stdout)")
	cmd.Flags().StringVar(&opts.pkg, "package", "twiddle", "package name for Go output")
	cmd.Flags().StringVar(&opts.name, "name", "Table", "variable name for Go output")

	return cmd
}

// writeFile creates path, fills it with write and returns the close error.
func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create table file: %w", err)
	}

	defer f.Close()

	if err := write(f); err != nil {
		return fmt.Errorf("failed to write table file: %w", err)
	}

	return f.Close()
}
