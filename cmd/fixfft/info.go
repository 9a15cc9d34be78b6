package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	fixfft "github.com/cwbudde/algo-fixfft"
	"github.com/cwbudde/algo-fixfft/internal/cpu"
	"github.com/cwbudde/algo-fixfft/internal/fft"
)

func newInfoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Print CPU features, the Q format and table sizes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			fmt.Fprintf(out, "go:        %s %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
			fmt.Fprintf(out, "cpu:       %v\n", cpu.DetectFeatures())
			fmt.Fprintf(out, "format:    Q1.%d\n", fixfft.QBits)
			fmt.Fprintf(out, "sizes:     2^%d .. 2^%d points\n", fixfft.MinLog, fixfft.MaxLog)
			fmt.Fprintf(out, "profile:   nlog=%d strategy=%s window=%s\n", a.cfg.Nlog, a.cfg.Strategy, a.cfg.Window)
			fmt.Fprintln(out, "tables:")

			for _, strategy := range fixfft.Strategies() {
				values := fft.TableLen(fixfft.DefaultMaxLog, strategy)
				fmt.Fprintf(out, "  %-9v 2^%d points: %d values (%d bytes)\n",
					strategy, fixfft.DefaultMaxLog, values, 4*values)
			}

			return nil
		},
	}
}
