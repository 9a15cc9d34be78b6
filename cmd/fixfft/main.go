// Command fixfft transforms, verifies and benchmarks the fixed-point FFT and
// generates twiddle tables offline.
package main

import (
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-fixfft/internal/config"
)

// app holds the state shared by all subcommands.
type app struct {
	configPath string
	verbose    bool

	cfg config.Config
	log *log.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{log: log.New(io.Discard, "fixfft: ", 0)}

	rootCmd := &cobra.Command{
		Use:           "fixfft",
		Short:         "Fixed-point Q31 real-to-complex FFT",
		Long:          "Transform, verify and benchmark the Q1.31 radix-4 FFT and generate its twiddle tables.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if a.verbose {
				a.log.SetOutput(cmd.ErrOrStderr())
			}

			if a.configPath == "" {
				a.cfg = config.Default()
				return nil
			}

			cfg, err := config.Load(a.configPath)
			if err != nil {
				return err
			}

			a.log.Printf("loaded profile %s", a.configPath)
			a.cfg = cfg

			return nil
		},
	}

	rootCmd.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "YAML analysis profile (default: built-in profile)")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log progress to stderr")

	rootCmd.AddCommand(
		newTransformCmd(a),
		newVerifyCmd(a),
		newBenchCmd(a),
		newTableCmd(a),
		newInfoCmd(a),
	)

	return rootCmd
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("fixfft: ")

	if err := newRootCmd().Execute(); err != nil {
		log.Print(err)
		os.Exit(1)
	}
}
