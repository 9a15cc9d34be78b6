package main

import (
	"fmt"
	"runtime"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	fixfft "github.com/cwbudde/algo-fixfft"
	"github.com/cwbudde/algo-fixfft/internal/cpu"
	m "github.com/cwbudde/algo-fixfft/internal/math"
)

type benchResult struct {
	size      int
	strategy  fixfft.TwiddleStrategy
	nsPerOp   float64
	perSample float64
}

func newBenchCmd(a *app) *cobra.Command {
	var opts struct {
		sizes  string
		iters  int
		warmup int
		seed   uint64
	}

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time both twiddle strategies per size",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sizes, err := parseSizes(opts.sizes)
			if err != nil {
				return err
			}

			iters, warmup := a.cfg.Bench.Iterations, a.cfg.Bench.Warmup
			override(cmd.Flags(), "iters", &iters, opts.iters)
			override(cmd.Flags(), "warmup", &warmup, opts.warmup)

			if iters <= 0 || warmup < 0 {
				return fmt.Errorf("invalid iterations %d / warmup %d", iters, warmup)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "cpu=%v iters=%d warmup=%d\n", cpu.DetectFeatures(), iters, warmup)
			fmt.Fprintf(out, "%8s  %10s  %12s  %12s\n", "size", "strategy", "ns/op", "ns/sample")

			for _, n := range sizes {
				results, err := benchmarkSize(n, iters, warmup, opts.seed)
				if err != nil {
					return err
				}

				sort.Slice(results, func(i, j int) bool {
					return results[i].nsPerOp < results[j].nsPerOp
				})

				for _, res := range results {
					fmt.Fprintf(out, "%8d  %10v  %12.1f  %12.2f\n", n, res.strategy, res.nsPerOp, res.perSample)
				}

				a.log.Printf("size %d done", n)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&opts.sizes, "sizes", "64,256,1024,4096", "comma-separated transform lengths")
	cmd.Flags().IntVar(&opts.iters, "iters", 0, "benchmark iterations (default: profile)")
	cmd.Flags().IntVar(&opts.warmup, "warmup", 0, "warmup iterations (default: profile)")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 1, "noise seed")

	return cmd
}

func benchmarkSize(n, iters, warmup int, seed uint64) ([]benchResult, error) {
	nlog := m.Log2(n)

	src := make([]fixfft.Q31, n)
	fixfft.GenNoise(src, fixfft.FromFloat(0.5), seed)

	dst := make([]fixfft.Complex, n)
	results := make([]benchResult, 0, len(fixfft.Strategies()))

	for _, strategy := range fixfft.Strategies() {
		plan, err := fixfft.NewPlan(nlog, strategy)
		if err != nil {
			return nil, err
		}

		for range warmup {
			plan.ForwardUnchecked(dst, src)
		}

		runtime.GC()

		start := cpu.ReadCycleCounter()

		for range iters {
			plan.ForwardUnchecked(dst, src)
		}

		elapsed := cpu.CyclesSince(start)

		results = append(results, benchResult{
			size:      n,
			strategy:  strategy,
			nsPerOp:   float64(cpu.CyclesToNanoseconds(elapsed)) / float64(iters),
			perSample: cpu.CyclesPerSample(cpu.CyclesToNanoseconds(elapsed), iters, n),
		})
	}

	return results, nil
}

// parseSizes parses a comma-separated list of power-of-two lengths within
// the supported range.
func parseSizes(list string) ([]int, error) {
	parts := strings.Split(list, ",")

	out := make([]int, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		var n int

		if _, err := fmt.Sscanf(part, "%d", &n); err != nil {
			return nil, fmt.Errorf("size %q: %w", part, err)
		}

		if !m.IsPowerOf2(n) || n < 1<<fixfft.MinLog || n > 1<<fixfft.MaxLog {
			return nil, fmt.Errorf("%w: size %d", fixfft.ErrInvalidLength, n)
		}

		out = append(out, n)
	}

	if len(out) == 0 {
		return nil, fmt.Errorf("%w: no sizes specified", fixfft.ErrInvalidLength)
	}

	return out, nil
}
