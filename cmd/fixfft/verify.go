package main

import (
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	fixfft "github.com/cwbudde/algo-fixfft"
	"github.com/cwbudde/algo-fixfft/internal/reference"
)

var errVerifyFailed = errors.New("verification failed")

type verifyCase struct {
	name string
	fill func(dst []fixfft.Q31, seed uint64)
}

var verifyCases = []verifyCase{
	{name: "noise", fill: func(dst []fixfft.Q31, seed uint64) {
		fixfft.GenNoise(dst, fixfft.FromFloat(0.9), seed)
	}},
	{name: "tone", fill: func(dst []fixfft.Q31, seed uint64) {
		n := float64(len(dst))
		fixfft.GenSin(dst, float64(seed%uint64(len(dst)/2)+1), n, 0)
	}},
	{name: "impulse", fill: func(dst []fixfft.Q31, _ uint64) {
		fixfft.GenDirac(dst, 0)
	}},
}

func newVerifyCmd(a *app) *cobra.Command {
	var opts struct {
		minLog, maxLog int
		maxError       float64
		minSNR         float64
		seed           uint64
	}

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Compare the transform against a float64 reference",
		Long: "Transform noise, a tone and an impulse for every size and strategy, compare each " +
			"spectrum against the gonum reference and fail if the error exceeds the limits.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			v := a.cfg.Verify
			flags := cmd.Flags()

			override(flags, "min-log", &v.MinLog, opts.minLog)
			override(flags, "max-log", &v.MaxLog, opts.maxLog)
			override(flags, "max-error", &v.MaxErrorLSB, opts.maxError)
			override(flags, "min-snr", &v.MinSNR, opts.minSNR)

			if v.MinLog < fixfft.MinLog || v.MaxLog > fixfft.MaxLog || v.MinLog > v.MaxLog {
				return fmt.Errorf("%w: [%d, %d]", fixfft.ErrInvalidLength, v.MinLog, v.MaxLog)
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "strategy\tN\tsignal\tmax[LSB]\trms[LSB]\tSNR[dB]\tresult")

			failures := 0

			for _, strategy := range fixfft.Strategies() {
				for nlog := v.MinLog; nlog <= v.MaxLog; nlog++ {
					plan, err := fixfft.NewPlan(nlog, strategy)
					if err != nil {
						return err
					}

					a.log.Printf("verifying %v N=%d", strategy, plan.Len())

					for _, vc := range verifyCases {
						r, err := verifyOne(plan, vc, opts.seed+uint64(nlog))
						if err != nil {
							return err
						}

						status := "ok"
						if r.MaxAbsLSB > v.MaxErrorLSB || r.SNRdB < v.MinSNR {
							status = "FAIL"
							failures++
						}

						fmt.Fprintf(tw, "%v\t%d\t%s\t%.1f\t%.2f\t%.1f\t%s\n",
							strategy, plan.Len(), vc.name, r.MaxAbsLSB, r.RMSLSB, r.SNRdB, status)
					}
				}
			}

			if err := tw.Flush(); err != nil {
				return err
			}

			if failures > 0 {
				return fmt.Errorf("%w: %d case(s) outside max %.1f LSB / min %.1f dB",
					errVerifyFailed, failures, v.MaxErrorLSB, v.MinSNR)
			}

			return nil
		},
	}

	cmd.Flags().IntVar(&opts.minLog, "min-log", 0, "smallest nlog to verify")
	cmd.Flags().IntVar(&opts.maxLog, "max-log", 0, "largest nlog to verify")
	cmd.Flags().Float64Var(&opts.maxError, "max-error", 0, "largest accepted error in LSB")
	cmd.Flags().Float64Var(&opts.minSNR, "min-snr", 0, "smallest accepted SNR in dB")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 1, "noise seed")

	return cmd
}

func verifyOne(plan *fixfft.Plan, vc verifyCase, seed uint64) (reference.Report, error) {
	n := plan.Len()
	src := make([]fixfft.Q31, n)
	vc.fill(src, seed)

	dst := make([]fixfft.Complex, n)
	if err := plan.Forward(dst, src); err != nil {
		return reference.Report{}, err
	}

	x := make([]float64, n)
	for i, v := range src {
		x[i] = v.Float()
	}

	got := make([]complex128, n)
	if err := fixfft.ToComplex128(got, dst, false); err != nil {
		return reference.Report{}, err
	}

	want := reference.Scale(reference.RealSpectrum(x), 1/float64(n))

	return reference.Compare(got, want), nil
}
