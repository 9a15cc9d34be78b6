package main

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math/cmplx"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	fixfft "github.com/cwbudde/algo-fixfft"
	"github.com/cwbudde/algo-fixfft/internal/config"
	"github.com/cwbudde/algo-fixfft/internal/fixed"
)

var errTooManySamples = errors.New("more samples than the transform length")

func newTransformCmd(a *app) *cobra.Command {
	var opts struct {
		nlog     int
		strategy string
		window   string
		input    string
		format   string
		rescale  bool
		top      int
		raw      bool
	}

	cmd := &cobra.Command{
		Use:   "transform",
		Short: "Transform samples and print the spectrum",
		Long: "Transform samples read from a file (one float in [-1, 1) per line, '-' for stdin) " +
			"or a signal generated from the profile, and print bins 0..N/2.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := a.cfg
			flags := cmd.Flags()

			override(flags, "nlog", &cfg.Nlog, opts.nlog)
			override(flags, "strategy", &cfg.Strategy, opts.strategy)
			override(flags, "window", &cfg.Window, opts.window)
			override(flags, "format", &cfg.Output.Format, opts.format)
			override(flags, "rescale", &cfg.Output.Rescale, opts.rescale)
			override(flags, "top", &cfg.Output.Top, opts.top)

			if err := cfg.Validate(); err != nil {
				return err
			}

			plan, err := fixfft.NewPlan(cfg.Nlog, cfg.TwiddleStrategy())
			if err != nil {
				return err
			}

			samples := make([]fixfft.Q31, plan.Len())

			if opts.input != "" {
				read := readSamples
				if opts.raw {
					read = readPCM16
				}

				n, err := read(cmd.InOrStdin(), opts.input, samples)
				if err != nil {
					return err
				}

				if n < len(samples) {
					a.log.Printf("read %d samples, zero-padding to %d", n, len(samples))
				}
			} else {
				a.log.Printf("generating %s signal", cfg.Signal.Kind)
				generate(samples, cfg.Signal)
			}

			if err := fixfft.ApplyWindow(samples, samples, cfg.WindowKind()); err != nil {
				return err
			}

			spectrum := make([]fixfft.Complex, plan.Len())
			if err := plan.Forward(spectrum, samples); err != nil {
				return err
			}

			a.log.Printf("transformed %d points with the %v table", plan.Len(), plan.Strategy())

			return writeSpectrum(cmd.OutOrStdout(), spectrum, cfg)
		},
	}

	cmd.Flags().IntVarP(&opts.nlog, "nlog", "n", 0, "log2 of the transform length")
	cmd.Flags().StringVarP(&opts.strategy, "strategy", "s", "", "twiddle strategy: accuracy or size")
	cmd.Flags().StringVarP(&opts.window, "window", "w", "", "window: rect, bartlett, hann, hamming, blackman, welch, gauss, kaiser")
	cmd.Flags().StringVarP(&opts.input, "input", "i", "", "sample file, '-' for stdin (default: generated signal)")
	cmd.Flags().BoolVar(&opts.raw, "raw", false, "input is raw little-endian signed 16-bit PCM")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "output format: text or csv")
	cmd.Flags().BoolVar(&opts.rescale, "rescale", false, "multiply the spectrum by N")
	cmd.Flags().IntVar(&opts.top, "top", 0, "print only the strongest bins (text format)")

	return cmd
}

// openInput returns stdin for "-" and the opened file otherwise.
func openInput(stdin io.Reader, path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(stdin), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open samples: %w", err)
	}

	return f, nil
}

// readPCM16 reads up to len(dst) little-endian int16 samples into dst.
func readPCM16(stdin io.Reader, path string, dst []fixfft.Q31) (int, error) {
	r, err := openInput(stdin, path)
	if err != nil {
		return 0, err
	}

	defer r.Close()

	raw := make([]byte, 2*len(dst)+1)

	n, err := io.ReadFull(r, raw)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return 0, fmt.Errorf("%s: %w", path, err)
	}

	if n > 2*len(dst) {
		return 0, fmt.Errorf("%s: %w (%d)", path, errTooManySamples, len(dst))
	}

	pcm := make([]int16, n/2)
	if err := binary.Read(bytes.NewReader(raw[:2*len(pcm)]), binary.LittleEndian, pcm); err != nil {
		return 0, fmt.Errorf("%s: %w", path, err)
	}

	clear(dst)

	return fixfft.FromPCM(dst, pcm), nil
}

// readSamples parses one float per line into dst. Blank lines and lines
// starting with '#' are skipped. It returns the number of samples read.
func readSamples(stdin io.Reader, path string, dst []fixfft.Q31) (int, error) {
	r, err := openInput(stdin, path)
	if err != nil {
		return 0, err
	}

	defer r.Close()

	var (
		floats []float64
		line   int
	)

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line++

		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		v, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return 0, fmt.Errorf("%s:%d: %w", path, line, err)
		}

		if len(floats) == len(dst) {
			return 0, fmt.Errorf("%s: %w (%d)", path, errTooManySamples, len(dst))
		}

		floats = append(floats, v)
	}

	if err := sc.Err(); err != nil {
		return 0, fmt.Errorf("%s: %w", path, err)
	}

	clear(dst)

	return fixfft.FromFloats(dst, floats), nil
}

// generate fills dst with the profile's test signal.
func generate(dst []fixfft.Q31, s config.Signal) {
	amp := fixfft.FromFloat(s.Amplitude)
	phase := fixfft.FromFloat(s.Phase)

	switch s.Kind {
	case "sin":
		fixfft.GenSin(dst, s.Frequency, s.SampleRate, phase)
	case "cos":
		fixfft.GenCos(dst, s.Frequency, s.SampleRate, phase)
	case "dirac":
		fixfft.GenDirac(dst, 0)
	case "step":
		fixfft.GenStep(dst, 0, fixfft.MaxQ31, len(dst)/2)
	case "ramp":
		fixfft.GenRamp(dst, fixfft.Q31(int64(fixfft.MaxQ31)/int64(len(dst))))
	case "square":
		fixfft.GenSquare(dst, s.Frequency, s.SampleRate, 0)
	case "saw":
		fixfft.GenSaw(dst, s.Frequency, s.SampleRate, 1, 0)
	case "dcomb":
		fixfft.GenDcomb(dst, s.Frequency, s.SampleRate, 0)
	case "noise":
		fixfft.GenNoise(dst, fixfft.MaxQ31, s.Seed)
	}

	for i := range dst {
		dst[i] = fixed.Mul(dst[i], amp)
	}
}

func writeSpectrum(w io.Writer, spectrum []fixfft.Complex, cfg config.Config) error {
	n := len(spectrum)
	values := make([]complex128, n)

	if err := fixfft.ToComplex128(values, spectrum, cfg.Output.Rescale); err != nil {
		return err
	}

	bw := bufio.NewWriter(w)

	bins := make([]int, 0, n/2+1)
	if cfg.Output.Top > 0 && cfg.Output.Format == "text" {
		for _, p := range fixfft.TopBins(spectrum, cfg.Output.Top) {
			bins = append(bins, p.Bin)
		}
	} else {
		for k := 0; k <= n/2; k++ {
			bins = append(bins, k)
		}
	}

	switch cfg.Output.Format {
	case "csv":
		fmt.Fprintln(bw, "bin,frequency,re,im,magnitude")

		for _, k := range bins {
			v := values[k]
			fmt.Fprintf(bw, "%d,%g,%.10g,%.10g,%.10g\n",
				k, fixfft.BinFrequency(k, n, cfg.Signal.SampleRate), real(v), imag(v), cmplx.Abs(v))
		}
	default:
		fmt.Fprintf(bw, "%6s  %12s  %14s  %14s  %14s\n", "bin", "freq[Hz]", "re", "im", "magnitude")

		for _, k := range bins {
			v := values[k]
			fmt.Fprintf(bw, "%6d  %12.2f  %14.9f  %14.9f  %14.9f\n",
				k, fixfft.BinFrequency(k, n, cfg.Signal.SampleRate), real(v), imag(v), cmplx.Abs(v))
		}
	}

	return bw.Flush()
}
