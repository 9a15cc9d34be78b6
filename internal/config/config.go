// Package config loads analysis profiles for the fixfft command.
package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/exp/slices"
	"gopkg.in/yaml.v3"

	fixfft "github.com/cwbudde/algo-fixfft"
	"github.com/cwbudde/algo-fixfft/internal/fftypes"
)

//go:embed default.yaml
var rawDefault []byte

// ErrInvalidConfig is returned by Validate for out of range or unknown values.
var ErrInvalidConfig = errors.New("invalid config")

// Signal kinds understood by the transform command.
var SignalKinds = []string{"sin", "cos", "dirac", "step", "ramp", "square", "saw", "dcomb", "noise"}

// Output formats.
var Formats = []string{"text", "csv"}

// Config is an analysis profile: transform size, twiddle strategy, window
// and the settings of each subcommand.
type Config struct {
	Nlog     int    `yaml:"nlog"`
	Strategy string `yaml:"strategy"`
	Window   string `yaml:"window"`
	Signal   Signal `yaml:"signal"`
	Output   Output `yaml:"output"`
	Bench    Bench  `yaml:"bench"`
	Verify   Verify `yaml:"verify"`
}

// Signal describes the test signal generated when no input is given.
// Phase is in [-1, 1), where 1 stands for pi.
type Signal struct {
	Kind       string  `yaml:"kind"`
	Frequency  float64 `yaml:"frequency"`
	SampleRate float64 `yaml:"sampleRate"`
	Amplitude  float64 `yaml:"amplitude"`
	Phase      float64 `yaml:"phase"`
	Seed       uint64  `yaml:"seed"`
}

// Output controls how spectra are printed. Rescale undoes the 1/N scaling;
// Top limits text output to the strongest bins.
type Output struct {
	Format  string `yaml:"format"`
	Rescale bool   `yaml:"rescale"`
	Top     int    `yaml:"top"`
}

// Bench sets the iteration counts of the bench command.
type Bench struct {
	Iterations int `yaml:"iterations"`
	Warmup     int `yaml:"warmup"`
}

// Verify sets the size range and the pass thresholds of the verify command.
type Verify struct {
	MinLog      int     `yaml:"minLog"`
	MaxLog      int     `yaml:"maxLog"`
	MaxErrorLSB float64 `yaml:"maxErrorLSB"`
	MinSNR      float64 `yaml:"minSNR"`
}

// Default returns the embedded default profile.
func Default() Config {
	var c Config
	if err := yaml.Unmarshal(rawDefault, &c); err != nil {
		panic(fmt.Sprintf("config: embedded defaults: %v", err))
	}

	return c
}

// Parse decodes a profile on top of the defaults. Unknown keys are rejected.
func Parse(data []byte) (Config, error) {
	c := Default()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}

	if err := c.Validate(); err != nil {
		return Config{}, err
	}

	return c, nil
}

// Load reads and parses the profile at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}

	c, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}

	return c, nil
}

// Validate checks every field against the ranges the library accepts.
func (c Config) Validate() error {
	var errs []error

	if c.Nlog < fixfft.MinLog || c.Nlog > fixfft.MaxLog {
		errs = append(errs, fmt.Errorf("nlog %d outside [%d, %d]", c.Nlog, fixfft.MinLog, fixfft.MaxLog))
	}

	if _, err := fftypes.ParseTwiddleStrategy(c.Strategy); err != nil {
		errs = append(errs, err)
	}

	if _, err := fixfft.ParseWindow(c.Window); err != nil {
		errs = append(errs, err)
	}

	if !slices.Contains(SignalKinds, c.Signal.Kind) {
		errs = append(errs, fmt.Errorf("signal kind %q not one of %v", c.Signal.Kind, SignalKinds))
	}

	if c.Signal.SampleRate <= 0 {
		errs = append(errs, fmt.Errorf("sample rate %v must be positive", c.Signal.SampleRate))
	}

	if c.Signal.Amplitude < 0 || c.Signal.Amplitude > 1 {
		errs = append(errs, fmt.Errorf("amplitude %v outside [0, 1]", c.Signal.Amplitude))
	}

	if !slices.Contains(Formats, c.Output.Format) {
		errs = append(errs, fmt.Errorf("output format %q not one of %v", c.Output.Format, Formats))
	}

	if c.Output.Top < 0 {
		errs = append(errs, fmt.Errorf("output top %d is negative", c.Output.Top))
	}

	if c.Bench.Iterations <= 0 || c.Bench.Warmup < 0 {
		errs = append(errs, fmt.Errorf("bench iterations %d / warmup %d", c.Bench.Iterations, c.Bench.Warmup))
	}

	if c.Verify.MinLog < fixfft.MinLog || c.Verify.MaxLog > fixfft.MaxLog || c.Verify.MinLog > c.Verify.MaxLog {
		errs = append(errs, fmt.Errorf("verify range [%d, %d]", c.Verify.MinLog, c.Verify.MaxLog))
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}

	return nil
}

// TwiddleStrategy returns the parsed strategy. Validate must have passed.
func (c Config) TwiddleStrategy() fixfft.TwiddleStrategy {
	s, _ := fftypes.ParseTwiddleStrategy(c.Strategy)
	return s
}

// WindowKind returns the parsed window. Validate must have passed.
func (c Config) WindowKind() fixfft.Window {
	w, _ := fixfft.ParseWindow(c.Window)
	return w
}
