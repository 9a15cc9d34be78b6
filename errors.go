package fixfft

import "errors"

// Sentinel errors returned by transform and table operations.
var (
	// ErrInvalidLength is returned when nlog is outside [MinLog, MaxLog].
	ErrInvalidLength = errors.New("fixfft: invalid FFT length")

	// ErrNilSlice is returned when a nil slice is passed to a transform method.
	ErrNilSlice = errors.New("fixfft: nil slice")

	// ErrLengthMismatch is returned when input/output slice sizes don't match
	// the Plan's expected dimensions.
	ErrLengthMismatch = errors.New("fixfft: slice length mismatch")

	// ErrAliasedBuffers is returned when the output shares memory with the input.
	ErrAliasedBuffers = errors.New("fixfft: output overlaps input")

	// ErrTableTooSmall is returned when a twiddle table has fewer points
	// than the transform.
	ErrTableTooSmall = errors.New("fixfft: twiddle table too small")

	// ErrInvalidStrategy is returned for an unknown twiddle strategy.
	ErrInvalidStrategy = errors.New("fixfft: invalid twiddle strategy")

	// ErrInvalidTable is returned for a nil table or a malformed table file.
	ErrInvalidTable = errors.New("fixfft: invalid twiddle table")

	// ErrInvalidWindow is returned for an unknown window name or kind.
	ErrInvalidWindow = errors.New("fixfft: invalid window")
)
