package cpu

import "time"

// epoch anchors the tick counter so that readings stay small.
var epoch = time.Now()

// ReadCycleCounter returns a monotonic tick count in nanoseconds.
func ReadCycleCounter() int64 {
	return int64(time.Since(epoch))
}

// CyclesSince returns the number of ticks elapsed since start.
func CyclesSince(start int64) int64 {
	return ReadCycleCounter() - start
}

// CyclesToNanoseconds converts a tick count to nanoseconds.
func CyclesToNanoseconds(cycles int64) int64 {
	return cycles
}

// CyclesPerSample returns the average ticks spent per input sample when a
// transform of n points took cycles ticks over iters runs.
func CyclesPerSample(cycles int64, iters, n int) float64 {
	if iters <= 0 || n <= 0 {
		return 0
	}

	return float64(cycles) / float64(iters) / float64(n)
}
