package fft

import (
	"sync"

	"github.com/cwbudde/algo-fixfft/internal/fftypes"
)

type sharedTableKey struct {
	log      int
	strategy fftypes.TwiddleStrategy
}

// sharedTables holds the process-wide tables, built at most once per key.
var sharedTables sync.Map // map[sharedTableKey]Table

// SharedTable returns the process-wide table of size 2^maxLog for strategy,
// building it on first use.
func SharedTable(maxLog int, strategy fftypes.TwiddleStrategy) (Table, error) {
	key := sharedTableKey{log: maxLog, strategy: strategy}
	if v, ok := sharedTables.Load(key); ok {
		return v.(Table), nil
	}

	tbl, err := NewTable(maxLog, strategy)
	if err != nil {
		return nil, err
	}

	actual, _ := sharedTables.LoadOrStore(key, tbl)

	return actual.(Table), nil
}
