// Package cpu reports processor features and provides a monotonic tick source
// for benchmarking the fixed-point kernels.
package cpu

import (
	"fmt"
	"runtime"
	"strings"
	"sync"

	"golang.org/x/sys/cpu"
)

// Features describes the instruction set extensions visible to the process.
type Features struct {
	HasSSE2      bool
	HasSSE41     bool
	HasAVX2      bool
	HasAVX512    bool
	HasBMI2      bool
	HasNEON      bool
	Architecture string
}

var (
	detectOnce sync.Once
	detected   Features
)

// DetectFeatures reports the available CPU features for the current process.
// The result is computed once and cached.
func DetectFeatures() Features {
	detectOnce.Do(func() {
		detected = Features{
			HasSSE2:      cpu.X86.HasSSE2,
			HasSSE41:     cpu.X86.HasSSE41,
			HasAVX2:      cpu.X86.HasAVX2,
			HasAVX512:    cpu.X86.HasAVX512F,
			HasBMI2:      cpu.X86.HasBMI2,
			HasNEON:      cpu.ARM64.HasASIMD,
			Architecture: runtime.GOARCH,
		}
	})

	return detected
}

// Names lists the detected extensions in a stable order.
func (f Features) Names() []string {
	var names []string

	for _, e := range []struct {
		name string
		ok   bool
	}{
		{"sse2", f.HasSSE2},
		{"sse4.1", f.HasSSE41},
		{"avx2", f.HasAVX2},
		{"avx512f", f.HasAVX512},
		{"bmi2", f.HasBMI2},
		{"neon", f.HasNEON},
	} {
		if e.ok {
			names = append(names, e.name)
		}
	}

	return names
}

func (f Features) String() string {
	names := f.Names()
	if len(names) == 0 {
		return f.Architecture + " (generic)"
	}

	return fmt.Sprintf("%s (%s)", f.Architecture, strings.Join(names, ", "))
}
