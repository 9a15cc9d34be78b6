package main

import "github.com/spf13/pflag"

// override copies v into dst when the named flag was given on the command
// line, so profile values survive unset flags.
func override[T any](flags *pflag.FlagSet, name string, dst *T, v T) {
	if flags.Changed(name) {
		*dst = v
	}
}
