// Package cmdline holds argument handling shared by the GUI and CLI entry points.
package cmdline

import (
	"flag"
	"strconv"
	"strings"
)

const terminator = "--"

// Args keeps an empty argument list empty when handed to lieut, which would
// otherwise fall back to os.Args.
func Args(args []string) []string {
	if len(args) == 0 {
		return []string{terminator}
	}
	return args
}

// Requested reports whether the boolean flag name is set anywhere in args
// before a "--" terminator, including after positional arguments.
// Values of the non-boolean flags defined on flags are skipped.
func Requested(flags *flag.FlagSet, args []string, name string) bool {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == terminator {
			return false
		}
		if len(arg) < 2 || arg[0] != '-' {
			continue
		}

		key, value, hasValue := strings.Cut(strings.TrimPrefix(arg[1:], "-"), "=")
		if key == name {
			if !hasValue {
				return true
			}
			set, err := strconv.ParseBool(value)
			return err == nil && set
		}

		if f := flags.Lookup(key); f != nil && !hasValue && !isBool(f) {
			i++
		}
	}
	return false
}

func isBool(f *flag.Flag) bool {
	b, ok := f.Value.(interface{ IsBoolFlag() bool })
	return ok && b.IsBoolFlag()
}
