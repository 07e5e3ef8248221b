package cmdline

import (
	"flag"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newFlags() *flag.FlagSet {
	flags := flag.NewFlagSet("test", flag.ContinueOnError)
	flags.Bool("q", false, "")
	flags.String("log", "", "")
	return flags
}

func TestArgs(t *testing.T) {
	assert.Equal(t, []string{"--"}, Args(nil))
	assert.Equal(t, []string{"--"}, Args([]string{}))
	assert.Equal(t, []string{"a.csv"}, Args([]string{"a.csv"}))
}

func TestRequested(t *testing.T) {
	flags := newFlags()

	tests := []struct {
		name string
		args []string
		want bool
	}{
		{"leading", []string{"--version"}, true},
		{"single dash", []string{"-version"}, true},
		{"after positional", []string{"a.csv", "-q", "--version"}, true},
		{"explicit true", []string{"a.csv", "--version=true"}, true},
		{"explicit false", []string{"--version=false"}, false},
		{"after terminator", []string{"a.csv", "--", "--version"}, false},
		{"flag value", []string{"--log", "--version", "a.csv"}, false},
		{"flag value with equals", []string{"--log=debug", "--version"}, true},
		{"absent", []string{"a.csv", "-q"}, false},
		{"empty", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Requested(flags, tt.args, "version"))
		})
	}
}
