// Package cli implements the playlist-formatter command.
package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"playlist-tool/internal/playlist"
)

// Options are the raw command line values
type Options struct {
	Input         string
	Output        string
	Basic         bool
	Numbered      bool
	Quiet         bool
	Save          bool
	UseDefaultDir bool
	Force         bool
	LogLevel      string
	ConfigPath    string
}

// Config is the validated run configuration
type Config struct {
	Input         string
	Output        string
	Style         playlist.FormattingStyle
	Quiet         bool
	Save          bool
	UseDefaultDir bool
	Force         bool
}

var errStyleConflict = errors.New("options --basic and --numbered can't be used together")

// NewConfig validates options. The input file must exist.
// An output path implies saving.
func NewConfig(opts Options) (Config, error) {
	if opts.Basic && opts.Numbered {
		return Config{}, errStyleConflict
	}

	input := strings.TrimSpace(opts.Input)
	if input == "" {
		return Config{}, errors.New("empty input file")
	}
	if _, err := os.Stat(input); err != nil {
		return Config{}, fmt.Errorf("file does not exist or is not accessible: '%s'", input)
	}

	style := playlist.StylePretty
	switch {
	case opts.Basic:
		style = playlist.StyleBasic
	case opts.Numbered:
		style = playlist.StyleNumbered
	}

	output := strings.TrimSpace(opts.Output)
	return Config{
		Input:         input,
		Output:        output,
		Style:         style,
		Quiet:         opts.Quiet,
		Save:          opts.Save || output != "",
		UseDefaultDir: opts.UseDefaultDir,
		Force:         opts.Force,
	}, nil
}
