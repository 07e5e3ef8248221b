package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/Rican7/lieut"
	"github.com/rs/zerolog"

	"playlist-tool/internal/cmdline"
	"playlist-tool/internal/config"
	"playlist-tool/internal/logger"
	"playlist-tool/internal/version"
)

const (
	commandName = "playlist-formatter"
	component   = "Formatter"
)

// Run parses args (without the program name) and formats the playlist.
// Returns the process exit code.
func Run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	var opts Options
	flags := newFlagSet(&opts)

	app := lieut.NewSingleCommandApp(
		lieut.AppInfo{
			Name:    commandName,
			Summary: "Format DJ playlists exported from Serato and Rekordbox",
			Usage:   "[options] <file> [output]",
			Version: version.Version,
		},
		func(ctx context.Context, arguments []string) error {
			arguments, err := interleaved(flags, arguments)
			if err != nil {
				return err
			}
			if len(arguments) > 0 {
				opts.Input = arguments[0]
			}
			if len(arguments) > 1 {
				opts.Output = arguments[1]
			}
			if len(arguments) > 2 {
				return fmt.Errorf("unexpected arguments: %v", arguments[2:])
			}
			return execute(ctx, opts, stdout, stderr)
		},
		flags,
		stdout,
		stderr,
	)

	args = cmdline.Args(args)
	if cmdline.Requested(flags, args, "version") {
		_, _ = fmt.Fprintln(stdout, version.Version)
		return 0
	}
	if cmdline.Requested(flags, args, "help") {
		args = []string{"--help"}
	}
	return app.Run(ctx, args)
}

func newFlagSet(opts *Options) *flag.FlagSet {
	flags := flag.NewFlagSet(commandName, flag.ContinueOnError)
	boolFlag(flags, &opts.Basic, "b", "basic", "Use basic print style")
	boolFlag(flags, &opts.Numbered, "n", "numbered", "Use numbered print style")
	boolFlag(flags, &opts.Quiet, "q", "quiet", "Don't print tracks")
	boolFlag(flags, &opts.Save, "s", "save", "Save formatted playlist to file")
	boolFlag(flags, &opts.UseDefaultDir, "d", "default", "Use default save dir for a bare output file name")
	boolFlag(flags, &opts.Force, "f", "force", "Overwrite an existing output file")
	flags.StringVar(&opts.LogLevel, "l", "", "Log level: trace, debug, info, warn, error")
	flags.StringVar(&opts.LogLevel, "log", "", "Log level: trace, debug, info, warn, error")
	flags.StringVar(&opts.ConfigPath, "config", "", "Config file path (default "+config.DefaultPath()+")")
	return flags
}

func boolFlag(flags *flag.FlagSet, target *bool, short, long, usage string) {
	flags.BoolVar(target, short, false, usage)
	flags.BoolVar(target, long, false, usage)
}

// interleaved collects positional arguments while parsing flags that follow them,
// so "playlist.csv --save" works like "--save playlist.csv".
func interleaved(flags *flag.FlagSet, args []string) ([]string, error) {
	var positionals []string
	for len(args) > 0 {
		arg := args[0]
		if arg == "--" {
			return append(positionals, args[1:]...), nil
		}
		if len(arg) < 2 || arg[0] != '-' {
			positionals = append(positionals, arg)
			args = args[1:]
			continue
		}
		if err := flags.Parse(args); err != nil {
			return nil, err
		}
		args = flags.Args()
	}
	return positionals, nil
}

func execute(ctx context.Context, opts Options, stdout, stderr io.Writer) error {
	cfg, err := NewConfig(opts)
	if err != nil {
		return err
	}

	settings, err := config.Load(opts.ConfigPath)
	if err != nil {
		return err
	}

	level, err := resolveLevel(opts.LogLevel, settings.LogLevel)
	if err != nil {
		return err
	}
	log := logger.NewConsoleLogger(stderr, level)

	f := &Formatter{
		Config:   cfg,
		Settings: settings,
		Log:      log,
		Out:      stdout,
	}
	return f.Run(ctx)
}

// resolveLevel picks the command line level, then the config level, then the environment
func resolveLevel(flagValue, configValue string) (zerolog.Level, error) {
	if flagValue != "" {
		return logger.ParseLevel(flagValue)
	}
	if configValue != "" {
		return logger.ParseLevel(configValue)
	}
	return logger.LevelFromEnv(os.Getenv), nil
}
