package app

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"
	"github.com/Rican7/lieut"
	"github.com/rs/zerolog"

	"playlist-tool/internal/cmdline"
	"playlist-tool/internal/config"
	"playlist-tool/internal/history"
	"playlist-tool/internal/logger"
	"playlist-tool/internal/services"
	"playlist-tool/internal/version"
	"playlist-tool/internal/views"
)

const commandName = "playlist-tool"

// Factory creates the process-wide fyne application
type Factory func() fyne.App

// NewFyneApp registers the application metadata and creates the fyne app
func NewFyneApp() fyne.App {
	fyneapp.SetMetadata(fyne.AppMetadata{
		ID:      version.AppID,
		Name:    version.AppName,
		Version: version.Version,
		Custom:  map[string]string{"Organization": version.Organization},
	})
	return fyneapp.NewWithID(version.AppID)
}

// Run handles --help and --version, then runs the GUI until its window closes.
// args excludes the program name. factory is only called when the GUI starts.
func Run(ctx context.Context, args []string, stdout, stderr io.Writer, factory Factory) int {
	exitCode := 0
	flags := flag.NewFlagSet(commandName, flag.ContinueOnError)

	cli := lieut.NewSingleCommandApp(
		lieut.AppInfo{
			Name:    commandName,
			Summary: views.WindowTitle,
			Usage:   "[playlist file]",
			Version: version.Version,
		},
		func(ctx context.Context, arguments []string) error {
			if len(arguments) > 1 {
				return fmt.Errorf("expected at most one playlist file, got %d arguments", len(arguments))
			}
			file := ""
			if len(arguments) == 1 {
				file = arguments[0]
			}
			exitCode = start(ctx, factory, file, stderr)
			return nil
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

	if code := cli.Run(ctx, args); code != 0 {
		return code
	}
	return exitCode
}

func start(ctx context.Context, factory Factory, file string, stderr io.Writer) int {
	cfg, cfgErr := config.Ensure("")
	if cfgErr != nil {
		cfg = config.Default()
	}

	log := logger.NewConsoleLogger(stderr, guiLevel(cfg.LogLevel, os.Getenv))
	if cfgErr != nil {
		log.Warning("Application", "using default settings", map[string]interface{}{"error": cfgErr.Error()})
	}

	var store services.HistoryStore
	if db, err := history.Open(cfg.HistoryDB); err != nil {
		log.Warning("Application", "history unavailable", map[string]interface{}{"error": err.Error()})
	} else {
		store = db
	}

	application := NewApplication(factory(), Options{
		Config:  cfg,
		Logger:  log,
		History: store,
		File:    file,
	})
	return application.Run(ctx)
}

// guiLevel prefers LOG_LEVEL and DEBUG from the environment over the config file
func guiLevel(configured string, getenv func(string) string) zerolog.Level {
	if getenv("LOG_LEVEL") == "" && getenv("DEBUG") == "" && configured != "" {
		if level, err := logger.ParseLevel(configured); err == nil {
			return level
		}
	}
	return logger.LevelFromEnv(getenv)
}
