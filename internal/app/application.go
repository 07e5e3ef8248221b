package app

import (
	"context"
	"io"
	"os"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"

	"playlist-tool/internal/config"
	"playlist-tool/internal/controllers"
	"playlist-tool/internal/logger"
	"playlist-tool/internal/models"
	"playlist-tool/internal/services"
	"playlist-tool/internal/shutdown"
	"playlist-tool/internal/version"
	"playlist-tool/internal/views"
)

const (
	WindowWidth  = 800
	WindowHeight = 600
)

// Options are the dependencies of the application
type Options struct {
	Config config.Config
	Logger logger.Logger
	// History may be nil when the history database is unavailable.
	History services.HistoryStore
	// File is loaded after the window is shown when not empty.
	File string
}

type Application struct {
	fyneApp    fyne.App
	window     fyne.Window
	logger     logger.Logger
	controller *controllers.MainController
	view       *views.MainView
	service    *services.PlaylistService
	shutdown   *shutdown.Manager
	file       string

	mu       sync.Mutex
	exitCode int
	exitSet  bool
}

// NewApplication builds the main window and wires the controller to it
func NewApplication(fyneApp fyne.App, opts Options) *Application {
	log := opts.Logger
	if log == nil {
		log = logger.NewNop()
	}

	window := fyneApp.NewWindow(views.WindowTitle)
	window.SetTitle(views.WindowTitle)
	window.Resize(fyne.NewSize(WindowWidth, WindowHeight))
	window.SetMaster()

	repo := models.NewPlaylistRepository()
	service := services.NewPlaylistService(repo, opts.History, log, opts.Config.SaveDir, opts.Config.HistoryLimit)
	controller := controllers.NewMainController(service, log)
	view := views.NewMainView(window)
	controller.SetMainView(view)

	a := &Application{
		fyneApp:    fyneApp,
		window:     window,
		logger:     log,
		controller: controller,
		view:       view,
		service:    service,
		shutdown:   shutdown.NewManager(log),
		file:       opts.File,
	}

	if closer, ok := opts.History.(io.Closer); ok {
		a.shutdown.Register(shutdown.Func(func() {
			if err := closer.Close(); err != nil {
				log.Error("Application", err, map[string]interface{}{"component": "history"})
			}
		}))
	}
	a.shutdown.Register(controller)

	controller.SetQuitHandler(func() { a.Exit(0) })
	a.setupWindowEvents()

	log.Info("Application", "initialization complete", map[string]interface{}{
		"version": version.Version,
		"history": opts.History != nil,
	})
	return a
}

func (a *Application) setupWindowEvents() {
	a.window.SetCloseIntercept(func() {
		if !a.service.Repository().Modified() {
			a.Exit(0)
			return
		}
		dialog.ShowConfirm("Quit", "The playlist name or date was edited but not saved. Quit anyway?",
			func(confirmed bool) {
				if confirmed {
					a.Exit(0)
				}
			}, a.window)
	})
}

// Run shows the window and blocks on the event loop.
// Returns the exit code set by Exit, 0 on a normal close.
func (a *Application) Run(ctx context.Context) int {
	a.shutdown.Listen(ctx, func(sig os.Signal) {
		a.Exit(shutdown.ExitCode(sig))
	})
	go func() {
		select {
		case <-ctx.Done():
			a.logger.Info("Application", "context cancelled", nil)
			fyne.Do(a.fyneApp.Quit)
		case <-a.shutdown.Done():
		}
	}()

	a.window.Show()
	a.controller.RefreshRecent()
	if a.file != "" {
		a.controller.OpenPath(a.file)
	}

	a.logger.Info("Application", "GUI displayed", nil)
	a.fyneApp.Run()

	a.shutdown.Shutdown()
	return a.ExitCode()
}

// Exit stops the event loop. The first code passed wins.
func (a *Application) Exit(code int) {
	a.mu.Lock()
	if !a.exitSet {
		a.exitCode = code
		a.exitSet = true
	}
	code = a.exitCode
	a.mu.Unlock()

	a.logger.Info("Application", "shutdown requested", map[string]interface{}{"exit_code": code})
	fyne.Do(a.fyneApp.Quit)
}

// ExitCode returns the code Run will return
func (a *Application) ExitCode() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.exitCode
}

// Window returns the main window
func (a *Application) Window() fyne.Window {
	return a.window
}

// View returns the main view
func (a *Application) View() *views.MainView {
	return a.view
}

// Controller returns the main controller
func (a *Application) Controller() *controllers.MainController {
	return a.controller
}
