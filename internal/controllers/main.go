package controllers

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"

	"fyne.io/fyne/v2"

	"playlist-tool/internal/history"
	"playlist-tool/internal/logger"
	"playlist-tool/internal/services"
	"playlist-tool/internal/version"
	"playlist-tool/internal/views"
)

// MainController connects the playlist service to the main view
type MainController struct {
	service  *services.PlaylistService
	mainView *views.MainView
	log      logger.Logger

	ctx    context.Context
	cancel context.CancelFunc
	tasks  sync.WaitGroup

	mu          sync.Mutex
	busy        bool
	quitHandler func()
}

// NewMainController creates a new main controller
func NewMainController(service *services.PlaylistService, log logger.Logger) *MainController {
	ctx, cancel := context.WithCancel(context.Background())
	return &MainController{
		service: service,
		log:     log,
		ctx:     ctx,
		cancel:  cancel,
	}
}

// SetMainView associates the main view with this controller
func (mc *MainController) SetMainView(view *views.MainView) {
	mc.mainView = view

	view.SetOpenHandler(mc.OpenDialog)
	view.SetSaveHandler(mc.SaveDialog)
	view.SetDropHandler(mc.OpenPath)
	view.SetNameChangeHandler(mc.Rename)
	view.SetDateChangeHandler(mc.ChangeDate)

	menu := view.Menu()
	menu.SetOpenHandler(mc.OpenDialog)
	menu.SetSaveHandler(mc.SaveDialog)
	menu.SetRecentHandler(mc.OpenPath)
	menu.SetAboutHandler(mc.ShowAbout)
	menu.SetQuitHandler(mc.Quit)
}

// SetQuitHandler sets what File > Quit does
func (mc *MainController) SetQuitHandler(handler func()) {
	mc.mu.Lock()
	defer mc.mu.Unlock()
	mc.quitHandler = handler
}

// OpenDialog asks the user for a playlist file
func (mc *MainController) OpenDialog() {
	mc.mainView.ShowOpenDialog(mc.OpenPath)
}

// OpenPath loads a playlist in the background
func (mc *MainController) OpenPath(path string) {
	name := filepath.Base(path)
	mc.run("Loading "+name, func(ctx context.Context) (func(), error) {
		p, err := mc.service.Load(ctx, path)
		if err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", name, err)
		}
		recent := mc.recent(ctx)
		return func() {
			mc.mainView.ShowPlaylist(p)
			mc.mainView.Menu().SetRecent(recent)
			mc.mainView.UpdateStatus(fmt.Sprintf("Loaded %s playlist %s", p.Type, name))
		}, nil
	})
}

// SaveDialog asks for an output file, suggesting the default location
func (mc *MainController) SaveDialog() {
	dir, fileName, err := mc.service.SuggestedOutput()
	if err != nil {
		mc.handleError("Save failed", err)
		return
	}
	mc.mainView.ShowSaveDialog(dir, fileName, func(path string) {
		mc.SavePath(path, true)
	})
}

// SavePath writes the current playlist in the background.
// An empty path saves to the default location.
func (mc *MainController) SavePath(path string, overwrite bool) {
	mc.run("Saving playlist", func(ctx context.Context) (func(), error) {
		saved, err := mc.service.Save(ctx, path, overwrite)
		if err != nil {
			return nil, fmt.Errorf("failed to save playlist: %w", err)
		}
		return func() {
			mc.mainView.UpdateStatus("Saved to " + saved)
		}, nil
	})
}

// Rename updates the playlist name from the form
func (mc *MainController) Rename(name string) {
	if err := mc.service.Repository().SetName(name); err != nil {
		mc.mainView.UpdateStatus(err.Error())
	}
}

// ChangeDate updates the playlist date from the form. Invalid input is reported in the status bar.
func (mc *MainController) ChangeDate(value string) {
	if err := mc.service.Repository().SetDate(value); err != nil {
		mc.mainView.UpdateStatus(err.Error())
		return
	}
	mc.mainView.UpdateStatus(readyStatus)
}

// RefreshRecent reloads the Open Recent menu
func (mc *MainController) RefreshRecent() {
	mc.tasks.Add(1)
	go func() {
		defer mc.tasks.Done()
		recent := mc.recent(mc.ctx)
		fyne.Do(func() {
			mc.mainView.Menu().SetRecent(recent)
		})
	}()
}

func (mc *MainController) recent(ctx context.Context) []history.Entry {
	entries, err := mc.service.Recent(ctx)
	if err != nil {
		mc.log.Warning("MainController", "recent playlists unavailable", map[string]interface{}{"error": err.Error()})
		return nil
	}
	return entries
}

// ShowAbout shows the application name and version
func (mc *MainController) ShowAbout() {
	mc.mainView.ShowAboutDialog(views.WindowTitle, version.Version, version.Organization)
}

// Quit runs the quit handler
func (mc *MainController) Quit() {
	mc.mu.Lock()
	handler := mc.quitHandler
	mc.mu.Unlock()
	if handler != nil {
		handler()
	}
}

const readyStatus = "Ready"

var errBusy = errors.New("another file operation is still running")

// run executes work off the UI goroutine. The returned function updates the view.
func (mc *MainController) run(status string, work func(ctx context.Context) (func(), error)) {
	mc.mu.Lock()
	if mc.busy {
		mc.mu.Unlock()
		mc.mainView.UpdateStatus(errBusy.Error())
		return
	}
	mc.busy = true
	mc.mu.Unlock()

	mc.mainView.SetBusy(true, false)
	mc.mainView.UpdateStatus(status + "...")

	mc.tasks.Add(1)
	go func() {
		defer mc.tasks.Done()

		update, err := work(mc.ctx)

		mc.mu.Lock()
		mc.busy = false
		mc.mu.Unlock()

		if errors.Is(err, context.Canceled) {
			return
		}
		fyne.Do(func() {
			mc.mainView.SetBusy(false, mc.service.Repository().HasPlaylist())
			if err != nil {
				mc.handleError(status, err)
				return
			}
			update()
		})
	}()
}

// handleError logs err and shows it to the user. Must be called on the UI goroutine.
func (mc *MainController) handleError(operation string, err error) {
	mc.log.Error("MainController", err, map[string]interface{}{"operation": operation})
	mc.mainView.UpdateStatus(err.Error())
	mc.mainView.ShowError(err)
}

// IsBusy reports whether a load or save is running
func (mc *MainController) IsBusy() bool {
	mc.mu.Lock()
	defer mc.mu.Unlock()
	return mc.busy
}

// Wait blocks until background work has finished
func (mc *MainController) Wait() {
	mc.tasks.Wait()
}

// Shutdown cancels background work and waits for it
func (mc *MainController) Shutdown() {
	mc.cancel()
	mc.tasks.Wait()
	mc.log.Debug("MainController", "controller stopped", nil)
}
