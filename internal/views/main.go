package views

import (
	"fmt"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"playlist-tool/internal/playlist"
	"playlist-tool/internal/views/components"
)

// WindowTitle is the title of the main window
const WindowTitle = "Esgrove's Playlist Tool"

// MainView is the playlist window content
type MainView struct {
	window        fyne.Window
	mainContainer *fyne.Container
	toolbar       *components.Toolbar
	info          *components.PlaylistInfo
	tracks        *components.TrackTable
	statusBar     *components.StatusBar
	menu          *Menu

	openHandler func()
	saveHandler func()
	dropHandler func(string)
}

// NewMainView builds the view and sets it as the window content
func NewMainView(window fyne.Window) *MainView {
	view := &MainView{
		window: window,
	}

	view.initializeComponents()
	view.buildLayout()
	view.setupEventHandlers()

	return view
}

func (mv *MainView) initializeComponents() {
	mv.toolbar = components.NewToolbar()
	mv.info = components.NewPlaylistInfo()
	mv.tracks = components.NewTrackTable()
	mv.statusBar = components.NewStatusBar()
	mv.menu = NewMenu()
}

func (mv *MainView) buildLayout() {
	top := container.NewVBox(
		mv.toolbar.GetContainer(),
		widget.NewSeparator(),
		mv.info.GetContainer(),
	)

	mv.mainContainer = container.NewBorder(
		top,
		mv.statusBar.GetContainer(),
		nil,
		nil,
		mv.tracks.GetContainer(),
	)

	mv.window.SetContent(mv.mainContainer)
	mv.window.SetMainMenu(mv.menu.MainMenu())
}

func (mv *MainView) setupEventHandlers() {
	mv.toolbar.SetOpenHandler(func() {
		if mv.openHandler != nil {
			mv.openHandler()
		}
	})
	mv.toolbar.SetSaveHandler(func() {
		if mv.saveHandler != nil {
			mv.saveHandler()
		}
	})

	mv.window.SetOnDropped(func(_ fyne.Position, uris []fyne.URI) {
		if mv.dropHandler == nil {
			return
		}
		if path := firstPlaylistPath(uris); path != "" {
			mv.dropHandler(path)
		} else {
			mv.statusBar.SetStatus("Dropped file is not a supported playlist")
		}
	})
}

// firstPlaylistPath returns the first local file with a readable extension
func firstPlaylistPath(uris []fyne.URI) string {
	for _, uri := range uris {
		if uri == nil || uri.Scheme() != "file" {
			continue
		}
		if _, err := playlist.ParseFileFormat(uri.Extension()); err == nil {
			return uri.Path()
		}
	}
	return ""
}

// SetOpenHandler sets the handler for open requests from the toolbar
func (mv *MainView) SetOpenHandler(handler func()) {
	mv.openHandler = handler
}

// SetSaveHandler sets the handler for save requests from the toolbar
func (mv *MainView) SetSaveHandler(handler func()) {
	mv.saveHandler = handler
}

// SetDropHandler sets the handler for playlist files dropped on the window
func (mv *MainView) SetDropHandler(handler func(path string)) {
	mv.dropHandler = handler
}

// SetNameChangeHandler sets the handler for playlist name edits
func (mv *MainView) SetNameChangeHandler(handler func(string)) {
	mv.info.SetNameHandler(handler)
}

// SetDateChangeHandler sets the handler for playlist date edits
func (mv *MainView) SetDateChangeHandler(handler func(string)) {
	mv.info.SetDateHandler(handler)
}

// ShowPlaylist displays p, or resets the view when p is nil
func (mv *MainView) ShowPlaylist(p *playlist.Playlist) {
	mv.info.SetPlaylist(p)
	mv.statusBar.SetPlaylist(p)
	mv.toolbar.SetSaveEnabled(p != nil)
	mv.menu.SetSaveEnabled(p != nil)
	if p == nil {
		mv.tracks.SetTracks(nil)
		return
	}
	mv.tracks.SetTracks(p.Tracks)
}

// SetBusy disables file actions while loading or saving
func (mv *MainView) SetBusy(busy bool, canSave bool) {
	mv.toolbar.SetBusy(busy, canSave)
}

// UpdateStatus updates the status bar message
func (mv *MainView) UpdateStatus(status string) {
	mv.statusBar.SetStatus(status)
}

// ShowError displays an error dialog
func (mv *MainView) ShowError(err error) {
	dialog.ShowError(err, mv.window)
}

// ShowInfo displays an information dialog
func (mv *MainView) ShowInfo(title, message string) {
	dialog.ShowInformation(title, message, mv.window)
}

// ShowAboutDialog displays application information
func (mv *MainView) ShowAboutDialog(name, version, organization string) {
	mv.ShowInfo("About", fmt.Sprintf("%s\nVersion %s\n\n%s", name, version, organization))
}

// ShowOpenDialog asks for a playlist file and calls onSelected with its path
func (mv *MainView) ShowOpenDialog(onSelected func(path string)) {
	open := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			mv.ShowError(err)
			return
		}
		if reader == nil {
			return
		}
		path := reader.URI().Path()
		_ = reader.Close()
		onSelected(path)
	}, mv.window)
	open.SetFilter(storage.NewExtensionFileFilter(playlistExtensions()))
	open.Show()
}

// ShowSaveDialog asks for an output file in dir and calls onSelected with its path.
// The dialog has already confirmed overwriting an existing file.
func (mv *MainView) ShowSaveDialog(dir, fileName string, onSelected func(path string)) {
	save := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			mv.ShowError(err)
			return
		}
		if writer == nil {
			return
		}
		path := writer.URI().Path()
		_ = writer.Close()
		onSelected(path)
	}, mv.window)
	save.SetFileName(fileName)
	save.SetFilter(storage.NewExtensionFileFilter(playlistExtensions()))
	if dir != "" {
		if lister, err := storage.ListerForURI(storage.NewFileURI(dir)); err == nil {
			save.SetLocation(lister)
		}
	}
	save.Show()
}

func playlistExtensions() []string {
	extensions := make([]string, 0, len(playlist.SupportedFormats))
	for _, format := range playlist.SupportedFormats {
		extensions = append(extensions, format.Extension())
	}
	return extensions
}

// Menu returns the window menu
func (mv *MainView) Menu() *Menu {
	return mv.menu
}

// GetToolbar returns the toolbar component
func (mv *MainView) GetToolbar() *components.Toolbar {
	return mv.toolbar
}

// GetInfo returns the playlist info form
func (mv *MainView) GetInfo() *components.PlaylistInfo {
	return mv.info
}

// GetTrackTable returns the track table component
func (mv *MainView) GetTrackTable() *components.TrackTable {
	return mv.tracks
}

// GetStatusBar returns the status bar component
func (mv *MainView) GetStatusBar() *components.StatusBar {
	return mv.statusBar
}

// GetWindow returns the main window
func (mv *MainView) GetWindow() fyne.Window {
	return mv.window
}

// GetContainer returns the main container
func (mv *MainView) GetContainer() *fyne.Container {
	return mv.mainContainer
}

// Title returns the window title
func (mv *MainView) Title() string {
	return strings.TrimSpace(mv.window.Title())
}
