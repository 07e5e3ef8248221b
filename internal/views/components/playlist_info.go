package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"playlist-tool/internal/models"
	"playlist-tool/internal/playlist"
)

// PlaylistInfo is the form with the playlist file, name and date
type PlaylistInfo struct {
	container *fyne.Container
	fileEntry *widget.Entry
	nameEntry *widget.Entry
	dateEntry *widget.Entry
	typeLabel *widget.Label
	form      *widget.Form
	updating  bool

	nameHandler func(string)
	dateHandler func(string)
}

// NewPlaylistInfo creates the playlist info form
func NewPlaylistInfo() *PlaylistInfo {
	info := &PlaylistInfo{}
	info.createComponents()
	info.buildLayout()
	info.setupEventHandlers()
	return info
}

func (pi *PlaylistInfo) createComponents() {
	pi.fileEntry = widget.NewEntry()
	pi.fileEntry.SetPlaceHolder("Open or drop a playlist file")
	pi.fileEntry.Disable()

	pi.nameEntry = widget.NewEntry()
	pi.nameEntry.SetPlaceHolder("Playlist name")
	pi.nameEntry.Disable()

	pi.dateEntry = widget.NewEntry()
	pi.dateEntry.SetPlaceHolder(models.DateLayouts[0])
	pi.dateEntry.Disable()

	pi.typeLabel = widget.NewLabel("")
}

func (pi *PlaylistInfo) buildLayout() {
	pi.form = widget.NewForm(
		widget.NewFormItem("Playlist File", pi.fileEntry),
		widget.NewFormItem("Playlist Name", pi.nameEntry),
		widget.NewFormItem("Playlist Date", container.NewBorder(nil, nil, nil, pi.typeLabel, pi.dateEntry)),
	)
	pi.container = container.NewVBox(pi.form)
}

// Entry callbacks fire for SetText too, so programmatic updates are muted
func (pi *PlaylistInfo) setupEventHandlers() {
	pi.nameEntry.OnChanged = func(name string) {
		if !pi.updating && pi.nameHandler != nil {
			pi.nameHandler(name)
		}
	}
	pi.dateEntry.OnChanged = func(date string) {
		if !pi.updating && pi.dateHandler != nil {
			pi.dateHandler(date)
		}
	}
}

// SetNameHandler is called when the user edits the name
func (pi *PlaylistInfo) SetNameHandler(handler func(string)) {
	pi.nameHandler = handler
}

// SetDateHandler is called when the user edits the date
func (pi *PlaylistInfo) SetDateHandler(handler func(string)) {
	pi.dateHandler = handler
}

// SetPlaylist fills the form from p, or clears it when p is nil
func (pi *PlaylistInfo) SetPlaylist(p *playlist.Playlist) {
	pi.updating = true
	defer func() { pi.updating = false }()

	if p == nil {
		pi.fileEntry.SetText("")
		pi.nameEntry.SetText("")
		pi.dateEntry.SetText("")
		pi.typeLabel.SetText("")
		pi.nameEntry.Disable()
		pi.dateEntry.Disable()
		return
	}

	pi.fileEntry.SetText(p.File)
	pi.nameEntry.SetText(p.Name)
	pi.dateEntry.SetText(models.FormatDate(p.Date))
	pi.typeLabel.SetText(p.Type.String() + " " + p.Format.String())
	pi.nameEntry.Enable()
	pi.dateEntry.Enable()
}

// File returns the file entry text
func (pi *PlaylistInfo) File() string {
	return pi.fileEntry.Text
}

// NameEntry returns the editable name field
func (pi *PlaylistInfo) NameEntry() *widget.Entry {
	return pi.nameEntry
}

// DateEntry returns the editable date field
func (pi *PlaylistInfo) DateEntry() *widget.Entry {
	return pi.dateEntry
}

// GetContainer returns the form container
func (pi *PlaylistInfo) GetContainer() *fyne.Container {
	return pi.container
}
