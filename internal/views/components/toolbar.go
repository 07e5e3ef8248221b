package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// Toolbar holds the open and save actions
type Toolbar struct {
	container  *fyne.Container
	openButton *widget.Button
	saveButton *widget.Button

	openHandler func()
	saveHandler func()
}

// NewToolbar creates a new toolbar component
func NewToolbar() *Toolbar {
	toolbar := &Toolbar{}
	toolbar.createComponents()
	toolbar.buildLayout()
	toolbar.setupEventHandlers()
	return toolbar
}

func (t *Toolbar) createComponents() {
	t.openButton = widget.NewButtonWithIcon("Open playlist", theme.FolderOpenIcon(), nil)
	t.openButton.Importance = widget.HighImportance

	t.saveButton = widget.NewButtonWithIcon("Save playlist", theme.DocumentSaveIcon(), nil)
	t.saveButton.Importance = widget.HighImportance
	t.saveButton.Disable()
}

func (t *Toolbar) buildLayout() {
	t.container = container.NewHBox(
		t.openButton,
		widget.NewSeparator(),
		t.saveButton,
	)
}

func (t *Toolbar) setupEventHandlers() {
	t.openButton.OnTapped = func() {
		if t.openHandler != nil {
			t.openHandler()
		}
	}

	t.saveButton.OnTapped = func() {
		if t.saveHandler != nil {
			t.saveHandler()
		}
	}
}

// SetOpenHandler sets the open playlist handler
func (t *Toolbar) SetOpenHandler(handler func()) {
	t.openHandler = handler
}

// SetSaveHandler sets the save playlist handler
func (t *Toolbar) SetSaveHandler(handler func()) {
	t.saveHandler = handler
}

// SetSaveEnabled enables saving once a playlist is loaded
func (t *Toolbar) SetSaveEnabled(enabled bool) {
	if enabled {
		t.saveButton.Enable()
	} else {
		t.saveButton.Disable()
	}
}

// SetBusy disables both actions while a file operation runs
func (t *Toolbar) SetBusy(busy bool, canSave bool) {
	if busy {
		t.openButton.Disable()
		t.saveButton.Disable()
		return
	}
	t.openButton.Enable()
	t.SetSaveEnabled(canSave)
}

// OpenButton returns the open button
func (t *Toolbar) OpenButton() *widget.Button {
	return t.openButton
}

// SaveButton returns the save button
func (t *Toolbar) SaveButton() *widget.Button {
	return t.saveButton
}

// GetContainer returns the toolbar container
func (t *Toolbar) GetContainer() *fyne.Container {
	return t.container
}
