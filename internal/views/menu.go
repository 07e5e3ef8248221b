package views

import (
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"

	"playlist-tool/internal/history"
)

// Menu is the File and Help menu of the main window
type Menu struct {
	mainMenu   *fyne.MainMenu
	openItem   *fyne.MenuItem
	recentItem *fyne.MenuItem
	saveItem   *fyne.MenuItem
	quitItem   *fyne.MenuItem
	aboutItem  *fyne.MenuItem

	openHandler   func()
	saveHandler   func()
	quitHandler   func()
	aboutHandler  func()
	recentHandler func(path string)
}

// NewMenu creates the main menu with no recent entries
func NewMenu() *Menu {
	m := &Menu{}

	m.openItem = fyne.NewMenuItem("Open...", func() { call(m.openHandler) })
	m.openItem.Shortcut = &desktop.CustomShortcut{KeyName: fyne.KeyO, Modifier: fyne.KeyModifierShortcutDefault}
	m.recentItem = fyne.NewMenuItem("Open Recent", nil)
	m.recentItem.ChildMenu = fyne.NewMenu("")
	m.saveItem = fyne.NewMenuItem("Save...", func() { call(m.saveHandler) })
	m.saveItem.Shortcut = &desktop.CustomShortcut{KeyName: fyne.KeyS, Modifier: fyne.KeyModifierShortcutDefault}
	m.saveItem.Disabled = true
	m.quitItem = fyne.NewMenuItem("Quit", func() { call(m.quitHandler) })
	m.quitItem.IsQuit = true
	m.aboutItem = fyne.NewMenuItem("About", func() { call(m.aboutHandler) })

	m.mainMenu = fyne.NewMainMenu(
		fyne.NewMenu("File", m.openItem, m.recentItem, fyne.NewMenuItemSeparator(), m.saveItem, fyne.NewMenuItemSeparator(), m.quitItem),
		fyne.NewMenu("Help", m.aboutItem),
	)
	m.setRecentItems(nil)
	return m
}

func call(handler func()) {
	if handler != nil {
		handler()
	}
}

// MainMenu returns the fyne menu for the window
func (m *Menu) MainMenu() *fyne.MainMenu {
	return m.mainMenu
}

// SetOpenHandler sets the File > Open handler
func (m *Menu) SetOpenHandler(handler func()) { m.openHandler = handler }

// SetSaveHandler sets the File > Save handler
func (m *Menu) SetSaveHandler(handler func()) { m.saveHandler = handler }

// SetQuitHandler sets the File > Quit handler
func (m *Menu) SetQuitHandler(handler func()) { m.quitHandler = handler }

// SetAboutHandler sets the Help > About handler
func (m *Menu) SetAboutHandler(handler func()) { m.aboutHandler = handler }

// SetRecentHandler sets the handler for File > Open Recent entries
func (m *Menu) SetRecentHandler(handler func(path string)) { m.recentHandler = handler }

// SetSaveEnabled toggles File > Save
func (m *Menu) SetSaveEnabled(enabled bool) {
	m.saveItem.Disabled = !enabled
	m.mainMenu.Refresh()
}

// SetRecent replaces the Open Recent entries
func (m *Menu) SetRecent(entries []history.Entry) {
	m.setRecentItems(entries)
	m.mainMenu.Refresh()
}

func (m *Menu) setRecentItems(entries []history.Entry) {
	items := make([]*fyne.MenuItem, 0, len(entries))
	for _, entry := range entries {
		path := entry.Path
		label := entry.Name
		if label == "" {
			label = filepath.Base(path)
		}
		items = append(items, fyne.NewMenuItem(label, func() {
			if m.recentHandler != nil {
				m.recentHandler(path)
			}
		}))
	}
	if len(items) == 0 {
		empty := fyne.NewMenuItem("No recent playlists", nil)
		empty.Disabled = true
		items = append(items, empty)
	}
	m.recentItem.ChildMenu.Items = items
}

// Recent returns the labels of the Open Recent entries
func (m *Menu) Recent() []string {
	labels := make([]string, 0, len(m.recentItem.ChildMenu.Items))
	for _, item := range m.recentItem.ChildMenu.Items {
		if !item.Disabled {
			labels = append(labels, item.Label)
		}
	}
	return labels
}

// Activate triggers the File or Help menu item with the given label
func (m *Menu) Activate(label string) bool {
	for _, menu := range m.mainMenu.Items {
		for _, item := range menu.Items {
			if item.Label == label && item.Action != nil && !item.Disabled {
				item.Action()
				return true
			}
		}
	}
	for _, item := range m.recentItem.ChildMenu.Items {
		if item.Label == label && item.Action != nil {
			item.Action()
			return true
		}
	}
	return false
}
