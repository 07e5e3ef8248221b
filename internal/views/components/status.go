package components

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"playlist-tool/internal/playlist"
)

const readyStatus = "Ready"

// StatusBar displays transient messages and playlist totals
type StatusBar struct {
	container    *fyne.Container
	statusLabel  *widget.Label
	summaryLabel *widget.Label
}

// NewStatusBar creates a new status bar component
func NewStatusBar() *StatusBar {
	sb := &StatusBar{}
	sb.createComponents()
	sb.buildLayout()
	return sb
}

func (sb *StatusBar) createComponents() {
	sb.statusLabel = widget.NewLabel(readyStatus)
	sb.statusLabel.Truncation = fyne.TextTruncateEllipsis
	sb.summaryLabel = widget.NewLabel("No playlist loaded")
}

func (sb *StatusBar) buildLayout() {
	sb.container = container.NewBorder(nil, nil, nil,
		container.NewHBox(widget.NewSeparator(), sb.summaryLabel),
		sb.statusLabel,
	)
}

// SetStatus updates the main status message
func (sb *StatusBar) SetStatus(status string) {
	sb.statusLabel.SetText(status)
}

// GetStatus returns the current status message
func (sb *StatusBar) GetStatus() string {
	return sb.statusLabel.Text
}

// SetPlaylist shows the track count and total duration of p
func (sb *StatusBar) SetPlaylist(p *playlist.Playlist) {
	if p == nil {
		sb.summaryLabel.SetText("No playlist loaded")
		return
	}
	summary := fmt.Sprintf("%d tracks", len(p.Tracks))
	if p.TotalDuration != nil {
		summary += ", " + playlist.FormatDuration(*p.TotalDuration)
	}
	sb.summaryLabel.SetText(summary)
}

// GetSummary returns the playlist summary text
func (sb *StatusBar) GetSummary() string {
	return sb.summaryLabel.Text
}

// Reset resets the status bar to initial state
func (sb *StatusBar) Reset() {
	sb.statusLabel.SetText(readyStatus)
	sb.SetPlaylist(nil)
}

// GetContainer returns the status bar container
func (sb *StatusBar) GetContainer() *fyne.Container {
	return sb.container
}
