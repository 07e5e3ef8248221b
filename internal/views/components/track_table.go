package components

import (
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"playlist-tool/internal/playlist"
)

// TrackColumns are the table headers
var TrackColumns = []string{"#", "Artist", "Title", "Playtime"}

var columnWidths = []float32{48, 260, 360, 90}

// TrackTable lists the tracks of the current playlist
type TrackTable struct {
	container *fyne.Container
	table     *widget.Table
	tracks    []playlist.Track
}

// NewTrackTable creates an empty track table
func NewTrackTable() *TrackTable {
	tt := &TrackTable{}
	tt.createComponents()
	tt.buildLayout()
	return tt
}

func (tt *TrackTable) createComponents() {
	tt.table = widget.NewTable(
		func() (int, int) { return len(tt.tracks), len(TrackColumns) },
		func() fyne.CanvasObject {
			label := widget.NewLabel("")
			label.Truncation = fyne.TextTruncateEllipsis
			return label
		},
		func(id widget.TableCellID, object fyne.CanvasObject) {
			object.(*widget.Label).SetText(tt.Cell(id.Row, id.Col))
		},
	)
	tt.table.ShowHeaderRow = true
	tt.table.CreateHeader = func() fyne.CanvasObject {
		return widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	}
	tt.table.UpdateHeader = func(id widget.TableCellID, object fyne.CanvasObject) {
		if id.Col >= 0 && id.Col < len(TrackColumns) {
			object.(*widget.Label).SetText(TrackColumns[id.Col])
		}
	}
	for col, width := range columnWidths {
		tt.table.SetColumnWidth(col, width)
	}
}

func (tt *TrackTable) buildLayout() {
	tt.container = container.NewStack(tt.table)
}

// SetTracks replaces the table content
func (tt *TrackTable) SetTracks(tracks []playlist.Track) {
	tt.tracks = tracks
	tt.table.Refresh()
	if len(tracks) > 0 {
		tt.table.ScrollToTop()
	}
}

// Rows returns the number of track rows
func (tt *TrackTable) Rows() int {
	return len(tt.tracks)
}

// Cell returns the text shown at row and column
func (tt *TrackTable) Cell(row, col int) string {
	if row < 0 || row >= len(tt.tracks) {
		return ""
	}
	track := tt.tracks[row]
	switch col {
	case 0:
		return strconv.Itoa(row + 1)
	case 1:
		return track.Artist
	case 2:
		return track.Title
	case 3:
		if track.PlayTime != nil {
			return playlist.FormatDuration(*track.PlayTime)
		}
	}
	return ""
}

// GetContainer returns the table container
func (tt *TrackTable) GetContainer() *fyne.Container {
	return tt.container
}
