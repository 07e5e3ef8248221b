package playlist

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

const (
	columnGap      = "   "
	dateLayout     = "2006.01.02 15:04"
	playtimeHeader = "PLAYTIME"
)

type palette struct {
	bold lipgloss.Style
	name lipgloss.Style
	kind lipgloss.Style
	time lipgloss.Style
}

// newPalette picks styles for w. Writers that are not terminals get plain text.
func newPalette(w io.Writer) palette {
	r := lipgloss.NewRenderer(w)
	return palette{
		bold: r.NewStyle().Bold(true),
		name: r.NewStyle().Foreground(lipgloss.Color("2")),
		kind: r.NewStyle().Foreground(lipgloss.Color("6")),
		time: r.NewStyle().Foreground(lipgloss.Color("2")),
	}
}

// DateString formats the playlist date or returns "unknown"
func (p *Playlist) DateString() string {
	if p.Date == nil {
		return "unknown"
	}
	return p.Date.Format(dateLayout)
}

// Info writes playlist information, but not the tracks themselves
func (p *Playlist) Info(w io.Writer) error {
	colors := newPalette(w)
	var b strings.Builder
	fmt.Fprintf(&b, "Playlist: %s\n", colors.name.Render(p.Name))
	fmt.Fprintf(&b, "Filepath: %s\n", p.File)
	fmt.Fprintf(&b, "Format: %s, Type: %s, Date: %s\n", p.Format, colors.kind.Render(p.Type.String()), p.DateString())
	fmt.Fprintf(&b, "Tracks: %d", len(p.Tracks))
	if p.TotalDuration != nil {
		fmt.Fprintf(&b, ", Total duration: %s", FormatDuration(*p.TotalDuration))
		if average := p.AveragePlaytime(); average != nil {
			fmt.Fprintf(&b, " (%s per track)", FormatDuration(*average))
		}
	}
	b.WriteString("\n\n")
	_, err := io.WriteString(w, b.String())
	return err
}

// Print writes the track list in the given style
func (p *Playlist) Print(w io.Writer, style FormattingStyle) error {
	var lines []string
	switch style {
	case StyleBasic:
		lines = p.basicLines()
	case StyleNumbered:
		lines = p.numberedLines()
	default:
		lines = p.prettyLines(newPalette(w))
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func (p *Playlist) basicLines() []string {
	lines := make([]string, 0, len(p.Tracks))
	for _, track := range p.Tracks {
		lines = append(lines, track.String())
	}
	return lines
}

func (p *Playlist) indexWidth() int {
	return len(strconv.Itoa(len(p.Tracks)))
}

func (p *Playlist) numberedLines() []string {
	width := p.indexWidth()
	lines := make([]string, 0, len(p.Tracks))
	for i, track := range p.Tracks {
		lines = append(lines, fmt.Sprintf("%0*d: %s", width, i+1, track))
	}
	return lines
}

func (p *Playlist) prettyLines(colors palette) []string {
	indexWidth := p.indexWidth()
	artistWidth := runewidth.StringWidth("ARTIST")
	titleWidth := runewidth.StringWidth("TITLE")
	playtimeWidth := 0
	for _, track := range p.Tracks {
		artistWidth = max(artistWidth, runewidth.StringWidth(track.Artist))
		titleWidth = max(titleWidth, runewidth.StringWidth(track.Title))
		if track.PlayTime != nil {
			playtimeWidth = max(playtimeWidth, len(FormatDuration(*track.PlayTime)))
		}
	}
	showPlaytime := p.HasPlaytimes()
	if showPlaytime {
		playtimeWidth = max(playtimeWidth, len(playtimeHeader))
	}

	header := runewidth.FillRight("#", indexWidth) + columnGap +
		runewidth.FillRight("ARTIST", artistWidth) + columnGap
	if showPlaytime {
		header += runewidth.FillRight("TITLE", titleWidth) + columnGap +
			runewidth.FillLeft(playtimeHeader, playtimeWidth)
	} else {
		header += "TITLE"
	}
	divider := strings.Repeat("-", max(runewidth.StringWidth(header),
		indexWidth+artistWidth+titleWidth+2*len(columnGap)))

	lines := make([]string, 0, len(p.Tracks)+3)
	lines = append(lines, colors.bold.Render(header), divider)
	for i, track := range p.Tracks {
		line := fmt.Sprintf("%0*d", indexWidth, i+1) + columnGap +
			runewidth.FillRight(track.Artist, artistWidth) + columnGap
		if showPlaytime {
			playtime := ""
			if track.PlayTime != nil {
				playtime = FormatDuration(*track.PlayTime)
			}
			line += runewidth.FillRight(track.Title, titleWidth) + columnGap +
				colors.time.Render(runewidth.FillLeft(playtime, playtimeWidth))
		} else {
			line += track.Title
		}
		lines = append(lines, line)
	}
	lines = append(lines, divider)
	return lines
}
