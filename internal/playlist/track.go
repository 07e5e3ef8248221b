package playlist

import (
	"strings"
	"time"
)

// Track is one played song
type Track struct {
	Artist    string
	Title     string
	StartTime *time.Time
	EndTime   *time.Time
	PlayTime  *time.Duration
}

// NewTrack creates a track with normalized artist and title.
func NewTrack(artist, title string) Track {
	return Track{
		Artist: collapseSpaces(artist),
		Title:  FormatTitle(title),
	}
}

// Same reports whether two tracks are the same song.
// Timing information is not compared.
func (t Track) Same(other Track) bool {
	return t.Artist == other.Artist && t.Title == other.Title
}

// AddPlayTime adds d to the play time, treating an unknown play time as zero
func (t *Track) AddPlayTime(d *time.Duration) {
	if d == nil {
		return
	}
	total := *d
	if t.PlayTime != nil {
		total += *t.PlayTime
	}
	t.PlayTime = &total
}

func (t Track) String() string {
	return t.Artist + " - " + t.Title
}

// mergeDuplicates collapses consecutive plays of the same track.
// The play time of a repeat is added to the first play and the end time moves to the repeat's.
func mergeDuplicates(tracks []Track) []Track {
	merged := make([]Track, 0, len(tracks))
	for _, track := range tracks {
		if n := len(merged); n > 0 && merged[n-1].Same(track) {
			last := &merged[n-1]
			last.AddPlayTime(track.PlayTime)
			if track.EndTime != nil {
				last.EndTime = track.EndTime
			}
			continue
		}
		merged = append(merged, track)
	}
	return merged
}

var titleRemovals = []string{
	" (Clean)", " (clean)",
	" (Dirty)", " (dirty)",
	" (Original Mix)", " (original mix)",
}

var titlePrefixFixes = []string{
	" (Dirty-", " (dirty-",
	" (Clean-", " (clean-",
}

// FormatTitle cleans up a song title.
// Clean, dirty and original mix tags are dropped, and a mix name given
// after a dash is moved into parentheses: "Song - Extended Mix" becomes
// "Song (Extended Mix)".
func FormatTitle(title string) string {
	for _, tag := range titleRemovals {
		title = strings.ReplaceAll(title, tag, "")
	}
	for _, prefix := range titlePrefixFixes {
		title = strings.ReplaceAll(title, prefix, " (")
	}

	if dash := strings.Index(title, " - "); dash >= 0 {
		open := strings.Index(title, " (")
		closing := strings.Index(title, ")")
		switch {
		case open >= 0 && closing >= 0 && open < dash && dash < closing:
			// dash inside an existing parenthesis
			title = strings.ReplaceAll(title, " - ", " ")
		case open >= 0 && closing >= 0:
			rest := title[dash:]
			if i := strings.Index(rest, " ("); i >= 0 && strings.Contains(rest, ")") {
				at := dash + i
				title = title[:at] + ")" + title[at:]
			} else {
				title += ")"
			}
			title = strings.ReplaceAll(title, " - ", " (")
		default:
			title = strings.ReplaceAll(title, " - ", " (") + ")"
		}
	}

	return collapseSpaces(title)
}

func collapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
