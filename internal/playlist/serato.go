package playlist

import (
	"fmt"
	"time"
)

// readSerato builds a playlist from Serato rows.
// The first row is the session info row with the playlist name and start time.
func readSerato(path string, format FileFormat, rows []map[string]string) (*Playlist, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: '%s'", ErrNoTracks, path)
	}

	name, date := seratoInfo(rows[0])
	if name == "" {
		name = fileStem(path)
		if date == nil {
			date = ExtractDateFromName(name)
		}
	}

	var start time.Time
	if date != nil {
		start = *date
	}

	tracks := make([]Track, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if row["artist"] == "" && row["name"] == "" {
			continue
		}
		tracks = append(tracks, seratoTrack(row, start))
	}

	return &Playlist{
		Name:   name,
		Date:   date,
		File:   path,
		Format: format,
		Type:   TypeSerato,
		Tracks: mergeDuplicates(tracks),
	}, nil
}

// seratoInfo reads the playlist name and start time, for example
// "Serato 30.3.2023" and "30.03.2023, 16.04.53 EEST".
// The date falls back to one found in the name.
func seratoInfo(row map[string]string) (string, *time.Time) {
	name := collapseSpaces(row["name"])
	date := parseSeratoDate(row["start time"])
	if date == nil && name != "" {
		date = ExtractDateFromName(name)
	}
	return name, date
}

func seratoTrack(row map[string]string, start time.Time) Track {
	track := NewTrack(row["artist"], row["name"])
	if value := row["start time"]; value != "" {
		track.StartTime = parseSeratoTime(value, start)
	}
	if value := row["end time"]; value != "" {
		track.EndTime = parseSeratoTime(value, start)
	}
	track.PlayTime = parsePlaytime(row["playtime"])
	if track.PlayTime == nil && track.StartTime != nil && track.EndTime != nil {
		if d := track.EndTime.Sub(*track.StartTime); d > 0 {
			track.PlayTime = &d
		}
	}
	return track
}
