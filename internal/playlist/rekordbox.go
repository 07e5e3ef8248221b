package playlist

import (
	"strings"
)

// readRekordboxTXT parses a tab separated Rekordbox export.
// Rekordbox has no start or play time info.
func readRekordboxTXT(path string, lines []string) (*Playlist, error) {
	var header []string
	var rows [][]string
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		fields := strings.Split(line, "\t")
		if header == nil {
			header = fields
			continue
		}
		rows = append(rows, fields)
	}

	data := newTable(header, rows)
	if err := data.requireFields("Rekordbox TXT", "Artist", "Track Title"); err != nil {
		return nil, err
	}

	var tracks []Track
	for _, row := range data.records() {
		tracks = append(tracks, NewTrack(row["Artist"], row["Track Title"]))
	}

	name := fileStem(path)
	return &Playlist{
		Name:   name,
		Date:   ExtractDateFromName(name),
		File:   path,
		Format: FormatTxt,
		Type:   TypeRekordbox,
		Tracks: mergeDuplicates(tracks),
	}, nil
}
