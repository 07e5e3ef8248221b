// Package playlist reads DJ software playlist exports, cleans up the track
// list and writes it out again in a shareable format.
package playlist

import (
	"encoding/csv"
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// Playlist is a parsed playlist file
type Playlist struct {
	Name          string
	Date          *time.Time
	File          string
	Format        FileFormat
	Type          PlaylistType
	Tracks        []Track
	TotalDuration *time.Duration
}

// Read parses the playlist file at path.
// The reader is chosen from the file extension and, for the same extension,
// from the columns present in the file.
func Read(path string) (*Playlist, error) {
	ext := filepath.Ext(path)
	if ext == "" {
		return nil, fmt.Errorf("%w: input file has no file extension: '%s'. Supported file types are: %s",
			ErrUnsupportedFormat, path, supportedFormatList())
	}
	format, err := ParseFileFormat(ext)
	if err != nil {
		return nil, err
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve path: %w", err)
	}

	var playlist *Playlist
	switch format {
	case FormatCsv:
		playlist, err = readCSV(abs)
	default:
		playlist, err = readTXT(abs)
	}
	if err != nil {
		return nil, err
	}
	if len(playlist.Tracks) == 0 {
		return nil, fmt.Errorf("%w: '%s'", ErrNoTracks, abs)
	}

	playlist.TotalDuration = TotalPlaytime(playlist.Tracks)
	return playlist, nil
}

// HasPlaytimes reports whether any track has a known play time
func (p *Playlist) HasPlaytimes() bool {
	for _, track := range p.Tracks {
		if track.PlayTime != nil {
			return true
		}
	}
	return false
}

// AveragePlaytime is the total duration divided by the track count, rounded down to seconds
func (p *Playlist) AveragePlaytime() *time.Duration {
	if p.TotalDuration == nil || len(p.Tracks) == 0 {
		return nil
	}
	seconds := int64(*p.TotalDuration/time.Second) / int64(len(p.Tracks))
	average := time.Duration(seconds) * time.Second
	return &average
}

func readCSV(path string) (*Playlist, error) {
	rc, err := openDecoded(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: '%s': %w", path, err)
	}
	defer func() { _ = rc.Close() }()

	reader := csv.NewReader(rc)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV file: '%s': %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: '%s'", ErrNoTracks, path)
	}

	data := newTable(records[0], records[1:])
	if !data.has("name") && data.has("title") && data.has("artist") {
		return readFormattedCSV(path, data)
	}
	if err := data.requireFields("CSV", "name", "artist"); err != nil {
		return nil, err
	}
	return readSerato(path, FormatCsv, data.records())
}

func readTXT(path string) (*Playlist, error) {
	lines, err := readLines(path)
	if err != nil {
		return nil, err
	}

	first := ""
	for _, line := range lines {
		if strings.TrimSpace(line) != "" {
			first = line
			break
		}
	}
	if first == "" {
		return nil, fmt.Errorf("%w: file is empty: '%s'", ErrNoTracks, path)
	}

	if strings.Contains(first, "\t") {
		return readRekordboxTXT(path, lines)
	}

	data := splitFixedWidth(lines)
	if err := data.requireFields("Serato TXT", "artist", "name"); err != nil {
		return nil, err
	}
	return readSerato(path, FormatTxt, data.records())
}

// fileStem is the file name without directory and extension
func fileStem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
