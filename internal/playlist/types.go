package playlist

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnsupportedFormat is returned for file extensions the tool can't read or write.
	ErrUnsupportedFormat = errors.New("unsupported file format")
	// ErrNoTracks is returned when a playlist file contains no track rows.
	ErrNoTracks = errors.New("playlist has no tracks")
	// ErrOutputExists is returned when saving would overwrite a file without force.
	ErrOutputExists = errors.New("output file already exists")
)

// FileFormat is the playlist file type
type FileFormat int

const (
	FormatTxt FileFormat = iota
	FormatCsv
)

// SupportedFormats lists the readable file formats in display order
var SupportedFormats = []FileFormat{FormatTxt, FormatCsv}

func (f FileFormat) String() string {
	switch f {
	case FormatTxt:
		return "txt"
	case FormatCsv:
		return "csv"
	default:
		return fmt.Sprintf("FileFormat(%d)", int(f))
	}
}

// Extension returns the file extension including the leading dot
func (f FileFormat) Extension() string {
	return "." + f.String()
}

// ParseFileFormat converts an extension or format name to a FileFormat.
// A leading dot and surrounding whitespace are ignored and case does not matter.
func ParseFileFormat(input string) (FileFormat, error) {
	value := strings.TrimPrefix(strings.ToLower(strings.TrimSpace(input)), ".")
	switch value {
	case "csv":
		return FormatCsv, nil
	case "txt":
		return FormatTxt, nil
	case "":
		return 0, fmt.Errorf("%w: can't convert empty string to file format", ErrUnsupportedFormat)
	default:
		return 0, fmt.Errorf("%w: '%s'", ErrUnsupportedFormat, input)
	}
}

func supportedFormatList() string {
	names := make([]string, 0, len(SupportedFormats))
	for _, f := range SupportedFormats {
		names = append(names, f.String())
	}
	return strings.Join(names, ", ")
}

// PlaylistType tells which DJ software produced the playlist.
// Formatted means the file was written by this tool.
type PlaylistType int

const (
	TypeRekordbox PlaylistType = iota
	TypeSerato
	TypeFormatted
)

func (t PlaylistType) String() string {
	switch t {
	case TypeRekordbox:
		return "Rekordbox"
	case TypeSerato:
		return "Serato"
	case TypeFormatted:
		return "Formatted"
	default:
		return fmt.Sprintf("PlaylistType(%d)", int(t))
	}
}

// FormattingStyle selects how tracks are printed
type FormattingStyle int

const (
	// StylePretty is aligned columns for reading in a terminal.
	StylePretty FormattingStyle = iota
	// StyleBasic is plain "Artist - Title" lines for sharing online.
	StyleBasic
	// StyleNumbered is StyleBasic with track numbers.
	StyleNumbered
)

func (s FormattingStyle) String() string {
	switch s {
	case StyleBasic:
		return "basic"
	case StyleNumbered:
		return "numbered"
	default:
		return "pretty"
	}
}
