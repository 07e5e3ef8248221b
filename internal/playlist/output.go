package playlist

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// SaveOptions controls where a formatted playlist is written
type SaveOptions struct {
	// Path is a full path, a file name, or empty for the default location.
	Path string
	// Overwrite allows replacing an existing file.
	Overwrite bool
	// UseDefaultDir places a bare file name into the default save directory.
	UseDefaultDir bool
	// SaveDir overrides the default save directory.
	SaveDir string
}

// DropboxDir is the DJ playlist folder in Dropbox, or "" when it doesn't exist
func DropboxDir() string {
	var dir string
	if runtime.GOOS == "windows" {
		dir = `D:\Dropbox\DJ\PLAYLIST`
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		dir = filepath.Join(home, "Dropbox", "DJ", "PLAYLIST")
	}
	if info, err := os.Stat(dir); err == nil && info.IsDir() {
		return dir
	}
	return ""
}

// DefaultSaveDir returns the output directory used when none is given:
// the configured directory, then the Dropbox playlist folder, then the
// directory of the input file. Empty means the working directory.
func (p *Playlist) DefaultSaveDir(configured string) string {
	if dir := strings.TrimSpace(configured); dir != "" {
		return dir
	}
	if dir := DropboxDir(); dir != "" {
		return dir
	}
	if p.File == "" {
		return ""
	}
	abs, err := filepath.Abs(p.File)
	if err != nil {
		return ""
	}
	return filepath.Dir(abs)
}

// OutputName is the default output file name without extension
func (p *Playlist) OutputName() string {
	name := strings.TrimSpace(p.Name)
	if name == "" {
		name = fileStem(p.File)
	}
	return strings.NewReplacer("/", "-", `\`, "-", ":", ".").Replace(name)
}

// OutputPath resolves the output file path without touching the filesystem.
// A path without a supported extension gets ".csv" appended rather than
// replaced, so dates with dots in the name are kept.
func (p *Playlist) OutputPath(opts SaveOptions) string {
	path := strings.TrimSpace(opts.Path)
	if path == "" {
		return filepath.Join(p.DefaultSaveDir(opts.SaveDir), p.OutputName()+FormatCsv.Extension())
	}
	if _, err := ParseFileFormat(filepath.Ext(path)); err != nil {
		path += FormatCsv.Extension()
	}
	if opts.UseDefaultDir && filepath.Base(path) == path {
		path = filepath.Join(p.DefaultSaveDir(opts.SaveDir), path)
	}
	return path
}

// Save writes the playlist to the resolved output path and returns it
func (p *Playlist) Save(opts SaveOptions) (string, error) {
	path := p.OutputPath(opts)

	if info, err := os.Stat(path); err == nil && !info.IsDir() {
		if !opts.Overwrite {
			return path, fmt.Errorf("%w: '%s': use the force option to overwrite an existing output file", ErrOutputExists, path)
		}
	} else if err != nil && !errors.Is(err, os.ErrNotExist) {
		return path, fmt.Errorf("check output file: %w", err)
	}

	format, err := ParseFileFormat(filepath.Ext(path))
	if err != nil {
		return path, err
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return path, fmt.Errorf("create output dir: %w", err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return path, fmt.Errorf("create output file: %w", err)
	}
	if err := p.Write(file, format); err != nil {
		_ = file.Close()
		return path, err
	}
	if err := file.Close(); err != nil {
		return path, fmt.Errorf("close output file: %w", err)
	}
	return path, nil
}

// Write encodes the track list in the given format
func (p *Playlist) Write(w io.Writer, format FileFormat) error {
	switch format {
	case FormatCsv:
		return p.writeCSV(w)
	case FormatTxt:
		return p.writeTXT(w)
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
}

func (p *Playlist) writeCSV(w io.Writer) error {
	writer := csv.NewWriter(w)
	if err := writer.Write([]string{"artist", "", "title"}); err != nil {
		return fmt.Errorf("write CSV header: %w", err)
	}
	for _, track := range p.Tracks {
		if err := writer.Write([]string{track.Artist, "-", track.Title}); err != nil {
			return fmt.Errorf("write CSV row: %w", err)
		}
	}
	writer.Flush()
	return writer.Error()
}

func (p *Playlist) writeTXT(w io.Writer) error {
	for _, track := range p.Tracks {
		if _, err := fmt.Fprintln(w, track.String()); err != nil {
			return fmt.Errorf("write TXT line: %w", err)
		}
	}
	return nil
}
