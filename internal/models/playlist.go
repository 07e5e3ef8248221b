package models

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"playlist-tool/internal/playlist"
)

// DateLayouts are the accepted formats for an edited playlist date
var DateLayouts = []string{"2006.01.02 15:04", "2006-01-02 15:04", "2006.01.02", "2006-01-02", "2.1.2006"}

// PlaylistRepository holds the playlist shown in the window
type PlaylistRepository struct {
	mu       sync.RWMutex
	current  *playlist.Playlist
	loadedAt time.Time
	modified bool
}

// NewPlaylistRepository creates an empty repository
func NewPlaylistRepository() *PlaylistRepository {
	return &PlaylistRepository{}
}

// Set replaces the current playlist
func (r *PlaylistRepository) Set(p *playlist.Playlist) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.current = p
	r.loadedAt = time.Now()
	r.modified = false
}

// Current returns a copy of the current playlist, or nil when nothing is loaded.
// The track slice is shared and must not be modified.
func (r *PlaylistRepository) Current() *playlist.Playlist {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.current == nil {
		return nil
	}
	dup := *r.current
	return &dup
}

// HasPlaylist reports whether a playlist is loaded
func (r *PlaylistRepository) HasPlaylist() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.current != nil
}

// Modified reports whether the name or date was edited since loading
func (r *PlaylistRepository) Modified() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.modified
}

// LoadedAt returns when the current playlist was set
func (r *PlaylistRepository) LoadedAt() time.Time {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.loadedAt
}

// SetName renames the current playlist
func (r *PlaylistRepository) SetName(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.current == nil {
		return fmt.Errorf("no playlist loaded")
	}
	name = strings.TrimSpace(name)
	if name == r.current.Name {
		return nil
	}
	r.current.Name = name
	r.modified = true
	return nil
}

// SetDate parses value with DateLayouts and sets the playlist date.
// An empty value clears the date.
func (r *PlaylistRepository) SetDate(value string) error {
	value = strings.TrimSpace(value)
	var date *time.Time
	if value != "" {
		parsed, err := ParseDate(value)
		if err != nil {
			return err
		}
		date = &parsed
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.current == nil {
		return fmt.Errorf("no playlist loaded")
	}
	r.current.Date = date
	r.modified = true
	return nil
}

// Clear removes the current playlist
func (r *PlaylistRepository) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.current = nil
	r.loadedAt = time.Time{}
	r.modified = false
}

// ParseDate accepts any of DateLayouts
func ParseDate(value string) (time.Time, error) {
	for _, layout := range DateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date: '%s', use YYYY.MM.DD HH:MM", value)
}

// FormatDate is the editable text for a playlist date
func FormatDate(date *time.Time) string {
	if date == nil {
		return ""
	}
	return date.Format(DateLayouts[0])
}
