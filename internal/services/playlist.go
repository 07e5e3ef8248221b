package services

import (
	"context"
	"errors"
	"fmt"
	"os"

	"playlist-tool/internal/history"
	"playlist-tool/internal/logger"
	"playlist-tool/internal/models"
	"playlist-tool/internal/playlist"
	"playlist-tool/internal/timing"
)

// HistoryStore persists recently opened playlists
type HistoryStore interface {
	Record(ctx context.Context, entry history.Entry) error
	Recent(ctx context.Context, limit int) ([]history.Entry, error)
	Remove(ctx context.Context, path string) error
	Prune(ctx context.Context, keep int) error
}

// ErrNoPlaylist is returned when saving without a loaded playlist
var ErrNoPlaylist = errors.New("no playlist loaded")

// PlaylistService loads and saves playlists for the window
type PlaylistService struct {
	repository   *models.PlaylistRepository
	history      HistoryStore
	log          logger.Logger
	saveDir      string
	historyLimit int
	timings      *timing.Tracker
}

// NewPlaylistService creates a playlist service. history may be nil.
func NewPlaylistService(repo *models.PlaylistRepository, store HistoryStore, log logger.Logger, saveDir string, historyLimit int) *PlaylistService {
	return &PlaylistService{
		repository:   repo,
		history:      store,
		log:          log,
		saveDir:      saveDir,
		historyLimit: historyLimit,
		timings:      timing.NewTracker(),
	}
}

// Load reads the playlist at path and makes it current
func (ps *PlaylistService) Load(ctx context.Context, path string) (*playlist.Playlist, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	stop := ps.timings.Start("load")
	p, err := playlist.Read(path)
	elapsed := stop()
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	ps.repository.Set(p)
	ps.log.Info("PlaylistService", "playlist loaded", map[string]interface{}{
		"path":   p.File,
		"type":   p.Type.String(),
		"tracks": len(p.Tracks),
		"ms":     elapsed.Milliseconds(),
	})

	ps.recordHistory(ctx, p)
	return ps.repository.Current(), nil
}

func (ps *PlaylistService) recordHistory(ctx context.Context, p *playlist.Playlist) {
	if ps.history == nil {
		return
	}
	entry := history.Entry{Path: p.File, Name: p.Name, Type: p.Type.String(), Tracks: len(p.Tracks)}
	if err := ps.history.Record(ctx, entry); err != nil {
		ps.log.Warning("PlaylistService", "failed to record history", map[string]interface{}{"error": err.Error()})
		return
	}
	if err := ps.history.Prune(ctx, ps.historyLimit); err != nil {
		ps.log.Warning("PlaylistService", "failed to prune history", map[string]interface{}{"error": err.Error()})
	}
}

// Save writes the current playlist. An empty path uses the default output location.
func (ps *PlaylistService) Save(ctx context.Context, path string, overwrite bool) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	p := ps.repository.Current()
	if p == nil {
		return "", ErrNoPlaylist
	}

	stop := ps.timings.Start("save")
	saved, err := p.Save(playlist.SaveOptions{
		Path:      path,
		Overwrite: overwrite,
		SaveDir:   ps.saveDir,
	})
	elapsed := stop()
	if err != nil {
		return saved, err
	}

	ps.log.Info("PlaylistService", "playlist saved", map[string]interface{}{
		"path": saved,
		"ms":   elapsed.Milliseconds(),
	})
	return saved, nil
}

// SuggestedOutput is the default directory and file name for saving the current playlist
func (ps *PlaylistService) SuggestedOutput() (string, string, error) {
	p := ps.repository.Current()
	if p == nil {
		return "", "", ErrNoPlaylist
	}
	return p.DefaultSaveDir(ps.saveDir), p.OutputName() + playlist.FormatCsv.Extension(), nil
}

// Recent lists recently opened playlists. Entries whose file is gone are removed.
func (ps *PlaylistService) Recent(ctx context.Context) ([]history.Entry, error) {
	if ps.history == nil {
		return nil, nil
	}

	entries, err := ps.history.Recent(ctx, ps.historyLimit)
	if err != nil {
		return nil, fmt.Errorf("load recent playlists: %w", err)
	}

	existing := entries[:0]
	for _, entry := range entries {
		if _, err := os.Stat(entry.Path); err != nil {
			ps.log.Debug("PlaylistService", "dropping missing recent playlist", map[string]interface{}{"path": entry.Path})
			if err := ps.history.Remove(ctx, entry.Path); err != nil {
				return nil, fmt.Errorf("remove recent playlist: %w", err)
			}
			continue
		}
		existing = append(existing, entry)
	}
	return existing, nil
}

// Timings returns the load and save durations recorded so far
func (ps *PlaylistService) Timings() *timing.Tracker {
	return ps.timings
}

// Repository returns the playlist repository
func (ps *PlaylistService) Repository() *models.PlaylistRepository {
	return ps.repository
}
