package services

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"playlist-tool/internal/history"
	"playlist-tool/internal/logger"
	"playlist-tool/internal/models"
	"playlist-tool/internal/playlist"
)

var seratoInput = filepath.Join("..", "playlist", "testdata", "Serato 30.3.2023.csv")

func newTestService(t *testing.T) (*PlaylistService, string) {
	t.Helper()
	dir := t.TempDir()
	store, err := history.Open(filepath.Join(dir, "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return NewPlaylistService(models.NewPlaylistRepository(), store, logger.NewNop(), dir, 5), dir
}

func TestPlaylistService_LoadRecordsHistory(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	p, err := svc.Load(ctx, seratoInput)
	require.NoError(t, err)
	assert.Equal(t, "Serato 30.3.2023", p.Name)
	assert.True(t, svc.Repository().HasPlaylist())

	recent, err := svc.Recent(ctx)
	require.NoError(t, err)
	require.Len(t, recent, 1)
	assert.Equal(t, p.File, recent[0].Path)
	assert.Equal(t, 4, recent[0].Tracks)
}

func TestPlaylistService_LoadCancelled(t *testing.T) {
	svc, _ := newTestService(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Load(ctx, seratoInput)
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, svc.Repository().HasPlaylist())
}

func TestPlaylistService_LoadError(t *testing.T) {
	svc, _ := newTestService(t)
	_, err := svc.Load(context.Background(), "missing.xlsx")
	assert.ErrorIs(t, err, playlist.ErrUnsupportedFormat)
}

func TestPlaylistService_Save(t *testing.T) {
	ctx := context.Background()
	svc, dir := newTestService(t)

	_, err := svc.Save(ctx, "", false)
	assert.ErrorIs(t, err, ErrNoPlaylist)

	_, err = svc.Load(ctx, seratoInput)
	require.NoError(t, err)
	require.NoError(t, svc.Repository().SetName("Renamed"))

	suggestedDir, name, err := svc.SuggestedOutput()
	require.NoError(t, err)
	assert.Equal(t, dir, suggestedDir)
	assert.Equal(t, "Renamed.csv", name)

	path, err := svc.Save(ctx, "", false)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "Renamed.csv"), path)

	_, err = svc.Save(ctx, "", false)
	assert.ErrorIs(t, err, playlist.ErrOutputExists)

	_, err = svc.Save(ctx, "", true)
	assert.NoError(t, err)
}

func TestPlaylistService_RecentDropsMissingFiles(t *testing.T) {
	ctx := context.Background()
	svc, dir := newTestService(t)

	copied := filepath.Join(dir, "copy.csv")
	data, err := os.ReadFile(seratoInput)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(copied, data, 0o644))

	_, err = svc.Load(ctx, seratoInput)
	require.NoError(t, err)
	_, err = svc.Load(ctx, copied)
	require.NoError(t, err)
	require.NoError(t, os.Remove(copied))

	recent, err := svc.Recent(ctx)
	require.NoError(t, err)
	require.Len(t, recent, 1)
	assert.Equal(t, "Serato 30.3.2023", recent[0].Name)
}

func TestPlaylistService_WithoutHistory(t *testing.T) {
	svc := NewPlaylistService(models.NewPlaylistRepository(), nil, logger.NewNop(), "", 5)
	_, err := svc.Load(context.Background(), seratoInput)
	require.NoError(t, err)

	recent, err := svc.Recent(context.Background())
	assert.NoError(t, err)
	assert.Empty(t, recent)
}

func TestPlaylistService_RecordsTimings(t *testing.T) {
	svc, _ := newTestService(t)
	_, err := svc.Load(context.Background(), seratoInput)
	require.NoError(t, err)
	_, err = svc.Save(context.Background(), "", false)
	require.NoError(t, err)

	assert.Len(t, svc.Timings().Timings("load"), 1)
	assert.Len(t, svc.Timings().Timings("save"), 1)
}
