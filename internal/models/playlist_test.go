package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"playlist-tool/internal/playlist"
)

func TestPlaylistRepository(t *testing.T) {
	repo := NewPlaylistRepository()
	assert.False(t, repo.HasPlaylist())
	assert.Nil(t, repo.Current())
	assert.Error(t, repo.SetName("x"))

	repo.Set(&playlist.Playlist{Name: "Original", Tracks: []playlist.Track{playlist.NewTrack("A", "B")}})
	require.True(t, repo.HasPlaylist())
	assert.False(t, repo.Modified())
	assert.False(t, repo.LoadedAt().IsZero())

	require.NoError(t, repo.SetName("Original"))
	assert.False(t, repo.Modified(), "same name is not an edit")

	require.NoError(t, repo.SetName("  Renamed "))
	assert.Equal(t, "Renamed", repo.Current().Name)
	assert.True(t, repo.Modified())

	copied := repo.Current()
	copied.Name = "changed outside"
	assert.Equal(t, "Renamed", repo.Current().Name)

	repo.Clear()
	assert.False(t, repo.HasPlaylist())
}

func TestPlaylistRepositorySetDate(t *testing.T) {
	repo := NewPlaylistRepository()
	repo.Set(&playlist.Playlist{Name: "x"})

	require.NoError(t, repo.SetDate("2023.03.30 16:04"))
	assert.Equal(t, time.Date(2023, 3, 30, 16, 4, 0, 0, time.UTC), *repo.Current().Date)
	assert.Equal(t, "2023.03.30 16:04", FormatDate(repo.Current().Date))

	require.NoError(t, repo.SetDate("30.3.2023"))
	assert.Equal(t, time.Date(2023, 3, 30, 0, 0, 0, 0, time.UTC), *repo.Current().Date)

	assert.EqualError(t, repo.SetDate("tomorrow"), "invalid date: 'tomorrow', use YYYY.MM.DD HH:MM")

	require.NoError(t, repo.SetDate(""))
	assert.Nil(t, repo.Current().Date)
	assert.Equal(t, "", FormatDate(nil))
}
