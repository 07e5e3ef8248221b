package playlist

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readSample(t *testing.T) *Playlist {
	t.Helper()
	p, err := Read(filepath.Join("testdata", "Serato 30.3.2023.csv"))
	require.NoError(t, err)
	return p
}

func TestPrintBasic(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, readSample(t).Print(&buf, StyleBasic))
	assert.Equal(t, "Artist A - Song One\n"+
		"Artist B - Song Two (Extended Mix)\n"+
		"Artist C - Song Three\n"+
		"Artist D - Song Four\n", buf.String())
}

func TestPrintNumbered(t *testing.T) {
	p := readSample(t)
	for i := 0; i < 8; i++ {
		p.Tracks = append(p.Tracks, NewTrack("Filler", "Track"))
	}

	var buf bytes.Buffer
	require.NoError(t, p.Print(&buf, StyleNumbered))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 12)
	assert.Equal(t, "01: Artist A - Song One", lines[0])
	assert.Equal(t, "12: Filler - Track", lines[11])
}

func TestPrintPretty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, readSample(t).Print(&buf, StylePretty))
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 7)

	assert.Contains(t, lines[0], "ARTIST")
	assert.Contains(t, lines[0], "PLAYTIME")
	assert.Equal(t, strings.Repeat("-", len(lines[1])), lines[1])
	assert.Equal(t, lines[1], lines[6])
	assert.Contains(t, lines[2], "Artist A")
	assert.Contains(t, lines[2], "4:07")
	assert.True(t, strings.HasPrefix(lines[3], "2   Artist B"))
	assert.Equal(t, strings.Index(lines[2], "Song One"), strings.Index(lines[3], "Song Two"))
}

func TestPrintPrettyWithoutPlaytimes(t *testing.T) {
	p := &Playlist{Tracks: []Track{NewTrack("Björk", "Jóga")}}
	var buf bytes.Buffer
	require.NoError(t, p.Print(&buf, StylePretty))
	assert.NotContains(t, buf.String(), "PLAYTIME")
	assert.Contains(t, buf.String(), "1   Björk    Jóga")
}

func TestInfo(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, readSample(t).Info(&buf))
	out := buf.String()
	assert.Contains(t, out, "Serato 30.3.2023")
	assert.Contains(t, out, "Format: csv")
	assert.Contains(t, out, "Date: 2023.03.30 16:04")
	assert.Contains(t, out, "Tracks: 4, Total duration: 16:22 (4:05 per track)")
	assert.True(t, strings.HasSuffix(out, "\n\n"))

	buf.Reset()
	require.NoError(t, (&Playlist{Name: "x"}).Info(&buf))
	assert.Contains(t, buf.String(), "Date: unknown")
	assert.Contains(t, buf.String(), "Tracks: 0\n")
}
