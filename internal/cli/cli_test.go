package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"playlist-tool/internal/history"
	"playlist-tool/internal/playlist"
)

var seratoInput = filepath.Join("..", "playlist", "testdata", "Serato 30.3.2023.csv")

const basicOutput = "Artist A - Song One\n" +
	"Artist B - Song Two (Extended Mix)\n" +
	"Artist C - Song Three\n" +
	"Artist D - Song Four\n"

// writeConfig creates a config file that keeps history and output inside the test dir
func writeConfig(t *testing.T, record bool) (string, string) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	db := filepath.Join(dir, "history.db")
	content := "history_db = '" + db + "'\nrecord_history = " + map[bool]string{true: "true", false: "false"}[record] + "\n"
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path, dir
}

func run(args ...string) (int, string, string) {
	var stdout, stderr bytes.Buffer
	code := Run(context.Background(), args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestVersionFlag(t *testing.T) {
	code, stdout, stderr := run("--version")
	assert.Equal(t, 0, code)
	assert.Equal(t, "1.0.0\n", stdout)
	assert.Empty(t, stderr)
}

func TestNoArguments(t *testing.T) {
	code, _, stderr := run()
	assert.NotEqual(t, 0, code)
	assert.Contains(t, stderr, "empty input file")
	assert.NotContains(t, stderr, "-test.")
}

func TestHelpAndVersionAfterFile(t *testing.T) {
	code, stdout, stderr := run(seratoInput, "-q", "--version")
	assert.Equal(t, 0, code)
	assert.Equal(t, "1.0.0\n", stdout)
	assert.Empty(t, stderr)

	code, stdout, stderr = run(seratoInput, "--help")
	assert.Equal(t, 0, code)
	assert.Contains(t, stdout+stderr, "playlist-formatter")
	assert.NotContains(t, stdout, "Song One")
}

func TestHelpFlag(t *testing.T) {
	code, stdout, stderr := run("--help")
	assert.Equal(t, 0, code)
	assert.Contains(t, stdout+stderr, "playlist-formatter")
}

func TestNewConfig(t *testing.T) {
	_, err := NewConfig(Options{Input: seratoInput, Basic: true, Numbered: true})
	assert.ErrorIs(t, err, errStyleConflict)

	_, err = NewConfig(Options{Input: "  "})
	assert.EqualError(t, err, "empty input file")

	_, err = NewConfig(Options{Input: "nope.csv"})
	assert.EqualError(t, err, "file does not exist or is not accessible: 'nope.csv'")

	cfg, err := NewConfig(Options{Input: seratoInput, Numbered: true})
	require.NoError(t, err)
	assert.Equal(t, playlist.StyleNumbered, cfg.Style)
	assert.False(t, cfg.Save)

	cfg, err = NewConfig(Options{Input: seratoInput, Output: "out.csv"})
	require.NoError(t, err)
	assert.Equal(t, playlist.StylePretty, cfg.Style)
	assert.True(t, cfg.Save, "output path implies save")
}

func TestRunErrors(t *testing.T) {
	configPath, _ := writeConfig(t, false)

	code, _, _ := run("--config", configPath)
	assert.NotEqual(t, 0, code)

	code, _, _ = run("--config", configPath, "missing.csv")
	assert.NotEqual(t, 0, code)

	code, _, _ = run("--config", configPath, "-b", "-n", seratoInput)
	assert.NotEqual(t, 0, code)

	code, _, _ = run("--config", configPath, "--log", "loud", seratoInput)
	assert.NotEqual(t, 0, code)
}

func TestRunBasic(t *testing.T) {
	configPath, _ := writeConfig(t, false)

	code, stdout, _ := run("--config", configPath, "-b", seratoInput)
	require.Equal(t, 0, code)
	assert.Equal(t, basicOutput, stdout)
}

func TestRunPrettyPrintsInfo(t *testing.T) {
	configPath, _ := writeConfig(t, false)

	code, stdout, _ := run("--config", configPath, seratoInput)
	require.Equal(t, 0, code)
	assert.Contains(t, stdout, "Tracks: 4, Total duration: 16:22")
	assert.Contains(t, stdout, "PLAYTIME")

	code, stdout, _ = run("--config", configPath, "-q", seratoInput)
	require.Equal(t, 0, code)
	assert.Contains(t, stdout, "Serato 30.3.2023")
	assert.NotContains(t, stdout, "PLAYTIME")
}

func TestRunSave(t *testing.T) {
	configPath, dir := writeConfig(t, false)
	output := filepath.Join(dir, "formatted.txt")

	code, stdout, _ := run("--config", configPath, "-q", "-b", seratoInput, output)
	require.Equal(t, 0, code)
	assert.Contains(t, stdout, "Saving to: "+output)
	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t, basicOutput, string(data))

	code, _, _ = run("--config", configPath, "-q", seratoInput, output)
	assert.NotEqual(t, 0, code, "existing output without force")

	code, _, _ = run("--config", configPath, "-q", seratoInput, output, "--force")
	assert.Equal(t, 0, code, "flags after positionals are parsed")
}

func TestExecuteReportsExistingOutput(t *testing.T) {
	configPath, dir := writeConfig(t, false)
	output := filepath.Join(dir, "exists.csv")
	require.NoError(t, os.WriteFile(output, []byte("x"), 0o644))

	var stdout, stderr bytes.Buffer
	err := execute(context.Background(), Options{Input: seratoInput, Output: output, Quiet: true, ConfigPath: configPath}, &stdout, &stderr)
	assert.ErrorIs(t, err, playlist.ErrOutputExists)
}

func TestRunRecordsHistory(t *testing.T) {
	configPath, dir := writeConfig(t, true)

	code, _, _ := run("--config", configPath, "-q", seratoInput)
	require.Equal(t, 0, code)

	store, err := history.Open(filepath.Join(dir, "history.db"))
	require.NoError(t, err)
	defer store.Close()

	entries, err := store.Recent(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Serato 30.3.2023", entries[0].Name)
	assert.Equal(t, "Serato", entries[0].Type)
	assert.Equal(t, 4, entries[0].Tracks)
}

func TestInterleaved(t *testing.T) {
	var opts Options
	flags := newFlagSet(&opts)

	args, err := interleaved(flags, []string{"in.csv", "-s", "out.csv", "--", "-odd"})
	require.NoError(t, err)
	assert.Equal(t, []string{"in.csv", "out.csv", "-odd"}, args)
	assert.True(t, opts.Save)
}
