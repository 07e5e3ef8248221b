package logger

import (
	"bytes"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]zerolog.Level{
		"trace":   zerolog.TraceLevel,
		"DEBUG":   zerolog.DebugLevel,
		"info":    zerolog.InfoLevel,
		"":        zerolog.InfoLevel,
		" warn ":  zerolog.WarnLevel,
		"warning": zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
	}
	for name, want := range cases {
		got, err := ParseLevel(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}

	_, err := ParseLevel("loud")
	assert.EqualError(t, err, "unknown log level: 'loud'")
}

func TestLevelFromEnv(t *testing.T) {
	env := func(values map[string]string) func(string) string {
		return func(key string) string { return values[key] }
	}

	assert.Equal(t, zerolog.InfoLevel, LevelFromEnv(env(nil)))
	assert.Equal(t, zerolog.WarnLevel, LevelFromEnv(env(map[string]string{"LOG_LEVEL": "warn"})))
	assert.Equal(t, zerolog.DebugLevel, LevelFromEnv(env(map[string]string{"DEBUG": "1"})))
	assert.Equal(t, zerolog.InfoLevel, LevelFromEnv(env(map[string]string{"LOG_LEVEL": "bogus"})))
}

func TestConsoleLoggerFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	log := NewConsoleLogger(&buf, zerolog.WarnLevel)

	log.Info("Test", "hidden message", nil)
	log.Warning("Test", "visible warning", map[string]interface{}{"tracks": 4})
	log.Error("Test", errors.New("boom"), nil)

	out := buf.String()
	assert.NotContains(t, out, "hidden message")
	assert.Contains(t, out, "visible warning")
	assert.Contains(t, out, "tracks=4")
	assert.Contains(t, out, "boom")
	assert.False(t, IsTerminal(&buf))
}
