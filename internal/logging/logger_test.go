package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, parseLevel("debug"))
	assert.Equal(t, zerolog.WarnLevel, parseLevel("WARN"))
	assert.Equal(t, zerolog.ErrorLevel, parseLevel("error"))
	assert.Equal(t, zerolog.InfoLevel, parseLevel("bogus"))
}

func TestInitWritesJSONToFile(t *testing.T) {
	prev := log.Logger
	t.Cleanup(func() {
		log.Logger = prev
		zerolog.SetGlobalLevel(zerolog.TraceLevel)
	})

	file := filepath.Join(t.TempDir(), "state", "feedback.log")
	c, err := Init("info", file)
	require.NoError(t, err)

	log.Info().Str("key", "feedbackEntries").Msg("hello")
	log.Debug().Msg("dropped")
	require.NoError(t, c.Close())

	b, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"message":"hello"`)
	assert.Contains(t, string(b), `"key":"feedbackEntries"`)
	assert.Contains(t, string(b), `"app":"feedback"`)
	assert.NotContains(t, string(b), "dropped")
}

func TestInitWithoutFile(t *testing.T) {
	prev := log.Logger
	t.Cleanup(func() { log.Logger = prev })

	c, err := Init("info", "")
	require.NoError(t, err)
	assert.NoError(t, c.Close())
}
