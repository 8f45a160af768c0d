package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestNewDefaultsToInfo(t *testing.T) {
	l := New(Config{Format: FormatJSON, Output: &bytes.Buffer{}})
	require.Equal(t, zerolog.InfoLevel, l.GetLevel())
}

func TestNewJSONOutput(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: zerolog.DebugLevel, Format: FormatJSON, Output: &buf})

	l.Debug().Str("kind", "age").Msg("proof.generate")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	require.Equal(t, "debug", line["level"])
	require.Equal(t, "age", line["kind"])
	require.Equal(t, "proof.generate", line["message"])
	require.Contains(t, line, "time")
}

func TestLevelFilters(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: zerolog.ErrorLevel, Format: FormatJSON, Output: &buf})

	l.Info().Msg("dropped")
	require.Zero(t, buf.Len())
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("JSON")
	require.NoError(t, err)
	require.Equal(t, FormatJSON, f)

	_, err = ParseFormat("xml")
	require.Error(t, err)
}
