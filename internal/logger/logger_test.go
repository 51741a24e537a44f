package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeEntry(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestNewLogger_RoleAndTimestamp(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger("client", &buf)

	l.Info().Msg("hello")

	entry := decodeEntry(t, &buf)
	assert.Equal(t, "client", entry["role"])
	assert.Contains(t, entry, "time")
	assert.Contains(t, entry, "func")
}

func TestNewLogger_GlobalSettings(t *testing.T) {
	NewLogger("settings")
	assert.Equal(t, "func", zerolog.CallerFieldName)
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
}

func TestNewClientLogger_NotNil(t *testing.T) {
	require.NotNil(t, NewClientLogger("client"))
}

func TestNop_DiscardsOutput(t *testing.T) {
	var buf bytes.Buffer
	l := Nop()
	l.Logger = l.Output(&buf)

	l.Info().Msg("should be discarded")

	assert.Empty(t, buf.String())
}

func TestGetChildLogger_InheritsFields(t *testing.T) {
	var buf bytes.Buffer
	parent := newLogger("inherited-role", &buf)

	child := parent.GetChildLogger()
	assert.NotSame(t, parent, child)
	child.Info().Msg("child message")

	assert.Equal(t, "inherited-role", decodeEntry(t, &buf)["role"])
}

func TestWithContext_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger("ctx-role", &buf)

	ctx := l.WithContext(context.Background())
	FromContext(ctx).Info().Msg("from context")

	assert.Equal(t, "ctx-role", decodeEntry(t, &buf)["role"])
}

func TestFromContext_NeverNil(t *testing.T) {
	require.NotNil(t, FromContext(context.Background()))
}
