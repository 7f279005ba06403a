package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captured пишет через l в буфер и возвращает первую запись.
func captured(t *testing.T, l *Logger, write func(*Logger)) map[string]any {
	t.Helper()
	var buf bytes.Buffer
	l.Logger = l.Output(&buf)
	write(l)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	return entry
}

func TestNewLogger_EntryShape(t *testing.T) {
	entry := captured(t, NewLogger("notes-server"), func(l *Logger) {
		l.Info().Msg("started")
	})

	assert.Equal(t, "notes-server", entry["role"])
	assert.Equal(t, "started", entry["message"])
	assert.Contains(t, entry, "time")
	assert.Contains(t, entry, "func")
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
}

func TestNop_WritesNothing(t *testing.T) {
	var buf bytes.Buffer
	l := Nop()
	l.Logger = l.Output(&buf)

	l.Error().Msg("dropped")

	assert.Zero(t, buf.Len())
}

func TestWithField_DoesNotTouchParent(t *testing.T) {
	var buf bytes.Buffer
	parent := &Logger{zerolog.New(&buf).With().Str("role", "notes-server").Logger()}

	child := parent.WithField("trace_id", "t-1")
	child.Info().Msg("child")
	parent.Info().Msg("parent")

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 2)

	var childEntry, parentEntry map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &childEntry))
	require.NoError(t, json.Unmarshal(lines[1], &parentEntry))

	assert.Equal(t, "t-1", childEntry["trace_id"])
	assert.Equal(t, "notes-server", childEntry["role"])
	assert.NotContains(t, parentEntry, "trace_id")
}

func TestFromContext(t *testing.T) {
	var buf bytes.Buffer
	attached := &Logger{zerolog.New(&buf)}
	ctx := attached.WithUserID(7).WithContext(context.Background())

	FromContext(ctx).Info().Msg("note created")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.EqualValues(t, 7, entry["user_id"])

	// без прикреплённого логгера возвращается логгер по умолчанию
	assert.NotNil(t, FromContext(context.Background()))
}

func TestFromRequest(t *testing.T) {
	var buf bytes.Buffer
	zl := zerolog.New(&buf).With().Str("trace_id", "abc").Logger()
	req := httptest.NewRequest(http.MethodGet, "/api/notes", nil)
	req = req.WithContext(zl.WithContext(req.Context()))

	FromRequest(req).Warn().Msg("slow")

	assert.Contains(t, buf.String(), `"trace_id":"abc"`)
}

func TestNewClientLogger_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "client.log")

	NewClientLogger("notes-client", path).Info().Msg("to file")

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(data), &entry))
	assert.Equal(t, "notes-client", entry["role"])
}

func TestNewClientLogger_UnopenablePath(t *testing.T) {
	l := NewClientLogger("notes-client", filepath.Join(t.TempDir(), "missing", "dir", "log"))
	assert.NotNil(t, l)
}

func TestSetLevel(t *testing.T) {
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.DebugLevel) })

	for _, tt := range []struct {
		in   string
		want zerolog.Level
	}{
		{in: "warn", want: zerolog.WarnLevel},
		{in: "loud", want: zerolog.WarnLevel},
		{in: "", want: zerolog.WarnLevel},
		{in: "error", want: zerolog.ErrorLevel},
	} {
		SetLevel(tt.in)
		assert.Equal(t, tt.want, zerolog.GlobalLevel(), "level %q", tt.in)
	}
}
