package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/scenecache/internal/adapters/logger"
	"go.trai.ch/scenecache/internal/core/domain"
	"go.trai.ch/zerr"
)

// newTestLogger creates a logger with an injected bytes.Buffer for isolated testing.
func newTestLogger(t *testing.T) (*logger.Logger, *bytes.Buffer) {
	t.Helper()

	buf := &bytes.Buffer{}
	lg, ok := logger.New().(*logger.Logger)
	require.True(t, ok)
	lg.SetOutput(buf)
	return lg, buf
}

func TestLogger_Levels(t *testing.T) {
	tests := []struct {
		name  string
		log   func(*logger.Logger)
		level string
		msg   string
	}{
		{name: "info", log: func(l *logger.Logger) { l.Info("some message") }, level: "INFO", msg: "some message"},
		{name: "warn", log: func(l *logger.Logger) { l.Warn("some warning") }, level: "WARN", msg: "some warning"},
		{name: "error", log: func(l *logger.Logger) { l.Error(os.ErrPermission) }, level: "ERROR", msg: "permission denied"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lg, buf := newTestLogger(t)
			tt.log(lg)

			out := buf.String()
			assert.Contains(t, out, tt.msg)
			assert.Contains(t, out, "level="+tt.level)
		})
	}
}

func TestLogger_DebugRequiresLevel(t *testing.T) {
	lg, buf := newTestLogger(t)

	lg.Debug("hidden")
	assert.Empty(t, buf.String())

	lg.SetLevel(domain.LogLevelDebug)
	lg.Debug("visible")
	assert.Contains(t, buf.String(), "visible")

	buf.Reset()
	lg.SetLevel(domain.LogLevelError)
	lg.Warn("suppressed")
	assert.Empty(t, buf.String())
}

func TestLogger_ErrorNil(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Error(nil)
	assert.Empty(t, buf.String())
}

func TestLogger_JSON(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.SetJSON(true)

	lg.Info("indexed")
	lg.Error(errors.New("boom"))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)

	var rec map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &rec))
	assert.Equal(t, "indexed", rec["msg"])
	assert.Equal(t, "INFO", rec["level"])

	require.NoError(t, json.Unmarshal([]byte(lines[1]), &rec))
	assert.Equal(t, "operation failed", rec["msg"])
	assert.Equal(t, "boom", rec["error"])
}

func TestLogger_SetOutputKeepsMode(t *testing.T) {
	lg, _ := newTestLogger(t)
	lg.SetJSON(true)

	buf := &bytes.Buffer{}
	lg.SetOutput(buf)
	lg.Info("still json")

	assert.True(t, json.Valid(bytes.TrimSpace(buf.Bytes())))
}

func TestCollectErrorEntries(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		wantMessages []string
	}{
		{
			name:         "single standard error",
			err:          errors.New("simple error"),
			wantMessages: []string{"simple error"},
		},
		{
			name: "zerr wrapped chain",
			err: zerr.Wrap(
				zerr.Wrap(errors.New("root cause"), "middle layer"),
				"outer layer",
			),
			wantMessages: []string{"outer layer", "middle layer", "root cause"},
		},
		{
			name:         "zerr with metadata",
			err:          zerr.With(zerr.New("base error"), "path", "a.unity"),
			wantMessages: []string{"base error"},
		},
		{
			name:         "nil error",
			err:          nil,
			wantMessages: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries := logger.CollectErrorEntries(tt.err)

			var messages []string
			for _, e := range entries {
				messages = append(messages, e.Message)
			}
			assert.Equal(t, tt.wantMessages, messages)
		})
	}
}

func TestCollectErrorEntries_Metadata(t *testing.T) {
	err := zerr.With(zerr.New("failed to open source"), "path", "a.unity")

	entries := logger.CollectErrorEntries(err)
	require.Len(t, entries, 1)
	assert.Equal(t, "a.unity", entries[0].Metadata["path"])
}

func TestFormatErrorEntries(t *testing.T) {
	tests := []struct {
		name    string
		entries []logger.ErrorEntry
		want    string
	}{
		{
			name:    "single",
			entries: []logger.ErrorEntry{{Message: "boom"}},
			want:    "Error: boom",
		},
		{
			name:    "chain",
			entries: []logger.ErrorEntry{{Message: "build failed"}, {Message: "bad header"}},
			want:    "Error: build failed\n\n  Caused by:\n    -> bad header",
		},
		{
			name:    "multiline",
			entries: []logger.ErrorEntry{{Message: "first\nsecond"}, {Message: "cause\ndetail"}},
			want:    "Error: first\n       second\n\n  Caused by:\n    -> cause\n       detail",
		},
		{
			name: "metadata sorted",
			entries: []logger.ErrorEntry{{
				Message:  "invalid header",
				Metadata: map[string]any{"line": 3, "document": 1},
			}},
			want: "Error: invalid header (document=1 line=3)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, logger.FormatErrorEntries(tt.entries))
		})
	}
}

func TestLogger_ErrorRendersChain(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Error(zerr.Wrap(errors.New("root cause"), "outer layer"))

	out := buf.String()
	assert.Contains(t, out, "Error: outer layer")
	assert.Contains(t, out, "Caused by:")
	assert.Contains(t, out, "root cause")
}
