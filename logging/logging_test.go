// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestNew_Defaults(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := New(WithOutput(&buf))

	logger.Debug("dropped")
	assert.Empty(t, buf.String())

	logger.Warn("legacy identifier", "exception", "NotFound")
	entry := decode(t, &buf)

	assert.Equal(t, "WARN", entry["level"])
	assert.Equal(t, "legacy identifier", entry["msg"])
	assert.Equal(t, "NotFound", entry["exception"])

	ts, ok := entry["time"].(string)
	require.True(t, ok)
	_, err := time.Parse(time.RFC3339, ts)
	assert.NoError(t, err)
}

func TestNew_TextFormat(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := New(WithFormat(FormatText), WithLevel(slog.LevelDebug), WithOutput(&buf))

	logger.Debug("recovered from panic", "status", 500)

	out := buf.String()
	require.True(t, strings.HasPrefix(out, "time="), out)
	ts := strings.TrimPrefix(strings.Fields(out)[0], "time=")
	_, err := time.Parse(time.RFC3339, ts)
	assert.NoError(t, err)

	assert.Contains(t, out, "level=DEBUG")
	assert.Contains(t, out, `msg="recovered from panic"`)
	assert.Contains(t, out, "status=500")
}

func TestNew_Level(t *testing.T) {
	t.Parallel()

	tests := []struct {
		min   slog.Level
		level slog.Level
		want  bool
	}{
		{slog.LevelDebug, slog.LevelDebug, true},
		{slog.LevelInfo, slog.LevelDebug, false},
		{slog.LevelWarn, slog.LevelInfo, false},
		{slog.LevelWarn, slog.LevelError, true},
		{slog.LevelError, slog.LevelWarn, false},
	}

	for _, tc := range tests {
		t.Run(tc.min.String()+"/"+tc.level.String(), func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			New(WithLevel(tc.min), WithOutput(&buf)).Log(context.Background(), tc.level, "x")
			assert.Equal(t, tc.want, buf.Len() > 0)
		})
	}
}

func TestNew_LevelVar(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	var lvl slog.LevelVar
	lvl.Set(slog.LevelError)
	logger := New(WithLevel(&lvl), WithOutput(&buf))

	logger.Warn("quiet")
	assert.Empty(t, buf.String())

	lvl.Set(slog.LevelWarn)
	logger.Warn("loud")
	assert.Contains(t, buf.String(), "loud")
}

func TestNewHandler(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(NewHandler(WithOutput(&buf))).With("component", "upgrade")
	logger.Info("resolved")

	entry := decode(t, &buf)
	assert.Equal(t, "upgrade", entry["component"])
	assert.Equal(t, "resolved", entry["msg"])
}

func TestReplaceAttr(t *testing.T) {
	t.Parallel()

	when := time.Date(2026, 10, 17, 8, 15, 0, 0, time.UTC)
	got := replaceAttr(nil, slog.Time(slog.TimeKey, when))
	assert.Equal(t, "2026-10-17T08:15:00Z", got.Value.String())

	other := slog.Int("status", 404)
	assert.Equal(t, other, replaceAttr(nil, other))
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{"", FormatJSON, false},
		{"json", FormatJSON, false},
		{"TEXT", FormatText, false},
		{" text ", FormatText, false},
		{"xml", FormatJSON, true},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			t.Parallel()

			got, err := ParseFormat(tc.input)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)

			again, err := ParseFormat(got.String())
			require.NoError(t, err)
			assert.Equal(t, got, again)
		})
	}
}

func TestFormat_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "json", FormatJSON.String())
	assert.Equal(t, "text", FormatText.String())
	assert.Equal(t, "Format(7)", Format(7).String())
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		want    slog.Level
		wantErr bool
	}{
		{"", slog.LevelInfo, false},
		{"debug", slog.LevelDebug, false},
		{"WARN", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"info+2", slog.LevelInfo + 2, false},
		{"loud", slog.LevelInfo, true},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			t.Parallel()

			got, err := ParseLevel(tc.input)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
