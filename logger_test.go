package bittersweet

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	level, err := ParseLevel("debug")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)

	level, err = ParseLevel(" WARN ")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, level)

	_, err = ParseLevel("loud")
	assert.Error(t, err)
}

func TestLogger_LogLaw(t *testing.T) {
	var buf bytes.Buffer
	logger := NewTextLogger(&buf, slog.LevelDebug)
	ctx := context.Background()

	logger.LogLaw(ctx, 16, "gray-roundtrip", 65536, time.Millisecond, nil)
	assert.Contains(t, buf.String(), "law check completed")
	assert.Contains(t, buf.String(), "width=16")
	assert.Contains(t, buf.String(), "law=gray-roundtrip")

	buf.Reset()
	logger.LogLaw(ctx, 8, "rotate-inverse", 3, 0, errors.New("boom"))
	assert.Contains(t, buf.String(), "level=ERROR")
	assert.Contains(t, buf.String(), "error=boom")
}

func TestLogger_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := NewJSONLogger(&buf, slog.LevelInfo).WithWidth(64).WithLaw("rank-select")

	logger.LogRun(context.Background(), 10, 0, time.Second)
	assert.Contains(t, buf.String(), `"width":64`)
	assert.Contains(t, buf.String(), `"law":"rank-select"`)
	assert.Contains(t, buf.String(), `"msg":"verification completed"`)

	buf.Reset()
	logger.LogRun(context.Background(), 10, 2, time.Second)
	assert.Contains(t, buf.String(), `"failed":2`)
}

func TestNoopLogger(t *testing.T) {
	logger := NoopLogger()
	assert.False(t, logger.Enabled(context.Background(), slog.LevelError))
}
