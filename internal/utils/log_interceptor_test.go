package utils

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogInterceptorPrefixesLines(t *testing.T) {
	var out bytes.Buffer
	li := NewLogInterceptor(&out)

	_, err := li.Write([]byte("first\nsecond\n"))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "line=1 "), "got %q", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "line=2 "), "got %q", lines[1])
	assert.Contains(t, lines[0], "time=")
	assert.True(t, strings.HasSuffix(lines[0], "first"))
	assert.True(t, strings.HasSuffix(lines[1], "second"))
}

func TestLogInterceptorBuffersPartialLines(t *testing.T) {
	var out bytes.Buffer
	li := NewLogInterceptor(&out)

	_, err := li.Write([]byte("no newline yet"))
	require.NoError(t, err)
	assert.Empty(t, out.String())

	_, err = li.Write([]byte(" done\n"))
	require.NoError(t, err)
	assert.Contains(t, out.String(), "no newline yet done")
}

func TestLogInterceptorCloseFlushes(t *testing.T) {
	var out bytes.Buffer
	li := NewLogInterceptor(&out)

	_, err := li.Write([]byte("tail"))
	require.NoError(t, err)
	require.NoError(t, li.Close())
	assert.Contains(t, out.String(), "tail")

	// close with nothing buffered is a no-op
	require.NoError(t, li.Close())
}

func TestMultiLogHandlerFansOut(t *testing.T) {
	var a, b bytes.Buffer
	infoHandler := slog.NewTextHandler(&a, &slog.HandlerOptions{Level: slog.LevelInfo})
	warnHandler := slog.NewTextHandler(&b, &slog.HandlerOptions{Level: slog.LevelWarn})

	logger := slog.New(NewMultiLogHandler(infoHandler, warnHandler))
	logger.Info("hello")
	logger.Warn("careful")

	assert.Contains(t, a.String(), "hello")
	assert.Contains(t, a.String(), "careful")
	assert.NotContains(t, b.String(), "hello")
	assert.Contains(t, b.String(), "careful")
}
