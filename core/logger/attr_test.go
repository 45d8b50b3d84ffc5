package logger_test

import (
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sentiment/core/logger"
)

// ============================================================================
// Error Handling Tests
// ============================================================================

func TestError(t *testing.T) {
	t.Parallel()
	err := errors.New("boom")
	attr := logger.Error(err)
	require.Equal(t, "error", attr.Key)
	assert.Equal(t, err, attr.Value.Any())

	empty := logger.Error(nil)
	assert.True(t, empty.Equal(slog.Attr{}))
}

// ============================================================================
// Timing Tests
// ============================================================================

func TestDuration(t *testing.T) {
	t.Parallel()
	d := 5 * time.Second
	attr := logger.Duration(d)
	require.Equal(t, "duration", attr.Key)
	assert.Equal(t, d, attr.Value.Duration())
}

func TestWait(t *testing.T) {
	t.Parallel()
	attr := logger.Wait(500 * time.Millisecond)
	require.Equal(t, "wait", attr.Key)
	assert.Equal(t, 500*time.Millisecond, attr.Value.Duration())
}

func TestElapsed(t *testing.T) {
	t.Parallel()
	start := time.Now().Add(-500 * time.Millisecond)
	attr := logger.Elapsed(start)
	require.Equal(t, "elapsed", attr.Key)
	assert.GreaterOrEqual(t, attr.Value.Duration(), 500*time.Millisecond)
}

// ============================================================================
// Metadata Tests
// ============================================================================

func TestComponentAndCount(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "component", logger.Component("interpreter").Key)
	assert.Equal(t, "interpreter", logger.Component("interpreter").Value.String())
	assert.Equal(t, "items", logger.Count("items", 3).Key)
	assert.Equal(t, int64(3), logger.Count("items", 3).Value.Int64())
}

// ============================================================================
// Sentiment Analysis Tests
// ============================================================================

func TestAnalysisID(t *testing.T) {
	t.Parallel()
	attr := logger.AnalysisID("a-1")
	require.Equal(t, "analysis_id", attr.Key)
	assert.Equal(t, "a-1", attr.Value.String())

	assert.True(t, logger.AnalysisID("").Equal(slog.Attr{}))
}

func TestProviderAndModel(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "gemini", logger.Provider("gemini").Value.String())
	assert.True(t, logger.Provider("").Equal(slog.Attr{}))
	assert.Equal(t, "gpt-4o-mini", logger.Model("gpt-4o-mini").Value.String())
	assert.True(t, logger.Model("").Equal(slog.Attr{}))
}

func TestVerdictAttrs(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "Positive", logger.Category("Positive").Value.String())
	assert.InDelta(t, 0.85, logger.Score(0.85).Value.Float64(), 1e-9)
	assert.Equal(t, "abc", logger.RawScore("abc").Value.String())
	assert.Equal(t, "malformed_reply", logger.Outcome("malformed_reply").Value.String())
}

func TestReply(t *testing.T) {
	t.Parallel()

	attr := logger.Reply("short", 10)
	require.Equal(t, "reply", attr.Key)
	assert.Equal(t, "short", attr.Value.String())

	attr = logger.Reply("abcdefghij", 4)
	assert.Equal(t, "abcd…", attr.Value.String())

	attr = logger.Reply("unbounded", 0)
	assert.Equal(t, "unbounded", attr.Value.String())
}
