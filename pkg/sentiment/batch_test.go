package sentiment_test

import (
	"context"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sentiment/pkg/sentiment"
)

// echoModel classifies by keyword so batch tests can check ordering.
func echoModel(inFlight, peak *atomic.Int64) sentiment.Model {
	return sentiment.ModelFunc(func(_ context.Context, prompt string) (string, error) {
		if inFlight != nil {
			n := inFlight.Add(1)
			defer inFlight.Add(-1)
			for {
				p := peak.Load()
				if n <= p || peak.CompareAndSwap(p, n) {
					break
				}
			}
			time.Sleep(10 * time.Millisecond)
		}

		switch {
		case strings.Contains(prompt, "love"):
			return "Sentiment: positive - Reason: affection - Score: 0.9", nil
		case strings.Contains(prompt, "hate"):
			return "Sentiment: Negative - Reason: hostility - Score: -0.8", nil
		case strings.Contains(prompt, "garbage"):
			return "no idea", nil
		default:
			return "Sentiment: Neutral - Reason: factual - Score: 0.0", nil
		}
	})
}

func TestSplitLines(t *testing.T) {
	t.Parallel()

	lines, err := sentiment.SplitLines(strings.NewReader("  first line \n\n\t\nsecond\r\n   \nthird"))
	require.NoError(t, err)
	assert.Equal(t, []string{"first line", "second", "third"}, lines)

	lines, err = sentiment.SplitLines(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestAnalyzeBatch_Sequential(t *testing.T) {
	t.Parallel()

	interp, err := sentiment.New(echoModel(nil, nil), &fakeLimiter{})
	require.NoError(t, err)

	items := interp.AnalyzeBatch(context.Background(),
		[]string{"I love it", "", "  ", "I hate it", "It is Tuesday", "garbage"},
		"reviews", false,
	)

	require.Len(t, items, 4)
	assert.Equal(t, "I love it", items[0].Text)
	assert.Equal(t, "positive", items[0].Result.Category)
	assert.Equal(t, "I hate it", items[1].Text)
	assert.Equal(t, "Negative", items[1].Result.Category)
	assert.Equal(t, "It is Tuesday", items[2].Text)
	assert.Equal(t, "Neutral", items[2].Result.Category)
	assert.Equal(t, sentiment.OutcomeMalformedReply, items[3].Outcome)
	assert.True(t, items[3].Result.Failed())
}

func TestAnalyzeBatch_Concurrent(t *testing.T) {
	t.Parallel()

	var inFlight, peak atomic.Int64
	interp, err := sentiment.New(echoModel(&inFlight, &peak), &fakeLimiter{}, sentiment.WithConcurrency(3))
	require.NoError(t, err)

	texts := []string{"love 1", "hate 2", "fact 3", "love 4", "hate 5", "fact 6", "love 7", "hate 8"}
	items := interp.AnalyzeBatch(context.Background(), texts, "", false)

	require.Len(t, items, len(texts))
	for n, it := range items {
		assert.Equal(t, texts[n], it.Text, "order must be preserved")
	}
	assert.Equal(t, "positive", items[6].Result.Category)
	assert.Equal(t, "Negative", items[7].Result.Category)
	assert.LessOrEqual(t, peak.Load(), int64(3))
}

func TestSummarize(t *testing.T) {
	t.Parallel()

	items := []sentiment.Item{
		{Text: "a", Result: sentiment.Result{Category: "positive", Score: 0.5}},
		{Text: "b", Result: sentiment.Result{Category: "Positive", Score: 0.7}},
		{Text: "c", Result: sentiment.Result{Category: "negative", Score: -0.5}},
		{Text: "d", Result: sentiment.Result{Category: sentiment.CategoryError, Reason: sentiment.ReasonUnparseable}},
		{Text: "e", Result: sentiment.Result{Category: "mixed"}},
	}

	s := sentiment.Summarize(items)

	assert.Equal(t, 5, s.Total)
	assert.Equal(t, 1, s.Failed)
	assert.Equal(t, 2, s.Count("positive"))
	assert.Equal(t, 1, s.Count("Negative"))
	assert.Equal(t, 0, s.Count("Neutral"))
	assert.Equal(t, 1, s.Count("Mixed"))
	assert.Equal(t, 0, s.Count("Error"))

	require.Len(t, s.Categories, 4)
	assert.Equal(t, []string{"Positive", "Neutral", "Negative", "Mixed"}, []string{
		s.Categories[0].Category, s.Categories[1].Category, s.Categories[2].Category, s.Categories[3].Category,
	})
	assert.Equal(t, "a", s.Categories[0].Sample)
	assert.Equal(t, "", s.Categories[1].Sample)
	assert.Equal(t, "c", s.Categories[2].Sample)
}
