package logger

import (
	"log/slog"
	"time"
)

// Attribute helpers return the empty Attr for nil or empty input,
// so calls like log.Warn("msg", logger.Error(err)) need no nil checks.

// ============================================================================
// Error Handling
// ============================================================================

// Error creates an attribute for a single error under the key "error".
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// ============================================================================
// Timing
// ============================================================================

// Duration creates an attribute for a duration.
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

// Wait creates an attribute for time spent blocked on a limiter.
func Wait(d time.Duration) slog.Attr {
	return slog.Duration("wait", d)
}

// Elapsed logs the duration since start.
func Elapsed(start time.Time) slog.Attr {
	return slog.Duration("elapsed", time.Since(start))
}

// ============================================================================
// Metadata
// ============================================================================

// Component creates an attribute for component names.
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Count creates a generic counter attribute.
func Count(key string, n int) slog.Attr {
	return slog.Int(key, n)
}

// ============================================================================
// Sentiment Analysis
// ============================================================================

// AnalysisID identifies a single analyze call across log lines.
func AnalysisID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("analysis_id", id)
}

// Provider names the model vendor behind a session.
func Provider(name string) slog.Attr {
	if name == "" {
		return slog.Attr{}
	}
	return slog.String("provider", name)
}

// Model names the remote model.
func Model(name string) slog.Attr {
	if name == "" {
		return slog.Attr{}
	}
	return slog.String("model", name)
}

// Category records a sentiment category.
func Category(c string) slog.Attr {
	return slog.String("category", c)
}

// Score records a sentiment score.
func Score(s float64) slog.Attr {
	return slog.Float64("score", s)
}

// RawScore records the unvalidated score text extracted from a reply.
func RawScore(s string) slog.Attr {
	return slog.String("raw_score", s)
}

// Outcome records how an analysis terminated.
func Outcome(o string) slog.Attr {
	return slog.String("outcome", o)
}

// Reply records a model reply. Long replies are truncated to max runes.
func Reply(text string, max int) slog.Attr {
	if max > 0 {
		r := []rune(text)
		if len(r) > max {
			text = string(r[:max]) + "…"
		}
	}
	return slog.String("reply", text)
}
