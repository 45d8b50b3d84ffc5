package sentiment

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Known sentiment categories. Models may return them in any case; Result keeps
// the raw word and DisplayCategory normalizes it.
const (
	CategoryPositive = "Positive"
	CategoryNegative = "Negative"
	CategoryNeutral  = "Neutral"

	// CategoryError marks a failed analysis.
	CategoryError = "Error"
)

// ReasonUnparseable is the reason reported when a reply lacks a required field.
const ReasonUnparseable = "Could not extract sentiment, reason, and score."

// Request is a single analysis request.
// Text should be non-empty; enforcing that is the caller's job.
type Request struct {
	Text    string
	Context string
	Sarcasm bool
}

// Result is a structured verdict. Score is always within [-1, 1].
type Result struct {
	Category string
	Reason   string
	Score    float64
}

// Failed reports whether the result is the Error sentinel.
func (r Result) Failed() bool {
	return r.Category == CategoryError
}

// DisplayCategory returns the category in title case, e.g. "positive" -> "Positive".
func (r Result) DisplayCategory() string {
	return TitleCase(r.Category)
}

// errorResult builds an Error result with a zero score.
func errorResult(reason string) Result {
	return Result{Category: CategoryError, Reason: reason, Score: 0}
}

// TitleCase upper-cases the first letter of s and lower-cases the rest.
// Categories are single words, so word-wise title casing gives the same result.
func TitleCase(s string) string {
	if s == "" {
		return s
	}
	return cases.Title(language.Und).String(s)
}

// Outcome classifies how an analysis ended. It is used as a log attribute and
// a metric label.
type Outcome string

const (
	OutcomeOK               Outcome = "ok"
	OutcomeCacheHit         Outcome = "cache_hit"
	OutcomeMalformedReply   Outcome = "malformed_reply"
	OutcomeTransportFailure Outcome = "transport_failure"
	OutcomeScoreOutOfRange  Outcome = "score_out_of_range"
	OutcomeScoreUnparseable Outcome = "score_unparseable"
	OutcomeCancelled        Outcome = "cancelled"
)

// Outcomes lists every outcome, in a stable order.
func Outcomes() []Outcome {
	return []Outcome{
		OutcomeOK,
		OutcomeCacheHit,
		OutcomeMalformedReply,
		OutcomeTransportFailure,
		OutcomeScoreOutOfRange,
		OutcomeScoreUnparseable,
		OutcomeCancelled,
	}
}
