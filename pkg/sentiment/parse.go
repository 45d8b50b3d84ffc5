package sentiment

import (
	"strconv"
	"strings"
)

// Parsed is the outcome of interpreting one reply.
type Parsed struct {
	Result  Result
	Outcome Outcome
	Fields  Fields // raw extraction; zero when the reply was malformed
}

// Parse normalizes reply, extracts fields with g and validates the score.
//
// A reply missing any field yields the Error result. A score that does not
// parse, or parses outside [-1, 1], is replaced by 0 while category and
// reason are kept. Out-of-range scores are reset, not clamped to the bound.
func Parse(g Grammar, reply string) Parsed {
	fields, ok := g.Extract(Normalize(reply))
	if !ok {
		return Parsed{
			Result:  errorResult(ReasonUnparseable),
			Outcome: OutcomeMalformedReply,
		}
	}

	res := Result{Category: fields.Category, Reason: fields.Reason}
	outcome := OutcomeOK

	score, err := strconv.ParseFloat(strings.TrimSpace(fields.Score), 64)
	switch {
	case err != nil:
		outcome = OutcomeScoreUnparseable
	case !(score >= -1 && score <= 1): // NaN lands here too
		outcome = OutcomeScoreOutOfRange
	default:
		res.Score = score
	}

	return Parsed{Result: res, Outcome: outcome, Fields: fields}
}
