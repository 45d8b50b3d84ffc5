package sentiment

import (
	"regexp"
	"strings"

	"github.com/tidwall/gjson"
)

// Fields are the raw values a grammar pulls out of a reply, before validation.
type Fields struct {
	Category string
	Reason   string
	Score    string
}

// Grammar extracts the three verdict fields from a normalized model reply.
// It returns false when any field is missing.
type Grammar interface {
	Extract(reply string) (Fields, bool)
}

// Normalize trims surrounding whitespace and strips backticks, which models
// use to fence their answers.
func Normalize(reply string) string {
	return strings.ReplaceAll(strings.TrimSpace(reply), "`", "")
}

var (
	sentimentPattern = regexp.MustCompile(`Sentiment:\s*(\w+)`)
	reasonPattern    = regexp.MustCompile(`Reason:\s*(.*?)\s*-\s*Score:`)
	scorePattern     = regexp.MustCompile(`Score:\s*([-+]?(?:\d*\.\d+|\d+))`)
	scoreTokenPat    = regexp.MustCompile(`Score:\s*(\S+)`)
)

// LabeledGrammar reads the line format
//
//	Sentiment: <category> - Reason: <text> - Score: <number>
//
// The reason is everything between "Reason:" and the first "- Score:" on the
// same line. When no numeral follows "Score:", the next token is returned as
// is so the caller can report it as unparseable.
type LabeledGrammar struct{}

// Extract implements Grammar.
func (LabeledGrammar) Extract(reply string) (Fields, bool) {
	sm := sentimentPattern.FindStringSubmatch(reply)
	rm := reasonPattern.FindStringSubmatch(reply)

	sc := scorePattern.FindStringSubmatch(reply)
	if sc == nil {
		sc = scoreTokenPat.FindStringSubmatch(reply)
	}

	if sm == nil || rm == nil || sc == nil {
		return Fields{}, false
	}

	return Fields{
		Category: sm[1],
		Reason:   strings.TrimSpace(rm[1]),
		Score:    sc[1],
	}, true
}

// JSONGrammar reads a JSON object with "sentiment", "reason" and "score" keys.
// "category" is accepted in place of "sentiment". Prose or a "json" fence
// label around the object is ignored.
type JSONGrammar struct{}

// Extract implements Grammar.
func (JSONGrammar) Extract(reply string) (Fields, bool) {
	start := strings.Index(reply, "{")
	end := strings.LastIndex(reply, "}")
	if start < 0 || end <= start {
		return Fields{}, false
	}
	obj := reply[start : end+1]
	if !gjson.Valid(obj) {
		return Fields{}, false
	}

	res := gjson.GetMany(obj, "sentiment", "category", "reason", "score")
	category := res[0]
	if !category.Exists() {
		category = res[1]
	}
	reason, score := res[2], res[3]

	if !category.Exists() || !reason.Exists() || !score.Exists() {
		return Fields{}, false
	}

	raw := score.Raw
	if score.Type == gjson.String {
		raw = score.Str
	}

	return Fields{
		Category: strings.TrimSpace(category.String()),
		Reason:   strings.TrimSpace(reason.String()),
		Score:    raw,
	}, true
}

// GrammarByName resolves "labeled" (default for "") or "json".
func GrammarByName(name string) (Grammar, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "labeled", "label", "text":
		return LabeledGrammar{}, true
	case "json":
		return JSONGrammar{}, true
	default:
		return nil, false
	}
}
