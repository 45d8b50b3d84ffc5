// Package sentiment classifies free text as Positive, Negative or Neutral by
// asking a conversational language model and parsing its free-form reply into
// a structured verdict: a category, a one-sentence reason and a score in
// [-1, 1].
//
// # Basic Usage
//
// An Interpreter needs a Model (the seeded chat session) and a Limiter that
// throttles outbound calls:
//
//	bucket, _ := ratelimiter.NewBucket(10, 2)
//	session, _ := gemini.NewSession(ctx, apiKey)
//
//	interp, err := sentiment.New(session, bucket,
//		sentiment.WithLogger(log),
//		sentiment.WithCache(1024),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	category, reason, score := interp.AnalyzeText(ctx, "Oh great, another Monday.", "", true)
//	fmt.Printf("%s (%.2f): %s\n", sentiment.TitleCase(category), score, reason)
//
// # Failure Model
//
// Analyze never returns an error. Every failure is folded into a Result with
// Category "Error" and score 0:
//
//   - the reply is missing the sentiment, reason or score field
//     (Reason is ReasonUnparseable)
//   - the model call or the limiter wait fails
//     (Reason is "An error occurred during analysis: <detail>")
//
// A score that does not parse, or parses outside [-1, 1], is replaced by 0
// while the category and reason are kept. Each of these paths logs a warning
// and is counted under its Outcome label when Metrics are enabled.
//
// # Reply Grammars
//
// LabeledGrammar (the default) reads
//
//	Sentiment: <category> - Reason: <text> - Score: <number>
//
// JSONGrammar reads {"sentiment": ..., "reason": ..., "score": ...} and pairs
// with the JSONInstruction seed. Backticks and surrounding whitespace are
// stripped before either grammar runs.
//
// # Prompts
//
// Seed returns the fixed instruction exchange every session starts with.
// BuildPrompt renders a Request as
//
//	Context: <context>
//	Analyze the following text for sentiment[, paying close attention to potential sarcasm]:
//	<text>
//
// # Batches
//
// AnalyzeBatch runs many texts with one context note and sarcasm flag and
// keeps input order. Summarize turns the items into a per-category
// distribution with one sample text per category.
//
// # Concurrency
//
// Interpreter is safe for concurrent use as long as its Model is. Sessions in
// this module replay the seed history on every call and hold no mutable state.
package sentiment
