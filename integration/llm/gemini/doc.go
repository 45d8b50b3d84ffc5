// Package gemini implements sentiment.Model on Google's Gemini API using
// google.golang.org/genai.
//
// A Session is created once per process and passed to the interpreter:
//
//	session, err := gemini.NewSession(ctx, os.Getenv("GEMINI_API_KEY"),
//		gemini.WithLogger(log),
//	)
//	if err != nil {
//		return err
//	}
//	interp, err := sentiment.New(session, bucket)
//
// NewSession installs the two-turn seed history from sentiment.Seed. Each
// Send replays that history followed by the prompt through
// Models.GenerateContent with temperature 1, top-p 0.95, top-k 40, up to
// 8192 output tokens and a text/plain response. Replies from earlier calls are
// not added to the history.
package gemini
