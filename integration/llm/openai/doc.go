// Package openai implements sentiment.Model on OpenAI chat completions using
// github.com/openai/openai-go.
//
//	session, err := openai.NewSession(os.Getenv("OPENAI_API_KEY"),
//		openai.WithModel("gpt-4o-mini"),
//	)
//
// The sentiment instruction is sent as the system message and the seeded
// acknowledgement as an assistant message, then the prompt as the user turn.
// WithBaseURL accepts any OpenAI-compatible endpoint.
package openai
