package openai

import "errors"

var (
	// ErrInvalidAPIKey indicates a missing API key.
	ErrInvalidAPIKey = errors.New("openai: invalid or missing API key")

	// ErrCompletionFailed wraps transport and API errors from chat completions.
	ErrCompletionFailed = errors.New("openai: chat completion failed")

	// ErrEmptyReply indicates a completion without choices or text.
	ErrEmptyReply = errors.New("openai: empty reply")
)
