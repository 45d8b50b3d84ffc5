package anthropic

import "errors"

var (
	// ErrInvalidAPIKey indicates a missing API key.
	ErrInvalidAPIKey = errors.New("anthropic: invalid or missing API key")

	// ErrMessageFailed wraps transport and API errors from the messages endpoint.
	ErrMessageFailed = errors.New("anthropic: message request failed")

	// ErrEmptyReply indicates a response without text content.
	ErrEmptyReply = errors.New("anthropic: empty reply")
)
