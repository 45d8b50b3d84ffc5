package gemini

import "errors"

var (
	// ErrInvalidAPIKey indicates a missing API key.
	ErrInvalidAPIKey = errors.New("gemini: invalid or missing API key")

	// ErrClientCreationFailed indicates the genai client could not be built.
	ErrClientCreationFailed = errors.New("gemini: failed to create client")

	// ErrGenerationFailed wraps transport and API errors from GenerateContent.
	ErrGenerationFailed = errors.New("gemini: content generation failed")

	// ErrEmptyReply indicates the model answered with no text.
	ErrEmptyReply = errors.New("gemini: empty reply")
)
