package gemini

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"google.golang.org/genai"

	"github.com/dmitrymomot/sentiment/core/logger"
	"github.com/dmitrymomot/sentiment/pkg/sentiment"
)

// DefaultModel is the Gemini model used when WithModel is not given.
const DefaultModel = "gemini-2.0-flash-exp"

// Generation defaults.
const (
	defaultTemperature     float32 = 1
	defaultTopP            float32 = 0.95
	defaultTopK            float32 = 40
	defaultMaxOutputTokens int32   = 8192
	defaultMIMEType                = "text/plain"
)

// Session is a Gemini chat seeded once with the sentiment instruction.
// The history is never mutated after NewSession, and every Send replays it
// followed by the prompt, so a Session is safe for concurrent use.
type Session struct {
	client  *genai.Client
	model   string
	history []*genai.Content
	config  *genai.GenerateContentConfig
	logger  *slog.Logger

	baseURL     string
	httpClient  *http.Client
	instruction string
	temperature float32
	topP        float32
	topK        float32
	maxTokens   int32
}

var _ sentiment.Model = (*Session)(nil)

// Option configures a Session.
type Option func(*Session)

// WithModel sets the model name.
func WithModel(model string) Option {
	return func(s *Session) {
		if model != "" {
			s.model = model
		}
	}
}

// WithTemperature sets the sampling temperature.
func WithTemperature(t float32) Option {
	return func(s *Session) {
		s.temperature = t
	}
}

// WithTopP sets nucleus sampling.
func WithTopP(p float32) Option {
	return func(s *Session) {
		s.topP = p
	}
}

// WithTopK sets top-k sampling.
func WithTopK(k float32) Option {
	return func(s *Session) {
		s.topK = k
	}
}

// WithMaxOutputTokens caps the reply length.
func WithMaxOutputTokens(n int32) Option {
	return func(s *Session) {
		if n > 0 {
			s.maxTokens = n
		}
	}
}

// WithBaseURL points the client at a different endpoint.
func WithBaseURL(url string) Option {
	return func(s *Session) {
		s.baseURL = url
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(s *Session) {
		if c != nil {
			s.httpClient = c
		}
	}
}

// WithInstruction replaces the seeded instruction, e.g. with
// sentiment.SystemInstruction + sentiment.JSONInstruction.
func WithInstruction(instruction string) Option {
	return func(s *Session) {
		if instruction != "" {
			s.instruction = instruction
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewSession creates a Gemini API session and installs the seed history.
func NewSession(ctx context.Context, apiKey string, opts ...Option) (*Session, error) {
	if apiKey == "" {
		return nil, ErrInvalidAPIKey
	}

	s := &Session{
		model:       DefaultModel,
		logger:      logger.NewNop(),
		instruction: sentiment.SystemInstruction,
		temperature: defaultTemperature,
		topP:        defaultTopP,
		topK:        defaultTopK,
		maxTokens:   defaultMaxOutputTokens,
	}
	for _, opt := range opts {
		opt(s)
	}

	cfg := &genai.ClientConfig{
		APIKey:     apiKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: s.httpClient,
	}
	if s.baseURL != "" {
		cfg.HTTPOptions = genai.HTTPOptions{BaseURL: s.baseURL}
	}

	client, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrClientCreationFailed, err)
	}
	s.client = client

	for _, turn := range sentiment.SeedWith(s.instruction) {
		role := genai.Role(genai.RoleUser)
		if turn.Role == sentiment.RoleModel {
			role = genai.RoleModel
		}
		s.history = append(s.history, genai.NewContentFromText(turn.Text, role))
	}

	s.config = &genai.GenerateContentConfig{
		Temperature:      genai.Ptr(s.temperature),
		TopP:             genai.Ptr(s.topP),
		TopK:             genai.Ptr(s.topK),
		MaxOutputTokens:  s.maxTokens,
		ResponseMIMEType: defaultMIMEType,
	}

	return s, nil
}

// Model returns the model name.
func (s *Session) Model() string {
	return s.model
}

// Send asks the model to answer prompt in the context of the seed history.
func (s *Session) Send(ctx context.Context, prompt string) (string, error) {
	contents := make([]*genai.Content, 0, len(s.history)+1)
	contents = append(contents, s.history...)
	contents = append(contents, genai.NewContentFromText(prompt, genai.RoleUser))

	resp, err := s.client.Models.GenerateContent(ctx, s.model, contents, s.config)
	if err != nil {
		s.logger.ErrorContext(ctx, "gemini request failed",
			logger.Component("gemini"),
			logger.Provider("gemini"),
			logger.Model(s.model),
			logger.AnalysisID(sentiment.AnalysisIDFromContext(ctx)),
			logger.Error(err),
		)
		return "", fmt.Errorf("%w: %w", ErrGenerationFailed, err)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", ErrEmptyReply
	}

	s.logger.DebugContext(ctx, "gemini reply received",
		logger.Provider("gemini"),
		logger.Model(s.model),
		logger.AnalysisID(sentiment.AnalysisIDFromContext(ctx)),
		logger.Reply(text, 200),
	)

	return text, nil
}
