package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/dmitrymomot/sentiment/integration/llm/anthropic"
	"github.com/dmitrymomot/sentiment/integration/llm/gemini"
	"github.com/dmitrymomot/sentiment/integration/llm/openai"
	"github.com/dmitrymomot/sentiment/pkg/sentiment"
)

var (
	errUnknownProvider = errors.New("unknown provider")
	errUnknownGrammar  = errors.New("unknown reply grammar")
)

// newModel builds the chat session for cfg.Provider. The JSON grammar gets
// the structured-output instruction appended to the seed.
func newModel(ctx context.Context, cfg Config, log *slog.Logger) (sentiment.Model, error) {
	instruction := sentiment.SystemInstruction
	if strings.EqualFold(strings.TrimSpace(cfg.Grammar), "json") {
		instruction += sentiment.JSONInstruction
	}

	switch strings.ToLower(strings.TrimSpace(cfg.Provider)) {
	case "", "gemini", "google":
		return gemini.NewSession(ctx, cfg.GeminiAPIKey,
			gemini.WithModel(cfg.Model),
			gemini.WithBaseURL(cfg.BaseURL),
			gemini.WithInstruction(instruction),
			gemini.WithLogger(log),
		)
	case "openai":
		return openai.NewSession(cfg.OpenAIAPIKey,
			openai.WithModel(cfg.Model),
			openai.WithBaseURL(cfg.BaseURL),
			openai.WithInstruction(instruction),
			openai.WithLogger(log),
		)
	case "anthropic", "claude":
		return anthropic.NewSession(cfg.AnthropicAPIKey,
			anthropic.WithModel(cfg.Model),
			anthropic.WithBaseURL(cfg.BaseURL),
			anthropic.WithInstruction(instruction),
			anthropic.WithLogger(log),
		)
	default:
		return nil, fmt.Errorf("%w: %q", errUnknownProvider, cfg.Provider)
	}
}

func newGrammar(name string) (sentiment.Grammar, error) {
	g, ok := sentiment.GrammarByName(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", errUnknownGrammar, name)
	}
	return g, nil
}
