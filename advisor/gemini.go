package advisor

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"google.golang.org/genai"
)

// DefaultModel is the Gemini model used when none is configured.
const DefaultModel = "gemini-2.5-flash"

// ErrMissingAPIKey is returned by NewGemini without an API key.
var ErrMissingAPIKey = errors.New("missing Gemini API key: set GEMINI_API_KEY or [advisor] api_key")

// Gemini is a Generator backed by the Gemini API.
type Gemini struct {
	client *genai.Client
	model  string
	log    zerolog.Logger
}

// Option configures a Gemini generator.
type Option func(*Gemini)

// WithModel sets the model to use.
func WithModel(model string) Option {
	return func(g *Gemini) {
		if model != "" {
			g.model = model
		}
	}
}

// WithLogger sets the logger.
func WithLogger(log zerolog.Logger) Option {
	return func(g *Gemini) { g.log = log }
}

// NewGemini creates a Gemini generator.
func NewGemini(ctx context.Context, apiKey string, opts ...Option) (*Gemini, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("cannot create Gemini client: %w", err)
	}

	g := &Gemini{client: client, model: DefaultModel, log: zerolog.Nop()}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// GenerateContent implements Generator.
func (g *Gemini) GenerateContent(ctx context.Context, prompt string) (string, error) {
	g.log.Debug().Str("model", g.model).Int("prompt_bytes", len(prompt)).Msg("generating content")

	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("cannot generate content: %w", err)
	}
	return extractText(resp)
}

// extractText concatenates the text parts of the first candidate.
func extractText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", ErrNoAnswer
	}
	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if part != nil {
			b.WriteString(part.Text)
		}
	}
	if b.Len() == 0 {
		return "", ErrNoAnswer
	}
	return b.String(), nil
}
