package insights

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"google.golang.org/genai"

	domainErrors "github.com/polkiloo/logidash/internal/domain/errors"
)

const defaultModel = "gemini-1.5-flash"

// contentGenerator is the subset of *genai.Models used by the client.
type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// Options configures GeminiClient.
type Options struct {
	APIKey  string
	Model   string
	BaseURL string
	Timeout time.Duration
}

// GeminiClient generates text through the Gemini API.
type GeminiClient struct {
	models  contentGenerator
	model   string
	timeout time.Duration
	logger  *slog.Logger
}

// NewGeminiClient creates a client for the Gemini API backend.
func NewGeminiClient(ctx context.Context, opts Options, logger *slog.Logger) (*GeminiClient, error) {
	if opts.APIKey == "" {
		return nil, fmt.Errorf("gemini api key is required")
	}

	cfg := &genai.ClientConfig{
		APIKey:  opts.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if opts.BaseURL != "" {
		cfg.HTTPOptions = genai.HTTPOptions{BaseURL: opts.BaseURL}
	}

	client, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	return newGeminiClient(client.Models, opts, logger), nil
}

func newGeminiClient(models contentGenerator, opts Options, logger *slog.Logger) *GeminiClient {
	model := opts.Model
	if model == "" {
		model = defaultModel
	}
	return &GeminiClient{models: models, model: model, timeout: opts.Timeout, logger: logger}
}

// Generate sends prompt as a single user turn and returns the response text.
func (c *GeminiClient) Generate(ctx context.Context, prompt string) (string, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	start := time.Now()
	resp, err := c.models.GenerateContent(ctx, c.model, genai.Text(prompt), nil)
	if err != nil {
		c.logger.Error("text generation failed",
			slog.String("model", c.model),
			slog.Duration("latency", time.Since(start)),
			slog.String("error", err.Error()),
		)
		return "", fmt.Errorf("%w: generate content: %v", domainErrors.ErrUpstream, err)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", fmt.Errorf("%w: empty response from %s", domainErrors.ErrUpstream, c.model)
	}

	c.logger.Debug("text generated",
		slog.String("model", c.model),
		slog.Duration("latency", time.Since(start)),
		slog.Int("chars", len(text)),
	)
	return text, nil
}

// Disabled stands in for the client when no API key is configured.
type Disabled struct{}

// Generate always reports the generator as unavailable.
func (Disabled) Generate(context.Context, string) (string, error) {
	return "", fmt.Errorf("%w: text generation is not configured", domainErrors.ErrUnavailable)
}
