package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	domainErrors "github.com/polkiloo/logidash/internal/domain/errors"
)

// InsightsPrompt precedes the serialized dashboard data in every request.
const InsightsPrompt = "Analyze this logistics data and provide 3 key insights in a concise bullet-point format:\n"

// TextGenerator produces free text for a prompt.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// InsightsUseCase relays dashboard data to a text generator.
type InsightsUseCase struct {
	generator TextGenerator
}

// NewInsightsUseCase constructs InsightsUseCase.
func NewInsightsUseCase(generator TextGenerator) *InsightsUseCase {
	return &InsightsUseCase{generator: generator}
}

// BuildInsightsPrompt appends the compact JSON form of data to the fixed prompt.
func BuildInsightsPrompt(data json.RawMessage) (string, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return "", fmt.Errorf("%w: data is required", domainErrors.ErrInvalidInput)
	}

	var buf bytes.Buffer
	if err := json.Compact(&buf, trimmed); err != nil {
		return "", fmt.Errorf("%w: data is not valid JSON", domainErrors.ErrInvalidInput)
	}
	return InsightsPrompt + buf.String(), nil
}

// Generate returns the generated insight text. Generator failures are
// reported as ErrUpstream unless the generator is not configured.
func (u *InsightsUseCase) Generate(ctx context.Context, data json.RawMessage) (string, error) {
	prompt, err := BuildInsightsPrompt(data)
	if err != nil {
		return "", err
	}

	text, err := u.generator.Generate(ctx, prompt)
	if err != nil {
		if errors.Is(err, domainErrors.ErrUnavailable) || errors.Is(err, domainErrors.ErrUpstream) {
			return "", err
		}
		return "", fmt.Errorf("%w: %v", domainErrors.ErrUpstream, err)
	}
	return text, nil
}
