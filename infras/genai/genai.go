package genai

//go:generate go run go.uber.org/mock/mockgen -source=./genai.go -destination=./mocks/genai_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"staywise/config"
	"staywise/infras/otel"
	"staywise/shared/constant"

	"github.com/rs/zerolog/log"
	googleGenAI "google.golang.org/genai"
)

var ErrNotConfigured = errors.New("text generation is not configured")

// Generator performs one prompt in, text out call against the hosted model.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type generatorImpl struct {
	client *googleGenAI.Client
	model  string
	otel   otel.Otel
}

// New builds the Gemini client. Without EXTERNAL_GENAI_API_KEY the generator
// stays up but every call fails with ErrNotConfigured.
func New(config *config.Config, otl otel.Otel) Generator {
	generator := &generatorImpl{
		model: config.External.GenAI.Model,
		otel:  otl,
	}

	if config.External.GenAI.APIKey == "" {
		log.Warn().Msg("No GenAI API key configured, recommendations will use the fallback reply")

		return generator
	}

	client, err := googleGenAI.NewClient(context.Background(), &googleGenAI.ClientConfig{
		APIKey:  config.External.GenAI.APIKey,
		Backend: googleGenAI.BackendGeminiAPI,
	})
	if err != nil {
		log.Error().Err(err).Msg("Failed to create GenAI client, recommendations will use the fallback reply")

		return generator
	}

	generator.client = client

	log.Info().Str("model", generator.model).Msg("GenAI client initialized")

	return generator
}

// Generate implements Generator.
func (g *generatorImpl) Generate(ctx context.Context, prompt string) (text string, err error) {
	ctx, scope := g.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".genai.Generate")
	defer scope.End()

	scope.SetAttribute("genai.model", g.model)

	if g.client == nil {
		return "", ErrNotConfigured
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, googleGenAI.Text(prompt), nil)
	if err != nil {
		scope.TraceError(err)

		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	return resp.Text(), nil
}
