// Package generator implements scenario generation against the Gemini API.
//
// A single structured-output call turns the normalized document text into a
// batch of BDD scenarios. The response is constrained by a JSON schema and
// validated strictly before anything reaches the caller; there are no retries
// and no partial results.
package generator

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/genai"

	"github.com/doeshing/bddgen/internal/domain"
	"github.com/doeshing/bddgen/internal/ports"
)

const systemInstruction = "You are an expert QA Engineer specializing in Behavior-Driven Development (BDD). " +
	"Analyze the provided design document and generate comprehensive BDD test scenarios using Gherkin syntax " +
	"(Given, When, Then, And). Cover positive paths, negative paths, and edge cases. " +
	"Respond only with JSON matching the requested schema."

// responseSchema constrains the model to an array of title/steps records.
var responseSchema = &genai.Schema{
	Type: genai.TypeArray,
	Items: &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"title": {
				Type:        genai.TypeString,
				Description: "Scenario title, e.g. 'Scenario: Successful user login'",
			},
			"steps": {
				Type:        genai.TypeArray,
				Items:       &genai.Schema{Type: genai.TypeString},
				Description: "Ordered Gherkin steps (Given/When/Then/And lines)",
			},
		},
		Required: []string{"title", "steps"},
	},
}

// GeminiGenerator calls the Gemini API with structured output enabled.
type GeminiGenerator struct {
	client  *genai.Client
	model   string
	timeout time.Duration
	logger  ports.Logger
}

var _ ports.Generator = (*GeminiGenerator)(nil)

// NewGeminiGenerator creates a generator bound to a model id. The API key is
// required; a missing key is a configuration error, not a service failure.
func NewGeminiGenerator(ctx context.Context, apiKey, model string, timeout time.Duration, logger ports.Logger) (*GeminiGenerator, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}
	if model == "" {
		model = domain.DefaultModelID
	}
	if timeout <= 0 {
		timeout = domain.DefaultRequestTimeout
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &GeminiGenerator{
		client:  client,
		model:   model,
		timeout: timeout,
		logger:  logger,
	}, nil
}

// Generate performs one blocking model call and returns the validated batch.
func (g *GeminiGenerator) Generate(ctx context.Context, documentText string) (domain.GenerationResult, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	prompt := "Design document:\n\n" + documentText

	g.logger.Debug("calling generation model", map[string]interface{}{
		"model":       g.model,
		"doc_length":  len(documentText),
		"timeout_sec": int(g.timeout.Seconds()),
	})

	resp, err := g.client.Models.GenerateContent(ctx,
		g.model,
		genai.Text(prompt),
		&genai.GenerateContentConfig{
			SystemInstruction: genai.NewContentFromText(systemInstruction, genai.RoleUser),
			Temperature:       genai.Ptr[float32](domain.GenerationTemperature),
			ResponseMIMEType:  "application/json",
			ResponseSchema:    responseSchema,
		},
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrServiceUnavailable, err)
	}

	raw := resp.Text()
	if raw == "" {
		return nil, domain.ErrEmptyResponse
	}

	result, err := parseScenarios(raw)
	if err != nil {
		g.logger.Warn("model response rejected", map[string]interface{}{
			"reason": err.Error(),
		})
		return nil, err
	}

	g.logger.Debug("generation complete", map[string]interface{}{
		"scenarios": len(result),
	})
	return result, nil
}
