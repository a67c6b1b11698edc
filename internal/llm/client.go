// Package llm answers free-form questions about the league by handing the
// relevant slice of analysis data to a generative model.
package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// Client is an abstraction over LLM providers.
type Client interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
	Close() error
}

// NewClient creates a client for the configured provider. Gemini is the
// only provider wired up today.
func NewClient(ctx context.Context, provider, model, apiKey string) (Client, error) {
	switch provider {
	case "", "gemini":
		return NewGeminiClient(ctx, model, apiKey)
	default:
		return nil, fmt.Errorf("unsupported llm provider: %s", provider)
	}
}

// GeminiClient implements Client for Google Gemini.
type GeminiClient struct {
	client *genai.Client
	model  string
}

func NewGeminiClient(ctx context.Context, model, apiKey string) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiClient{
		client: client,
		model:  model,
	}, nil
}

// GenerateContent sends the prompt and returns the model's text response.
// Transient failures are retried with exponential backoff.
func (c *GeminiClient) GenerateContent(ctx context.Context, prompt string) (string, error) {
	model := c.client.GenerativeModel(c.model)
	model.SetTemperature(0.2)

	var resp *genai.GenerateContentResponse
	operation := func() error {
		var err error
		resp, err = model.GenerateContent(ctx, genai.Text(prompt))
		if err != nil {
			return fmt.Errorf("failed to generate content: %w", err)
		}
		return nil
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 3), ctx)
	if err := backoff.Retry(operation, policy); err != nil {
		return "", err
	}

	return extractTextFromResponse(resp)
}

func (c *GeminiClient) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

func extractTextFromResponse(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("no candidates in response")
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", fmt.Errorf("no content in response")
	}

	var parts []string
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			parts = append(parts, string(text))
		}
	}

	if len(parts) == 0 {
		return "", fmt.Errorf("no text parts in response")
	}

	return strings.Join(parts, ""), nil
}
