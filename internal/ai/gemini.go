package ai

import (
	"context"
	"strings"

	"google.golang.org/genai"

	"github.com/thoreinstein/claude2gemini/internal/errors"
)

// GeminiConfig configures a GeminiClient.
type GeminiConfig struct {
	APIKey string
	Model  string

	// BaseURL overrides the API endpoint.
	BaseURL string
}

// GeminiClient is a Generator backed by the Gemini API. Replies are
// requested as JSON.
type GeminiClient struct {
	client *genai.Client
	model  string
}

// NewGeminiClient creates a GeminiClient.
func NewGeminiClient(ctx context.Context, cfg GeminiConfig) (*GeminiClient, error) {
	apiKey := strings.TrimSpace(cfg.APIKey)
	if apiKey == "" {
		return nil, ErrNoCredentials
	}
	model := strings.TrimSpace(cfg.Model)
	if model == "" {
		return nil, errors.New("gemini: model is required")
	}

	clientConfig := &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}
	if baseURL := strings.TrimSpace(cfg.BaseURL); baseURL != "" {
		clientConfig.HTTPOptions = genai.HTTPOptions{BaseURL: baseURL}
	}

	client, err := genai.NewClient(ctx, clientConfig)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Google GenAI client")
	}

	return &GeminiClient{client: client, model: model}, nil
}

// Generate implements Generator.
func (c *GeminiClient) Generate(ctx context.Context, prompt string) (string, error) {
	config := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
	}

	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), config)
	if err != nil {
		return "", errors.Wrap(err, "gemini generate content")
	}
	if resp == nil || len(resp.Candidates) == 0 {
		return "", errors.New("gemini: response has no candidates")
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil {
		return "", errors.New("gemini: candidate has no content")
	}

	var out strings.Builder
	for _, part := range candidate.Content.Parts {
		if part == nil || part.Thought {
			continue
		}
		out.WriteString(part.Text)
	}
	return out.String(), nil
}
