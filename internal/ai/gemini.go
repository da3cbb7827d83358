package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/jfelix/resume-matcher/internal/types"
)

// GeminiConfig selects the Gemini models used for each operation.
type GeminiConfig struct {
	Model          string `json:"model,omitempty"`
	EmbeddingModel string `json:"embedding_model,omitempty"`
}

// DefaultGeminiConfig returns the standard model selection.
func DefaultGeminiConfig() GeminiConfig {
	return GeminiConfig{
		Model:          "gemini-1.5-flash",
		EmbeddingModel: "text-embedding-004",
	}
}

const entityPrompt = `Extract named entities from the resume text below.
Respond with a JSON object holding string arrays under the keys
"persons", "organizations", "locations" and "dates". Use empty arrays for
absent entity kinds. Do not invent values.

Resume text:
%s`

// GeminiClient implements Client on Google Gemini.
type GeminiClient struct {
	client *genai.Client
	cfg    GeminiConfig
}

// NewGeminiClient creates a Gemini-backed client.
func NewGeminiClient(ctx context.Context, apiKey string, cfg GeminiConfig) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if cfg.Model == "" {
		cfg.Model = DefaultGeminiConfig().Model
	}
	if cfg.EmbeddingModel == "" {
		cfg.EmbeddingModel = DefaultGeminiConfig().EmbeddingModel
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &GeminiClient{client: client, cfg: cfg}, nil
}

// Entities asks the model for a JSON entity listing and maps it onto the
// pipeline's entity collection.
func (c *GeminiClient) Entities(ctx context.Context, text string) (*types.ExtractedEntities, error) {
	model := c.client.GenerativeModel(c.cfg.Model)
	model.SetTemperature(0)
	model.ResponseMIMEType = "application/json"

	resp, err := model.GenerateContent(ctx, genai.Text(fmt.Sprintf(entityPrompt, text)))
	if err != nil {
		return nil, &ErrExternalSignal{Op: "entity", Err: err}
	}

	raw, err := responseText(resp)
	if err != nil {
		return nil, &ErrExternalSignal{Op: "entity", Err: err}
	}

	var payload struct {
		Persons       []string `json:"persons"`
		Organizations []string `json:"organizations"`
		Locations     []string `json:"locations"`
		Dates         []string `json:"dates"`
	}
	if err := json.Unmarshal([]byte(cleanJSONBlock(raw)), &payload); err != nil {
		return nil, &ErrExternalSignal{Op: "entity", Err: fmt.Errorf("malformed entity response: %w", err)}
	}

	return &types.ExtractedEntities{
		Persons:       payload.Persons,
		Organizations: payload.Organizations,
		Locations:     payload.Locations,
		Dates:         payload.Dates,
	}, nil
}

// Embedding returns the embedding vector for the text.
func (c *GeminiClient) Embedding(ctx context.Context, text string) ([]float32, error) {
	model := c.client.EmbeddingModel(c.cfg.EmbeddingModel)
	resp, err := model.EmbedContent(ctx, genai.Text(text))
	if err != nil {
		return nil, &ErrExternalSignal{Op: "embedding", Err: err}
	}
	if resp.Embedding == nil {
		return nil, &ErrExternalSignal{Op: "embedding", Err: fmt.Errorf("empty embedding response")}
	}
	return resp.Embedding.Values, nil
}

// Close releases the underlying API client.
func (c *GeminiClient) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

func responseText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("empty model response")
	}
	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	if sb.Len() == 0 {
		return "", fmt.Errorf("no text parts in model response")
	}
	return sb.String(), nil
}

// cleanJSONBlock strips markdown code fences some models wrap around JSON.
func cleanJSONBlock(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
