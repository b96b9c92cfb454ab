package llm

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// GeminiOptions selects the backend: Vertex AI when Vertex is true
// (Project and Location), the Gemini API otherwise (APIKey).
type GeminiOptions struct {
	Vertex      bool
	APIKey      string
	Project     string
	Location    string
	Model       string
	Temperature float32

	// BaseURL overrides the service endpoint, e.g. for a proxy.
	BaseURL string
}

type GeminiProvider struct {
	client      *genai.Client
	modelName   string
	temperature float32
}

// NewGeminiProvider creates a GuidanceProvider backed by Gemini.
func NewGeminiProvider(ctx context.Context, opts GeminiOptions) (*GeminiProvider, error) {
	cc := &genai.ClientConfig{
		HTTPOptions: genai.HTTPOptions{BaseURL: opts.BaseURL},
	}
	if opts.Vertex {
		if opts.Project == "" || opts.Location == "" {
			return nil, fmt.Errorf("vertex backend requires project and location")
		}
		cc.Backend = genai.BackendVertexAI
		cc.Project = opts.Project
		cc.Location = opts.Location
	} else {
		if opts.APIKey == "" {
			return nil, fmt.Errorf("gemini backend requires an API key")
		}
		cc.Backend = genai.BackendGeminiAPI
		cc.APIKey = opts.APIKey
	}

	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("creating genai client: %w", err)
	}

	model := opts.Model
	if model == "" {
		model = "gemini-2.5-flash"
	}

	return &GeminiProvider{
		client:      client,
		modelName:   model,
		temperature: opts.Temperature,
	}, nil
}

// Generate implements domain.GuidanceProvider. It blocks until the model
// answers or ctx is done; it applies no timeout of its own.
func (g *GeminiProvider) Generate(ctx context.Context, prompt string) (string, error) {
	contents := []*genai.Content{
		genai.NewContentFromText(prompt, genai.RoleUser),
	}

	temp := g.temperature
	topP := float32(0.9)

	cfg := &genai.GenerateContentConfig{
		Temperature:     &temp,
		TopP:            &topP,
		MaxOutputTokens: int32(8192),
	}

	res, err := g.client.Models.GenerateContent(ctx, g.modelName, contents, cfg)
	if err != nil {
		return "", fmt.Errorf("gemini generate content: %w", err)
	}

	// only the text, never the raw structs
	text := res.Text()
	if text == "" {
		return "", fmt.Errorf("gemini returned empty text")
	}

	return text, nil
}
