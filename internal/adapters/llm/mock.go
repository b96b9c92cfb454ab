package llm

import (
	"context"
	"fmt"
)

// MockProvider answers without calling any service. Useful for local mode.
type MockProvider struct{}

func NewMockProvider() *MockProvider {
	return &MockProvider{}
}

func (m *MockProvider) Generate(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return fmt.Sprintf("I hear you, traveler. Breathe, and take one small step today. (%d characters considered)", len(prompt)), nil
}
