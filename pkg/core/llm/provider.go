package llm

import (
	"context"
	"fmt"
)

// Provider is the interface for all LLM providers.
type Provider interface {
	GenerateResponse(ctx context.Context, prompt string, systemPrompt string, options map[string]interface{}) (string, error)
	// AdaptInstructions transforms raw instructions into model-specific formats
	AdaptInstructions(rawInstructions string) string
}

// Message is a single chat-completion message.
type Message struct {
	Content string `json:"content"`
	Role    string `json:"role"`
}

// StatusError reports a non-2xx reply from an upstream completion API.
// Callers classify rate-limit (429) and quota (402) failures by Code.
type StatusError struct {
	Provider string
	Code     int
	Body     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s_API_ERROR: status=%d body=%s", e.Provider, e.Code, e.Body)
}
