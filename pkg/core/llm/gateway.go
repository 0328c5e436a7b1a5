package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
)

const (
	defaultGatewayURL   = "https://ai.gateway.lovable.dev/v1/chat/completions"
	defaultGatewayModel = "google/gemini-3-flash-preview"
)

// GatewayProvider calls an OpenAI-compatible chat-completions endpoint.
// It is the default provider for slide generation; BaseURL and Model are
// overridable for tests and self-hosted gateways.
type GatewayProvider struct {
	BaseURL string
	Model   string
}

var _ Provider = (*GatewayProvider)(nil)

type gatewayRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	Stream      bool      `json:"stream"`
	Temperature float64   `json:"temperature"`
	MaxTokens   int       `json:"max_tokens,omitempty"`
}

type gatewayResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

func (p *GatewayProvider) GenerateResponse(ctx context.Context, prompt string, systemPrompt string, options map[string]interface{}) (string, error) {
	apiKey := os.Getenv("AI_GATEWAY_API_KEY")
	if apiKey == "" {
		apiKey = os.Getenv("LOVABLE_API_KEY")
	}
	if val, ok := options["api_key"].(string); ok && val != "" {
		apiKey = val
	}
	if apiKey == "" {
		return "", fmt.Errorf("GATEWAY_API_KEY_MISSING: Please set AI_GATEWAY_API_KEY or LOVABLE_API_KEY")
	}

	url := p.BaseURL
	if url == "" {
		url = os.Getenv("AI_GATEWAY_URL")
	}
	if url == "" {
		url = defaultGatewayURL
	}

	model := p.Model
	if val, ok := options["model"].(string); ok && val != "" {
		model = val
	}
	if model == "" {
		model = defaultGatewayModel
	}

	reqBody := gatewayRequest{
		Model: model,
		Messages: []Message{
			{Content: systemPrompt, Role: "system"},
			{Content: prompt, Role: "user"},
		},
		Stream:      false,
		Temperature: 1.0,
	}

	jsonBytes, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("GATEWAY_MARSHAL_ERROR: %v", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(jsonBytes))
	if err != nil {
		return "", fmt.Errorf("GATEWAY_REQ_CREATE_ERROR: %v", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+apiKey)

	client := &http.Client{}
	res, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("GATEWAY_API_CALL_ERROR: %v", err)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return "", fmt.Errorf("GATEWAY_READ_BODY_ERROR: %v", err)
	}

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return "", &StatusError{Provider: "GATEWAY", Code: res.StatusCode, Body: string(body)}
	}

	var response gatewayResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return "", fmt.Errorf("GATEWAY_UNMARSHAL_ERROR: %v", err)
	}

	// An empty completion is not a transport failure; the caller decides
	// how to surface it.
	if len(response.Choices) == 0 {
		return "", nil
	}
	return response.Choices[0].Message.Content, nil
}

func (p *GatewayProvider) AdaptInstructions(raw string) string {
	return raw
}
