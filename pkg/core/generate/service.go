package generate

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"deckgen/pkg/core/llm"
	"deckgen/pkg/core/prompt"
	"deckgen/pkg/core/sanitize"
)

// stageName keys the provider routing for deck generation calls.
const stageName = "deck"

// Completer executes one prompt against a configured provider.
type Completer interface {
	ExecutePrompt(ctx context.Context, stage, rawPrompt, rawSystemPrompt string, options map[string]interface{}) (string, error)
}

// Result is a successful generation: the day plus the sanitized slide data
// object, passed through to the caller without reshaping.
type Result struct {
	Day  int                    `json:"day"`
	Data map[string]interface{} `json:"data"`
}

// Service turns a day number and raw client answers into slide data.
type Service struct {
	completer Completer
	options   map[string]interface{}
}

func NewService(completer Completer, options map[string]interface{}) *Service {
	return &Service{completer: completer, options: options}
}

// Generate runs one generation call. Overrides, when present, take
// precedence over conflicting values in the raw answers. Every failure is
// returned as a classified *Error; an invalid day short-circuits before any
// upstream request is made.
func (s *Service) Generate(ctx context.Context, day int, rawAnswers string, overrides map[string]string) (*Result, error) {
	systemPrompt, userMessage, err := prompt.BuildPrompt(day, rawAnswers, overrides)
	if err != nil {
		return nil, &Error{Kind: KindInvalidDay, Message: err.Error()}
	}

	text, err := s.completer.ExecutePrompt(ctx, stageName, userMessage, systemPrompt, s.options)
	if err != nil {
		return nil, classify(err)
	}

	if strings.TrimSpace(text) == "" {
		return nil, &Error{Kind: KindEmptyResponse, Message: "No content returned from AI"}
	}

	obj, err := sanitize.ParseObject(text)
	if err != nil {
		return nil, &Error{
			Kind:       KindMalformedResponse,
			Message:    "Failed to parse AI response",
			RawContent: text,
		}
	}

	data := sanitize.Normalize(obj).(map[string]interface{})

	// Decoding downstream is fail-safe, so missing fields only get logged.
	if schema, schemaErr := prompt.Get().GetSchema(fmt.Sprintf("day%d", day)); schemaErr == nil {
		if missing := schema.Missing(data); len(missing) > 0 {
			fmt.Printf("[GENERATE] day %d response missing required fields: %v\n", day, missing)
		}
	}

	return &Result{Day: day, Data: data}, nil
}

// classify maps an upstream transport error onto the failure taxonomy.
// Rate-limit and quota statuses are distinguished so clients can react
// differently; everything else is a generic upstream failure.
func classify(err error) *Error {
	var statusErr *llm.StatusError
	if errors.As(err, &statusErr) {
		switch statusErr.Code {
		case http.StatusTooManyRequests:
			return &Error{Kind: KindRateLimited, Message: "Rate limit exceeded. Please try again in a moment."}
		case http.StatusPaymentRequired:
			return &Error{Kind: KindQuotaExceeded, Message: "AI usage limit reached. Please add credits."}
		}
	}
	return &Error{Kind: KindUpstreamFailure, Message: err.Error()}
}
