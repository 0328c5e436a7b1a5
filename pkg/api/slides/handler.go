// Package slides exposes the slide-data generation endpoint. The browser
// client calls it directly, so every response carries permissive CORS
// headers and failures come back as structured JSON error envelopes.
package slides

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"deckgen/pkg/core/deck"
	"deckgen/pkg/core/generate"
)

// Generator runs one slide-data generation.
type Generator interface {
	Generate(ctx context.Context, day int, rawAnswers string, overrides map[string]string) (*generate.Result, error)
}

type GenerateRequest struct {
	Day       int               `json:"day"`
	Answers   string            `json:"answers"`
	Overrides map[string]string `json:"overrides,omitempty"`
}

type errorBody struct {
	Error string `json:"error"`
	Raw   string `json:"raw,omitempty"`
}

// Handler holds dependencies for slide endpoints
type Handler struct {
	Svc Generator
}

func NewHandler(svc Generator) *Handler {
	return &Handler{Svc: svc}
}

func setCORS(w http.ResponseWriter) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Headers", "authorization, x-client-info, apikey, content-type")
	w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
}

// HandleGenerate serves POST /api/slides/generate.
func (h *Handler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	setCORS(w)

	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		return
	}
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed", "")
		return
	}

	var req GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", "")
		return
	}
	if req.Day == 0 || req.Answers == "" {
		writeError(w, http.StatusBadRequest, "Missing 'day' or 'answers' field", "")
		return
	}

	result, err := h.Svc.Generate(r.Context(), req.Day, req.Answers, req.Overrides)
	if err != nil {
		status, body := mapError(req.Day, err)
		writeError(w, status, body.Error, body.Raw)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// HandleMeta serves GET /api/slides/meta with the per-day deck layout.
func (h *Handler) HandleMeta(w http.ResponseWriter, r *http.Request) {
	setCORS(w)

	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(deck.Days())
}

// mapError translates the generation failure taxonomy onto HTTP statuses.
func mapError(day int, err error) (int, errorBody) {
	ge, ok := generate.AsError(err)
	if !ok {
		return http.StatusInternalServerError, errorBody{Error: "AI generation failed"}
	}

	switch ge.Kind {
	case generate.KindInvalidDay:
		return http.StatusBadRequest, errorBody{Error: fmt.Sprintf("Invalid day: %d. Must be 1, 2, or 3.", day)}
	case generate.KindRateLimited:
		return http.StatusTooManyRequests, errorBody{Error: ge.Message}
	case generate.KindQuotaExceeded:
		return http.StatusPaymentRequired, errorBody{Error: ge.Message}
	case generate.KindMalformedResponse:
		return http.StatusInternalServerError, errorBody{Error: ge.Message, Raw: ge.RawContent}
	case generate.KindEmptyResponse:
		return http.StatusInternalServerError, errorBody{Error: ge.Message}
	default:
		return http.StatusInternalServerError, errorBody{Error: "AI generation failed"}
	}
}

func writeError(w http.ResponseWriter, status int, msg, raw string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(errorBody{Error: msg, Raw: raw})
}
