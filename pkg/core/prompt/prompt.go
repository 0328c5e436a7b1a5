// Package prompt holds the schema templates that drive slide generation.
// Each program day has exactly one template embedding the JSON shape the
// model must emit plus its calculation and formatting rules. Templates can
// be overridden from JSON files at runtime without code changes.
package prompt

import "encoding/json"

// PromptTemplate represents a reusable prompt with metadata
type PromptTemplate struct {
	ID               string           `json:"id"`                   // Unique identifier (e.g., "deck.day1")
	Name             string           `json:"name"`                 // Human-readable name
	Category         string           `json:"category"`             // Category (deck, assistant, etc.)
	Day              int              `json:"day"`                  // Program day this template serves (0 if not day-bound)
	Description      string           `json:"description"`          // Description of prompt purpose
	SystemPrompt     string           `json:"system_prompt"`        // The system prompt content
	UserPromptTmpl   string           `json:"user_prompt_template"` // Go template for user prompt
	ResponseSchemaID string           `json:"response_schema_ref"`  // Reference to response schema
	Variables        []PromptVariable `json:"variables"`            // Variables used in template
	Version          string           `json:"version"`              // Version for tracking changes
}

// PromptVariable defines a variable used in a prompt template
type PromptVariable struct {
	Name        string `json:"name"`        // Variable name (e.g., "Answers")
	Type        string `json:"type"`        // Type: string, int, float, array, object
	Description string `json:"description"` // What this variable represents
	Required    bool   `json:"required"`    // Whether this variable is required
	Default     string `json:"default"`     // Default value if not provided
}

// ResponseSchema represents the expected JSON response structure
type ResponseSchema struct {
	ID          string `json:"id"`          // Schema identifier
	Name        string `json:"name"`        // Human-readable name
	Description string `json:"description"` // Description of the schema
	JSONSchema  string `json:"json_schema"` // JSON Schema definition as string
}

// RequiredKeys returns the top-level property names the schema declares as
// required, nil when it declares none or does not parse.
func (s *ResponseSchema) RequiredKeys() []string {
	var doc struct {
		Required []string `json:"required"`
	}
	if err := json.Unmarshal([]byte(s.JSONSchema), &doc); err != nil {
		return nil
	}
	return doc.Required
}

// Missing reports which required top-level keys are absent from data.
// Decoding stays fail-safe regardless; callers use this for diagnostics.
func (s *ResponseSchema) Missing(data map[string]interface{}) []string {
	var missing []string
	for _, key := range s.RequiredKeys() {
		if _, ok := data[key]; !ok {
			missing = append(missing, key)
		}
	}
	return missing
}

// PromptExecutionContext holds runtime values for prompt execution
type PromptExecutionContext struct {
	Variables map[string]interface{} // Key-value pairs for template substitution
}

// NewContext creates a new execution context
func NewContext() *PromptExecutionContext {
	return &PromptExecutionContext{
		Variables: make(map[string]interface{}),
	}
}

// Set adds a variable to the context
func (c *PromptExecutionContext) Set(key string, value interface{}) *PromptExecutionContext {
	c.Variables[key] = value
	return c
}
