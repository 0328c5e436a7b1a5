package prompt

import (
	"fmt"
	"sort"
	"strings"
)

// InvalidDayError reports a generation request for a day with no registered
// template. No upstream request is made in this case.
type InvalidDayError struct {
	Day int
}

func (e *InvalidDayError) Error() string {
	return fmt.Sprintf("invalid day: %d. Must be 1, 2, or 3.", e.Day)
}

// BuildPrompt assembles the system instruction and user message for one
// generation call. Pure: identical inputs always yield identical strings.
//
// Overrides are user-edited field values supplied on a regenerate. They are
// layered onto the original answers as explicit instructions; precedence is
// a prompt-level contract with the model, not enforced mechanically here.
func BuildPrompt(day int, rawAnswers string, overrides map[string]string) (systemInstruction string, userMessage string, err error) {
	pt, lookupErr := Get().GetByDay(day)
	if lookupErr != nil {
		return "", "", &InvalidDayError{Day: day}
	}

	ctx := NewContext().
		Set("Day", day).
		Set("Answers", strings.TrimSpace(rawAnswers))

	userMessage, err = RenderUserPrompt(pt, ctx)
	if err != nil {
		return "", "", fmt.Errorf("failed to render user prompt: %w", err)
	}

	if len(overrides) > 0 {
		keys := make([]string, 0, len(overrides))
		for k := range overrides {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		var b strings.Builder
		b.WriteString(userMessage)
		b.WriteString("\n\nUse these edited values exactly as provided. They override anything in the answers above:\n")
		for _, k := range keys {
			fmt.Fprintf(&b, "- %s: %s\n", k, overrides[k])
		}
		userMessage = b.String()
	}

	return pt.SystemPrompt, userMessage, nil
}
