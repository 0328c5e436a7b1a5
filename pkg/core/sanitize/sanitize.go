// Package sanitize turns raw LLM completion text into trustworthy slide
// data. The model is instructed to return bare JSON without em/en dashes,
// but cannot be relied on to comply, so the same cleanup runs at generation
// time and again before display.
package sanitize

import (
	"encoding/json"
	"fmt"
	"strings"

	jsonrepair "github.com/RealAlexandreAI/json-repair"
	hjson "github.com/hjson/hjson-go/v4"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// StripFences removes markdown code-fence wrapping around a JSON payload.
// Handles both a fully fenced reply and a payload embedded in conversational
// filler ("Sure! ```json ... ```").
func StripFences(input string) string {
	cleaned := strings.TrimSpace(input)
	if !strings.Contains(cleaned, "```") {
		return cleaned
	}

	// Fast path: the whole reply is one fenced block.
	if strings.HasPrefix(cleaned, "```") && strings.HasSuffix(cleaned, "```") {
		body := strings.TrimSuffix(cleaned, "```")
		if idx := strings.IndexByte(body, '\n'); idx >= 0 {
			return strings.TrimSpace(body[idx+1:])
		}
		// Single-line fence like ```{"a":1}```
		body = strings.TrimPrefix(body, "```json")
		body = strings.TrimPrefix(body, "```")
		return strings.TrimSpace(body)
	}

	// The fence is buried in prose; let the markdown parser find it.
	if block, ok := extractFencedBlock([]byte(cleaned)); ok {
		return strings.TrimSpace(block)
	}

	// Last resort: drop the markers wherever they are.
	cleaned = strings.ReplaceAll(cleaned, "```json", "")
	cleaned = strings.ReplaceAll(cleaned, "```", "")
	return strings.TrimSpace(cleaned)
}

// extractFencedBlock returns the contents of the first fenced code block in
// the markdown source.
func extractFencedBlock(src []byte) (string, bool) {
	doc := goldmark.DefaultParser().Parse(text.NewReader(src))

	var out string
	var found bool
	ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering || found {
			return ast.WalkContinue, nil
		}
		if fc, ok := n.(*ast.FencedCodeBlock); ok {
			var b strings.Builder
			lines := fc.Lines()
			for i := 0; i < lines.Len(); i++ {
				seg := lines.At(i)
				b.Write(seg.Value(src))
			}
			// A ``` marker mid-paragraph opens an empty block; keep
			// looking for one that actually holds the payload.
			if strings.TrimSpace(b.String()) == "" {
				return ast.WalkContinue, nil
			}
			out = b.String()
			found = true
			return ast.WalkStop, nil
		}
		return ast.WalkContinue, nil
	})
	return out, found
}

// NormalizeString replaces em dashes (U+2014) and en dashes (U+2013) with a
// plain hyphen.
func NormalizeString(s string) string {
	s = strings.ReplaceAll(s, "—", "-")
	return strings.ReplaceAll(s, "–", "-")
}

// Normalize walks a decoded JSON value and dash-normalizes every string
// leaf. The structure is preserved exactly: key sets, array order and
// length, and non-string leaves never change. Idempotent.
func Normalize(v interface{}) interface{} {
	switch val := v.(type) {
	case string:
		return NormalizeString(val)
	case []interface{}:
		out := make([]interface{}, len(val))
		for i, item := range val {
			out[i] = Normalize(item)
		}
		return out
	case map[string]interface{}:
		out := make(map[string]interface{}, len(val))
		for k, item := range val {
			out[k] = Normalize(item)
		}
		return out
	default:
		return v
	}
}

// ParseObject extracts a JSON object from raw LLM output. After fence
// stripping it tries strict JSON, then Hjson, then json-repair. The top
// level must decode to an object: repair happily turns prose into a bare
// JSON string, which is not slide data.
func ParseObject(raw string) (map[string]interface{}, error) {
	cleaned := StripFences(raw)
	// Repair turns an empty string into an empty object; an empty reply
	// must fail loudly instead.
	if cleaned == "" {
		return nil, fmt.Errorf("PARSE_OBJECT_FAILED: empty response")
	}

	if obj, ok := tryJSONObject(cleaned); ok {
		return obj, nil
	}

	// Hjson tolerates unquoted keys, comments and newline-separated
	// members while keeping the document structure. It runs before
	// repair, which crams hjson-style lines into a single string value.
	var lenient interface{}
	if err := hjson.Unmarshal([]byte(cleaned), &lenient); err == nil {
		if jsonBytes, err := json.Marshal(lenient); err == nil {
			if obj, ok := tryJSONObject(string(jsonBytes)); ok {
				return obj, nil
			}
		}
	}

	if repaired, err := jsonrepair.RepairJSON(cleaned); err == nil {
		if obj, ok := tryJSONObject(repaired); ok {
			return obj, nil
		}
	}

	return nil, fmt.Errorf("PARSE_OBJECT_FAILED: no JSON object found in response")
}

func tryJSONObject(s string) (map[string]interface{}, bool) {
	var v interface{}
	if err := json.Unmarshal([]byte(s), &v); err != nil {
		return nil, false
	}
	obj, ok := v.(map[string]interface{})
	return obj, ok
}
