package classifier

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// RawField is one parsed pair before taxonomy resolution. Label holds either
// a field code (JSON responses) or a field name (freeform responses).
type RawField struct {
	Label      string
	Percentage float64
}

// ParseError signals that the response text matched no known shape. Retrying
// the same prompt is unlikely to change the format, so callers surface it as
// a terminal per-paper failure.
type ParseError struct {
	Raw string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("response matched no known format: %s", snippet(e.Raw, 120))
}

// wrapperKeys are the object keys searched when the model wraps its array in
// a surrounding object.
var wrapperKeys = []string{"fields", "data"}

var freeformPattern = regexp.MustCompile(`(?i)Field\s*\d+\s*[:=]\s*([\w\s\-\(\)&,]+?),?\s*Confidence\s*[:=]\s*(\d{1,3}(?:\.\d+)?)\s*%`)

// ParseResponse converts raw LLM output into field/percentage pairs, trying
// strategies in order: fenced or bare JSON array, JSON object with a known
// wrapper key, then the freeform "Field n: name, Confidence: p%" pattern.
// canonical supplies the field names freeform matching resolves against.
func ParseResponse(text string, canonical []string) ([]RawField, error) {
	trimmed := stripCodeFence(strings.TrimSpace(text))
	if trimmed == "" {
		return nil, &ParseError{Raw: text}
	}

	if fields, ok := parseJSON(trimmed); ok {
		return fields, nil
	}
	if fields := parseFreeform(trimmed, canonical); len(fields) > 0 {
		return fields, nil
	}
	return nil, &ParseError{Raw: text}
}

func stripCodeFence(s string) string {
	if !strings.HasPrefix(s, "```") {
		// The fence may follow prose; look for an embedded block.
		if start := strings.Index(s, "```"); start >= 0 {
			s = s[start:]
		} else {
			return s
		}
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	if end := strings.Index(s, "```"); end >= 0 {
		s = s[:end]
	}
	return strings.TrimSpace(s)
}

type jsonAssignment struct {
	Code       codeValue `json:"code"`
	Percentage float64   `json:"percentage"`
}

// codeValue accepts both numeric and string field codes.
type codeValue string

func (c *codeValue) UnmarshalJSON(b []byte) error {
	var n json.Number
	if err := json.Unmarshal(b, &n); err == nil {
		*c = codeValue(n.String())
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	*c = codeValue(strings.TrimSpace(s))
	return nil
}

func parseJSON(s string) ([]RawField, bool) {
	if strings.HasPrefix(s, "[") {
		var items []jsonAssignment
		if err := json.Unmarshal([]byte(s), &items); err != nil {
			return nil, false
		}
		return convertJSON(items), true
	}
	if strings.HasPrefix(s, "{") {
		var wrapper map[string]json.RawMessage
		if err := json.Unmarshal([]byte(s), &wrapper); err != nil {
			return nil, false
		}
		for _, key := range wrapperKeys {
			raw, ok := wrapper[key]
			if !ok {
				continue
			}
			var items []jsonAssignment
			if err := json.Unmarshal(raw, &items); err != nil {
				continue
			}
			return convertJSON(items), true
		}
	}
	return nil, false
}

func convertJSON(items []jsonAssignment) []RawField {
	out := make([]RawField, 0, len(items))
	for _, it := range items {
		if it.Code == "" {
			continue
		}
		out = append(out, RawField{Label: string(it.Code), Percentage: it.Percentage})
	}
	return out
}

// parseFreeform extracts "Field n: <name>, Confidence: <p>%" pairs in
// document order. Names are replaced by the first canonical name they
// contain (case-insensitive); unmatched names stay verbatim.
func parseFreeform(s string, canonical []string) []RawField {
	matches := freeformPattern.FindAllStringSubmatch(s, -1)
	out := make([]RawField, 0, len(matches))
	for _, m := range matches {
		name := strings.TrimSpace(m[1])
		lowered := strings.ToLower(name)
		for _, c := range canonical {
			if strings.Contains(lowered, strings.ToLower(c)) {
				name = c
				break
			}
		}
		conf, err := strconv.ParseFloat(m[2], 64)
		if err != nil {
			conf = 0
		}
		out = append(out, RawField{Label: name, Percentage: conf})
	}
	return out
}

func snippet(s string, max int) string {
	s = strings.TrimSpace(s)
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
