package judge

import (
	"encoding/json"
	"strings"
)

// ParseErrorReasoning marks a verdict whose JSON could not be recovered from
// the judge's reply. The row is kept; this string is its data-quality flag.
const ParseErrorReasoning = "JSON PARSE ERROR"

// Verdict is the judge's structured output. Every field is optional: a nil
// pointer means the judge omitted the key (or supplied something of the wrong
// shape). Score holds the raw token ("1", "-2", occasionally "1.5" or
// "Nondistinguishable") so downstream coercion sees the judge's exact words.
type Verdict struct {
	Score        *string
	Clues        *string
	Reasoning    *string
	DecisionType *string
}

// IsParseError reports whether this verdict is the parse-failure sentinel.
func (v Verdict) IsParseError() bool {
	return v.Score == nil && v.Clues == nil && v.DecisionType == nil &&
		v.Reasoning != nil && *v.Reasoning == ParseErrorReasoning
}

// ParseVerdict extracts a verdict from the judge's free-form reply. Judge
// models are not reliably constrained to pure JSON, so the candidate object
// is the greedy span from the first '{' to the last '}'. The function is
// total: any failure yields the sentinel verdict instead of an error, and it
// never panics.
func ParseVerdict(raw string) Verdict {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start < 0 || end < start {
		return parseErrorVerdict()
	}

	dec := json.NewDecoder(strings.NewReader(raw[start : end+1]))
	dec.UseNumber()
	var fields map[string]any
	if err := dec.Decode(&fields); err != nil {
		return parseErrorVerdict()
	}
	// The span must be a single object; trailing content means the greedy
	// slice caught more than one value and the parse is not trustworthy.
	if dec.More() {
		return parseErrorVerdict()
	}

	return Verdict{
		Score:        rawToken(fields, "score"),
		Clues:        joinedText(fields, "clues"),
		Reasoning:    stringField(fields, "reasoning"),
		DecisionType: stringField(fields, "decision type"),
	}
}

func parseErrorVerdict() Verdict {
	reasoning := ParseErrorReasoning
	return Verdict{Reasoning: &reasoning}
}

// rawToken extracts a field's textual form: numbers keep their literal
// rendering ("1", "-2", "1.5"), strings pass through unchanged.
func rawToken(fields map[string]any, key string) *string {
	switch v := fields[key].(type) {
	case json.Number:
		s := v.String()
		return &s
	case string:
		return &v
	default:
		return nil
	}
}

// stringField extracts a field when it is a string.
func stringField(fields map[string]any, key string) *string {
	if v, ok := fields[key].(string); ok {
		return &v
	}
	return nil
}

// joinedText extracts a field that may be a string or an array of values,
// flattening arrays into one "; "-separated line for the flat result table.
func joinedText(fields map[string]any, key string) *string {
	switch v := fields[key].(type) {
	case string:
		return &v
	case []any:
		parts := make([]string, 0, len(v))
		for _, item := range v {
			switch it := item.(type) {
			case string:
				parts = append(parts, it)
			case json.Number:
				parts = append(parts, it.String())
			}
		}
		if len(parts) == 0 {
			return nil
		}
		s := strings.Join(parts, "; ")
		return &s
	default:
		return nil
	}
}
