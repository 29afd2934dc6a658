package gemini

import (
	"encoding/json"
	"errors"
	"strings"
)

// Extraction failure taxonomy. The model wraps its JSON in prose more often
// than not; callers get either a fully parsed value or one of these, never a
// partial result.
var (
	// ErrNoJSON means no well-formed JSON value of the expected shape was
	// found anywhere in the response.
	ErrNoJSON = errors.New("no JSON payload found in model response")

	// ErrBadShape means a JSON value was found but violates the expected
	// schema (missing field, wrong type).
	ErrBadShape = errors.New("model response JSON has unexpected shape")
)

// ExtractObject returns the first well-formed brace-delimited JSON object
// found anywhere in the response text.
func ExtractObject(response string) (string, error) {
	return extractBalanced(stripFences(response), '{', '}')
}

// ExtractArray returns the first well-formed bracket-delimited JSON array
// found anywhere in the response text.
func ExtractArray(response string) (string, error) {
	return extractBalanced(stripFences(response), '[', ']')
}

// stripFences drops markdown code fences the model likes to wrap JSON in.
func stripFences(s string) string {
	s = strings.ReplaceAll(s, "```json", "")
	s = strings.ReplaceAll(s, "```", "")
	return strings.TrimSpace(s)
}

func extractBalanced(s string, open, close byte) (string, error) {
	for start := 0; start < len(s); {
		i := strings.IndexByte(s[start:], open)
		if i < 0 {
			break
		}
		i += start

		if candidate, ok := scanBalanced(s[i:], open, close); ok {
			return candidate, nil
		}
		start = i + 1
	}
	return "", ErrNoJSON
}

// scanBalanced walks from an opening delimiter to its matching close,
// ignoring delimiters inside string literals, and checks that the spanned
// text is valid JSON.
func scanBalanced(s string, open, close byte) (string, bool) {
	depth := 0
	inString := false
	escaped := false

	for j := 0; j < len(s); j++ {
		c := s[j]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}

		switch c {
		case '"':
			inString = true
		case open:
			depth++
		case close:
			depth--
			if depth == 0 {
				candidate := s[:j+1]
				return candidate, json.Valid([]byte(candidate))
			}
		}
	}
	return "", false
}
