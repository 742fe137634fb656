// Package extract recovers a JSON object embedded in the free-form text a
// completion service returns. Replies routinely wrap the payload in prose or
// fenced code blocks; extraction must tolerate both.
package extract

import (
	"encoding/json"
	"fmt"
	"strings"
)

// MalformedResponseError reports a reply from which no well-formed payload
// could be recovered. It aborts the run; there is no retry.
type MalformedResponseError struct {
	Reason string
	Err    error
}

func (e *MalformedResponseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("malformed enrichment response: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("malformed enrichment response: %s", e.Reason)
}

func (e *MalformedResponseError) Unwrap() error { return e.Err }

// Extract locates the first JSON object in text and parses it. The primary
// scanner tracks brace depth and string-literal state, so braces inside
// quoted values do not terminate the object early. If no balanced object is
// found, the legacy first-'{' / last-'}' slice is tried before giving up.
func Extract(text string) (map[string]any, error) {
	start := strings.IndexByte(text, '{')
	if start < 0 {
		return nil, &MalformedResponseError{Reason: "no JSON object found in response"}
	}

	candidate, ok := scanObject(text, start)
	if !ok {
		end := strings.LastIndexByte(text, '}')
		if end <= start {
			return nil, &MalformedResponseError{Reason: "no closing brace found in response"}
		}
		candidate = text[start : end+1]
	}

	var parsed map[string]any
	if err := json.Unmarshal([]byte(candidate), &parsed); err != nil {
		return nil, &MalformedResponseError{Reason: "response is not valid JSON", Err: err}
	}
	return parsed, nil
}

// scanObject returns the balanced object starting at the opening brace at
// position start, or ok=false if the text ends before the object closes.
func scanObject(text string, start int) (string, bool) {
	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(text); i++ {
		c := text[i]
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
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return text[start : i+1], true
			}
		}
	}
	return "", false
}
