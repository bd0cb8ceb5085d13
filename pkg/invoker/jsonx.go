package invoker

import (
	"encoding/json"
	"fmt"
	"strings"
)

// decodeStructured turns free-form model output into the target value.
// It strips code fences and surrounding prose, attempts a strict parse, and
// falls back to a best-effort structural repair before giving up.
func decodeStructured(raw string, out interface{}) error {
	normalized := normalize(raw)
	if normalized == "" {
		return fmt.Errorf("no structured payload in response")
	}

	if err := json.Unmarshal([]byte(normalized), out); err == nil {
		return nil
	}

	repaired := repair(normalized)
	if err := json.Unmarshal([]byte(repaired), out); err != nil {
		return fmt.Errorf("parse structured response: %w", err)
	}
	return nil
}

// normalize strips leading/trailing code-fence markers (with or without a
// language tag) and cuts the payload down to the outermost JSON value,
// dropping any prose the model wrapped around it.
func normalize(raw string) string {
	s := strings.TrimSpace(raw)

	if strings.HasPrefix(s, "```") {
		// Drop the fence line together with its language tag
		if idx := strings.IndexByte(s, '\n'); idx >= 0 {
			s = s[idx+1:]
		} else {
			s = strings.TrimPrefix(s, "```")
		}
		s = strings.TrimSpace(s)
	}
	if strings.HasSuffix(s, "```") {
		s = strings.TrimSuffix(s, "```")
		s = strings.TrimSpace(s)
	}

	// Slice to the outermost object or array
	start := -1
	for i := 0; i < len(s); i++ {
		if s[i] == '{' || s[i] == '[' {
			start = i
			break
		}
	}
	if start < 0 {
		return ""
	}
	end := -1
	for i := len(s) - 1; i >= start; i-- {
		if s[i] == '}' || s[i] == ']' {
			end = i
			break
		}
	}
	if end < 0 {
		// No closer at all; repair may still be able to balance it
		return strings.TrimSpace(s[start:])
	}
	return strings.TrimSpace(s[start : end+1])
}

// repair fixes the defects models most often produce: trailing commas,
// unterminated strings and unbalanced brackets. Duplicate keys need no fix,
// encoding/json keeps the last occurrence.
func repair(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 8)

	var stack []byte
	inString := false
	escaped := false

	for i := 0; i < len(s); i++ {
		c := s[i]

		if inString {
			b.WriteByte(c)
			if escaped {
				escaped = false
			} else if c == '\\' {
				escaped = true
			} else if c == '"' {
				inString = false
			}
			continue
		}

		switch c {
		case '"':
			inString = true
			b.WriteByte(c)
		case '{':
			stack = append(stack, '}')
			b.WriteByte(c)
		case '[':
			stack = append(stack, ']')
			b.WriteByte(c)
		case '}', ']':
			if len(stack) > 0 && stack[len(stack)-1] == c {
				stack = stack[:len(stack)-1]
				b.WriteByte(c)
			}
			// Unmatched closer: drop it
		case ',':
			// Look ahead: a comma directly before a closer is trailing
			j := i + 1
			for j < len(s) && (s[j] == ' ' || s[j] == '\t' || s[j] == '\n' || s[j] == '\r') {
				j++
			}
			if j < len(s) && (s[j] == '}' || s[j] == ']') {
				continue
			}
			b.WriteByte(c)
		default:
			b.WriteByte(c)
		}
	}

	if inString {
		b.WriteByte('"')
	}
	for i := len(stack) - 1; i >= 0; i-- {
		b.WriteByte(stack[i])
	}

	return b.String()
}
