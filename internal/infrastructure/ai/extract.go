package ai

import (
	"encoding/json"
	"strings"

	apperrors "github.com/fridgewise/v1/pkg/errors"
)

// ExtractJSONArray pulls a JSON array out of free-text model output and
// unmarshals it into v. The fallback chain, tried in order:
//
//  1. the whole response is the array (strict output honored),
//  2. a ```json fenced block containing the array,
//  3. bracket scan: the first balanced [...] span in the text.
//
// Each failure mode is reported distinctly in the error details.
func ExtractJSONArray(text string, v interface{}) error {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return apperrors.NewAIMalformedOutputError("response is empty")
	}

	if strings.HasPrefix(trimmed, "[") {
		if err := json.Unmarshal([]byte(trimmed), v); err == nil {
			return nil
		}
	}

	if fenced, ok := extractFencedBlock(trimmed); ok {
		if err := json.Unmarshal([]byte(fenced), v); err == nil {
			return nil
		}
	}

	span, ok := firstBalancedArray(trimmed)
	if !ok {
		return apperrors.NewAIMalformedOutputError("no JSON array found in response")
	}
	if err := json.Unmarshal([]byte(span), v); err != nil {
		return apperrors.NewAIMalformedOutputError("bracketed span is not a valid JSON array").WithCause(err)
	}
	return nil
}

// extractFencedBlock returns the body of the first ``` fenced block
func extractFencedBlock(text string) (string, bool) {
	start := strings.Index(text, "```")
	if start == -1 {
		return "", false
	}
	rest := text[start+3:]
	// Skip an optional language tag on the fence line
	if nl := strings.IndexByte(rest, '\n'); nl != -1 {
		firstLine := strings.TrimSpace(rest[:nl])
		if firstLine == "json" || firstLine == "" {
			rest = rest[nl+1:]
		}
	}
	end := strings.Index(rest, "```")
	if end == -1 {
		return "", false
	}
	return strings.TrimSpace(rest[:end]), true
}

// firstBalancedArray finds the first balanced top-level [...] span,
// ignoring brackets inside JSON strings.
func firstBalancedArray(text string) (string, bool) {
	start := strings.IndexByte(text, '[')
	if start == -1 {
		return "", false
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(text); i++ {
		ch := text[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case ch == '\\':
				escaped = true
			case ch == '"':
				inString = false
			}
			continue
		}
		switch ch {
		case '"':
			inString = true
		case '[':
			depth++
		case ']':
			depth--
			if depth == 0 {
				return text[start : i+1], true
			}
		}
	}
	return "", false
}
