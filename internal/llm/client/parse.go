package client

import (
	"encoding/json"
	"fmt"
	"strings"

	"ridgeai/internal/models"
)

// ParseComparison decodes the provider output into the report structure.
// The first attempt takes the body as-is; if that fails, markdown fences and
// surrounding prose are stripped once and parsing is retried. Unknown fields
// are dropped and missing fields keep their zero values, because the output
// shape is enforced only by the prompt.
func ParseComparison(raw string) (*models.ComparisonResult, error) {
	trimmed := strings.TrimSpace(raw)

	var result models.ComparisonResult
	if err := json.Unmarshal([]byte(trimmed), &result); err == nil {
		return &result, nil
	}

	cleaned := stripWrappers(trimmed)
	if err := json.Unmarshal([]byte(cleaned), &result); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	return &result, nil
}

// stripWrappers removes ```json fences and any prose outside the outermost
// JSON object.
func stripWrappers(s string) string {
	s = strings.ReplaceAll(s, "```json", "")
	s = strings.ReplaceAll(s, "```", "")
	s = strings.TrimSpace(s)

	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start >= 0 && end > start {
		s = s[start : end+1]
	}
	return s
}
