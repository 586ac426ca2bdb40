package utils

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var strict = bluemonday.StrictPolicy()

// OptionalString trims s and maps an empty result to nil.
func OptionalString(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// PlainText strips every HTML tag from free text, leaving plain characters.
// Entities produced by the policy are unescaped again since the value is
// stored as text, not HTML.
func PlainText(s *string) *string {
	s = OptionalString(s)
	if s == nil {
		return nil
	}
	cleaned := strings.TrimSpace(html.UnescapeString(strict.Sanitize(*s)))
	if cleaned == "" {
		return nil
	}
	return &cleaned
}
