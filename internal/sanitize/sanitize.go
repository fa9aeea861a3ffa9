// Package sanitize provides input validation for item text arriving at
// the tool boundary. Classification itself tolerates arbitrary strings;
// this package rejects input that is malformed or abusive before it
// reaches the engine.
package sanitize

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Validation errors for item text checks.
var (
	// ErrEmptyText indicates the text is empty or whitespace-only.
	ErrEmptyText = errors.New("item text cannot be empty")

	// ErrTextTooLong indicates the text exceeds the configured limit.
	ErrTextTooLong = errors.New("item text too long")

	// ErrInvalidEncoding indicates the text is not valid UTF-8.
	ErrInvalidEncoding = errors.New("item text is not valid UTF-8")
)

// DefaultMaxItemLength caps item text when no limit is configured.
const DefaultMaxItemLength = 10000

// ValidateItemText checks item text before classification.
// maxLength is in runes; <= 0 selects DefaultMaxItemLength.
func ValidateItemText(text string, maxLength int) error {
	if maxLength <= 0 {
		maxLength = DefaultMaxItemLength
	}

	if !utf8.ValidString(text) {
		return ErrInvalidEncoding
	}
	if strings.TrimSpace(text) == "" {
		return ErrEmptyText
	}
	if n := utf8.RuneCountInString(text); n > maxLength {
		return fmt.Errorf("%w: %d runes (max %d)", ErrTextTooLong, n, maxLength)
	}
	return nil
}

// CleanItemText normalizes item text for classification: trims surrounding
// whitespace and drops control characters other than tab and newline.
func CleanItemText(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if unicode.IsControl(r) && r != '\t' && r != '\n' {
			continue
		}
		b.WriteRune(r)
	}
	return strings.TrimSpace(b.String())
}
