package project

import (
	"strings"
	"unicode/utf8"
)

// ValidateDescription checks the description shape before it reaches the service.
func ValidateDescription(description string) error {
	if strings.TrimSpace(description) == "" || utf8.RuneCountInString(description) > MaxDescriptionLength {
		return ErrInvalidDescription
	}
	return nil
}
