package client

import (
	"strings"
	"unicode/utf8"
)

// ValidateName checks the name shape before it reaches the service.
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" || utf8.RuneCountInString(name) > MaxNameLength {
		return ErrInvalidName
	}
	return nil
}
