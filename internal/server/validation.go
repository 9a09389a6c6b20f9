package server

import (
	"strings"
	"unicode/utf8"
)

const (
	maxNameLength    = 50
	maxContentLength = 200
	minPosition      = 0
	maxPosition      = 100
)

func validateName(name string) (string, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", newValidationError("name is required")
	}
	if utf8.RuneCountInString(trimmed) > maxNameLength {
		return "", newValidationError("name must be %d characters or fewer", maxNameLength)
	}
	return trimmed, nil
}

func validateContent(content string) (string, error) {
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return "", newValidationError("content is required")
	}
	if utf8.RuneCountInString(trimmed) > maxContentLength {
		return "", newValidationError("content must be %d characters or fewer", maxContentLength)
	}
	return trimmed, nil
}

func validatePosition(position int) error {
	if position < minPosition || position > maxPosition {
		return newValidationError("position must be between %d and %d", minPosition, maxPosition)
	}
	return nil
}
