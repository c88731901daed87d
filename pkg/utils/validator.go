package utils

import (
	"fmt"
	"regexp"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// ValidateEmail validates an email address
func ValidateEmail(email string) error {
	if !emailRegex.MatchString(email) {
		return fmt.Errorf("invalid email format: %s", email)
	}
	return nil
}

// ValidateTimeSaved validates the per-execution time saved in minutes.
// A single execution saving more than a full work week is almost
// certainly a data entry error.
func ValidateTimeSaved(minutes int) error {
	if minutes <= 0 {
		return fmt.Errorf("time saved must be positive: %d", minutes)
	}
	if minutes > 2400 {
		return fmt.Errorf("time saved exceeds maximum limit: %d", minutes)
	}
	return nil
}

// SanitizeString removes potentially harmful characters
func SanitizeString(s string) string {
	// Remove control characters and potential SQL injection patterns
	sanitized := regexp.MustCompile(`[\x00-\x1f\x7f]`).ReplaceAllString(s, "")
	return sanitized
}
