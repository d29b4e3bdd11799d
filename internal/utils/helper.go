package utils

import (
	"regexp"
	"strings"
)

var (
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRe = regexp.MustCompile(`^[0-9]{10,15}$`)
)

// IsValidEmail reports whether s looks like an email address.
func IsValidEmail(s string) bool {
	return emailRe.MatchString(s)
}

// IsValidPhone accepts bare digit strings of 10 to 15 digits.
func IsValidPhone(s string) bool {
	return phoneRe.MatchString(s)
}

// IsEmpty reports whether s is blank after trimming whitespace.
func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}
