package utils

import (
	"strings"
	"unicode/utf8"
)

// NormalizeSpace collapses repeated whitespace into a single space.
func NormalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func IsDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// MaskAadhar renders an ID number as XXXX-XXXX-<last 4> for display. The stored value is
// never touched.
func MaskAadhar(s string) string {
	s = strings.TrimSpace(s)
	if utf8.RuneCountInString(s) > 4 {
		r := []rune(s)
		s = string(r[len(r)-4:])
	}
	return "XXXX-XXXX-" + s
}
