package utils

import (
	"regexp"
	"strings"
)

var indianMobilePattern = regexp.MustCompile(`^(\+91|91)?[6-9][0-9]{9}$`)

func digitsOnly(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// NormalizePhone converts a raw phone number into E.164 form for Indian
// numbers. 10 digits get a +91 prefix, 12 digits starting with 91 get a +.
// Anything else is returned untouched.
func NormalizePhone(raw string) string {
	digits := digitsOnly(raw)

	if len(digits) == 10 {
		return "+91" + digits
	}
	if len(digits) == 12 && strings.HasPrefix(digits, "91") {
		return "+" + digits
	}

	return raw
}

// IsValidMobile reports whether raw is an Indian mobile number, with or
// without the 91 country code.
func IsValidMobile(raw string) bool {
	return indianMobilePattern.MatchString(digitsOnly(raw))
}
