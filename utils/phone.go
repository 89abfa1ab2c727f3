package utils

import "regexp"

// Indian mobile number: optional +91 prefix, optional leading 0, optional
// bare 91, then ten digits starting with 7, 8 or 9.
var phonePattern = regexp.MustCompile(`^(\+91[-\s]?)?[0]?(91)?[789]\d{9}$`)

// NormalizePhone canonicalizes a raw phone number to the +91 dialing format.
// Numbers already carrying a + prefix pass through unchanged; a bare 91
// country code gets only the +.
func NormalizePhone(raw string) string {
	if raw == "" {
		return raw
	}
	if raw[0] == '+' {
		return raw
	}
	if len(raw) >= 2 && raw[0:2] == "91" {
		return "+" + raw
	}
	return "+91" + raw
}

// IsValidPhone reports whether a phone number has a valid shape.
func IsValidPhone(phone string) bool {
	return phonePattern.MatchString(phone)
}
