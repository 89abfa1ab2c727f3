package utils

import (
	"errors"
	"strings"

	"saarthi/models"
)

// identityDelimiter separates the id, role and name fields of a token subject.
const identityDelimiter = ":"

// ErrMalformedIdentity is returned when a token subject cannot be decoded
// into a principal.
var ErrMalformedIdentity = errors.New("malformed identity string")

// EncodeIdentity joins a principal's id, role and name into the single
// delimited string used as the bearer-token subject. Names containing the
// delimiter are rejected at registration time, so the pair round-trips for
// every principal the system issues.
func EncodeIdentity(p models.Principal) string {
	return strings.Join([]string{p.ID, p.Role, p.Name}, identityDelimiter)
}

// DecodeIdentity splits a token subject into a principal. The name field may
// itself contain the delimiter, so only the first two occurrences split.
func DecodeIdentity(s string) (models.Principal, error) {
	parts := strings.SplitN(s, identityDelimiter, 3)
	if len(parts) < 3 {
		return models.Principal{}, ErrMalformedIdentity
	}
	return models.Principal{ID: parts[0], Role: parts[1], Name: parts[2]}, nil
}

// ValidIdentityName reports whether a display name is safe to embed in an
// identity string.
func ValidIdentityName(name string) bool {
	return !strings.Contains(name, identityDelimiter)
}
