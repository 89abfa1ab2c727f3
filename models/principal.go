package models

// Roles recognised by the backend.
const (
	RoleVictim = "victim"
	RolePolice = "police"
)

// Principal is the authenticated actor reconstructed from a bearer token
// on each request.
type Principal struct {
	ID   string `json:"id"`
	Role string `json:"role"`
	Name string `json:"name"`
}

// IsPolice reports whether the principal is a police officer.
func (p Principal) IsPolice() bool {
	return p.Role == RolePolice
}
