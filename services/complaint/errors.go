package complaint

// ValidationError marks missing or malformed input (HTTP 400).
type ValidationError struct {
	Msg string
}

func (e ValidationError) Error() string { return e.Msg }

// ForbiddenError marks a role mismatch or cross-user access (HTTP 403).
type ForbiddenError struct {
	Msg string
}

func (e ForbiddenError) Error() string { return e.Msg }

// NotFoundError marks an unknown complaint ID (HTTP 404).
type NotFoundError struct {
	Msg string
}

func (e NotFoundError) Error() string { return e.Msg }
