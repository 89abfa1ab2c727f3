package auth

// ValidationError marks missing or malformed input (HTTP 400).
type ValidationError struct {
	Msg string
}

func (e ValidationError) Error() string { return e.Msg }

// UnauthorizedError marks failed credentials or codes (HTTP 401).
type UnauthorizedError struct {
	Msg string
}

func (e UnauthorizedError) Error() string { return e.Msg }

// ForbiddenError marks a role mismatch (HTTP 403).
type ForbiddenError struct {
	Msg string
}

func (e ForbiddenError) Error() string { return e.Msg }

// ConflictError marks a duplicate registration (HTTP 409).
type ConflictError struct {
	Msg string
}

func (e ConflictError) Error() string { return e.Msg }
