package handlers

// HandlerBundle aggregates all handlers so route registration stays in one
// place.
type HandlerBundle struct {
	Auth       *AuthHandler
	Complaints *ComplaintHandler
	Reference  *ReferenceHandler
}
