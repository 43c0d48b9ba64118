package models

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	// Status is the status line text, e.g. "404 Not Found".
	Status string `json:"status"`

	// Message is a human-readable description of the failure.
	Message string `json:"message"`
}

// HealthResponse is returned by the health endpoint.
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
	Name    string `json:"name"`
}

// MeResponse is the identity carried by a verified bearer token.
type MeResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}
