package models

// ErrorResponse is the JSON envelope for 404 and 500 responses.
// Error carries the underlying failure text and is omitted on 404.
// swagger:model ErrorResponse
type ErrorResponse struct {
	// example: Error getting all loans
	Message string `json:"message"`

	// example: dial tcp 127.0.0.1:5432: connect: connection refused
	Error string `json:"error,omitempty"`
}
