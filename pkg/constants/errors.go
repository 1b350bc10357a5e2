package constants

import "errors"

// Errors
var (
	ErrInvalidResponse = errors.New("invalid SurrealDB response")
	ErrQuery           = errors.New("error occurred processing the SurrealDB query")
	ErrNoURL           = errors.New("base url not set")
)
