package tomato

import (
	"errors"
	"fmt"
)

// Common errors returned by the catalog client.
var (
	// ErrMissingAPIKey is returned when a request is attempted without an API key.
	ErrMissingAPIKey = errors.New("rotten tomatoes API key is not set")
)

// errNoMovieID marks per-movie endpoint calls made without an identifier.
var errNoMovieID = errors.New("movie id is required")

// errNotAList marks internal misuse of a single-item endpoint where a
// list endpoint was expected.
var errNotAList = errors.New("endpoint does not return a movie list")

// URIError indicates a request target could not be built from the
// endpoint path and parameters.
type URIError struct {
	Host string
	Path string
	Err  error
}

// Error implements the error interface
func (e *URIError) Error() string {
	return fmt.Sprintf("cannot build request URI for %s%s: %v", e.Host, e.Path, e.Err)
}

func (e *URIError) Unwrap() error {
	return e.Err
}

// TransportError indicates a network failure or a non-success HTTP
// status from the API server.
type TransportError struct {
	StatusCode int
	Body       string
	Err        error
}

// Error implements the error interface
func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("API request failed with status %d: %s", e.StatusCode, e.Body)
	}
	return fmt.Sprintf("API request failed: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// IsForbidden checks if the error indicates a rejected API key.
func (e *TransportError) IsForbidden() bool {
	return e.StatusCode == 403
}

// IsNotFound checks if the error indicates a missing resource.
func (e *TransportError) IsNotFound() bool {
	return e.StatusCode == 404
}

// ResponseError indicates the response envelope was malformed or missing
// an expected field. It is terminal for the call; no partial results are
// returned alongside it.
type ResponseError struct {
	Field string
	Err   error
}

// Error implements the error interface
func (e *ResponseError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("malformed API response: missing or invalid %q field", e.Field)
	}
	return fmt.Sprintf("malformed API response: %v", e.Err)
}

func (e *ResponseError) Unwrap() error {
	return e.Err
}
