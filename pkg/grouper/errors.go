package grouper

import (
	"errors"
	"fmt"
)

// BackendError represents a non-success HTTP response from the Grouper Web
// Services endpoint. The raw body is preserved (truncated) so callers can
// surface whatever the backend reported.
type BackendError struct {
	// StatusCode is the HTTP status code.
	StatusCode int

	// Body is a preview of the response body.
	Body string

	// URL is the requested URL.
	URL string
}

// Error implements the error interface.
func (e *BackendError) Error() string {
	return fmt.Sprintf("grouper request to %s failed with status %d: %s", e.URL, e.StatusCode, e.Body)
}

// IsBackendError checks if an error is a BackendError with the specified
// status code. If statusCode is 0, it matches any BackendError.
func IsBackendError(err error, statusCode int) bool {
	var backendErr *BackendError
	if !errors.As(err, &backendErr) {
		return false
	}
	if statusCode == 0 {
		return true
	}
	return backendErr.StatusCode == statusCode
}

// ParseError represents a response body that was not valid JSON. HTMLPage is
// set when the body looks like an HTML page, which almost always means the
// base URL or the credentials are wrong and a login or error page came back
// in place of the API response.
type ParseError struct {
	// Body is a preview of the response body.
	Body string

	// HTMLPage indicates the body appears to be an HTML document.
	HTMLPage bool
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.HTMLPage {
		return "grouper returned an HTML page instead of JSON; check the base URL and credentials"
	}
	return fmt.Sprintf("grouper returned a response that is not valid JSON: %s", e.Body)
}

// IsParseError checks if an error is a ParseError.
func IsParseError(err error) bool {
	var parseErr *ParseError
	return errors.As(err, &parseErr)
}
