// ABOUTME: APIError reports a non-success HTTP status from the Particle Cloud API
// ABOUTME: Carries the decoded error code and description when the body is JSON

package particle

import (
	"fmt"
	"net/http"
)

// APIError is returned by Open when the API answers with a non-2xx status.
type APIError struct {
	StatusCode  int
	Code        string
	Description string
}

func (e *APIError) Error() string {
	msg := e.Description
	if msg == "" {
		msg = e.Code
	}
	if msg == "" {
		msg = http.StatusText(e.StatusCode)
	}
	return fmt.Sprintf("particle api: %d: %s", e.StatusCode, msg)
}

// Unauthorized reports whether the credential was rejected.
func (e *APIError) Unauthorized() bool {
	return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
}
