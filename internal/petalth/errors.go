package petalth

import (
	"fmt"
	"net/http"

	"github.com/SoYuDev/petalth-crm/internal/app/models"
)

// APIError is a non-2xx response from the remote API.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("petalth api: unexpected status %d: %s", e.StatusCode, e.Body)
}

// Unwrap maps upstream status codes onto the domain error taxonomy so that
// callers can branch with errors.Is instead of inspecting status codes.
func (e *APIError) Unwrap() error {
	switch e.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return models.ErrUnauthenticated
	case http.StatusNotFound:
		return models.ErrNotFound
	case http.StatusConflict:
		return models.ErrConflict
	case http.StatusBadRequest:
		return models.ErrBadRequest
	}
	return nil
}
