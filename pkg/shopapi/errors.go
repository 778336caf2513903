package shopapi

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrUnauthorized is returned when the backend answers 401. The caller's
// OnUnauthorized hook has already fired by the time this surfaces.
var ErrUnauthorized = errors.New("shopapi: unauthorized")

// APIError represents a failed envelope: hasSuccess=false or a non-2xx
// status. The backend's errors list is preserved for display.
type APIError struct {
	StatusCode int
	Messages   []string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if len(e.Messages) > 0 {
		return fmt.Sprintf("shopapi: %s (status %d)", strings.Join(e.Messages, "; "), e.StatusCode)
	}
	return fmt.Sprintf("shopapi: HTTP %d: %s", e.StatusCode, http.StatusText(e.StatusCode))
}
