package breeds

import (
	"errors"
	"net/http"
)

// Domain errors for breed catalog operations.
var (
	ErrNotFound       = errors.New("breed not found")
	ErrDuplicate      = errors.New("breed already exists")
	ErrInvalidCatalog = errors.New("invalid breed catalog")
)

// MapHTTPStatus maps breed domain errors to HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}
