package predictions

import (
	"errors"
	"net/http"

	"github.com/innovyom/breedscan/internal/inference"
)

// Client input errors. None are retried; each surfaces verbatim to the caller.
var (
	ErrMissingFile  = errors.New("no image file provided")
	ErrContentType  = errors.New("upload must be an image")
	ErrTooLarge     = errors.New("image too large")
	ErrCorruptImage = errors.New("uploaded file is not a valid image")
)

// MapHTTPStatus maps pipeline errors to HTTP status codes. Input errors are
// 400-class, gateway errors delegate to the inference package's mapping.
func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrMissingFile), errors.Is(err, ErrContentType), errors.Is(err, ErrCorruptImage):
		return http.StatusBadRequest
	case errors.Is(err, ErrTooLarge):
		return http.StatusRequestEntityTooLarge
	default:
		return inference.MapHTTPStatus(err)
	}
}
