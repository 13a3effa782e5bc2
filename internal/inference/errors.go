package inference

import (
	"errors"
	"net/http"
)

// Gateway errors for the remote classification provider.
var (
	// ErrUnconfigured indicates the provider endpoint or credential is
	// missing from configuration. Operator-fixable, not retryable.
	ErrUnconfigured = errors.New("no inference backend configured")
	// ErrUnreachable indicates a transport failure reaching the provider.
	ErrUnreachable = errors.New("error contacting inference service")
	// ErrUpstreamStatus indicates the provider answered with a non-200 status.
	ErrUpstreamStatus = errors.New("inference failed")
	// ErrNoPredictions indicates the provider answered successfully but no
	// known response shape yielded a usable prediction.
	ErrNoPredictions = errors.New("no predictions returned by model")
)

// MapHTTPStatus maps gateway errors to the status surfaced to callers.
// Upstream failures are the backend's fault, not the client's, so they map
// to 502; a missing configuration is this deployment's fault and maps to 500.
func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrUnconfigured):
		return http.StatusInternalServerError
	case errors.Is(err, ErrUnreachable),
		errors.Is(err, ErrUpstreamStatus),
		errors.Is(err, ErrNoPredictions):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
