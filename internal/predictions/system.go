package predictions

import "context"

// System defines the public contract for the prediction pipeline.
type System interface {
	Handler() *Handler

	// Predict runs the full pipeline for one upload: input validation,
	// provider inference, response normalization, and result composition.
	// It never returns a partial result.
	Predict(ctx context.Context, upload Upload) (*Result, error)
}

// Gateway is the outbound contract to the remote classification provider.
// It returns the provider's raw response body for normalization.
type Gateway interface {
	Infer(ctx context.Context, data []byte, contentType string) ([]byte, error)
}
