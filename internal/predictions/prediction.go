// Package predictions implements the breed prediction pipeline: upload
// validation, the provider call, response normalization, and result
// composition. Control flow is strictly linear per request and no mutable
// state is shared across requests.
package predictions

// Upload carries a validated-for-transport image as received from the client.
// It is owned by the request handler and discarded after the pipeline runs.
type Upload struct {
	Data        []byte
	ContentType string
}

// RankedPrediction is one (breed, confidence) entry of the ranked top-K list.
type RankedPrediction struct {
	Breed      string  `json:"breed"`
	Confidence float64 `json:"confidence"`
}

// Result is the client-facing prediction contract. Breed metadata is
// attached to the primary prediction only; top-K entries expose just the
// breed and confidence.
type Result struct {
	Breed         string             `json:"breed"`
	Confidence    float64            `json:"confidence"`
	Advantages    []string           `json:"advantages"`
	Disadvantages []string           `json:"disadvantages"`
	TopK          []RankedPrediction `json:"top_k"`
	Advice        string             `json:"advice"`
}
