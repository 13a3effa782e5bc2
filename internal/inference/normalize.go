package inference

import "encoding/json"

// Prediction is a single (label, confidence) pair extracted from a provider
// response. Unordered until ranked by the composer.
type Prediction struct {
	Label      string
	Confidence float64
}

// The label defaulted when a prediction entry carries no class or label key.
const unknownLabel = "Unknown"

// parseStrategy extracts predictions from one known response shape.
// A strategy that does not recognize the payload returns nil.
type parseStrategy func(raw []byte) []Prediction

// Strategies are attempted in order; the first one yielding entries wins.
// Unrecognized shapes fall through silently to preserve forward
// compatibility with provider format drift.
var strategies = []parseStrategy{
	parsePredictionList,
	parseFlat,
}

// Normalize extracts an ordered prediction list from a raw provider response.
// It performs field extraction and defaulting only; ranking is the
// composer's job. Returns ErrNoPredictions when no strategy yields entries.
func Normalize(raw []byte) ([]Prediction, error) {
	for _, parse := range strategies {
		if predictions := parse(raw); len(predictions) > 0 {
			return predictions, nil
		}
	}
	return nil, ErrNoPredictions
}

// parsePredictionList handles the detection-style shape:
// {"predictions": [{"class"|"label": "...", "confidence": 0.0}, ...]}.
// Missing labels default to "Unknown", missing confidence to 0.0.
func parsePredictionList(raw []byte) []Prediction {
	var payload struct {
		Predictions []struct {
			Class      string  `json:"class"`
			Label      string  `json:"label"`
			Confidence float64 `json:"confidence"`
		} `json:"predictions"`
	}

	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil
	}

	predictions := make([]Prediction, 0, len(payload.Predictions))
	for _, entry := range payload.Predictions {
		label := entry.Class
		if label == "" {
			label = entry.Label
		}
		if label == "" {
			label = unknownLabel
		}
		predictions = append(predictions, Prediction{
			Label:      label,
			Confidence: entry.Confidence,
		})
	}

	return predictions
}

// parseFlat handles the single-prediction shape {"label": "...",
// "confidence": 0.0}, treated as a one-element list. Both keys must be
// present for the shape to match.
func parseFlat(raw []byte) []Prediction {
	var payload struct {
		Label      *string  `json:"label"`
		Confidence *float64 `json:"confidence"`
	}

	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil
	}
	if payload.Label == nil || payload.Confidence == nil {
		return nil
	}

	return []Prediction{{
		Label:      *payload.Label,
		Confidence: *payload.Confidence,
	}}
}
