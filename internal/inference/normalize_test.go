package inference_test

import (
	"errors"
	"testing"

	"github.com/innovyom/breedscan/internal/inference"
)

func TestNormalizePredictionList(t *testing.T) {
	raw := []byte(`{"predictions":[{"class":"Murrah","confidence":0.91},{"class":"Gir","confidence":0.42}]}`)

	predictions, err := inference.Normalize(raw)
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if len(predictions) != 2 {
		t.Fatalf("prediction count: got %d, want 2", len(predictions))
	}
	if predictions[0].Label != "Murrah" || predictions[0].Confidence != 0.91 {
		t.Errorf("first prediction: got %+v", predictions[0])
	}
	if predictions[1].Label != "Gir" || predictions[1].Confidence != 0.42 {
		t.Errorf("second prediction: got %+v", predictions[1])
	}
}

func TestNormalizeLabelKeyFallback(t *testing.T) {
	raw := []byte(`{"predictions":[{"label":"Sahiwal","confidence":0.5}]}`)

	predictions, err := inference.Normalize(raw)
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if predictions[0].Label != "Sahiwal" {
		t.Errorf("label: got %q, want Sahiwal", predictions[0].Label)
	}
}

func TestNormalizeDefaults(t *testing.T) {
	raw := []byte(`{"predictions":[{}]}`)

	predictions, err := inference.Normalize(raw)
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if predictions[0].Label != "Unknown" {
		t.Errorf("missing label should default to Unknown, got %q", predictions[0].Label)
	}
	if predictions[0].Confidence != 0.0 {
		t.Errorf("missing confidence should default to 0.0, got %v", predictions[0].Confidence)
	}
}

func TestNormalizeFlatShape(t *testing.T) {
	raw := []byte(`{"label":"Sahiwal","confidence":0.3}`)

	predictions, err := inference.Normalize(raw)
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if len(predictions) != 1 {
		t.Fatalf("prediction count: got %d, want 1", len(predictions))
	}
	if predictions[0].Label != "Sahiwal" || predictions[0].Confidence != 0.3 {
		t.Errorf("prediction: got %+v", predictions[0])
	}
}

func TestNormalizeFlatShapeRequiresBothKeys(t *testing.T) {
	for _, raw := range []string{
		`{"label":"Sahiwal"}`,
		`{"confidence":0.3}`,
	} {
		if _, err := inference.Normalize([]byte(raw)); !errors.Is(err, inference.ErrNoPredictions) {
			t.Errorf("Normalize(%s): expected ErrNoPredictions, got %v", raw, err)
		}
	}
}

func TestNormalizeEmptyPredictionList(t *testing.T) {
	if _, err := inference.Normalize([]byte(`{"predictions":[]}`)); !errors.Is(err, inference.ErrNoPredictions) {
		t.Errorf("expected ErrNoPredictions, got %v", err)
	}
}

func TestNormalizeUnknownShapes(t *testing.T) {
	for _, raw := range []string{
		`{"outputs":[{"tag":"Murrah"}]}`,
		`[]`,
		`"plain string"`,
		`not json at all`,
	} {
		if _, err := inference.Normalize([]byte(raw)); !errors.Is(err, inference.ErrNoPredictions) {
			t.Errorf("Normalize(%s): expected ErrNoPredictions, got %v", raw, err)
		}
	}
}
