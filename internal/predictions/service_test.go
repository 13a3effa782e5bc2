package predictions_test

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"io"
	"log/slog"
	"reflect"
	"testing"

	"github.com/innovyom/breedscan/internal/breeds"
	"github.com/innovyom/breedscan/internal/inference"
	"github.com/innovyom/breedscan/internal/predictions"
)

const testMaxUploadSize = 8 * 1024 * 1024

type stubGateway struct {
	raw   []byte
	err   error
	calls int
}

func (g *stubGateway) Infer(_ context.Context, _ []byte, _ string) ([]byte, error) {
	g.calls++
	if g.err != nil {
		return nil, g.err
	}
	return g.raw, nil
}

func newPipeline(t *testing.T, gateway predictions.Gateway) predictions.System {
	t.Helper()

	store, err := breeds.NewMemoryStore(breeds.DefaultCatalog())
	if err != nil {
		t.Fatalf("build store: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return predictions.New(gateway, store, logger, testMaxUploadSize)
}

// pngUpload returns a minimal valid PNG wrapped in an Upload.
func pngUpload(t *testing.T) predictions.Upload {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	img.Set(0, 0, color.RGBA{R: 120, G: 90, B: 60, A: 255})

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}

	return predictions.Upload{
		Data:        buf.Bytes(),
		ContentType: "image/png",
	}
}

func TestPredictRejectsNonImageContentType(t *testing.T) {
	gateway := &stubGateway{}
	sys := newPipeline(t, gateway)

	upload := pngUpload(t)
	upload.ContentType = "text/plain"

	_, err := sys.Predict(context.Background(), upload)
	if !errors.Is(err, predictions.ErrContentType) {
		t.Errorf("expected ErrContentType, got %v", err)
	}
	if gateway.calls != 0 {
		t.Errorf("gateway called %d times before validation passed", gateway.calls)
	}
}

func TestPredictRejectsOversizeBeforeDecode(t *testing.T) {
	gateway := &stubGateway{}
	store, err := breeds.NewMemoryStore(breeds.DefaultCatalog())
	if err != nil {
		t.Fatalf("build store: %v", err)
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	sys := predictions.New(gateway, store, logger, 1024)

	// Garbage bytes over the ceiling: the size check must fire before
	// structural verification would report a corrupt image.
	upload := predictions.Upload{
		Data:        bytes.Repeat([]byte{0xAB}, 2048),
		ContentType: "image/jpeg",
	}

	_, err = sys.Predict(context.Background(), upload)
	if !errors.Is(err, predictions.ErrTooLarge) {
		t.Errorf("expected ErrTooLarge, got %v", err)
	}
	if gateway.calls != 0 {
		t.Errorf("gateway called %d times for an oversized upload", gateway.calls)
	}
}

func TestPredictRejectsCorruptImage(t *testing.T) {
	gateway := &stubGateway{}
	sys := newPipeline(t, gateway)

	upload := predictions.Upload{
		Data:        []byte("\x89PNG\r\n\x1a\ntruncated"),
		ContentType: "image/png",
	}

	_, err := sys.Predict(context.Background(), upload)
	if !errors.Is(err, predictions.ErrCorruptImage) {
		t.Errorf("expected ErrCorruptImage, got %v", err)
	}
	if gateway.calls != 0 {
		t.Errorf("gateway called %d times for a corrupt upload", gateway.calls)
	}
}

func TestPredictRoundTrip(t *testing.T) {
	gateway := &stubGateway{
		raw: []byte(`{"predictions":[{"class":"Murrah","confidence":0.91},{"class":"Gir","confidence":0.42}]}`),
	}
	sys := newPipeline(t, gateway)

	result, err := sys.Predict(context.Background(), pngUpload(t))
	if err != nil {
		t.Fatalf("predict: %v", err)
	}

	if result.Breed != "Murrah" {
		t.Errorf("breed: got %q, want Murrah", result.Breed)
	}
	if result.Confidence != 0.91 {
		t.Errorf("confidence: got %v, want 0.91", result.Confidence)
	}
	if result.Advice != predictions.AdviceHighConfidence {
		t.Errorf("advice: got %q", result.Advice)
	}
	if len(result.Advantages) == 0 {
		t.Error("Murrah should carry advantages from the catalog")
	}
	if len(result.TopK) != 2 {
		t.Fatalf("top_k length: got %d, want 2", len(result.TopK))
	}
	if result.TopK[0].Breed != "Murrah" || result.TopK[1].Breed != "Gir" {
		t.Errorf("top_k order: got %v", result.TopK)
	}
}

func TestPredictFlatShape(t *testing.T) {
	gateway := &stubGateway{raw: []byte(`{"label":"Sahiwal","confidence":0.3}`)}
	sys := newPipeline(t, gateway)

	result, err := sys.Predict(context.Background(), pngUpload(t))
	if err != nil {
		t.Fatalf("predict: %v", err)
	}

	if result.Breed != "Sahiwal" {
		t.Errorf("breed: got %q, want Sahiwal", result.Breed)
	}
	if len(result.TopK) != 1 {
		t.Errorf("top_k length: got %d, want 1", len(result.TopK))
	}
	if result.Advice != predictions.AdviceLowConfidence {
		t.Errorf("advice: got %q", result.Advice)
	}
}

func TestAdviceThresholdBoundary(t *testing.T) {
	tests := []struct {
		name       string
		confidence string
		want       string
	}{
		{"at threshold", "0.6", predictions.AdviceHighConfidence},
		{"just below threshold", "0.5999", predictions.AdviceLowConfidence},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gateway := &stubGateway{
				raw: []byte(`{"label":"Gir","confidence":` + tt.confidence + `}`),
			}
			sys := newPipeline(t, gateway)

			result, err := sys.Predict(context.Background(), pngUpload(t))
			if err != nil {
				t.Fatalf("predict: %v", err)
			}
			if result.Advice != tt.want {
				t.Errorf("advice at %s: got %q, want %q", tt.confidence, result.Advice, tt.want)
			}
		})
	}
}

func TestPredictUnknownBreed(t *testing.T) {
	gateway := &stubGateway{raw: []byte(`{"label":"Jersey","confidence":0.8}`)}
	sys := newPipeline(t, gateway)

	result, err := sys.Predict(context.Background(), pngUpload(t))
	if err != nil {
		t.Fatalf("unknown breed must not error: %v", err)
	}

	if result.Advantages == nil || len(result.Advantages) != 0 {
		t.Errorf("advantages: got %v, want empty list", result.Advantages)
	}
	if result.Disadvantages == nil || len(result.Disadvantages) != 0 {
		t.Errorf("disadvantages: got %v, want empty list", result.Disadvantages)
	}
}

func TestPredictEmptyPredictions(t *testing.T) {
	gateway := &stubGateway{raw: []byte(`{"predictions":[]}`)}
	sys := newPipeline(t, gateway)

	_, err := sys.Predict(context.Background(), pngUpload(t))
	if !errors.Is(err, inference.ErrNoPredictions) {
		t.Errorf("expected ErrNoPredictions, got %v", err)
	}
}

func TestPredictGatewayErrorPropagates(t *testing.T) {
	gateway := &stubGateway{err: inference.ErrUnreachable}
	sys := newPipeline(t, gateway)

	_, err := sys.Predict(context.Background(), pngUpload(t))
	if !errors.Is(err, inference.ErrUnreachable) {
		t.Errorf("expected ErrUnreachable, got %v", err)
	}
}

func TestPredictTopKTruncation(t *testing.T) {
	gateway := &stubGateway{
		raw: []byte(`{"predictions":[
			{"class":"A","confidence":0.9},
			{"class":"B","confidence":0.8},
			{"class":"C","confidence":0.7},
			{"class":"D","confidence":0.6},
			{"class":"E","confidence":0.5},
			{"class":"F","confidence":0.4},
			{"class":"G","confidence":0.3}
		]}`),
	}
	sys := newPipeline(t, gateway)

	result, err := sys.Predict(context.Background(), pngUpload(t))
	if err != nil {
		t.Fatalf("predict: %v", err)
	}
	if len(result.TopK) != 5 {
		t.Errorf("top_k length: got %d, want 5", len(result.TopK))
	}
}

func TestPredictRankingIsStable(t *testing.T) {
	gateway := &stubGateway{
		raw: []byte(`{"predictions":[
			{"class":"Gir","confidence":0.2},
			{"class":"Murrah","confidence":0.5},
			{"class":"Sahiwal","confidence":0.5}
		]}`),
	}
	sys := newPipeline(t, gateway)

	result, err := sys.Predict(context.Background(), pngUpload(t))
	if err != nil {
		t.Fatalf("predict: %v", err)
	}

	// Ties keep provider order: Murrah before Sahiwal, Gir last.
	want := []string{"Murrah", "Sahiwal", "Gir"}
	for i, breed := range want {
		if result.TopK[i].Breed != breed {
			t.Fatalf("top_k order: got %v, want %v", result.TopK, want)
		}
	}
}

func TestPredictIdempotent(t *testing.T) {
	gateway := &stubGateway{
		raw: []byte(`{"predictions":[{"class":"Murrah","confidence":0.91},{"class":"Gir","confidence":0.42}]}`),
	}
	sys := newPipeline(t, gateway)

	first, err := sys.Predict(context.Background(), pngUpload(t))
	if err != nil {
		t.Fatalf("first predict: %v", err)
	}
	second, err := sys.Predict(context.Background(), pngUpload(t))
	if err != nil {
		t.Fatalf("second predict: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Errorf("results differ across identical requests:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}
