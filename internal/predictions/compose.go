package predictions

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/innovyom/breedscan/internal/breeds"
	"github.com/innovyom/breedscan/internal/inference"
)

// ConfidenceThreshold separates the two advisory tiers. At or above the
// threshold the high-confidence advice applies.
const ConfidenceThreshold = 0.6

// TopKLimit caps the ranked list returned alongside the primary prediction.
const TopKLimit = 5

// Exactly two advisory strings exist; there are no intermediate tiers.
const (
	AdviceLowConfidence  = "Low confidence — try a clearer, side-view image in good lighting."
	AdviceHighConfidence = "Confidence high. For better accuracy, upload a side-view photo."
)

// compose ranks predictions by confidence descending (stable, so provider
// order breaks ties), attaches breed metadata to the primary prediction,
// and derives the advisory text from the primary confidence.
func (s *service) compose(ctx context.Context, predictions []inference.Prediction) (*Result, error) {
	ranked := make([]inference.Prediction, len(predictions))
	copy(ranked, predictions)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Confidence > ranked[j].Confidence
	})

	primary := ranked[0]

	advantages, disadvantages, err := s.lookupBreed(ctx, primary.Label)
	if err != nil {
		return nil, err
	}

	topK := make([]RankedPrediction, 0, min(len(ranked), TopKLimit))
	for _, p := range ranked[:min(len(ranked), TopKLimit)] {
		topK = append(topK, RankedPrediction{
			Breed:      p.Label,
			Confidence: p.Confidence,
		})
	}

	return &Result{
		Breed:         primary.Label,
		Confidence:    primary.Confidence,
		Advantages:    advantages,
		Disadvantages: disadvantages,
		TopK:          topK,
		Advice:        advise(primary.Confidence),
	}, nil
}

// lookupBreed resolves static metadata for the primary breed. An
// unrecognized breed is a valid outcome and yields empty lists, never an
// error; only store failures propagate.
func (s *service) lookupBreed(ctx context.Context, name string) ([]string, []string, error) {
	record, err := s.store.Find(ctx, name)
	if errors.Is(err, breeds.ErrNotFound) {
		return []string{}, []string{}, nil
	}
	if err != nil {
		return nil, nil, fmt.Errorf("breed lookup: %w", err)
	}

	advantages := record.Advantages
	if advantages == nil {
		advantages = []string{}
	}
	disadvantages := record.Disadvantages
	if disadvantages == nil {
		disadvantages = []string{}
	}

	return advantages, disadvantages, nil
}

func advise(confidence float64) string {
	if confidence < ConfidenceThreshold {
		return AdviceLowConfidence
	}
	return AdviceHighConfidence
}
