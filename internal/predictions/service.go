package predictions

import (
	"context"
	"log/slog"

	"github.com/innovyom/breedscan/internal/breeds"
	"github.com/innovyom/breedscan/internal/inference"
)

type service struct {
	gateway       Gateway
	store         breeds.Store
	logger        *slog.Logger
	maxUploadSize int64
}

// New creates the prediction pipeline with the given provider gateway,
// breed store, and upload size ceiling.
func New(
	gateway Gateway,
	store breeds.Store,
	logger *slog.Logger,
	maxUploadSize int64,
) System {
	return &service{
		gateway:       gateway,
		store:         store,
		logger:        logger.With("system", "predictions"),
		maxUploadSize: maxUploadSize,
	}
}

func (s *service) Handler() *Handler {
	return NewHandler(s, s.logger, s.maxUploadSize)
}

func (s *service) Predict(ctx context.Context, upload Upload) (*Result, error) {
	if err := s.validate(upload); err != nil {
		return nil, err
	}

	raw, err := s.gateway.Infer(ctx, upload.Data, upload.ContentType)
	if err != nil {
		return nil, err
	}

	predictions, err := inference.Normalize(raw)
	if err != nil {
		return nil, err
	}

	result, err := s.compose(ctx, predictions)
	if err != nil {
		return nil, err
	}

	s.logger.Info(
		"prediction composed",
		"breed", result.Breed,
		"confidence", result.Confidence,
		"candidates", len(predictions),
	)

	return result, nil
}
