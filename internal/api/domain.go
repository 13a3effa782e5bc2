package api

import (
	"github.com/innovyom/breedscan/internal/breeds"
	"github.com/innovyom/breedscan/internal/predictions"
)

// Domain holds all domain systems that comprise the API.
type Domain struct {
	Predictions predictions.System
	Breeds      *breeds.Handler
}

// NewDomain creates all domain systems from the API runtime.
func NewDomain(runtime *Runtime) *Domain {
	predictionsSystem := predictions.New(
		runtime.Inference,
		runtime.Breeds,
		runtime.Logger,
		runtime.MaxUploadSize,
	)

	return &Domain{
		Predictions: predictionsSystem,
		Breeds:      breeds.NewHandler(runtime.Breeds, runtime.Logger),
	}
}
