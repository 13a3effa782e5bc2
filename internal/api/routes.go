package api

import (
	"net/http"

	"github.com/innovyom/breedscan/pkg/routes"
)

func registerRoutes(mux *http.ServeMux, domain *Domain) {
	routes.Register(
		mux,
		domain.Predictions.Handler().Routes(),
		domain.Breeds.Routes(),
	)
}
