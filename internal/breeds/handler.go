package breeds

import (
	"log/slog"
	"net/http"

	"github.com/innovyom/breedscan/pkg/handlers"
	"github.com/innovyom/breedscan/pkg/routes"
)

// Handler exposes the read-only breed catalog over HTTP.
type Handler struct {
	store  Store
	logger *slog.Logger
}

// NewHandler creates a Handler backed by the given store.
func NewHandler(store Store, logger *slog.Logger) *Handler {
	return &Handler{
		store:  store,
		logger: logger.With("handler", "breeds"),
	}
}

// Routes returns the route group definition for breed catalog endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/breeds",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: h.List},
			{Method: "GET", Pattern: "/{name}", Handler: h.Find},
		},
	}
}

// List returns every breed record in the catalog.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	records, err := h.store.List(r.Context())
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, records)
}

// Find returns a single breed record by its exact name.
func (h *Handler) Find(w http.ResponseWriter, r *http.Request) {
	record, err := h.store.Find(r.Context(), r.PathValue("name"))
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, record)
}
