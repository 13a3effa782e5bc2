package breeds_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/innovyom/breedscan/internal/breeds"
	"github.com/innovyom/breedscan/pkg/routes"
)

func newBreedsMux(t *testing.T) *http.ServeMux {
	t.Helper()

	store, err := breeds.NewMemoryStore(breeds.DefaultCatalog())
	if err != nil {
		t.Fatalf("build store: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	mux := http.NewServeMux()
	routes.Register(mux, breeds.NewHandler(store, logger).Routes())
	return mux
}

func TestHandlerList(t *testing.T) {
	mux := newBreedsMux(t)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest("GET", "/breeds", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", rec.Code)
	}

	var records []breeds.Breed
	if err := json.NewDecoder(rec.Body).Decode(&records); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if len(records) != 4 {
		t.Errorf("record count: got %d, want 4", len(records))
	}
}

func TestHandlerFind(t *testing.T) {
	mux := newBreedsMux(t)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest("GET", "/breeds/Gir", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", rec.Code)
	}

	var record breeds.Breed
	if err := json.NewDecoder(rec.Body).Decode(&record); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if record.Name != "Gir" {
		t.Errorf("name: got %q, want Gir", record.Name)
	}
}

func TestHandlerFindUnknown(t *testing.T) {
	mux := newBreedsMux(t)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest("GET", "/breeds/Jersey", nil))

	if rec.Code != http.StatusNotFound {
		t.Errorf("status: got %d, want 404", rec.Code)
	}
}
