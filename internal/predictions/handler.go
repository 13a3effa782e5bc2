package predictions

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/innovyom/breedscan/pkg/handlers"
	"github.com/innovyom/breedscan/pkg/routes"
)

// multipart framing allowance on top of the image size ceiling.
const formOverhead = 64 * 1024

// Handler exposes the prediction pipeline over HTTP.
type Handler struct {
	sys           System
	logger        *slog.Logger
	maxUploadSize int64
}

// NewHandler creates a Handler with the given pipeline and upload ceiling.
func NewHandler(sys System, logger *slog.Logger, maxUploadSize int64) *Handler {
	return &Handler{
		sys:           sys,
		logger:        logger.With("handler", "predictions"),
		maxUploadSize: maxUploadSize,
	}
}

// Routes returns the route group definition for prediction endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/predictions",
		Routes: []routes.Route{
			{Method: "POST", Pattern: "", Handler: h.Create},
		},
	}
}

// Create accepts a multipart image upload and returns the composed
// prediction result.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize+formOverhead)

	if err := r.ParseMultipartForm(h.maxUploadSize); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			handlers.RespondError(w, h.logger, http.StatusRequestEntityTooLarge, ErrTooLarge)
			return
		}
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrMissingFile)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrMissingFile)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrMissingFile)
		return
	}

	upload := Upload{
		Data:        data,
		ContentType: declaredContentType(header.Header.Get("Content-Type")),
	}

	result, err := h.sys.Predict(r.Context(), upload)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

func declaredContentType(header string) string {
	return strings.TrimSpace(header)
}
