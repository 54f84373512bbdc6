package api

import (
	"embed"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/newshub/newshub/internal/api/shared"
)

//go:embed endpoints.json
var endpointsFS embed.FS

// CatalogHandler serves the endpoint catalog from the embedded static
// document. The catalog is parsed once at construction; the handler never
// touches storage.
type CatalogHandler struct {
	catalog json.RawMessage
	logger  *slog.Logger
}

// NewCatalogHandler creates a CatalogHandler from the embedded
// endpoints.json document.
func NewCatalogHandler(log *slog.Logger) (*CatalogHandler, error) {
	if log == nil {
		log = slog.Default()
	}

	raw, err := endpointsFS.ReadFile("endpoints.json")
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded endpoint catalog: %w", err)
	}
	if !json.Valid(raw) {
		return nil, fmt.Errorf("embedded endpoint catalog is not valid JSON")
	}

	return &CatalogHandler{
		catalog: json.RawMessage(raw),
		logger:  log.With(slog.String("component", "catalog_handler")),
	}, nil
}

// GetCatalog handles GET /api requests.
func (h *CatalogHandler) GetCatalog(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, map[string]json.RawMessage{"description": h.catalog})
}
