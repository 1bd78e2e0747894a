// internal/search/http.go
package search

import (
	"encoding/json"
	"net/http"

	commonerrors "trimly-search/internal/common/errors"
	"trimly-search/internal/common/logger"
	"trimly-search/internal/models"
)

// CatalogProvider hands the handler a consistent catalog snapshot per
// request.
type CatalogProvider interface {
	Snapshot() []models.ShopCatalogEntry
}

// HTTPHandler exposes the search service over HTTP.
type HTTPHandler struct {
	service *Service
	catalog CatalogProvider
	errors  *commonerrors.ErrorHandler
	logger  logger.Logger
}

func NewHTTPHandler(service *Service, catalog CatalogProvider, log logger.Logger) *HTTPHandler {
	return &HTTPHandler{
		service: service,
		catalog: catalog,
		errors:  commonerrors.NewErrorHandler(log),
		logger:  log.WithFields(map[string]interface{}{"component": "search-http"}),
	}
}

// Search handles POST /api/search. Interpreter failures never surface here;
// the only client-visible errors are malformed payloads.
func (h *HTTPHandler) Search(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req Request
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		h.errors.WriteHTTPError(w, commonerrors.NewInvalidFilterFormatError(err.Error()))
		return
	}

	if tier := req.ManualFilters.PriceTier; tier != "" && !models.ValidPriceTiers[tier] {
		h.errors.WriteHTTPError(w, commonerrors.NewInvalidFilterFormatError(
			"unknown price tier: "+string(tier)))
		return
	}
	if min := req.ManualFilters.RatingMin; min != nil && (*min < 0 || *min > 5) {
		h.errors.WriteHTTPError(w, commonerrors.NewInvalidFilterFormatError(
			"rating minimum out of range"))
		return
	}

	resp := h.service.Search(r.Context(), h.catalog.Snapshot(), req.Query, req.ManualFilters)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.logger.WithError(err).Error("failed to encode search response", map[string]interface{}{
			"searchId": resp.SearchID,
		})
	}
}
