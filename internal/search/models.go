// internal/search/models.go
package search

import "trimly-search/internal/models"

// Request is one search invocation: optional free text plus optional manual
// filter selections. Both may be empty, which returns the full catalog.
type Request struct {
	Query         string               `json:"query,omitempty"`
	ManualFilters models.ManualFilters `json:"manualFilters,omitempty"`
}

// Response is the caller-facing outcome of one search. Zero results is a
// valid outcome, distinct from failure; AISearchFailed marks the degraded
// manual-only path after an interpreter failure.
type Response struct {
	SearchID            string                    `json:"searchId"`
	Results             []models.ShopCatalogEntry `json:"results"`
	Summary             string                    `json:"summary"`
	ClarificationNeeded string                    `json:"clarificationNeeded,omitempty"`
	AISearchFailed      bool                      `json:"aiSearchFailed,omitempty"`
}
