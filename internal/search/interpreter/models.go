// internal/search/interpreter/models.go
package interpreter

import "trimly-search/internal/models"

// Result is the validated outcome of one free-text interpretation call.
type Result struct {
	// ParsedFilters may be empty, never trusted until schema-validated.
	ParsedFilters models.ParsedFilters `json:"parsedFilters"`

	// SearchSummary restates what will be searched, in the user's language.
	SearchSummary string `json:"searchSummary,omitempty"`

	// ClarificationNeeded, when non-empty, means the query was too ambiguous
	// to act on. Callers must not apply any filter narrowing from this result.
	ClarificationNeeded string `json:"clarificationNeeded,omitempty"`
}

// NeedsClarification reports whether the interpreter punted back to the user.
func (r *Result) NeedsClarification() bool {
	return r.ClarificationNeeded != ""
}
