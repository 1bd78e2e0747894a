// internal/search/summary.go
package search

// Fixed summary fragments. Wording is presentational; the selection logic
// (AI summary vs manual-only vs combined) is part of the search contract.
const (
	summaryUnfiltered   = "Showing all shops"
	summaryManualOnly   = "Manual filters applied"
	summaryAIDefault    = "Showing shops matching your search"
	summaryAIFailed     = "AI search failed; showing results without smart filtering"
	summaryManualSuffix = " · refined with manual filters"
)

// composeSummary picks the caller-facing summary line. The interpreter's own
// restatement wins whenever AI filters were actually applied; a clarification
// or failure falls back to the manual-only wording.
func composeSummary(aiSummary string, aiApplied, aiFailed, manualSet bool) string {
	switch {
	case aiApplied:
		base := aiSummary
		if base == "" {
			base = summaryAIDefault
		}
		if manualSet {
			base += summaryManualSuffix
		}
		return base
	case aiFailed:
		if manualSet {
			return summaryAIFailed + summaryManualSuffix
		}
		return summaryAIFailed
	case manualSet:
		return summaryManualOnly
	default:
		return summaryUnfiltered
	}
}
