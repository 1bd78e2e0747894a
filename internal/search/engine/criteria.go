// internal/search/engine/criteria.go
package engine

import (
	"strings"

	"trimly-search/internal/models"
)

// SearchCriteria is the merged, precedence-resolved constraint set the
// engine evaluates. AI-derived and manual constraints are kept in separate
// fields so the mutually-exclusive pairs stay explicit.
type SearchCriteria struct {
	// AI-derived keyword dimensions (no manual equivalent).
	ServiceKeywords  []string
	LocationKeywords []string

	// AI-derived numeric price bounds, always independent predicates.
	PriceMin *float64
	PriceMax *float64

	// PriceDescriptor is dropped entirely when a manual price tier is set.
	PriceDescriptor string

	// RatingMin is the AI-derived minimum, dropped when ManualRatingMin is set.
	RatingMin *float64

	// Manual constraints. ManualServiceName is an exact, case-sensitive match.
	ManualServiceName string
	ManualRatingMin   *float64
	ManualPriceTier   models.PriceTier

	// Carried through for downstream consumers, never evaluated here. The
	// catalog has no calendar or feature-flag data.
	DateTime      *models.DateTimeFilter
	OpenNow       *bool
	OtherFeatures []string
}

// IsEmpty reports whether the criteria impose no predicate at all.
func (c SearchCriteria) IsEmpty() bool {
	return len(c.ServiceKeywords) == 0 &&
		len(c.LocationKeywords) == 0 &&
		c.PriceMin == nil &&
		c.PriceMax == nil &&
		c.PriceDescriptor == "" &&
		c.RatingMin == nil &&
		c.ManualServiceName == "" &&
		c.ManualRatingMin == nil &&
		c.ManualPriceTier == ""
}

// MergeCriteria combines AI-derived filters with explicit manual filters.
// For any dimension present in both, the manual value takes exclusive
// precedence and the AI constraint is dropped, never intersected:
//
//	manual ratingMin  -> AI rating.min dropped
//	manual priceTier  -> AI price descriptor dropped (numeric bounds kept)
//
// The manual service name has no AI equivalent and is ANDed independently.
func MergeCriteria(ai models.ParsedFilters, manual models.ManualFilters) SearchCriteria {
	c := SearchCriteria{
		ServiceKeywords:   ai.ServiceKeywords,
		LocationKeywords:  ai.LocationKeywords,
		DateTime:          ai.DateTime,
		OpenNow:           ai.OpenNow,
		OtherFeatures:     ai.OtherFeatures,
		ManualServiceName: manual.ServiceName,
		ManualRatingMin:   manual.RatingMin,
		ManualPriceTier:   manual.PriceTier,
	}

	if ai.Price != nil {
		c.PriceMin = ai.Price.Min
		c.PriceMax = ai.Price.Max
		if manual.PriceTier == "" {
			c.PriceDescriptor = strings.ToLower(strings.TrimSpace(ai.Price.Descriptor))
		}
	}

	if ai.Rating != nil && manual.RatingMin == nil {
		c.RatingMin = ai.Rating.Min
	}

	return c
}
