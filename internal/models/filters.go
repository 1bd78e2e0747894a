// internal/models/filters.go
package models

// ParsedFilters is the structured output of free-text query interpretation.
// Every field is optional; absence means that dimension is unconstrained.
// The payload comes from an external model call and must be treated as
// untrusted until validated.
type ParsedFilters struct {
	ServiceKeywords  []string        `json:"serviceKeywords,omitempty"`
	LocationKeywords []string        `json:"locationKeywords,omitempty"`
	Price            *PriceFilter    `json:"price,omitempty"`
	DateTime         *DateTimeFilter `json:"dateTime,omitempty"`
	Rating           *RatingFilter   `json:"rating,omitempty"`
	OpenNow          *bool           `json:"openNow,omitempty"`
	OtherFeatures    []string        `json:"otherFeatures,omitempty"`
}

// PriceFilter carries numeric bounds and a qualitative descriptor. Min and
// Max are independent bounds; min > max is tolerated, not rejected.
type PriceFilter struct {
	Min        *float64 `json:"min,omitempty"`
	Max        *float64 `json:"max,omitempty"`
	Descriptor string   `json:"descriptor,omitempty"` // under, over, around, exact, cheap, expensive, any
}

// DateTimeFilter is carried through but not evaluated against the catalog.
// The catalog has no live calendar; booking flows consume it downstream.
type DateTimeFilter struct {
	Date      string `json:"date,omitempty"`
	Time      string `json:"time,omitempty"`
	DayOfWeek string `json:"dayOfWeek,omitempty"`
}

type RatingFilter struct {
	Min *float64 `json:"min,omitempty"`
}

// IsEmpty reports whether no dimension carries any constraint.
func (p ParsedFilters) IsEmpty() bool {
	return len(p.ServiceKeywords) == 0 &&
		len(p.LocationKeywords) == 0 &&
		p.Price == nil &&
		p.DateTime == nil &&
		p.Rating == nil &&
		p.OpenNow == nil &&
		len(p.OtherFeatures) == 0
}

// ManualFilters are explicit user-chosen constraints, each a single concrete
// value rather than a keyword list.
type ManualFilters struct {
	ServiceName string    `json:"serviceName,omitempty"` // exact, case-sensitive service name
	RatingMin   *float64  `json:"ratingMin,omitempty"`
	PriceTier   PriceTier `json:"priceTier,omitempty"`
}

// IsEmpty reports whether no manual constraint is set.
func (m ManualFilters) IsEmpty() bool {
	return m.ServiceName == "" && m.RatingMin == nil && m.PriceTier == ""
}
