// internal/models/shop.go
package models

// PriceTier is the ordered shop price band shown in listings.
type PriceTier string

const (
	PriceTierBudget  PriceTier = "$"
	PriceTierMid     PriceTier = "$$"
	PriceTierPremium PriceTier = "$$$"
)

// ValidPriceTiers lists the tiers accepted from manual filter input.
var ValidPriceTiers = map[PriceTier]bool{
	PriceTierBudget:  true,
	PriceTierMid:     true,
	PriceTierPremium: true,
}

// ShopCatalogEntry is a read-only snapshot of a bookable shop. The search
// engine never mutates it; the catalog store owns its lifecycle.
type ShopCatalogEntry struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Address     string            `json:"address"`
	Rating      *float64          `json:"rating,omitempty"`    // 0-5, nil when the shop has no reviews yet
	PriceTier   PriceTier         `json:"priceTier,omitempty"` // empty when unclassified
	Services    []ServiceOffering `json:"services"`
	Description string            `json:"description"`
}

// ServiceOffering is a single bookable service. Immutable within one search.
type ServiceOffering struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Price           float64 `json:"price"`
	DurationMinutes int     `json:"durationMinutes"`
	Description     string  `json:"description,omitempty"`
}
