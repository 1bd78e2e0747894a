// internal/search/engine/evaluate.go
package engine

import (
	"strings"

	"trimly-search/internal/models"
)

// Service price thresholds backing the qualitative price descriptors.
const (
	cheapServicePriceCeiling   = 30.0
	expensiveServicePriceFloor = 70.0
)

// Evaluate applies the merged criteria to the catalog snapshot and returns
// the retained shops in their original relative order. It is a pure filter:
// no re-ranking, no mutation of catalog or criteria, no hidden state. Every
// predicate is independent and AND-combined; an absent criterion imposes no
// predicate on its dimension.
func Evaluate(catalog []models.ShopCatalogEntry, criteria SearchCriteria) []models.ShopCatalogEntry {
	results := make([]models.ShopCatalogEntry, 0, len(catalog))
	for _, shop := range catalog {
		if retained(shop, criteria) {
			results = append(results, shop)
		}
	}
	return results
}

// retained runs the cheap equality predicates before the substring scans.
// Predicate order never changes the outcome, only the work done per shop.
func retained(shop models.ShopCatalogEntry, c SearchCriteria) bool {
	// Manual price tier: exact tier equality. Mutually exclusive with the
	// descriptor predicate by construction of MergeCriteria.
	if c.ManualPriceTier != "" && shop.PriceTier != c.ManualPriceTier {
		return false
	}

	// Rating predicates fail closed: a shop without a rating never passes,
	// whether the minimum came from the AI or the user.
	if c.ManualRatingMin != nil && !ratingAtLeast(shop, *c.ManualRatingMin) {
		return false
	}
	if c.RatingMin != nil && !ratingAtLeast(shop, *c.RatingMin) {
		return false
	}

	// Manual service name: exact, case-sensitive. A shop with no services
	// cannot satisfy it.
	if c.ManualServiceName != "" && !hasServiceNamed(shop, c.ManualServiceName) {
		return false
	}

	// Numeric price bounds are independent "exists a service" predicates,
	// even when both appear in the same query.
	if c.PriceMax != nil && !hasServicePricedAtMost(shop, *c.PriceMax) {
		return false
	}
	if c.PriceMin != nil && !hasServicePricedAtLeast(shop, *c.PriceMin) {
		return false
	}

	if !matchesPriceDescriptor(shop, c.PriceDescriptor) {
		return false
	}

	if len(c.ServiceKeywords) > 0 && !matchesServiceKeywords(shop, c.ServiceKeywords) {
		return false
	}

	if len(c.LocationKeywords) > 0 && !matchesLocationKeywords(shop, c.LocationKeywords) {
		return false
	}

	return true
}

func ratingAtLeast(shop models.ShopCatalogEntry, min float64) bool {
	return shop.Rating != nil && *shop.Rating >= min
}

func hasServiceNamed(shop models.ShopCatalogEntry, name string) bool {
	for _, svc := range shop.Services {
		if svc.Name == name {
			return true
		}
	}
	return false
}

func hasServicePricedAtMost(shop models.ShopCatalogEntry, max float64) bool {
	for _, svc := range shop.Services {
		if svc.Price <= max {
			return true
		}
	}
	return false
}

func hasServicePricedAtLeast(shop models.ShopCatalogEntry, min float64) bool {
	for _, svc := range shop.Services {
		if svc.Price >= min {
			return true
		}
	}
	return false
}

// matchesPriceDescriptor maps the qualitative descriptors onto the tier and
// service prices. Descriptors outside the two bands (around, exact, any, or
// anything unrecognized) are informational only and impose no predicate.
func matchesPriceDescriptor(shop models.ShopCatalogEntry, descriptor string) bool {
	switch descriptor {
	case "cheap", "under":
		if shop.PriceTier == models.PriceTierBudget {
			return true
		}
		for _, svc := range shop.Services {
			if svc.Price < cheapServicePriceCeiling {
				return true
			}
		}
		return false
	case "expensive", "over":
		if shop.PriceTier == models.PriceTierPremium {
			return true
		}
		for _, svc := range shop.Services {
			if svc.Price > expensiveServicePriceFloor {
				return true
			}
		}
		return false
	default:
		return true
	}
}

// matchesServiceKeywords retains the shop when any keyword substring-matches
// any service name, any service description, or the shop's own description.
// The shop description leg means a shop with zero services can still match.
func matchesServiceKeywords(shop models.ShopCatalogEntry, keywords []string) bool {
	shopDescription := strings.ToLower(shop.Description)
	for _, kw := range keywords {
		needle := strings.ToLower(kw)
		if needle == "" {
			continue
		}
		if strings.Contains(shopDescription, needle) {
			return true
		}
		for _, svc := range shop.Services {
			if strings.Contains(strings.ToLower(svc.Name), needle) ||
				strings.Contains(strings.ToLower(svc.Description), needle) {
				return true
			}
		}
	}
	return false
}

func matchesLocationKeywords(shop models.ShopCatalogEntry, keywords []string) bool {
	address := strings.ToLower(shop.Address)
	for _, kw := range keywords {
		needle := strings.ToLower(kw)
		if needle != "" && strings.Contains(address, needle) {
			return true
		}
	}
	return false
}
