// internal/search/engine/evaluate_test.go
package engine

import (
	"testing"

	"trimly-search/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ==========================
// Test Helper Functions
// ==========================

func floatPtr(v float64) *float64 {
	return &v
}

func shopIDs(shops []models.ShopCatalogEntry) []string {
	ids := make([]string, 0, len(shops))
	for _, s := range shops {
		ids = append(ids, s.ID)
	}
	return ids
}

func testCatalog() []models.ShopCatalogEntry {
	return []models.ShopCatalogEntry{
		{
			ID:        "shop-a",
			Name:      "Fade Factory",
			Address:   "12 King Street, Manchester",
			Rating:    floatPtr(4.0),
			PriceTier: models.PriceTierMid,
			Services: []models.ServiceOffering{
				{ID: "svc-a1", Name: "Skin Fade", Price: 25, DurationMinutes: 30},
				{ID: "svc-a2", Name: "Beard Trim", Price: 15, DurationMinutes: 15, Description: "Hot towel finish"},
			},
			Description: "Modern barbershop specialising in fades",
		},
		{
			ID:        "shop-b",
			Name:      "The Gentlemen's Room",
			Address:   "48 Deansgate, Manchester",
			Rating:    floatPtr(4.8),
			PriceTier: models.PriceTierPremium,
			Services: []models.ServiceOffering{
				{ID: "svc-b1", Name: "Executive Cut", Price: 80, DurationMinutes: 60},
			},
			Description: "Premium grooming lounge",
		},
		{
			ID:          "shop-c",
			Name:        "Pop-Up Cuts",
			Address:     "Unit 3, Market Hall, Leeds",
			Rating:      nil,
			PriceTier:   models.PriceTierBudget,
			Services:    []models.ServiceOffering{},
			Description: "Walk-in cut specialists, no bookings needed",
		},
	}
}

// ==========================
// Predicate Tests
// ==========================

func TestEvaluate_NoCriteria_ReturnsFullCatalog(t *testing.T) {
	catalog := testCatalog()

	results := Evaluate(catalog, SearchCriteria{})

	assert.Equal(t, shopIDs(catalog), shopIDs(results))
}

func TestEvaluate_PriceDescriptor(t *testing.T) {
	tests := []struct {
		name        string
		descriptor  string
		expectedIDs []string
	}{
		{
			// shop-a is $$ but its 25 service is under the cheap ceiling;
			// shop-c qualifies on tier alone despite having no services.
			name:        "cheap matches budget tier or sub-30 service",
			descriptor:  "cheap",
			expectedIDs: []string{"shop-a", "shop-c"},
		},
		{
			name:        "under behaves like cheap",
			descriptor:  "under",
			expectedIDs: []string{"shop-a", "shop-c"},
		},
		{
			name:        "expensive matches premium tier or 70-plus service",
			descriptor:  "expensive",
			expectedIDs: []string{"shop-b"},
		},
		{
			name:        "over behaves like expensive",
			descriptor:  "over",
			expectedIDs: []string{"shop-b"},
		},
		{
			name:        "around is informational only",
			descriptor:  "around",
			expectedIDs: []string{"shop-a", "shop-b", "shop-c"},
		},
		{
			name:        "unknown descriptor imposes no predicate",
			descriptor:  "bargainous",
			expectedIDs: []string{"shop-a", "shop-b", "shop-c"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results := Evaluate(testCatalog(), SearchCriteria{PriceDescriptor: tt.descriptor})
			assert.Equal(t, tt.expectedIDs, shopIDs(results))
		})
	}
}

func TestEvaluate_ServiceKeywords(t *testing.T) {
	tests := []struct {
		name        string
		keywords    []string
		expectedIDs []string
	}{
		{
			name:        "case-insensitive match on service name",
			keywords:    []string{"FADE"},
			expectedIDs: []string{"shop-a"},
		},
		{
			name:        "match on service description",
			keywords:    []string{"hot towel"},
			expectedIDs: []string{"shop-a"},
		},
		{
			name:        "shop description matches even with zero services",
			keywords:    []string{"walk-in"},
			expectedIDs: []string{"shop-c"},
		},
		{
			name:        "any keyword is enough",
			keywords:    []string{"nonexistent", "grooming"},
			expectedIDs: []string{"shop-b"},
		},
		{
			name:        "no match excludes everything",
			keywords:    []string{"manicure"},
			expectedIDs: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results := Evaluate(testCatalog(), SearchCriteria{ServiceKeywords: tt.keywords})
			assert.Equal(t, tt.expectedIDs, shopIDs(results))
		})
	}
}

func TestEvaluate_LocationKeywords(t *testing.T) {
	results := Evaluate(testCatalog(), SearchCriteria{LocationKeywords: []string{"manchester"}})
	assert.Equal(t, []string{"shop-a", "shop-b"}, shopIDs(results))

	results = Evaluate(testCatalog(), SearchCriteria{LocationKeywords: []string{"LEEDS"}})
	assert.Equal(t, []string{"shop-c"}, shopIDs(results))
}

func TestEvaluate_PriceBounds(t *testing.T) {
	tests := []struct {
		name        string
		criteria    SearchCriteria
		expectedIDs []string
	}{
		{
			name:        "max retains shops with at least one affordable service",
			criteria:    SearchCriteria{PriceMax: floatPtr(30)},
			expectedIDs: []string{"shop-a"},
		},
		{
			name:        "min retains shops with at least one service above it",
			criteria:    SearchCriteria{PriceMin: floatPtr(50)},
			expectedIDs: []string{"shop-b"},
		},
		{
			name:        "min greater than max is tolerated as independent bounds",
			criteria:    SearchCriteria{PriceMin: floatPtr(20), PriceMax: floatPtr(10)},
			expectedIDs: []string{}, // shop-a fails max, shop-b fails both, shop-c has no services
		},
		{
			name:        "negative max simply matches nothing",
			criteria:    SearchCriteria{PriceMax: floatPtr(-5)},
			expectedIDs: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results := Evaluate(testCatalog(), tt.criteria)
			assert.Equal(t, tt.expectedIDs, shopIDs(results))
		})
	}
}

func TestEvaluate_RatingFailsClosedWithoutRating(t *testing.T) {
	// shop-c has no rating and must fail both rating predicates.
	results := Evaluate(testCatalog(), SearchCriteria{RatingMin: floatPtr(0)})
	assert.Equal(t, []string{"shop-a", "shop-b"}, shopIDs(results))

	results = Evaluate(testCatalog(), SearchCriteria{ManualRatingMin: floatPtr(4.5)})
	assert.Equal(t, []string{"shop-b"}, shopIDs(results))
}

func TestEvaluate_ManualServiceName(t *testing.T) {
	tests := []struct {
		name        string
		serviceName string
		expectedIDs []string
	}{
		{
			name:        "exact match retains",
			serviceName: "Skin Fade",
			expectedIDs: []string{"shop-a"},
		},
		{
			name:        "match is case-sensitive",
			serviceName: "skin fade",
			expectedIDs: []string{},
		},
		{
			name:        "substring is not enough",
			serviceName: "Fade",
			expectedIDs: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results := Evaluate(testCatalog(), SearchCriteria{ManualServiceName: tt.serviceName})
			assert.Equal(t, tt.expectedIDs, shopIDs(results))
		})
	}
}

func TestEvaluate_ManualPriceTier(t *testing.T) {
	results := Evaluate(testCatalog(), SearchCriteria{ManualPriceTier: models.PriceTierBudget})
	assert.Equal(t, []string{"shop-c"}, shopIDs(results))
}

func TestEvaluate_EmptyServiceList_FailsServiceDependentPredicates(t *testing.T) {
	// shop-c has services = [] and must never pass price or service-name
	// predicates, regardless of its description.
	criteria := []SearchCriteria{
		{PriceMax: floatPtr(1000)},
		{PriceMin: floatPtr(0)},
		{ManualServiceName: "Skin Fade"},
	}
	for _, c := range criteria {
		results := Evaluate(testCatalog(), c)
		assert.NotContains(t, shopIDs(results), "shop-c")
	}

	// The keyword predicate is the explicit exception: the shop's own
	// description is a valid match target even with zero services.
	results := Evaluate(testCatalog(), SearchCriteria{ServiceKeywords: []string{"cut"}})
	assert.Contains(t, shopIDs(results), "shop-c")
}

// ==========================
// Property Tests
// ==========================

func TestEvaluate_Idempotent(t *testing.T) {
	catalog := testCatalog()
	criteria := SearchCriteria{
		ServiceKeywords:  []string{"fade", "cut"},
		LocationKeywords: []string{"manchester"},
		PriceMax:         floatPtr(100),
		RatingMin:        floatPtr(3.5),
	}

	first := Evaluate(catalog, criteria)
	second := Evaluate(catalog, criteria)

	assert.Equal(t, first, second)
}

func TestEvaluate_PreservesCatalogOrder(t *testing.T) {
	catalog := testCatalog()

	results := Evaluate(catalog, SearchCriteria{LocationKeywords: []string{"e"}})

	// Output must be a subsequence of the catalog in original order.
	idx := 0
	for _, r := range results {
		found := false
		for ; idx < len(catalog); idx++ {
			if catalog[idx].ID == r.ID {
				found = true
				idx++
				break
			}
		}
		require.True(t, found, "result %s out of catalog order", r.ID)
	}
}

func TestEvaluate_DoesNotMutateCatalog(t *testing.T) {
	catalog := testCatalog()
	want := testCatalog()

	Evaluate(catalog, SearchCriteria{ServiceKeywords: []string{"fade"}})

	assert.Equal(t, want, catalog)
}

func TestEvaluate_PassThroughFieldsImposeNoPredicate(t *testing.T) {
	open := true
	criteria := SearchCriteria{
		DateTime:      &models.DateTimeFilter{Date: "2026-09-05", Time: "14:00", DayOfWeek: "Saturday"},
		OpenNow:       &open,
		OtherFeatures: []string{"parking", "card payments"},
	}

	results := Evaluate(testCatalog(), criteria)

	assert.Len(t, results, 3)
}
