// internal/search/engine/criteria_test.go
package engine

import (
	"testing"

	"trimly-search/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestMergeCriteria_KeywordDimensionsAreAIOnly(t *testing.T) {
	ai := models.ParsedFilters{
		ServiceKeywords:  []string{"fade", "beard"},
		LocationKeywords: []string{"manchester"},
	}
	manual := models.ManualFilters{ServiceName: "Skin Fade"}

	c := MergeCriteria(ai, manual)

	assert.Equal(t, []string{"fade", "beard"}, c.ServiceKeywords)
	assert.Equal(t, []string{"manchester"}, c.LocationKeywords)
	assert.Equal(t, "Skin Fade", c.ManualServiceName)
}

func TestMergeCriteria_ManualRatingDropsAIRating(t *testing.T) {
	ai := models.ParsedFilters{Rating: &models.RatingFilter{Min: floatPtr(3.0)}}
	manual := models.ManualFilters{RatingMin: floatPtr(4.5)}

	c := MergeCriteria(ai, manual)

	assert.Nil(t, c.RatingMin, "AI rating must be dropped, not intersected")
	assert.Equal(t, 4.5, *c.ManualRatingMin)
}

func TestMergeCriteria_ManualTierDropsDescriptorButKeepsBounds(t *testing.T) {
	ai := models.ParsedFilters{
		Price: &models.PriceFilter{
			Min:        floatPtr(10),
			Max:        floatPtr(60),
			Descriptor: "cheap",
		},
	}
	manual := models.ManualFilters{PriceTier: models.PriceTierPremium}

	c := MergeCriteria(ai, manual)

	assert.Empty(t, c.PriceDescriptor)
	assert.Equal(t, 10.0, *c.PriceMin)
	assert.Equal(t, 60.0, *c.PriceMax)
	assert.Equal(t, models.PriceTierPremium, c.ManualPriceTier)
}

func TestMergeCriteria_NormalizesDescriptor(t *testing.T) {
	ai := models.ParsedFilters{Price: &models.PriceFilter{Descriptor: "  Cheap "}}

	c := MergeCriteria(ai, models.ManualFilters{})

	assert.Equal(t, "cheap", c.PriceDescriptor)
}

func TestMergeCriteria_PassThroughFieldsSurvive(t *testing.T) {
	open := true
	ai := models.ParsedFilters{
		DateTime:      &models.DateTimeFilter{DayOfWeek: "Saturday"},
		OpenNow:       &open,
		OtherFeatures: []string{"parking"},
	}

	c := MergeCriteria(ai, models.ManualFilters{})

	assert.Equal(t, "Saturday", c.DateTime.DayOfWeek)
	assert.True(t, *c.OpenNow)
	assert.Equal(t, []string{"parking"}, c.OtherFeatures)
}

func TestMergeCriteria_EmptyInputsProduceEmptyCriteria(t *testing.T) {
	c := MergeCriteria(models.ParsedFilters{}, models.ManualFilters{})

	assert.True(t, c.IsEmpty())
}

// Manual precedence property: evaluating merged criteria must equal
// evaluating with the AI constraint removed and only the manual one applied.
func TestManualPrecedence_RatingProperty(t *testing.T) {
	catalog := testCatalog()

	both := MergeCriteria(
		models.ParsedFilters{Rating: &models.RatingFilter{Min: floatPtr(3.0)}},
		models.ManualFilters{RatingMin: floatPtr(4.5)},
	)
	manualOnly := MergeCriteria(
		models.ParsedFilters{},
		models.ManualFilters{RatingMin: floatPtr(4.5)},
	)

	assert.Equal(t, Evaluate(catalog, manualOnly), Evaluate(catalog, both))
	assert.Equal(t, []string{"shop-b"}, shopIDs(Evaluate(catalog, both)))
}

func TestManualPrecedence_PriceTierProperty(t *testing.T) {
	catalog := testCatalog()

	both := MergeCriteria(
		models.ParsedFilters{Price: &models.PriceFilter{Descriptor: "cheap"}},
		models.ManualFilters{PriceTier: models.PriceTierPremium},
	)
	manualOnly := MergeCriteria(
		models.ParsedFilters{},
		models.ManualFilters{PriceTier: models.PriceTierPremium},
	)

	assert.Equal(t, Evaluate(catalog, manualOnly), Evaluate(catalog, both))
	assert.Equal(t, []string{"shop-b"}, shopIDs(Evaluate(catalog, both)))
}
