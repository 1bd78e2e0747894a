// internal/search/interpreter/schema.go
package interpreter

import (
	"encoding/json"
	"fmt"
	"strings"

	"trimly-search/internal/models"

	"github.com/xeipuuv/gojsonschema"
)

// responseSchema describes the shape the GenAI service must return. Known
// fields are type-checked; unknown fields are ignored rather than rejected,
// since the model is free to add commentary we do not consume.
var responseSchema = map[string]interface{}{
	"type":     "object",
	"required": []string{"parsedFilters"},
	"properties": map[string]interface{}{
		"parsedFilters": map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"serviceKeywords":  stringArraySchema,
				"locationKeywords": stringArraySchema,
				"price": map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"min":        map[string]interface{}{"type": "number"},
						"max":        map[string]interface{}{"type": "number"},
						"descriptor": map[string]interface{}{"type": "string"},
					},
				},
				"dateTime": map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"date":      map[string]interface{}{"type": "string"},
						"time":      map[string]interface{}{"type": "string"},
						"dayOfWeek": map[string]interface{}{"type": "string"},
					},
				},
				"rating": map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"min": map[string]interface{}{"type": "number"},
					},
				},
				"openNow":       map[string]interface{}{"type": "boolean"},
				"otherFeatures": stringArraySchema,
			},
		},
		"searchSummary":       map[string]interface{}{"type": "string"},
		"clarificationNeeded": map[string]interface{}{"type": "string"},
	},
}

var stringArraySchema = map[string]interface{}{
	"type":  "array",
	"items": map[string]interface{}{"type": "string"},
}

// validatePayload checks the raw response against the schema.
func validatePayload(raw map[string]interface{}) error {
	schemaLoader := gojsonschema.NewGoLoader(responseSchema)
	documentLoader := gojsonschema.NewGoLoader(raw)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("schema validation error: %w", err)
	}

	if !result.Valid() {
		var details []string
		for _, e := range result.Errors() {
			details = append(details, e.String())
		}
		return fmt.Errorf("invalid payload: %s", strings.Join(details, "; "))
	}

	return nil
}

// coerceResult validates and converts the untrusted response map into a
// typed Result, dropping blank keywords and duplicate entries on the way.
func coerceResult(raw map[string]interface{}) (*Result, error) {
	if err := validatePayload(raw); err != nil {
		return nil, err
	}

	// Round-trip through JSON: types are already schema-checked, and extra
	// fields fall away on the typed decode.
	buf, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("marshal payload: %w", err)
	}

	var result Result
	if err := json.Unmarshal(buf, &result); err != nil {
		return nil, fmt.Errorf("decode payload: %w", err)
	}

	result.ParsedFilters = sanitizeFilters(result.ParsedFilters)
	result.SearchSummary = strings.TrimSpace(result.SearchSummary)
	result.ClarificationNeeded = strings.TrimSpace(result.ClarificationNeeded)

	return &result, nil
}

func sanitizeFilters(f models.ParsedFilters) models.ParsedFilters {
	f.ServiceKeywords = sanitizeKeywords(f.ServiceKeywords)
	f.LocationKeywords = sanitizeKeywords(f.LocationKeywords)
	f.OtherFeatures = sanitizeKeywords(f.OtherFeatures)
	return f
}

// sanitizeKeywords trims, drops empties, and deduplicates while keeping the
// interpreter's ordering.
func sanitizeKeywords(in []string) []string {
	if len(in) == 0 {
		return nil
	}

	seen := make(map[string]bool)
	out := make([]string, 0, len(in))
	for _, s := range in {
		trimmed := strings.TrimSpace(s)
		if trimmed == "" || seen[trimmed] {
			continue
		}
		out = append(out, trimmed)
		seen[trimmed] = true
	}

	if len(out) == 0 {
		return nil
	}
	return out
}
