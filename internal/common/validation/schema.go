// internal/common/validation/schema.go
package validation

import (
	"encoding/json"
	"fmt"

	"github.com/xeipuuv/gojsonschema"

	"sales-datagen/internal/models"
)

// ValidationResult reports the outcome of a dataset schema check.
type ValidationResult struct {
	Valid  bool              `json:"valid"`
	Errors []ValidationError `json:"errors,omitempty"`
}

type ValidationError struct {
	Entity  string `json:"entity"`
	Field   string `json:"field"`
	Message string `json:"message"`
}

var stageVisitSchema = map[string]interface{}{
	"type": "object",
	"properties": map[string]interface{}{
		"stage":           map[string]interface{}{"type": "string"},
		"entryOffsetDays": map[string]interface{}{"type": "integer", "minimum": 0},
		"durationDays":    map[string]interface{}{"type": "integer", "minimum": 0},
	},
	"required": []interface{}{"stage", "entryOffsetDays", "durationDays"},
}

// entitySchemas maps each top-level dataset collection to its item schema.
var entitySchemas = map[string]map[string]interface{}{
	"products": {
		"type": "object",
		"properties": map[string]interface{}{
			"id":       map[string]interface{}{"type": "string", "minLength": 1},
			"name":     map[string]interface{}{"type": "string", "minLength": 1},
			"category": map[string]interface{}{"type": "string"},
			"price":    map[string]interface{}{"type": "number", "minimum": 0},
			"features": map[string]interface{}{"type": "array", "items": map[string]interface{}{"type": "string"}},
			"discountTiers": map[string]interface{}{
				"type": "array",
				"items": map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"quantity":           map[string]interface{}{"type": "integer", "minimum": 1},
						"discountPercentage": map[string]interface{}{"type": "number", "minimum": 0, "maximum": 100},
					},
					"required": []interface{}{"quantity", "discountPercentage"},
				},
			},
		},
		"required": []interface{}{"id", "name", "category", "price"},
	},
	"salesPeople": {
		"type": "object",
		"properties": map[string]interface{}{
			"id":        map[string]interface{}{"type": "string", "minLength": 1},
			"firstName": map[string]interface{}{"type": "string", "minLength": 1},
			"lastName":  map[string]interface{}{"type": "string", "minLength": 1},
			"email":     map[string]interface{}{"type": "string", "pattern": "^[^@\\s]+@[^@\\s]+$"},
			"salesMetrics": map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"quotaAttainment":   map[string]interface{}{"type": "number", "minimum": 0},
					"averageDealSize":   map[string]interface{}{"type": "number", "minimum": 0},
					"winRate":           map[string]interface{}{"type": "number", "minimum": 0, "maximum": 1},
					"averageSalesCycle": map[string]interface{}{"type": "integer", "minimum": 1},
				},
				"required": []interface{}{"quotaAttainment", "averageDealSize", "winRate", "averageSalesCycle"},
			},
			"territories": map[string]interface{}{"type": "array", "minItems": 1},
			"expertise":   map[string]interface{}{"type": "array", "minItems": 1},
		},
		"required": []interface{}{"id", "firstName", "lastName", "email", "salesMetrics", "territories", "expertise"},
	},
	"customers": {
		"type": "object",
		"properties": map[string]interface{}{
			"id":      map[string]interface{}{"type": "string", "minLength": 1},
			"company": map[string]interface{}{"type": "string", "minLength": 1},
			"contacts": map[string]interface{}{
				"type": "array", "minItems": 1,
				"items": map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"id":    map[string]interface{}{"type": "string", "minLength": 1},
						"email": map[string]interface{}{"type": "string", "pattern": "^[^@\\s]+@[^@\\s]+$"},
						"role":  map[string]interface{}{"type": "string", "minLength": 1},
					},
					"required": []interface{}{"id", "email", "role"},
				},
			},
			"industry":      map[string]interface{}{"type": "string"},
			"size":          map[string]interface{}{"type": "string", "enum": []interface{}{"small", "medium", "enterprise"}},
			"status":        map[string]interface{}{"type": "string", "enum": []interface{}{"lead", "prospect", "qualified", "customer"}},
			"annualRevenue": map[string]interface{}{"type": "integer", "minimum": 0},
			"employeeCount": map[string]interface{}{"type": "integer", "minimum": 1},
		},
		"required": []interface{}{"id", "company", "contacts", "industry", "size", "status"},
	},
	"opportunities": {
		"type": "object",
		"properties": map[string]interface{}{
			"id":           map[string]interface{}{"type": "string", "minLength": 1},
			"customerId":   map[string]interface{}{"type": "string", "minLength": 1},
			"salesPersonId": map[string]interface{}{"type": "string", "minLength": 1},
			"products": map[string]interface{}{
				"type": "array", "minItems": 1,
				"items": map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"productId":       map[string]interface{}{"type": "string", "minLength": 1},
						"quantity":        map[string]interface{}{"type": "integer", "minimum": 1},
						"appliedDiscount": map[string]interface{}{"type": "number", "minimum": 0, "maximum": 1},
					},
					"required": []interface{}{"productId", "quantity"},
				},
			},
			"status": map[string]interface{}{
				"type": "string",
				"enum": []interface{}{"identified", "qualified", "proposalSent", "negotiating", "won", "lost"},
			},
			"value":       map[string]interface{}{"type": "number", "minimum": 0},
			"probability": map[string]interface{}{"type": "number", "minimum": 0, "maximum": 1},
			"stageHistory": map[string]interface{}{
				"type": "array", "minItems": 1, "items": stageVisitSchema,
			},
		},
		"required": []interface{}{"id", "customerId", "salesPersonId", "products", "status", "stageHistory"},
	},
	"interactions": {
		"type": "object",
		"properties": map[string]interface{}{
			"id":            map[string]interface{}{"type": "string", "minLength": 1},
			"opportunityId": map[string]interface{}{"type": "string", "minLength": 1},
			"customerId":    map[string]interface{}{"type": "string", "minLength": 1},
			"salesPersonId": map[string]interface{}{"type": "string", "minLength": 1},
			"type": map[string]interface{}{
				"type": "string",
				"enum": []interface{}{"call", "email", "meeting", "demo", "proposal"},
			},
			"duration": map[string]interface{}{"type": "integer", "minimum": 1},
			"sentiment": map[string]interface{}{
				"type": "string",
				"enum": []interface{}{"positive", "neutral", "negative"},
			},
			"topics": map[string]interface{}{"type": "array", "minItems": 1},
		},
		"required": []interface{}{"id", "opportunityId", "customerId", "salesPersonId", "type", "sentiment"},
	},
}

// ValidateDataset checks every record in the dataset against its entity schema.
func ValidateDataset(ds *models.Dataset) (*ValidationResult, error) {
	raw, err := json.Marshal(ds)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal dataset for validation: %w", err)
	}

	var doc map[string]interface{}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode dataset for validation: %w", err)
	}

	result := &ValidationResult{Valid: true}

	for entity, itemSchema := range entitySchemas {
		records, ok := doc[entity].([]interface{})
		if !ok {
			continue
		}

		schemaLoader := gojsonschema.NewGoLoader(itemSchema)
		for i, record := range records {
			documentLoader := gojsonschema.NewGoLoader(record)

			res, err := gojsonschema.Validate(schemaLoader, documentLoader)
			if err != nil {
				return nil, fmt.Errorf("validation error on %s[%d]: %w", entity, i, err)
			}

			for _, desc := range res.Errors() {
				result.Valid = false
				result.Errors = append(result.Errors, ValidationError{
					Entity:  fmt.Sprintf("%s[%d]", entity, i),
					Field:   desc.Field(),
					Message: desc.Description(),
				})
			}
		}
	}

	return result, nil
}
