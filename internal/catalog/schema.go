package catalog

// catalogSchema is the JSON Schema a definition document must satisfy
// before structural validation runs. It catches shape problems (wrong
// types, missing fields, unknown question types) with positional error
// messages; cross-field invariants like duplicate IDs stay in
// assessment.Validate.
var catalogSchema = map[string]any{
	"type":                 "object",
	"required":             []any{"questionnaire", "scoring"},
	"additionalProperties": false,
	"properties": map[string]any{
		"questionnaire": map[string]any{
			"type":     "object",
			"required": []any{"id", "title", "sections"},
			"properties": map[string]any{
				"id":                  map[string]any{"type": "string", "minLength": 1},
				"title":               map[string]any{"type": "string"},
				"subtitle":            map[string]any{"type": "string"},
				"description":         map[string]any{"type": "string"},
				"duration":            map[string]any{"type": "string"},
				"what_is":             map[string]any{"type": "string"},
				"typical_careers":     stringArray,
				"who_should_consider": stringArray,
				"sections": map[string]any{
					"type":     "array",
					"minItems": 1,
					"items": map[string]any{
						"type":     "object",
						"required": []any{"id", "questions"},
						"properties": map[string]any{
							"id":          map[string]any{"type": "string", "minLength": 1},
							"title":       map[string]any{"type": "string"},
							"description": map[string]any{"type": "string"},
							"scoreWeight": map[string]any{"type": "number", "minimum": 0},
							"questions": map[string]any{
								"type":     "array",
								"minItems": 1,
								"items": map[string]any{
									"type":     "object",
									"required": []any{"id", "type", "prompt"},
									"properties": map[string]any{
										"id":       map[string]any{"type": "string", "minLength": 1},
										"type":     map[string]any{"enum": []any{"scale", "multiple-choice"}},
										"prompt":   map[string]any{"type": "string"},
										"category": map[string]any{"type": "string"},
										"options":  stringArray,
										"min":      map[string]any{"type": "integer"},
										"max":      map[string]any{"type": "integer"},
										"weight":   map[string]any{"type": "number", "minimum": 0},
									},
								},
							},
						},
					},
				},
			},
		},
		"scoring": map[string]any{
			"type":     "object",
			"required": []any{"tiers"},
			"properties": map[string]any{
				"tiers": map[string]any{
					"type":     "array",
					"minItems": 1,
					"items": map[string]any{
						"type":     "object",
						"required": []any{"min_score", "recommendation"},
						"properties": map[string]any{
							"min_score":      map[string]any{"type": "integer", "minimum": 0, "maximum": 100},
							"recommendation": map[string]any{"enum": []any{"yes", "maybe", "no"}},
							"reason":         map[string]any{"type": "string"},
							"next_steps":     stringArray,
						},
					},
				},
				"axes": map[string]any{
					"type": "array",
					"items": map[string]any{
						"type":     "object",
						"required": []any{"key", "blend"},
						"properties": map[string]any{
							"key":   map[string]any{"type": "string", "minLength": 1},
							"label": map[string]any{"type": "string"},
							"blend": weightMap,
						},
					},
				},
				"aggregate": weightMap,
				"careers": map[string]any{
					"type": "array",
					"items": map[string]any{
						"type":     "object",
						"required": []any{"role"},
						"properties": map[string]any{
							"role":        map[string]any{"type": "string", "minLength": 1},
							"description": map[string]any{"type": "string"},
							"skill_level": map[string]any{"type": "string"},
							"floor":       map[string]any{"type": "integer", "minimum": 0, "maximum": 100},
							"offset":      map[string]any{"type": "integer", "minimum": 0},
						},
					},
				},
			},
		},
	},
}

var stringArray = map[string]any{
	"type":  "array",
	"items": map[string]any{"type": "string"},
}

var weightMap = map[string]any{
	"type":                 "object",
	"additionalProperties": map[string]any{"type": "number", "minimum": 0},
}
