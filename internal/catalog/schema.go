package catalog

// catalogSchema is the JSON Schema a catalog file must satisfy before it is
// decoded. Condition objects are loose beyond the required type tag:
// unrecognized tags are allowed through and become UnknownCondition,
// which fails closed at evaluation time.
var catalogSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"skills": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id":   map[string]any{"type": "string", "minLength": 1},
					"name": map[string]any{"type": "string", "minLength": 1},
					"description": map[string]any{
						"type": "string",
					},
					"icon": map[string]any{"type": "string"},
					"type": map[string]any{
						"type": "string",
						"enum": []any{
							"communication", "learning", "creativity", "exploration",
							"emotional", "social", "physical", "cognitive",
						},
					},
					"rarity": map[string]any{
						"type": "string",
						"enum": []any{"common", "uncommon", "rare", "epic", "legendary"},
					},
					"max_level": map[string]any{
						"type":    "integer",
						"minimum": 1,
						"maximum": MaxLevelCap,
					},
					"experience_multiplier": map[string]any{
						"type":             "number",
						"exclusiveMinimum": 0,
					},
					"unlock_conditions": map[string]any{
						"type":  "array",
						"items": map[string]any{"$ref": "#/$defs/condition"},
					},
					"effects": map[string]any{
						"type": "array",
						"items": map[string]any{
							"type": "object",
							"properties": map[string]any{
								"type":     map[string]any{"type": "string", "minLength": 1},
								"target":   map[string]any{"type": "string", "minLength": 1},
								"modifier": map[string]any{"type": "number"},
								"duration": map[string]any{"type": "integer"},
							},
							"required":             []any{"type", "target", "modifier"},
							"additionalProperties": false,
						},
					},
				},
				"required":             []any{"id", "name", "type", "rarity", "max_level", "experience_multiplier"},
				"additionalProperties": false,
			},
		},
	},
	"required":             []any{"skills"},
	"additionalProperties": false,
	"$defs": map[string]any{
		"condition": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"type": map[string]any{"type": "string", "minLength": 1},
				"mode": map[string]any{
					"type": "string",
					"enum": []any{"all", "any"},
				},
				"conditions": map[string]any{
					"type":  "array",
					"items": map[string]any{"$ref": "#/$defs/condition"},
				},
			},
			"required":             []any{"type"},
			"additionalProperties": true,
		},
	},
}
