package llm

// adviceSchema is a small schema shaped like the next-step advice request.
var adviceSchema = &Schema{
	Name:        "test-advice",
	Description: "Headline plus actions",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"headline": map[string]any{"type": "string"},
			"actions": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
		},
		"required":             []any{"headline", "actions"},
		"additionalProperties": false,
	},
}

const adviceJSON = `{"headline":"Fix cash flow first","actions":["Separate accounts","Weekly cash review"]}`
