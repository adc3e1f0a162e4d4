package advice

import "github.com/abhisek/checkup/internal/llm"

// MaxActions caps the number of suggested actions in a note.
const MaxActions = 3

// NoteSchema is the structured output requested from the model.
var NoteSchema = &llm.Schema{
	Name:        "next-step-advice",
	Description: "A short next-step note for a small business owner after a management check-up",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"headline": map[string]any{
				"type":        "string",
				"description": "One sentence naming the most urgent focus (8-16 words)",
			},
			"actions": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"minItems":    1,
				"maxItems":    MaxActions,
				"description": "1-3 concrete actions for the next 30 days (6-14 words each)",
			},
		},
		"required":             []any{"headline", "actions"},
		"additionalProperties": false,
	},
}
