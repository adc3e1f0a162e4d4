package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func tierSchema() *Schema {
	return &Schema{
		Name:        "test-tier",
		Description: "A tier verdict",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"tier":  map[string]any{"type": "string", "enum": []any{"fragile", "consolidating", "scale"}},
				"score": map[string]any{"type": "integer", "minimum": 0, "maximum": 24},
				"notes": map[string]any{"type": "string"},
			},
			"required": []any{"tier", "score"},
		},
	}
}

func TestValidateResponse(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{"valid", `{"tier":"scale","score":22,"notes":"ok"}`, false},
		{"optional omitted", `{"tier":"fragile","score":3}`, false},
		{"missing required", `{"tier":"fragile"}`, true},
		{"wrong type", `{"tier":"fragile","score":"three"}`, true},
		{"out of range", `{"tier":"fragile","score":30}`, true},
		{"bad enum", `{"tier":"booming","score":3}`, true},
		{"malformed", `{not json}`, true},
		{"empty", ``, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateResponse(tierSchema(), json.RawMessage(tt.raw))
			if (err != nil) != tt.wantErr {
				t.Fatalf("validateResponse() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				var inv *ErrInvalidResponse
				if !errors.As(err, &inv) {
					t.Fatalf("expected ErrInvalidResponse, got %T", err)
				}
			}
		})
	}
}

func TestValidateResponse_NilSchema(t *testing.T) {
	if err := validateResponse(nil, json.RawMessage(`{"anything":"goes"}`)); err != nil {
		t.Fatalf("expected no error with nil schema, got: %v", err)
	}
}

func TestValidateResponse_ArrayItems(t *testing.T) {
	if err := validateResponse(adviceSchema, json.RawMessage(adviceJSON)); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if err := validateResponse(adviceSchema, json.RawMessage(`{"headline":"x","actions":[1,2]}`)); err == nil {
		t.Fatal("expected error for wrong array item type")
	}
	if err := validateResponse(adviceSchema, json.RawMessage(`{"headline":"x","actions":[],"extra":true}`)); err == nil {
		t.Fatal("expected error for additional property")
	}
}
