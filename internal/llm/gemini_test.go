package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestGeminiModelMapping(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"gemini-flash", "gemini-2.0-flash"},
		{"gemini-pro", "gemini-2.0-pro"},
		{"gemini-2.5-flash", "gemini-2.5-flash"},
	}
	for _, tt := range tests {
		if got := resolveModel(tt.input, geminiModels); got != tt.expected {
			t.Errorf("resolveModel(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestBuildGeminiSchema(t *testing.T) {
	schema := buildGeminiSchema(map[string]any{
		"type":        "object",
		"description": "advice",
		"properties": map[string]any{
			"headline": map[string]any{"type": "string"},
			"tier":     map[string]any{"type": "string", "enum": []any{"fragile", "consolidating", "scale"}},
			"actions": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
			"score": map[string]any{"type": "integer"},
		},
		"required": []any{"headline", "actions"},
	})

	if schema.Type != "OBJECT" || schema.Description != "advice" {
		t.Fatalf("root = %+v", schema)
	}
	if len(schema.Properties) != 4 {
		t.Fatalf("expected 4 properties, got %d", len(schema.Properties))
	}
	if len(schema.Properties["tier"].Enum) != 3 {
		t.Fatalf("tier enum = %v", schema.Properties["tier"].Enum)
	}
	if schema.Properties["actions"].Type != "ARRAY" || schema.Properties["actions"].Items.Type != "STRING" {
		t.Fatalf("actions = %+v", schema.Properties["actions"])
	}
	if schema.Properties["score"].Type != "INTEGER" {
		t.Fatalf("score type = %s", schema.Properties["score"].Type)
	}
	if len(schema.Required) != 2 {
		t.Fatalf("required = %v", schema.Required)
	}
}

func TestGeminiProvider_Generate(t *testing.T) {
	var path string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"candidates": []map[string]any{{
				"content": map[string]any{
					"role":  "model",
					"parts": []map[string]any{{"text": adviceJSON}},
				},
				"finishReason": "STOP",
			}},
			"usageMetadata": map[string]any{
				"promptTokenCount":     20,
				"candidatesTokenCount": 10,
				"totalTokenCount":      30,
			},
		})
	}))
	defer server.Close()

	p, err := NewGeminiProvider(context.Background(), GeminiConfig{
		APIKey:  "g-test",
		Model:   "gemini-flash",
		BaseURL: server.URL,
	}, server.Client())
	if err != nil {
		t.Fatalf("NewGeminiProvider: %v", err)
	}

	resp, err := p.Generate(context.Background(), Request{
		System:    "advisor",
		Messages:  []Message{{Role: RoleUser, Content: "next steps"}},
		Schema:    adviceSchema,
		MaxTokens: 200,
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !strings.Contains(path, "gemini-2.0-flash:generateContent") {
		t.Errorf("path = %q", path)
	}
	if resp.Usage.TotalTokens != 30 || resp.StopReason != "end" {
		t.Fatalf("resp = %+v", resp)
	}
}
