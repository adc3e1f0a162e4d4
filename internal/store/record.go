package store

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/abhisek/checkup/internal/flow"
	"github.com/abhisek/checkup/internal/quiz"
	"github.com/abhisek/checkup/internal/report"
)

// Record is the persisted quiz state. The score snapshot and tier fields
// are written on completion for reporting only; the session is always
// rebuilt from Step, Lead, Answers and Completed.
type Record struct {
	QuizName  string               `json:"quizName"`
	Step      int                  `json:"step"`
	Answers   quiz.Answers         `json:"answers"`
	Lead      flow.Lead            `json:"lead"`
	Completed bool                 `json:"completed"`
	Score     report.ScoreSnapshot `json:"score"`
	TierKey   string               `json:"tierKey"`
	TierTitle string               `json:"tierTitle"`
	CreatedAt string               `json:"createdAt"`
}

// DefaultRecord is what Load returns when nothing usable is stored.
func DefaultRecord() Record {
	return Record{
		QuizName: quiz.Name,
		Step:     quiz.StepLead,
		Answers:  quiz.Answers{},
		Score:    emptySnapshot(),
	}
}

func emptySnapshot() report.ScoreSnapshot {
	by := make(map[string]int, 4)
	for _, c := range quiz.AllCategories() {
		by[string(c)] = 0
	}
	return report.ScoreSnapshot{Total: 0, ByCategory: by}
}

// recordSchema describes the stored blob. A blob that fails it is still
// sanitized field by field; only a non-object blob is discarded outright.
var recordSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"quizName":  map[string]any{"type": "string"},
		"step":      map[string]any{"type": "integer"},
		"answers":   map[string]any{"type": "object", "additionalProperties": map[string]any{"type": "integer", "minimum": 0, "maximum": 2}},
		"completed": map[string]any{"type": "boolean"},
		"lead": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"name":    map[string]any{"type": "string"},
				"company": map[string]any{"type": "string"},
				"phone":   map[string]any{"type": "string"},
			},
		},
		"score":     map[string]any{"type": "object"},
		"tierKey":   map[string]any{"type": "string"},
		"tierTitle": map[string]any{"type": "string"},
		"createdAt": map[string]any{"type": "string"},
	},
}

var (
	compiledOnce   sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

func recordValidator() (*jsonschema.Schema, error) {
	compiledOnce.Do(func() {
		// The compiler wants plain decoded JSON, not Go ints.
		defBytes, err := json.Marshal(recordSchema)
		if err != nil {
			compileErr = fmt.Errorf("marshal record schema: %w", err)
			return
		}
		var def any
		if err := json.Unmarshal(defBytes, &def); err != nil {
			compileErr = fmt.Errorf("parse record schema: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		const url = "schema://checkup_state.json"
		if err := c.AddResource(url, def); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(url)
	})
	return compiledSchema, compileErr
}

// ValidateRecordJSON checks a raw blob against the record schema.
func ValidateRecordJSON(raw []byte) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	v, err := recordValidator()
	if err != nil {
		return fmt.Errorf("compile record schema: %w", err)
	}
	if err := v.Validate(parsed); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}

// DecodeRecord parses and sanitizes a stored blob. It never fails: the
// returned error only reports why defaults or repairs were applied.
func DecodeRecord(raw []byte) (Record, error) {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return DefaultRecord(), fmt.Errorf("invalid JSON: %w", err)
	}
	obj, ok := parsed.(map[string]any)
	if !ok {
		return DefaultRecord(), fmt.Errorf("stored state is %T, not an object", parsed)
	}
	return Sanitize(obj), ValidateRecordJSON(raw)
}

// Sanitize builds a Record from an arbitrary decoded object. Unknown
// fields are dropped, non-numeric or non-finite numbers fall back to
// defaults, numbers are floored, and strings are only taken from strings.
func Sanitize(raw map[string]any) Record {
	out := DefaultRecord()

	if s, ok := raw["quizName"].(string); ok && strings.TrimSpace(s) != "" {
		out.QuizName = strings.TrimSpace(s)
	}
	if n, ok := toInt(raw["step"]); ok {
		out.Step = n
	}
	if b, ok := raw["completed"].(bool); ok {
		out.Completed = b
	}
	out.TierKey, _ = raw["tierKey"].(string)
	out.TierTitle, _ = raw["tierTitle"].(string)
	out.CreatedAt, _ = raw["createdAt"].(string)

	if answers, ok := raw["answers"].(map[string]any); ok {
		for k, v := range answers {
			id, err := strconv.Atoi(strings.TrimSpace(k))
			if err != nil {
				continue
			}
			if n, ok := toInt(v); ok {
				out.Answers[id] = n
			}
		}
	}

	if lead, ok := raw["lead"].(map[string]any); ok {
		out.Lead.Name = firstString(lead, "name", "nome")
		out.Lead.Company = firstString(lead, "company", "empresa")
		out.Lead.Phone = firstString(lead, "phone", "whatsapp")
	}

	if score, ok := raw["score"].(map[string]any); ok {
		if n, ok := toInt(score["total"]); ok {
			out.Score.Total = n
		}
		if by, ok := score["byCategory"].(map[string]any); ok {
			for _, c := range quiz.AllCategories() {
				if n, ok := toInt(by[string(c)]); ok {
					out.Score.ByCategory[string(c)] = n
				}
			}
		}
	}

	return out
}

// Clone returns a deep copy.
func (r Record) Clone() Record {
	out := r
	out.Answers = r.Answers.Clone()
	out.Score.ByCategory = make(map[string]int, len(r.Score.ByCategory))
	for k, v := range r.Score.ByCategory {
		out.Score.ByCategory[k] = v
	}
	return out
}

// normalize runs a Record through the same rules as a stored blob so Save
// writes exactly what a later Load returns.
func (r Record) normalize() Record {
	raw, err := json.Marshal(r)
	if err != nil {
		return DefaultRecord()
	}
	var obj map[string]any
	if err := json.Unmarshal(raw, &obj); err != nil {
		return DefaultRecord()
	}
	return Sanitize(obj)
}

// toInt accepts JSON numbers and numeric strings, flooring fractions.
func toInt(v any) (int, bool) {
	var f float64
	switch x := v.(type) {
	case float64:
		f = x
	case json.Number:
		parsed, err := x.Float64()
		if err != nil {
			return 0, false
		}
		f = parsed
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	f = math.Floor(f)
	if f > math.MaxInt32 || f < math.MinInt32 {
		return 0, false
	}
	return int(f), true
}

// firstString returns the first key holding a string.
func firstString(m map[string]any, keys ...string) string {
	for _, k := range keys {
		if s, ok := m[k].(string); ok {
			return s
		}
	}
	return ""
}
