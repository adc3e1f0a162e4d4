package report

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/abhisek/checkup/internal/flow"
	"github.com/abhisek/checkup/internal/quiz"
	"github.com/abhisek/checkup/internal/scoring"
)

func completedSession(c quiz.Catalog, points int) flow.Session {
	answers := quiz.Answers{}
	for _, q := range c.Questions() {
		answers[q.ID] = points
	}
	return flow.Session{
		Step:      c.LastStep(),
		Lead:      flow.Lead{Name: "Ana", Company: "Acme", Phone: "(13) 99999-9999"},
		Answers:   answers,
		Completed: true,
	}
}

func TestContentFor(t *testing.T) {
	for _, tier := range []scoring.Tier{scoring.TierLow, scoring.TierMid, scoring.TierHigh} {
		c := ContentFor(tier)
		if c.Title != tier.Title() {
			t.Errorf("%v: Title = %q", tier, c.Title)
		}
		if c.Diagnosis == "" || len(c.Priorities) == 0 || c.Institutional == "" || c.Closing == "" {
			t.Errorf("%v: incomplete content %+v", tier, c)
		}
	}

	c := ContentFor(scoring.TierMid)
	c.Priorities[0] = "changed"
	if ContentFor(scoring.TierMid).Priorities[0] == "changed" {
		t.Error("ContentFor should return a copy of the priorities")
	}
}

func TestAnswersDetailed(t *testing.T) {
	c := quiz.Default()
	details := AnswersDetailed(quiz.Answers{1: 2, 5: 0}, c)

	if len(details) != c.QuestionCount() {
		t.Fatalf("got %d entries, want %d", len(details), c.QuestionCount())
	}
	first := details[0]
	if first.ID != 1 || first.Points == nil || *first.Points != 2 {
		t.Errorf("first = %+v", first)
	}
	q1, _ := c.QuestionByID(1)
	if first.SelectedText != q1.Options[0].Label {
		t.Errorf("SelectedText = %q, want %q", first.SelectedText, q1.Options[0].Label)
	}
	if first.CategoryKey != string(quiz.CategoryLeadership) || first.CategoryLabel == "" {
		t.Errorf("category = %q/%q", first.CategoryKey, first.CategoryLabel)
	}
	if details[1].Points != nil || details[1].SelectedText != "" {
		t.Errorf("unanswered entry = %+v", details[1])
	}
}

func TestBuild(t *testing.T) {
	c := quiz.Default()
	created := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	submitted := created.Add(time.Minute)

	p := Build(quiz.Name, completedSession(c, 1), c, created, submitted, "https://example.com/book")

	if p.Score.Total != 12 || p.MaxScore != 24 {
		t.Errorf("score = %d/%d", p.Score.Total, p.MaxScore)
	}
	if p.TierKey != "consolidating" || p.TierTitle != scoring.TierMid.Title() {
		t.Errorf("tier = %q %q", p.TierKey, p.TierTitle)
	}
	if len(p.Priorities) != 4 {
		t.Errorf("priorities = %v", p.Priorities)
	}
	if p.Score.ByCategory["finance"] != 3 {
		t.Errorf("byCategory = %v", p.Score.ByCategory)
	}

	raw, err := json.Marshal(p)
	if err != nil {
		t.Fatal(err)
	}
	for _, key := range []string{`"quizName"`, `"answersDetailed"`, `"tierKey"`, `"submittedAt"`, `"ctaUrl"`, `"answers":{"1":1`} {
		if !strings.Contains(string(raw), key) {
			t.Errorf("payload JSON missing %s", key)
		}
	}
}

func TestCTAURL(t *testing.T) {
	if got := CTAURL("  https://example.com/book "); got != "https://example.com/book" {
		t.Errorf("configured = %q", got)
	}

	got := CTAURL("")
	if !strings.HasPrefix(got, "https://wa.me/"+DefaultWhatsAppNumber+"?text=") {
		t.Errorf("fallback = %q", got)
	}
	if strings.Contains(got, "+") || !strings.Contains(got, "%20") {
		t.Errorf("message should be percent-encoded with %%20 spaces: %q", got)
	}
}

func TestWhatsAppLink_StripsFormatting(t *testing.T) {
	got := WhatsAppLink("+55 (13) 98824-1825", "a&b")
	want := "https://wa.me/5513988241825?text=a%26b"
	if got != want {
		t.Errorf("WhatsAppLink = %q, want %q", got, want)
	}
}
