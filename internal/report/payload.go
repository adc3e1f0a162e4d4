package report

import (
	"net/url"
	"strings"
	"time"

	"github.com/abhisek/checkup/internal/flow"
	"github.com/abhisek/checkup/internal/quiz"
	"github.com/abhisek/checkup/internal/scoring"
)

// DefaultWhatsAppNumber receives the fallback call-to-action message.
const DefaultWhatsAppNumber = "5513988241825"

// DefaultCTAMessage is pre-filled in the fallback WhatsApp link.
const DefaultCTAMessage = "Hi! I finished the " + quiz.Name + " and want to book my Strategic Session."

// AnswerDetail is one question with the option the respondent picked.
type AnswerDetail struct {
	ID            int    `json:"id"`
	CategoryKey   string `json:"categoryKey"`
	CategoryLabel string `json:"categoryLabel"`
	Question      string `json:"question"`
	SelectedText  string `json:"selectedText"`
	Points        *int   `json:"points"`
}

// ScoreSnapshot is the score as stored and delivered.
type ScoreSnapshot struct {
	Total      int            `json:"total"`
	ByCategory map[string]int `json:"byCategory"`
}

// Payload is everything the delivery collaborators receive.
type Payload struct {
	QuizName        string         `json:"quizName"`
	Lead            flow.Lead      `json:"lead"`
	Answers         quiz.Answers   `json:"answers"`
	AnswersDetailed []AnswerDetail `json:"answersDetailed"`
	Score           ScoreSnapshot  `json:"score"`
	MaxScore        int            `json:"maxScore"`
	TierKey         string         `json:"tierKey"`
	TierTitle       string         `json:"tierTitle"`
	Diagnosis       string         `json:"diagnosis"`
	Priorities      []string       `json:"priorities"`
	Institutional   string         `json:"institutional"`
	Closing         string         `json:"closing"`
	CreatedAt       time.Time      `json:"createdAt"`
	SubmittedAt     time.Time      `json:"submittedAt"`
	CTAURL          string         `json:"ctaUrl,omitempty"`
}

// Snapshot converts a scoring result to its stored form.
func Snapshot(r scoring.Result) ScoreSnapshot {
	by := make(map[string]int, len(r.ByCategory))
	for c, v := range r.ByCategory {
		by[string(c)] = v
	}
	return ScoreSnapshot{Total: r.Total, ByCategory: by}
}

// AnswersDetailed lists every catalog question in order. Unanswered
// questions have nil Points and an empty SelectedText.
func AnswersDetailed(answers quiz.Answers, c quiz.Catalog) []AnswerDetail {
	qs := c.Questions()
	out := make([]AnswerDetail, 0, len(qs))
	for _, q := range qs {
		info := q.Category.Info()
		d := AnswerDetail{
			ID:            q.ID,
			CategoryKey:   string(q.Category),
			CategoryLabel: info.Label,
			Question:      q.Prompt,
		}
		if p, ok := answers[q.ID]; ok {
			p = max(quiz.PointsCritical, min(p, quiz.PointsStrategic))
			d.Points = &p
			if o, ok := q.OptionFor(p); ok {
				d.SelectedText = o.Label
			}
		}
		out = append(out, d)
	}
	return out
}

// Build assembles the delivery payload for a completed session.
func Build(quizName string, s flow.Session, c quiz.Catalog, createdAt, submittedAt time.Time, ctaURL string) Payload {
	res := scoring.Score(s.Answers, c.Questions())
	content := ContentFor(res.Tier)

	return Payload{
		QuizName:        quizName,
		Lead:            s.Lead,
		Answers:         s.Answers.Clone(),
		AnswersDetailed: AnswersDetailed(s.Answers, c),
		Score:           Snapshot(res),
		MaxScore:        scoring.MaxTotal,
		TierKey:         res.Tier.Key(),
		TierTitle:       content.Title,
		Diagnosis:       content.Diagnosis,
		Priorities:      content.Priorities,
		Institutional:   content.Institutional,
		Closing:         content.Closing,
		CreatedAt:       createdAt.UTC(),
		SubmittedAt:     submittedAt.UTC(),
		CTAURL:          ctaURL,
	}
}

// CTAURL returns the configured call-to-action URL or, when none is set,
// a WhatsApp link with the default message.
func CTAURL(configured string) string {
	if u := strings.TrimSpace(configured); u != "" {
		return u
	}
	return WhatsAppLink(DefaultWhatsAppNumber, DefaultCTAMessage)
}

// WhatsAppLink builds a wa.me deep link with a pre-filled message.
func WhatsAppLink(number, message string) string {
	text := strings.ReplaceAll(url.QueryEscape(message), "+", "%20")
	return "https://wa.me/" + flow.Digits(number) + "?text=" + text
}
