package delivery

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/abhisek/checkup/internal/httpclient"
	"github.com/abhisek/checkup/internal/report"
)

// DefaultEmailJSEndpoint is the EmailJS REST send endpoint.
const DefaultEmailJSEndpoint = "https://api.emailjs.com/api/v1.0/email/send"

// EmailJSConfig selects the EmailJS account and template. All three ids
// are required.
type EmailJSConfig struct {
	PublicKey  string `yaml:"public_key"`
	ServiceID  string `yaml:"service_id"`
	TemplateID string `yaml:"template_id"`
	Endpoint   string `yaml:"endpoint"`
}

func (c EmailJSConfig) configured() bool {
	return strings.TrimSpace(c.PublicKey) != "" &&
		strings.TrimSpace(c.ServiceID) != "" &&
		strings.TrimSpace(c.TemplateID) != ""
}

// EmailJS sends the result through an EmailJS template.
type EmailJS struct {
	cfg    EmailJSConfig
	client *http.Client
}

func NewEmailJS(cfg EmailJSConfig, client *http.Client) *EmailJS {
	if cfg.Endpoint == "" {
		cfg.Endpoint = DefaultEmailJSEndpoint
	}
	return &EmailJS{cfg: cfg, client: client}
}

func (e *EmailJS) Name() string { return "email" }

type emailJSRequest struct {
	ServiceID      string            `json:"service_id"`
	TemplateID     string            `json:"template_id"`
	UserID         string            `json:"user_id"`
	TemplateParams map[string]string `json:"template_params"`
}

func (e *EmailJS) Send(ctx context.Context, p report.Payload) Outcome {
	if !e.cfg.configured() {
		return skipped(e.Name(), ReasonNotConfigured)
	}

	body := emailJSRequest{
		ServiceID:      strings.TrimSpace(e.cfg.ServiceID),
		TemplateID:     strings.TrimSpace(e.cfg.TemplateID),
		UserID:         strings.TrimSpace(e.cfg.PublicKey),
		TemplateParams: TemplateParams(p),
	}
	if err := httpclient.PostJSON(ctx, e.client, e.cfg.Endpoint, "application/json", body); err != nil {
		return failed(e.Name(), "rest", err)
	}
	return Outcome{Channel: e.Name(), Status: StatusOK, Mode: "rest"}
}

// TemplateParams flattens the payload into the string fields an email
// template can reference. raw carries the whole payload as JSON.
func TemplateParams(p report.Payload) map[string]string {
	raw, _ := json.Marshal(p)
	return map[string]string{
		"quiz_name":   p.QuizName,
		"name":        p.Lead.Name,
		"company":     p.Lead.Company,
		"phone":       p.Lead.Phone,
		"tier":        p.TierTitle,
		"tier_key":    p.TierKey,
		"score_total": strconv.Itoa(p.Score.Total),
		"max":         strconv.Itoa(p.MaxScore),
		"raw":         string(raw),
	}
}
