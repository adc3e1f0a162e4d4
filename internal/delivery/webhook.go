package delivery

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/abhisek/checkup/internal/httpclient"
	"github.com/abhisek/checkup/internal/report"
)

// WebhookConfig points at a script endpoint that accepts the payload. The
// token travels in the body.
type WebhookConfig struct {
	URL   string `yaml:"url"`
	Token string `yaml:"token"`
}

// Webhook posts the payload as a text/plain JSON document.
type Webhook struct {
	cfg    WebhookConfig
	client *http.Client
}

func NewWebhook(cfg WebhookConfig, client *http.Client) *Webhook {
	return &Webhook{cfg: cfg, client: client}
}

func (w *Webhook) Name() string { return "webhook" }

const webhookContentType = "text/plain;charset=UTF-8"

func (w *Webhook) Send(ctx context.Context, p report.Payload) Outcome {
	url := strings.TrimSpace(w.cfg.URL)
	token := strings.TrimSpace(w.cfg.Token)
	if url == "" || token == "" {
		return skipped(w.Name(), ReasonNotConfigured)
	}

	body, err := webhookBody(p, token)
	if err != nil {
		return failed(w.Name(), "post", err)
	}
	if err := httpclient.PostJSON(ctx, w.client, url, webhookContentType, body); err != nil {
		return failed(w.Name(), "post", err)
	}
	return Outcome{Channel: w.Name(), Status: StatusOK, Mode: "post"}
}

// webhookBody is the payload object plus token and ctaUrl at the top level.
// ctaUrl is always present, empty when unset.
func webhookBody(p report.Payload, token string) (map[string]any, error) {
	b, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("marshal payload: %w", err)
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, fmt.Errorf("unmarshal payload: %w", err)
	}
	m["token"] = token
	m["ctaUrl"] = p.CTAURL
	return m, nil
}
