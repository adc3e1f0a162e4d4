package delivery

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/checkup/internal/flow"
	"github.com/abhisek/checkup/internal/httpclient"
	"github.com/abhisek/checkup/internal/quiz"
	"github.com/abhisek/checkup/internal/report"
	"github.com/abhisek/checkup/internal/store"
)

func samplePayload(t *testing.T) report.Payload {
	t.Helper()
	c := quiz.Default()
	s := flow.NewSession()
	s.Lead = flow.Lead{Name: "Ana Souza", Company: "Acme", Phone: "(13) 98824-1825"}
	for _, q := range c.Questions() {
		s.Answers[q.ID] = quiz.PointsIntermediate
	}
	s.Step = c.LastStep()
	s.Completed = true
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	return report.Build(quiz.Name, s, c, now, now, "https://example.com/book")
}

type capture struct {
	contentType string
	body        []byte
}

func captureServer(t *testing.T, status int) (*httptest.Server, *capture) {
	t.Helper()
	got := &capture{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got.contentType = r.Header.Get("Content-Type")
		got.body, _ = io.ReadAll(r.Body)
		w.WriteHeader(status)
		_, _ = w.Write([]byte("OK"))
	}))
	t.Cleanup(srv.Close)
	return srv, got
}

func TestEmailJS_SkipsWhenUnconfigured(t *testing.T) {
	cases := []EmailJSConfig{
		{},
		{PublicKey: "pk", ServiceID: "svc"},
		{PublicKey: "pk", TemplateID: "tpl"},
		{ServiceID: "svc", TemplateID: "tpl"},
		{PublicKey: "  ", ServiceID: "svc", TemplateID: "tpl"},
	}
	for _, cfg := range cases {
		o := NewEmailJS(cfg, http.DefaultClient).Send(context.Background(), samplePayload(t))
		assert.Equal(t, StatusSkipped, o.Status)
		assert.Equal(t, ReasonNotConfigured, o.Reason)
	}
}

func TestEmailJS_Sends(t *testing.T) {
	srv, got := captureServer(t, http.StatusOK)
	e := NewEmailJS(EmailJSConfig{PublicKey: "pk", ServiceID: "svc", TemplateID: "tpl", Endpoint: srv.URL}, srv.Client())

	o := e.Send(context.Background(), samplePayload(t))
	require.True(t, o.OK(), "outcome: %+v", o)
	assert.Equal(t, "email", o.Channel)
	assert.Equal(t, "application/json", got.contentType)

	var req emailJSRequest
	require.NoError(t, json.Unmarshal(got.body, &req))
	assert.Equal(t, "svc", req.ServiceID)
	assert.Equal(t, "tpl", req.TemplateID)
	assert.Equal(t, "pk", req.UserID)
	assert.Equal(t, "Ana Souza", req.TemplateParams["name"])
	assert.Equal(t, "12", req.TemplateParams["score_total"])
	assert.Equal(t, "24", req.TemplateParams["max"])
	assert.Contains(t, req.TemplateParams["raw"], `"quizName"`)
}

func TestEmailJS_Non2xx(t *testing.T) {
	srv, _ := captureServer(t, http.StatusBadRequest)
	e := NewEmailJS(EmailJSConfig{PublicKey: "pk", ServiceID: "svc", TemplateID: "tpl", Endpoint: srv.URL}, srv.Client())

	o := e.Send(context.Background(), samplePayload(t))
	assert.Equal(t, StatusError, o.Status)
	require.Error(t, o.Err)
	assert.Contains(t, o.Err.Error(), "400")
}

func TestWebhook_SkipsWhenUnconfigured(t *testing.T) {
	for _, cfg := range []WebhookConfig{{}, {URL: "http://x"}, {Token: "t"}} {
		o := NewWebhook(cfg, http.DefaultClient).Send(context.Background(), samplePayload(t))
		assert.Equal(t, StatusSkipped, o.Status)
	}
}

func TestWebhook_Body(t *testing.T) {
	srv, got := captureServer(t, http.StatusOK)
	w := NewWebhook(WebhookConfig{URL: srv.URL, Token: " secret "}, srv.Client())

	o := w.Send(context.Background(), samplePayload(t))
	require.True(t, o.OK(), "outcome: %+v", o)
	assert.Equal(t, "post", o.Mode)
	assert.Equal(t, webhookContentType, got.contentType)

	var body map[string]any
	require.NoError(t, json.Unmarshal(got.body, &body))
	assert.Equal(t, "secret", body["token"])
	assert.Equal(t, "https://example.com/book", body["ctaUrl"])
	assert.Equal(t, quiz.Name, body["quizName"])
	assert.Equal(t, "Acme", body["lead"].(map[string]any)["company"])
}

func TestWebhook_EmptyCTAStillPresent(t *testing.T) {
	p := samplePayload(t)
	p.CTAURL = ""
	body, err := webhookBody(p, "t")
	require.NoError(t, err)
	v, ok := body["ctaUrl"]
	assert.True(t, ok)
	assert.Equal(t, "", v)
}

func TestWebhook_ServerError(t *testing.T) {
	srv, _ := captureServer(t, http.StatusInternalServerError)
	o := NewWebhook(WebhookConfig{URL: srv.URL, Token: "t"}, srv.Client()).Send(context.Background(), samplePayload(t))
	assert.Equal(t, StatusError, o.Status)
	var se *httpclient.StatusError
	require.True(t, errors.As(o.Err, &se))
	assert.Equal(t, http.StatusInternalServerError, se.StatusCode)
}

type memSubmissions struct {
	docs map[string][]any
	err  error
}

func (m *memSubmissions) Add(_ context.Context, collection string, doc any) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	if m.docs == nil {
		m.docs = map[string][]any{}
	}
	m.docs[collection] = append(m.docs[collection], doc)
	return "id", nil
}

func (m *memSubmissions) List(_ context.Context, collection string, limit int) ([]store.Submission, error) {
	return nil, nil
}

func TestDocStore(t *testing.T) {
	repo := &memSubmissions{}

	o := NewDocStore(DocStoreConfig{}, repo).Send(context.Background(), samplePayload(t))
	assert.Equal(t, StatusSkipped, o.Status)

	o = NewDocStore(DocStoreConfig{Enabled: true}, repo).Send(context.Background(), samplePayload(t))
	require.True(t, o.OK())
	assert.Len(t, repo.docs[DefaultCollection], 1)

	repo.err = errors.New("disk full")
	o = NewDocStore(DocStoreConfig{Enabled: true, Collection: "other"}, repo).Send(context.Background(), samplePayload(t))
	assert.Equal(t, StatusError, o.Status)
	assert.EqualError(t, o.Err, "disk full")
}

func TestSummarize(t *testing.T) {
	ok := Outcome{Status: StatusOK}
	skip := Outcome{Status: StatusSkipped}
	bad := Outcome{Status: StatusError}

	assert.Equal(t, "", Summarize(nil))
	assert.Equal(t, "", Summarize([]Outcome{skip, skip}))
	assert.Equal(t, HintRegistered, Summarize([]Outcome{bad, ok, skip}))
	assert.Equal(t, HintFailed, Summarize([]Outcome{bad, skip}))
}
