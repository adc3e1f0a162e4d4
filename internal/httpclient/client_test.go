package httpclient

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
)

func TestNewAppliesDefaults(t *testing.T) {
	c := New(Config{Timeout: 2 * time.Second})
	assert.Equal(t, 2*time.Second, c.Timeout)

	tr, ok := c.Transport.(*http.Transport)
	require.True(t, ok)
	assert.Equal(t, DefaultConfig().MaxIdleConns, tr.MaxIdleConns)
	assert.Equal(t, DefaultConfig().ResponseHeader, tr.ResponseHeaderTimeout)
}

func TestPostJSON(t *testing.T) {
	var (
		gotType string
		gotBody map[string]any
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotType = r.Header.Get("Content-Type")
		b, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(b, &gotBody)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	err := PostJSON(context.Background(), srv.Client(), srv.URL, "text/plain;charset=UTF-8", map[string]any{"a": "b"})
	require.NoError(t, err)
	assert.Equal(t, "text/plain;charset=UTF-8", gotType)
	assert.Equal(t, "b", gotBody["a"])
}

func TestPostJSON_Non2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte("  bad template  "))
	}))
	defer srv.Close()

	err := PostJSON(context.Background(), srv.Client(), srv.URL+"?token=secret", "", struct{}{})
	var se *StatusError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, http.StatusBadRequest, se.StatusCode)
	assert.Equal(t, "bad template", se.Body)
}

func TestPostJSON_TransportErrorRedactsQuery(t *testing.T) {
	err := PostJSON(context.Background(), New(Config{Timeout: time.Second}), "http://127.0.0.1:1/hook?token=secret", "", 1)
	require.Error(t, err)
	assert.NotContains(t, err.Error(), "secret")
}
