// Package config loads checkup settings from an optional YAML file and
// CHECKUP_* environment variables.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/abhisek/checkup/internal/delivery"
	"github.com/abhisek/checkup/internal/httpclient"
	"github.com/abhisek/checkup/internal/llm"
	"github.com/abhisek/checkup/internal/quiz"
)

// Config is the full application configuration.
type Config struct {
	// DBPath overrides the default database location.
	DBPath string `yaml:"db_path"`

	Quiz     QuizConfig              `yaml:"quiz"`
	Email    delivery.EmailJSConfig  `yaml:"email"`
	Webhook  delivery.WebhookConfig  `yaml:"webhook"`
	DocStore delivery.DocStoreConfig `yaml:"docstore"`
	HTTP     httpclient.Config       `yaml:"http"`
	LLM      llm.Config              `yaml:"llm"`
	Logging  LoggingConfig           `yaml:"logging"`
}

// QuizConfig holds presentation settings.
type QuizConfig struct {
	Name string `yaml:"name"`

	// CTAURL is where the call to action points. Empty falls back to a
	// WhatsApp link.
	CTAURL string `yaml:"cta_url"`

	// FeedbackDelay is how long a picked option stays highlighted before
	// the answer is applied.
	FeedbackDelay time.Duration `yaml:"feedback_delay"`
}

// LoggingConfig controls the log file.
type LoggingConfig struct {
	Level string `yaml:"level"`

	// File defaults to checkup.log next to the database.
	File string `yaml:"file"`
}

// DefaultConfig returns a configuration with every collaborator disabled
// except the local document store.
func DefaultConfig() *Config {
	return &Config{
		Quiz: QuizConfig{
			Name:          quiz.Name,
			FeedbackDelay: 500 * time.Millisecond,
		},
		DocStore: delivery.DocStoreConfig{
			Enabled:    true,
			Collection: delivery.DefaultCollection,
		},
		HTTP:    httpclient.DefaultConfig(),
		LLM:     llm.DefaultConfig(),
		Logging: LoggingConfig{Level: "info"},
	}
}

// DefaultPath returns $CHECKUP_CONFIG, or config.yaml under the user
// config directory.
func DefaultPath() string {
	if p := os.Getenv("CHECKUP_CONFIG"); p != "" {
		return p
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "checkup.yaml"
	}
	return filepath.Join(dir, "checkup", "config.yaml")
}

// Load reads path over the defaults and then applies environment
// overrides. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}

	cfg.ApplyEnv()
	return cfg, nil
}

// ApplyEnv overrides fields from CHECKUP_* environment variables.
func (c *Config) ApplyEnv() {
	str := func(dst *string, key string) {
		if v, ok := os.LookupEnv(key); ok && v != "" {
			*dst = v
		}
	}

	str(&c.DBPath, "CHECKUP_DB")

	str(&c.Quiz.Name, "CHECKUP_QUIZ_NAME")
	str(&c.Quiz.CTAURL, "CHECKUP_CTA_URL")
	if v := os.Getenv("CHECKUP_FEEDBACK_DELAY"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.Quiz.FeedbackDelay = d
		}
	}

	str(&c.Email.PublicKey, "CHECKUP_EMAILJS_PUBLIC_KEY")
	str(&c.Email.ServiceID, "CHECKUP_EMAILJS_SERVICE_ID")
	str(&c.Email.TemplateID, "CHECKUP_EMAILJS_TEMPLATE_ID")

	str(&c.Webhook.URL, "CHECKUP_WEBHOOK_URL")
	str(&c.Webhook.Token, "CHECKUP_WEBHOOK_TOKEN")

	if v := os.Getenv("CHECKUP_DOCSTORE"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.DocStore.Enabled = b
		}
	}
	str(&c.DocStore.Collection, "CHECKUP_DOCSTORE_COLLECTION")

	if v := os.Getenv("CHECKUP_HTTP_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.HTTP.Timeout = d
		}
	}

	str(&c.Logging.Level, "CHECKUP_LOG_LEVEL")
	str(&c.Logging.File, "CHECKUP_LOG_FILE")

	c.LLM.ApplyEnv()
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Quiz.Name) == "" {
		return fmt.Errorf("quiz.name must not be empty")
	}
	if c.Quiz.FeedbackDelay < 0 {
		return fmt.Errorf("quiz.feedback_delay must not be negative")
	}
	if err := checkURL("quiz.cta_url", c.Quiz.CTAURL); err != nil {
		return err
	}
	if err := checkURL("webhook.url", c.Webhook.URL); err != nil {
		return err
	}
	if err := checkURL("email.endpoint", c.Email.Endpoint); err != nil {
		return err
	}
	if c.Logging.Level != "" {
		if _, err := zapcore.ParseLevel(c.Logging.Level); err != nil {
			return fmt.Errorf("logging.level: %w", err)
		}
	}
	return c.LLM.Validate()
}

// checkURL accepts an empty value or an absolute http(s) URL.
func checkURL(field, raw string) error {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%s: %w", field, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%s: %q is not an absolute http(s) URL", field, raw)
	}
	return nil
}
