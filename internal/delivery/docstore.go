package delivery

import (
	"context"
	"strings"

	"github.com/abhisek/checkup/internal/report"
	"github.com/abhisek/checkup/internal/store"
)

// DefaultCollection holds lead documents when none is configured.
const DefaultCollection = "checkup_leads"

// DocStoreConfig controls the local lead collection.
type DocStoreConfig struct {
	Enabled    bool   `yaml:"enabled"`
	Collection string `yaml:"collection"`
}

// DocStore adds each payload as a document to a submission collection.
type DocStore struct {
	cfg  DocStoreConfig
	repo store.SubmissionRepo
}

func NewDocStore(cfg DocStoreConfig, repo store.SubmissionRepo) *DocStore {
	if strings.TrimSpace(cfg.Collection) == "" {
		cfg.Collection = DefaultCollection
	}
	return &DocStore{cfg: cfg, repo: repo}
}

func (d *DocStore) Name() string { return "docstore" }

func (d *DocStore) Send(ctx context.Context, p report.Payload) Outcome {
	if !d.cfg.Enabled || d.repo == nil {
		return skipped(d.Name(), ReasonNotConfigured)
	}
	if _, err := d.repo.Add(ctx, d.cfg.Collection, p); err != nil {
		return failed(d.Name(), "local", err)
	}
	return Outcome{Channel: d.Name(), Status: StatusOK, Mode: "local"}
}
