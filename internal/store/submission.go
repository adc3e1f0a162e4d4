package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

// submissionRepo implements SubmissionRepo on the submissions table.
type submissionRepo struct {
	drv *entsql.Driver
}

func (r *submissionRepo) Add(ctx context.Context, collection string, doc any) (string, error) {
	collection = strings.TrimSpace(collection)
	if collection == "" {
		return "", fmt.Errorf("add submission: empty collection name")
	}
	data, err := json.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("marshal submission: %w", err)
	}

	id := uuid.NewString()
	query, args := entsql.Dialect(dialect.SQLite).
		Insert(tableSubmissions).
		Columns("uuid", "collection", "data", "created_at").
		Values(id, collection, string(data), time.Now().UTC()).
		Query()

	var res sql.Result
	if err := r.drv.Exec(ctx, query, args, &res); err != nil {
		return "", fmt.Errorf("save submission: %w", err)
	}
	return id, nil
}

func (r *submissionRepo) List(ctx context.Context, collection string, limit int) ([]Submission, error) {
	b := entsql.Dialect(dialect.SQLite)
	t := b.Table(tableSubmissions)
	sel := b.Select(t.C("uuid"), t.C("collection"), t.C("data"), t.C("created_at")).
		From(t).
		Where(entsql.EQ(t.C("collection"), collection)).
		OrderBy(entsql.Desc(t.C("id")))
	if limit > 0 {
		sel.Limit(limit)
	}

	query, args := sel.Query()
	rows := &entsql.Rows{}
	if err := r.drv.Query(ctx, query, args, rows); err != nil {
		return nil, fmt.Errorf("query submissions: %w", err)
	}
	defer rows.Close()

	var out []Submission
	for rows.Next() {
		var (
			s    Submission
			data []byte
		)
		if err := rows.Scan(&s.ID, &s.Collection, &data, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan submission: %w", err)
		}
		s.Data = json.RawMessage(data)
		out = append(out, s)
	}
	return out, rows.Err()
}
