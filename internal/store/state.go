package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"go.uber.org/zap"
)

// StateKey is the fixed key the quiz state is stored under.
const StateKey = "checkup_state_v1"

// StateRepo stores the single quiz state record.
type StateRepo interface {
	// Load returns the stored record. It never fails: a missing, unreadable
	// or malformed record yields DefaultRecord.
	Load(ctx context.Context) Record

	// Save sanitizes and writes the record, returning what was written.
	Save(ctx context.Context, r Record) (Record, error)

	// Clear removes the stored record.
	Clear(ctx context.Context) error
}

// stateRepo implements StateRepo as one row of the quiz_states table.
type stateRepo struct {
	drv    *entsql.Driver
	logger *zap.Logger
}

func (r *stateRepo) Load(ctx context.Context) Record {
	raw, err := r.loadRaw(ctx)
	if err != nil {
		r.logger.Warn("load state", zap.Error(err))
		return DefaultRecord()
	}
	if raw == nil {
		return DefaultRecord()
	}

	rec, verr := DecodeRecord(raw)
	if verr != nil {
		r.logger.Info("stored state repaired", zap.Error(verr))
	}
	return rec
}

// loadRaw returns the stored blob, or nil if there is none.
func (r *stateRepo) loadRaw(ctx context.Context) ([]byte, error) {
	b := entsql.Dialect(dialect.SQLite)
	t := b.Table(tableStates)
	query, args := b.Select(t.C("data")).
		From(t).
		Where(entsql.EQ(t.C("key"), StateKey)).
		Limit(1).
		Query()

	rows := &entsql.Rows{}
	if err := r.drv.Query(ctx, query, args, rows); err != nil {
		return nil, fmt.Errorf("query state: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, rows.Err()
	}
	var data []byte
	if err := rows.Scan(&data); err != nil {
		return nil, fmt.Errorf("scan state: %w", err)
	}
	return data, rows.Err()
}

func (r *stateRepo) Save(ctx context.Context, rec Record) (Record, error) {
	clean := rec.normalize()
	data, err := json.Marshal(clean)
	if err != nil {
		return clean, fmt.Errorf("marshal state: %w", err)
	}

	query, args := entsql.Dialect(dialect.SQLite).
		Insert(tableStates).
		Columns("key", "data", "updated_at").
		Values(StateKey, string(data), time.Now().UTC()).
		OnConflict(
			entsql.ConflictColumns("key"),
			entsql.ResolveWithNewValues(),
		).
		Query()

	var res sql.Result
	if err := r.drv.Exec(ctx, query, args, &res); err != nil {
		return clean, fmt.Errorf("save state: %w", err)
	}
	return clean, nil
}

func (r *stateRepo) Clear(ctx context.Context) error {
	query, args := entsql.Dialect(dialect.SQLite).
		Delete(tableStates).
		Where(entsql.EQ("key", StateKey)).
		Query()

	var res sql.Result
	if err := r.drv.Exec(ctx, query, args, &res); err != nil {
		return fmt.Errorf("clear state: %w", err)
	}
	return nil
}
