package store

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
)

// sequenceCounter hands out one increasing sequence shared by every event
// table, so delivery and LLM events can be ordered against each other.
//
// Uses raw SQL because the dialect builder has no atomic counter. The mutex
// serializes within the process; the RETURNING clause makes the increment
// atomic at the database level.
type sequenceCounter struct {
	mu sync.Mutex
	db *sql.DB
}

// newSequenceCounter creates a counter and ensures the tracking table exists.
func newSequenceCounter(db *sql.DB) (*sequenceCounter, error) {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS global_sequence (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		next_val INTEGER NOT NULL DEFAULT 1
	)`)
	if err != nil {
		return nil, fmt.Errorf("create sequence table: %w", err)
	}

	_, err = db.Exec(`INSERT OR IGNORE INTO global_sequence (id, next_val) VALUES (1, 1)`)
	if err != nil {
		return nil, fmt.Errorf("seed sequence: %w", err)
	}

	return &sequenceCounter{db: db}, nil
}

// Next atomically returns the next sequence number and increments the counter.
func (sc *sequenceCounter) Next(ctx context.Context) (int64, error) {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	var seq int64
	err := sc.db.QueryRowContext(ctx,
		`UPDATE global_sequence SET next_val = next_val + 1 WHERE id = 1 RETURNING next_val - 1`,
	).Scan(&seq)
	if err != nil {
		return 0, fmt.Errorf("next sequence: %w", err)
	}
	return seq, nil
}

// eventRepo implements EventRepo with the dialect builder and the global
// sequence counter.
type eventRepo struct {
	drv *entsql.Driver
	seq *sequenceCounter
}

func (r *eventRepo) AppendDelivery(ctx context.Context, data DeliveryEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	query, args := entsql.Dialect(dialect.SQLite).
		Insert(tableDeliveries).
		Columns("sequence", "timestamp", "channel", "status", "reason", "mode", "latency_ms", "error_message").
		Values(seqNum, time.Now().UTC(), data.Channel, data.Status, data.Reason, data.Mode, data.LatencyMs, data.ErrorMessage).
		Query()

	var res sql.Result
	if err := r.drv.Exec(ctx, query, args, &res); err != nil {
		return fmt.Errorf("save delivery event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryDeliveries(ctx context.Context, opts QueryOpts) ([]DeliveryEventRecord, error) {
	b := entsql.Dialect(dialect.SQLite)
	t := b.Table(tableDeliveries)
	sel := b.Select(
		t.C("id"), t.C("sequence"), t.C("timestamp"), t.C("channel"), t.C("status"),
		t.C("reason"), t.C("mode"), t.C("latency_ms"), t.C("error_message"),
	).From(t)

	var preds []*entsql.Predicate
	if opts.After > 0 {
		preds = append(preds, entsql.GT(t.C("sequence"), opts.After))
	}
	if opts.Channel != "" {
		preds = append(preds, entsql.EQ(t.C("channel"), opts.Channel))
	}
	if len(preds) > 0 {
		sel.Where(entsql.And(preds...))
	}
	sel.OrderBy(entsql.Desc(t.C("sequence")))
	if opts.Limit > 0 {
		sel.Limit(opts.Limit)
	}

	query, args := sel.Query()
	rows := &entsql.Rows{}
	if err := r.drv.Query(ctx, query, args, rows); err != nil {
		return nil, fmt.Errorf("query delivery events: %w", err)
	}
	defer rows.Close()

	var out []DeliveryEventRecord
	for rows.Next() {
		var e DeliveryEventRecord
		if err := rows.Scan(&e.ID, &e.Sequence, &e.Timestamp, &e.Channel, &e.Status,
			&e.Reason, &e.Mode, &e.LatencyMs, &e.ErrorMessage); err != nil {
			return nil, fmt.Errorf("scan delivery event: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
