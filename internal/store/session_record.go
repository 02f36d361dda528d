package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"
)

// sessionLogRepo implements SessionLogRepo backed by SQLite.
type sessionLogRepo struct {
	db  *sql.DB
	seq *sequenceCounter
}

func (r *sessionLogRepo) AppendSession(ctx context.Context, data SessionRecordData) error {
	if data.ID == "" {
		return fmt.Errorf("save session record: missing id")
	}

	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	query, args := builder().Insert(tableSessionRecords).
		Columns("id", "sequence", "timestamp", "subject", "duration_minutes",
			"activities_completed", "coins_earned", "accuracy").
		Values(data.ID, seqNum, time.Now().UTC().UnixNano(), data.Subject, data.DurationMinutes,
			data.ActivitiesCompleted, data.CoinsEarned, data.Accuracy).
		Query()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("save session record: %w", err)
	}
	return nil
}

func (r *sessionLogRepo) QuerySessions(ctx context.Context, opts QueryOpts) ([]SessionRecord, error) {
	sel := builder().
		Select("id", "sequence", "timestamp", "subject", "duration_minutes",
			"activities_completed", "coins_earned", "accuracy").
		From(entsql.Table(tableSessionRecords))
	applyQueryOpts(sel, opts)

	query, args := sel.Query()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query session records: %w", err)
	}
	defer rows.Close()

	var out []SessionRecord
	for rows.Next() {
		var (
			rec SessionRecord
			ts  int64
		)
		if err := rows.Scan(&rec.ID, &rec.Sequence, &ts, &rec.Subject, &rec.DurationMinutes,
			&rec.ActivitiesCompleted, &rec.CoinsEarned, &rec.Accuracy); err != nil {
			return nil, fmt.Errorf("scan session record: %w", err)
		}
		rec.Timestamp = time.Unix(0, ts).UTC()
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate session records: %w", err)
	}
	return out, nil
}
