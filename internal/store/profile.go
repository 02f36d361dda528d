package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"
	"go.uber.org/zap"
)

// profileRepo implements ProfileRepo with one JSON row per subject.
type profileRepo struct {
	store *Store
}

// queryer is satisfied by both *sql.DB and *sql.Tx.
type queryer interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func (r *profileRepo) Get(ctx context.Context, subject string) (*ProfileData, error) {
	return getProfile(ctx, r.store.db, subject)
}

func (r *profileRepo) Set(ctx context.Context, subject string, update ProfileUpdater) error {
	r.store.profileMu.Lock()
	defer r.store.profileMu.Unlock()

	tx, err := r.store.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin profile update: %w", err)
	}
	defer tx.Rollback()

	current, err := getProfile(ctx, tx, subject)
	if err != nil {
		return err
	}

	next := update(current)
	if next == nil {
		return nil
	}
	next.Subject = subject

	raw, err := json.Marshal(next)
	if err != nil {
		return fmt.Errorf("marshal profile: %w", err)
	}

	query, args := builder().Insert(tableProfiles).
		Columns("subject", "data", "updated_at").
		Values(subject, string(raw), time.Now().UTC().UnixNano()).
		OnConflict(
			entsql.ConflictColumns("subject"),
			entsql.ResolveWithNewValues(),
		).
		Query()
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("save profile %s: %w", subject, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit profile %s: %w", subject, err)
	}

	r.store.logger.Debug("profile saved",
		zap.String("subject", subject),
		zap.Int("level", next.DifficultyLevel),
		zap.Int("attempts", next.TotalAttempts))
	return nil
}

func (r *profileRepo) All(ctx context.Context) ([]*ProfileData, error) {
	query, args := builder().
		Select("data").
		From(entsql.Table(tableProfiles)).
		OrderBy("subject").
		Query()

	rows, err := r.store.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query profiles: %w", err)
	}
	defer rows.Close()

	var out []*ProfileData
	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("scan profile: %w", err)
		}
		p, err := decodeProfile(raw)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate profiles: %w", err)
	}
	return out, nil
}

func getProfile(ctx context.Context, q queryer, subject string) (*ProfileData, error) {
	query, args := builder().
		Select("data").
		From(entsql.Table(tableProfiles)).
		Where(entsql.EQ("subject", subject)).
		Query()

	var raw string
	err := q.QueryRowContext(ctx, query, args...).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query profile %s: %w", subject, err)
	}
	return decodeProfile(raw)
}

func decodeProfile(raw string) (*ProfileData, error) {
	var p ProfileData
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return nil, fmt.Errorf("unmarshal profile: %w", err)
	}
	return &p, nil
}
