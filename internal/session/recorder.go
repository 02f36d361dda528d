package session

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/abhisek/brightpath/internal/store"
	"github.com/abhisek/brightpath/internal/subject"
)

// Entry is one completed activity as written to the session history.
type Entry struct {
	Subject             subject.Subject
	DurationMinutes     float64
	ActivitiesCompleted int
	CoinsEarned         int
	Accuracy            float64 // percent; stored as given, even outside [0, 100]
}

// Recorder appends completed activities to the append-only session log.
// It never reads or mutates subject profiles.
type Recorder struct {
	repo store.SessionLogRepo
}

// NewRecorder creates a Recorder writing to repo.
func NewRecorder(repo store.SessionLogRepo) *Recorder {
	return &Recorder{repo: repo}
}

// Record appends one entry and returns the generated record ID.
func (r *Recorder) Record(ctx context.Context, e Entry) (string, error) {
	id := uuid.NewString()
	err := r.repo.AppendSession(ctx, store.SessionRecordData{
		ID:                  id,
		Subject:             string(e.Subject),
		DurationMinutes:     e.DurationMinutes,
		ActivitiesCompleted: e.ActivitiesCompleted,
		CoinsEarned:         e.CoinsEarned,
		Accuracy:            e.Accuracy,
	})
	if err != nil {
		return "", fmt.Errorf("record session: %w", err)
	}
	return id, nil
}

// History returns logged entries newest first.
func (r *Recorder) History(ctx context.Context, opts store.QueryOpts) ([]store.SessionRecord, error) {
	records, err := r.repo.QuerySessions(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("session history: %w", err)
	}
	return records, nil
}

// Totals summarizes a set of session records for reporting.
type Totals struct {
	Sessions        int
	Activities      int
	Coins           int
	Minutes         float64
	AverageAccuracy float64
}

// Summarize aggregates records into Totals.
func Summarize(records []store.SessionRecord) Totals {
	var t Totals
	var accSum float64
	for _, r := range records {
		t.Sessions++
		t.Activities += r.ActivitiesCompleted
		t.Coins += r.CoinsEarned
		t.Minutes += r.DurationMinutes
		accSum += r.Accuracy
	}
	if t.Sessions > 0 {
		t.AverageAccuracy = accSum / float64(t.Sessions)
	}
	return t
}
