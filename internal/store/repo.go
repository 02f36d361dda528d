package store

import (
	"context"
	"time"
)

// QueryOpts configures log queries with filtering and pagination.
type QueryOpts struct {
	Limit   int       // max results (0 = unlimited)
	After   int64     // sequence > After
	Before  int64     // sequence < Before
	From    time.Time // timestamp >= From
	To      time.Time // timestamp <= To
	Subject string    // exact subject match ("" = all)
}

// ProfileData is the persisted form of one subject's skill profile.
type ProfileData struct {
	Subject                string    `json:"subject"`
	TotalAttempts          int       `json:"total_attempts"`
	CorrectAnswers         int       `json:"correct_answers"`
	AverageTimePerQuestion float64   `json:"average_time_per_question"`
	Streak                 int       `json:"streak"`
	BestStreak             int       `json:"best_streak"`
	DifficultyLevel        int       `json:"difficulty_level"`
	LastSessionAccuracy    float64   `json:"last_session_accuracy"`
	RecentHistory          []float64 `json:"recent_performance_history"`
	StrugglingConcepts     []string  `json:"struggling_concepts"`
	MasteredConcepts       []string  `json:"mastered_concepts"`
	ShowHints              bool      `json:"show_hints"`
	ExtendedTime           bool      `json:"extended_time"`
	SimplifiedLanguage     bool      `json:"simplified_language"`
	VisualSupport          bool      `json:"visual_support"`
}

// ProfileUpdater receives the current profile (nil if none is stored) and
// returns the profile to store. Returning nil leaves the record untouched.
type ProfileUpdater func(current *ProfileData) *ProfileData

// ProfileRepo is durable key-value storage for subject profiles, keyed by
// subject. Implementations guarantee read-your-writes and last-writer-wins
// at the granularity of one profile.
type ProfileRepo interface {
	// Get returns the stored profile, or nil if the subject has none.
	Get(ctx context.Context, subject string) (*ProfileData, error)

	// Set applies update to the stored profile atomically.
	Set(ctx context.Context, subject string, update ProfileUpdater) error

	// All returns every stored profile.
	All(ctx context.Context) ([]*ProfileData, error)
}

// SessionRecordData captures one completed activity for historical reporting.
type SessionRecordData struct {
	ID                  string
	Subject             string
	DurationMinutes     float64
	ActivitiesCompleted int
	CoinsEarned         int
	Accuracy            float64
}

// SessionRecord is a session record as read back from the log.
type SessionRecord struct {
	SessionRecordData
	Sequence  int64
	Timestamp time.Time
}

// SessionLogRepo is the append-only raw session history.
type SessionLogRepo interface {
	// AppendSession records a completed activity.
	AppendSession(ctx context.Context, data SessionRecordData) error

	// QuerySessions returns records newest first.
	QuerySessions(ctx context.Context, opts QueryOpts) ([]SessionRecord, error)
}

// LevelEventData captures a difficulty level change.
type LevelEventData struct {
	Subject   string
	FromLevel int
	ToLevel   int
	Accuracy  float64
	Trigger   string
}

// LevelEventRecord is a level event as read back from the log.
type LevelEventRecord struct {
	LevelEventData
	Sequence  int64
	Timestamp time.Time
}

// EventRepo provides append access to domain events.
type EventRepo interface {
	// AppendLevelEvent records a difficulty level change.
	AppendLevelEvent(ctx context.Context, data LevelEventData) error

	// QueryLevelEvents returns level events newest first.
	QueryLevelEvents(ctx context.Context, opts QueryOpts) ([]LevelEventRecord, error)
}
