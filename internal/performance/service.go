package performance

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/abhisek/brightpath/internal/rewards"
	"github.com/abhisek/brightpath/internal/session"
	"github.com/abhisek/brightpath/internal/store"
	"github.com/abhisek/brightpath/internal/subject"
)

// SessionMeta carries the session-log fields that the adjuster does not use.
type SessionMeta struct {
	DurationMinutes     float64
	ActivitiesCompleted int // 0 is treated as one activity
}

// Outcome is the result of folding one completed session into a profile.
type Outcome struct {
	Before     SubjectProfile
	After      SubjectProfile
	Accuracy   float64
	Transition *LevelTransition // nil if the level did not change
	Award      rewards.Award
	RecordID   string // empty if the session log write failed
}

// Service applies completed sessions to the durable subject profiles.
type Service struct {
	profiles store.ProfileRepo
	events   store.EventRepo
	recorder *session.Recorder
	logger   *zap.Logger
}

// NewService creates a performance service. events and recorder may be nil,
// in which case level events and the session log are skipped.
func NewService(profiles store.ProfileRepo, events store.EventRepo, recorder *session.Recorder, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		profiles: profiles,
		events:   events,
		recorder: recorder,
		logger:   logger,
	}
}

// GetSubjectPerformance returns the profile for a subject. A subject with no
// sessions yields the default profile, which is not persisted.
func (s *Service) GetSubjectPerformance(ctx context.Context, sub subject.Subject) (SubjectProfile, error) {
	if !sub.Valid() {
		return SubjectProfile{}, fmt.Errorf("%w: %q", subject.ErrUnknownSubject, sub)
	}
	d, err := s.profiles.Get(ctx, string(sub))
	if err != nil {
		return SubjectProfile{}, fmt.Errorf("load %s profile: %w", sub, err)
	}
	return fromData(d, sub), nil
}

// All returns the stored profiles in canonical subject order. Subjects
// without sessions are omitted.
func (s *Service) All(ctx context.Context) ([]SubjectProfile, error) {
	stored, err := s.profiles.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load profiles: %w", err)
	}

	bySubject := make(map[subject.Subject]*store.ProfileData, len(stored))
	for _, d := range stored {
		sub := subject.Subject(d.Subject)
		if !sub.Valid() {
			s.logger.Warn("skipping profile with unknown subject", zap.String("subject", d.Subject))
			continue
		}
		bySubject[sub] = d
	}

	out := make([]SubjectProfile, 0, len(bySubject))
	for _, sub := range subject.All() {
		if d, ok := bySubject[sub]; ok {
			out = append(out, fromData(d, sub))
		}
	}
	return out, nil
}

// CompleteSession folds one session result into its subject profile,
// persists it, and records the session in the log.
func (s *Service) CompleteSession(ctx context.Context, res SessionResult, meta SessionMeta) (*Outcome, error) {
	if !res.Subject.Valid() {
		return nil, fmt.Errorf("%w: %q", subject.ErrUnknownSubject, res.Subject)
	}
	if !res.AgeGroup.Valid() {
		return nil, fmt.Errorf("%w: %q", subject.ErrUnknownAgeGroup, res.AgeGroup)
	}

	var before, after SubjectProfile
	err := s.profiles.Set(ctx, string(res.Subject), func(cur *store.ProfileData) *store.ProfileData {
		before = fromData(cur, res.Subject)
		after = Update(before, res)
		return toData(after)
	})
	if err != nil {
		return nil, fmt.Errorf("update %s profile: %w", res.Subject, err)
	}

	out := &Outcome{
		Before:     before,
		After:      after,
		Accuracy:   after.LastSessionAccuracy,
		Transition: levelTransition(before, after, res.AgeGroup),
	}
	log := s.logger.With(zap.String("subject", string(res.Subject)))

	if out.Transition != nil {
		log.Info("difficulty level changed",
			zap.Int("from", out.Transition.From),
			zap.Int("to", out.Transition.To),
			zap.String("trigger", out.Transition.Trigger))
		if s.events != nil {
			if err := s.events.AppendLevelEvent(ctx, store.LevelEventData{
				Subject:   string(res.Subject),
				FromLevel: out.Transition.From,
				ToLevel:   out.Transition.To,
				Accuracy:  out.Transition.Accuracy,
				Trigger:   out.Transition.Trigger,
			}); err != nil {
				log.Warn("failed to log level event", zap.Error(err))
			}
		}
	}

	activities := meta.ActivitiesCompleted
	if activities <= 0 {
		activities = 1
	}
	out.Award = rewards.ForSession(out.Accuracy, activities, after.Streak)

	if s.recorder != nil {
		id, err := s.recorder.Record(ctx, session.Entry{
			Subject:             res.Subject,
			DurationMinutes:     meta.DurationMinutes,
			ActivitiesCompleted: activities,
			CoinsEarned:         out.Award.Coins,
			Accuracy:            out.Accuracy,
		})
		if err != nil {
			log.Warn("failed to record session", zap.Error(err))
		}
		out.RecordID = id
	}

	log.Info("session completed",
		zap.Float64("accuracy", out.Accuracy),
		zap.Int("level", after.DifficultyLevel),
		zap.Int("streak", after.Streak),
		zap.Int("coins", out.Award.Coins))
	return out, nil
}

// LevelHistory returns the most recent level changes for a subject, newest
// first. limit <= 0 returns all of them.
func (s *Service) LevelHistory(ctx context.Context, sub subject.Subject, limit int) ([]store.LevelEventRecord, error) {
	if !sub.Valid() {
		return nil, fmt.Errorf("%w: %q", subject.ErrUnknownSubject, sub)
	}
	if s.events == nil {
		return nil, nil
	}
	events, err := s.events.QueryLevelEvents(ctx, store.QueryOpts{Subject: string(sub), Limit: max(limit, 0)})
	if err != nil {
		return nil, fmt.Errorf("load %s level history: %w", sub, err)
	}
	return events, nil
}

// levelTransition describes the level change between two profiles, or nil.
func levelTransition(before, after SubjectProfile, age subject.AgeGroup) *LevelTransition {
	if before.DifficultyLevel == after.DifficultyLevel {
		return nil
	}
	t := &LevelTransition{
		Subject:  after.Subject,
		From:     before.DifficultyLevel,
		To:       after.DifficultyLevel,
		Accuracy: after.LastSessionAccuracy,
	}
	switch {
	case after.DifficultyLevel > before.DifficultyLevel:
		t.Trigger = "level-up"
	case after.DifficultyLevel == age.LevelCap():
		t.Trigger = "age-cap"
	default:
		t.Trigger = "level-down"
	}
	return t
}
