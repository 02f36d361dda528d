package store

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"), nil)
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.db

	tests := []struct {
		pragma string
		want   string
	}{
		{"journal_mode", "wal"},
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestOpen_Idempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "twice.db")
	s1, err := Open(path, nil)
	require.NoError(t, err)
	require.NoError(t, s1.Close())

	s2, err := Open(path, nil)
	require.NoError(t, err)
	require.NoError(t, s2.Close())
}

func TestProfileRepo_GetMissing(t *testing.T) {
	repos := map[string]ProfileRepo{
		"sqlite": openTestStore(t).ProfileRepo(),
		"memory": NewMemoryProfileRepo(),
	}
	for name, repo := range repos {
		t.Run(name, func(t *testing.T) {
			p, err := repo.Get(context.Background(), "math")
			require.NoError(t, err)
			assert.Nil(t, p)
		})
	}
}

func TestProfileRepo_SetAndGet(t *testing.T) {
	repos := map[string]ProfileRepo{
		"sqlite": openTestStore(t).ProfileRepo(),
		"memory": NewMemoryProfileRepo(),
	}
	for name, repo := range repos {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			err := repo.Set(ctx, "math", func(cur *ProfileData) *ProfileData {
				assert.Nil(t, cur, "first update should see no profile")
				return &ProfileData{
					TotalAttempts:      10,
					CorrectAnswers:     8,
					DifficultyLevel:    1,
					RecentHistory:      []float64{80},
					MasteredConcepts:   []string{"counting"},
					StrugglingConcepts: []string{"subtraction"},
					ShowHints:          true,
				}
			})
			require.NoError(t, err)

			got, err := repo.Get(ctx, "math")
			require.NoError(t, err)
			require.NotNil(t, got)
			assert.Equal(t, "math", got.Subject)
			assert.Equal(t, 10, got.TotalAttempts)
			assert.Equal(t, []float64{80}, got.RecentHistory)
			assert.Equal(t, []string{"counting"}, got.MasteredConcepts)
			assert.True(t, got.ShowHints)

			// Second update reads its own previous write.
			err = repo.Set(ctx, "math", func(cur *ProfileData) *ProfileData {
				require.NotNil(t, cur)
				cur.TotalAttempts += 5
				return cur
			})
			require.NoError(t, err)

			got, err = repo.Get(ctx, "math")
			require.NoError(t, err)
			assert.Equal(t, 15, got.TotalAttempts)
		})
	}
}

func TestProfileRepo_NilUpdateIsNoop(t *testing.T) {
	repo := openTestStore(t).ProfileRepo()
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "art", func(*ProfileData) *ProfileData { return nil }))

	got, err := repo.Get(ctx, "art")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestProfileRepo_All(t *testing.T) {
	repo := openTestStore(t).ProfileRepo()
	ctx := context.Background()

	for _, s := range []string{"science", "math", "art"} {
		require.NoError(t, repo.Set(ctx, s, func(*ProfileData) *ProfileData {
			return &ProfileData{DifficultyLevel: 1}
		}))
	}

	all, err := repo.All(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "art", all[0].Subject)
	assert.Equal(t, "math", all[1].Subject)
	assert.Equal(t, "science", all[2].Subject)
}

func TestProfileRepo_ConcurrentSetsSerialize(t *testing.T) {
	repo := openTestStore(t).ProfileRepo()
	ctx := context.Background()

	const n = 20
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := repo.Set(ctx, "reading", func(cur *ProfileData) *ProfileData {
				if cur == nil {
					cur = &ProfileData{}
				}
				cur.TotalAttempts++
				return cur
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	got, err := repo.Get(ctx, "reading")
	require.NoError(t, err)
	assert.Equal(t, n, got.TotalAttempts)
}

func TestSessionLog_AppendAndQuery(t *testing.T) {
	s := openTestStore(t)
	repo := s.SessionLogRepo()
	ctx := context.Background()

	records := []SessionRecordData{
		{ID: "a", Subject: "math", DurationMinutes: 5, ActivitiesCompleted: 1, CoinsEarned: 10, Accuracy: 80},
		{ID: "b", Subject: "reading", DurationMinutes: 3, ActivitiesCompleted: 2, CoinsEarned: 4, Accuracy: 40},
		{ID: "c", Subject: "math", DurationMinutes: 7, ActivitiesCompleted: 1, CoinsEarned: 15, Accuracy: 120},
	}
	for _, r := range records {
		require.NoError(t, repo.AppendSession(ctx, r))
	}

	all, err := repo.QuerySessions(ctx, QueryOpts{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "c", all[0].ID, "newest first")
	assert.Equal(t, 120.0, all[0].Accuracy, "out-of-range accuracy stored as-is")
	assert.Greater(t, all[0].Sequence, all[1].Sequence)
	assert.False(t, all[0].Timestamp.IsZero())

	math, err := repo.QuerySessions(ctx, QueryOpts{Subject: "math"})
	require.NoError(t, err)
	assert.Len(t, math, 2)

	limited, err := repo.QuerySessions(ctx, QueryOpts{Limit: 1})
	require.NoError(t, err)
	require.Len(t, limited, 1)
	assert.Equal(t, "c", limited[0].ID)

	after, err := repo.QuerySessions(ctx, QueryOpts{After: all[2].Sequence})
	require.NoError(t, err)
	assert.Len(t, after, 2)

	future, err := repo.QuerySessions(ctx, QueryOpts{From: time.Now().Add(time.Hour)})
	require.NoError(t, err)
	assert.Empty(t, future)
}

func TestSessionLog_RequiresID(t *testing.T) {
	repo := openTestStore(t).SessionLogRepo()
	err := repo.AppendSession(context.Background(), SessionRecordData{Subject: "math"})
	assert.Error(t, err)
}

func TestLevelEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	require.NoError(t, repo.AppendLevelEvent(ctx, LevelEventData{
		Subject: "math", FromLevel: 1, ToLevel: 2, Accuracy: 80, Trigger: "level-up",
	}))
	require.NoError(t, repo.AppendLevelEvent(ctx, LevelEventData{
		Subject: "math", FromLevel: 2, ToLevel: 1, Accuracy: 20, Trigger: "level-down",
	}))

	events, err := repo.QueryLevelEvents(ctx, QueryOpts{Subject: "math"})
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "level-down", events[0].Trigger)
	assert.Equal(t, 2, events[0].FromLevel)
	assert.Equal(t, 1, events[0].ToLevel)
}

func TestSequenceSharedAcrossLogs(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.SessionLogRepo().AppendSession(ctx, SessionRecordData{ID: "x", Subject: "art"}))
	require.NoError(t, s.EventRepo().AppendLevelEvent(ctx, LevelEventData{Subject: "art", FromLevel: 1, ToLevel: 2, Trigger: "level-up"}))

	sessions, err := s.SessionLogRepo().QuerySessions(ctx, QueryOpts{})
	require.NoError(t, err)
	events, err := s.EventRepo().QueryLevelEvents(ctx, QueryOpts{})
	require.NoError(t, err)

	assert.Less(t, sessions[0].Sequence, events[0].Sequence)
}

func TestReset(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.ProfileRepo().Set(ctx, "math", func(*ProfileData) *ProfileData {
		return &ProfileData{DifficultyLevel: 2}
	}))
	require.NoError(t, s.SessionLogRepo().AppendSession(ctx, SessionRecordData{ID: "r", Subject: "math"}))

	require.NoError(t, s.Reset(ctx))

	p, err := s.ProfileRepo().Get(ctx, "math")
	require.NoError(t, err)
	assert.Nil(t, p)

	sessions, err := s.SessionLogRepo().QuerySessions(ctx, QueryOpts{})
	require.NoError(t, err)
	assert.Empty(t, sessions)
}

func TestDefaultDBPath_EnvOverride(t *testing.T) {
	p := filepath.Join(t.TempDir(), "nested", "custom.db")
	t.Setenv("BRIGHTPATH_DB", p)

	got, err := DefaultDBPath()
	require.NoError(t, err)
	assert.Equal(t, p, got)
	assert.DirExists(t, filepath.Dir(p))
}

func TestDefaultDBPath_XDG(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("BRIGHTPATH_DB", "")
	t.Setenv("XDG_DATA_HOME", dir)

	got, err := DefaultDBPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "brightpath", "brightpath.db"), got)
}
