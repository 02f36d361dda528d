package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"
)

// MemoryProfileRepo is an in-process ProfileRepo. Profiles are stored as
// JSON so callers never share slices with the repo.
type MemoryProfileRepo struct {
	mu       sync.Mutex
	profiles map[string][]byte
}

// NewMemoryProfileRepo returns an empty in-memory repo.
func NewMemoryProfileRepo() *MemoryProfileRepo {
	return &MemoryProfileRepo{profiles: make(map[string][]byte)}
}

func (m *MemoryProfileRepo) Get(_ context.Context, subject string) (*ProfileData, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.load(subject)
}

func (m *MemoryProfileRepo) Set(_ context.Context, subject string, update ProfileUpdater) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	current, err := m.load(subject)
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
	m.profiles[subject] = raw
	return nil
}

func (m *MemoryProfileRepo) All(_ context.Context) ([]*ProfileData, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	keys := make([]string, 0, len(m.profiles))
	for k := range m.profiles {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]*ProfileData, 0, len(keys))
	for _, k := range keys {
		p, err := m.load(k)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

func (m *MemoryProfileRepo) load(subject string) (*ProfileData, error) {
	raw, ok := m.profiles[subject]
	if !ok {
		return nil, nil
	}
	return decodeProfile(string(raw))
}
