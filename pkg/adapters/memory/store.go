package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/rnacentral/pipeline-setup/pkg/domain"
)

// Store implements ports.AnswerStore in memory.
// Safe for concurrent use.
type Store struct {
	data map[string]*domain.Run
	mu   sync.RWMutex
}

// NewStore creates a new in-memory store.
func NewStore() *Store {
	return &Store{
		data: make(map[string]*domain.Run),
	}
}

// Save persists the run in memory.
func (s *Store) Save(ctx context.Context, run *domain.Run) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[run.ID] = copyRun(run)
	return nil
}

// Load retrieves the run from memory.
func (s *Store) Load(ctx context.Context, runID string) (*domain.Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	run, ok := s.data[runID]
	if !ok {
		return nil, domain.ErrRunNotFound
	}
	return copyRun(run), nil
}

// Delete removes the run.
func (s *Store) Delete(ctx context.Context, runID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, runID)
	return nil
}

// List returns all stored run IDs, sorted.
func (s *Store) List(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0, len(s.data))
	for id := range s.data {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}

// copyRun isolates stored runs from callers holding the original maps.
func copyRun(run *domain.Run) *domain.Run {
	c := *run
	c.Databases = run.Databases.Clone()
	c.Pipeline = run.Pipeline.Clone()
	return &c
}
