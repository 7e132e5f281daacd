package usecase

import (
	"sync"
	"sync/atomic"

	"taskboard-aggregator/internal/model"
)

// store is the single-writer home of the aggregated collection. It stands in
// for the reactive state of the consuming UI: each aggregation pass replaces
// the collection wholesale, and reads get an immutable snapshot.
//
// Passes are tagged with a monotonically increasing token. A completed pass
// commits only while its token is still the latest issued one, so a slow,
// stale pass can never overwrite a fresher result.
type store struct {
	mu        sync.RWMutex
	tasks     []model.Task
	memberIDs []int
	version   int64

	latest atomic.Int64
}

func newStore() *store {
	return &store{}
}

// beginPass issues the token for a new aggregation pass.
func (s *store) beginPass() int64 {
	return s.latest.Add(1)
}

// commit replaces the collection iff token is still the latest pass.
// Returns false when the pass has been superseded.
func (s *store) commit(token int64, tasks []model.Task, memberIDs []int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if token != s.latest.Load() {
		return false
	}
	s.tasks = tasks
	s.memberIDs = memberIDs
	s.version++
	return true
}

// snapshot returns the stored collection and its version. Callers must not
// mutate the returned slices.
func (s *store) snapshot() ([]model.Task, []int, int64) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tasks, s.memberIDs, s.version
}
