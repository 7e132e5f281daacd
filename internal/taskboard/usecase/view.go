package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"taskboard-aggregator/internal/model"
	"taskboard-aggregator/internal/taskboard"
	"taskboard-aggregator/pkg/datemath"
)

// View recomputes a filtered/sorted view over the stored collection.
// It never re-fetches: criteria and sort key are independent of the
// collection's identity. Results are memoized per (version, criteria, sort);
// the cache TTL bounds how stale the now-dependent deadline buckets can get.
func (uc *implUseCase) View(ctx context.Context, input taskboard.ViewInput) (taskboard.ViewOutput, error) {
	if input.Sort == "" {
		input.Sort = taskboard.SortDefault
	}
	if !input.Sort.Valid() {
		return taskboard.ViewOutput{}, fmt.Errorf("invalid sort key %q", input.Sort)
	}
	if input.Criteria.Status != "" && !input.Criteria.Status.Valid() {
		return taskboard.ViewOutput{}, fmt.Errorf("invalid status %q", input.Criteria.Status)
	}
	if input.Criteria.DeadlineBucket != "" && !input.Criteria.DeadlineBucket.Valid() {
		return taskboard.ViewOutput{}, fmt.Errorf("invalid deadline bucket %q", input.Criteria.DeadlineBucket)
	}

	tasks, _, version := uc.store.snapshot()

	key := viewCacheKey(version, input)
	if cached, ok := uc.viewCache.Get(key); ok {
		return cached, nil
	}

	filtered := ComputeView(tasks, input.Criteria, input.Sort, uc.windows, time.Now())

	out := taskboard.ViewOutput{
		Tasks:        filtered,
		Total:        len(filtered),
		StatusCounts: statusCounts(tasks),
		Version:      version,
	}
	uc.viewCache.Add(key, out)
	return out, nil
}

// ComputeView is the pure filter/sort transform: conjunctive criteria, then
// deadline ordering. The input slice is never mutated.
func ComputeView(tasks []model.Task, criteria taskboard.FilterCriteria, key taskboard.SortKey, windows *datemath.Windows, now time.Time) []model.Task {
	filtered := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		if matchesCriteria(t, criteria, windows, now) {
			filtered = append(filtered, t)
		}
	}
	return sortByDeadline(filtered, key)
}

// matchesCriteria applies every non-empty criterion conjunctively.
func matchesCriteria(t model.Task, c taskboard.FilterCriteria, windows *datemath.Windows, now time.Time) bool {
	if c.Member != 0 {
		if t.OwnerID != c.Member && !containsInt(t.CollaboratorIDs, c.Member) {
			return false
		}
	}
	if c.Status != "" && t.Status != c.Status {
		return false
	}
	if c.DeadlineBucket != "" {
		// A task with no deadline never matches a deadline bucket.
		if t.Deadline == nil {
			return false
		}
		if !windows.Matches(c.DeadlineBucket, *t.Deadline, now) {
			return false
		}
	}
	return true
}

// sortByDeadline orders tasks by deadline. Tasks without a deadline sort to
// the end regardless of direction; SortDefault keeps insertion order.
func sortByDeadline(tasks []model.Task, key taskboard.SortKey) []model.Task {
	if key != taskboard.SortDeadlineAsc && key != taskboard.SortDeadlineDesc {
		return tasks
	}

	sorted := make([]model.Task, len(tasks))
	copy(sorted, tasks)

	sort.SliceStable(sorted, func(i, j int) bool {
		di, dj := sorted[i].Deadline, sorted[j].Deadline
		switch {
		case di == nil && dj == nil:
			return false
		case di == nil:
			return false // nil always last
		case dj == nil:
			return true
		}
		if key == taskboard.SortDeadlineAsc {
			return di.Before(*dj)
		}
		return di.After(*dj)
	})
	return sorted
}

func statusCounts(tasks []model.Task) map[model.TaskStatus]int {
	counts := make(map[model.TaskStatus]int)
	for _, t := range tasks {
		counts[t.Status]++
	}
	return counts
}

func viewCacheKey(version int64, input taskboard.ViewInput) string {
	return fmt.Sprintf("%d|%d|%s|%s|%s",
		version, input.Criteria.Member, input.Criteria.Status, input.Criteria.DeadlineBucket, input.Sort)
}

func containsInt(ids []int, want int) bool {
	for _, id := range ids {
		if id == want {
			return true
		}
	}
	return false
}
