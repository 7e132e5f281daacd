package usecase

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"taskboard-aggregator/internal/model"
	"taskboard-aggregator/internal/taskboard"
)

// Aggregate runs one aggregation pass.
//
// The pass has two sequential fan-out waves: owned tasks per member, then
// collaborators per discovered task. Collaborator ids are unknown until the
// first wave has fully settled, so the waves never overlap. Within a wave,
// fetches run concurrently through a bounded worker pool and failures
// degrade to empty contributions.
func (uc *implUseCase) Aggregate(ctx context.Context, input taskboard.AggregateInput) (taskboard.AggregateOutput, error) {
	if !input.Scope.Valid() {
		return taskboard.AggregateOutput{}, taskboard.ErrInvalidScope
	}

	token := uc.store.beginPass()
	passID := uuid.NewString()
	uc.l.Infof(ctx, "aggregate: pass=%s user=%d scope=%s", passID, input.UserID, input.Scope)

	user, err := uc.org.GetUser(ctx, input.UserID)
	if err != nil {
		uc.store.commit(token, []model.Task{}, nil)
		return taskboard.AggregateOutput{}, fmt.Errorf("%w: %v", taskboard.ErrUserLookup, err)
	}

	if user.TeamID == nil {
		// Informational state, not an error: no roster calls are made.
		msg := "You are not assigned to a team"
		if input.Scope == model.ScopeDepartment {
			msg = "You are not assigned to a team or department"
		}
		stale := !uc.store.commit(token, []model.Task{}, nil)
		return taskboard.AggregateOutput{Tasks: []model.Task{}, Message: msg, Stale: stale}, nil
	}

	memberIDs, err := uc.resolveMembers(ctx, *user.TeamID, input.Scope)
	if err != nil {
		uc.store.commit(token, []model.Task{}, nil)
		return taskboard.AggregateOutput{}, err
	}

	if len(memberIDs) == 0 {
		stale := !uc.store.commit(token, []model.Task{}, memberIDs)
		return taskboard.AggregateOutput{Tasks: []model.Task{}, MemberIDs: memberIDs, Stale: stale}, nil
	}

	// Wave 1: owned tasks per member. Dedup by id, last write wins;
	// ownership is unique per task so collisions should not occur, but the
	// map keying makes re-fetches overwrite instead of duplicate.
	owned, failedTasks := uc.fetchOwnedTasks(ctx, memberIDs)

	byID := make(map[int]model.Task, len(owned))
	order := make([]int, 0, len(owned))
	for _, t := range owned {
		if _, ok := byID[t.ID]; !ok {
			order = append(order, t.ID)
		}
		t.CollaboratorIDs = []int{}
		byID[t.ID] = t
	}

	// Wave 2: collaborators per distinct task id.
	collaborators, failedCollabs := uc.fetchCollaborators(ctx, order)

	memberSet := make(map[int]struct{}, len(memberIDs))
	for _, id := range memberIDs {
		memberSet[id] = struct{}{}
	}

	final := make([]model.Task, 0, len(order))
	for _, id := range order {
		t := byID[id]
		if ids, ok := collaborators[id]; ok && ids != nil {
			t.CollaboratorIDs = ids
		}
		t.HasMemberCollaborator = intersects(t.CollaboratorIDs, memberSet)

		if _, owned := memberSet[t.OwnerID]; owned || t.HasMemberCollaborator {
			final = append(final, t)
		}
	}

	failed := failedTasks + failedCollabs
	if failed > 0 {
		uc.l.Warnf(ctx, "aggregate: pass=%s absorbed %d failed sub-fetches", passID, failed)
	}

	committed := uc.store.commit(token, final, memberIDs)
	if !committed {
		uc.l.Infof(ctx, "aggregate: pass=%s superseded, result discarded", passID)
	}

	return taskboard.AggregateOutput{
		Tasks:         final,
		MemberIDs:     memberIDs,
		FailedFetches: failed,
		Stale:         !committed,
	}, nil
}

// fetchOwnedTasks fans out one task fetch per member. Per-member failures
// degrade to an empty contribution. Results keep member order, matching the
// flattened concatenation the merge step expects.
func (uc *implUseCase) fetchOwnedTasks(ctx context.Context, memberIDs []int) ([]model.Task, int) {
	results := make([][]model.Task, len(memberIDs))
	var failed atomic.Int64

	sem := make(chan struct{}, uc.fanOutWidth)
	var wg sync.WaitGroup
	for i, memberID := range memberIDs {
		wg.Add(1)
		go func(i, memberID int) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			tasks, err := uc.tasks.ListTasksByOwner(ctx, memberID)
			if err != nil {
				uc.l.Warnf(ctx, "aggregate: task fetch for member %d degraded to empty: %v", memberID, err)
				failed.Add(1)
				return
			}
			results[i] = tasks
		}(i, memberID)
	}
	wg.Wait()

	var flat []model.Task
	for _, r := range results {
		flat = append(flat, r...)
	}
	return flat, int(failed.Load())
}

// fetchCollaborators fans out one collaborator fetch per task id. A failed
// fetch leaves the task with no collaborators for this pass.
func (uc *implUseCase) fetchCollaborators(ctx context.Context, taskIDs []int) (map[int][]int, int) {
	results := make([][]int, len(taskIDs))
	var failed atomic.Int64

	sem := make(chan struct{}, uc.fanOutWidth)
	var wg sync.WaitGroup
	for i, taskID := range taskIDs {
		wg.Add(1)
		go func(i, taskID int) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			ids, err := uc.tasks.ListTaskCollaborators(ctx, taskID)
			if err != nil {
				uc.l.Warnf(ctx, "aggregate: collaborator fetch for task %d degraded to empty: %v", taskID, err)
				failed.Add(1)
				return
			}
			results[i] = ids
		}(i, taskID)
	}
	wg.Wait()

	byTask := make(map[int][]int, len(taskIDs))
	for i, taskID := range taskIDs {
		if results[i] != nil {
			byTask[taskID] = results[i]
		}
	}
	return byTask, int(failed.Load())
}

func intersects(ids []int, set map[int]struct{}) bool {
	for _, id := range ids {
		if _, ok := set[id]; ok {
			return true
		}
	}
	return false
}
