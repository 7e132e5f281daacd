package usecase_test

import (
	"context"
	"reflect"
	"testing"
	"time"

	"taskboard-aggregator/internal/model"
	"taskboard-aggregator/internal/taskboard"
	"taskboard-aggregator/internal/taskboard/usecase"
	"taskboard-aggregator/pkg/datemath"
)

func mustWindows(t *testing.T, tz string) *datemath.Windows {
	t.Helper()
	w, err := datemath.NewWindows(tz)
	if err != nil {
		t.Fatalf("NewWindows(%q): %v", tz, err)
	}
	return w
}

func taskIDs(tasks []model.Task) []int {
	ids := make([]int, 0, len(tasks))
	for _, t := range tasks {
		ids = append(ids, t.ID)
	}
	return ids
}

func TestComputeViewMemberFilterMatchesOwnerOrCollaborator(t *testing.T) {
	tasks := []model.Task{
		{ID: 1, OwnerID: 10, CollaboratorIDs: []int{}},
		{ID: 2, OwnerID: 20, CollaboratorIDs: []int{10}},
		{ID: 3, OwnerID: 30, CollaboratorIDs: []int{40}},
	}

	got := usecase.ComputeView(tasks, taskboard.FilterCriteria{Member: 10}, taskboard.SortDefault, mustWindows(t, "UTC"), time.Now())
	if !reflect.DeepEqual(taskIDs(got), []int{1, 2}) {
		t.Errorf("expected tasks owned by or shared with member 10, got %v", taskIDs(got))
	}
}

func TestComputeViewStatusFilter(t *testing.T) {
	tasks := []model.Task{
		{ID: 1, Status: model.StatusOngoing},
		{ID: 2, Status: model.StatusCompleted},
		{ID: 3, Status: model.StatusOngoing},
	}

	got := usecase.ComputeView(tasks, taskboard.FilterCriteria{Status: model.StatusOngoing}, taskboard.SortDefault, mustWindows(t, "UTC"), time.Now())
	if !reflect.DeepEqual(taskIDs(got), []int{1, 3}) {
		t.Errorf("expected ongoing tasks only, got %v", taskIDs(got))
	}
}

func TestComputeViewTodayBucketBoundaries(t *testing.T) {
	windows := mustWindows(t, "UTC")
	now := time.Date(2026, 3, 14, 15, 0, 0, 0, time.UTC)

	tasks := []model.Task{
		{ID: 1, Deadline: timePtr(time.Date(2026, 3, 14, 23, 59, 0, 0, time.UTC))}, // later today
		{ID: 2, Deadline: timePtr(time.Date(2026, 3, 15, 0, 1, 0, 0, time.UTC))},   // just past midnight
		{ID: 3, Deadline: timePtr(time.Date(2026, 3, 14, 0, 30, 0, 0, time.UTC))},  // earlier today
		{ID: 4, Deadline: nil},
	}

	got := usecase.ComputeView(tasks, taskboard.FilterCriteria{DeadlineBucket: datemath.BucketToday}, taskboard.SortDefault, windows, now)
	if !reflect.DeepEqual(taskIDs(got), []int{1, 3}) {
		t.Errorf("today bucket should keep same-calendar-date deadlines only, got %v", taskIDs(got))
	}
}

func TestComputeViewConjunctiveCriteria(t *testing.T) {
	windows := mustWindows(t, "UTC")
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	today := timePtr(time.Date(2026, 3, 14, 18, 0, 0, 0, time.UTC))

	tasks := []model.Task{
		{ID: 1, OwnerID: 10, Status: model.StatusOngoing, Deadline: today},
		{ID: 2, OwnerID: 10, Status: model.StatusCompleted, Deadline: today}, // wrong status
		{ID: 3, OwnerID: 20, Status: model.StatusOngoing, Deadline: today},   // wrong member
		{ID: 4, OwnerID: 10, Status: model.StatusOngoing, Deadline: nil},     // no deadline
	}

	criteria := taskboard.FilterCriteria{
		Member:         10,
		Status:         model.StatusOngoing,
		DeadlineBucket: datemath.BucketToday,
	}
	got := usecase.ComputeView(tasks, criteria, taskboard.SortDefault, windows, now)
	if !reflect.DeepEqual(taskIDs(got), []int{1}) {
		t.Errorf("all criteria must hold at once, got %v", taskIDs(got))
	}
}

func TestComputeViewDeadlineSortNilLast(t *testing.T) {
	windows := mustWindows(t, "UTC")
	d1 := timePtr(time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC))
	d2 := timePtr(time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC))

	tasks := []model.Task{
		{ID: 1, Deadline: nil},
		{ID: 2, Deadline: d2},
		{ID: 3, Deadline: d1},
		{ID: 4, Deadline: nil},
	}

	asc := usecase.ComputeView(tasks, taskboard.FilterCriteria{}, taskboard.SortDeadlineAsc, windows, time.Now())
	if !reflect.DeepEqual(taskIDs(asc), []int{3, 2, 1, 4}) {
		t.Errorf("asc: expected [3 2 1 4], got %v", taskIDs(asc))
	}

	desc := usecase.ComputeView(tasks, taskboard.FilterCriteria{}, taskboard.SortDeadlineDesc, windows, time.Now())
	if !reflect.DeepEqual(taskIDs(desc), []int{2, 3, 1, 4}) {
		t.Errorf("desc: expected [2 3 1 4], got %v", taskIDs(desc))
	}
}

func TestComputeViewIsIdempotentAndNonMutating(t *testing.T) {
	windows := mustWindows(t, "UTC")
	d1 := timePtr(time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC))
	d2 := timePtr(time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC))

	tasks := []model.Task{
		{ID: 1, Deadline: d2, Status: model.StatusOngoing},
		{ID: 2, Deadline: nil, Status: model.StatusOngoing},
		{ID: 3, Deadline: d1, Status: model.StatusCompleted},
	}
	original := make([]model.Task, len(tasks))
	copy(original, tasks)

	criteria := taskboard.FilterCriteria{Status: model.StatusOngoing}
	once := usecase.ComputeView(tasks, criteria, taskboard.SortDeadlineAsc, windows, time.Now())
	twice := usecase.ComputeView(once, criteria, taskboard.SortDeadlineAsc, windows, time.Now())

	if !reflect.DeepEqual(taskIDs(once), taskIDs(twice)) {
		t.Errorf("applying the same view twice changed the result: %v vs %v", taskIDs(once), taskIDs(twice))
	}
	if !reflect.DeepEqual(tasks, original) {
		t.Error("ComputeView mutated its input slice")
	}
}

func TestComputeViewDefaultSortKeepsInsertionOrder(t *testing.T) {
	windows := mustWindows(t, "UTC")
	d1 := timePtr(time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC))
	d2 := timePtr(time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC))

	tasks := []model.Task{
		{ID: 1, Deadline: d1},
		{ID: 2, Deadline: d2},
		{ID: 3, Deadline: nil},
	}

	got := usecase.ComputeView(tasks, taskboard.FilterCriteria{}, taskboard.SortDefault, windows, time.Now())
	if !reflect.DeepEqual(taskIDs(got), []int{1, 2, 3}) {
		t.Errorf("default sort must preserve insertion order, got %v", taskIDs(got))
	}
}

func TestViewValidatesInput(t *testing.T) {
	uc := newUseCase(&mockOrgRepo{}, &mockTaskRepo{}, nil)
	ctx := context.Background()

	cases := []struct {
		name  string
		input taskboard.ViewInput
	}{
		{"bad sort", taskboard.ViewInput{Sort: "deadline_sideways"}},
		{"bad status", taskboard.ViewInput{Criteria: taskboard.FilterCriteria{Status: "Paused"}}},
		{"bad bucket", taskboard.ViewInput{Criteria: taskboard.FilterCriteria{DeadlineBucket: "fortnight"}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := uc.View(ctx, tc.input); err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}
}

func TestViewReflectsLatestAggregation(t *testing.T) {
	ctx := context.Background()
	deadline := timePtr(time.Now().Add(2 * time.Hour))

	org := &mockOrgRepo{
		user:        userWithTeam(10, 1),
		teamMembers: []model.User{userWithTeam(10, 1)},
	}
	tasks := &mockTaskRepo{
		tasksByOwner: map[int][]model.Task{
			10: {{ID: 1, OwnerID: 10, Status: model.StatusOngoing, Deadline: deadline}},
		},
	}
	uc := newUseCase(org, tasks, nil)

	if _, err := uc.Aggregate(ctx, taskboard.AggregateInput{UserID: 10, Scope: model.ScopeTeam}); err != nil {
		t.Fatalf("Aggregate: %v", err)
	}

	first, err := uc.View(ctx, taskboard.ViewInput{})
	if err != nil {
		t.Fatalf("View: %v", err)
	}
	if first.Total != 1 || first.Version != 1 {
		t.Fatalf("expected 1 task at version 1, got total=%d version=%d", first.Total, first.Version)
	}
	if first.StatusCounts[model.StatusOngoing] != 1 {
		t.Errorf("unexpected status counts: %v", first.StatusCounts)
	}

	// Memoized: same input at the same version returns the same result.
	again, err := uc.View(ctx, taskboard.ViewInput{})
	if err != nil {
		t.Fatalf("View: %v", err)
	}
	if !reflect.DeepEqual(first, again) {
		t.Error("repeated view at the same version diverged")
	}

	// A new aggregation pass bumps the version and invalidates the view.
	tasks.tasksByOwner[10] = append(tasks.tasksByOwner[10],
		model.Task{ID: 2, OwnerID: 10, Status: model.StatusCompleted})
	if _, err := uc.Aggregate(ctx, taskboard.AggregateInput{UserID: 10, Scope: model.ScopeTeam}); err != nil {
		t.Fatalf("Aggregate: %v", err)
	}

	second, err := uc.View(ctx, taskboard.ViewInput{})
	if err != nil {
		t.Fatalf("View: %v", err)
	}
	if second.Total != 2 || second.Version != 2 {
		t.Errorf("expected 2 tasks at version 2, got total=%d version=%d", second.Total, second.Version)
	}
}

func TestViewStatusCountsCoverWholeCollection(t *testing.T) {
	ctx := context.Background()

	org := &mockOrgRepo{
		user:        userWithTeam(10, 1),
		teamMembers: []model.User{userWithTeam(10, 1)},
	}
	tasks := &mockTaskRepo{
		tasksByOwner: map[int][]model.Task{
			10: {
				{ID: 1, OwnerID: 10, Status: model.StatusOngoing},
				{ID: 2, OwnerID: 10, Status: model.StatusCompleted},
				{ID: 3, OwnerID: 10, Status: model.StatusCompleted},
			},
		},
	}
	uc := newUseCase(org, tasks, nil)

	if _, err := uc.Aggregate(ctx, taskboard.AggregateInput{UserID: 10, Scope: model.ScopeTeam}); err != nil {
		t.Fatalf("Aggregate: %v", err)
	}

	// Counts are computed over the full collection even when the filtered
	// view is narrower.
	out, err := uc.View(ctx, taskboard.ViewInput{
		Criteria: taskboard.FilterCriteria{Status: model.StatusOngoing},
	})
	if err != nil {
		t.Fatalf("View: %v", err)
	}
	if out.Total != 1 {
		t.Errorf("expected 1 filtered task, got %d", out.Total)
	}
	if out.StatusCounts[model.StatusOngoing] != 1 || out.StatusCounts[model.StatusCompleted] != 2 {
		t.Errorf("unexpected status counts: %v", out.StatusCounts)
	}
}
