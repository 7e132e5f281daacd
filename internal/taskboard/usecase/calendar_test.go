package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"taskboard-aggregator/internal/model"
	"taskboard-aggregator/internal/taskboard"
)

func aggregateForExport(t *testing.T, cal *mockCalendar, owned []model.Task) taskboard.UseCase {
	t.Helper()

	org := &mockOrgRepo{
		user:        userWithTeam(10, 1),
		teamMembers: []model.User{userWithTeam(10, 1)},
	}
	tasks := &mockTaskRepo{tasksByOwner: map[int][]model.Task{10: owned}}

	uc := newUseCase(org, tasks, cal)
	if _, err := uc.Aggregate(context.Background(), taskboard.AggregateInput{UserID: 10, Scope: model.ScopeTeam}); err != nil {
		t.Fatalf("Aggregate: %v", err)
	}
	return uc
}

func TestExportDeadlinesWithoutCalendar(t *testing.T) {
	uc := newUseCase(&mockOrgRepo{}, &mockTaskRepo{}, nil)

	_, err := uc.ExportDeadlines(context.Background(), taskboard.ExportDeadlinesInput{})
	if !errors.Is(err, taskboard.ErrNoCalendar) {
		t.Errorf("expected ErrNoCalendar, got %v", err)
	}
}

func TestExportDeadlinesCreatesEvents(t *testing.T) {
	cal := &mockCalendar{}
	deadline := time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)

	uc := aggregateForExport(t, cal, []model.Task{
		{ID: 1, OwnerID: 10, Title: "ship release", Deadline: timePtr(deadline)},
		{ID: 2, OwnerID: 10, Title: "no deadline"},
	})

	out, err := uc.ExportDeadlines(context.Background(), taskboard.ExportDeadlinesInput{CalendarID: "team-cal"})
	if err != nil {
		t.Fatalf("ExportDeadlines: %v", err)
	}

	if len(out.Events) != 1 || out.Skipped != 1 {
		t.Fatalf("expected 1 event and 1 skipped, got %d/%d", len(out.Events), out.Skipped)
	}
	if out.Events[0].TaskID != 1 || out.Events[0].HtmlLink == "" {
		t.Errorf("unexpected exported event: %+v", out.Events[0])
	}

	if len(cal.created) != 1 {
		t.Fatalf("expected 1 created event, got %d", len(cal.created))
	}
	req := cal.created[0]
	if req.CalendarID != "team-cal" {
		t.Errorf("expected explicit calendar id to be used, got %q", req.CalendarID)
	}
	if !req.StartTime.Equal(deadline) || !req.EndTime.Equal(deadline.Add(time.Hour)) {
		t.Errorf("expected a one-hour event at the deadline, got %v..%v", req.StartTime, req.EndTime)
	}
}

func TestExportDeadlinesSkipsFailedCreates(t *testing.T) {
	cal := &mockCalendar{fail: true}
	deadline := time.Now().Add(24 * time.Hour)

	uc := aggregateForExport(t, cal, []model.Task{
		{ID: 1, OwnerID: 10, Title: "flaky", Deadline: timePtr(deadline)},
		{ID: 2, OwnerID: 10, Title: "also flaky", Deadline: timePtr(deadline)},
	})

	out, err := uc.ExportDeadlines(context.Background(), taskboard.ExportDeadlinesInput{})
	if err != nil {
		t.Fatalf("ExportDeadlines: %v", err)
	}
	if len(out.Events) != 0 || out.Skipped != 2 {
		t.Errorf("expected all creates skipped, got events=%d skipped=%d", len(out.Events), out.Skipped)
	}
}
