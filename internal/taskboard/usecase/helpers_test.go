package usecase_test

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"taskboard-aggregator/internal/model"
	"taskboard-aggregator/internal/taskboard"
	"taskboard-aggregator/internal/taskboard/usecase"
	"taskboard-aggregator/pkg/gcalendar"
)

// mock dependencies

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

type mockOrgRepo struct {
	user    model.User
	userErr error

	teamMembers []model.User
	teamErr     error

	teams    []model.Team
	teamsErr error

	deptMembers []model.User
	deptErr     error

	rosterCalls atomic.Int64
}

func (m *mockOrgRepo) GetUser(ctx context.Context, userID int) (model.User, error) {
	if m.userErr != nil {
		return model.User{}, m.userErr
	}
	return m.user, nil
}

func (m *mockOrgRepo) ListTeamMembers(ctx context.Context, teamID int) ([]model.User, error) {
	m.rosterCalls.Add(1)
	if m.teamErr != nil {
		return nil, m.teamErr
	}
	return m.teamMembers, nil
}

func (m *mockOrgRepo) ListTeams(ctx context.Context) ([]model.Team, error) {
	m.rosterCalls.Add(1)
	if m.teamsErr != nil {
		return nil, m.teamsErr
	}
	return m.teams, nil
}

func (m *mockOrgRepo) ListDepartmentMembers(ctx context.Context, departmentID int) ([]model.User, error) {
	m.rosterCalls.Add(1)
	if m.deptErr != nil {
		return nil, m.deptErr
	}
	return m.deptMembers, nil
}

type mockTaskRepo struct {
	tasksByOwner map[int][]model.Task
	failOwners   map[int]bool

	collaborators map[int][]int
	failTasks     map[int]bool

	taskFetches atomic.Int64
}

func (m *mockTaskRepo) ListTasksByOwner(ctx context.Context, ownerID int) ([]model.Task, error) {
	m.taskFetches.Add(1)
	if m.failOwners[ownerID] {
		return nil, errors.New("connection refused")
	}
	return m.tasksByOwner[ownerID], nil
}

func (m *mockTaskRepo) ListTaskCollaborators(ctx context.Context, taskID int) ([]int, error) {
	if m.failTasks[taskID] {
		return nil, errors.New("connection refused")
	}
	return m.collaborators[taskID], nil
}

type mockCalendar struct {
	fail    bool
	created []gcalendar.CreateEventRequest
}

func (m *mockCalendar) CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error) {
	if m.fail {
		return nil, errors.New("cal error")
	}
	m.created = append(m.created, req)
	return &gcalendar.Event{HtmlLink: "http://cal.link/" + req.Summary}, nil
}

// builders

func intPtr(v int) *int { return &v }

func timePtr(t time.Time) *time.Time { return &t }

func userWithTeam(id, teamID int) model.User {
	return model.User{ID: id, TeamID: intPtr(teamID)}
}

func newUseCase(org *mockOrgRepo, tasks *mockTaskRepo, cal usecase.CalendarClient) taskboard.UseCase {
	uc, err := usecase.New(&mockLogger{}, org, tasks, cal, usecase.Config{
		FanOutWidth: 4,
		Timezone:    "UTC",
	})
	if err != nil {
		panic(err)
	}
	return uc
}
