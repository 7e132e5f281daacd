package rest

import (
	"context"
	"fmt"

	"taskboard-aggregator/internal/model"
	pkgLog "taskboard-aggregator/pkg/log"
)

type implRepository struct {
	client *Client
	l      pkgLog.Logger
}

// New creates a backend repository over the given client. The returned
// value implements both repository.OrgRepository and repository.TaskRepository.
func New(client *Client, l pkgLog.Logger) *implRepository {
	return &implRepository{
		client: client,
		l:      l,
	}
}

// GetUser fetches a single user record via GET /user/{userId}.
func (r *implRepository) GetUser(ctx context.Context, userID int) (model.User, error) {
	var user model.User
	if err := r.client.getJSON(ctx, fmt.Sprintf("/user/%d", userID), &user); err != nil {
		return model.User{}, err
	}
	return user, nil
}

// ListTeamMembers fetches the team roster via GET /user/team/{teamId}.
func (r *implRepository) ListTeamMembers(ctx context.Context, teamID int) ([]model.User, error) {
	var members []model.User
	if err := r.client.getJSON(ctx, fmt.Sprintf("/user/team/%d", teamID), &members); err != nil {
		return nil, err
	}
	return members, nil
}

// ListTeams fetches all teams via GET /user/teams. The backend has no
// direct team-to-department lookup, so callers scan this listing.
func (r *implRepository) ListTeams(ctx context.Context) ([]model.Team, error) {
	var teams []model.Team
	if err := r.client.getJSON(ctx, "/user/teams", &teams); err != nil {
		return nil, err
	}
	return teams, nil
}

// ListDepartmentMembers fetches the department roster via
// GET /user/department/{departmentId}.
func (r *implRepository) ListDepartmentMembers(ctx context.Context, departmentID int) ([]model.User, error) {
	var members []model.User
	if err := r.client.getJSON(ctx, fmt.Sprintf("/user/department/%d", departmentID), &members); err != nil {
		return nil, err
	}
	return members, nil
}
