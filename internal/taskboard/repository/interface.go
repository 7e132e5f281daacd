package repository

import (
	"context"

	"taskboard-aggregator/internal/model"
)

// OrgRepository is the interface for user/team/department lookups against
// the backend user service.
type OrgRepository interface {
	GetUser(ctx context.Context, userID int) (model.User, error)
	ListTeamMembers(ctx context.Context, teamID int) ([]model.User, error)
	ListTeams(ctx context.Context) ([]model.Team, error)
	ListDepartmentMembers(ctx context.Context, departmentID int) ([]model.User, error)
}

// TaskRepository is the interface for task and collaborator retrieval
// against the backend task service.
type TaskRepository interface {
	ListTasksByOwner(ctx context.Context, ownerID int) ([]model.Task, error)
	ListTaskCollaborators(ctx context.Context, taskID int) ([]int, error)
}
