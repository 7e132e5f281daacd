package usecase

import (
	"context"
	"fmt"

	"taskboard-aggregator/internal/model"
	"taskboard-aggregator/internal/taskboard"
)

// resolveMembers maps a team id to the flat member set for the given scope.
//
// Team scope reads the team roster directly. Department scope has to scan
// the full team listing first: the backend exposes no direct team-to-
// department lookup, so the parent department is found by id-equality over
// all teams.
func (uc *implUseCase) resolveMembers(ctx context.Context, teamID int, scope model.Scope) ([]int, error) {
	switch scope {
	case model.ScopeTeam:
		members, err := uc.org.ListTeamMembers(ctx, teamID)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", taskboard.ErrTeamLookup, err)
		}
		return uniqueUserIDs(members), nil

	case model.ScopeDepartment:
		teams, err := uc.org.ListTeams(ctx)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", taskboard.ErrTeamsListing, err)
		}

		var departmentID *int
		for _, t := range teams {
			if t.ID == teamID {
				departmentID = t.DepartmentID
				break
			}
		}
		if departmentID == nil {
			return nil, taskboard.ErrNotInDepartment
		}

		members, err := uc.org.ListDepartmentMembers(ctx, *departmentID)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", taskboard.ErrDepartmentLookup, err)
		}
		return uniqueUserIDs(members), nil
	}

	return nil, taskboard.ErrInvalidScope
}

// uniqueUserIDs extracts ids preserving first-seen order.
func uniqueUserIDs(users []model.User) []int {
	seen := make(map[int]struct{}, len(users))
	ids := make([]int, 0, len(users))
	for _, u := range users {
		if _, ok := seen[u.ID]; ok {
			continue
		}
		seen[u.ID] = struct{}{}
		ids = append(ids, u.ID)
	}
	return ids
}
