package taskboard

import "errors"

// Domain-specific errors for the taskboard package.
//
// Lookup failures are fatal to an aggregation pass. Per-member task fetches
// and per-task collaborator fetches are NOT represented here: those degrade
// to empty partial results by contract.
var (
	ErrUserLookup       = errors.New("failed to fetch user data")
	ErrTeamLookup       = errors.New("failed to fetch team members")
	ErrTeamsListing     = errors.New("failed to fetch teams")
	ErrNotInDepartment  = errors.New("team is not assigned to a department")
	ErrDepartmentLookup = errors.New("failed to fetch department users")
	ErrInvalidScope     = errors.New("unknown scope")
	ErrNoCalendar       = errors.New("calendar export is not configured")
)
