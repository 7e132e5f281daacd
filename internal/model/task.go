package model

import "time"

// TaskStatus is the fixed set of task states used by the backend.
type TaskStatus string

const (
	StatusUnassigned  TaskStatus = "Unassigned"
	StatusOngoing     TaskStatus = "Ongoing"
	StatusUnderReview TaskStatus = "Under Review"
	StatusCompleted   TaskStatus = "Completed"
)

// Valid reports whether s is one of the known statuses.
func (s TaskStatus) Valid() bool {
	switch s {
	case StatusUnassigned, StatusOngoing, StatusUnderReview, StatusCompleted:
		return true
	}
	return false
}

// Task is a task as seen by the aggregation layer.
//
// CollaboratorIDs and HasMemberCollaborator are derived fields: they are
// populated during an aggregation pass and never written back to the backend.
type Task struct {
	ID          int        `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      TaskStatus `json:"status"`
	Deadline    *time.Time `json:"deadline"` // UTC, optional
	OwnerID     int        `json:"owner_id"`
	ProjectID   *int       `json:"project_id"`

	// Derived during aggregation.
	CollaboratorIDs       []int `json:"collaborator_ids"`
	HasMemberCollaborator bool  `json:"has_member_collaborator"`
}
