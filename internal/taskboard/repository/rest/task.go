package rest

import (
	"context"
	"fmt"
	"strings"
	"time"

	"taskboard-aggregator/internal/model"
)

// taskDTO is the raw backend task representation. The derived fields on
// model.Task (collaborator ids, member flag) do not exist here.
type taskDTO struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Status      string  `json:"status"`
	Deadline    *string `json:"deadline"`
	OwnerID     int     `json:"owner_id"`
	ProjectID   *int    `json:"project_id"`
}

// collaboratorDTO is one entry of GET /tasks/{taskId}/collaborators.
type collaboratorDTO struct {
	UserID int `json:"user_id"`
}

// ListTasksByOwner fetches all tasks owned by one user via
// GET /tasks?owner_id={id}.
func (r *implRepository) ListTasksByOwner(ctx context.Context, ownerID int) ([]model.Task, error) {
	var dtos []taskDTO
	if err := r.client.getJSON(ctx, fmt.Sprintf("/tasks?owner_id=%d", ownerID), &dtos); err != nil {
		return nil, err
	}

	tasks := make([]model.Task, 0, len(dtos))
	for _, d := range dtos {
		t, err := d.toModel()
		if err != nil {
			r.l.Warnf(ctx, "rest repository: skipping task %d with bad deadline: %v", d.ID, err)
			continue
		}
		tasks = append(tasks, t)
	}
	return tasks, nil
}

// ListTaskCollaborators fetches collaborator user ids via
// GET /tasks/{taskId}/collaborators.
func (r *implRepository) ListTaskCollaborators(ctx context.Context, taskID int) ([]int, error) {
	var dtos []collaboratorDTO
	if err := r.client.getJSON(ctx, fmt.Sprintf("/tasks/%d/collaborators", taskID), &dtos); err != nil {
		return nil, err
	}

	ids := make([]int, 0, len(dtos))
	for _, d := range dtos {
		ids = append(ids, d.UserID)
	}
	return ids, nil
}

func (d taskDTO) toModel() (model.Task, error) {
	t := model.Task{
		ID:              d.ID,
		Title:           d.Title,
		Description:     d.Description,
		Status:          model.TaskStatus(d.Status),
		OwnerID:         d.OwnerID,
		ProjectID:       d.ProjectID,
		CollaboratorIDs: []int{},
	}

	if d.Deadline != nil && *d.Deadline != "" {
		deadline, err := parseUTCTimestamp(*d.Deadline)
		if err != nil {
			return model.Task{}, err
		}
		t.Deadline = &deadline
	}
	return t, nil
}

// parseUTCTimestamp parses a backend timestamp. The backend emits naive UTC
// timestamps without a zone suffix, so a missing offset is treated as UTC.
func parseUTCTimestamp(s string) (time.Time, error) {
	if !strings.Contains(s, "Z") && !strings.Contains(s, "+") {
		s += "Z"
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timestamp %q: %w", s, err)
	}
	return t.UTC(), nil
}
