package http

import (
	"time"

	"taskboard-aggregator/internal/model"
	"taskboard-aggregator/internal/taskboard"
	"taskboard-aggregator/pkg/datemath"
)

// --- Request DTOs ---

type aggregateReq struct {
	UserID int    `form:"-"` // populated from the identity middleware
	Scope  string `form:"scope"`
}

func (r aggregateReq) validate() error { return nil }

func (r aggregateReq) toInput() taskboard.AggregateInput {
	scope := model.Scope(r.Scope)
	if r.Scope == "" {
		scope = model.ScopeTeam
	}
	return taskboard.AggregateInput{
		UserID: r.UserID,
		Scope:  scope,
	}
}

// ---

type viewReq struct {
	Member   int    `form:"member"`
	Status   string `form:"status"`
	Deadline string `form:"deadline"`
	Sort     string `form:"sort"`
}

func (r viewReq) validate() error { return nil }

func (r viewReq) toInput() taskboard.ViewInput {
	return taskboard.ViewInput{
		Criteria: taskboard.FilterCriteria{
			Member:         r.Member,
			Status:         model.TaskStatus(r.Status),
			DeadlineBucket: datemath.Bucket(r.Deadline),
		},
		Sort: taskboard.SortKey(r.Sort),
	}
}

// ---

type exportReq struct {
	CalendarID string `json:"calendar_id"`
}

func (r exportReq) validate() error { return nil }

func (r exportReq) toInput() taskboard.ExportDeadlinesInput {
	return taskboard.ExportDeadlinesInput{CalendarID: r.CalendarID}
}

// --- Response DTOs ---

type taskResp struct {
	ID                    int        `json:"id"`
	Title                 string     `json:"title"`
	Description           string     `json:"description,omitempty"`
	Status                string     `json:"status"`
	Deadline              *time.Time `json:"deadline"`
	OwnerID               int        `json:"owner_id"`
	ProjectID             *int       `json:"project_id,omitempty"`
	CollaboratorIDs       []int      `json:"collaborator_ids"`
	HasMemberCollaborator bool       `json:"has_member_collaborator"`
}

func newTaskResp(t model.Task) taskResp {
	return taskResp{
		ID:                    t.ID,
		Title:                 t.Title,
		Description:           t.Description,
		Status:                string(t.Status),
		Deadline:              t.Deadline,
		OwnerID:               t.OwnerID,
		ProjectID:             t.ProjectID,
		CollaboratorIDs:       t.CollaboratorIDs,
		HasMemberCollaborator: t.HasMemberCollaborator,
	}
}

func newTaskResps(tasks []model.Task) []taskResp {
	out := make([]taskResp, len(tasks))
	for i, t := range tasks {
		out[i] = newTaskResp(t)
	}
	return out
}

type aggregateResp struct {
	Tasks         []taskResp `json:"tasks"`
	MemberIDs     []int      `json:"member_ids"`
	Message       string     `json:"message,omitempty"`
	FailedFetches int        `json:"failed_fetches"`
	Stale         bool       `json:"stale"`
}

func (h *handler) newAggregateResp(out taskboard.AggregateOutput) aggregateResp {
	return aggregateResp{
		Tasks:         newTaskResps(out.Tasks),
		MemberIDs:     out.MemberIDs,
		Message:       out.Message,
		FailedFetches: out.FailedFetches,
		Stale:         out.Stale,
	}
}

type viewResp struct {
	Tasks        []taskResp     `json:"tasks"`
	Total        int            `json:"total"`
	StatusCounts map[string]int `json:"status_counts"`
	Version      int64          `json:"version"`
}

func (h *handler) newViewResp(out taskboard.ViewOutput) viewResp {
	counts := make(map[string]int, len(out.StatusCounts))
	for status, n := range out.StatusCounts {
		counts[string(status)] = n
	}
	return viewResp{
		Tasks:        newTaskResps(out.Tasks),
		Total:        out.Total,
		StatusCounts: counts,
		Version:      out.Version,
	}
}

type exportedEventResp struct {
	TaskID   int    `json:"task_id"`
	Title    string `json:"title"`
	HtmlLink string `json:"html_link"`
}

type exportResp struct {
	Events  []exportedEventResp `json:"events"`
	Skipped int                 `json:"skipped"`
}

func (h *handler) newExportResp(out taskboard.ExportDeadlinesOutput) exportResp {
	events := make([]exportedEventResp, len(out.Events))
	for i, e := range out.Events {
		events[i] = exportedEventResp{
			TaskID:   e.TaskID,
			Title:    e.Title,
			HtmlLink: e.HtmlLink,
		}
	}
	return exportResp{
		Events:  events,
		Skipped: out.Skipped,
	}
}
