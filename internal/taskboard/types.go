package taskboard

import (
	"taskboard-aggregator/internal/model"
	"taskboard-aggregator/pkg/datemath"
)

// AggregateInput identifies the acting user and the requested scope.
type AggregateInput struct {
	UserID int
	Scope  model.Scope
}

// AggregateOutput is the result of one aggregation pass.
//
// Message is set for the informational no-team state (empty collection,
// human-readable explanation); it is not an error. FailedFetches counts
// per-member and per-task sub-fetches that silently degraded to empty
// results during the pass.
type AggregateOutput struct {
	Tasks         []model.Task
	MemberIDs     []int
	Message       string
	FailedFetches int
	Stale         bool // true when a newer pass superseded this one
}

// SortKey selects deadline ordering for the view.
type SortKey string

const (
	SortDefault      SortKey = "default"
	SortDeadlineAsc  SortKey = "deadline_asc"
	SortDeadlineDesc SortKey = "deadline_desc"
)

// Valid reports whether k is a known sort key.
func (k SortKey) Valid() bool {
	return k == SortDefault || k == SortDeadlineAsc || k == SortDeadlineDesc
}

// FilterCriteria is a sparse, conjunctive predicate set over the aggregated
// collection. Zero values impose no constraint.
type FilterCriteria struct {
	Member         int // 0 = no member filter
	Status         model.TaskStatus
	DeadlineBucket datemath.Bucket
}

// ViewInput selects a filtered/sorted view of the stored collection.
type ViewInput struct {
	Criteria FilterCriteria
	Sort     SortKey
}

// ViewOutput is a derived, read-only view. It never triggers a re-fetch.
type ViewOutput struct {
	Tasks        []model.Task
	Total        int
	StatusCounts map[model.TaskStatus]int
	Version      int64 // collection version the view was computed from
}

// ExportDeadlinesInput configures a calendar export of the stored collection.
type ExportDeadlinesInput struct {
	CalendarID string
}

// ExportedEvent is one task successfully exported to the calendar.
type ExportedEvent struct {
	TaskID   int
	Title    string
	HtmlLink string
}

// ExportDeadlinesOutput is the result of a calendar export.
type ExportDeadlinesOutput struct {
	Events  []ExportedEvent
	Skipped int // tasks without a deadline or whose event creation failed
}
