package taskboard

import "context"

// UseCase defines the business logic interface for the taskboard domain.
type UseCase interface {
	// Aggregate runs one aggregation pass: resolve the scope to a member
	// set, fan out task and collaborator fetches, merge, and store the
	// resulting collection. Lookup failures are fatal; per-item fetch
	// failures degrade to empty partial results.
	Aggregate(ctx context.Context, input AggregateInput) (AggregateOutput, error)

	// View recomputes a filtered/sorted view over the stored collection
	// without re-fetching anything.
	View(ctx context.Context, input ViewInput) (ViewOutput, error)

	// ExportDeadlines pushes deadline-bearing tasks from the stored
	// collection to Google Calendar. Per-task failures are skipped.
	ExportDeadlines(ctx context.Context, input ExportDeadlinesInput) (ExportDeadlinesOutput, error)
}
