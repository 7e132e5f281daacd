package usecase

import (
	"context"
	"time"

	"taskboard-aggregator/internal/taskboard"
	"taskboard-aggregator/pkg/gcalendar"
)

// ExportDeadlines pushes deadline-bearing tasks from the stored collection
// to Google Calendar as one-hour events starting at the deadline. Per-task
// failures are skipped, mirroring the partial-tolerance of aggregation.
func (uc *implUseCase) ExportDeadlines(ctx context.Context, input taskboard.ExportDeadlinesInput) (taskboard.ExportDeadlinesOutput, error) {
	if uc.calendar == nil {
		return taskboard.ExportDeadlinesOutput{}, taskboard.ErrNoCalendar
	}

	calendarID := input.CalendarID
	if calendarID == "" {
		calendarID = uc.calendarID
	}

	tasks, _, _ := uc.store.snapshot()

	out := taskboard.ExportDeadlinesOutput{}
	for _, t := range tasks {
		if t.Deadline == nil {
			out.Skipped++
			continue
		}

		event, err := uc.calendar.CreateEvent(ctx, gcalendar.CreateEventRequest{
			CalendarID:  calendarID,
			Summary:     t.Title,
			Description: t.Description,
			StartTime:   *t.Deadline,
			EndTime:     t.Deadline.Add(time.Hour),
			Timezone:    uc.timezone,
		})
		if err != nil {
			uc.l.Warnf(ctx, "export: calendar event for task %d failed (skipped): %v", t.ID, err)
			out.Skipped++
			continue
		}

		out.Events = append(out.Events, taskboard.ExportedEvent{
			TaskID:   t.ID,
			Title:    t.Title,
			HtmlLink: event.HtmlLink,
		})
	}

	uc.l.Infof(ctx, "export: created %d calendar events, skipped %d", len(out.Events), out.Skipped)
	return out, nil
}
