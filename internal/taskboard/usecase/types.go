package usecase

import (
	"context"

	"taskboard-aggregator/pkg/gcalendar"
)

// CalendarClient is the subset of the Google Calendar client used here.
type CalendarClient interface {
	CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
}
