package datemath

import (
	"fmt"
	"time"
)

// Windows computes deadline-bucket boundaries in a fixed IANA timezone.
// The zone matters only for "today", which compares calendar dates.
type Windows struct {
	location *time.Location
}

// NewWindows creates bucket windows for the given IANA timezone string,
// e.g. "Asia/Singapore".
func NewWindows(timezone string) (*Windows, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Windows{location: loc}, nil
}

// Matches reports whether deadline falls in bucket relative to now.
//
//	overdue: deadline strictly before now
//	today:   deadline's calendar date equals now's (in the configured zone)
//	week:    deadline in [now, now+7d]
//	month:   deadline in [now, now+30d]
func (w *Windows) Matches(bucket Bucket, deadline, now time.Time) bool {
	switch bucket {
	case BucketOverdue:
		return deadline.Before(now)
	case BucketToday:
		d := deadline.In(w.location)
		n := now.In(w.location)
		return d.Year() == n.Year() && d.YearDay() == n.YearDay()
	case BucketWeek:
		return !deadline.Before(now) && !deadline.After(now.AddDate(0, 0, 7))
	case BucketMonth:
		return !deadline.Before(now) && !deadline.After(now.AddDate(0, 0, 30))
	}
	return false
}

// StartOfDay returns midnight at the start of t's day in the configured zone.
func (w *Windows) StartOfDay(t time.Time) time.Time {
	t = t.In(w.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, w.location)
}

// EndOfDay returns 23:59:59 of t's day in the configured zone.
func (w *Windows) EndOfDay(t time.Time) time.Time {
	return w.StartOfDay(t).Add(23*time.Hour + 59*time.Minute + 59*time.Second)
}
