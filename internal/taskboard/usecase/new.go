package usecase

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"taskboard-aggregator/internal/taskboard"
	"taskboard-aggregator/internal/taskboard/repository"
	"taskboard-aggregator/pkg/datemath"
	pkgLog "taskboard-aggregator/pkg/log"
)

type implUseCase struct {
	l        pkgLog.Logger
	org      repository.OrgRepository
	tasks    repository.TaskRepository
	calendar CalendarClient // optional; nil disables deadline export

	windows     *datemath.Windows
	timezone    string
	calendarID  string
	fanOutWidth int

	store     *store
	viewCache *expirable.LRU[string, taskboard.ViewOutput]
}

// Config tunes the use case.
type Config struct {
	FanOutWidth   int           // max concurrent sub-fetches per wave
	Timezone      string        // IANA zone for calendar-date comparisons
	CalendarID    string        // default target calendar for exports
	ViewCacheSize int           // memoized view entries
	ViewCacheTTL  time.Duration // bounds staleness of now-dependent buckets
}

// New creates a new taskboard UseCase instance.
func New(
	l pkgLog.Logger,
	org repository.OrgRepository,
	tasks repository.TaskRepository,
	calendar CalendarClient,
	cfg Config,
) (*implUseCase, error) {
	timezone := cfg.Timezone
	if timezone == "" {
		timezone = "UTC"
	}
	windows, err := datemath.NewWindows(timezone)
	if err != nil {
		return nil, err
	}

	fanOut := cfg.FanOutWidth
	if fanOut <= 0 {
		fanOut = 8
	}

	cacheSize := cfg.ViewCacheSize
	if cacheSize <= 0 {
		cacheSize = 128
	}
	cacheTTL := cfg.ViewCacheTTL
	if cacheTTL <= 0 {
		cacheTTL = 30 * time.Second
	}

	return &implUseCase{
		l:           l,
		org:         org,
		tasks:       tasks,
		calendar:    calendar,
		windows:     windows,
		timezone:    timezone,
		calendarID:  cfg.CalendarID,
		fanOutWidth: fanOut,
		store:       newStore(),
		viewCache:   expirable.NewLRU[string, taskboard.ViewOutput](cacheSize, nil, cacheTTL),
	}, nil
}
