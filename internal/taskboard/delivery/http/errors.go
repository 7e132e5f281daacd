package http

import (
	"errors"

	"taskboard-aggregator/internal/taskboard"
	pkgErrors "taskboard-aggregator/pkg/errors"
	"taskboard-aggregator/pkg/response"
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
// Backend lookup failures are the upstream's fault, so they surface as 502.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, taskboard.ErrUserLookup),
		errors.Is(err, taskboard.ErrTeamLookup),
		errors.Is(err, taskboard.ErrTeamsListing),
		errors.Is(err, taskboard.ErrDepartmentLookup):
		return pkgErrors.NewHTTPError(502, err.Error())
	case errors.Is(err, taskboard.ErrNotInDepartment):
		return pkgErrors.NewHTTPError(409, err.Error())
	case errors.Is(err, taskboard.ErrInvalidScope):
		return pkgErrors.NewHTTPError(400, err.Error())
	case errors.Is(err, taskboard.ErrNoCalendar):
		return pkgErrors.NewHTTPError(503, err.Error())
	default:
		return pkgErrors.NewHTTPError(500, response.DefaultErrorMessage)
	}
}
