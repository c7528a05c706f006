package http

import (
	"errors"

	"engagement-srv/internal/stats"
	pkgErrors "engagement-srv/pkg/errors"
)

var (
	errMalformedBody = pkgErrors.NewHTTPError(
		400, "Request body is not valid JSON",
	)
	errInvalidPeriod = pkgErrors.NewHTTPError(
		400, "Period must be \"week\" or \"month\"",
	)
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, stats.ErrInvalidPeriod):
		return errInvalidPeriod
	default:
		panic(err)
	}
}
