// Package exportstatus maps export failures onto HTTP statuses and
// client-facing messages.
package exportstatus

import (
	"errors"
	"net/http"

	"tournamentExport/internal/allocation"
	"tournamentExport/internal/exporter"
)

func FromError(err error) (int, string) {
	var (
		cfgErr  *allocation.ConfigurationError
		dsErr   *exporter.DataSourceError
		sinkErr *exporter.ReportSinkError
	)

	switch {
	case errors.As(err, &cfgErr):
		return http.StatusUnprocessableEntity, cfgErr.Error()
	case errors.As(err, &dsErr):
		return http.StatusServiceUnavailable, "registrations are unavailable"
	case errors.As(err, &sinkErr):
		return http.StatusBadGateway, "failed to write report"
	default:
		return http.StatusInternalServerError, "internal error"
	}
}
