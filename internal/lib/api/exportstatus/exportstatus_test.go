package exportstatus

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"tournamentExport/internal/allocation"
	"tournamentExport/internal/exporter"
)

func TestFromError(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{
			name:       "configuration",
			err:        fmt.Errorf("exporter.Run: %w", &allocation.ConfigurationError{Err: allocation.ErrUnknownBand, Detail: `"Z"`}),
			wantStatus: http.StatusUnprocessableEntity,
			wantMsg:    `configuration error: unknown band: "Z"`,
		},
		{
			name:       "data source",
			err:        fmt.Errorf("exporter.Run: %w", &exporter.DataSourceError{Op: "get bands", Err: errors.New("dial tcp")}),
			wantStatus: http.StatusServiceUnavailable,
			wantMsg:    "registrations are unavailable",
		},
		{
			name:       "sink",
			err:        &exporter.ReportSinkError{Err: errors.New("quota")},
			wantStatus: http.StatusBadGateway,
			wantMsg:    "failed to write report",
		},
		{
			name:       "other",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantMsg:    "internal error",
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			status, msg := FromError(tc.err)
			assert.Equal(t, tc.wantStatus, status)
			assert.Equal(t, tc.wantMsg, msg)
		})
	}
}
