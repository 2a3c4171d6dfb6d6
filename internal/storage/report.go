package storage

import (
	"context"
	"fmt"

	"github.com/viant/afs"

	"tournamentExport/internal/config"
	"tournamentExport/internal/report"
	"tournamentExport/internal/storage/gsheets"
	"tournamentExport/internal/storage/xlsx"
)

// NewReportSink builds the sink selected by cfg.Kind.
func NewReportSink(ctx context.Context, cfg config.Report) (report.Sink, error) {
	const op = "storage.NewReportSink"

	switch cfg.Kind {
	case config.ReportKindXLSX:
		return xlsx.New(afs.New(), cfg.XLSX.URL, cfg.XLSX.Sheet), nil
	case config.ReportKindSheets:
		sink, err := gsheets.New(ctx, cfg.Sheets.CredentialsFile, cfg.Sheets.SpreadsheetID, cfg.Sheets.Sheet)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		return sink, nil
	default:
		return nil, fmt.Errorf("%s: unknown report kind %q", op, cfg.Kind)
	}
}
