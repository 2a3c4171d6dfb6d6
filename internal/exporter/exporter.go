// Package exporter runs the registration export: it reads bands and entries,
// allocates places and publishes the resulting grid to a report sink.
package exporter

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"sync"

	"github.com/google/uuid"

	"tournamentExport/internal/allocation"
	"tournamentExport/internal/lib/logger/sl"
	"tournamentExport/internal/lib/tracing"
	"tournamentExport/internal/models"
	"tournamentExport/internal/report"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=DataSource
type DataSource interface {
	GetBands(ctx context.Context) ([]models.Band, error)
	GetConfirmedEntries(ctx context.Context) ([]models.Entry, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=Sink --srcpkg=tournamentExport/internal/report

type Service struct {
	log       *slog.Logger
	source    DataSource
	sink      report.Sink
	placement report.Placement

	mu sync.Mutex
}

func New(log *slog.Logger, source DataSource, sink report.Sink, placement report.Placement) *Service {
	return &Service{
		log:       log,
		source:    source,
		sink:      sink,
		placement: placement,
	}
}

// Result describes a published run.
type Result struct {
	RunID       uuid.UUID                `json:"run_id"`
	Registrants int                      `json:"registrants"`
	Entries     int                      `json:"entries"`
	Cells       int                      `json:"cells"`
	Bands       []allocation.BandSummary `json:"bands"`
}

// Preview is a computed grid that has not been published.
type Preview struct {
	Header []string                 `json:"header"`
	Rows   [][]any                  `json:"rows"`
	Bands  []allocation.BandSummary `json:"bands"`
}

type snapshot struct {
	entries    int
	allocation *allocation.Allocation
	grid       *report.Grid
}

// Run computes the report and replaces the sheet contents with it. Runs are
// serialized. Configuration and data source failures happen before any sink
// call.
func (s *Service) Run(ctx context.Context) (*Result, error) {
	const op = "exporter.Run"

	s.mu.Lock()
	defer s.mu.Unlock()

	runID := uuid.New()
	log := s.log.With(slog.String("op", op), slog.String("run_id", runID.String()))

	ctx, span := tracing.StartSpan(ctx, "export.run")
	span.WithAttributes(map[string]string{"run_id": runID.String()})

	res, err := s.run(ctx, log, runID)
	tracing.EndSpan(span, err)
	if err != nil {
		log.Error("export failed", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("export published",
		slog.Int("registrants", res.Registrants),
		slog.Int("entries", res.Entries),
		slog.Int("cells", res.Cells),
	)

	return res, nil
}

func (s *Service) run(ctx context.Context, log *slog.Logger, runID uuid.UUID) (*Result, error) {
	snap, err := s.compute(ctx)
	if err != nil {
		return nil, err
	}

	ranges, err := s.placement.ClearRanges()
	if err != nil {
		return nil, &allocation.ConfigurationError{Err: err}
	}

	cells, err := s.placement.Cells(snap.grid)
	if err != nil {
		return nil, err
	}

	log.Debug("publishing report", slog.Int("ranges", len(ranges)), slog.Int("cells", len(cells)))

	ctx, span := tracing.StartSpan(ctx, "export.publish")
	span.WithInt("cells", len(cells))
	err = report.Publish(ctx, s.sink, ranges, cells)
	tracing.EndSpan(span, err)
	if err != nil {
		return nil, &ReportSinkError{Err: err}
	}

	return &Result{
		RunID:       runID,
		Registrants: snap.allocation.Choices.Len(),
		Entries:     snap.entries,
		Cells:       len(cells),
		Bands:       snap.allocation.Summaries(),
	}, nil
}

// Preview computes the grid without touching the sink.
func (s *Service) Preview(ctx context.Context) (*Preview, error) {
	const op = "exporter.Preview"

	snap, err := s.compute(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rows := snap.grid.Rows
	if rows == nil {
		rows = [][]any{}
	}

	return &Preview{
		Header: snap.grid.Header(),
		Rows:   rows,
		Bands:  snap.allocation.Summaries(),
	}, nil
}

// BandSummaries returns per-band counters for the current registrations.
func (s *Service) BandSummaries(ctx context.Context) ([]allocation.BandSummary, error) {
	const op = "exporter.BandSummaries"

	snap, err := s.compute(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return snap.allocation.Summaries(), nil
}

func (s *Service) compute(ctx context.Context) (*snapshot, error) {
	ctx, span := tracing.StartSpan(ctx, "export.compute")

	snap, err := s.doCompute(ctx)
	if snap != nil {
		span.WithAttributes(map[string]string{
			"entries":     strconv.Itoa(snap.entries),
			"registrants": strconv.Itoa(snap.allocation.Choices.Len()),
		})
	}
	tracing.EndSpan(span, err)

	return snap, err
}

func (s *Service) doCompute(ctx context.Context) (*snapshot, error) {
	bands, err := s.source.GetBands(ctx)
	if err != nil {
		return nil, &DataSourceError{Op: "get bands", Err: err}
	}

	entries, err := s.source.GetConfirmedEntries(ctx)
	if err != nil {
		return nil, &DataSourceError{Op: "get entries", Err: err}
	}

	registry, err := allocation.LoadRegistry(descriptors(bands))
	if err != nil {
		return nil, err
	}

	alloc, err := allocation.Allocate(registry, allocationEntries(entries))
	if err != nil {
		return nil, err
	}

	return &snapshot{
		entries:    len(entries),
		allocation: alloc,
		grid:       report.Build(alloc.Bands.Bands(), alloc.Choices),
	}, nil
}

func descriptors(bands []models.Band) []allocation.BandDescriptor {
	out := make([]allocation.BandDescriptor, 0, len(bands))
	for _, b := range bands {
		out = append(out, allocation.BandDescriptor{
			Name:       b.Name,
			Day:        b.Day,
			MaxEntries: b.MaxEntries,
		})
	}
	return out
}

func allocationEntries(entries []models.Entry) []allocation.Entry {
	out := make([]allocation.Entry, 0, len(entries))
	for _, e := range entries {
		out = append(out, allocation.Entry{
			PermitID:     e.PermitID,
			Email:        e.Email,
			LastName:     e.LastName,
			FirstName:    e.FirstName,
			ClubName:     e.ClubName,
			Points:       e.Points,
			Category:     e.Category,
			BandName:     e.BandName,
			ArrivalOrder: e.ArrivalOrder,
		})
	}
	return out
}
