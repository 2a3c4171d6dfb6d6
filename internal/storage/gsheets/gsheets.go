// Package gsheets publishes the report into a Google Sheets worksheet.
package gsheets

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"os"
	"slices"
	"sync"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"tournamentExport/internal/report"
)

var ErrSheetNotFound = errors.New("sheet not found")

type Sink struct {
	srv           *sheets.Service
	spreadsheetID string
	sheet         string

	mu      sync.Mutex
	sheetID *int64
}

var _ report.Replacer = (*Sink)(nil)

// New authenticates with the service account key in credentialsFile.
func New(ctx context.Context, credentialsFile, spreadsheetID, sheet string) (*Sink, error) {
	const op = "storage.gsheets.New"

	data, err := os.ReadFile(credentialsFile)
	if err != nil {
		return nil, fmt.Errorf("%s: read credentials: %w", op, err)
	}

	creds, err := google.CredentialsFromJSON(ctx, data, sheets.SpreadsheetsScope)
	if err != nil {
		return nil, fmt.Errorf("%s: parse credentials: %w", op, err)
	}

	srv, err := sheets.NewService(ctx, option.WithCredentials(creds))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return NewWithService(srv, spreadsheetID, sheet), nil
}

func NewWithService(srv *sheets.Service, spreadsheetID, sheet string) *Sink {
	return &Sink{srv: srv, spreadsheetID: spreadsheetID, sheet: sheet}
}

func (s *Sink) Clear(ctx context.Context, ranges []report.ColumnRange) error {
	return s.Replace(ctx, ranges, nil)
}

func (s *Sink) Write(ctx context.Context, cells []report.Cell) error {
	return s.Replace(ctx, nil, cells)
}

// Replace sends the clear and write requests as one batchUpdate, which the
// Sheets API applies atomically.
func (s *Sink) Replace(ctx context.Context, ranges []report.ColumnRange, cells []report.Cell) error {
	const op = "storage.gsheets.Replace"

	sheetID, err := s.resolveSheetID(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	requests := buildRequests(sheetID, ranges, cells)
	if len(requests) == 0 {
		return nil
	}

	_, err = s.srv.Spreadsheets.BatchUpdate(s.spreadsheetID, &sheets.BatchUpdateSpreadsheetRequest{
		Requests: requests,
	}).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("%s: batch update: %w", op, err)
	}

	return nil
}

func (s *Sink) resolveSheetID(ctx context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.sheetID != nil {
		return *s.sheetID, nil
	}

	ss, err := s.srv.Spreadsheets.Get(s.spreadsheetID).Fields("sheets.properties").Context(ctx).Do()
	if err != nil {
		return 0, fmt.Errorf("get spreadsheet %s: %w", s.spreadsheetID, err)
	}

	for _, sh := range ss.Sheets {
		if sh.Properties != nil && sh.Properties.Title == s.sheet {
			id := sh.Properties.SheetId
			s.sheetID = &id
			return id, nil
		}
	}

	return 0, fmt.Errorf("%w: %q in %s", ErrSheetNotFound, s.sheet, s.spreadsheetID)
}

// buildRequests emits one clear per range, then one updateCells per run of
// horizontally adjacent cells.
func buildRequests(sheetID int64, ranges []report.ColumnRange, cells []report.Cell) []*sheets.Request {
	requests := make([]*sheets.Request, 0, len(ranges)+len(cells))

	for _, r := range ranges {
		requests = append(requests, &sheets.Request{
			UpdateCells: &sheets.UpdateCellsRequest{
				Range: &sheets.GridRange{
					SheetId:          sheetID,
					StartRowIndex:    int64(r.FromRow - 1),
					StartColumnIndex: int64(r.FromCol - 1),
					EndColumnIndex:   int64(r.ToCol),
					ForceSendFields:  []string{"SheetId", "StartRowIndex", "StartColumnIndex"},
				},
				Fields: "userEnteredValue",
			},
		})
	}

	sorted := slices.Clone(cells)
	slices.SortStableFunc(sorted, func(a, b report.Cell) int {
		if c := cmp.Compare(a.Row, b.Row); c != 0 {
			return c
		}
		return cmp.Compare(a.Col, b.Col)
	})

	for i := 0; i < len(sorted); {
		j := i + 1
		for j < len(sorted) && sorted[j].Row == sorted[i].Row && sorted[j].Col == sorted[j-1].Col+1 {
			j++
		}

		values := make([]*sheets.CellData, 0, j-i)
		for _, c := range sorted[i:j] {
			values = append(values, &sheets.CellData{UserEnteredValue: extendedValue(c.Value)})
		}

		requests = append(requests, &sheets.Request{
			UpdateCells: &sheets.UpdateCellsRequest{
				Start: &sheets.GridCoordinate{
					SheetId:         sheetID,
					RowIndex:        int64(sorted[i].Row - 1),
					ColumnIndex:     int64(sorted[i].Col - 1),
					ForceSendFields: []string{"SheetId", "RowIndex", "ColumnIndex"},
				},
				Rows:   []*sheets.RowData{{Values: values}},
				Fields: "userEnteredValue",
			},
		})
		i = j
	}

	return requests
}

func extendedValue(v any) *sheets.ExtendedValue {
	switch val := v.(type) {
	case int:
		f := float64(val)
		return &sheets.ExtendedValue{NumberValue: &f}
	case int64:
		f := float64(val)
		return &sheets.ExtendedValue{NumberValue: &f}
	case float64:
		return &sheets.ExtendedValue{NumberValue: &val}
	case string:
		return &sheets.ExtendedValue{StringValue: &val}
	default:
		s := fmt.Sprint(val)
		return &sheets.ExtendedValue{StringValue: &s}
	}
}
