// Package xlsx publishes the report into a worksheet of an XLSX workbook
// stored at any URL the afs service can reach.
package xlsx

import (
	"bytes"
	"context"
	"fmt"
	"sync"

	"github.com/viant/afs"
	"github.com/viant/afs/file"
	"github.com/viant/afs/url"
	"github.com/xuri/excelize/v2"

	"tournamentExport/internal/report"
)

type Sink struct {
	fs    afs.Service
	url   string
	sheet string
	mu    sync.Mutex
}

var _ report.Replacer = (*Sink)(nil)

// New returns a sink writing into sheet of the workbook at location. A bare
// path is resolved as a local file.
func New(fs afs.Service, location, sheet string) *Sink {
	return &Sink{
		fs:    fs,
		url:   url.Normalize(location, file.Scheme),
		sheet: sheet,
	}
}

func (s *Sink) URL() string {
	return s.url
}

func (s *Sink) Clear(ctx context.Context, ranges []report.ColumnRange) error {
	return s.Replace(ctx, ranges, nil)
}

func (s *Sink) Write(ctx context.Context, cells []report.Cell) error {
	return s.Replace(ctx, nil, cells)
}

// Replace clears ranges, writes cells and uploads the workbook once.
func (s *Sink) Replace(ctx context.Context, ranges []report.ColumnRange, cells []report.Cell) error {
	const op = "storage.xlsx.Replace"

	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := s.open(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer func() { _ = f.Close() }()

	if err := s.clear(f, ranges); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	for _, c := range cells {
		name, err := c.Name()
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
		if err := f.SetCellValue(s.sheet, name, c.Value); err != nil {
			return fmt.Errorf("%s: set %s: %w", op, name, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return fmt.Errorf("%s: encode workbook: %w", op, err)
	}

	if err := s.fs.Upload(ctx, s.url, file.DefaultFileOsMode, bytes.NewReader(buf.Bytes())); err != nil {
		return fmt.Errorf("%s: failed to upload workbook to %s: %w", op, s.url, err)
	}

	return nil
}

// open loads the workbook, creating it (and the sheet) when missing.
func (s *Sink) open(ctx context.Context) (*excelize.File, error) {
	exists, err := s.fs.Exists(ctx, s.url)
	if err != nil {
		return nil, fmt.Errorf("failed to check workbook %s: %w", s.url, err)
	}

	if !exists {
		f := excelize.NewFile()
		if err := f.SetSheetName(f.GetSheetName(0), s.sheet); err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("failed to name sheet: %w", err)
		}
		return f, nil
	}

	data, err := s.fs.DownloadWithURL(ctx, s.url)
	if err != nil {
		return nil, fmt.Errorf("failed to download workbook %s: %w", s.url, err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook %s: %w", s.url, err)
	}

	idx, err := f.GetSheetIndex(s.sheet)
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("failed to look up sheet %s: %w", s.sheet, err)
	}
	if idx == -1 {
		if _, err := f.NewSheet(s.sheet); err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("failed to add sheet %s: %w", s.sheet, err)
		}
	}

	return f, nil
}

func (s *Sink) clear(f *excelize.File, ranges []report.ColumnRange) error {
	if len(ranges) == 0 {
		return nil
	}

	rows, err := f.GetRows(s.sheet)
	if err != nil {
		return fmt.Errorf("failed to read sheet %s: %w", s.sheet, err)
	}
	last := len(rows)

	for _, r := range ranges {
		for row := r.FromRow; row <= last; row++ {
			for col := r.FromCol; col <= r.ToCol; col++ {
				name, err := excelize.CoordinatesToCellName(col, row)
				if err != nil {
					return err
				}
				if err := f.SetCellValue(s.sheet, name, nil); err != nil {
					return fmt.Errorf("failed to clear %s: %w", name, err)
				}
			}
		}
	}

	return nil
}
