package report

import (
	"cmp"
	"fmt"
	"slices"

	"tournamentExport/internal/allocation"
)

type ColumnKind int

const (
	ColumnSequence ColumnKind = iota
	ColumnPermit
	ColumnLastName
	ColumnFirstName
	ColumnClub
	ColumnPoints
	ColumnCategory
	ColumnDay1Band
	ColumnDay2Band
	ColumnEmail
)

// Column describes one logical grid column. Band and Offset are set for band
// columns only; Offset is the position inside the day block.
type Column struct {
	Kind   ColumnKind `json:"-"`
	Title  string     `json:"title"`
	Band   string     `json:"band,omitempty"`
	Offset int        `json:"-"`
}

// Grid is the logical report. Cell values are int (sequence, accepted band),
// float64 (points), string or nil for a blank cell.
type Grid struct {
	Columns []Column
	Rows    [][]any
}

// Header returns the column titles.
func (g *Grid) Header() []string {
	out := make([]string, len(g.Columns))
	for i, c := range g.Columns {
		out[i] = c.Title
	}
	return out
}

// DayWidth returns the number of band columns for the given day.
func (g *Grid) DayWidth(day int) int {
	kind := ColumnDay1Band
	if day == 2 {
		kind = ColumnDay2Band
	}

	n := 0
	for _, c := range g.Columns {
		if c.Kind == kind {
			n++
		}
	}
	return n
}

// EncodeOutcome renders an outcome as a cell value: 1 when accepted, "L{n}"
// when waitlisted at position n.
func EncodeOutcome(o allocation.Outcome) any {
	if o.IsAccepted() {
		return 1
	}
	return fmt.Sprintf("L%d", o.Position())
}

// Build lays choices out row by row in first-seen order. Band columns follow
// band index order within each day.
func Build(bands []allocation.Band, choices *allocation.ChoiceSet) *Grid {
	columns := []Column{
		{Kind: ColumnSequence, Title: "No."},
		{Kind: ColumnPermit, Title: "Permit"},
		{Kind: ColumnLastName, Title: "Last name"},
		{Kind: ColumnFirstName, Title: "First name"},
		{Kind: ColumnClub, Title: "Club"},
		{Kind: ColumnPoints, Title: "Points"},
		{Kind: ColumnCategory, Title: "Category"},
	}

	ordered := sortByIndex(bands)
	for _, day := range []int{1, 2} {
		kind := ColumnDay1Band
		if day == 2 {
			kind = ColumnDay2Band
		}

		offset := 0
		for _, b := range ordered {
			if b.Day != day {
				continue
			}
			columns = append(columns, Column{Kind: kind, Title: b.Name, Band: b.Name, Offset: offset})
			offset++
		}
	}
	columns = append(columns, Column{Kind: ColumnEmail, Title: "Email"})

	records := choices.Records()
	rows := make([][]any, 0, len(records))
	for i, rec := range records {
		row := make([]any, len(columns))
		for c, col := range columns {
			row[c] = cellValue(i+1, rec, col)
		}
		rows = append(rows, row)
	}

	return &Grid{Columns: columns, Rows: rows}
}

func cellValue(seq int, rec *allocation.ChoiceRecord, col Column) any {
	switch col.Kind {
	case ColumnSequence:
		return seq
	case ColumnPermit:
		return rec.PermitID
	case ColumnLastName:
		return rec.LastName
	case ColumnFirstName:
		return rec.FirstName
	case ColumnClub:
		return rec.ClubName
	case ColumnPoints:
		return rec.Points
	case ColumnCategory:
		return rec.Category
	case ColumnEmail:
		return rec.Email
	case ColumnDay1Band, ColumnDay2Band:
		if o, ok := rec.Bands[col.Band]; ok {
			return EncodeOutcome(o)
		}
	}
	return nil
}

func sortByIndex(bands []allocation.Band) []allocation.Band {
	out := slices.Clone(bands)
	slices.SortStableFunc(out, func(a, b allocation.Band) int {
		return cmp.Compare(a.Index, b.Index)
	})
	return out
}
