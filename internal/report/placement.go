package report

import (
	"errors"
	"fmt"

	"github.com/xuri/excelize/v2"

	"tournamentExport/internal/allocation"
)

// Placement pins the logical grid onto a worksheet. Columns are letters
// ("A", "AC"); StartRow is 1-based. Day blocks are Day1Width / Day2Width
// columns wide starting at Day1 / Day2.
type Placement struct {
	StartRow  int
	Sequence  string
	Permit    string
	LastName  string
	FirstName string
	Club      string
	Points    string
	Category  string
	Day1      string
	Day1Width int
	Day2      string
	Day2Width int
	Email     string
}

func DefaultPlacement() Placement {
	return Placement{
		StartRow:  7,
		Sequence:  "A",
		Permit:    "B",
		LastName:  "D",
		FirstName: "E",
		Club:      "F",
		Points:    "G",
		Category:  "H",
		Day1:      "K",
		Day1Width: 7,
		Day2:      "S",
		Day2Width: 7,
		Email:     "AC",
	}
}

// ColumnRange is an inclusive column span starting at FromRow and running to
// the bottom of the sheet. Coordinates are 1-based.
type ColumnRange struct {
	FromCol int
	ToCol   int
	FromRow int
}

// String renders the range in A1 notation, e.g. "K7:Q".
func (r ColumnRange) String() string {
	from, err := excelize.ColumnNumberToName(r.FromCol)
	if err != nil {
		return fmt.Sprintf("C%dR%d:C%d", r.FromCol, r.FromRow, r.ToCol)
	}
	to, err := excelize.ColumnNumberToName(r.ToCol)
	if err != nil {
		return fmt.Sprintf("C%dR%d:C%d", r.FromCol, r.FromRow, r.ToCol)
	}
	return fmt.Sprintf("%s%d:%s", from, r.FromRow, to)
}

// Cell is a value at 1-based sheet coordinates.
type Cell struct {
	Col   int
	Row   int
	Value any
}

func (c Cell) Name() (string, error) {
	return excelize.CoordinatesToCellName(c.Col, c.Row)
}

type resolved struct {
	single map[ColumnKind]int
	day1   int
	day2   int
}

func (p Placement) Validate() error {
	_, err := p.resolve()
	return err
}

func (p Placement) resolve() (*resolved, error) {
	if p.StartRow < 1 {
		return nil, fmt.Errorf("start row must be positive, got %d", p.StartRow)
	}
	if p.Day1Width < 1 || p.Day2Width < 1 {
		return nil, errors.New("day block widths must be positive")
	}

	letters := []struct {
		kind   ColumnKind
		name   string
		letter string
	}{
		{ColumnSequence, "sequence", p.Sequence},
		{ColumnPermit, "permit", p.Permit},
		{ColumnLastName, "last_name", p.LastName},
		{ColumnFirstName, "first_name", p.FirstName},
		{ColumnClub, "club", p.Club},
		{ColumnPoints, "points", p.Points},
		{ColumnCategory, "category", p.Category},
		{ColumnEmail, "email", p.Email},
	}

	r := &resolved{single: make(map[ColumnKind]int, len(letters))}
	used := make(map[int]string)

	claim := func(col int, name string) error {
		if other, ok := used[col]; ok {
			return fmt.Errorf("column %d is used by both %s and %s", col, other, name)
		}
		used[col] = name
		return nil
	}

	for _, l := range letters {
		col, err := excelize.ColumnNameToNumber(l.letter)
		if err != nil {
			return nil, fmt.Errorf("%s column %q: %w", l.name, l.letter, err)
		}
		if err := claim(col, l.name); err != nil {
			return nil, err
		}
		r.single[l.kind] = col
	}

	blocks := []struct {
		name   string
		letter string
		width  int
		dst    *int
	}{
		{"day1", p.Day1, p.Day1Width, &r.day1},
		{"day2", p.Day2, p.Day2Width, &r.day2},
	}
	for _, b := range blocks {
		col, err := excelize.ColumnNameToNumber(b.letter)
		if err != nil {
			return nil, fmt.Errorf("%s column %q: %w", b.name, b.letter, err)
		}
		for i := 0; i < b.width; i++ {
			if err := claim(col+i, b.name); err != nil {
				return nil, err
			}
		}
		*b.dst = col
	}

	return r, nil
}

// ClearRanges returns the ranges a publish must clear before writing.
func (p Placement) ClearRanges() ([]ColumnRange, error) {
	r, err := p.resolve()
	if err != nil {
		return nil, err
	}

	kinds := []ColumnKind{
		ColumnSequence, ColumnPermit, ColumnLastName, ColumnFirstName,
		ColumnClub, ColumnPoints, ColumnCategory,
	}

	out := make([]ColumnRange, 0, len(kinds)+3)
	for _, k := range kinds {
		col := r.single[k]
		out = append(out, ColumnRange{FromCol: col, ToCol: col, FromRow: p.StartRow})
	}
	out = append(out,
		ColumnRange{FromCol: r.day1, ToCol: r.day1 + p.Day1Width - 1, FromRow: p.StartRow},
		ColumnRange{FromCol: r.day2, ToCol: r.day2 + p.Day2Width - 1, FromRow: p.StartRow},
		ColumnRange{FromCol: r.single[ColumnEmail], ToCol: r.single[ColumnEmail], FromRow: p.StartRow},
	)

	return out, nil
}

// Cells maps every non-blank grid value to sheet coordinates. It fails with
// an allocation.ConfigurationError when a day has more bands than its block
// is wide.
func (p Placement) Cells(g *Grid) ([]Cell, error) {
	r, err := p.resolve()
	if err != nil {
		return nil, err
	}

	if n := g.DayWidth(1); n > p.Day1Width {
		return nil, &allocation.ConfigurationError{
			Err:    allocation.ErrLayoutOverflow,
			Detail: fmt.Sprintf("%d day-1 bands for a block of %d columns", n, p.Day1Width),
		}
	}
	if n := g.DayWidth(2); n > p.Day2Width {
		return nil, &allocation.ConfigurationError{
			Err:    allocation.ErrLayoutOverflow,
			Detail: fmt.Sprintf("%d day-2 bands for a block of %d columns", n, p.Day2Width),
		}
	}

	sheetCols := make([]int, len(g.Columns))
	for i, c := range g.Columns {
		switch c.Kind {
		case ColumnDay1Band:
			sheetCols[i] = r.day1 + c.Offset
		case ColumnDay2Band:
			sheetCols[i] = r.day2 + c.Offset
		default:
			sheetCols[i] = r.single[c.Kind]
		}
	}

	var cells []Cell
	for i, row := range g.Rows {
		for c, v := range row {
			if v == nil {
				continue
			}
			cells = append(cells, Cell{Col: sheetCols[c], Row: p.StartRow + i, Value: v})
		}
	}

	return cells, nil
}
