package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tournamentExport/internal/allocation"
)

func allocate(t *testing.T, bands []allocation.BandDescriptor, entries []allocation.Entry) *allocation.Allocation {
	t.Helper()

	reg, err := allocation.LoadRegistry(bands)
	require.NoError(t, err)

	a, err := allocation.Allocate(reg, entries)
	require.NoError(t, err)
	return a
}

func entry(permit, band string, order int64) allocation.Entry {
	return allocation.Entry{
		PermitID:     permit,
		Email:        permit + "@example.org",
		LastName:     "Last" + permit,
		FirstName:    "First" + permit,
		ClubName:     "TT Club",
		Points:       812.5,
		Category:     "S",
		BandName:     band,
		ArrivalOrder: order,
	}
}

var twoDays = []allocation.BandDescriptor{
	{Name: "A", Day: 1, MaxEntries: 1},
	{Name: "B", Day: 1, MaxEntries: 1},
	{Name: "C", Day: 2, MaxEntries: 1},
}

func TestBuildSplitsBandsByDay(t *testing.T) {
	t.Parallel()

	a := allocate(t, twoDays, []allocation.Entry{
		entry("P1", "A", 1),
		entry("P1", "C", 2),
	})

	g := Build(a.Bands.Bands(), a.Choices)

	assert.Equal(t, []string{
		"No.", "Permit", "Last name", "First name", "Club", "Points", "Category",
		"A", "B", "C", "Email",
	}, g.Header())
	assert.Equal(t, 2, g.DayWidth(1))
	assert.Equal(t, 1, g.DayWidth(2))

	require.Len(t, g.Rows, 1)
	assert.Equal(t, []any{
		1, "P1", "LastP1", "FirstP1", "TT Club", 812.5, "S",
		1, nil, 1,
		"P1@example.org",
	}, g.Rows[0])
}

func TestBuildDayTwoOffsets(t *testing.T) {
	t.Parallel()

	a := allocate(t, []allocation.BandDescriptor{
		{Name: "A", Day: 1, MaxEntries: 1},
		{Name: "B", Day: 1, MaxEntries: 1},
		{Name: "C", Day: 2, MaxEntries: 1},
		{Name: "D", Day: 2, MaxEntries: 1},
	}, []allocation.Entry{entry("P1", "D", 1)})

	g := Build(a.Bands.Bands(), a.Choices)

	var offsets []int
	for _, c := range g.Columns {
		if c.Kind == ColumnDay2Band {
			offsets = append(offsets, c.Offset)
		}
	}
	assert.Equal(t, []int{0, 1}, offsets)
}

func TestBuildEncodesWaitlistAndSequence(t *testing.T) {
	t.Parallel()

	a := allocate(t, twoDays, []allocation.Entry{
		entry("P1", "A", 1),
		entry("P2", "A", 2),
		entry("P3", "A", 3),
		entry("P3", "B", 4),
	})

	g := Build(a.Bands.Bands(), a.Choices)
	require.Len(t, g.Rows, 3)

	for i, row := range g.Rows {
		assert.Equal(t, i+1, row[0])
	}

	const colA, colB = 7, 8
	assert.Equal(t, 1, g.Rows[0][colA])
	assert.Equal(t, "L1", g.Rows[1][colA])
	assert.Equal(t, "L2", g.Rows[2][colA])
	assert.Equal(t, 1, g.Rows[2][colB])
	assert.Nil(t, g.Rows[0][colB])
}

func TestBuildEmpty(t *testing.T) {
	t.Parallel()

	a := allocate(t, twoDays, nil)
	g := Build(a.Bands.Bands(), a.Choices)

	assert.Empty(t, g.Rows)
	assert.Len(t, g.Columns, 11)
}

func TestEncodeOutcome(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1, EncodeOutcome(allocation.Accepted()))
	assert.Equal(t, "L1", EncodeOutcome(allocation.Waitlisted(1)))
	assert.Equal(t, "L12", EncodeOutcome(allocation.Waitlisted(12)))
}
