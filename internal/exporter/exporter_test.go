package exporter

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"tournamentExport/internal/allocation"
	"tournamentExport/internal/exporter/mocks"
	"tournamentExport/internal/lib/logger/handlers/slogdiscard"
	"tournamentExport/internal/models"
	"tournamentExport/internal/report"
)

var testBands = []models.Band{
	{Name: "A", Day: 1, MaxEntries: 1},
	{Name: "B", Day: 1, MaxEntries: 2},
	{Name: "1", Day: 2, MaxEntries: 5},
}

func testEntry(permit, band string, order int64) models.Entry {
	return models.Entry{
		PermitID:     permit,
		Email:        permit + "@example.org",
		LastName:     "Last" + permit,
		FirstName:    "First" + permit,
		ClubName:     "TT Club",
		Points:       700,
		Category:     "S",
		BandName:     band,
		ArrivalOrder: order,
	}
}

func cellMap(t *testing.T, cells []report.Cell) map[string]any {
	t.Helper()

	out := make(map[string]any, len(cells))
	for _, c := range cells {
		name, err := c.Name()
		require.NoError(t, err)
		out[name] = c.Value
	}
	return out
}

func TestRunPublishesAllocation(t *testing.T) {
	t.Parallel()

	source := mocks.NewDataSource(t)
	sink := mocks.NewSink(t)

	source.On("GetBands", mock.Anything).Return(testBands, nil)
	source.On("GetConfirmedEntries", mock.Anything).Return([]models.Entry{
		testEntry("P1", "A", 1),
		testEntry("P2", "A", 2),
		testEntry("P1", "1", 3),
	}, nil)

	var written []report.Cell
	sink.On("Clear", mock.Anything, mock.MatchedBy(func(r []report.ColumnRange) bool { return len(r) == 10 })).
		Return(nil).Once()
	sink.On("Write", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { written = args.Get(1).([]report.Cell) }).
		Return(nil).Once()

	svc := New(slogdiscard.NewDiscardLogger(), source, sink, report.DefaultPlacement())

	res, err := svc.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, res.Registrants)
	assert.Equal(t, 3, res.Entries)
	assert.Equal(t, len(written), res.Cells)
	assert.NotEqual(t, "00000000-0000-0000-0000-000000000000", res.RunID.String())

	got := cellMap(t, written)
	assert.Equal(t, 1, got["A7"])
	assert.Equal(t, "P1", got["B7"])
	assert.Equal(t, 1, got["K7"], "P1 accepted in A")
	assert.Equal(t, 1, got["S7"], "P1 accepted in 1")
	assert.Equal(t, "P2", got["B8"])
	assert.Equal(t, "L1", got["K8"], "P2 first on A waitlist")
	assert.NotContains(t, got, "L7")
	assert.NotContains(t, got, "S8")

	require.Len(t, res.Bands, 3)
	assert.Equal(t, allocation.BandSummary{
		Name: "A", Day: 1, Index: 0, MaxEntries: 1, Requested: 2, Accepted: 1, Waitlisted: 1, Free: 0,
	}, res.Bands[0])
}

func TestRunIsIdempotent(t *testing.T) {
	t.Parallel()

	source := mocks.NewDataSource(t)
	sink := mocks.NewSink(t)

	source.On("GetBands", mock.Anything).Return(testBands, nil)
	source.On("GetConfirmedEntries", mock.Anything).Return([]models.Entry{
		testEntry("P1", "A", 1),
		testEntry("P2", "A", 2),
		testEntry("P3", "B", 3),
	}, nil)

	var runs [][]report.Cell
	sink.On("Clear", mock.Anything, mock.Anything).Return(nil)
	sink.On("Write", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { runs = append(runs, args.Get(1).([]report.Cell)) }).
		Return(nil)

	svc := New(slogdiscard.NewDiscardLogger(), source, sink, report.DefaultPlacement())

	_, err := svc.Run(context.Background())
	require.NoError(t, err)
	_, err = svc.Run(context.Background())
	require.NoError(t, err)

	require.Len(t, runs, 2)
	assert.Equal(t, runs[0], runs[1])
}

func TestRunFailuresBeforePublish(t *testing.T) {
	t.Parallel()

	dbErr := errors.New("connection refused")

	cases := []struct {
		name      string
		setup     func(source *mocks.DataSource)
		placement func(p *report.Placement)
		check     func(t *testing.T, err error)
	}{
		{
			name: "unknown band",
			setup: func(source *mocks.DataSource) {
				source.On("GetBands", mock.Anything).Return(testBands, nil)
				source.On("GetConfirmedEntries", mock.Anything).Return([]models.Entry{
					testEntry("P1", "A", 1),
					testEntry("P2", "Z", 2),
				}, nil)
			},
			check: func(t *testing.T, err error) {
				assert.True(t, allocation.IsConfigurationError(err))
				assert.ErrorIs(t, err, allocation.ErrUnknownBand)
			},
		},
		{
			name: "duplicate band",
			setup: func(source *mocks.DataSource) {
				source.On("GetBands", mock.Anything).Return(append(testBands, models.Band{Name: "A", Day: 2}), nil)
				source.On("GetConfirmedEntries", mock.Anything).Return([]models.Entry{}, nil)
			},
			check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, allocation.ErrDuplicateBand)
			},
		},
		{
			name: "bands unavailable",
			setup: func(source *mocks.DataSource) {
				source.On("GetBands", mock.Anything).Return(nil, dbErr)
			},
			check: func(t *testing.T, err error) {
				var dsErr *DataSourceError
				require.ErrorAs(t, err, &dsErr)
				assert.Equal(t, "get bands", dsErr.Op)
				assert.ErrorIs(t, err, dbErr)
			},
		},
		{
			name: "entries unavailable",
			setup: func(source *mocks.DataSource) {
				source.On("GetBands", mock.Anything).Return(testBands, nil)
				source.On("GetConfirmedEntries", mock.Anything).Return(nil, dbErr)
			},
			check: func(t *testing.T, err error) {
				var dsErr *DataSourceError
				require.ErrorAs(t, err, &dsErr)
				assert.Equal(t, "get entries", dsErr.Op)
			},
		},
		{
			name: "layout overflow",
			setup: func(source *mocks.DataSource) {
				source.On("GetBands", mock.Anything).Return(testBands, nil)
				source.On("GetConfirmedEntries", mock.Anything).Return([]models.Entry{testEntry("P1", "A", 1)}, nil)
			},
			placement: func(p *report.Placement) { p.Day1Width = 1 },
			check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, allocation.ErrLayoutOverflow)
			},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			source := mocks.NewDataSource(t)
			sink := mocks.NewSink(t)
			tc.setup(source)

			placement := report.DefaultPlacement()
			if tc.placement != nil {
				tc.placement(&placement)
			}

			svc := New(slogdiscard.NewDiscardLogger(), source, sink, placement)

			res, err := svc.Run(context.Background())
			require.Error(t, err)
			assert.Nil(t, res)
			tc.check(t, err)

			sink.AssertNotCalled(t, "Clear", mock.Anything, mock.Anything)
			sink.AssertNotCalled(t, "Write", mock.Anything, mock.Anything)
		})
	}
}

func TestRunSinkFailure(t *testing.T) {
	t.Parallel()

	source := mocks.NewDataSource(t)
	sink := mocks.NewSink(t)

	source.On("GetBands", mock.Anything).Return(testBands, nil)
	source.On("GetConfirmedEntries", mock.Anything).Return([]models.Entry{testEntry("P1", "A", 1)}, nil)

	quota := errors.New("quota exceeded")
	sink.On("Clear", mock.Anything, mock.Anything).Return(quota).Once()

	svc := New(slogdiscard.NewDiscardLogger(), source, sink, report.DefaultPlacement())

	_, err := svc.Run(context.Background())

	var sinkErr *ReportSinkError
	require.ErrorAs(t, err, &sinkErr)
	assert.ErrorIs(t, err, quota)
	sink.AssertNotCalled(t, "Write", mock.Anything, mock.Anything)
}

func TestPreviewDoesNotPublish(t *testing.T) {
	t.Parallel()

	source := mocks.NewDataSource(t)
	sink := mocks.NewSink(t)

	source.On("GetBands", mock.Anything).Return(testBands, nil)
	source.On("GetConfirmedEntries", mock.Anything).Return([]models.Entry{
		testEntry("P1", "B", 1),
	}, nil)

	svc := New(slogdiscard.NewDiscardLogger(), source, sink, report.DefaultPlacement())

	p, err := svc.Preview(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{
		"No.", "Permit", "Last name", "First name", "Club", "Points", "Category",
		"A", "B", "1", "Email",
	}, p.Header)
	require.Len(t, p.Rows, 1)
	assert.Equal(t, []any{
		1, "P1", "LastP1", "FirstP1", "TT Club", 700.0, "S",
		nil, 1, nil,
		"P1@example.org",
	}, p.Rows[0])
	assert.Len(t, p.Bands, 3)

	sink.AssertNotCalled(t, "Clear", mock.Anything, mock.Anything)
}

func TestPreviewEmptyRows(t *testing.T) {
	t.Parallel()

	source := mocks.NewDataSource(t)
	source.On("GetBands", mock.Anything).Return(testBands, nil)
	source.On("GetConfirmedEntries", mock.Anything).Return(nil, nil)

	svc := New(slogdiscard.NewDiscardLogger(), source, mocks.NewSink(t), report.DefaultPlacement())

	p, err := svc.Preview(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, p.Rows)
	assert.Empty(t, p.Rows)
}

func TestBandSummaries(t *testing.T) {
	t.Parallel()

	source := mocks.NewDataSource(t)
	source.On("GetBands", mock.Anything).Return(testBands, nil)
	source.On("GetConfirmedEntries", mock.Anything).Return([]models.Entry{
		testEntry("P1", "B", 1),
		testEntry("P2", "B", 2),
		testEntry("P3", "B", 3),
	}, nil)

	svc := New(slogdiscard.NewDiscardLogger(), source, mocks.NewSink(t), report.DefaultPlacement())

	summaries, err := svc.BandSummaries(context.Background())
	require.NoError(t, err)

	require.Len(t, summaries, 3)
	assert.Equal(t, "B", summaries[1].Name)
	assert.Equal(t, 3, summaries[1].Requested)
	assert.Equal(t, 2, summaries[1].Accepted)
	assert.Equal(t, 1, summaries[1].Waitlisted)
	assert.Equal(t, 0, summaries[1].Free)
	assert.Equal(t, 5, summaries[2].Free)
}
