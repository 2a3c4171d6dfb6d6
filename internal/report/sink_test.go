package report

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSink struct {
	calls    []string
	clearErr error
}

func (s *recordingSink) Clear(context.Context, []ColumnRange) error {
	s.calls = append(s.calls, "clear")
	return s.clearErr
}

func (s *recordingSink) Write(context.Context, []Cell) error {
	s.calls = append(s.calls, "write")
	return nil
}

type batchSink struct {
	recordingSink
}

func (s *batchSink) Replace(context.Context, []ColumnRange, []Cell) error {
	s.calls = append(s.calls, "replace")
	return nil
}

func TestPublishClearsBeforeWriting(t *testing.T) {
	t.Parallel()

	s := &recordingSink{}
	require.NoError(t, Publish(context.Background(), s, nil, nil))
	assert.Equal(t, []string{"clear", "write"}, s.calls)
}

func TestPublishPrefersReplace(t *testing.T) {
	t.Parallel()

	s := &batchSink{}
	require.NoError(t, Publish(context.Background(), s, nil, nil))
	assert.Equal(t, []string{"replace"}, s.calls)
}

func TestPublishStopsOnClearError(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	s := &recordingSink{clearErr: boom}

	err := Publish(context.Background(), s, nil, nil)
	require.ErrorIs(t, err, boom)
	assert.Equal(t, []string{"clear"}, s.calls)
}
