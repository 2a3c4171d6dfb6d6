package report

import (
	"context"
	"fmt"
)

// Sink is a report medium addressed by sheet coordinates.
type Sink interface {
	Clear(ctx context.Context, ranges []ColumnRange) error
	Write(ctx context.Context, cells []Cell) error
}

// Replacer is implemented by sinks that can clear and write in one batch.
type Replacer interface {
	Replace(ctx context.Context, ranges []ColumnRange, cells []Cell) error
}

// Publish clears ranges and writes cells. Sinks implementing Replacer get a
// single call; others get Clear followed by Write.
func Publish(ctx context.Context, sink Sink, ranges []ColumnRange, cells []Cell) error {
	if r, ok := sink.(Replacer); ok {
		if err := r.Replace(ctx, ranges, cells); err != nil {
			return fmt.Errorf("replace: %w", err)
		}
		return nil
	}

	if err := sink.Clear(ctx, ranges); err != nil {
		return fmt.Errorf("clear: %w", err)
	}
	if err := sink.Write(ctx, cells); err != nil {
		return fmt.Errorf("write: %w", err)
	}

	return nil
}
