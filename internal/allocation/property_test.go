package allocation

import (
	"fmt"
	"testing"

	"pgregory.net/rapid"
)

// TestProperty_CapacityPrefixAccepted checks that for a band of capacity M
// receiving N entries the first M are accepted and the rest are waitlisted
// 1..N-M in arrival order.
func TestProperty_CapacityPrefixAccepted(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		capacity := rapid.IntRange(0, 10).Draw(t, "capacity")
		n := rapid.IntRange(0, 30).Draw(t, "entries")

		reg, err := LoadRegistry([]BandDescriptor{{Name: "A", Day: 1, MaxEntries: capacity}})
		if err != nil {
			t.Fatalf("load: %v", err)
		}

		entries := make([]Entry, n)
		for i := range entries {
			entries[i] = Entry{PermitID: fmt.Sprintf("P%d", i), BandName: "A", ArrivalOrder: int64(i)}
		}

		a, err := Allocate(reg, entries)
		if err != nil {
			t.Fatalf("allocate: %v", err)
		}

		for i := range entries {
			rec, _ := a.Choices.Get(entries[i].PermitID)
			got := rec.Bands["A"]
			if i < capacity {
				if !got.IsAccepted() {
					t.Fatalf("entry %d: want accepted, got %s", i, got)
				}
				continue
			}
			if got.IsAccepted() || got.Position() != i-capacity+1 {
				t.Fatalf("entry %d: want waitlisted(%d), got %s", i, i-capacity+1, got)
			}
		}
	})
}

// TestProperty_OneRecordPerPermit checks cardinality and that every entry
// leaves exactly one outcome on its registrant's record.
func TestProperty_OneRecordPerPermit(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		bandNames := []string{"A", "B", "C", "1", "2"}
		descriptors := make([]BandDescriptor, len(bandNames))
		for i, name := range bandNames {
			descriptors[i] = BandDescriptor{
				Name:       name,
				Day:        1 + i/3,
				MaxEntries: rapid.IntRange(0, 4).Draw(t, "max-"+name),
			}
		}

		reg, err := LoadRegistry(descriptors)
		if err != nil {
			t.Fatalf("load: %v", err)
		}

		permits := rapid.IntRange(1, 8).Draw(t, "permits")
		seen := make(map[[2]string]bool)
		distinct := make(map[string]bool)

		var entries []Entry
		count := rapid.IntRange(0, 25).Draw(t, "count")
		for i := 0; i < count; i++ {
			permit := fmt.Sprintf("P%d", rapid.IntRange(0, permits-1).Draw(t, fmt.Sprintf("permit-%d", i)))
			band := rapid.SampledFrom(bandNames).Draw(t, fmt.Sprintf("band-%d", i))
			key := [2]string{permit, band}
			if seen[key] {
				continue
			}
			seen[key] = true
			distinct[permit] = true
			entries = append(entries, Entry{
				PermitID:     permit,
				BandName:     band,
				ArrivalOrder: rapid.Int64Range(0, 5).Draw(t, fmt.Sprintf("order-%d", i)),
			})
		}

		a, err := Allocate(reg, entries)
		if err != nil {
			t.Fatalf("allocate: %v", err)
		}

		if a.Choices.Len() != len(distinct) {
			t.Fatalf("want %d records, got %d", len(distinct), a.Choices.Len())
		}

		outcomes := 0
		for _, rec := range a.Choices.Records() {
			outcomes += len(rec.Bands)
		}
		if outcomes != len(entries) {
			t.Fatalf("want %d outcomes, got %d", len(entries), outcomes)
		}

		for _, s := range a.Summaries() {
			if s.Accepted > s.MaxEntries {
				t.Fatalf("band %s accepted %d over capacity %d", s.Name, s.Accepted, s.MaxEntries)
			}
			if s.Accepted+s.Waitlisted != s.Requested {
				t.Fatalf("band %s: accepted+waitlisted != requested", s.Name)
			}
		}
	})
}
