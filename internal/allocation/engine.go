package allocation

import (
	"cmp"
	"slices"
)

// Entry is one registrant's choice of one band.
type Entry struct {
	PermitID     string
	Email        string
	LastName     string
	FirstName    string
	ClubName     string
	Points       float64
	Category     string
	BandName     string
	ArrivalOrder int64
}

// Allocation is the result of one run.
type Allocation struct {
	Choices *ChoiceSet
	// Bands is the working registry holding the post-run counters.
	Bands *Registry
}

// Allocate processes entries in ascending arrival order against a fresh
// working copy of registry. Entries sharing an arrival order keep their
// relative input order. The registry and the entries are left untouched.
func Allocate(registry *Registry, entries []Entry) (*Allocation, error) {
	working := registry.Reset()
	choices := NewChoiceSet()

	ordered := slices.Clone(entries)
	slices.SortStableFunc(ordered, func(a, b Entry) int {
		return cmp.Compare(a.ArrivalOrder, b.ArrivalOrder)
	})

	for _, e := range ordered {
		if _, ok := working.Lookup(e.BandName); !ok {
			return nil, configErrorf(ErrUnknownBand, "%q (permit %s)", e.BandName, e.PermitID)
		}

		rec := choices.recordFor(e)
		if _, dup := rec.Bands[e.BandName]; dup {
			return nil, configErrorf(ErrDuplicateEntry, "permit %s, band %q", e.PermitID, e.BandName)
		}

		remaining, _ := working.take(e.BandName)
		if remaining >= 0 {
			rec.Bands[e.BandName] = Accepted()
		} else {
			rec.Bands[e.BandName] = Waitlisted(-remaining)
		}
	}

	return &Allocation{Choices: choices, Bands: working}, nil
}

// Summaries returns the per-band capacity status of the run.
func (a *Allocation) Summaries() []BandSummary {
	return a.Bands.Summaries()
}
