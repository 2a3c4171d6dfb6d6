package allocation

import (
	"github.com/go-playground/validator/v10"
)

// BandDescriptor is the raw band definition read from the data source.
type BandDescriptor struct {
	Name       string `validate:"required"`
	Day        int    `validate:"oneof=1 2"`
	MaxEntries int    `validate:"gte=0"`
}

// Band is a descriptor placed in a registry. Index is the load position and
// drives column placement. Remaining is only meaningful on a working copy.
type Band struct {
	Name       string
	Day        int
	MaxEntries int
	Index      int
	Remaining  int
}

// Registry holds bands in canonical order.
type Registry struct {
	bands  []Band
	byName map[string]int
}

var descriptorValidator = validator.New()

// LoadRegistry assigns each descriptor its position as index.
func LoadRegistry(descriptors []BandDescriptor) (*Registry, error) {
	r := &Registry{
		bands:  make([]Band, 0, len(descriptors)),
		byName: make(map[string]int, len(descriptors)),
	}

	for i, d := range descriptors {
		if err := descriptorValidator.Struct(d); err != nil {
			return nil, configErrorf(ErrInvalidBand, "band #%d (%q): %v", i, d.Name, err)
		}

		if _, ok := r.byName[d.Name]; ok {
			return nil, configErrorf(ErrDuplicateBand, "%q", d.Name)
		}

		r.byName[d.Name] = i
		r.bands = append(r.bands, Band{
			Name:       d.Name,
			Day:        d.Day,
			MaxEntries: d.MaxEntries,
			Index:      i,
			Remaining:  d.MaxEntries,
		})
	}

	return r, nil
}

// Reset returns a working copy with every counter re-derived from MaxEntries.
// The receiver is never modified.
func (r *Registry) Reset() *Registry {
	w := &Registry{
		bands:  make([]Band, len(r.bands)),
		byName: make(map[string]int, len(r.byName)),
	}

	copy(w.bands, r.bands)
	for i := range w.bands {
		w.bands[i].Remaining = w.bands[i].MaxEntries
	}
	for name, i := range r.byName {
		w.byName[name] = i
	}

	return w
}

func (r *Registry) Len() int {
	return len(r.bands)
}

// Bands returns a copy of the bands in index order.
func (r *Registry) Bands() []Band {
	out := make([]Band, len(r.bands))
	copy(out, r.bands)
	return out
}

func (r *Registry) Lookup(name string) (Band, bool) {
	i, ok := r.byName[name]
	if !ok {
		return Band{}, false
	}
	return r.bands[i], true
}

// DayBands returns the bands of one day in index order.
func (r *Registry) DayBands(day int) []Band {
	var out []Band
	for _, b := range r.bands {
		if b.Day == day {
			out = append(out, b)
		}
	}
	return out
}

// take consumes one place of the named band and returns the counter after
// the decrement.
func (r *Registry) take(name string) (int, bool) {
	i, ok := r.byName[name]
	if !ok {
		return 0, false
	}
	r.bands[i].Remaining--
	return r.bands[i].Remaining, true
}

// BandSummary is the capacity status of one band after a run.
type BandSummary struct {
	Name       string `json:"name"`
	Day        int    `json:"day"`
	Index      int    `json:"index"`
	MaxEntries int    `json:"max_entries"`
	Requested  int    `json:"requested"`
	Accepted   int    `json:"accepted"`
	Waitlisted int    `json:"waitlisted"`
	Free       int    `json:"free"`
}

func (r *Registry) Summaries() []BandSummary {
	out := make([]BandSummary, 0, len(r.bands))
	for _, b := range r.bands {
		requested := b.MaxEntries - b.Remaining
		accepted := min(requested, b.MaxEntries)
		out = append(out, BandSummary{
			Name:       b.Name,
			Day:        b.Day,
			Index:      b.Index,
			MaxEntries: b.MaxEntries,
			Requested:  requested,
			Accepted:   accepted,
			Waitlisted: requested - accepted,
			Free:       max(b.Remaining, 0),
		})
	}
	return out
}
