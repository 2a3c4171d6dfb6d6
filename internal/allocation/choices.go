package allocation

// ChoiceRecord aggregates every band choice of one registrant. Identity
// fields come from the first entry seen for the permit.
type ChoiceRecord struct {
	PermitID  string
	Email     string
	LastName  string
	FirstName string
	ClubName  string
	Points    float64
	Category  string
	Bands     map[string]Outcome
}

// ChoiceSet is an ordered permit_id -> ChoiceRecord container. Iteration
// order is first-seen order.
type ChoiceSet struct {
	order    []string
	byPermit map[string]*ChoiceRecord
}

func NewChoiceSet() *ChoiceSet {
	return &ChoiceSet{byPermit: make(map[string]*ChoiceRecord)}
}

func (s *ChoiceSet) Len() int {
	return len(s.order)
}

func (s *ChoiceSet) Get(permitID string) (*ChoiceRecord, bool) {
	rec, ok := s.byPermit[permitID]
	return rec, ok
}

// Records returns the records in first-seen order.
func (s *ChoiceSet) Records() []*ChoiceRecord {
	out := make([]*ChoiceRecord, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.byPermit[id])
	}
	return out
}

func (s *ChoiceSet) recordFor(e Entry) *ChoiceRecord {
	if rec, ok := s.byPermit[e.PermitID]; ok {
		return rec
	}

	rec := &ChoiceRecord{
		PermitID:  e.PermitID,
		Email:     e.Email,
		LastName:  e.LastName,
		FirstName: e.FirstName,
		ClubName:  e.ClubName,
		Points:    e.Points,
		Category:  e.Category,
		Bands:     make(map[string]Outcome),
	}
	s.byPermit[e.PermitID] = rec
	s.order = append(s.order, e.PermitID)

	return rec
}
