package allocation

import "fmt"

// Outcome is the result for one (registrant, band) pair. The zero value is
// not a valid outcome; use Accepted or Waitlisted.
type Outcome struct {
	accepted bool
	position int
}

func Accepted() Outcome {
	return Outcome{accepted: true}
}

// Waitlisted panics when position is not positive.
func Waitlisted(position int) Outcome {
	if position < 1 {
		panic(fmt.Sprintf("allocation: waitlist position must be positive, got %d", position))
	}
	return Outcome{position: position}
}

func (o Outcome) IsAccepted() bool {
	return o.accepted
}

// Position is the 1-based waitlist rank, or 0 for an accepted entry.
func (o Outcome) Position() int {
	return o.position
}

func (o Outcome) String() string {
	if o.accepted {
		return "accepted"
	}
	return fmt.Sprintf("waitlisted(%d)", o.position)
}
