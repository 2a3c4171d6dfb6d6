package models

import (
	"time"

	"github.com/google/uuid"
)

// Entry is a confirmed registration of a member in a band, joined with the
// member and user data the report needs.
type Entry struct {
	ID           uuid.UUID `json:"id"`
	PermitID     string    `json:"permit_id"`
	Email        string    `json:"email"`
	LastName     string    `json:"last_name"`
	FirstName    string    `json:"first_name"`
	ClubName     string    `json:"club_name"`
	Points       float64   `json:"points"`
	Category     string    `json:"category"`
	BandName     string    `json:"band_name"`
	CreatedAt    time.Time `json:"created_at"`
	ArrivalOrder int64     `json:"arrival_order"`
}
