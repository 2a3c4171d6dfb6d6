package models

import "github.com/google/uuid"

const (
	BandSexMale   = "M"
	BandSexFemale = "F"
	BandSexAll    = "ALL"
)

type Band struct {
	ID         uuid.UUID `json:"id" yaml:"-"`
	Name       string    `json:"name" yaml:"name" validate:"required"`
	Day        int       `json:"day" yaml:"day" validate:"oneof=1 2"`
	Color      string    `json:"color" yaml:"color" validate:"required"`
	Sex        string    `json:"sex" yaml:"sex" validate:"oneof=M F ALL"`
	MaxPoints  float64   `json:"max_points" yaml:"max_points" validate:"gte=0"`
	MaxEntries int       `json:"max_entries" yaml:"max_entries" validate:"gte=0"`
	Price      int       `json:"price" yaml:"price" validate:"gte=0"`
	Position   int       `json:"position" yaml:"position"`
}
