package models

import "gorm.io/gorm"

// Default status taxonomy entries seeded at migration time. The lifecycle
// endpoints receive status ids from the client, so the taxonomy must exist
// before any trabajito is created.
const (
	StatusRequested            = "requested"
	StatusInProgress           = "in progress"
	StatusAwaitingConfirmation = "awaiting confirmation"
	StatusCompleted            = "completed"
)

// DefaultStatuses lists the seed entries in lifecycle order.
var DefaultStatuses = []string{
	StatusRequested,
	StatusInProgress,
	StatusAwaitingConfirmation,
	StatusCompleted,
}

// Status is a taxonomy entry describing the caller-facing state of a trabajito
type Status struct {
	gorm.Model
	Name string `json:"name" gorm:"not null;unique"`
}
