package models

import (
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// MaxDescriptionLength bounds the free-text description of a trabajito
const MaxDescriptionLength = 280

// LifecycleState represents where a trabajito stands in its lifecycle.
// It is derived from the record, not stored: the stored status_id is a
// caller-facing taxonomy reference, while the lifecycle transitions are
// enforced by the repository.
type LifecycleState int

// Lifecycle state constants
const (
	// StateRequested means the trabajito was created and nothing happened yet
	StateRequested LifecycleState = iota
	// StateInProgress means the hired worker started the job
	StateInProgress
	// StateAwaitingConfirmation means the worker registered an end number and
	// is waiting for the solicitor to confirm it
	StateAwaitingConfirmation
	// StateCompleted means the solicitor confirmed the end number
	StateCompleted
)

func (s LifecycleState) String() string {
	return []string{
		"requested",
		"in_progress",
		"awaiting_confirmation",
		"completed",
	}[s]
}

// ParseLifecycleState converts a string representation to LifecycleState
func ParseLifecycleState(str string) (LifecycleState, error) {
	for i, state := range []string{
		"requested",
		"in_progress",
		"awaiting_confirmation",
		"completed",
	} {
		if state == str {
			return LifecycleState(i), nil
		}
	}
	return StateRequested, fmt.Errorf("invalid lifecycle state: %s", str)
}

// MarshalJSON implements the json.Marshaler interface for LifecycleState
func (s LifecycleState) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// Trabajito represents one unit of requested work. The solicitor creates it,
// the hired worker walks it through start and finish, and the solicitor
// closes it by confirming the worker's end number.
type Trabajito struct {
	gorm.Model
	Description string     `json:"description" gorm:"not null"`
	DateInit    time.Time  `json:"dateInit" gorm:"not null"`
	DateFinish  *time.Time `json:"dateFinish,omitempty"`

	// EndNumber is the pending confirmation code. It is never serialized:
	// the solicitor learns it from the worker out of band.
	EndNumber string `json:"-"`

	// ConfirmedAt marks a successful confirmation; the record is terminal
	// from then on.
	ConfirmedAt *time.Time `json:"confirmedAt,omitempty"`

	SolicitorID uint `json:"id_solicitor" gorm:"not null;index"`
	HiredID     uint `json:"id_hired" gorm:"not null;index"`
	StatusID    uint `json:"status" gorm:"not null;index"`

	Hidden bool `json:"hidden" gorm:"not null;default:false;index"`

	BillLines []BillLine `json:"billLines,omitempty" gorm:"foreignKey:TrabajitoID"`
}

// BillLine is one {item, cost} entry on a trabajito's bill. Lines are
// append-only; ordering follows insertion.
type BillLine struct {
	gorm.Model
	TrabajitoID uint    `json:"-" gorm:"not null;index"`
	Item        string  `json:"item" gorm:"not null"`
	Cost        float64 `json:"cost" gorm:"not null"`
}

// State derives the lifecycle state from the record.
func (t *Trabajito) State() LifecycleState {
	switch {
	case t.ConfirmedAt != nil:
		return StateCompleted
	case t.EndNumber != "":
		return StateAwaitingConfirmation
	case t.DateFinish != nil:
		return StateInProgress
	default:
		return StateRequested
	}
}

// MarshalJSON adds the derived lifecycle state to the serialized record.
func (t Trabajito) MarshalJSON() ([]byte, error) {
	type Alias Trabajito // avoid infinite recursion
	return json.Marshal(struct {
		Alias
		State LifecycleState `json:"state"`
	}{
		Alias: Alias(t),
		State: t.State(),
	})
}

// Validate checks the creation invariants of a trabajito.
func (t *Trabajito) Validate() error {
	if t.Description == "" {
		return fmt.Errorf("description cannot be empty")
	}
	if len(t.Description) > MaxDescriptionLength {
		return fmt.Errorf("description cannot exceed %d characters", MaxDescriptionLength)
	}
	if t.DateInit.IsZero() {
		return fmt.Errorf("date_init is required")
	}
	if t.SolicitorID == t.HiredID {
		return ErrSelfHire
	}
	return nil
}

// TrabajitoStartPatch carries the fields the hired worker may set when
// starting a job. Pointer fields tag presence explicitly: a nil field is
// left untouched, a non-nil zero value is a legitimate update.
type TrabajitoStartPatch struct {
	DateFinish *time.Time `json:"dateFinish,omitempty"`
	StatusID   *uint      `json:"status,omitempty"`
}
