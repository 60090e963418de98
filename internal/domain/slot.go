package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-AgendaService/pkg/types"
)

// SlotStatus represents the status of a time slot
type SlotStatus string

const (
	SlotBlocked SlotStatus = "blocked"
	SlotFree    SlotStatus = "free"
	SlotBooked  SlotStatus = "booked"
)

// ErrInvalidSlotID is returned when a slot id cannot be parsed
var ErrInvalidSlotID = errors.New("domain: invalid slot id")

// Slot represents one addressable (date, time-of-day) unit of availability.
// The id is derived deterministically from date and time label and never changes;
// only the status and the attached client fields do.
type Slot struct {
	ID             string
	ProfessionalID int64
	Date           time.Time
	TimeLabel      types.TimeString
	Status         SlotStatus

	// Client fields, populated only when Status == SlotBooked
	ClientName  *string
	ClientPhone *string
	ClientEmail *string
	ServiceType *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewSlotID derives the slot id from its date and time label: "2025-01-06_07:00".
// Identical (date, timeLabel) pairs always produce identical ids.
func NewSlotID(date time.Time, timeLabel types.TimeString) string {
	return date.Format(DateFormat) + "_" + timeLabel.String()
}

// ParseSlotID splits a slot id back into its date and time label.
// A malformed id is a programming error and fails fast.
func ParseSlotID(id string) (time.Time, types.TimeString, error) {
	parts := strings.SplitN(id, "_", 2)
	if len(parts) != 2 {
		return time.Time{}, "", fmt.Errorf("%w: %q", ErrInvalidSlotID, id)
	}

	date, err := time.Parse(DateFormat, parts[0])
	if err != nil {
		return time.Time{}, "", fmt.Errorf("%w: %q: bad date", ErrInvalidSlotID, id)
	}

	timeLabel, err := types.NewTimeStringFromString(parts[1])
	if err != nil {
		return time.Time{}, "", fmt.Errorf("%w: %q: bad time label", ErrInvalidSlotID, id)
	}

	return date, timeLabel, nil
}

// DefaultSlot returns the implicit slot for a (date, timeLabel) pair that has
// never been stored. Everything is blocked until the professional frees it.
func DefaultSlot(professionalID int64, date time.Time, timeLabel types.TimeString) *Slot {
	return &Slot{
		ID:             NewSlotID(date, timeLabel),
		ProfessionalID: professionalID,
		Date:           date,
		TimeLabel:      timeLabel,
		Status:         SlotBlocked,
	}
}

// IsBookable returns true if a client may reserve this slot
func (s *Slot) IsBookable() bool {
	return s.Status == SlotFree
}

// CanToggle returns true if the professional may flip this slot between
// blocked and free. Booked slots are not toggleable.
func (s *Slot) CanToggle() bool {
	return s.Status != SlotBooked
}

// Toggled returns the status the slot moves to on a professional toggle.
// Booked slots keep their status.
func (s *Slot) Toggled() SlotStatus {
	switch s.Status {
	case SlotBlocked:
		return SlotFree
	case SlotFree:
		return SlotBlocked
	default:
		return s.Status
	}
}

// ClearClientFields removes the attached client data, used when a slot
// returns to free after a cancellation
func (s *Slot) ClearClientFields() {
	s.ClientName = nil
	s.ClientPhone = nil
	s.ClientEmail = nil
	s.ServiceType = nil
}

// ValidStatus returns true if the given string is a known slot status
func ValidStatus(s string) bool {
	switch SlotStatus(s) {
	case SlotBlocked, SlotFree, SlotBooked:
		return true
	default:
		return false
	}
}
