package domain

import (
	"strings"
	"time"

	"github.com/m04kA/SMC-AgendaService/pkg/types"
)

// ReservationStatus represents the status of a reservation
type ReservationStatus string

const (
	ReservationConfirmed ReservationStatus = "confirmed"
	ReservationCancelled ReservationStatus = "cancelled"
)

// Reservation represents a client's confirmed claim on a booked slot.
// Date and TimeLabel are denormalized from the slot for independent
// display and sorting; reservations are never deleted, only cancelled.
type Reservation struct {
	ID             string // UUID, generated at creation time
	ProfessionalID int64
	SlotID         string

	ClientName  string
	ClientPhone string
	ClientEmail *string
	ServiceType string

	Date      time.Time
	TimeLabel types.TimeString
	Status    ReservationStatus

	CancelledAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsActive returns true while the reservation holds its slot
func (r *Reservation) IsActive() bool {
	return r.Status == ReservationConfirmed
}

// CanBeCancelled returns true if the reservation is still cancellable
func (r *Reservation) CanBeCancelled() bool {
	return r.Status == ReservationConfirmed
}

// NormalizePhone strips everything but digits from a phone number
func NormalizePhone(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// FormatPhone renders an 11-digit phone number as "(DD) DDDDD-DDDD".
// Anything else is returned as entered.
func FormatPhone(phone string) string {
	digits := NormalizePhone(phone)
	if len(digits) != 11 {
		return phone
	}
	return "(" + digits[:2] + ") " + digits[2:7] + "-" + digits[7:]
}
