package cancel_reservation

import (
	"time"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	cancelReservation "github.com/m04kA/SMC-AgendaService/internal/usecase/cancel_reservation"
)

// CancelReservationResponse HTTP response model: отменённая бронь
// и освобождённый слот
type CancelReservationResponse struct {
	ID          string  `json:"id"`
	SlotID      string  `json:"slotId"`
	Status      string  `json:"status"`
	SlotStatus  string  `json:"slotStatus"`
	CancelledAt *string `json:"cancelledAt,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *cancelReservation.Response) *CancelReservationResponse {
	var cancelledAt *string
	if resp.Reservation.CancelledAt != nil {
		formatted := resp.Reservation.CancelledAt.Format(time.RFC3339)
		cancelledAt = &formatted
	}

	return &CancelReservationResponse{
		ID:          resp.Reservation.ID,
		SlotID:      resp.Reservation.SlotID,
		Status:      string(domain.ReservationCancelled),
		SlotStatus:  string(resp.Slot.Status),
		CancelledAt: cancelledAt,
	}
}
