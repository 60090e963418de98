package reserve_slot

import (
	"time"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	reserveSlot "github.com/m04kA/SMC-AgendaService/internal/usecase/reserve_slot"
)

// ReserveSlotRequest HTTP request model
type ReserveSlotRequest struct {
	SlotID      string  `json:"slotId"` // "2025-01-06_07:00"
	ClientName  string  `json:"clientName"`
	ClientPhone string  `json:"clientPhone"`
	ClientEmail *string `json:"clientEmail,omitempty"`
	ServiceType string  `json:"serviceType"`
}

// ReservationResponse HTTP response model
type ReservationResponse struct {
	ID          string  `json:"id"`
	SlotID      string  `json:"slotId"`
	ClientName  string  `json:"clientName"`
	ClientPhone string  `json:"clientPhone"`
	ClientEmail *string `json:"clientEmail,omitempty"`
	ServiceType string  `json:"serviceType"`
	Date        string  `json:"date"`
	TimeLabel   string  `json:"timeLabel"`
	Status      string  `json:"status"`
	CreatedAt   string  `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *ReserveSlotRequest) ToUseCaseRequest(professionalID int64) *reserveSlot.Request {
	return &reserveSlot.Request{
		ProfessionalID: professionalID,
		SlotID:         r.SlotID,
		ClientName:     r.ClientName,
		ClientPhone:    r.ClientPhone,
		ClientEmail:    r.ClientEmail,
		ServiceType:    r.ServiceType,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *reserveSlot.Response) *ReservationResponse {
	return &ReservationResponse{
		ID:          resp.ReservationID,
		SlotID:      resp.SlotID,
		ClientName:  resp.ClientName,
		ClientPhone: resp.ClientPhone,
		ClientEmail: resp.ClientEmail,
		ServiceType: resp.ServiceType,
		Date:        resp.Date.Format(domain.DateFormat),
		TimeLabel:   resp.TimeLabel.String(),
		Status:      string(resp.Status),
		CreatedAt:   resp.CreatedAt.Format(time.RFC3339),
	}
}
