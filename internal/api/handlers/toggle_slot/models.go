package toggle_slot

import (
	"github.com/m04kA/SMC-AgendaService/internal/domain"
	toggleSlot "github.com/m04kA/SMC-AgendaService/internal/usecase/toggle_slot"
)

// ToggleSlotResponse HTTP response model
type ToggleSlotResponse struct {
	ID        string `json:"id"`
	Date      string `json:"date"`
	TimeLabel string `json:"timeLabel"`
	Status    string `json:"status"`
	Changed   bool   `json:"changed"` // false, если слот забронирован и переключение проигнорировано
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *toggleSlot.Response) *ToggleSlotResponse {
	return &ToggleSlotResponse{
		ID:        resp.Slot.ID,
		Date:      resp.Slot.Date.Format(domain.DateFormat),
		TimeLabel: resp.Slot.TimeLabel.String(),
		Status:    string(resp.Slot.Status),
		Changed:   resp.Changed,
	}
}
