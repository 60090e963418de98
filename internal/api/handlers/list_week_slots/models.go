package list_week_slots

import (
	"github.com/m04kA/SMC-AgendaService/internal/domain"
	listWeekSlots "github.com/m04kA/SMC-AgendaService/internal/usecase/list_week_slots"
)

// SlotResponse HTTP модель одного слота недельной сетки
type SlotResponse struct {
	ID          string  `json:"id"`
	Date        string  `json:"date"`
	TimeLabel   string  `json:"timeLabel"`
	Status      string  `json:"status"`
	ClientName  *string `json:"clientName,omitempty"`
	ClientPhone *string `json:"clientPhone,omitempty"`
	ServiceType *string `json:"serviceType,omitempty"`
}

// WeekSlotsResponse HTTP модель недельной сетки слотов
type WeekSlotsResponse struct {
	ProfessionalID int64          `json:"professionalId"`
	WeekStart      string         `json:"weekStart"`
	WeekEnd        string         `json:"weekEnd"`
	Slots          []SlotResponse `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *listWeekSlots.Response) *WeekSlotsResponse {
	slots := make([]SlotResponse, 0, len(resp.Slots))
	for _, s := range resp.Slots {
		slots = append(slots, SlotResponse{
			ID:          s.ID,
			Date:        s.Date.Format(domain.DateFormat),
			TimeLabel:   s.TimeLabel.String(),
			Status:      string(s.Status),
			ClientName:  s.ClientName,
			ClientPhone: s.ClientPhone,
			ServiceType: s.ServiceType,
		})
	}

	return &WeekSlotsResponse{
		ProfessionalID: resp.ProfessionalID,
		WeekStart:      resp.WeekStart.Format(domain.DateFormat),
		WeekEnd:        resp.WeekEnd.Format(domain.DateFormat),
		Slots:          slots,
	}
}
