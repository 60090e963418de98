package models

import (
	"time"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	"github.com/m04kA/SMC-AgendaService/pkg/types"
)

// Request модели

// ListRequest запрос списка броней профессионала
type ListRequest struct {
	ProfessionalID int64
	Date           *time.Time                // Только на конкретную дату (опционально)
	UpcomingOnly   bool                      // Только предстоящие, начиная с сегодня
	Status         *domain.ReservationStatus // Фильтр по статусу (опционально)
	Limit          uint64                    // 0 - без ограничения
}

// Response модели

// ReservationResponse ответ с данными брони
type ReservationResponse struct {
	ID             string                   `json:"id"`
	ProfessionalID int64                    `json:"professionalId"`
	SlotID         string                   `json:"slotId"`
	ClientName     string                   `json:"clientName"`
	ClientPhone    string                   `json:"clientPhone"`
	ClientEmail    *string                  `json:"clientEmail,omitempty"`
	ServiceType    string                   `json:"serviceType"`
	Date           string                   `json:"date"`
	TimeLabel      types.TimeString         `json:"timeLabel"`
	Status         domain.ReservationStatus `json:"status"`
	CancelledAt    *time.Time               `json:"cancelledAt,omitempty"`
	CreatedAt      time.Time                `json:"createdAt"`
}

// ReservationListResponse ответ со списком броней
type ReservationListResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
}

// DashboardResponse сводка для главного экрана профессионала
type DashboardResponse struct {
	TodayCount   int64 `json:"todayCount"`   // Подтверждённые брони на сегодня
	TotalCount   int64 `json:"totalCount"`   // Все брони за всё время
	BlockedCount int64 `json:"blockedCount"` // Явно заблокированные слоты
}

// Методы конвертации

// FromDomainReservation конвертирует domain модель в DTO
func FromDomainReservation(r *domain.Reservation) *ReservationResponse {
	if r == nil {
		return nil
	}

	return &ReservationResponse{
		ID:             r.ID,
		ProfessionalID: r.ProfessionalID,
		SlotID:         r.SlotID,
		ClientName:     r.ClientName,
		ClientPhone:    r.ClientPhone,
		ClientEmail:    r.ClientEmail,
		ServiceType:    r.ServiceType,
		Date:           r.Date.Format(domain.DateFormat),
		TimeLabel:      r.TimeLabel,
		Status:         r.Status,
		CancelledAt:    r.CancelledAt,
		CreatedAt:      r.CreatedAt,
	}
}

// FromDomainReservationList конвертирует список domain моделей в DTO
func FromDomainReservationList(list []*domain.Reservation) *ReservationListResponse {
	reservations := make([]ReservationResponse, 0, len(list))
	for _, r := range list {
		reservations = append(reservations, *FromDomainReservation(r))
	}
	return &ReservationListResponse{Reservations: reservations}
}
