package models

import (
	"time"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	"github.com/m04kA/SMC-AgendaService/pkg/types"
)

// Request модели

// SetWindowRequest запрос на смену окна месяц/год управленческого вида
type SetWindowRequest struct {
	Year  int        `json:"year"`
	Month time.Month `json:"month"`
}

// Response модели

// ScheduleResponse ответ с конфигурацией расписания профессионала
type ScheduleResponse struct {
	ProfessionalID int64              `json:"professionalId"`
	TimeLabels     []types.TimeString `json:"timeLabels"`
	YearSelected   int                `json:"yearSelected"`
	MonthSelected  time.Month         `json:"monthSelected"`
	Weeks          []string           `json:"weeks"`       // Понедельники недель выбранного месяца
	BookingLink    string             `json:"bookingLink"` // Публичная ссылка для записи клиентов
	UpdatedAt      time.Time          `json:"updatedAt"`
}

// Методы конвертации

// FromDomainConfig конвертирует domain модель в DTO
func FromDomainConfig(c *domain.ScheduleConfig, bookingLink string) *ScheduleResponse {
	if c == nil {
		return nil
	}

	weeks := domain.MonthWeeks(c.YearSelected, c.MonthSelected)
	weekDates := make([]string, 0, len(weeks))
	for _, w := range weeks {
		weekDates = append(weekDates, w.Format(domain.DateFormat))
	}

	labels := make([]types.TimeString, len(c.TimeLabels))
	copy(labels, c.TimeLabels)

	return &ScheduleResponse{
		ProfessionalID: c.ProfessionalID,
		TimeLabels:     labels,
		YearSelected:   c.YearSelected,
		MonthSelected:  c.MonthSelected,
		Weeks:          weekDates,
		BookingLink:    bookingLink,
		UpdatedAt:      c.UpdatedAt,
	}
}
