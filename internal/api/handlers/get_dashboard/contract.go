package get_dashboard

import (
	"context"

	"github.com/m04kA/SMC-AgendaService/internal/service/reservations/models"
)

type ReservationsService interface {
	Dashboard(ctx context.Context, professionalID int64) (*models.DashboardResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
