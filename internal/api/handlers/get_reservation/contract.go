package get_reservation

import (
	"context"

	"github.com/m04kA/SMC-AgendaService/internal/service/reservations/models"
)

type ReservationsService interface {
	GetByID(ctx context.Context, professionalID int64, id string) (*models.ReservationResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
