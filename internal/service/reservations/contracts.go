package reservations

import (
	"context"
	"time"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	reservationRepo "github.com/m04kA/SMC-AgendaService/internal/infra/storage/reservation"
)

// ReservationRepository интерфейс репозитория броней
type ReservationRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Reservation, error)
	ListWithFilter(ctx context.Context, filter reservationRepo.Filter) ([]*domain.Reservation, error)
	CountByDate(ctx context.Context, professionalID int64, date time.Time) (int64, error)
	CountTotal(ctx context.Context, professionalID int64) (int64, error)
}

// SlotRepository интерфейс репозитория слотов
type SlotRepository interface {
	CountByStatus(ctx context.Context, professionalID int64, status domain.SlotStatus) (int64, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
