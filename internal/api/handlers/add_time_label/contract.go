package add_time_label

import (
	"context"

	"github.com/m04kA/SMC-AgendaService/internal/service/schedule/models"
)

type ScheduleService interface {
	AddTimeLabel(ctx context.Context, professionalID int64) (*models.ScheduleResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
