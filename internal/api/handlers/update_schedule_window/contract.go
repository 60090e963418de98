package update_schedule_window

import (
	"context"

	"github.com/m04kA/SMC-AgendaService/internal/service/schedule/models"
)

type ScheduleService interface {
	SetWindow(ctx context.Context, professionalID int64, req *models.SetWindowRequest) (*models.ScheduleResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
