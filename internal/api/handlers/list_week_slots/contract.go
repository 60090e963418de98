package list_week_slots

import (
	"context"

	listWeekSlots "github.com/m04kA/SMC-AgendaService/internal/usecase/list_week_slots"
)

type ListWeekSlotsUseCase interface {
	Execute(ctx context.Context, req *listWeekSlots.Request) (*listWeekSlots.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
