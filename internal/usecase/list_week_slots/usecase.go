package list_week_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	scheduleRepo "github.com/m04kA/SMC-AgendaService/internal/infra/storage/schedule"
)

// UseCase use case для получения сетки слотов на неделю.
// Чтение без побочных эффектов: сетка генерируется из конфигурации
// и накладывается на явно сохранённые слоты.
type UseCase struct {
	slotRepo     SlotRepository
	scheduleRepo ScheduleRepository
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(slotRepo SlotRepository, scheduleRepo ScheduleRepository, logger Logger) *UseCase {
	return &UseCase{
		slotRepo:     slotRepo,
		scheduleRepo: scheduleRepo,
		logger:       logger,
	}
}

// Execute выполняет use case получения слотов недели
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.ProfessionalID <= 0 {
		return nil, fmt.Errorf("%w: professionalID must be positive", ErrInvalidInput)
	}
	if req.WeekStart.IsZero() {
		return nil, fmt.Errorf("%w: weekStart is required", ErrInvalidInput)
	}

	// Нормализуем границы недели: понедельник - воскресенье
	weekStart := domain.WeekStart(req.WeekStart)
	weekEnd := domain.WeekEnd(req.WeekStart)

	uc.logger.Info("ListWeekSlots: professional=%d, week=%s..%s",
		req.ProfessionalID, weekStart.Format(domain.DateFormat), weekEnd.Format(domain.DateFormat))

	// Конфигурация расписания; если профессионал её не менял - дефолтная
	config, err := uc.scheduleRepo.GetByProfessionalID(ctx, req.ProfessionalID)
	if err != nil {
		if !errors.Is(err, scheduleRepo.ErrConfigNotFound) {
			uc.logger.Error("ListWeekSlots: failed to get schedule config: %v", err)
			return nil, fmt.Errorf("%w: failed to get schedule config: %v", ErrInternal, err)
		}
		config = domain.DefaultScheduleConfig(req.ProfessionalID, weekStart)
	}

	if len(config.TimeLabels) == 0 {
		uc.logger.Error("ListWeekSlots: professional=%d has empty time labels", req.ProfessionalID)
		return nil, ErrNoTimeLabels
	}

	stored, err := uc.slotRepo.ListByDateRange(ctx, req.ProfessionalID, weekStart, weekEnd)
	if err != nil {
		uc.logger.Error("ListWeekSlots: failed to list stored slots: %v", err)
		return nil, fmt.Errorf("%w: failed to list stored slots: %v", ErrInternal, err)
	}

	slots := generateWeekSlots(req.ProfessionalID, weekStart, weekEnd, config.TimeLabels, stored)

	uc.logger.Info("ListWeekSlots: generated %d slots for professional=%d", len(slots), req.ProfessionalID)

	return &Response{
		ProfessionalID: req.ProfessionalID,
		WeekStart:      weekStart,
		WeekEnd:        weekEnd,
		Slots:          slots,
	}, nil
}
