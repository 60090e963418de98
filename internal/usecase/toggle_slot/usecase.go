package toggle_slot

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	slotRepo "github.com/m04kA/SMC-AgendaService/internal/infra/storage/slot"
)

// Request модель запроса на переключение слота
type Request struct {
	ProfessionalID int64  // ID профессионала
	SlotID         string // ID слота вида "2025-01-06_07:00"
}

// Response модель ответа с актуальным состоянием слота
type Response struct {
	Slot    *domain.Slot // Слот после применения переключения
	Changed bool         // false, если переключение было проигнорировано (слот забронирован)
}

// UseCase use case для переключения слота профессионалом:
// blocked -> free и free -> blocked. Забронированный слот переключить
// нельзя - попытка молча игнорируется и возвращает слот без изменений,
// потому что устаревший клик в интерфейсе не является ошибкой.
type UseCase struct {
	slotRepo  SlotRepository
	txManager TransactionManager
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(slotRepo SlotRepository, txManager TransactionManager, logger Logger) *UseCase {
	return &UseCase{
		slotRepo:  slotRepo,
		txManager: txManager,
		logger:    logger,
	}
}

// Execute выполняет use case переключения слота
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.ProfessionalID <= 0 {
		return nil, fmt.Errorf("%w: professionalID must be positive", ErrInvalidInput)
	}

	// ID слота обязан разбираться на дату и временную метку
	date, timeLabel, err := domain.ParseSlotID(req.SlotID)
	if err != nil {
		uc.logger.Warn("ToggleSlot: malformed slot id %q: %v", req.SlotID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidSlotID, err)
	}

	uc.logger.Info("ToggleSlot: professional=%d, slot=%s", req.ProfessionalID, req.SlotID)

	var result *Response

	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// Слот без записи в хранилище заблокирован по умолчанию
		slot, err := uc.slotRepo.GetByID(txCtx, req.ProfessionalID, req.SlotID)
		if err != nil {
			if !errors.Is(err, slotRepo.ErrSlotNotFound) {
				uc.logger.Error("ToggleSlot: failed to get slot: %v", err)
				return fmt.Errorf("%w: failed to get slot: %v", ErrInternal, err)
			}
			slot = domain.DefaultSlot(req.ProfessionalID, date, timeLabel)
		}

		// Забронированный слот не переключается: no-op, не ошибка
		if !slot.CanToggle() {
			uc.logger.Warn("ToggleSlot: slot=%s is booked, toggle ignored", req.SlotID)
			result = &Response{Slot: slot, Changed: false}
			return nil
		}

		slot.Status = slot.Toggled()

		updated, err := uc.slotRepo.Upsert(txCtx, slot)
		if err != nil {
			uc.logger.Error("ToggleSlot: failed to upsert slot: %v", err)
			return fmt.Errorf("%w: failed to upsert slot: %v", ErrInternal, err)
		}

		result = &Response{Slot: updated, Changed: true}
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("ToggleSlot: slot=%s now %s (changed=%t)",
		req.SlotID, result.Slot.Status, result.Changed)

	return result, nil
}
