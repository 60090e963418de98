package cancel_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	reservationRepo "github.com/m04kA/SMC-AgendaService/internal/infra/storage/reservation"
	slotRepo "github.com/m04kA/SMC-AgendaService/internal/infra/storage/slot"
)

// Request модель запроса на отмену брони
type Request struct {
	ProfessionalID int64  // ID профессионала, владеющего расписанием
	ReservationID  string // ID отменяемой брони
}

// Response модель ответа с отменённой бронью и освобождённым слотом
type Response struct {
	Reservation *domain.Reservation
	Slot        *domain.Slot
}

// UseCase use case отмены брони профессионалом.
// Отмена освобождает слот: статус возвращается в free, клиентские поля
// очищаются. Бронь при этом сохраняется со статусом cancelled.
type UseCase struct {
	reservationRepo ReservationRepository
	slotRepo        SlotRepository
	txManager       TransactionManager
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	slotRepo SlotRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		slotRepo:        slotRepo,
		txManager:       txManager,
		logger:          logger,
	}
}

// Execute выполняет use case отмены брони
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if req.ProfessionalID <= 0 {
		return nil, fmt.Errorf("%w: professionalID must be positive", ErrInvalidInput)
	}
	if req.ReservationID == "" {
		return nil, fmt.Errorf("%w: reservationID is required", ErrInvalidInput)
	}

	uc.logger.Info("CancelReservation: professional=%d, reservation=%s",
		req.ProfessionalID, req.ReservationID)

	var result *Response

	// 2. Бронь и слот меняются атомарно
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		reservation, err := uc.reservationRepo.GetByID(txCtx, req.ReservationID)
		if err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				return fmt.Errorf("%w: id=%s", ErrReservationNotFound, req.ReservationID)
			}
			uc.logger.Error("CancelReservation: failed to get reservation: %v", err)
			return fmt.Errorf("%w: failed to get reservation: %v", ErrInternal, err)
		}

		// 3. Бронь должна принадлежать расписанию этого профессионала
		if reservation.ProfessionalID != req.ProfessionalID {
			uc.logger.Warn("CancelReservation: reservation=%s belongs to professional=%d, requested by %d",
				reservation.ID, reservation.ProfessionalID, req.ProfessionalID)
			return fmt.Errorf("%w: reservation belongs to another professional", ErrAccessDenied)
		}

		if !reservation.CanBeCancelled() {
			return fmt.Errorf("%w: id=%s", ErrAlreadyCancelled, reservation.ID)
		}

		if err := uc.reservationRepo.Cancel(txCtx, reservation.ID); err != nil {
			uc.logger.Error("CancelReservation: failed to cancel reservation: %v", err)
			return fmt.Errorf("%w: failed to cancel reservation: %v", ErrInternal, err)
		}
		reservation.Status = domain.ReservationCancelled

		// 4. Слот освобождается, клиентские поля очищаются
		slot, err := uc.slotRepo.GetByID(txCtx, req.ProfessionalID, reservation.SlotID)
		if err != nil {
			if !errors.Is(err, slotRepo.ErrSlotNotFound) {
				uc.logger.Error("CancelReservation: failed to get slot: %v", err)
				return fmt.Errorf("%w: failed to get slot: %v", ErrInternal, err)
			}
			slot = domain.DefaultSlot(req.ProfessionalID, reservation.Date, reservation.TimeLabel)
		}

		slot.Status = domain.SlotFree
		slot.ClearClientFields()

		freed, err := uc.slotRepo.Upsert(txCtx, slot)
		if err != nil {
			uc.logger.Error("CancelReservation: failed to upsert slot: %v", err)
			return fmt.Errorf("%w: failed to upsert slot: %v", ErrInternal, err)
		}

		result = &Response{
			Reservation: reservation,
			Slot:        freed,
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CancelReservation: reservation %s cancelled, slot %s freed",
		result.Reservation.ID, result.Slot.ID)

	return result, nil
}
