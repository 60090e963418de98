package reserve_slot

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	slotRepo "github.com/m04kA/SMC-AgendaService/internal/infra/storage/slot"
	"github.com/m04kA/SMC-AgendaService/pkg/ptr"
)

// UseCase use case бронирования слота клиентом.
// Бронь создаётся только для слота в статусе free; бронь и перевод слота
// в booked с клиентскими полями выполняются атомарно в сериализуемой
// транзакции - у слота не может оказаться двух активных броней.
type UseCase struct {
	slotRepo        SlotRepository
	reservationRepo ReservationRepository
	txManager       TransactionManager
	idGenerator     IDGenerator
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	slotRepo SlotRepository,
	reservationRepo ReservationRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		slotRepo:        slotRepo,
		reservationRepo: reservationRepo,
		txManager:       txManager,
		idGenerator:     &UUIDGenerator{},
		logger:          logger,
	}
}

// UUIDGenerator генератор ID броней для production
type UUIDGenerator struct{}

// NewID возвращает новый UUID
func (g *UUIDGenerator) NewID() string {
	return uuid.NewString()
}

// Execute выполняет use case бронирования слота
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация параметров запроса
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ReserveSlot: validation failed: %v", err)
		return nil, err
	}

	// 2. ID слота обязан разбираться на дату и временную метку
	date, timeLabel, err := domain.ParseSlotID(req.SlotID)
	if err != nil {
		uc.logger.Warn("ReserveSlot: malformed slot id %q: %v", req.SlotID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidSlotID, err)
	}

	uc.logger.Info("ReserveSlot: professional=%d, slot=%s, service=%s",
		req.ProfessionalID, req.SlotID, req.ServiceType)

	// 3. Валидация данных клиента - целиком до любой мутации
	if fieldErrs := validateClientInput(req); fieldErrs != nil {
		uc.logger.Warn("ReserveSlot: client input rejected: %v", fieldErrs)
		return nil, fieldErrs
	}

	clientName := strings.TrimSpace(req.ClientName)
	clientPhone := domain.FormatPhone(req.ClientPhone)

	var result *Response

	// 4. Бронь и слот меняются атомарно
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		slot, err := uc.slotRepo.GetByID(txCtx, req.ProfessionalID, req.SlotID)
		if err != nil {
			if !errors.Is(err, slotRepo.ErrSlotNotFound) {
				uc.logger.Error("ReserveSlot: failed to get slot: %v", err)
				return fmt.Errorf("%w: failed to get slot: %v", ErrInternal, err)
			}
			// Слот без записи заблокирован по умолчанию и брони не подлежит
			slot = domain.DefaultSlot(req.ProfessionalID, date, timeLabel)
		}

		if !slot.IsBookable() {
			uc.logger.Warn("ReserveSlot: slot=%s is %s, reservation rejected", req.SlotID, slot.Status)
			return fmt.Errorf("%w: slot is %s", ErrSlotNotFree, slot.Status)
		}

		reservation := &domain.Reservation{
			ID:             uc.idGenerator.NewID(),
			ProfessionalID: req.ProfessionalID,
			SlotID:         slot.ID,
			ClientName:     clientName,
			ClientPhone:    clientPhone,
			ClientEmail:    req.ClientEmail,
			ServiceType:    req.ServiceType,
			Date:           slot.Date,
			TimeLabel:      slot.TimeLabel,
			Status:         domain.ReservationConfirmed,
		}

		created, err := uc.reservationRepo.Create(txCtx, reservation)
		if err != nil {
			uc.logger.Error("ReserveSlot: failed to create reservation: %v", err)
			return fmt.Errorf("%w: failed to create reservation: %v", ErrInternal, err)
		}

		// Слот переходит в booked строго вместе с клиентскими полями
		slot.Status = domain.SlotBooked
		slot.ClientName = ptr.Ptr(clientName)
		slot.ClientPhone = ptr.Ptr(clientPhone)
		slot.ClientEmail = req.ClientEmail
		slot.ServiceType = ptr.Ptr(req.ServiceType)

		if _, err := uc.slotRepo.Upsert(txCtx, slot); err != nil {
			uc.logger.Error("ReserveSlot: failed to upsert slot: %v", err)
			return fmt.Errorf("%w: failed to upsert slot: %v", ErrInternal, err)
		}

		result = &Response{
			ReservationID:  created.ID,
			ProfessionalID: created.ProfessionalID,
			SlotID:         created.SlotID,
			ClientName:     created.ClientName,
			ClientPhone:    created.ClientPhone,
			ClientEmail:    created.ClientEmail,
			ServiceType:    created.ServiceType,
			Date:           created.Date,
			TimeLabel:      created.TimeLabel,
			Status:         created.Status,
			CreatedAt:      created.CreatedAt,
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("ReserveSlot: reservation %s confirmed for slot=%s", result.ReservationID, req.SlotID)

	return result, nil
}
