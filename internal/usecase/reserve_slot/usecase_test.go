package reserve_slot

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	"github.com/m04kA/SMC-AgendaService/internal/infra/storage/memory"
)

type stubLogger struct{}

func (stubLogger) Info(string, ...interface{})  {}
func (stubLogger) Warn(string, ...interface{})  {}
func (stubLogger) Error(string, ...interface{}) {}

// stubTxManager выполняет функцию без настоящей транзакции
type stubTxManager struct{}

func (stubTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func validRequest() *Request {
	return &Request{
		ProfessionalID: 1,
		SlotID:         "2025-01-06_07:00",
		ClientName:     "Ana Silva",
		ClientPhone:    "11999999999",
		ServiceType:    "Corte Feminino",
	}
}

func freeSlot(t *testing.T, slots *memory.SlotStore, professionalID int64, id string) {
	t.Helper()
	date, label, err := domain.ParseSlotID(id)
	require.NoError(t, err)

	slot := domain.DefaultSlot(professionalID, date, label)
	slot.Status = domain.SlotFree
	_, err = slots.Upsert(context.Background(), slot)
	require.NoError(t, err)
}

func TestExecute_ReservesFreeSlot(t *testing.T) {
	ctx := context.Background()
	slots := memory.NewSlotStore()
	reservations := memory.NewReservationStore()
	freeSlot(t, slots, 1, "2025-01-06_07:00")

	uc := NewUseCase(slots, reservations, stubTxManager{}, stubLogger{})

	resp, err := uc.Execute(ctx, validRequest())
	require.NoError(t, err)

	assert.NotEmpty(t, resp.ReservationID)
	assert.Equal(t, "2025-01-06_07:00", resp.SlotID)
	assert.Equal(t, domain.ReservationConfirmed, resp.Status)
	assert.Equal(t, "Ana Silva", resp.ClientName)
	// Телефон из 11 цифр форматируется для отображения
	assert.Equal(t, "(11) 99999-9999", resp.ClientPhone)
	assert.Equal(t, time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC), resp.Date)

	// Слот переведён в booked вместе с клиентскими полями
	slot, err := slots.GetByID(ctx, 1, "2025-01-06_07:00")
	require.NoError(t, err)
	assert.Equal(t, domain.SlotBooked, slot.Status)
	require.NotNil(t, slot.ClientName)
	assert.Equal(t, "Ana Silva", *slot.ClientName)
	require.NotNil(t, slot.ClientPhone)
	assert.Equal(t, "(11) 99999-9999", *slot.ClientPhone)
	require.NotNil(t, slot.ServiceType)
	assert.Equal(t, "Corte Feminino", *slot.ServiceType)

	// Бронь сохранена с денормализованными датой и временем
	res, err := reservations.GetByID(ctx, resp.ReservationID)
	require.NoError(t, err)
	assert.Equal(t, domain.ReservationConfirmed, res.Status)
	assert.Equal(t, "07:00", res.TimeLabel.String())
}

func TestExecute_BlockedSlotRejected(t *testing.T) {
	ctx := context.Background()
	slots := memory.NewSlotStore()
	reservations := memory.NewReservationStore()

	uc := NewUseCase(slots, reservations, stubTxManager{}, stubLogger{})

	// Слот без записи заблокирован по умолчанию
	_, err := uc.Execute(ctx, validRequest())
	assert.ErrorIs(t, err, ErrSlotNotFree)

	// Никаких следов в хранилищах
	assert.Empty(t, slots.Snapshot())
	total, err := reservations.CountTotal(ctx, 1)
	require.NoError(t, err)
	assert.Zero(t, total)
}

func TestExecute_BookedSlotRejected(t *testing.T) {
	ctx := context.Background()
	slots := memory.NewSlotStore()
	reservations := memory.NewReservationStore()
	freeSlot(t, slots, 1, "2025-01-06_07:00")

	uc := NewUseCase(slots, reservations, stubTxManager{}, stubLogger{})

	_, err := uc.Execute(ctx, validRequest())
	require.NoError(t, err)

	// Повторная бронь того же слота отклоняется, хранилище не меняется
	before := slots.Snapshot()
	_, err = uc.Execute(ctx, validRequest())
	assert.ErrorIs(t, err, ErrSlotNotFree)
	assert.Equal(t, before, slots.Snapshot())
}

func TestExecute_ValidationCollectsAllFieldErrors(t *testing.T) {
	ctx := context.Background()
	slots := memory.NewSlotStore()
	reservations := memory.NewReservationStore()
	freeSlot(t, slots, 1, "2025-01-06_07:00")

	uc := NewUseCase(slots, reservations, stubTxManager{}, stubLogger{})

	req := validRequest()
	req.ClientName = "Al"          // короче трёх символов
	req.ClientPhone = "119999"     // меньше десяти цифр
	req.ServiceType = "Unknown"    // вне каталога

	_, err := uc.Execute(ctx, req)
	require.Error(t, err)

	fieldErrs, ok := AsFieldErrors(err)
	require.True(t, ok)
	assert.Contains(t, fieldErrs, FieldClientName)
	assert.Contains(t, fieldErrs, FieldClientPhone)
	assert.Contains(t, fieldErrs, FieldServiceType)

	// Валидация выполняется до любой мутации
	slot, err := slots.GetByID(ctx, 1, "2025-01-06_07:00")
	require.NoError(t, err)
	assert.Equal(t, domain.SlotFree, slot.Status)
	total, err := reservations.CountTotal(ctx, 1)
	require.NoError(t, err)
	assert.Zero(t, total)
}

func TestExecute_NameIsTrimmedBeforeLengthCheck(t *testing.T) {
	ctx := context.Background()
	slots := memory.NewSlotStore()
	reservations := memory.NewReservationStore()
	freeSlot(t, slots, 1, "2025-01-06_07:00")

	uc := NewUseCase(slots, reservations, stubTxManager{}, stubLogger{})

	req := validRequest()
	req.ClientName = "  Jo  " // после обрезки пробелов остаётся 2 символа

	_, err := uc.Execute(ctx, req)
	fieldErrs, ok := AsFieldErrors(err)
	require.True(t, ok)
	assert.Contains(t, fieldErrs, FieldClientName)
}

func TestExecute_PhoneDigitsCountedAfterStripping(t *testing.T) {
	ctx := context.Background()
	slots := memory.NewSlotStore()
	reservations := memory.NewReservationStore()
	freeSlot(t, slots, 1, "2025-01-06_07:00")

	uc := NewUseCase(slots, reservations, stubTxManager{}, stubLogger{})

	// 10 цифр в отформатированном виде проходят валидацию
	req := validRequest()
	req.ClientPhone = "(11) 3999-9999"

	resp, err := uc.Execute(ctx, req)
	require.NoError(t, err)
	// 10 цифр не форматируются, телефон сохраняется как введён
	assert.Equal(t, "(11) 3999-9999", resp.ClientPhone)
}

func TestExecute_OptionalEmailIsStored(t *testing.T) {
	ctx := context.Background()
	slots := memory.NewSlotStore()
	reservations := memory.NewReservationStore()
	freeSlot(t, slots, 1, "2025-01-06_07:00")

	uc := NewUseCase(slots, reservations, stubTxManager{}, stubLogger{})

	email := "ana@example.com"
	req := validRequest()
	req.ClientEmail = &email

	resp, err := uc.Execute(ctx, req)
	require.NoError(t, err)
	require.NotNil(t, resp.ClientEmail)
	assert.Equal(t, email, *resp.ClientEmail)
}

func TestExecute_MalformedSlotID(t *testing.T) {
	uc := NewUseCase(memory.NewSlotStore(), memory.NewReservationStore(), stubTxManager{}, stubLogger{})

	req := validRequest()
	req.SlotID = "2025-01-06T07:00"

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidSlotID)
}
