package toggle_slot

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	"github.com/m04kA/SMC-AgendaService/internal/infra/storage/memory"
	"github.com/m04kA/SMC-AgendaService/pkg/ptr"
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

func TestExecute_FirstToggleFreesDefaultBlockedSlot(t *testing.T) {
	slots := memory.NewSlotStore()
	uc := NewUseCase(slots, stubTxManager{}, stubLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		ProfessionalID: 1,
		SlotID:         "2025-01-06_07:00",
	})
	require.NoError(t, err)

	assert.True(t, resp.Changed)
	assert.Equal(t, domain.SlotFree, resp.Slot.Status)

	// Переключение материализует слот в хранилище
	stored, err := slots.GetByID(context.Background(), 1, "2025-01-06_07:00")
	require.NoError(t, err)
	assert.Equal(t, domain.SlotFree, stored.Status)
}

func TestExecute_SecondToggleBlocksAgain(t *testing.T) {
	ctx := context.Background()
	slots := memory.NewSlotStore()
	uc := NewUseCase(slots, stubTxManager{}, stubLogger{})

	req := &Request{ProfessionalID: 1, SlotID: "2025-01-06_07:00"}

	_, err := uc.Execute(ctx, req)
	require.NoError(t, err)

	resp, err := uc.Execute(ctx, req)
	require.NoError(t, err)

	assert.True(t, resp.Changed)
	assert.Equal(t, domain.SlotBlocked, resp.Slot.Status)
}

func TestExecute_BookedSlotIsNotToggled(t *testing.T) {
	ctx := context.Background()
	slots := memory.NewSlotStore()

	date := time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC)
	booked := domain.DefaultSlot(1, date, "07:00")
	booked.Status = domain.SlotBooked
	booked.ClientName = ptr.Ptr("Ana Silva")
	_, err := slots.Upsert(ctx, booked)
	require.NoError(t, err)

	uc := NewUseCase(slots, stubTxManager{}, stubLogger{})

	resp, err := uc.Execute(ctx, &Request{ProfessionalID: 1, SlotID: "2025-01-06_07:00"})
	require.NoError(t, err)

	// Устаревший клик не ошибка: слот возвращается без изменений
	assert.False(t, resp.Changed)
	assert.Equal(t, domain.SlotBooked, resp.Slot.Status)

	stored, err := slots.GetByID(ctx, 1, "2025-01-06_07:00")
	require.NoError(t, err)
	assert.Equal(t, domain.SlotBooked, stored.Status)
	require.NotNil(t, stored.ClientName)
	assert.Equal(t, "Ana Silva", *stored.ClientName)
}

func TestExecute_MalformedSlotID(t *testing.T) {
	uc := NewUseCase(memory.NewSlotStore(), stubTxManager{}, stubLogger{})

	for _, id := range []string{"", "2025-01-06", "garbage", "2025-13-40_07:00"} {
		_, err := uc.Execute(context.Background(), &Request{ProfessionalID: 1, SlotID: id})
		assert.ErrorIs(t, err, ErrInvalidSlotID, "slot id %q", id)
	}
}

func TestExecute_InvalidProfessionalID(t *testing.T) {
	uc := NewUseCase(memory.NewSlotStore(), stubTxManager{}, stubLogger{})

	_, err := uc.Execute(context.Background(), &Request{ProfessionalID: 0, SlotID: "2025-01-06_07:00"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
