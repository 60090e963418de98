package list_week_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	"github.com/m04kA/SMC-AgendaService/internal/infra/storage/memory"
	"github.com/m04kA/SMC-AgendaService/pkg/ptr"
	"github.com/m04kA/SMC-AgendaService/pkg/types"
)

type stubLogger struct{}

func (stubLogger) Info(string, ...interface{})  {}
func (stubLogger) Warn(string, ...interface{})  {}
func (stubLogger) Error(string, ...interface{}) {}

func monday() time.Time {
	return time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC)
}

func twoLabelConfig(professionalID int64) *domain.ScheduleConfig {
	return &domain.ScheduleConfig{
		ProfessionalID: professionalID,
		TimeLabels:     []types.TimeString{"07:00", "08:00"},
		YearSelected:   2025,
		MonthSelected:  time.January,
	}
}

func TestExecute_DefaultGridIsAllBlocked(t *testing.T) {
	slots := memory.NewSlotStore()
	schedules := memory.NewScheduleStore()
	uc := NewUseCase(slots, schedules, stubLogger{})

	resp, err := uc.Execute(context.Background(), &Request{ProfessionalID: 1, WeekStart: monday()})
	require.NoError(t, err)

	// 12 дефолтных меток на 6 рабочих дней, воскресенье исключено
	require.Len(t, resp.Slots, 72)
	for _, s := range resp.Slots {
		assert.Equal(t, domain.SlotBlocked, s.Status)
		assert.NotEqual(t, time.Sunday, s.Date.Weekday())
	}
	assert.Equal(t, "2025-01-06_07:00", resp.Slots[0].ID)
}

func TestExecute_TwoLabelWeekHasTwelveSlots(t *testing.T) {
	slots := memory.NewSlotStore()
	schedules := memory.NewScheduleStore()
	_, err := schedules.Upsert(context.Background(), twoLabelConfig(1))
	require.NoError(t, err)

	uc := NewUseCase(slots, schedules, stubLogger{})

	resp, err := uc.Execute(context.Background(), &Request{ProfessionalID: 1, WeekStart: monday()})
	require.NoError(t, err)

	require.Len(t, resp.Slots, 12)
	assert.Equal(t, "2025-01-06_07:00", resp.Slots[0].ID)
	assert.Equal(t, "2025-01-06_08:00", resp.Slots[1].ID)
	assert.Equal(t, "2025-01-07_07:00", resp.Slots[2].ID)
	assert.Equal(t, "2025-01-11_08:00", resp.Slots[11].ID)
}

func TestExecute_MergesStoredSlotsOverDefaults(t *testing.T) {
	ctx := context.Background()
	slots := memory.NewSlotStore()
	schedules := memory.NewScheduleStore()
	_, err := schedules.Upsert(ctx, twoLabelConfig(1))
	require.NoError(t, err)

	// Один освобождённый и один забронированный слот в хранилище
	freed := domain.DefaultSlot(1, monday(), "07:00")
	freed.Status = domain.SlotFree
	_, err = slots.Upsert(ctx, freed)
	require.NoError(t, err)

	booked := domain.DefaultSlot(1, monday(), "08:00")
	booked.Status = domain.SlotBooked
	booked.ClientName = ptr.Ptr("Ana Silva")
	booked.ClientPhone = ptr.Ptr("(11) 99999-9999")
	_, err = slots.Upsert(ctx, booked)
	require.NoError(t, err)

	uc := NewUseCase(slots, schedules, stubLogger{})

	resp, err := uc.Execute(ctx, &Request{ProfessionalID: 1, WeekStart: monday()})
	require.NoError(t, err)
	require.Len(t, resp.Slots, 12)

	assert.Equal(t, domain.SlotFree, resp.Slots[0].Status)
	assert.Equal(t, domain.SlotBooked, resp.Slots[1].Status)
	require.NotNil(t, resp.Slots[1].ClientName)
	assert.Equal(t, "Ana Silva", *resp.Slots[1].ClientName)

	// Остальные слоты остаются заблокированными по умолчанию
	for _, s := range resp.Slots[2:] {
		assert.Equal(t, domain.SlotBlocked, s.Status)
	}
}

func TestExecute_GenerationDoesNotWriteToStore(t *testing.T) {
	ctx := context.Background()
	slots := memory.NewSlotStore()
	schedules := memory.NewScheduleStore()
	uc := NewUseCase(slots, schedules, stubLogger{})

	_, err := uc.Execute(ctx, &Request{ProfessionalID: 1, WeekStart: monday()})
	require.NoError(t, err)

	assert.Empty(t, slots.Snapshot())
}

func TestExecute_NormalizesWeekBounds(t *testing.T) {
	slots := memory.NewSlotStore()
	schedules := memory.NewScheduleStore()
	uc := NewUseCase(slots, schedules, stubLogger{})

	// Среда нормализуется к понедельнику той же недели
	wednesday := time.Date(2025, 1, 8, 14, 0, 0, 0, time.UTC)
	resp, err := uc.Execute(context.Background(), &Request{ProfessionalID: 1, WeekStart: wednesday})
	require.NoError(t, err)

	assert.Equal(t, monday(), resp.WeekStart)
	assert.Equal(t, time.Date(2025, 1, 12, 0, 0, 0, 0, time.UTC), resp.WeekEnd)
}

func TestExecute_EmptyTimeLabelsFailsFast(t *testing.T) {
	ctx := context.Background()
	slots := memory.NewSlotStore()
	schedules := memory.NewScheduleStore()

	_, err := schedules.Upsert(ctx, &domain.ScheduleConfig{
		ProfessionalID: 1,
		TimeLabels:     []types.TimeString{},
		YearSelected:   2025,
		MonthSelected:  time.January,
	})
	require.NoError(t, err)

	uc := NewUseCase(slots, schedules, stubLogger{})

	_, err = uc.Execute(ctx, &Request{ProfessionalID: 1, WeekStart: monday()})
	assert.ErrorIs(t, err, ErrNoTimeLabels)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := NewUseCase(memory.NewSlotStore(), memory.NewScheduleStore(), stubLogger{})

	_, err := uc.Execute(context.Background(), &Request{ProfessionalID: 0, WeekStart: monday()})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{ProfessionalID: 1})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
