package schedule

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AgendaService/internal/infra/storage/memory"
	"github.com/m04kA/SMC-AgendaService/internal/service/schedule/models"
	"github.com/m04kA/SMC-AgendaService/pkg/types"
)

type stubLogger struct{}

func (stubLogger) Info(string, ...interface{})  {}
func (stubLogger) Warn(string, ...interface{})  {}
func (stubLogger) Error(string, ...interface{}) {}

// stubTime отдаёт фиксированное время
type stubTime struct{ now time.Time }

func (s stubTime) Now() time.Time { return s.now }

func newService(store *memory.ScheduleStore) *Service {
	clock := stubTime{now: time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC)}
	return NewService(store, clock, "https://agenda.example.com", stubLogger{})
}

func TestGet_DefaultConfig(t *testing.T) {
	svc := newService(memory.NewScheduleStore())

	resp, err := svc.Get(context.Background(), 7)
	require.NoError(t, err)

	assert.Equal(t, int64(7), resp.ProfessionalID)
	require.Len(t, resp.TimeLabels, 12)
	assert.Equal(t, types.TimeString("07:00"), resp.TimeLabels[0])
	assert.Equal(t, types.TimeString("18:00"), resp.TimeLabels[11])
	assert.Equal(t, 2025, resp.YearSelected)
	assert.Equal(t, time.January, resp.MonthSelected)
	assert.Equal(t, "https://agenda.example.com/book/7", resp.BookingLink)

	// Недели января 2025, все начинаются с понедельника
	require.Len(t, resp.Weeks, 5)
	assert.Equal(t, "2024-12-30", resp.Weeks[0])
}

func TestAddTimeLabel_AppendsNextHour(t *testing.T) {
	ctx := context.Background()
	store := memory.NewScheduleStore()
	svc := newService(store)

	resp, err := svc.AddTimeLabel(ctx, 7)
	require.NoError(t, err)

	require.Len(t, resp.TimeLabels, 13)
	assert.Equal(t, types.TimeString("19:00"), resp.TimeLabels[12])

	// Конфигурация сохранена, повторный Get видит новую метку
	again, err := svc.Get(ctx, 7)
	require.NoError(t, err)
	require.Len(t, again.TimeLabels, 13)
}

func TestAddTimeLabel_DayExhausted(t *testing.T) {
	ctx := context.Background()
	store := memory.NewScheduleStore()
	svc := newService(store)

	// 19:00 ... 23:00
	for i := 0; i < 5; i++ {
		_, err := svc.AddTimeLabel(ctx, 7)
		require.NoError(t, err)
	}

	_, err := svc.AddTimeLabel(ctx, 7)
	assert.ErrorIs(t, err, ErrDayExhausted)
}

func TestSetWindow(t *testing.T) {
	ctx := context.Background()
	svc := newService(memory.NewScheduleStore())

	resp, err := svc.SetWindow(ctx, 7, &models.SetWindowRequest{Year: 2025, Month: time.March})
	require.NoError(t, err)

	assert.Equal(t, 2025, resp.YearSelected)
	assert.Equal(t, time.March, resp.MonthSelected)

	// Окно сохраняется
	again, err := svc.Get(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, time.March, again.MonthSelected)
}

func TestSetWindow_InvalidWindow(t *testing.T) {
	svc := newService(memory.NewScheduleStore())

	_, err := svc.SetWindow(context.Background(), 7, &models.SetWindowRequest{Year: 2025, Month: 13})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.SetWindow(context.Background(), 7, &models.SetWindowRequest{Year: 1990, Month: time.March})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGet_InvalidProfessionalID(t *testing.T) {
	svc := newService(memory.NewScheduleStore())

	_, err := svc.Get(context.Background(), 0)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
