package reservations

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	"github.com/m04kA/SMC-AgendaService/internal/infra/storage/memory"
	"github.com/m04kA/SMC-AgendaService/internal/service/reservations/models"
)

type stubLogger struct{}

func (stubLogger) Info(string, ...interface{})  {}
func (stubLogger) Warn(string, ...interface{})  {}
func (stubLogger) Error(string, ...interface{}) {}

// stubTime отдаёт фиксированное время
type stubTime struct{ now time.Time }

func (s stubTime) Now() time.Time { return s.now }

var today = time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC)

func seedReservation(t *testing.T, store *memory.ReservationStore, id string, professionalID int64, date time.Time, status domain.ReservationStatus) {
	t.Helper()
	_, err := store.Create(context.Background(), &domain.Reservation{
		ID:             id,
		ProfessionalID: professionalID,
		SlotID:         domain.NewSlotID(date, "07:00"),
		ClientName:     "Ana Silva",
		ClientPhone:    "(11) 99999-9999",
		ServiceType:    "Corte Feminino",
		Date:           date,
		TimeLabel:      "07:00",
		Status:         status,
	})
	require.NoError(t, err)
}

func newService(reservations *memory.ReservationStore, slots *memory.SlotStore) *Service {
	clock := stubTime{now: today.Add(9 * time.Hour)}
	return NewService(reservations, slots, clock, stubLogger{})
}

func TestGetByID(t *testing.T) {
	reservations := memory.NewReservationStore()
	seedReservation(t, reservations, "res-1", 1, today, domain.ReservationConfirmed)

	svc := newService(reservations, memory.NewSlotStore())

	resp, err := svc.GetByID(context.Background(), 1, "res-1")
	require.NoError(t, err)
	assert.Equal(t, "res-1", resp.ID)
	assert.Equal(t, "2025-01-06", resp.Date)
	assert.Equal(t, "Ana Silva", resp.ClientName)
}

func TestGetByID_NotFound(t *testing.T) {
	svc := newService(memory.NewReservationStore(), memory.NewSlotStore())

	_, err := svc.GetByID(context.Background(), 1, "missing")
	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestGetByID_ForeignReservation(t *testing.T) {
	reservations := memory.NewReservationStore()
	seedReservation(t, reservations, "res-1", 1, today, domain.ReservationConfirmed)

	svc := newService(reservations, memory.NewSlotStore())

	_, err := svc.GetByID(context.Background(), 2, "res-1")
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestList_UpcomingOnly(t *testing.T) {
	reservations := memory.NewReservationStore()
	seedReservation(t, reservations, "res-past", 1, today.AddDate(0, 0, -7), domain.ReservationConfirmed)
	seedReservation(t, reservations, "res-today", 1, today, domain.ReservationConfirmed)
	seedReservation(t, reservations, "res-future", 1, today.AddDate(0, 0, 3), domain.ReservationConfirmed)

	svc := newService(reservations, memory.NewSlotStore())

	resp, err := svc.List(context.Background(), &models.ListRequest{
		ProfessionalID: 1,
		UpcomingOnly:   true,
	})
	require.NoError(t, err)

	require.Len(t, resp.Reservations, 2)
	assert.Equal(t, "res-today", resp.Reservations[0].ID)
	assert.Equal(t, "res-future", resp.Reservations[1].ID)
}

func TestList_FilterByStatus(t *testing.T) {
	reservations := memory.NewReservationStore()
	seedReservation(t, reservations, "res-1", 1, today, domain.ReservationConfirmed)
	seedReservation(t, reservations, "res-2", 1, today, domain.ReservationCancelled)

	svc := newService(reservations, memory.NewSlotStore())

	status := domain.ReservationConfirmed
	resp, err := svc.List(context.Background(), &models.ListRequest{
		ProfessionalID: 1,
		Status:         &status,
	})
	require.NoError(t, err)

	require.Len(t, resp.Reservations, 1)
	assert.Equal(t, "res-1", resp.Reservations[0].ID)
}

func TestDashboard(t *testing.T) {
	ctx := context.Background()
	reservations := memory.NewReservationStore()
	slots := memory.NewSlotStore()

	// Две брони на сегодня, одна на будущее, одна отменена сегодня
	seedReservation(t, reservations, "res-1", 1, today, domain.ReservationConfirmed)
	seedReservation(t, reservations, "res-2", 1, today, domain.ReservationConfirmed)
	seedReservation(t, reservations, "res-3", 1, today.AddDate(0, 0, 2), domain.ReservationConfirmed)
	seedReservation(t, reservations, "res-4", 1, today, domain.ReservationCancelled)

	// Один явно заблокированный и один свободный слот
	blocked := domain.DefaultSlot(1, today, "10:00")
	_, err := slots.Upsert(ctx, blocked)
	require.NoError(t, err)

	free := domain.DefaultSlot(1, today, "11:00")
	free.Status = domain.SlotFree
	_, err = slots.Upsert(ctx, free)
	require.NoError(t, err)

	svc := newService(reservations, slots)

	resp, err := svc.Dashboard(ctx, 1)
	require.NoError(t, err)

	// Сегодня считаются только подтверждённые брони
	assert.Equal(t, int64(2), resp.TodayCount)
	// Всего - все брони за всё время, включая отменённые
	assert.Equal(t, int64(4), resp.TotalCount)
	assert.Equal(t, int64(1), resp.BlockedCount)
}

func TestDashboard_InvalidProfessionalID(t *testing.T) {
	svc := newService(memory.NewReservationStore(), memory.NewSlotStore())

	_, err := svc.Dashboard(context.Background(), -1)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
