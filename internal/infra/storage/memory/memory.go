// Package memory реализует хранилища сервиса в памяти процесса.
// Набор методов и ошибки совпадают с postgres-репозиториями, поэтому
// ядро расписания работает поверх любого из них без изменений.
// Используется в тестах и для локального запуска без БД.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	reservationRepo "github.com/m04kA/SMC-AgendaService/internal/infra/storage/reservation"
	scheduleRepo "github.com/m04kA/SMC-AgendaService/internal/infra/storage/schedule"
	slotRepo "github.com/m04kA/SMC-AgendaService/internal/infra/storage/slot"
	"github.com/m04kA/SMC-AgendaService/pkg/types"
)

// slotKey ключ слота в хранилище
type slotKey struct {
	professionalID int64
	id             string
}

// SlotStore in-memory хранилище слотов
type SlotStore struct {
	mu    sync.RWMutex
	slots map[slotKey]*domain.Slot
	now   func() time.Time
}

// NewSlotStore создает пустое хранилище слотов
func NewSlotStore() *SlotStore {
	return &SlotStore{
		slots: make(map[slotKey]*domain.Slot),
		now:   time.Now,
	}
}

// GetByID получает слот по ключу (professional_id, id)
func (s *SlotStore) GetByID(_ context.Context, professionalID int64, id string) (*domain.Slot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	slot, ok := s.slots[slotKey{professionalID, id}]
	if !ok {
		return nil, slotRepo.ErrSlotNotFound
	}
	return copySlot(slot), nil
}

// Upsert вставляет слот или перезаписывает его статус и клиентские поля
func (s *SlotStore) Upsert(_ context.Context, slot *domain.Slot) (*domain.Slot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := slotKey{slot.ProfessionalID, slot.ID}
	now := s.now()

	if existing, ok := s.slots[key]; ok {
		slot.CreatedAt = existing.CreatedAt
	} else {
		slot.CreatedAt = now
	}
	slot.UpdatedAt = now

	s.slots[key] = copySlot(slot)
	return copySlot(slot), nil
}

// ListByDateRange получает явно сохранённые слоты за период [startDate, endDate]
func (s *SlotStore) ListByDateRange(_ context.Context, professionalID int64, startDate, endDate time.Time) ([]*domain.Slot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*domain.Slot, 0)
	for key, slot := range s.slots {
		if key.professionalID != professionalID {
			continue
		}
		if slot.Date.Before(startDate) || slot.Date.After(endDate) {
			continue
		}
		result = append(result, copySlot(slot))
	}

	sortSlots(result)
	return result, nil
}

// ListByStatus получает явно сохранённые слоты с указанным статусом
func (s *SlotStore) ListByStatus(_ context.Context, professionalID int64, status domain.SlotStatus) ([]*domain.Slot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*domain.Slot, 0)
	for key, slot := range s.slots {
		if key.professionalID != professionalID || slot.Status != status {
			continue
		}
		result = append(result, copySlot(slot))
	}

	sortSlots(result)
	return result, nil
}

// CountByStatus возвращает количество явно сохранённых слотов со статусом
func (s *SlotStore) CountByStatus(_ context.Context, professionalID int64, status domain.SlotStatus) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var count int64
	for key, slot := range s.slots {
		if key.professionalID == professionalID && slot.Status == status {
			count++
		}
	}
	return count, nil
}

// Snapshot возвращает копию всех сохранённых слотов (для проверок в тестах)
func (s *SlotStore) Snapshot() []*domain.Slot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*domain.Slot, 0, len(s.slots))
	for _, slot := range s.slots {
		result = append(result, copySlot(slot))
	}
	sortSlots(result)
	return result
}

func sortSlots(slots []*domain.Slot) {
	sort.Slice(slots, func(i, j int) bool {
		if !slots[i].Date.Equal(slots[j].Date) {
			return slots[i].Date.Before(slots[j].Date)
		}
		return slots[i].TimeLabel.IsBefore(slots[j].TimeLabel)
	})
}

func copySlot(s *domain.Slot) *domain.Slot {
	c := *s
	return &c
}

// ReservationStore in-memory хранилище броней
type ReservationStore struct {
	mu           sync.RWMutex
	reservations map[string]*domain.Reservation
	now          func() time.Time
}

// NewReservationStore создает пустое хранилище броней
func NewReservationStore() *ReservationStore {
	return &ReservationStore{
		reservations: make(map[string]*domain.Reservation),
		now:          time.Now,
	}
}

// Create создает новую бронь
func (s *ReservationStore) Create(_ context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	res.CreatedAt = now
	res.UpdatedAt = now

	s.reservations[res.ID] = copyReservation(res)
	return copyReservation(res), nil
}

// GetByID получает бронь по ID
func (s *ReservationStore) GetByID(_ context.Context, id string) (*domain.Reservation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	res, ok := s.reservations[id]
	if !ok {
		return nil, reservationRepo.ErrReservationNotFound
	}
	return copyReservation(res), nil
}

// GetActiveBySlotID получает активную бронь слота, если она есть
func (s *ReservationStore) GetActiveBySlotID(_ context.Context, professionalID int64, slotID string) (*domain.Reservation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, res := range s.reservations {
		if res.ProfessionalID == professionalID && res.SlotID == slotID && res.Status == domain.ReservationConfirmed {
			return copyReservation(res), nil
		}
	}
	return nil, reservationRepo.ErrReservationNotFound
}

// ListWithFilter получает брони профессионала с фильтрацией
func (s *ReservationStore) ListWithFilter(_ context.Context, filter reservationRepo.Filter) ([]*domain.Reservation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*domain.Reservation, 0)
	for _, res := range s.reservations {
		if res.ProfessionalID != filter.ProfessionalID {
			continue
		}
		if filter.Date != nil && !res.Date.Equal(*filter.Date) {
			continue
		}
		if filter.Date == nil && filter.FromDate != nil && res.Date.Before(*filter.FromDate) {
			continue
		}
		if filter.Status != nil && res.Status != *filter.Status {
			continue
		}
		result = append(result, copyReservation(res))
	}

	sort.Slice(result, func(i, j int) bool {
		if !result[i].Date.Equal(result[j].Date) {
			return result[i].Date.Before(result[j].Date)
		}
		return result[i].TimeLabel.IsBefore(result[j].TimeLabel)
	})

	if filter.Limit > 0 && uint64(len(result)) > filter.Limit {
		result = result[:filter.Limit]
	}

	return result, nil
}

// Cancel помечает бронь отменённой
func (s *ReservationStore) Cancel(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, ok := s.reservations[id]
	if !ok {
		return reservationRepo.ErrReservationNotFound
	}

	now := s.now()
	res.Status = domain.ReservationCancelled
	res.CancelledAt = &now
	res.UpdatedAt = now
	return nil
}

// CountByDate возвращает количество активных броней на дату
func (s *ReservationStore) CountByDate(_ context.Context, professionalID int64, date time.Time) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var count int64
	for _, res := range s.reservations {
		if res.ProfessionalID == professionalID && res.Date.Equal(date) && res.Status == domain.ReservationConfirmed {
			count++
		}
	}
	return count, nil
}

// CountTotal возвращает общее количество броней профессионала
func (s *ReservationStore) CountTotal(_ context.Context, professionalID int64) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var count int64
	for _, res := range s.reservations {
		if res.ProfessionalID == professionalID {
			count++
		}
	}
	return count, nil
}

func copyReservation(r *domain.Reservation) *domain.Reservation {
	c := *r
	return &c
}

// ScheduleStore in-memory хранилище конфигураций расписания
type ScheduleStore struct {
	mu      sync.RWMutex
	configs map[int64]*domain.ScheduleConfig
	now     func() time.Time
}

// NewScheduleStore создает пустое хранилище конфигураций
func NewScheduleStore() *ScheduleStore {
	return &ScheduleStore{
		configs: make(map[int64]*domain.ScheduleConfig),
		now:     time.Now,
	}
}

// GetByProfessionalID получает конфигурацию расписания профессионала
func (s *ScheduleStore) GetByProfessionalID(_ context.Context, professionalID int64) (*domain.ScheduleConfig, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	config, ok := s.configs[professionalID]
	if !ok {
		return nil, scheduleRepo.ErrConfigNotFound
	}
	return copyConfig(config), nil
}

// Upsert сохраняет конфигурацию расписания
func (s *ScheduleStore) Upsert(_ context.Context, config *domain.ScheduleConfig) (*domain.ScheduleConfig, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if existing, ok := s.configs[config.ProfessionalID]; ok {
		config.CreatedAt = existing.CreatedAt
	} else {
		config.CreatedAt = now
	}
	config.UpdatedAt = now

	s.configs[config.ProfessionalID] = copyConfig(config)
	return copyConfig(config), nil
}

func copyConfig(c *domain.ScheduleConfig) *domain.ScheduleConfig {
	cp := *c
	cp.TimeLabels = append([]types.TimeString(nil), c.TimeLabels...)
	return &cp
}
