package reservations

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	reservationRepo "github.com/m04kA/SMC-AgendaService/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-AgendaService/internal/service/reservations/models"
)

// Service сервис чтения броней и сводки для кабинета профессионала
type Service struct {
	reservationRepo ReservationRepository
	slotRepo        SlotRepository
	timeProvider    TimeProvider
	logger          Logger
}

// NewService создает новый экземпляр сервиса броней
func NewService(
	reservationRepo ReservationRepository,
	slotRepo SlotRepository,
	timeProvider TimeProvider,
	logger Logger,
) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		slotRepo:        slotRepo,
		timeProvider:    timeProvider,
		logger:          logger,
	}
}

// GetByID возвращает бронь по ID.
// Бронь доступна только профессионалу, которому принадлежит расписание.
func (s *Service) GetByID(ctx context.Context, professionalID int64, id string) (*models.ReservationResponse, error) {
	s.logger.Info("GetByID: fetching reservation id=%s by professional=%d", id, professionalID)

	if professionalID <= 0 {
		return nil, fmt.Errorf("%w: professionalID must be positive", ErrInvalidInput)
	}
	if id == "" {
		return nil, fmt.Errorf("%w: reservation id is required", ErrInvalidInput)
	}

	res, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("GetByID: reservation id=%s not found", id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("GetByID: repository error for reservation id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if res.ProfessionalID != professionalID {
		s.logger.Warn("GetByID: reservation id=%s belongs to professional=%d, requested by %d",
			id, res.ProfessionalID, professionalID)
		return nil, ErrAccessDenied
	}

	return models.FromDomainReservation(res), nil
}

// List возвращает брони профессионала по фильтру.
// UpcomingOnly ограничивает выборку бронями начиная с сегодняшнего дня.
func (s *Service) List(ctx context.Context, req *models.ListRequest) (*models.ReservationListResponse, error) {
	s.logger.Info("List: fetching reservations for professional=%d", req.ProfessionalID)

	if req.ProfessionalID <= 0 {
		return nil, fmt.Errorf("%w: professionalID must be positive", ErrInvalidInput)
	}

	filter := reservationRepo.Filter{
		ProfessionalID: req.ProfessionalID,
		Date:           req.Date,
		Status:         req.Status,
		Limit:          req.Limit,
	}
	if req.UpcomingOnly {
		today := s.today()
		filter.FromDate = &today
	}

	list, err := s.reservationRepo.ListWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error for professional=%d: %v", req.ProfessionalID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d reservations for professional=%d", len(list), req.ProfessionalID)
	return models.FromDomainReservationList(list), nil
}

// Dashboard возвращает сводку для главного экрана: подтверждённые брони
// на сегодня, все брони за всё время и явно заблокированные слоты
func (s *Service) Dashboard(ctx context.Context, professionalID int64) (*models.DashboardResponse, error) {
	s.logger.Info("Dashboard: building summary for professional=%d", professionalID)

	if professionalID <= 0 {
		return nil, fmt.Errorf("%w: professionalID must be positive", ErrInvalidInput)
	}

	todayCount, err := s.reservationRepo.CountByDate(ctx, professionalID, s.today())
	if err != nil {
		s.logger.Error("Dashboard: failed to count today's reservations: %v", err)
		return nil, fmt.Errorf("%w: Dashboard - repository error: %v", ErrInternal, err)
	}

	totalCount, err := s.reservationRepo.CountTotal(ctx, professionalID)
	if err != nil {
		s.logger.Error("Dashboard: failed to count total reservations: %v", err)
		return nil, fmt.Errorf("%w: Dashboard - repository error: %v", ErrInternal, err)
	}

	blockedCount, err := s.slotRepo.CountByStatus(ctx, professionalID, domain.SlotBlocked)
	if err != nil {
		s.logger.Error("Dashboard: failed to count blocked slots: %v", err)
		return nil, fmt.Errorf("%w: Dashboard - repository error: %v", ErrInternal, err)
	}

	return &models.DashboardResponse{
		TodayCount:   todayCount,
		TotalCount:   totalCount,
		BlockedCount: blockedCount,
	}, nil
}

// today возвращает сегодняшнюю дату без времени
func (s *Service) today() time.Time {
	now := s.timeProvider.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}
