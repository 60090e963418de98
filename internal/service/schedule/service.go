package schedule

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	scheduleRepo "github.com/m04kA/SMC-AgendaService/internal/infra/storage/schedule"
	"github.com/m04kA/SMC-AgendaService/internal/service/schedule/models"
)

// Service сервис для работы с конфигурацией расписания профессионала
type Service struct {
	scheduleRepo ScheduleRepository
	timeProvider TimeProvider
	publicOrigin string
	logger       Logger
}

// NewService создает новый экземпляр сервиса расписания.
// publicOrigin - базовый адрес публичной страницы записи,
// из него собирается ссылка вида {origin}/book/{professionalId}.
func NewService(
	scheduleRepo ScheduleRepository,
	timeProvider TimeProvider,
	publicOrigin string,
	logger Logger,
) *Service {
	return &Service{
		scheduleRepo: scheduleRepo,
		timeProvider: timeProvider,
		publicOrigin: publicOrigin,
		logger:       logger,
	}
}

// Get возвращает конфигурацию расписания профессионала.
// Если конфигурация ещё не сохранялась, возвращается конфигурация
// по умолчанию: почасовая сетка 07:00-18:00 и текущий месяц.
func (s *Service) Get(ctx context.Context, professionalID int64) (*models.ScheduleResponse, error) {
	s.logger.Info("Get: fetching schedule config for professional=%d", professionalID)

	config, err := s.getOrDefault(ctx, professionalID)
	if err != nil {
		return nil, err
	}

	return models.FromDomainConfig(config, s.bookingLink(professionalID)), nil
}

// AddTimeLabel добавляет следующую временную метку в сетку: на час позже
// последней, на ровном часе. Список меток только растёт.
func (s *Service) AddTimeLabel(ctx context.Context, professionalID int64) (*models.ScheduleResponse, error) {
	s.logger.Info("AddTimeLabel: professional=%d", professionalID)

	// 1. Получаем текущую конфигурацию (или умолчание)
	config, err := s.getOrDefault(ctx, professionalID)
	if err != nil {
		return nil, err
	}

	// 2. Вычисляем следующую метку
	next, err := config.NextTimeLabel()
	if err != nil {
		if errors.Is(err, domain.ErrDayExhausted) {
			s.logger.Warn("AddTimeLabel: day exhausted for professional=%d", professionalID)
			return nil, fmt.Errorf("%w: last label is %s", ErrDayExhausted, config.TimeLabels[len(config.TimeLabels)-1])
		}
		s.logger.Warn("AddTimeLabel: cannot compute next label: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	config.TimeLabels = append(config.TimeLabels, next)

	// 3. Сохраняем
	updated, err := s.scheduleRepo.Upsert(ctx, config)
	if err != nil {
		s.logger.Error("AddTimeLabel: repository error: %v", err)
		return nil, fmt.Errorf("%w: AddTimeLabel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("AddTimeLabel: professional=%d now has %d labels, added %s",
		professionalID, len(updated.TimeLabels), next)
	return models.FromDomainConfig(updated, s.bookingLink(professionalID)), nil
}

// SetWindow переключает окно месяц/год управленческого вида
func (s *Service) SetWindow(ctx context.Context, professionalID int64, req *models.SetWindowRequest) (*models.ScheduleResponse, error) {
	s.logger.Info("SetWindow: professional=%d, year=%d, month=%d", professionalID, req.Year, req.Month)

	// 1. Валидируем окно
	if req.Month < time.January || req.Month > time.December {
		return nil, fmt.Errorf("%w: month must be between 1 and 12", ErrInvalidInput)
	}
	if req.Year < 2000 || req.Year > 2100 {
		return nil, fmt.Errorf("%w: year must be between 2000 and 2100", ErrInvalidInput)
	}

	// 2. Получаем текущую конфигурацию (или умолчание)
	config, err := s.getOrDefault(ctx, professionalID)
	if err != nil {
		return nil, err
	}

	config.YearSelected = req.Year
	config.MonthSelected = req.Month

	// 3. Сохраняем
	updated, err := s.scheduleRepo.Upsert(ctx, config)
	if err != nil {
		s.logger.Error("SetWindow: repository error: %v", err)
		return nil, fmt.Errorf("%w: SetWindow - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("SetWindow: professional=%d window set to %d-%02d", professionalID, req.Year, req.Month)
	return models.FromDomainConfig(updated, s.bookingLink(professionalID)), nil
}

// Вспомогательные методы

// getOrDefault возвращает сохранённую конфигурацию или умолчание,
// если профессионал её ещё не настраивал
func (s *Service) getOrDefault(ctx context.Context, professionalID int64) (*domain.ScheduleConfig, error) {
	if professionalID <= 0 {
		return nil, fmt.Errorf("%w: professionalID must be positive", ErrInvalidInput)
	}

	config, err := s.scheduleRepo.GetByProfessionalID(ctx, professionalID)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrConfigNotFound) {
			return domain.DefaultScheduleConfig(professionalID, s.timeProvider.Now()), nil
		}
		s.logger.Error("getOrDefault: repository error for professional=%d: %v", professionalID, err)
		return nil, fmt.Errorf("%w: repository error: %v", ErrInternal, err)
	}

	return config, nil
}

// bookingLink собирает публичную ссылку для записи клиентов
func (s *Service) bookingLink(professionalID int64) string {
	return fmt.Sprintf("%s/book/%d", s.publicOrigin, professionalID)
}
