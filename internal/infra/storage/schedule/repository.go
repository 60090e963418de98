package schedule

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	"github.com/m04kA/SMC-AgendaService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AgendaService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-AgendaService/pkg/types"
)

// Переиспользуем интерфейсы из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor

// Repository репозиторий конфигурации расписания профессионала:
// список временных меток и выбранное окно месяц/год
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория конфигурации расписания
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByProfessionalID получает конфигурацию расписания профессионала
func (r *Repository) GetByProfessionalID(ctx context.Context, professionalID int64) (*domain.ScheduleConfig, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"professional_id",
		"time_labels",
		"year_selected",
		"month_selected",
		"created_at",
		"updated_at",
	).
		From("schedule_configs").
		Where(squirrel.Eq{"professional_id": professionalID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByProfessionalID - build select query: %v", ErrBuildQuery, err)
	}

	var config domain.ScheduleConfig
	var labels pq.StringArray
	var month int
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&config.ProfessionalID,
		&labels,
		&config.YearSelected,
		&month,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrConfigNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByProfessionalID - scan config: %v", ErrScanRow, err)
	}

	config.TimeLabels = make([]types.TimeString, len(labels))
	for i, l := range labels {
		config.TimeLabels[i] = types.TimeString(l)
	}
	config.MonthSelected = time.Month(month)
	config.CreatedAt = createdAt.Time
	config.UpdatedAt = updatedAt.Time

	return &config, nil
}

// Upsert сохраняет конфигурацию расписания (вставка или полная перезапись)
func (r *Repository) Upsert(ctx context.Context, config *domain.ScheduleConfig) (*domain.ScheduleConfig, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	labels := make([]string, len(config.TimeLabels))
	for i, l := range config.TimeLabels {
		labels[i] = l.String()
	}

	query, args, err := psqlbuilder.Insert("schedule_configs").
		Columns(
			"professional_id",
			"time_labels",
			"year_selected",
			"month_selected",
		).
		Values(
			config.ProfessionalID,
			pq.Array(labels),
			config.YearSelected,
			int(config.MonthSelected),
		).
		Suffix(`ON CONFLICT (professional_id) DO UPDATE SET
			time_labels = EXCLUDED.time_labels,
			year_selected = EXCLUDED.year_selected,
			month_selected = EXCLUDED.month_selected,
			updated_at = NOW()
			RETURNING created_at, updated_at`).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build upsert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute upsert: %v", ErrExecQuery, err)
	}

	config.CreatedAt = createdAt.Time
	config.UpdatedAt = updatedAt.Time

	return config, nil
}
