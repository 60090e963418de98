package slot

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	"github.com/m04kA/SMC-AgendaService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AgendaService/pkg/psqlbuilder"
)

// Repository репозиторий для работы со слотами расписания.
// В таблице хранятся только слоты, статус которых когда-либо менялся явно;
// сгенерированные слоты со статусом по умолчанию в БД не попадают.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория слотов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// slotColumns колонки таблицы slots в порядке сканирования
var slotColumns = []string{
	"id",
	"professional_id",
	"slot_date",
	"time_label",
	"status",
	"client_name",
	"client_phone",
	"client_email",
	"service_type",
	"created_at",
	"updated_at",
}

// GetByID получает слот по ключу (professional_id, id).
// Если в контексте активна транзакция, строка блокируется через FOR UPDATE.
func (r *Repository) GetByID(ctx context.Context, professionalID int64, id string) (*domain.Slot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(slotColumns...).
		From("slots").
		Where(squirrel.Eq{"professional_id": professionalID, "id": id})

	// Блокировка строки внутри транзакции (toggle и бронирование)
	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	slot, err := scanSlot(row)
	if err == sql.ErrNoRows {
		return nil, ErrSlotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan slot: %v", ErrScanRow, err)
	}

	return slot, nil
}

// Upsert вставляет слот или перезаписывает его статус и клиентские поля.
// Ключ (professional_id, id) никогда не меняется.
func (r *Repository) Upsert(ctx context.Context, slot *domain.Slot) (*domain.Slot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("slots").
		Columns(
			"id",
			"professional_id",
			"slot_date",
			"time_label",
			"status",
			"client_name",
			"client_phone",
			"client_email",
			"service_type",
		).
		Values(
			slot.ID,
			slot.ProfessionalID,
			slot.Date,
			slot.TimeLabel,
			slot.Status,
			slot.ClientName,
			slot.ClientPhone,
			slot.ClientEmail,
			slot.ServiceType,
		).
		Suffix(`ON CONFLICT (professional_id, id) DO UPDATE SET
			status = EXCLUDED.status,
			client_name = EXCLUDED.client_name,
			client_phone = EXCLUDED.client_phone,
			client_email = EXCLUDED.client_email,
			service_type = EXCLUDED.service_type,
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

	slot.CreatedAt = createdAt.Time
	slot.UpdatedAt = updatedAt.Time

	return slot, nil
}

// ListByDateRange получает все явно сохранённые слоты профессионала
// за период [startDate, endDate], в порядке день-время
func (r *Repository) ListByDateRange(ctx context.Context, professionalID int64, startDate, endDate time.Time) ([]*domain.Slot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(slotColumns...).
		From("slots").
		Where(squirrel.Eq{"professional_id": professionalID}).
		Where(squirrel.GtOrEq{"slot_date": startDate}).
		Where(squirrel.LtOrEq{"slot_date": endDate}).
		OrderBy("slot_date ASC, time_label ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByDateRange - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByDateRange - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanSlots(rows)
}

// ListByStatus получает все явно сохранённые слоты профессионала с указанным
// статусом. Используется для счётчиков панели профессионала.
func (r *Repository) ListByStatus(ctx context.Context, professionalID int64, status domain.SlotStatus) ([]*domain.Slot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(slotColumns...).
		From("slots").
		Where(squirrel.Eq{"professional_id": professionalID, "status": status}).
		OrderBy("slot_date ASC, time_label ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByStatus - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByStatus - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanSlots(rows)
}

// CountByStatus возвращает количество явно сохранённых слотов с указанным статусом
func (r *Repository) CountByStatus(ctx context.Context, professionalID int64, status domain.SlotStatus) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("slots").
		Where(squirrel.Eq{"professional_id": professionalID, "status": status}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: CountByStatus - build select query: %v", ErrBuildQuery, err)
	}

	var count int64
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountByStatus - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanSlot сканирует одну строку в доменную модель слота
func scanSlot(row rowScanner) (*domain.Slot, error) {
	var slot domain.Slot
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&slot.ID,
		&slot.ProfessionalID,
		&slot.Date,
		&slot.TimeLabel,
		&slot.Status,
		&slot.ClientName,
		&slot.ClientPhone,
		&slot.ClientEmail,
		&slot.ServiceType,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	slot.CreatedAt = createdAt.Time
	slot.UpdatedAt = updatedAt.Time

	return &slot, nil
}

// scanSlots сканирует результаты запроса в слайс слотов
func scanSlots(rows *sql.Rows) ([]*domain.Slot, error) {
	slots := make([]*domain.Slot, 0)

	for rows.Next() {
		slot, err := scanSlot(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanSlots - scan row: %v", ErrScanRow, err)
		}
		slots = append(slots, slot)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanSlots - rows error: %v", ErrScanRow, err)
	}

	return slots, nil
}
