package affiliate

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-AffiliateScheduler/internal/domain"
	"github.com/m04kA/SMC-AffiliateScheduler/pkg/dbmetrics"
	"github.com/m04kA/SMC-AffiliateScheduler/pkg/psqlbuilder"
)

// Repository репозиторий для работы с аффилиатами.
// Документ расписания лежит в JSONB колонке schedule и читается/пишется
// целиком: отдельной таблицы под расписание нет, его жизненный цикл
// совпадает с жизненным циклом аффилиата.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория аффилиатов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает аффилиата. Если документ расписания не заполнен,
// записывается дефолтное расписание (Пн-Сб открыты, Вс выключено).
func (r *Repository) Create(ctx context.Context, affiliate *domain.Affiliate) (*domain.Affiliate, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if affiliate.Schedule.WeeklyTemplate == nil {
		affiliate.Schedule = domain.DefaultSchedule(affiliate.Timezone)
	}

	scheduleDoc, err := json.Marshal(affiliate.Schedule)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - marshal schedule: %v", ErrEncodeSchedule, err)
	}

	query, args, err := psqlbuilder.Insert("affiliates").
		Columns(
			"user_id",
			"name",
			"timezone",
			"schedule",
		).
		Values(
			affiliate.UserID,
			affiliate.Name,
			affiliate.Timezone,
			scheduleDoc,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&affiliate.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	affiliate.CreatedAt = createdAt.Time
	affiliate.UpdatedAt = updatedAt.Time

	return affiliate, nil
}

// GetByID получает аффилиата вместе с документом расписания
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Affiliate, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"user_id",
		"name",
		"timezone",
		"schedule",
		"created_at",
		"updated_at",
	).
		From("affiliates").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var affiliate domain.Affiliate
	var scheduleDoc []byte
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&affiliate.ID,
		&affiliate.UserID,
		&affiliate.Name,
		&affiliate.Timezone,
		&scheduleDoc,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrAffiliateNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan affiliate: %v", ErrScanRow, err)
	}

	if err := json.Unmarshal(scheduleDoc, &affiliate.Schedule); err != nil {
		return nil, fmt.Errorf("%w: GetByID - unmarshal schedule: %v", ErrDecodeSchedule, err)
	}

	affiliate.CreatedAt = createdAt.Time
	affiliate.UpdatedAt = updatedAt.Time

	return &affiliate, nil
}

// UpdateSchedule перезаписывает документ расписания аффилиата целиком.
// Семантика last-writer-wins: оптимистичных версий у документа нет.
func (r *Repository) UpdateSchedule(ctx context.Context, id int64, schedule domain.AvailabilitySchedule) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	scheduleDoc, err := json.Marshal(schedule)
	if err != nil {
		return fmt.Errorf("%w: UpdateSchedule - marshal schedule: %v", ErrEncodeSchedule, err)
	}

	query, args, err := psqlbuilder.Update("affiliates").
		Set("schedule", scheduleDoc).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateSchedule - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateSchedule - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateSchedule - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrAffiliateNotFound
	}

	return nil
}
