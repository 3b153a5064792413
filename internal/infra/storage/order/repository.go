package order

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-AffiliateScheduler/internal/calendar"
	"github.com/m04kA/SMC-AffiliateScheduler/internal/domain"
	"github.com/m04kA/SMC-AffiliateScheduler/pkg/dbmetrics"
	"github.com/m04kA/SMC-AffiliateScheduler/pkg/psqlbuilder"
)

// Repository репозиторий для чтения заказов.
// Движку расписаний заказы нужны только для поиска конфликтов, поэтому
// здесь нет операций записи: заказами владеет order-сервис.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория заказов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

var orderColumns = []string{
	"id",
	"affiliate_id",
	"user_id",
	"pickup_date",
	"pickup_time",
	"status",
	"created_at",
	"updated_at",
}

// GetActiveByPickupSlot получает активные (нетерминальные) заказы аффилиата
// с забором в указанную дату и слот. Терминальные заказы (complete, cancelled)
// слот не занимают и в выборку не попадают.
func (r *Repository) GetActiveByPickupSlot(ctx context.Context, affiliateID int64, date time.Time, slot domain.TimeSlot) ([]*domain.Order, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(orderColumns...).
		From("orders").
		Where(squirrel.Eq{"affiliate_id": affiliateID}).
		Where(squirrel.Eq{"pickup_date": calendar.DateOnly(date)}).
		Where(squirrel.Eq{"pickup_time": slot}).
		Where(squirrel.NotEq{"status": terminalStatusStrings()}).
		OrderBy("pickup_date ASC, id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveByPickupSlot - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveByPickupSlot - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanOrders(rows)
}

// GetActiveByPickupDate получает активные заказы аффилиата на календарную дату
// по всем слотам. Используется при добавлении block-исключений.
func (r *Repository) GetActiveByPickupDate(ctx context.Context, affiliateID int64, date time.Time) ([]*domain.Order, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(orderColumns...).
		From("orders").
		Where(squirrel.Eq{"affiliate_id": affiliateID}).
		Where(squirrel.Eq{"pickup_date": calendar.DateOnly(date)}).
		Where(squirrel.NotEq{"status": terminalStatusStrings()}).
		OrderBy("pickup_time ASC, id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveByPickupDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveByPickupDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanOrders(rows)
}

// scanOrders сканирует результаты запроса в слайс заказов
func (r *Repository) scanOrders(rows *sql.Rows) ([]*domain.Order, error) {
	orders := make([]*domain.Order, 0)

	for rows.Next() {
		var order domain.Order
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&order.ID,
			&order.AffiliateID,
			&order.UserID,
			&order.PickupDate,
			&order.PickupTime,
			&order.Status,
			&createdAt,
			&updatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanOrders - scan row: %v", ErrScanRow, err)
		}

		order.CreatedAt = createdAt.Time
		order.UpdatedAt = updatedAt.Time

		orders = append(orders, &order)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanOrders - rows error: %v", ErrScanRow, err)
	}

	return orders, nil
}

func terminalStatusStrings() []string {
	statuses := make([]string, len(domain.TerminalStatuses))
	for i, s := range domain.TerminalStatuses {
		statuses[i] = string(s)
	}
	return statuses
}
