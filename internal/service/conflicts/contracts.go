package conflicts

import (
	"context"
	"time"

	"github.com/m04kA/SMC-AffiliateScheduler/internal/domain"
)

// OrderRepository интерфейс репозитория заказов
type OrderRepository interface {
	GetActiveByPickupSlot(ctx context.Context, affiliateID int64, date time.Time, slot domain.TimeSlot) ([]*domain.Order, error)
	GetActiveByPickupDate(ctx context.Context, affiliateID int64, date time.Time) ([]*domain.Order, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
