package schedule

import (
	"context"
	"time"

	"github.com/m04kA/SMC-AffiliateScheduler/internal/domain"
)

// AffiliateRepository интерфейс репозитория аффилиатов
type AffiliateRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Affiliate, error)
	UpdateSchedule(ctx context.Context, id int64, schedule domain.AvailabilitySchedule) error
}

// ConflictValidator интерфейс советующей проверки правок расписания
type ConflictValidator interface {
	ConflictsForException(ctx context.Context, affiliateID int64, exc domain.DateException) ([]*domain.Order, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
