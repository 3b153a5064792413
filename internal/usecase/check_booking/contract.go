package check_booking

import (
	"context"

	"github.com/m04kA/SMC-AffiliateScheduler/internal/domain"
)

// AffiliateRepository интерфейс репозитория аффилиатов
type AffiliateRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Affiliate, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
