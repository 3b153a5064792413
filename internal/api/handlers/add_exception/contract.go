package add_exception

import (
	"context"

	"github.com/m04kA/SMC-AffiliateScheduler/internal/service/schedule/models"
)

type ScheduleService interface {
	AddException(ctx context.Context, affiliateID int64, req *models.AddExceptionRequest) (*models.AddExceptionResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
