package get_schedule

import (
	"context"

	"github.com/m04kA/SMC-AffiliateScheduler/internal/service/schedule/models"
)

type ScheduleService interface {
	GetSchedule(ctx context.Context, affiliateID, userID int64, isAdmin bool) (*models.ScheduleResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
