package update_settings

import (
	"context"

	"github.com/m04kA/SMC-AffiliateScheduler/internal/service/schedule/models"
)

type ScheduleService interface {
	UpdateSettings(ctx context.Context, affiliateID int64, req *models.UpdateSettingsRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
