package update_template

import (
	"context"

	"github.com/m04kA/SMC-AffiliateScheduler/internal/service/schedule/models"
)

type ScheduleService interface {
	UpdateTemplate(ctx context.Context, affiliateID int64, req *models.UpdateTemplateRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
