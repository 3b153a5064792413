package update_template

import (
	"github.com/m04kA/SMC-AffiliateScheduler/internal/service/schedule/models"
)

// UpdateTemplateRequest HTTP request model
type UpdateTemplateRequest struct {
	WeeklyTemplate map[string]models.DayRulePatch `json:"weeklyTemplate"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdateTemplateRequest) ToServiceRequest(userID int64, isAdmin bool) *models.UpdateTemplateRequest {
	return &models.UpdateTemplateRequest{
		UserID:  userID,
		IsAdmin: isAdmin,
		Days:    r.WeeklyTemplate,
	}
}
