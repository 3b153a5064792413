package add_exception

import (
	"time"

	"github.com/m04kA/SMC-AffiliateScheduler/internal/domain"
	"github.com/m04kA/SMC-AffiliateScheduler/internal/service/schedule/models"
)

// AddExceptionRequest HTTP request model
type AddExceptionRequest struct {
	Date      string               `json:"date"` // "2025-12-31"
	Type      string               `json:"type"` // "block" или "override"
	TimeSlots *models.SlotMapPatch `json:"timeSlots,omitempty"`
	Reason    *string              `json:"reason,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса (с парсингом даты)
func (r *AddExceptionRequest) ToServiceRequest(userID int64, isAdmin bool) (*models.AddExceptionRequest, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	return &models.AddExceptionRequest{
		UserID:    userID,
		IsAdmin:   isAdmin,
		Date:      date,
		Type:      r.Type,
		TimeSlots: r.TimeSlots,
		Reason:    r.Reason,
	}, nil
}
