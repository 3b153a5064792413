package get_schedule

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AffiliateScheduler/internal/api/handlers"
	"github.com/m04kA/SMC-AffiliateScheduler/internal/api/middleware"
	"github.com/m04kA/SMC-AffiliateScheduler/internal/service/schedule"
)

const (
	msgInvalidAffiliateID = "некорректный ID аффилиата"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgNotFound           = "аффилиат не найден"
	msgForbidden          = "доступ запрещен"
)

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /affiliates/{affiliateId}/schedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	affiliateIDStr := vars["affiliateId"]

	affiliateID, err := strconv.ParseInt(affiliateIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /affiliates/{id}/schedule - Invalid affiliate ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAffiliateID)
		return
	}

	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /affiliates/{id}/schedule - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	result, err := h.service.GetSchedule(r.Context(), affiliateID, userID, middleware.IsAdmin(r.Context()))
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrAffiliateNotFound):
			h.logger.Warn("GET /affiliates/{id}/schedule - Affiliate not found: affiliate_id=%d", affiliateID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, schedule.ErrAccessDenied):
			h.logger.Warn("GET /affiliates/{id}/schedule - Access denied: affiliate_id=%d, user_id=%d", affiliateID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("GET /affiliates/{id}/schedule - Failed to get schedule: affiliate_id=%d, error=%v", affiliateID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
