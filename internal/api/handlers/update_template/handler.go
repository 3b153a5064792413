package update_template

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
	msgInvalidRequestBody = "некорректное тело запроса"
	msgEmptyTemplate      = "weeklyTemplate должен содержать хотя бы один день"
	msgInvalidDayName     = "некорректное имя дня недели в weeklyTemplate"
	msgInvalidTemplate    = "некорректный недельный шаблон"
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

// Handle PUT /affiliates/{affiliateId}/schedule/template
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	affiliateIDStr := vars["affiliateId"]

	affiliateID, err := strconv.ParseInt(affiliateIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PUT /affiliates/{id}/schedule/template - Invalid affiliate ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAffiliateID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PUT /affiliates/{id}/schedule/template - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req UpdateTemplateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /affiliates/{id}/schedule/template - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq := req.ToServiceRequest(userID, middleware.IsAdmin(r.Context()))

	if err := h.service.UpdateTemplate(r.Context(), affiliateID, serviceReq); err != nil {
		switch {
		case errors.Is(err, schedule.ErrEmptyTemplate):
			h.logger.Warn("PUT /affiliates/{id}/schedule/template - Empty template: affiliate_id=%d", affiliateID)
			handlers.RespondBadRequest(w, msgEmptyTemplate)

		case errors.Is(err, schedule.ErrInvalidDayName):
			h.logger.Warn("PUT /affiliates/{id}/schedule/template - Invalid day name: affiliate_id=%d, error=%v", affiliateID, err)
			handlers.RespondBadRequest(w, msgInvalidDayName)

		case errors.Is(err, schedule.ErrInvalidInput):
			h.logger.Warn("PUT /affiliates/{id}/schedule/template - Invalid template: affiliate_id=%d, error=%v", affiliateID, err)
			handlers.RespondBadRequest(w, msgInvalidTemplate)

		case errors.Is(err, schedule.ErrAffiliateNotFound):
			h.logger.Warn("PUT /affiliates/{id}/schedule/template - Affiliate not found: affiliate_id=%d", affiliateID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, schedule.ErrAccessDenied):
			h.logger.Warn("PUT /affiliates/{id}/schedule/template - Access denied: affiliate_id=%d, user_id=%d", affiliateID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("PUT /affiliates/{id}/schedule/template - Failed to update template: affiliate_id=%d, error=%v", affiliateID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /affiliates/{id}/schedule/template - Template updated: affiliate_id=%d, user_id=%d", affiliateID, userID)
	handlers.RespondSuccess(w)
}
