package remove_exception

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
	msgInvalidExceptionID = "некорректный ID исключения"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgAffiliateNotFound  = "аффилиат не найден"
	msgExceptionNotFound  = "исключение не найдено"
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

// Handle DELETE /affiliates/{affiliateId}/schedule/exceptions/{exceptionId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	affiliateIDStr := vars["affiliateId"]
	exceptionID := vars["exceptionId"]

	affiliateID, err := strconv.ParseInt(affiliateIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /affiliates/{id}/schedule/exceptions/{excId} - Invalid affiliate ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAffiliateID)
		return
	}

	if exceptionID == "" {
		h.logger.Warn("DELETE /affiliates/{id}/schedule/exceptions/{excId} - Empty exception ID")
		handlers.RespondBadRequest(w, msgInvalidExceptionID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("DELETE /affiliates/{id}/schedule/exceptions/{excId} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	err = h.service.RemoveException(r.Context(), affiliateID, exceptionID, userID, middleware.IsAdmin(r.Context()))
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrAffiliateNotFound):
			h.logger.Warn("DELETE /affiliates/{id}/schedule/exceptions/{excId} - Affiliate not found: affiliate_id=%d", affiliateID)
			handlers.RespondNotFound(w, msgAffiliateNotFound)

		case errors.Is(err, schedule.ErrExceptionNotFound):
			h.logger.Warn("DELETE /affiliates/{id}/schedule/exceptions/{excId} - Exception not found: affiliate_id=%d, exception_id=%s",
				affiliateID, exceptionID)
			handlers.RespondNotFound(w, msgExceptionNotFound)

		case errors.Is(err, schedule.ErrAccessDenied):
			h.logger.Warn("DELETE /affiliates/{id}/schedule/exceptions/{excId} - Access denied: affiliate_id=%d, user_id=%d", affiliateID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("DELETE /affiliates/{id}/schedule/exceptions/{excId} - Failed to remove exception: affiliate_id=%d, error=%v",
				affiliateID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /affiliates/{id}/schedule/exceptions/{excId} - Exception removed: affiliate_id=%d, exception_id=%s",
		affiliateID, exceptionID)
	handlers.RespondSuccess(w)
}
