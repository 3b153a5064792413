package add_exception

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
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgMissingDate        = "не указана дата (date) исключения"
	msgPastDate           = "дата (date) исключения в прошлом"
	msgReasonTooLong      = "слишком длинная причина (reason)"
	msgIncompleteOverride = "timeSlots у override должен задавать все слоты: morning, afternoon и evening"
	msgInvalidType        = "некорректный тип (type) исключения, ожидается block или override"
	msgInvalidException   = "некорректное исключение"
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

// Handle POST /affiliates/{affiliateId}/schedule/exceptions
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	affiliateIDStr := vars["affiliateId"]

	affiliateID, err := strconv.ParseInt(affiliateIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("POST /affiliates/{id}/schedule/exceptions - Invalid affiliate ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAffiliateID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /affiliates/{id}/schedule/exceptions - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req AddExceptionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /affiliates/{id}/schedule/exceptions - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq, err := req.ToServiceRequest(userID, middleware.IsAdmin(r.Context()))
	if err != nil {
		h.logger.Warn("POST /affiliates/{id}/schedule/exceptions - Failed to parse date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.service.AddException(r.Context(), affiliateID, serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrMissingDate):
			h.logger.Warn("POST /affiliates/{id}/schedule/exceptions - Missing date: affiliate_id=%d", affiliateID)
			handlers.RespondBadRequest(w, msgMissingDate)

		case errors.Is(err, schedule.ErrPastDate):
			h.logger.Warn("POST /affiliates/{id}/schedule/exceptions - Past date: affiliate_id=%d, error=%v", affiliateID, err)
			handlers.RespondBadRequest(w, msgPastDate)

		case errors.Is(err, schedule.ErrReasonTooLong):
			h.logger.Warn("POST /affiliates/{id}/schedule/exceptions - Reason too long: affiliate_id=%d", affiliateID)
			handlers.RespondBadRequest(w, msgReasonTooLong)

		case errors.Is(err, schedule.ErrIncompleteOverride):
			h.logger.Warn("POST /affiliates/{id}/schedule/exceptions - Incomplete override slots: affiliate_id=%d", affiliateID)
			handlers.RespondBadRequest(w, msgIncompleteOverride)

		case errors.Is(err, schedule.ErrInvalidExceptionType):
			h.logger.Warn("POST /affiliates/{id}/schedule/exceptions - Invalid exception type: affiliate_id=%d, error=%v", affiliateID, err)
			handlers.RespondBadRequest(w, msgInvalidType)

		case errors.Is(err, schedule.ErrInvalidInput):
			h.logger.Warn("POST /affiliates/{id}/schedule/exceptions - Invalid exception: affiliate_id=%d, error=%v", affiliateID, err)
			handlers.RespondBadRequest(w, msgInvalidException)

		case errors.Is(err, schedule.ErrAffiliateNotFound):
			h.logger.Warn("POST /affiliates/{id}/schedule/exceptions - Affiliate not found: affiliate_id=%d", affiliateID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, schedule.ErrAccessDenied):
			h.logger.Warn("POST /affiliates/{id}/schedule/exceptions - Access denied: affiliate_id=%d, user_id=%d", affiliateID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("POST /affiliates/{id}/schedule/exceptions - Failed to add exception: affiliate_id=%d, error=%v", affiliateID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /affiliates/{id}/schedule/exceptions - Exception added: affiliate_id=%d, exception_id=%s",
		affiliateID, result.Exception.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
