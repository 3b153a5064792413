package update_settings

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AffiliateScheduler/internal/api/handlers"
	"github.com/m04kA/SMC-AffiliateScheduler/internal/api/middleware"
	"github.com/m04kA/SMC-AffiliateScheduler/internal/service/schedule"
	"github.com/m04kA/SMC-AffiliateScheduler/internal/service/schedule/models"
)

const (
	msgInvalidAffiliateID = "некорректный ID аффилиата"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgNoSettings         = "нужно указать хотя бы одно из полей: advanceBookingDays, maxBookingDays"
	msgAdvanceOutOfRange  = "advanceBookingDays должен быть в диапазоне от 0 до 30"
	msgMaxOutOfRange      = "maxBookingDays должен быть в диапазоне от 1 до 90"
	msgInvalidSettings    = "некорректные настройки окна бронирования"
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

// UpdateSettingsRequest HTTP request model
type UpdateSettingsRequest struct {
	AdvanceBookingDays *int `json:"advanceBookingDays,omitempty"`
	MaxBookingDays     *int `json:"maxBookingDays,omitempty"`
}

// Handle PUT /affiliates/{affiliateId}/schedule/settings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	affiliateIDStr := vars["affiliateId"]

	affiliateID, err := strconv.ParseInt(affiliateIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PUT /affiliates/{id}/schedule/settings - Invalid affiliate ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAffiliateID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PUT /affiliates/{id}/schedule/settings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req UpdateSettingsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /affiliates/{id}/schedule/settings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq := &models.UpdateSettingsRequest{
		UserID:             userID,
		IsAdmin:            middleware.IsAdmin(r.Context()),
		AdvanceBookingDays: req.AdvanceBookingDays,
		MaxBookingDays:     req.MaxBookingDays,
	}

	if err := h.service.UpdateSettings(r.Context(), affiliateID, serviceReq); err != nil {
		switch {
		case errors.Is(err, schedule.ErrNoSettingsProvided):
			h.logger.Warn("PUT /affiliates/{id}/schedule/settings - No settings provided: affiliate_id=%d", affiliateID)
			handlers.RespondBadRequest(w, msgNoSettings)

		case errors.Is(err, schedule.ErrAdvanceDaysOutOfRange):
			h.logger.Warn("PUT /affiliates/{id}/schedule/settings - advanceBookingDays out of range: affiliate_id=%d", affiliateID)
			handlers.RespondBadRequest(w, msgAdvanceOutOfRange)

		case errors.Is(err, schedule.ErrMaxDaysOutOfRange):
			h.logger.Warn("PUT /affiliates/{id}/schedule/settings - maxBookingDays out of range: affiliate_id=%d", affiliateID)
			handlers.RespondBadRequest(w, msgMaxOutOfRange)

		case errors.Is(err, schedule.ErrInvalidInput):
			h.logger.Warn("PUT /affiliates/{id}/schedule/settings - Invalid settings: affiliate_id=%d, error=%v", affiliateID, err)
			handlers.RespondBadRequest(w, msgInvalidSettings)

		case errors.Is(err, schedule.ErrAffiliateNotFound):
			h.logger.Warn("PUT /affiliates/{id}/schedule/settings - Affiliate not found: affiliate_id=%d", affiliateID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, schedule.ErrAccessDenied):
			h.logger.Warn("PUT /affiliates/{id}/schedule/settings - Access denied: affiliate_id=%d, user_id=%d", affiliateID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("PUT /affiliates/{id}/schedule/settings - Failed to update settings: affiliate_id=%d, error=%v", affiliateID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /affiliates/{id}/schedule/settings - Settings updated: affiliate_id=%d, user_id=%d", affiliateID, userID)
	handlers.RespondSuccess(w)
}
