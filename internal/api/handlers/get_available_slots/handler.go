package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AffiliateScheduler/internal/api/handlers"
	"github.com/m04kA/SMC-AffiliateScheduler/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-AffiliateScheduler/internal/usecase/get_available_slots"
)

const (
	msgInvalidAffiliateID = "некорректный ID аффилиата"
	msgMissingDates       = "параметры startDate и endDate обязательны"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidRange       = "некорректный диапазон дат"
	msgRangeTooLarge      = "диапазон дат не должен превышать 90 дней"
	msgNotFound           = "аффилиат не найден"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /affiliates/{affiliateId}/available-slots?startDate=...&endDate=...
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	affiliateIDStr := vars["affiliateId"]

	affiliateID, err := strconv.ParseInt(affiliateIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /affiliates/{id}/available-slots - Invalid affiliate ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAffiliateID)
		return
	}

	startDateStr := r.URL.Query().Get("startDate")
	endDateStr := r.URL.Query().Get("endDate")
	if startDateStr == "" || endDateStr == "" {
		h.logger.Warn("GET /affiliates/{id}/available-slots - Missing date params: affiliate_id=%d", affiliateID)
		handlers.RespondBadRequest(w, msgMissingDates)
		return
	}

	startDate, err := time.Parse(domain.DateFormat, startDateStr)
	if err != nil {
		h.logger.Warn("GET /affiliates/{id}/available-slots - Invalid startDate: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	endDate, err := time.Parse(domain.DateFormat, endDateStr)
	if err != nil {
		h.logger.Warn("GET /affiliates/{id}/available-slots - Invalid endDate: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailableSlots.Request{
		AffiliateID: affiliateID,
		StartDate:   startDate,
		EndDate:     endDate,
	})
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrRangeTooLarge):
			h.logger.Warn("GET /affiliates/{id}/available-slots - Range too large: affiliate_id=%d", affiliateID)
			handlers.RespondBadRequest(w, msgRangeTooLarge)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /affiliates/{id}/available-slots - Invalid range: affiliate_id=%d, error=%v", affiliateID, err)
			handlers.RespondBadRequest(w, msgInvalidRange)

		case errors.Is(err, getAvailableSlots.ErrAffiliateNotFound):
			h.logger.Warn("GET /affiliates/{id}/available-slots - Affiliate not found: affiliate_id=%d", affiliateID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /affiliates/{id}/available-slots - Failed to get available slots: affiliate_id=%d, error=%v",
				affiliateID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
