package check_slot

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AffiliateScheduler/internal/api/handlers"
	"github.com/m04kA/SMC-AffiliateScheduler/internal/domain"
	checkBooking "github.com/m04kA/SMC-AffiliateScheduler/internal/usecase/check_booking"
)

const (
	msgInvalidAffiliateID = "некорректный ID аффилиата"
	msgMissingParams      = "параметры date и timeSlot обязательны"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidTimeSlot    = "некорректный временной слот"
	msgNotFound           = "аффилиат не найден"
)

type Handler struct {
	useCase CheckBookingUseCase
	logger  Logger
}

func NewHandler(useCase CheckBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// CheckSlotResponse HTTP response model
type CheckSlotResponse struct {
	Available bool `json:"available"`
}

// Handle GET /affiliates/{affiliateId}/available-slots/check?date=...&timeSlot=...
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	affiliateIDStr := vars["affiliateId"]

	affiliateID, err := strconv.ParseInt(affiliateIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /affiliates/{id}/available-slots/check - Invalid affiliate ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAffiliateID)
		return
	}

	dateStr := r.URL.Query().Get("date")
	timeSlot := r.URL.Query().Get("timeSlot")
	if dateStr == "" || timeSlot == "" {
		h.logger.Warn("GET /affiliates/{id}/available-slots/check - Missing params: affiliate_id=%d", affiliateID)
		handlers.RespondBadRequest(w, msgMissingParams)
		return
	}

	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		h.logger.Warn("GET /affiliates/{id}/available-slots/check - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &checkBooking.Request{
		AffiliateID: affiliateID,
		Date:        date,
		TimeSlot:    timeSlot,
	})
	if err != nil {
		switch {
		case errors.Is(err, checkBooking.ErrInvalidInput):
			h.logger.Warn("GET /affiliates/{id}/available-slots/check - Invalid time slot: affiliate_id=%d, slot=%s",
				affiliateID, timeSlot)
			handlers.RespondBadRequest(w, msgInvalidTimeSlot)

		case errors.Is(err, checkBooking.ErrAffiliateNotFound):
			h.logger.Warn("GET /affiliates/{id}/available-slots/check - Affiliate not found: affiliate_id=%d", affiliateID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /affiliates/{id}/available-slots/check - Failed to check slot: affiliate_id=%d, error=%v",
				affiliateID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, CheckSlotResponse{Available: result.Available})
}
