package check_booking

import (
	"fmt"

	"github.com/m04kA/SMC-AffiliateScheduler/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) (domain.TimeSlot, error) {
	if req.AffiliateID <= 0 {
		return "", fmt.Errorf("%w: affiliateID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return "", fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	slot, err := domain.ParseTimeSlot(req.TimeSlot)
	if err != nil {
		return "", fmt.Errorf("%w: invalid time slot %q", ErrInvalidInput, req.TimeSlot)
	}

	return slot, nil
}
