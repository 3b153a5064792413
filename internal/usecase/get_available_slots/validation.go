package get_available_slots

import (
	"fmt"

	"github.com/m04kA/SMC-AffiliateScheduler/internal/calendar"
	"github.com/m04kA/SMC-AffiliateScheduler/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.AffiliateID <= 0 {
		return fmt.Errorf("%w: affiliateID must be positive", ErrInvalidInput)
	}

	if req.StartDate.IsZero() {
		return fmt.Errorf("%w: startDate is required", ErrInvalidInput)
	}

	if req.EndDate.IsZero() {
		return fmt.Errorf("%w: endDate is required", ErrInvalidInput)
	}

	start := calendar.DateOnly(req.StartDate)
	end := calendar.DateOnly(req.EndDate)

	if end.Before(start) {
		return fmt.Errorf("%w: endDate must not be before startDate", ErrInvalidInput)
	}

	if calendar.DaySpan(start, end) > domain.MaxRangeQueryDays {
		return fmt.Errorf("%w: range must not exceed %d days", ErrRangeTooLarge, domain.MaxRangeQueryDays)
	}

	return nil
}
