// Package get_available_slots use case публичного календаря бронирования:
// разворачивает расписание аффилиата в упорядоченный список доступных
// дат со слотами в заданном диапазоне.
package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AffiliateScheduler/internal/availability"
	"github.com/m04kA/SMC-AffiliateScheduler/internal/calendar"
	"github.com/m04kA/SMC-AffiliateScheduler/internal/domain"
	affiliateRepo "github.com/m04kA/SMC-AffiliateScheduler/internal/infra/storage/affiliate"
)

// UseCase use case для получения доступных дат
type UseCase struct {
	affiliateRepo AffiliateRepository
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(affiliateRepo AffiliateRepository, logger Logger) *UseCase {
	return &UseCase{
		affiliateRepo: affiliateRepo,
		logger:        logger,
	}
}

// Execute выполняет use case получения доступных дат.
// Дни без единого доступного слота в результат не попадают.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: affiliate=%d, range=%s..%s",
		req.AffiliateID, req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat))

	// 1. Валидация входных данных и диапазона
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем аффилиата с его расписанием
	affiliate, err := uc.affiliateRepo.GetByID(ctx, req.AffiliateID)
	if err != nil {
		if errors.Is(err, affiliateRepo.ErrAffiliateNotFound) {
			uc.logger.Warn("GetAvailableSlots: affiliate id=%d not found", req.AffiliateID)
			return nil, ErrAffiliateNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get affiliate id=%d: %v", req.AffiliateID, err)
		return nil, fmt.Errorf("%w: failed to get affiliate: %v", ErrInternal, err)
	}

	// 3. Разворачиваем диапазон по документу расписания
	start := calendar.DateOnly(req.StartDate)
	end := calendar.DateOnly(req.EndDate)
	days := availability.AvailableDates(affiliate.Schedule, start, end)

	uc.logger.Info("GetAvailableSlots: affiliate=%d, %d available day(s) in range",
		req.AffiliateID, len(days))

	return &Response{
		AffiliateID:    req.AffiliateID,
		AvailableDates: days,
		Settings:       affiliate.Schedule.ScheduleSettings,
	}, nil
}
