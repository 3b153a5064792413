// Package check_booking ворота бронирования для пути создания заказа:
// отвечает, можно ли забрать заказ у аффилиата в указанную дату и слот.
// Запись заказа — ответственность вызывающей стороны, здесь только
// чистая проверка без резервирования.
package check_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AffiliateScheduler/internal/availability"
	"github.com/m04kA/SMC-AffiliateScheduler/internal/calendar"
	"github.com/m04kA/SMC-AffiliateScheduler/internal/domain"
	affiliateRepo "github.com/m04kA/SMC-AffiliateScheduler/internal/infra/storage/affiliate"
	"github.com/m04kA/SMC-AffiliateScheduler/pkg/ptr"
)

// UseCase use case проверки доступности слота для бронирования
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

// Execute выполняет проверку: слот недоступен — это не ошибка,
// а легитимный результат с кодом отказа в Response
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CheckBooking: affiliate=%d, date=%s, slot=%s",
		req.AffiliateID, req.Date.Format(domain.DateFormat), req.TimeSlot)

	// 1. Валидация входных данных
	slot, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("CheckBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем аффилиата с его расписанием
	affiliate, err := uc.affiliateRepo.GetByID(ctx, req.AffiliateID)
	if err != nil {
		if errors.Is(err, affiliateRepo.ErrAffiliateNotFound) {
			uc.logger.Warn("CheckBooking: affiliate id=%d not found", req.AffiliateID)
			return nil, ErrAffiliateNotFound
		}
		uc.logger.Error("CheckBooking: failed to get affiliate id=%d: %v", req.AffiliateID, err)
		return nil, fmt.Errorf("%w: failed to get affiliate: %v", ErrInternal, err)
	}

	// 3. Чистая проверка по документу расписания
	date := calendar.DateOnly(req.Date)
	available := availability.IsAvailable(affiliate.Schedule, date, slot)

	response := &Response{
		AffiliateID: req.AffiliateID,
		Date:        date,
		TimeSlot:    string(slot),
		Available:   available,
	}

	if !available {
		response.Code = ptr.Ptr(CodeTimeslotUnavailable)
		response.Message = ptr.Ptr(fmt.Sprintf("Time slot %s is not available on %s",
			slot, date.Format(domain.DateFormat)))
		uc.logger.Info("CheckBooking: slot %s on %s is unavailable for affiliate=%d",
			slot, date.Format(domain.DateFormat), req.AffiliateID)
		return response, nil
	}

	uc.logger.Info("CheckBooking: slot %s on %s is available for affiliate=%d",
		slot, date.Format(domain.DateFormat), req.AffiliateID)
	return response, nil
}
