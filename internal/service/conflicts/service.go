// Package conflicts проверяет правки расписания на конфликты с уже
// созданными заказами. Проверка советующая: она только предупреждает,
// само изменение расписания она не блокирует — решение за вызывающим.
package conflicts

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-AffiliateScheduler/internal/domain"
)

// ValidationResult результат проверки правки расписания
type ValidationResult struct {
	Valid     bool
	Conflicts []*domain.Order
}

// Service сервис поиска конфликтов расписания с активными заказами
type Service struct {
	orderRepo OrderRepository
	logger    Logger
}

// NewService создает новый экземпляр сервиса конфликтов
func NewService(orderRepo OrderRepository, logger Logger) *Service {
	return &Service{
		orderRepo: orderRepo,
		logger:    logger,
	}
}

// ValidateScheduleChange проверяет, останутся ли активные заказы без слота,
// если аффилиат закроет указанную дату и слот.
// Терминальные заказы (complete, cancelled) конфликтами не считаются.
func (s *Service) ValidateScheduleChange(ctx context.Context, affiliateID int64, date time.Time, slot domain.TimeSlot) (*ValidationResult, error) {
	s.logger.Info("ValidateScheduleChange: affiliate=%d, date=%s, slot=%s",
		affiliateID, date.Format(domain.DateFormat), slot)

	if affiliateID <= 0 {
		return nil, fmt.Errorf("%w: affiliateID must be positive", ErrInvalidInput)
	}
	if _, err := domain.ParseTimeSlot(string(slot)); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	orders, err := s.orderRepo.GetActiveByPickupSlot(ctx, affiliateID, date, slot)
	if err != nil {
		s.logger.Error("ValidateScheduleChange: failed to get orders for affiliate=%d: %v", affiliateID, err)
		return nil, fmt.Errorf("%w: failed to get orders: %v", ErrInternal, err)
	}

	conflicts := activeOnly(orders)

	s.logger.Info("ValidateScheduleChange: affiliate=%d, date=%s, slot=%s, conflicts=%d",
		affiliateID, date.Format(domain.DateFormat), slot, len(conflicts))

	return &ValidationResult{
		Valid:     len(conflicts) == 0,
		Conflicts: conflicts,
	}, nil
}

// ConflictsForException возвращает активные заказы, которые станут
// невалидными после добавления исключения:
// для block — все заказы на дату, для override — заказы в выключаемых слотах.
func (s *Service) ConflictsForException(ctx context.Context, affiliateID int64, exc domain.DateException) ([]*domain.Order, error) {
	orders, err := s.orderRepo.GetActiveByPickupDate(ctx, affiliateID, exc.Date)
	if err != nil {
		s.logger.Error("ConflictsForException: failed to get orders for affiliate=%d: %v", affiliateID, err)
		return nil, fmt.Errorf("%w: failed to get orders: %v", ErrInternal, err)
	}

	conflicts := make([]*domain.Order, 0)
	for _, order := range activeOnly(orders) {
		switch exc.Type {
		case domain.ExceptionBlock:
			conflicts = append(conflicts, order)
		case domain.ExceptionOverride:
			// Конфликт только если слот заказа в override выключен
			if exc.TimeSlots == nil || !exc.TimeSlots.Get(order.PickupTime) {
				conflicts = append(conflicts, order)
			}
		}
	}

	return conflicts, nil
}

// activeOnly отфильтровывает терминальные заказы.
// Репозиторий их уже не отдаёт, но повторная проверка защищает
// от расхождения фильтров.
func activeOnly(orders []*domain.Order) []*domain.Order {
	active := make([]*domain.Order, 0, len(orders))
	for _, order := range orders {
		if order.IsActive() {
			active = append(active, order)
		}
	}
	return active
}
