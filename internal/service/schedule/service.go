// Package schedule сервис самостоятельного редактирования расписания
// аффилиатом: недельный шаблон, исключения по датам, настройки окна
// бронирования. Все правки — last-writer-wins на одном документе.
package schedule

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-AffiliateScheduler/internal/calendar"
	"github.com/m04kA/SMC-AffiliateScheduler/internal/domain"
	affiliateRepo "github.com/m04kA/SMC-AffiliateScheduler/internal/infra/storage/affiliate"
	"github.com/m04kA/SMC-AffiliateScheduler/internal/service/schedule/models"
)

// Service сервис для работы с расписанием аффилиата
type Service struct {
	affiliateRepo     AffiliateRepository
	conflictValidator ConflictValidator
	timeProvider      TimeProvider
	logger            Logger
}

// NewService создает новый экземпляр сервиса расписаний
func NewService(
	affiliateRepo AffiliateRepository,
	conflictValidator ConflictValidator,
	logger Logger,
) *Service {
	return &Service{
		affiliateRepo:     affiliateRepo,
		conflictValidator: conflictValidator,
		timeProvider:      &RealTimeProvider{},
		logger:            logger,
	}
}

// GetSchedule возвращает полное расписание аффилиата.
// Доступно только владельцу аффилиата или администратору.
func (s *Service) GetSchedule(ctx context.Context, affiliateID, userID int64, isAdmin bool) (*models.ScheduleResponse, error) {
	s.logger.Info("GetSchedule: fetching schedule for affiliate=%d by user=%d", affiliateID, userID)

	affiliate, err := s.getOwnedAffiliate(ctx, affiliateID, userID, isAdmin, "GetSchedule")
	if err != nil {
		return nil, err
	}

	return models.FromDomainSchedule(affiliate.Schedule), nil
}

// UpdateTemplate выполняет merge-обновление недельного шаблона:
// меняются только дни, присутствующие в запросе, внутри дня — только
// переданные поля.
func (s *Service) UpdateTemplate(ctx context.Context, affiliateID int64, req *models.UpdateTemplateRequest) error {
	s.logger.Info("UpdateTemplate: updating template for affiliate=%d by user=%d, days=%d",
		affiliateID, req.UserID, len(req.Days))

	if len(req.Days) == 0 {
		s.logger.Warn("UpdateTemplate: empty template update for affiliate=%d", affiliateID)
		return ErrEmptyTemplate
	}

	affiliate, err := s.getOwnedAffiliate(ctx, affiliateID, req.UserID, req.IsAdmin, "UpdateTemplate")
	if err != nil {
		return err
	}

	schedule := copySchedule(affiliate.Schedule)

	for dayName, patch := range req.Days {
		day, err := domain.ParseWeekday(dayName)
		if err != nil {
			s.logger.Warn("UpdateTemplate: invalid day name %q for affiliate=%d", dayName, affiliateID)
			return fmt.Errorf("%w: %q", ErrInvalidDayName, dayName)
		}

		rule := schedule.WeeklyTemplate[day]
		if patch.Enabled != nil {
			rule.Enabled = *patch.Enabled
		}
		if patch.TimeSlots != nil {
			if patch.TimeSlots.Morning != nil {
				rule.TimeSlots.Morning = *patch.TimeSlots.Morning
			}
			if patch.TimeSlots.Afternoon != nil {
				rule.TimeSlots.Afternoon = *patch.TimeSlots.Afternoon
			}
			if patch.TimeSlots.Evening != nil {
				rule.TimeSlots.Evening = *patch.TimeSlots.Evening
			}
		}
		schedule.WeeklyTemplate[day] = rule
	}

	if err := s.persistSchedule(ctx, affiliateID, schedule, "UpdateTemplate"); err != nil {
		return err
	}

	s.logger.Info("UpdateTemplate: successfully updated template for affiliate=%d", affiliateID)
	return nil
}

// AddException добавляет исключение по дате. Если на эту дату уже есть
// исключение, оно заменяется (на одну дату — не больше одного исключения).
// Перед сохранением выполняется советующая проверка конфликтов: активные
// заказы в закрываемых слотах попадают в предупреждение, но правку
// не блокируют.
func (s *Service) AddException(ctx context.Context, affiliateID int64, req *models.AddExceptionRequest) (*models.AddExceptionResponse, error) {
	s.logger.Info("AddException: affiliate=%d, date=%s, type=%s by user=%d",
		affiliateID, req.Date.Format(domain.DateFormat), req.Type, req.UserID)

	exc, err := s.buildException(req)
	if err != nil {
		s.logger.Warn("AddException: validation failed for affiliate=%d: %v", affiliateID, err)
		return nil, err
	}

	affiliate, err := s.getOwnedAffiliate(ctx, affiliateID, req.UserID, req.IsAdmin, "AddException")
	if err != nil {
		return nil, err
	}

	// Дата в прошлом проверяется по таймзоне аффилиата
	loc := calendar.Location(affiliate.Schedule.ScheduleSettings.Timezone)
	today := calendar.DateOnly(s.timeProvider.Now().In(loc))
	if exc.Date.Before(today) {
		s.logger.Warn("AddException: past date %s for affiliate=%d",
			exc.Date.Format(domain.DateFormat), affiliateID)
		return nil, fmt.Errorf("%w: %s", ErrPastDate, exc.Date.Format(domain.DateFormat))
	}

	// Советующая проверка: ошибки чтения заказов не проглатываем
	affected, err := s.conflictValidator.ConflictsForException(ctx, affiliateID, exc)
	if err != nil {
		s.logger.Error("AddException: conflict check failed for affiliate=%d: %v", affiliateID, err)
		return nil, fmt.Errorf("%w: conflict check failed: %v", ErrInternal, err)
	}

	schedule := copySchedule(affiliate.Schedule)
	schedule.DateExceptions = replaceException(schedule.DateExceptions, exc)

	if err := s.persistSchedule(ctx, affiliateID, schedule, "AddException"); err != nil {
		return nil, err
	}

	response := &models.AddExceptionResponse{
		Exception: models.FromDomainException(exc),
	}
	if len(affected) > 0 {
		warning := conflictWarning(len(affected))
		response.Warning = &warning
		s.logger.Warn("AddException: affiliate=%d, date=%s affects %d active order(s)",
			affiliateID, exc.Date.Format(domain.DateFormat), len(affected))
	}

	s.logger.Info("AddException: successfully added exception id=%s for affiliate=%d", exc.ID, affiliateID)
	return response, nil
}

// RemoveException удаляет исключение по его id
func (s *Service) RemoveException(ctx context.Context, affiliateID int64, exceptionID string, userID int64, isAdmin bool) error {
	s.logger.Info("RemoveException: affiliate=%d, exception=%s by user=%d", affiliateID, exceptionID, userID)

	affiliate, err := s.getOwnedAffiliate(ctx, affiliateID, userID, isAdmin, "RemoveException")
	if err != nil {
		return err
	}

	schedule := copySchedule(affiliate.Schedule)

	found := false
	kept := make([]domain.DateException, 0, len(schedule.DateExceptions))
	for _, exc := range schedule.DateExceptions {
		if exc.ID == exceptionID {
			found = true
			continue
		}
		kept = append(kept, exc)
	}

	if !found {
		s.logger.Warn("RemoveException: exception id=%s not found for affiliate=%d", exceptionID, affiliateID)
		return ErrExceptionNotFound
	}

	schedule.DateExceptions = kept

	if err := s.persistSchedule(ctx, affiliateID, schedule, "RemoveException"); err != nil {
		return err
	}

	s.logger.Info("RemoveException: successfully removed exception id=%s for affiliate=%d", exceptionID, affiliateID)
	return nil
}

// UpdateSettings обновляет настройки окна бронирования.
// Поддерживает частичное обновление - обновляются только указанные поля.
func (s *Service) UpdateSettings(ctx context.Context, affiliateID int64, req *models.UpdateSettingsRequest) error {
	s.logger.Info("UpdateSettings: affiliate=%d by user=%d", affiliateID, req.UserID)

	if req.AdvanceBookingDays == nil && req.MaxBookingDays == nil {
		return ErrNoSettingsProvided
	}

	if req.AdvanceBookingDays != nil {
		if *req.AdvanceBookingDays < domain.MinAdvanceBookingDays || *req.AdvanceBookingDays > domain.MaxAdvanceBookingDays {
			return fmt.Errorf("%w: must be between %d and %d",
				ErrAdvanceDaysOutOfRange, domain.MinAdvanceBookingDays, domain.MaxAdvanceBookingDays)
		}
	}
	if req.MaxBookingDays != nil {
		if *req.MaxBookingDays < domain.MinBookingWindowDays || *req.MaxBookingDays > domain.MaxBookingWindowDays {
			return fmt.Errorf("%w: must be between %d and %d",
				ErrMaxDaysOutOfRange, domain.MinBookingWindowDays, domain.MaxBookingWindowDays)
		}
	}

	affiliate, err := s.getOwnedAffiliate(ctx, affiliateID, req.UserID, req.IsAdmin, "UpdateSettings")
	if err != nil {
		return err
	}

	schedule := copySchedule(affiliate.Schedule)
	if req.AdvanceBookingDays != nil {
		schedule.ScheduleSettings.AdvanceBookingDays = *req.AdvanceBookingDays
	}
	if req.MaxBookingDays != nil {
		schedule.ScheduleSettings.MaxBookingDays = *req.MaxBookingDays
	}

	if err := s.persistSchedule(ctx, affiliateID, schedule, "UpdateSettings"); err != nil {
		return err
	}

	s.logger.Info("UpdateSettings: successfully updated settings for affiliate=%d", affiliateID)
	return nil
}

// buildException валидирует запрос и собирает domain модель исключения
func (s *Service) buildException(req *models.AddExceptionRequest) (domain.DateException, error) {
	var exc domain.DateException

	if req.Date.IsZero() {
		return exc, ErrMissingDate
	}

	if req.Reason != nil && len(*req.Reason) > domain.MaxReasonLength {
		return exc, ErrReasonTooLong
	}

	excType := domain.ExceptionType(req.Type)
	switch excType {
	case domain.ExceptionBlock:
		// block закрывает дату целиком, карта слотов не хранится
		exc = domain.DateException{
			ID:     uuid.NewString(),
			Date:   calendar.DateOnly(req.Date),
			Type:   domain.ExceptionBlock,
			Reason: req.Reason,
		}
	case domain.ExceptionOverride:
		// override обязан задать все три слота: он заменяет шаблон, не мержится
		if !req.TimeSlots.IsComplete() {
			return exc, ErrIncompleteOverride
		}
		slots := req.TimeSlots.ToSlotMap()
		exc = domain.DateException{
			ID:        uuid.NewString(),
			Date:      calendar.DateOnly(req.Date),
			Type:      domain.ExceptionOverride,
			TimeSlots: &slots,
			Reason:    req.Reason,
		}
	default:
		return exc, fmt.Errorf("%w: %q", ErrInvalidExceptionType, req.Type)
	}

	return exc, nil
}

// getOwnedAffiliate получает аффилиата и проверяет права вызывающего
func (s *Service) getOwnedAffiliate(ctx context.Context, affiliateID, userID int64, isAdmin bool, op string) (*domain.Affiliate, error) {
	affiliate, err := s.affiliateRepo.GetByID(ctx, affiliateID)
	if err != nil {
		if errors.Is(err, affiliateRepo.ErrAffiliateNotFound) {
			s.logger.Warn("%s: affiliate id=%d not found", op, affiliateID)
			return nil, ErrAffiliateNotFound
		}
		s.logger.Error("%s: repository error for affiliate id=%d: %v", op, affiliateID, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}

	if !isAdmin && !affiliate.IsOwnedBy(userID) {
		s.logger.Warn("%s: user=%d does not own affiliate=%d", op, userID, affiliateID)
		return nil, ErrAccessDenied
	}

	return affiliate, nil
}

// persistSchedule сохраняет документ расписания с маппингом ошибок репозитория
func (s *Service) persistSchedule(ctx context.Context, affiliateID int64, schedule domain.AvailabilitySchedule, op string) error {
	if err := s.affiliateRepo.UpdateSchedule(ctx, affiliateID, schedule); err != nil {
		if errors.Is(err, affiliateRepo.ErrAffiliateNotFound) {
			s.logger.Warn("%s: affiliate id=%d disappeared during update", op, affiliateID)
			return ErrAffiliateNotFound
		}
		s.logger.Error("%s: failed to persist schedule for affiliate=%d: %v", op, affiliateID, err)
		return fmt.Errorf("%w: %s - failed to persist schedule: %v", ErrInternal, op, err)
	}
	return nil
}

// copySchedule делает глубокую копию документа расписания,
// чтобы правки не трогали закэшированный экземпляр аффилиата
func copySchedule(schedule domain.AvailabilitySchedule) domain.AvailabilitySchedule {
	template := make(domain.WeeklyTemplate, len(schedule.WeeklyTemplate))
	for day, rule := range schedule.WeeklyTemplate {
		template[day] = rule
	}

	exceptions := make([]domain.DateException, len(schedule.DateExceptions))
	copy(exceptions, schedule.DateExceptions)

	return domain.AvailabilitySchedule{
		WeeklyTemplate:   template,
		DateExceptions:   exceptions,
		ScheduleSettings: schedule.ScheduleSettings,
	}
}

// replaceException добавляет исключение, убирая существующее на ту же дату
func replaceException(exceptions []domain.DateException, exc domain.DateException) []domain.DateException {
	key := calendar.DateKey(exc.Date)

	kept := make([]domain.DateException, 0, len(exceptions)+1)
	for _, existing := range exceptions {
		if calendar.DateKey(calendar.DateOnly(existing.Date)) == key {
			continue
		}
		kept = append(kept, existing)
	}

	return append(kept, exc)
}

// conflictWarning строит текст предупреждения о затронутых заказах
func conflictWarning(count int) string {
	if count == 1 {
		return "1 existing order would be affected by this exception"
	}
	return fmt.Sprintf("%d existing orders would be affected by this exception", count)
}
