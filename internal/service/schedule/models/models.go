package models

import (
	"time"

	"github.com/m04kA/SMC-AffiliateScheduler/internal/domain"
)

// Request модели

// SlotMapPatch частичное обновление карты слотов.
// Поля-указатели: обновляются только переданные слоты.
type SlotMapPatch struct {
	Morning   *bool `json:"morning,omitempty"`
	Afternoon *bool `json:"afternoon,omitempty"`
	Evening   *bool `json:"evening,omitempty"`
}

// IsComplete проверяет, что заданы все три слота
func (p *SlotMapPatch) IsComplete() bool {
	return p != nil && p.Morning != nil && p.Afternoon != nil && p.Evening != nil
}

// ToSlotMap собирает полную карту слотов.
// Незаданные слоты считаются выключенными.
func (p *SlotMapPatch) ToSlotMap() domain.SlotMap {
	if p == nil {
		return domain.SlotMap{}
	}
	slots := domain.SlotMap{}
	if p.Morning != nil {
		slots.Morning = *p.Morning
	}
	if p.Afternoon != nil {
		slots.Afternoon = *p.Afternoon
	}
	if p.Evening != nil {
		slots.Evening = *p.Evening
	}
	return slots
}

// DayRulePatch частичное обновление правила одного дня шаблона
type DayRulePatch struct {
	Enabled   *bool         `json:"enabled,omitempty"`
	TimeSlots *SlotMapPatch `json:"timeSlots,omitempty"`
}

// UpdateTemplateRequest запрос на merge-обновление недельного шаблона.
// Ключи — имена дней недели; дни, которых нет в запросе, не меняются.
type UpdateTemplateRequest struct {
	UserID  int64
	IsAdmin bool
	Days    map[string]DayRulePatch
}

// AddExceptionRequest запрос на добавление исключения по дате
type AddExceptionRequest struct {
	UserID    int64
	IsAdmin   bool
	Date      time.Time
	Type      string
	TimeSlots *SlotMapPatch
	Reason    *string
}

// UpdateSettingsRequest запрос на обновление настроек окна бронирования.
// Все поля опциональны - обновляются только переданные значения.
type UpdateSettingsRequest struct {
	UserID             int64
	IsAdmin            bool
	AdvanceBookingDays *int `json:"advanceBookingDays,omitempty"`
	MaxBookingDays     *int `json:"maxBookingDays,omitempty"`
}

// Response модели

// ExceptionResponse DTO одного исключения по дате
type ExceptionResponse struct {
	ID        string          `json:"id"`
	Date      string          `json:"date"`
	Type      string          `json:"type"`
	TimeSlots *domain.SlotMap `json:"timeSlots,omitempty"`
	Reason    *string         `json:"reason,omitempty"`
}

// ScheduleResponse DTO полного расписания аффилиата
type ScheduleResponse struct {
	WeeklyTemplate   map[string]domain.DayRule `json:"weeklyTemplate"`
	DateExceptions   []ExceptionResponse       `json:"dateExceptions"`
	ScheduleSettings domain.ScheduleSettings   `json:"scheduleSettings"`
}

// AddExceptionResponse DTO результата добавления исключения.
// Warning заполнен, если исключение затрагивает активные заказы.
type AddExceptionResponse struct {
	Exception ExceptionResponse `json:"exception"`
	Warning   *string           `json:"warning,omitempty"`
}

// Методы конвертации

// FromDomainException конвертирует domain модель исключения в DTO
func FromDomainException(exc domain.DateException) ExceptionResponse {
	return ExceptionResponse{
		ID:        exc.ID,
		Date:      exc.Date.Format(domain.DateFormat),
		Type:      string(exc.Type),
		TimeSlots: exc.TimeSlots,
		Reason:    exc.Reason,
	}
}

// FromDomainSchedule конвертирует документ расписания в DTO
func FromDomainSchedule(schedule domain.AvailabilitySchedule) *ScheduleResponse {
	template := make(map[string]domain.DayRule, len(schedule.WeeklyTemplate))
	for day, rule := range schedule.WeeklyTemplate {
		template[string(day)] = rule
	}

	exceptions := make([]ExceptionResponse, len(schedule.DateExceptions))
	for i, exc := range schedule.DateExceptions {
		exceptions[i] = FromDomainException(exc)
	}

	return &ScheduleResponse{
		WeeklyTemplate:   template,
		DateExceptions:   exceptions,
		ScheduleSettings: schedule.ScheduleSettings,
	}
}
