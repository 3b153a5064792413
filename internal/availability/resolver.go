// Package availability реализует вычисление доступности слотов аффилиата:
// резолвер для одной даты и разворачивание доступности по диапазону дат.
//
// Слои в порядке приоритета (выше — сильнее):
//  1. block-исключение: дата полностью закрыта;
//  2. override-исключение: карта слотов заменяет недельный шаблон целиком
//     (не мержится с ним);
//  3. недельный шаблон по дню недели.
//
// Все функции чистые: расписание передаётся значением, ничего не мутируется
// и не читается из хранилища.
package availability

import (
	"time"

	"github.com/m04kA/SMC-AffiliateScheduler/internal/calendar"
	"github.com/m04kA/SMC-AffiliateScheduler/internal/domain"
)

// Resolver answers availability questions for a single affiliate schedule.
// Исключения индексируются по нормализованной дате один раз при создании,
// поэтому каждый запрос по дате выполняется за O(1).
type Resolver struct {
	template   domain.WeeklyTemplate
	exceptions map[string]domain.DateException
}

// NewResolver builds a resolver over an affiliate schedule
func NewResolver(schedule domain.AvailabilitySchedule) *Resolver {
	exceptions := make(map[string]domain.DateException, len(schedule.DateExceptions))
	for _, exc := range schedule.DateExceptions {
		exceptions[calendar.DateKey(calendar.DateOnly(exc.Date))] = exc
	}

	return &Resolver{
		template:   schedule.WeeklyTemplate,
		exceptions: exceptions,
	}
}

// DaySlots resolves the effective slot map for a calendar date.
// Дата трактуется как календарный день без привязки к таймзоне: и индекс
// исключений, и день недели шаблона вычисляются из одной нормализованной
// даты, поэтому оба слоя всегда смотрят на один и тот же день.
// Возвращает пустую карту (всё закрыто) для block-исключений, выключенных
// дней шаблона и испорченных документов — fail closed, без паники.
func (r *Resolver) DaySlots(date time.Time) domain.SlotMap {
	date = calendar.DateOnly(date)
	key := calendar.DateKey(date)

	if exc, ok := r.exceptions[key]; ok {
		switch exc.Type {
		case domain.ExceptionBlock:
			return domain.SlotMap{}
		case domain.ExceptionOverride:
			// Инвариант гарантирует полную карту слотов у override,
			// но испорченный документ не должен ронять запрос
			if exc.TimeSlots == nil {
				return domain.SlotMap{}
			}
			return *exc.TimeSlots
		default:
			return domain.SlotMap{}
		}
	}

	rule, ok := r.template[calendar.WeekdayOf(date)]
	if !ok || !rule.Enabled {
		return domain.SlotMap{}
	}
	return rule.TimeSlots
}

// IsAvailable reports whether the given slot is bookable on the given date
func (r *Resolver) IsAvailable(date time.Time, slot domain.TimeSlot) bool {
	return r.DaySlots(date).Get(slot)
}

// AvailableSlots returns the bookable slots of a date in the fixed
// morning-afternoon-evening order
func (r *Resolver) AvailableSlots(date time.Time) []domain.TimeSlot {
	daySlots := r.DaySlots(date)

	slots := make([]domain.TimeSlot, 0, len(domain.TimeSlots))
	for _, slot := range domain.TimeSlots {
		if daySlots.Get(slot) {
			slots = append(slots, slot)
		}
	}
	return slots
}

// IsAvailable одноразовая форма Resolver.IsAvailable для вызывающих,
// которым нужна одна проверка по одной дате
func IsAvailable(schedule domain.AvailabilitySchedule, date time.Time, slot domain.TimeSlot) bool {
	return NewResolver(schedule).IsAvailable(date, slot)
}

// AvailableSlots одноразовая форма Resolver.AvailableSlots
func AvailableSlots(schedule domain.AvailabilitySchedule, date time.Time) []domain.TimeSlot {
	return NewResolver(schedule).AvailableSlots(date)
}
