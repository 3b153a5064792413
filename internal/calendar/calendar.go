// Package calendar содержит чистые утилиты для работы с календарными датами:
// нормализация до дня, ключ дня недели, итерация по диапазону дат.
package calendar

import (
	"iter"
	"time"

	"github.com/m04kA/SMC-AffiliateScheduler/internal/domain"
)

// WeekdayOf returns the weekly-template key of a calendar date.
// Аргумент — уже нормализованная календарная дата (см. DateOnly), а не момент
// времени: сдвигать её в другую таймзону нельзя, иначе запрос на понедельник
// у аффилиата западнее UTC уедет на воскресенье. Момент времени сначала
// приводится к календарному дню через In(loc) + DateOnly.
func WeekdayOf(date time.Time) domain.Weekday {
	return domain.Weekdays[int(date.Weekday())]
}

// Location resolves an IANA timezone name.
// При некорректном имени возвращает UTC, чтобы запрос не падал
// из-за испорченного документа расписания.
func Location(name string) *time.Location {
	if name == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.UTC
	}
	return loc
}

// DateOnly strips the time-of-day part of a date. Two values on the same
// calendar day normalize to equal values regardless of their clock time.
func DateOnly(date time.Time) time.Time {
	y, m, d := date.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DateKey returns the canonical YYYY-MM-DD key of a date.
// Используется как ключ для индекса исключений и для сравнения дат заказов.
func DateKey(date time.Time) string {
	return date.Format(domain.DateFormat)
}

// SameDay проверяет, что две даты относятся к одному календарному дню
func SameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// DaySpan returns the number of whole days between two dates
// (0 for the same day, negative if end is before start).
func DaySpan(start, end time.Time) int {
	return int(DateOnly(end).Sub(DateOnly(start)).Hours() / 24)
}

// DaysBetween returns a lazy, restartable sequence of the normalized dates
// from start to end inclusive, ascending with day granularity.
// Пустая последовательность, если end раньше start.
func DaysBetween(start, end time.Time) iter.Seq[time.Time] {
	first := DateOnly(start)
	last := DateOnly(end)

	return func(yield func(time.Time) bool) {
		for day := first; !day.After(last); day = day.AddDate(0, 0, 1) {
			if !yield(day) {
				return
			}
		}
	}
}
