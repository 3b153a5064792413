package availability

import (
	"time"

	"github.com/m04kA/SMC-AffiliateScheduler/internal/calendar"
	"github.com/m04kA/SMC-AffiliateScheduler/internal/domain"
)

// AvailableDay a single day of the expanded booking calendar
type AvailableDay struct {
	Date      time.Time
	TimeSlots []domain.TimeSlot
	AllDay    bool
}

// AvailableDates expands the schedule over an inclusive date range,
// ascending by day.
//
// Дни без единого доступного слота (выключенные в шаблоне или закрытые
// block-исключением) в результат НЕ попадают — вызывающий не должен
// рассчитывать, что каждый день диапазона присутствует.
//
// Верхнюю границу длины диапазона задаёт вызывающий (HTTP-слой отклоняет
// диапазоны длиннее 90 дней); сама функция диапазон не ограничивает
// и ничего молча не обрезает.
func AvailableDates(schedule domain.AvailabilitySchedule, start, end time.Time) []AvailableDay {
	resolver := NewResolver(schedule)

	days := make([]AvailableDay, 0)
	for day := range calendar.DaysBetween(start, end) {
		slots := resolver.AvailableSlots(day)
		if len(slots) == 0 {
			continue
		}

		days = append(days, AvailableDay{
			Date:      day,
			TimeSlots: slots,
			AllDay:    len(slots) == len(domain.TimeSlots),
		})
	}

	return days
}
