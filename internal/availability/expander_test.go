package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AffiliateScheduler/internal/domain"
)

func TestAvailableDates_ExcludesSundays(t *testing.T) {
	// 8 дней: 2026-01-04 (вс) .. 2026-01-11 (вс), воскресенье выключено
	schedule := defaultSchedule()
	start := time.Date(2026, 1, 4, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 1, 11, 0, 0, 0, 0, time.UTC)

	days := AvailableDates(schedule, start, end)

	require.Len(t, days, 6)
	for _, day := range days {
		assert.NotEqual(t, time.Sunday, day.Date.Weekday())
		assert.True(t, day.AllDay)
		assert.Equal(t,
			[]domain.TimeSlot{domain.SlotMorning, domain.SlotAfternoon, domain.SlotEvening},
			day.TimeSlots)
	}
}

func TestAvailableDates_WestOfUTCTimezoneExcludesSundays(t *testing.T) {
	// Таймзона западнее UTC не должна сдвигать диапазон: выходным остаётся
	// воскресенье, а не понедельник
	schedule := domain.DefaultSchedule("America/New_York")
	start := time.Date(2026, 1, 4, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 1, 11, 0, 0, 0, 0, time.UTC)

	days := AvailableDates(schedule, start, end)

	require.Len(t, days, 6)
	assert.Equal(t, time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC), days[0].Date)
	for _, day := range days {
		assert.NotEqual(t, time.Sunday, day.Date.Weekday())
	}
}

func TestAvailableDates_OmitsBlockedDays(t *testing.T) {
	schedule := defaultSchedule()
	schedule.DateExceptions = []domain.DateException{{
		ID:   "exc-1",
		Date: testMonday,
		Type: domain.ExceptionBlock,
	}}

	days := AvailableDates(schedule, testMonday, testMonday.AddDate(0, 0, 2))

	// Понедельник закрыт блоком и в результат не попадает
	require.Len(t, days, 2)
	assert.Equal(t, testMonday.AddDate(0, 0, 1), days[0].Date)
	assert.Equal(t, testMonday.AddDate(0, 0, 2), days[1].Date)
}

func TestAvailableDates_PartialDayIsNotAllDay(t *testing.T) {
	schedule := defaultSchedule()
	schedule.DateExceptions = []domain.DateException{{
		ID:        "exc-1",
		Date:      testMonday,
		Type:      domain.ExceptionOverride,
		TimeSlots: &domain.SlotMap{Morning: true},
	}}

	days := AvailableDates(schedule, testMonday, testMonday)

	require.Len(t, days, 1)
	assert.False(t, days[0].AllDay)
	assert.Equal(t, []domain.TimeSlot{domain.SlotMorning}, days[0].TimeSlots)
}

func TestAvailableDates_Ascending(t *testing.T) {
	schedule := defaultSchedule()
	start := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 1, 17, 0, 0, 0, 0, time.UTC)

	days := AvailableDates(schedule, start, end)

	require.NotEmpty(t, days)
	for i := 1; i < len(days); i++ {
		assert.True(t, days[i-1].Date.Before(days[i].Date))
	}
}

func TestAvailableDates_ReversedRangeIsEmpty(t *testing.T) {
	schedule := defaultSchedule()

	days := AvailableDates(schedule, testMonday, testMonday.AddDate(0, 0, -3))

	assert.Empty(t, days)
}

func TestAvailableDates_FullyDisabledSchedule(t *testing.T) {
	schedule := defaultSchedule()
	for day, rule := range schedule.WeeklyTemplate {
		rule.Enabled = false
		schedule.WeeklyTemplate[day] = rule
	}

	days := AvailableDates(schedule, testMonday, testMonday.AddDate(0, 0, 13))

	assert.Empty(t, days)
}
