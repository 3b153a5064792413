package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AffiliateScheduler/internal/domain"
)

func TestWeekdayOf(t *testing.T) {
	// 2026-01-05 - понедельник
	monday := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, domain.WeekdayMonday, WeekdayOf(monday))

	sunday := time.Date(2026, 1, 4, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, domain.WeekdaySunday, WeekdayOf(sunday))
}

func TestWeekdayOf_InstantReducedThroughLocation(t *testing.T) {
	moscow, err := time.LoadLocation("Europe/Moscow")
	require.NoError(t, err)

	// 23:30 UTC в воскресенье - в Москве уже понедельник.
	// Момент времени сначала приводится к календарному дню нужной зоны,
	// и только потом берётся день недели.
	lateSunday := time.Date(2026, 1, 4, 23, 30, 0, 0, time.UTC)

	assert.Equal(t, domain.WeekdaySunday, WeekdayOf(DateOnly(lateSunday)))
	assert.Equal(t, domain.WeekdayMonday, WeekdayOf(DateOnly(lateSunday.In(moscow))))
}

func TestLocation(t *testing.T) {
	assert.Equal(t, "Europe/Moscow", Location("Europe/Moscow").String())

	// Некорректное имя и пустая строка дают UTC, без ошибки
	assert.Equal(t, time.UTC, Location("Not/AZone"))
	assert.Equal(t, time.UTC, Location(""))
}

func TestDateOnly(t *testing.T) {
	morning := time.Date(2026, 3, 15, 8, 30, 45, 123, time.UTC)
	evening := time.Date(2026, 3, 15, 23, 59, 59, 0, time.UTC)

	assert.Equal(t, DateOnly(morning), DateOnly(evening))
	assert.Equal(t, time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC), DateOnly(morning))
}

func TestDateKey(t *testing.T) {
	date := time.Date(2026, 3, 5, 14, 0, 0, 0, time.UTC)
	assert.Equal(t, "2026-03-05", DateKey(date))
}

func TestSameDay(t *testing.T) {
	a := time.Date(2026, 3, 15, 0, 0, 1, 0, time.UTC)
	b := time.Date(2026, 3, 15, 23, 59, 0, 0, time.UTC)
	c := time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC)

	assert.True(t, SameDay(a, b))
	assert.False(t, SameDay(b, c))
}

func TestDaySpan(t *testing.T) {
	start := time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)
	end := time.Date(2026, 1, 31, 2, 0, 0, 0, time.UTC)

	assert.Equal(t, 30, DaySpan(start, end))
	assert.Equal(t, 0, DaySpan(start, start))
	assert.Equal(t, -30, DaySpan(end, start))
}

func TestDaysBetween_Inclusive(t *testing.T) {
	start := time.Date(2026, 1, 1, 15, 0, 0, 0, time.UTC)
	end := time.Date(2026, 1, 3, 2, 0, 0, 0, time.UTC)

	var days []time.Time
	for day := range DaysBetween(start, end) {
		days = append(days, day)
	}

	require.Len(t, days, 3)
	assert.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), days[0])
	assert.Equal(t, time.Date(2026, 1, 3, 0, 0, 0, 0, time.UTC), days[2])
}

func TestDaysBetween_SingleDay(t *testing.T) {
	day := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	count := 0
	for range DaysBetween(day, day) {
		count++
	}
	assert.Equal(t, 1, count)
}

func TestDaysBetween_ReversedRangeIsEmpty(t *testing.T) {
	start := time.Date(2026, 1, 3, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	for range DaysBetween(start, end) {
		t.Fatal("expected empty sequence for reversed range")
	}
}

func TestDaysBetween_Restartable(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)

	seq := DaysBetween(start, end)

	first := 0
	for range seq {
		first++
	}
	second := 0
	for range seq {
		second++
	}

	assert.Equal(t, 5, first)
	assert.Equal(t, 5, second)
}
