package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-AffiliateScheduler/internal/domain"
	"github.com/m04kA/SMC-AffiliateScheduler/pkg/ptr"
)

// 2026-01-05 - понедельник, 2026-01-04 - воскресенье
var (
	testMonday = time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	testSunday = time.Date(2026, 1, 4, 0, 0, 0, 0, time.UTC)
)

func defaultSchedule() domain.AvailabilitySchedule {
	return domain.DefaultSchedule("UTC")
}

func TestResolver_TemplateDay(t *testing.T) {
	resolver := NewResolver(defaultSchedule())

	assert.True(t, resolver.IsAvailable(testMonday, domain.SlotMorning))
	assert.True(t, resolver.IsAvailable(testMonday, domain.SlotAfternoon))
	assert.True(t, resolver.IsAvailable(testMonday, domain.SlotEvening))
}

func TestResolver_DisabledTemplateDay(t *testing.T) {
	resolver := NewResolver(defaultSchedule())

	// Воскресенье выключено в дефолтном шаблоне
	assert.False(t, resolver.IsAvailable(testSunday, domain.SlotMorning))
	assert.Empty(t, resolver.AvailableSlots(testSunday))
}

func TestResolver_WestOfUTCTimezone(t *testing.T) {
	// Таймзона аффилиата западнее UTC не должна сдвигать день недели:
	// дата запроса - календарный день, а не момент полуночи UTC
	resolver := NewResolver(domain.DefaultSchedule("America/New_York"))

	assert.True(t, resolver.IsAvailable(testMonday, domain.SlotMorning))
	assert.True(t, resolver.IsAvailable(testMonday, domain.SlotEvening))

	// Воскресенье выключено в дефолтном шаблоне
	assert.False(t, resolver.IsAvailable(testSunday, domain.SlotMorning))
	assert.Empty(t, resolver.AvailableSlots(testSunday))
}

func TestResolver_WestOfUTCExceptionAndTemplateAgree(t *testing.T) {
	// Исключение и шаблон должны применяться к одной и той же календарной
	// дате независимо от таймзоны аффилиата
	schedule := domain.DefaultSchedule("America/New_York")
	schedule.DateExceptions = []domain.DateException{{
		ID:   "exc-1",
		Date: testMonday,
		Type: domain.ExceptionBlock,
	}}
	resolver := NewResolver(schedule)

	assert.Empty(t, resolver.AvailableSlots(testMonday))
	tuesday := testMonday.AddDate(0, 0, 1)
	assert.True(t, resolver.IsAvailable(tuesday, domain.SlotMorning))
}

func TestResolver_BlockBeatsTemplate(t *testing.T) {
	schedule := defaultSchedule()
	schedule.DateExceptions = []domain.DateException{{
		ID:   "exc-1",
		Date: testMonday,
		Type: domain.ExceptionBlock,
	}}
	resolver := NewResolver(schedule)

	for _, slot := range domain.TimeSlots {
		assert.False(t, resolver.IsAvailable(testMonday, slot), "slot %s must be blocked", slot)
	}
	// Соседний день блоком не затронут
	tuesday := testMonday.AddDate(0, 0, 1)
	assert.True(t, resolver.IsAvailable(tuesday, domain.SlotMorning))
}

func TestResolver_OverrideReplacesTemplate(t *testing.T) {
	// В шаблоне понедельник открыт целиком; override оставляет только вечер.
	// Карта override заменяет шаблон полностью, а не мержится с ним.
	schedule := defaultSchedule()
	schedule.DateExceptions = []domain.DateException{{
		ID:        "exc-1",
		Date:      testMonday,
		Type:      domain.ExceptionOverride,
		TimeSlots: &domain.SlotMap{Evening: true},
	}}
	resolver := NewResolver(schedule)

	assert.False(t, resolver.IsAvailable(testMonday, domain.SlotMorning))
	assert.False(t, resolver.IsAvailable(testMonday, domain.SlotAfternoon))
	assert.True(t, resolver.IsAvailable(testMonday, domain.SlotEvening))
	assert.Equal(t, []domain.TimeSlot{domain.SlotEvening}, resolver.AvailableSlots(testMonday))
}

func TestResolver_OverrideOpensDisabledDay(t *testing.T) {
	// Override может открыть день, выключенный в шаблоне
	schedule := defaultSchedule()
	schedule.DateExceptions = []domain.DateException{{
		ID:        "exc-1",
		Date:      testSunday,
		Type:      domain.ExceptionOverride,
		TimeSlots: &domain.SlotMap{Morning: true, Afternoon: true},
	}}
	resolver := NewResolver(schedule)

	assert.True(t, resolver.IsAvailable(testSunday, domain.SlotMorning))
	assert.True(t, resolver.IsAvailable(testSunday, domain.SlotAfternoon))
	assert.False(t, resolver.IsAvailable(testSunday, domain.SlotEvening))
}

func TestResolver_ExceptionMatchesByCalendarDay(t *testing.T) {
	// Дата исключения и дата запроса с разным временем суток - один день
	schedule := defaultSchedule()
	schedule.DateExceptions = []domain.DateException{{
		ID:   "exc-1",
		Date: testMonday.Add(9 * time.Hour),
		Type: domain.ExceptionBlock,
	}}
	resolver := NewResolver(schedule)

	assert.False(t, resolver.IsAvailable(testMonday.Add(20*time.Hour), domain.SlotEvening))
}

func TestResolver_FailClosed(t *testing.T) {
	t.Run("override without slot map", func(t *testing.T) {
		schedule := defaultSchedule()
		schedule.DateExceptions = []domain.DateException{{
			ID:   "exc-1",
			Date: testMonday,
			Type: domain.ExceptionOverride,
			// TimeSlots отсутствует - испорченный документ
		}}
		resolver := NewResolver(schedule)

		assert.False(t, resolver.IsAvailable(testMonday, domain.SlotMorning))
		assert.Empty(t, resolver.AvailableSlots(testMonday))
	})

	t.Run("unknown exception type", func(t *testing.T) {
		schedule := defaultSchedule()
		schedule.DateExceptions = []domain.DateException{{
			ID:        "exc-1",
			Date:      testMonday,
			Type:      domain.ExceptionType("holiday"),
			TimeSlots: &domain.SlotMap{Morning: true},
		}}
		resolver := NewResolver(schedule)

		assert.False(t, resolver.IsAvailable(testMonday, domain.SlotMorning))
	})

	t.Run("missing template day", func(t *testing.T) {
		schedule := defaultSchedule()
		delete(schedule.WeeklyTemplate, domain.WeekdayMonday)
		resolver := NewResolver(schedule)

		assert.False(t, resolver.IsAvailable(testMonday, domain.SlotMorning))
	})

	t.Run("nil template", func(t *testing.T) {
		resolver := NewResolver(domain.AvailabilitySchedule{})

		assert.False(t, resolver.IsAvailable(testMonday, domain.SlotMorning))
		assert.Empty(t, resolver.AvailableSlots(testMonday))
	})
}

func TestResolver_AvailableSlotsFixedOrder(t *testing.T) {
	schedule := defaultSchedule()
	resolver := NewResolver(schedule)

	assert.Equal(t,
		[]domain.TimeSlot{domain.SlotMorning, domain.SlotAfternoon, domain.SlotEvening},
		resolver.AvailableSlots(testMonday))
}

func TestIsAvailable_OneShot(t *testing.T) {
	schedule := defaultSchedule()
	reason := ptr.Ptr("inventory day")
	schedule.DateExceptions = []domain.DateException{{
		ID:     "exc-1",
		Date:   testMonday,
		Type:   domain.ExceptionBlock,
		Reason: reason,
	}}

	assert.False(t, IsAvailable(schedule, testMonday, domain.SlotMorning))
	assert.True(t, IsAvailable(schedule, testMonday.AddDate(0, 0, 1), domain.SlotMorning))
	assert.Empty(t, AvailableSlots(schedule, testMonday))
}
