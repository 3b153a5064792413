package domain

import "time"

// ExceptionType represents the kind of a date exception
type ExceptionType string

const (
	// ExceptionBlock полностью закрывает дату, слоты не указываются
	ExceptionBlock ExceptionType = "block"
	// ExceptionOverride полностью заменяет недельный шаблон на дату
	ExceptionOverride ExceptionType = "override"
)

// DayRule availability rule for one day of the weekly template
type DayRule struct {
	Enabled   bool    `json:"enabled"`
	TimeSlots SlotMap `json:"timeSlots"`
}

// WeeklyTemplate recurring availability, one rule per day of week.
// Инвариант: все семь дней всегда присутствуют (нет разреженных шаблонов).
type WeeklyTemplate map[Weekday]DayRule

// DateException per-calendar-date override of the weekly template.
// На одну календарную дату может существовать не больше одного исключения.
type DateException struct {
	ID   string        `json:"id"`
	Date time.Time     `json:"date"`
	Type ExceptionType `json:"type"`
	// TimeSlots заполнен только для override (полная карта слотов),
	// для block всегда nil
	TimeSlots *SlotMap `json:"timeSlots,omitempty"`
	Reason    *string  `json:"reason,omitempty"`
}

// ScheduleSettings booking-window settings of an affiliate
type ScheduleSettings struct {
	AdvanceBookingDays int    `json:"advanceBookingDays"` // [0, 30]
	MaxBookingDays     int    `json:"maxBookingDays"`     // [1, 90]
	Timezone           string `json:"timezone"`
}

// AvailabilitySchedule the full availability document of one affiliate.
// Живёт строго внутри записи аффилиата и никогда не хранится отдельно.
type AvailabilitySchedule struct {
	WeeklyTemplate   WeeklyTemplate   `json:"weeklyTemplate"`
	DateExceptions   []DateException  `json:"dateExceptions"`
	ScheduleSettings ScheduleSettings `json:"scheduleSettings"`
}

// DefaultSchedule returns the schedule every new affiliate starts with:
// Monday-Saturday fully open, Sunday disabled, no exceptions
func DefaultSchedule(timezone string) AvailabilitySchedule {
	if timezone == "" {
		timezone = DefaultTimezone
	}

	template := make(WeeklyTemplate, len(Weekdays))
	for _, day := range Weekdays {
		enabled := day != WeekdaySunday
		template[day] = DayRule{
			Enabled: enabled,
			TimeSlots: SlotMap{
				Morning:   enabled,
				Afternoon: enabled,
				Evening:   enabled,
			},
		}
	}

	return AvailabilitySchedule{
		WeeklyTemplate: template,
		DateExceptions: make([]DateException, 0),
		ScheduleSettings: ScheduleSettings{
			AdvanceBookingDays: DefaultAdvanceBookingDays,
			MaxBookingDays:     DefaultMaxBookingDays,
			Timezone:           timezone,
		},
	}
}

// Affiliate represents a laundry affiliate (service provider)
type Affiliate struct {
	ID       int64
	UserID   int64
	Name     string
	Timezone string
	Schedule AvailabilitySchedule

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsOwnedBy проверяет, что пользователь владеет аффилиатом
func (a *Affiliate) IsOwnedBy(userID int64) bool {
	return a.UserID == userID
}
