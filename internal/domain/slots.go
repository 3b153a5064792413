package domain

import "fmt"

// Weekday represents a day-of-week key in the weekly template
type Weekday string

const (
	WeekdaySunday    Weekday = "sunday"
	WeekdayMonday    Weekday = "monday"
	WeekdayTuesday   Weekday = "tuesday"
	WeekdayWednesday Weekday = "wednesday"
	WeekdayThursday  Weekday = "thursday"
	WeekdayFriday    Weekday = "friday"
	WeekdaySaturday  Weekday = "saturday"
)

// Weekdays все дни недели в фиксированном порядке (sunday..saturday),
// совпадает с time.Weekday
var Weekdays = [7]Weekday{
	WeekdaySunday,
	WeekdayMonday,
	WeekdayTuesday,
	WeekdayWednesday,
	WeekdayThursday,
	WeekdayFriday,
	WeekdaySaturday,
}

// ParseWeekday валидирует строковое имя дня недели
func ParseWeekday(s string) (Weekday, error) {
	for _, d := range Weekdays {
		if s == string(d) {
			return d, nil
		}
	}
	return "", fmt.Errorf("unknown weekday %q", s)
}

// TimeSlot represents one of the three fixed daily booking periods
type TimeSlot string

const (
	SlotMorning   TimeSlot = "morning"
	SlotAfternoon TimeSlot = "afternoon"
	SlotEvening   TimeSlot = "evening"
)

// TimeSlots все слоты в фиксированном порядке
var TimeSlots = [3]TimeSlot{SlotMorning, SlotAfternoon, SlotEvening}

// ParseTimeSlot валидирует строковое имя слота
func ParseTimeSlot(s string) (TimeSlot, error) {
	for _, slot := range TimeSlots {
		if s == string(slot) {
			return slot, nil
		}
	}
	return "", fmt.Errorf("unknown time slot %q", s)
}

// SlotMap per-slot availability flags for a single day
type SlotMap struct {
	Morning   bool `json:"morning"`
	Afternoon bool `json:"afternoon"`
	Evening   bool `json:"evening"`
}

// Get returns the flag for the given slot
func (m SlotMap) Get(slot TimeSlot) bool {
	switch slot {
	case SlotMorning:
		return m.Morning
	case SlotAfternoon:
		return m.Afternoon
	case SlotEvening:
		return m.Evening
	default:
		return false
	}
}

// Set устанавливает флаг для указанного слота
func (m *SlotMap) Set(slot TimeSlot, value bool) {
	switch slot {
	case SlotMorning:
		m.Morning = value
	case SlotAfternoon:
		m.Afternoon = value
	case SlotEvening:
		m.Evening = value
	}
}

// AllEnabled returns true if all three slots are enabled
func (m SlotMap) AllEnabled() bool {
	return m.Morning && m.Afternoon && m.Evening
}

// AnyEnabled returns true if at least one slot is enabled
func (m SlotMap) AnyEnabled() bool {
	return m.Morning || m.Afternoon || m.Evening
}
