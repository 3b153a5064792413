package domain

// Default schedule settings values
const (
	DefaultAdvanceBookingDays = 1
	DefaultMaxBookingDays     = 30
	DefaultTimezone           = "Europe/Moscow"
)

// Business validation constants
const (
	MinAdvanceBookingDays = 0
	MaxAdvanceBookingDays = 30
	MinBookingWindowDays  = 1
	MaxBookingWindowDays  = 90

	// MaxRangeQueryDays максимальная длина диапазона для запроса календаря
	MaxRangeQueryDays = 90

	MaxReasonLength = 500
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
