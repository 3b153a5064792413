package schedule

import (
	"errors"
	"fmt"
)

var (
	// ErrAffiliateNotFound возвращается, когда аффилиат не найден
	ErrAffiliateNotFound = errors.New("affiliate not found")

	// ErrExceptionNotFound возвращается, когда исключение с таким id не найдено
	ErrExceptionNotFound = errors.New("exception not found")

	// ErrAccessDenied возвращается, когда вызывающий не владеет аффилиатом
	// и не является администратором
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("schedule service: internal error")
)

// Ошибки валидации уточняют ErrInvalidInput конкретным полем запроса,
// чтобы HTTP-слой мог назвать его в ответе. Каждая матчится и как
// ErrInvalidInput, и как конкретная ошибка.
var (
	ErrEmptyTemplate         = fmt.Errorf("%w: weeklyTemplate must contain at least one day", ErrInvalidInput)
	ErrInvalidDayName        = fmt.Errorf("%w: invalid day name in weeklyTemplate", ErrInvalidInput)
	ErrMissingDate           = fmt.Errorf("%w: date is required", ErrInvalidInput)
	ErrPastDate              = fmt.Errorf("%w: date is in the past", ErrInvalidInput)
	ErrReasonTooLong         = fmt.Errorf("%w: reason is too long", ErrInvalidInput)
	ErrIncompleteOverride    = fmt.Errorf("%w: override exception must set all of morning, afternoon and evening", ErrInvalidInput)
	ErrInvalidExceptionType  = fmt.Errorf("%w: invalid exception type", ErrInvalidInput)
	ErrNoSettingsProvided    = fmt.Errorf("%w: at least one setting must be provided", ErrInvalidInput)
	ErrAdvanceDaysOutOfRange = fmt.Errorf("%w: advanceBookingDays is out of range", ErrInvalidInput)
	ErrMaxDaysOutOfRange     = fmt.Errorf("%w: maxBookingDays is out of range", ErrInvalidInput)
)
