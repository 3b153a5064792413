package get_available_slots

import "errors"

var (
	// ErrAffiliateNotFound возвращается, когда аффилиат не найден
	ErrAffiliateNotFound = errors.New("get_available_slots: affiliate not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrRangeTooLarge возвращается, когда запрошенный диапазон дат превышает лимит
	ErrRangeTooLarge = errors.New("get_available_slots: date range is too large")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_available_slots: internal error")
)
