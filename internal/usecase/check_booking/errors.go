package check_booking

import "errors"

var (
	// ErrAffiliateNotFound возвращается, когда аффилиат не найден
	ErrAffiliateNotFound = errors.New("check_booking: affiliate not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("check_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("check_booking: internal error")
)
