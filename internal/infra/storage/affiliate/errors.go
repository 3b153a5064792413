package affiliate

import "errors"

var (
	// ErrAffiliateNotFound возвращается, когда аффилиат не найден
	ErrAffiliateNotFound = errors.New("affiliate.repository: affiliate not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("affiliate.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("affiliate.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("affiliate.repository: failed to scan row")

	// ErrEncodeSchedule возвращается при ошибке сериализации документа расписания
	ErrEncodeSchedule = errors.New("affiliate.repository: failed to encode schedule document")

	// ErrDecodeSchedule возвращается при ошибке десериализации документа расписания
	ErrDecodeSchedule = errors.New("affiliate.repository: failed to decode schedule document")
)
