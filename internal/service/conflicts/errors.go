package conflicts

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("conflicts: invalid input data")

	// ErrInternal возвращается, когда не удалось прочитать заказы из хранилища.
	// Такие ошибки не проглатываются: вызывающий должен ответить 5xx.
	ErrInternal = errors.New("conflicts: internal error")
)
