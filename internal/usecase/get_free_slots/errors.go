package get_free_slots

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при недоступности хранилища и прочих
	// внутренних ошибках; безопасно повторить запрос
	ErrInternal = errors.New("usecase: internal error")
)
