package create_booking

import "errors"

var (
	// ErrSlotTaken возвращается, когда запрошенное окно пересекается
	// с активным бронированием на ту же дату
	ErrSlotTaken = errors.New("requested time window is already taken")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
