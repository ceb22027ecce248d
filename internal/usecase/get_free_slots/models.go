package get_free_slots

import (
	"time"

	"github.com/avkostin/studio-booking/pkg/types"
)

// Request модель запроса свободных слотов
type Request struct {
	Date time.Time // Дата, на которую запрашиваются слоты (без времени)
}

// Response модель ответа со списком свободных слотов
type Response struct {
	Date      time.Time          // Дата, на которую запрашивались слоты
	FreeSlots []types.TimeString // Свободные слоты в порядке сетки
}
