package create_booking

import (
	"time"

	"github.com/google/uuid"

	"github.com/avkostin/studio-booking/internal/domain"
	"github.com/avkostin/studio-booking/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	Date            time.Time        // Календарная дата (без времени)
	StartTime       types.TimeString // Время начала сессии ("10:00")
	DurationMinutes int              // Длительность, кратная шагу слота

	ClientName  string
	ClientPhone string
	Comment     *string
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID              uuid.UUID
	Date            time.Time
	StartTime       types.TimeString
	EndTime         types.TimeString
	DurationMinutes int
	Status          string

	ClientName  string
	ClientPhone string
	Comment     *string

	CreatedAt time.Time
}

// fromDomainBooking конвертирует доменное бронирование в ответ use case
func fromDomainBooking(b *domain.Booking) *Response {
	endTime, _ := b.EndTime()

	return &Response{
		ID:              b.ID,
		Date:            b.BookingDate,
		StartTime:       b.StartTime,
		EndTime:         endTime,
		DurationMinutes: b.DurationMinutes,
		Status:          string(b.Status),
		ClientName:      b.ClientName,
		ClientPhone:     b.ClientPhone,
		Comment:         b.Comment,
		CreatedAt:       b.CreatedAt,
	}
}
