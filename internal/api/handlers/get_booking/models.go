package get_booking

import (
	"time"

	"github.com/avkostin/studio-booking/internal/domain"
	"github.com/avkostin/studio-booking/internal/service/bookings/models"
)

// BookingResponse полная карточка бронирования для админки
type BookingResponse struct {
	ID              string  `json:"id"`
	Date            string  `json:"date"`
	StartTime       string  `json:"start_time"`
	EndTime         string  `json:"end_time"`
	DurationMinutes int     `json:"duration_minutes"`
	Status          string  `json:"status"`
	ClientName      string  `json:"name"`
	ClientPhone     string  `json:"phone"`
	Comment         *string `json:"comment,omitempty"`
	CancelReason    *string `json:"cancel_reason,omitempty"`
	CancelledAt     *string `json:"cancelled_at,omitempty"`
	CreatedAt       string  `json:"created_at"`
}

func toResponse(b *models.BookingResponse) *BookingResponse {
	var cancelledAt *string
	if b.CancelledAt != nil {
		s := b.CancelledAt.Format(time.RFC3339)
		cancelledAt = &s
	}

	return &BookingResponse{
		ID:              b.ID.String(),
		Date:            b.Date.Format(domain.DateFormat),
		StartTime:       b.StartTime.String(),
		EndTime:         b.EndTime.String(),
		DurationMinutes: b.DurationMinutes,
		Status:          b.Status,
		ClientName:      b.ClientName,
		ClientPhone:     b.ClientPhone,
		Comment:         b.Comment,
		CancelReason:    b.CancelReason,
		CancelledAt:     cancelledAt,
		CreatedAt:       b.CreatedAt.Format(time.RFC3339),
	}
}
