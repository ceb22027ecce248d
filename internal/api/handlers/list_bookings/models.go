package list_bookings

import (
	"github.com/avkostin/studio-booking/internal/domain"
	"github.com/avkostin/studio-booking/internal/service/bookings/models"
)

// BookingItem строка админского списка бронирований
type BookingItem struct {
	ID              string  `json:"id"`
	Date            string  `json:"date"`
	StartTime       string  `json:"start_time"`
	EndTime         string  `json:"end_time"`
	DurationMinutes int     `json:"duration_minutes"`
	Status          string  `json:"status"`
	ClientName      string  `json:"name"`
	ClientPhone     string  `json:"phone"`
	Comment         *string `json:"comment,omitempty"`
}

// ListBookingsResponse HTTP response model
type ListBookingsResponse struct {
	Date     string        `json:"date"`
	Bookings []BookingItem `json:"bookings"`
}

func toResponse(date string, list *models.BookingListResponse) *ListBookingsResponse {
	items := make([]BookingItem, 0, len(list.Items))
	for _, b := range list.Items {
		items = append(items, BookingItem{
			ID:              b.ID.String(),
			Date:            b.Date.Format(domain.DateFormat),
			StartTime:       b.StartTime.String(),
			EndTime:         b.EndTime.String(),
			DurationMinutes: b.DurationMinutes,
			Status:          b.Status,
			ClientName:      b.ClientName,
			ClientPhone:     b.ClientPhone,
			Comment:         b.Comment,
		})
	}

	return &ListBookingsResponse{
		Date:     date,
		Bookings: items,
	}
}
