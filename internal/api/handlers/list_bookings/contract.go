package list_bookings

import (
	"context"

	"github.com/avkostin/studio-booking/internal/service/bookings/models"
)

// BookingsService сервис административных операций с бронированиями
type BookingsService interface {
	ListByDate(ctx context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
