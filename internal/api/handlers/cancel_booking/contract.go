package cancel_booking

import (
	"context"

	"github.com/avkostin/studio-booking/internal/service/bookings/models"
)

// BookingsService сервис административных операций с бронированиями
type BookingsService interface {
	Cancel(ctx context.Context, req *models.CancelBookingRequest) (*models.BookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
