package get_booking

import (
	"context"

	"github.com/google/uuid"

	"github.com/avkostin/studio-booking/internal/service/bookings/models"
)

// BookingsService сервис административных операций с бронированиями
type BookingsService interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.BookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
