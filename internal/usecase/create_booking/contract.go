package create_booking

import (
	"context"
	"time"

	"github.com/avkostin/studio-booking/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// ListByDate получает бронирования на дату; внутри транзакции блокирует строки (FOR UPDATE)
	ListByDate(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
	// Create сохраняет новое бронирование
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
}

// TransactionManager интерфейс для выполнения операций в сериализуемой транзакции
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
