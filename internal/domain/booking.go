package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/avkostin/studio-booking/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusActive    BookingStatus = "active"
	StatusCancelled BookingStatus = "cancelled"
)

// Booking represents a studio session booking
type Booking struct {
	ID uuid.UUID

	BookingDate     time.Time // календарная дата, без времени
	StartTime       types.TimeString
	DurationMinutes int
	Status          BookingStatus

	ClientName  string
	ClientPhone string
	Comment     *string

	CancelReason *string
	CancelledAt  *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking occupies its time window
func (b *Booking) IsActive() bool {
	return b.Status == StatusActive
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// EndTime returns the end of the booking window (start + duration)
func (b *Booking) EndTime() (types.TimeString, error) {
	return b.StartTime.AddMinutes(b.DurationMinutes)
}

// Overlaps reports whether the booking window intersects [start, end)
// Интервалы, которые только граничат, пересечением не считаются
func (b *Booking) Overlaps(start, end types.TimeString) bool {
	bookingEnd, err := b.EndTime()
	if err != nil {
		return false
	}
	return b.StartTime.IsBefore(end) && bookingEnd.IsAfter(start)
}

// BookingsFilter фильтр для выборки бронирований на дату
type BookingsFilter struct {
	Date            time.Time      // Обязательный параметр (календарная дата)
	Status          *BookingStatus // Фильтр по статусу (опционально)
	IncludeInactive bool           // Включать ли отмененные бронирования
}
