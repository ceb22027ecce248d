package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/avkostin/studio-booking/internal/domain"
	"github.com/avkostin/studio-booking/pkg/types"
)

// StatusFilter фильтр бронирований по статусу в админском списке
type StatusFilter string

const (
	StatusFilterAll       StatusFilter = "all"
	StatusFilterActive    StatusFilter = "active"
	StatusFilterCancelled StatusFilter = "cancelled"
)

// ParseStatusFilter парсит фильтр статуса; пустая строка означает "all"
func ParseStatusFilter(s string) (StatusFilter, error) {
	switch StatusFilter(s) {
	case StatusFilterAll, "":
		return StatusFilterAll, nil
	case StatusFilterActive:
		return StatusFilterActive, nil
	case StatusFilterCancelled:
		return StatusFilterCancelled, nil
	default:
		return "", fmt.Errorf("unknown status filter: %q", s)
	}
}

// ListBookingsRequest запрос списка бронирований на дату
type ListBookingsRequest struct {
	Date   time.Time
	Status StatusFilter
}

// CancelBookingRequest запрос на отмену бронирования
type CancelBookingRequest struct {
	ID     uuid.UUID
	Reason *string
}

// BookingResponse полная карточка бронирования
type BookingResponse struct {
	ID              uuid.UUID
	Date            time.Time
	StartTime       types.TimeString
	EndTime         types.TimeString
	DurationMinutes int
	Status          string

	ClientName  string
	ClientPhone string
	Comment     *string

	CancelReason *string
	CancelledAt  *time.Time

	CreatedAt time.Time
}

// BookingListResponse список бронирований
type BookingListResponse struct {
	Items []BookingResponse
}

// FromDomainBooking конвертирует доменное бронирование в ответ сервиса
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	endTime, _ := b.EndTime()

	return &BookingResponse{
		ID:              b.ID,
		Date:            b.BookingDate,
		StartTime:       b.StartTime,
		EndTime:         endTime,
		DurationMinutes: b.DurationMinutes,
		Status:          string(b.Status),
		ClientName:      b.ClientName,
		ClientPhone:     b.ClientPhone,
		Comment:         b.Comment,
		CancelReason:    b.CancelReason,
		CancelledAt:     b.CancelledAt,
		CreatedAt:       b.CreatedAt,
	}
}

// FromDomainBookingList конвертирует список доменных бронирований
func FromDomainBookingList(items []*domain.Booking) *BookingListResponse {
	out := make([]BookingResponse, 0, len(items))
	for _, b := range items {
		out = append(out, *FromDomainBooking(b))
	}
	return &BookingListResponse{Items: out}
}

// ToDomainFilter конвертирует запрос списка в доменный фильтр
func (r *ListBookingsRequest) ToDomainFilter() domain.BookingsFilter {
	filter := domain.BookingsFilter{Date: r.Date}

	switch r.Status {
	case StatusFilterActive:
		status := domain.StatusActive
		filter.Status = &status
	case StatusFilterCancelled:
		status := domain.StatusCancelled
		filter.Status = &status
	default:
		filter.IncludeInactive = true
	}

	return filter
}
